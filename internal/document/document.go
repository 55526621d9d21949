// Package document turns raw markdown text into the structural summary
// the navigation core consumes: line count, heading positions and the
// text itself. Rendering is left to the presentation layer.
package document

import (
	"fmt"
	"os"
	"strings"

	"markview/internal/domain"
)

// Load reads a markdown file and parses it into a Document
func Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc := Parse(string(data))
	doc.Path = path
	return doc, nil
}

// Parse scans markdown text into a structural summary. Headings inside
// fenced code blocks are not headings.
func Parse(text string) *domain.Document {
	doc := &domain.Document{Text: text}

	inFence := false
	for i, rawLine := range strings.Split(text, "\n") {
		doc.LineCount++

		line := strings.TrimLeft(rawLine, " \t")
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		if level, title, ok := parseHeading(line); ok {
			doc.Headings = append(doc.Headings, domain.Heading{
				Level: level,
				Title: title,
				Line:  i,
			})
		}
	}

	// A trailing newline does not start another line
	if strings.HasSuffix(text, "\n") && doc.LineCount > 0 {
		doc.LineCount--
	}

	return doc
}

// parseHeading recognizes ATX headings ("## Title")
func parseHeading(line string) (level int, title string, ok bool) {
	if !strings.HasPrefix(line, "#") {
		return 0, "", false
	}

	for level < len(line) && line[level] == '#' {
		level++
	}
	if level > 6 {
		return 0, "", false
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}

	title = strings.TrimSpace(rest)
	// Closing hashes are decoration, not content
	title = strings.TrimRight(title, "#")
	title = strings.TrimRight(title, " \t")
	return level, title, true
}
