// Package search finds and cycles through case-insensitive literal
// matches in document text.
package search

import "strings"

// Match is a located occurrence of the query, addressed by source line
// and byte column within that line. Matches are ordered by line, then by
// column.
type Match struct {
	Line   int
	Column int
}

// Cursor tracks the current query, its matches in document order and the
// selected match
type Cursor struct {
	query   string
	matches []Match
	current int // -1 when there are no matches
}

// NewCursor creates an empty search cursor
func NewCursor() *Cursor {
	return &Cursor{current: -1}
}

// SetQuery recomputes the matches for a new query by scanning the text
// top to bottom. The current match becomes the first one at or after
// fromLine so searching continues from the reading position; if none
// qualifies it wraps to the first match. An empty query clears the
// matches.
func (c *Cursor) SetQuery(query, text string, fromLine int) {
	c.query = query
	c.matches = findMatches(query, text)

	if len(c.matches) == 0 {
		c.current = -1
		return
	}

	c.current = 0
	for i, m := range c.matches {
		if m.Line >= fromLine {
			c.current = i
			break
		}
	}
}

// Rescan recomputes matches for the existing query against new text,
// keeping the selection as close to the previous line as possible
func (c *Cursor) Rescan(text string, fromLine int) {
	c.SetQuery(c.query, text, fromLine)
}

// Clear drops the query and all matches
func (c *Cursor) Clear() {
	c.query = ""
	c.matches = nil
	c.current = -1
}

// Query returns the current query
func (c *Cursor) Query() string {
	return c.query
}

// Count returns the number of matches
func (c *Cursor) Count() int {
	return len(c.matches)
}

// CurrentIndex returns the 0-based index of the selected match, or -1
func (c *Cursor) CurrentIndex() int {
	return c.current
}

// Current returns the selected match
func (c *Cursor) Current() (Match, bool) {
	if c.current < 0 || c.current >= len(c.matches) {
		return Match{}, false
	}
	return c.matches[c.current], true
}

// Matches returns all matches in document order
func (c *Cursor) Matches() []Match {
	return c.matches
}

// Next advances to the next match, wrapping to the first after the last
func (c *Cursor) Next() {
	if len(c.matches) == 0 {
		return
	}
	c.current = (c.current + 1) % len(c.matches)
}

// Previous moves to the previous match, wrapping to the last before the
// first
func (c *Cursor) Previous() {
	if len(c.matches) == 0 {
		return
	}
	c.current--
	if c.current < 0 {
		c.current = len(c.matches) - 1
	}
}

// MatchesLine reports whether any match starts on the given line, for
// highlight rendering
func (c *Cursor) MatchesLine(line int) bool {
	for _, m := range c.matches {
		if m.Line == line {
			return true
		}
		if m.Line > line {
			break
		}
	}
	return false
}

// findMatches scans the text line by line for case-insensitive literal
// occurrences of the query
func findMatches(query, text string) []Match {
	if query == "" {
		return nil
	}

	queryLower := strings.ToLower(query)
	var matches []Match

	for lineNo, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(line)
		col := 0
		for {
			i := strings.Index(lineLower[col:], queryLower)
			if i < 0 {
				break
			}
			matches = append(matches, Match{Line: lineNo, Column: col + i})
			col += i + len(queryLower)
		}
	}

	return matches
}
