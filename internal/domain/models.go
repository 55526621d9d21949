package domain

// Heading is a heading node reported by the document scanner.
type Heading struct {
	Level int    // 1-6
	Title string
	Line  int // 0-based line index in the source text
}

// Document is the structural summary of a loaded markdown file.
// It is what the navigation core consumes from the parser side:
// raw text for searching, a line count for extent estimation and
// the heading sequence for the outline.
type Document struct {
	Path      string
	Text      string
	LineCount int
	Headings  []Heading
}
