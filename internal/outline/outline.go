// Package outline builds the navigable heading index for a document and
// answers which section a scroll position falls in.
package outline

import (
	"sort"

	"markview/internal/domain"
)

// Only these heading levels appear in the outline; top-level titles and
// deep subsections add noise without aiding navigation.
const (
	minLevel = 2
	maxLevel = 4
)

// Entry is one outline item in document order
type Entry struct {
	Level    int
	Title    string
	Line     int
	Position float64 // estimated vertical offset of the heading's top
}

// Index is the ordered heading index for the current document
type Index struct {
	entries []Entry
}

// NewIndex creates an empty outline index
func NewIndex() *Index {
	return &Index{}
}

// Rebuild replaces the index from the document's headings. positionFor
// maps a source line to its estimated vertical offset. Positions are
// forced monotonically non-decreasing so a later heading never sorts
// before an earlier one.
func (ix *Index) Rebuild(headings []domain.Heading, positionFor func(line int) float64) {
	entries := make([]Entry, 0, len(headings))
	prev := 0.0

	for _, h := range headings {
		if h.Level < minLevel || h.Level > maxLevel {
			continue
		}
		pos := positionFor(h.Line)
		if pos < prev {
			pos = prev
		}
		prev = pos
		entries = append(entries, Entry{
			Level:    h.Level,
			Title:    h.Title,
			Line:     h.Line,
			Position: pos,
		})
	}

	ix.entries = entries
}

// Entries returns all outline entries in document order
func (ix *Index) Entries() []Entry {
	return ix.entries
}

// Len returns the number of entries
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entry returns the i-th entry
func (ix *Index) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(ix.entries) {
		return Entry{}, false
	}
	return ix.entries[i], true
}

// CurrentSection returns the last entry whose position is at or before
// the scroll position, i.e. the section the viewport top is inside.
// There is no current section before the first heading.
func (ix *Index) CurrentSection(position float64) (Entry, bool) {
	i := ix.CurrentSectionIndex(position)
	if i < 0 {
		return Entry{}, false
	}
	return ix.entries[i], true
}

// CurrentSectionIndex returns the index of the current section, or -1
func (ix *Index) CurrentSectionIndex(position float64) int {
	// First entry beyond the position, minus one
	i := sort.Search(len(ix.entries), func(i int) bool {
		return ix.entries[i].Position > position
	})
	return i - 1
}

// Next returns the first entry strictly after the scroll position
func (ix *Index) Next(position float64) (Entry, bool) {
	i := sort.Search(len(ix.entries), func(i int) bool {
		return ix.entries[i].Position > position
	})
	if i >= len(ix.entries) {
		return Entry{}, false
	}
	return ix.entries[i], true
}

// Previous returns the last entry strictly before the scroll position
func (ix *Index) Previous(position float64) (Entry, bool) {
	i := sort.Search(len(ix.entries), func(i int) bool {
		return ix.entries[i].Position >= position
	})
	if i == 0 {
		return Entry{}, false
	}
	return ix.entries[i-1], true
}
