// Package metrics estimates vertical content extent from document
// structure. It is an approximation, not a layout engine: plain lines are
// one line-height tall, structural elements carry fixed weights and a
// configurable buffer absorbs the rest.
package metrics

import (
	"sort"
	"strings"
)

// Per-line weights relative to a plain text line. Fenced code, headings
// and blockquotes take more vertical space than their single source line.
const (
	codeLineWeight   = 1.25
	headingWeight    = 1.6
	blockquoteWeight = 1.15
)

// Metrics derives vertical positions from the theme settings and the
// current font scale
type Metrics struct {
	BaseTextSize         float64
	LineHeightMultiplier float64
	StructuralPadding    float64
	FontScale            float64
}

// New creates Metrics at font scale 1.0
func New(baseTextSize, lineHeightMultiplier, structuralPadding float64) Metrics {
	return Metrics{
		BaseTextSize:         baseTextSize,
		LineHeightMultiplier: lineHeightMultiplier,
		StructuralPadding:    structuralPadding,
		FontScale:            1.0,
	}
}

// LineHeight is the estimated height of a plain text line
func (m Metrics) LineHeight() float64 {
	return m.BaseTextSize * m.FontScale * m.LineHeightMultiplier
}

// EstimateHeight estimates total content height for a document of
// lineCount lines. It never returns less than viewportSize for a
// non-empty document, so every document with content has at least one
// page of extent. An empty document exactly fills one page and yields
// extent 0.
func (m Metrics) EstimateHeight(lineCount int, viewportSize float64) float64 {
	if viewportSize < 0 {
		viewportSize = 0
	}
	if lineCount <= 0 {
		return viewportSize
	}

	height := float64(lineCount)*m.LineHeight() + m.StructuralPadding
	if height < viewportSize {
		height = viewportSize
	}
	return height
}

// LineIndex maps source lines to estimated vertical offsets using the
// per-line weights. offsets[i] is the top of line i; offsets[lineCount]
// is the bottom of the content.
type LineIndex struct {
	offsets []float64
}

// Index walks the document text once and builds a LineIndex
func (m Metrics) Index(text string) *LineIndex {
	lineHeight := m.LineHeight()
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") && len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}

	offsets := make([]float64, len(lines)+1)
	y := 0.0
	inFence := false

	for i, rawLine := range lines {
		offsets[i] = y

		line := strings.TrimLeft(rawLine, " \t")
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~") {
			inFence = !inFence
		}

		weight := 1.0
		switch {
		case inFence || strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~"):
			weight = codeLineWeight
		case strings.HasPrefix(line, "#"):
			weight = headingWeight
		case strings.HasPrefix(line, ">"):
			weight = blockquoteWeight
		}

		y += lineHeight * weight
	}
	offsets[len(lines)] = y

	return &LineIndex{offsets: offsets}
}

// LineCount returns the number of indexed lines
func (ix *LineIndex) LineCount() int {
	return len(ix.offsets) - 1
}

// TotalHeight returns the weighted height of all indexed lines
func (ix *LineIndex) TotalHeight() float64 {
	return ix.offsets[len(ix.offsets)-1]
}

// OffsetForLine returns the estimated top offset of a 0-based line,
// clamping out-of-range lines into the document
func (ix *LineIndex) OffsetForLine(line int) float64 {
	if line < 0 {
		line = 0
	}
	if line >= len(ix.offsets) {
		line = len(ix.offsets) - 1
	}
	return ix.offsets[line]
}

// LineForOffset returns the 0-based line whose span contains the offset
func (ix *LineIndex) LineForOffset(offset float64) int {
	n := ix.LineCount()
	if n == 0 || offset <= 0 {
		return 0
	}
	// First line whose top is beyond the offset, minus one
	i := sort.Search(n, func(i int) bool { return ix.offsets[i+1] > offset })
	if i >= n {
		return n - 1
	}
	return i
}
