// Package navigator coordinates all navigation state for one open
// document: the viewport, marks, the search cursor and the outline. It
// is the single mutation entry point; input layers dispatch intents here
// and never touch viewport state directly.
package navigator

import (
	"fmt"
	"strconv"

	"markview/internal/domain"
	"markview/internal/marks"
	"markview/internal/metrics"
	"markview/internal/outline"
	"markview/internal/scroll"
	"markview/internal/search"
)

// Mode is the input mode layered above the viewport. Only one mode is
// active at a time.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearching
	ModeGotoLine
	ModeHelp
)

// Font scale bounds for zooming
const (
	minFontScale  = 0.5
	maxFontScale  = 4.0
	fontScaleStep = 0.125
)

// Options configures a Coordinator
type Options struct {
	PageFraction   float64 // viewport fraction for page up/down
	SpaceFraction  float64 // viewport fraction for space scrolling
	ArrowIncrement float64 // absolute offset for arrow keys
	ViewportSize   float64
	Metrics        metrics.Metrics
}

// Coordinator owns the navigation state of one document session
type Coordinator struct {
	opts Options

	m     metrics.Metrics
	index *metrics.LineIndex
	doc   *domain.Document

	view   *scroll.State
	marks  *marks.Registry
	cursor *search.Cursor
	toc    *outline.Index

	mode      Mode
	lastQuery string // preserved across search cancel

	// A document reload invalidates line positions; intents arriving
	// before the new document is applied are queued and replayed against
	// the fresh bounds.
	reloading bool
	pending   []func()
}

// New creates a coordinator for a document at position 0
func New(doc *domain.Document, opts Options) *Coordinator {
	c := &Coordinator{
		opts:   opts,
		m:      opts.Metrics,
		view:   scroll.New(opts.ViewportSize),
		marks:  marks.NewRegistry(),
		cursor: search.NewCursor(),
		toc:    outline.NewIndex(),
		mode:   ModeNormal,
	}
	c.apply(doc)
	return c
}

// apply installs a document and rebuilds everything derived from it
func (c *Coordinator) apply(doc *domain.Document) {
	if doc == nil {
		doc = &domain.Document{}
	}
	c.doc = doc
	c.index = c.m.Index(doc.Text)
	c.refreshExtent()
	c.toc.Rebuild(doc.Headings, c.index.OffsetForLine)
	if c.cursor.Query() != "" {
		c.cursor.Rescan(doc.Text, c.TopLine())
	}
}

// refreshExtent recomputes the extent from content metrics and re-clamps
// the position
func (c *Coordinator) refreshExtent() {
	height := c.m.EstimateHeight(c.doc.LineCount, c.view.ViewportSize())
	extent := height - c.view.ViewportSize()
	c.view.SetExtent(extent)
}

// dispatch runs a navigation intent now, or queues it while a document
// reload is in flight
func (c *Coordinator) dispatch(f func()) {
	if c.reloading {
		c.pending = append(c.pending, f)
		return
	}
	f()
}

// BeginReload marks the document as invalidated. Until SetDocument is
// called, navigation intents are queued instead of applied against stale
// bounds.
func (c *Coordinator) BeginReload() {
	c.reloading = true
}

// SetDocument atomically swaps in a new document, then replays any
// intents queued during the reload against the fresh bounds. Marks are
// session-scoped: loading a different file clears them, reloading the
// same file keeps them.
func (c *Coordinator) SetDocument(doc *domain.Document) {
	if doc != nil && c.doc != nil && doc.Path != c.doc.Path {
		c.marks.Clear()
	}
	c.apply(doc)

	c.reloading = false
	queued := c.pending
	c.pending = nil
	for _, f := range queued {
		f()
	}
}

// Doc returns the current document
func (c *Coordinator) Doc() *domain.Document {
	return c.doc
}

// Mode returns the active input mode
func (c *Coordinator) Mode() Mode {
	return c.mode
}

// --- Viewport queries ---

// Position returns the current scroll position
func (c *Coordinator) Position() float64 { return c.view.Position() }

// Extent returns the maximum scroll position
func (c *Coordinator) Extent() float64 { return c.view.Extent() }

// ViewportSize returns the visible height
func (c *Coordinator) ViewportSize() float64 { return c.view.ViewportSize() }

// Percentage reports scroll progress in [0, 1]
func (c *Coordinator) Percentage() float64 { return c.view.Percentage() }

// TopLine returns the 0-based source line at the top of the viewport
func (c *Coordinator) TopLine() int {
	return c.index.LineForOffset(c.view.Position())
}

// CurrentLine returns the 1-based line number for status display
func (c *Coordinator) CurrentLine() int {
	return c.TopLine() + 1
}

// FontScale returns the current zoom factor
func (c *Coordinator) FontScale() float64 {
	return c.m.FontScale
}

// --- Scroll intents ---

// ScrollArrow scrolls by the configured arrow increment; direction is
// +1 down, -1 up
func (c *Coordinator) ScrollArrow(direction int) {
	c.dispatch(func() { c.view.ScrollBy(float64(sign(direction)) * c.opts.ArrowIncrement) })
}

// ScrollBy scrolls by an arbitrary delta (wheel events)
func (c *Coordinator) ScrollBy(delta float64) {
	c.dispatch(func() { c.view.ScrollBy(delta) })
}

// Page scrolls by the configured page fraction of the viewport
func (c *Coordinator) Page(direction int) {
	c.dispatch(func() { c.view.PageBy(c.opts.PageFraction, sign(direction)) })
}

// HalfPage scrolls by half the viewport
func (c *Coordinator) HalfPage(direction int) {
	c.dispatch(func() { c.view.PageBy(0.5, sign(direction)) })
}

// Space scrolls by the configured space fraction of the viewport
func (c *Coordinator) Space(direction int) {
	c.dispatch(func() { c.view.PageBy(c.opts.SpaceFraction, sign(direction)) })
}

// Home scrolls to the top of the document
func (c *Coordinator) Home() {
	c.dispatch(func() { c.view.ScrollToTop() })
}

// End scrolls to the bottom of the document
func (c *Coordinator) End() {
	c.dispatch(func() { c.view.ScrollToBottom() })
}

// CenterView recenters the viewport on the line currently at its top
func (c *Coordinator) CenterView() {
	c.dispatch(func() {
		line := c.index.LineForOffset(c.view.Position())
		c.view.CenterOn(c.index.OffsetForLine(line))
	})
}

// RestorePosition moves to a previously saved position, clamped into the
// current bounds
func (c *Coordinator) RestorePosition(position float64) {
	c.dispatch(func() { c.view.ScrollTo(position) })
}

// --- Geometry intents ---

// SetViewportSize applies a new visible height, recomputes the extent
// and re-clamps the position
func (c *Coordinator) SetViewportSize(size float64) {
	c.view.SetViewportSize(size)
	c.refreshExtent()
}

// ZoomIn increases the font scale one step
func (c *Coordinator) ZoomIn() { c.setFontScale(c.m.FontScale + fontScaleStep) }

// ZoomOut decreases the font scale one step
func (c *Coordinator) ZoomOut() { c.setFontScale(c.m.FontScale - fontScaleStep) }

// setFontScale rescales the content estimate while keeping the source
// line at the top of the viewport stable across the reflow
func (c *Coordinator) setFontScale(scale float64) {
	if scale < minFontScale {
		scale = minFontScale
	}
	if scale > maxFontScale {
		scale = maxFontScale
	}
	if scale == c.m.FontScale {
		return
	}

	anchor := c.TopLine()
	c.m.FontScale = scale
	c.index = c.m.Index(c.doc.Text)
	c.refreshExtent()
	c.toc.Rebuild(c.doc.Headings, c.index.OffsetForLine)
	c.view.ScrollTo(c.index.OffsetForLine(anchor))
}

// --- Goto line ---

// OpenGotoLine switches to line-input mode
func (c *Coordinator) OpenGotoLine() {
	if c.mode == ModeNormal {
		c.mode = ModeGotoLine
	}
}

// GotoLine resolves accumulated line input. On success the viewport
// centers the line and the mode returns to Normal; invalid input leaves
// the mode unchanged so the user can correct it.
func (c *Coordinator) GotoLine(input string) error {
	n, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("not a line number: %q", input)
	}
	if n < 1 || n > c.doc.LineCount {
		return fmt.Errorf("line %d out of range (1-%d)", n, c.doc.LineCount)
	}

	c.dispatch(func() { c.view.CenterOn(c.index.OffsetForLine(n - 1)) })
	c.mode = ModeNormal
	return nil
}

// --- Marks ---

// SetMark captures the current position under a key. Marks are accepted
// only in Normal mode.
func (c *Coordinator) SetMark(key rune) {
	if c.mode != ModeNormal {
		return
	}
	c.dispatch(func() { c.marks.Set(key, c.view.Position()) })
}

// JumpToMark restores the exact position stored under a key. A missing
// key is a no-op and reports false.
func (c *Coordinator) JumpToMark(key rune) bool {
	if c.mode != ModeNormal {
		return false
	}
	pos, ok := c.marks.Get(key)
	if !ok {
		return false
	}
	c.dispatch(func() { c.view.ScrollTo(pos) })
	return true
}

// MarkKeys lists the set marks for the status overlay
func (c *Coordinator) MarkKeys() []rune {
	return c.marks.Keys()
}

// --- Search ---

// OpenSearch switches to search mode
func (c *Coordinator) OpenSearch() {
	if c.mode == ModeNormal {
		c.mode = ModeSearching
	}
}

// UpdateSearch recomputes matches as the query is typed and follows the
// nearest match at or after the current reading position
func (c *Coordinator) UpdateSearch(query string) {
	c.dispatch(func() {
		c.cursor.SetQuery(query, c.doc.Text, c.TopLine())
		c.scrollToCurrentMatch()
	})
}

// SubmitSearch fixes the query and returns to Normal mode; n/N keep
// cycling its matches
func (c *Coordinator) SubmitSearch(query string) {
	c.dispatch(func() {
		c.cursor.SetQuery(query, c.doc.Text, c.TopLine())
		if query != "" {
			c.lastQuery = query
		}
		c.scrollToCurrentMatch()
	})
	c.mode = ModeNormal
}

// CancelSearch leaves search mode and clears the active query, keeping
// it in history for the next search
func (c *Coordinator) CancelSearch() {
	if q := c.cursor.Query(); q != "" {
		c.lastQuery = q
	}
	c.cursor.Clear()
	c.mode = ModeNormal
}

// LastQuery returns the most recent submitted or cancelled query
func (c *Coordinator) LastQuery() string {
	return c.lastQuery
}

// NextMatch advances to the next match, wrapping past the end
func (c *Coordinator) NextMatch() {
	c.dispatch(func() {
		c.cursor.Next()
		c.scrollToCurrentMatch()
	})
}

// PreviousMatch moves to the previous match, wrapping past the start
func (c *Coordinator) PreviousMatch() {
	c.dispatch(func() {
		c.cursor.Previous()
		c.scrollToCurrentMatch()
	})
}

// SearchQuery returns the active query
func (c *Coordinator) SearchQuery() string {
	return c.cursor.Query()
}

// SearchStatus returns the 1-based current match number and the match
// count; current is 0 when there is no selection
func (c *Coordinator) SearchStatus() (current, total int) {
	return c.cursor.CurrentIndex() + 1, c.cursor.Count()
}

// CurrentMatchPosition maps the selected match to its estimated
// viewport position
func (c *Coordinator) CurrentMatchPosition() (float64, bool) {
	m, ok := c.cursor.Current()
	if !ok {
		return 0, false
	}
	return c.index.OffsetForLine(m.Line), true
}

// SearchMatchesLine reports whether a source line holds a match, for
// highlighting
func (c *Coordinator) SearchMatchesLine(line int) bool {
	return c.cursor.MatchesLine(line)
}

func (c *Coordinator) scrollToCurrentMatch() {
	if pos, ok := c.CurrentMatchPosition(); ok {
		c.view.CenterOn(pos)
	}
}

// --- Outline ---

// Outline returns the heading index for sidebar rendering
func (c *Coordinator) Outline() *outline.Index {
	return c.toc
}

// CurrentSection returns the section the viewport top is inside
func (c *Coordinator) CurrentSection() (outline.Entry, bool) {
	return c.toc.CurrentSection(c.view.Position())
}

// JumpToSection scrolls to the top of the i-th outline entry. Outline
// jumps are accepted only in Normal mode.
func (c *Coordinator) JumpToSection(i int) bool {
	if c.mode != ModeNormal {
		return false
	}
	entry, ok := c.toc.Entry(i)
	if !ok {
		return false
	}
	c.dispatch(func() { c.view.ScrollTo(entry.Position) })
	return true
}

// NextSection jumps to the first heading after the current position
func (c *Coordinator) NextSection() bool {
	if c.mode != ModeNormal {
		return false
	}
	entry, ok := c.toc.Next(c.view.Position())
	if !ok {
		return false
	}
	c.dispatch(func() { c.view.ScrollTo(entry.Position) })
	return true
}

// PreviousSection jumps to the last heading before the current position
func (c *Coordinator) PreviousSection() bool {
	if c.mode != ModeNormal {
		return false
	}
	entry, ok := c.toc.Previous(c.view.Position())
	if !ok {
		return false
	}
	c.dispatch(func() { c.view.ScrollTo(entry.Position) })
	return true
}

// --- Mode transitions ---

// ToggleHelp switches the help overlay on and off
func (c *Coordinator) ToggleHelp() {
	if c.mode == ModeHelp {
		c.mode = ModeNormal
	} else {
		c.mode = ModeHelp
	}
}

// Cancel returns to Normal mode from any mode. Cancelling search clears
// the active query.
func (c *Coordinator) Cancel() {
	if c.mode == ModeSearching {
		c.CancelSearch()
		return
	}
	c.mode = ModeNormal
}

func sign(direction int) int {
	if direction < 0 {
		return -1
	}
	return 1
}
