// Package scroll owns the viewport state: the scroll position, the
// maximum scrollable extent and the visible size. Every mutator leaves
// the invariant 0 <= position <= extent intact.
package scroll

// State is the scroll state of one document viewport
type State struct {
	position     float64
	extent       float64
	viewportSize float64
}

// New creates a State at position 0. A non-positive viewport size is
// clamped to 0; a broken layout must not crash navigation.
func New(viewportSize float64) *State {
	s := &State{}
	s.SetViewportSize(viewportSize)
	return s
}

// Position returns the current scroll position
func (s *State) Position() float64 {
	return s.position
}

// Extent returns the maximum valid scroll position
func (s *State) Extent() float64 {
	return s.extent
}

// ViewportSize returns the visible height
func (s *State) ViewportSize() float64 {
	return s.viewportSize
}

// ScrollBy moves the position by delta in either direction, clamped into
// [0, extent]
func (s *State) ScrollBy(delta float64) {
	s.position = clamp(s.position+delta, 0, s.extent)
}

// ScrollTo moves the position to an absolute offset, clamped into bounds
func (s *State) ScrollTo(position float64) {
	s.position = clamp(position, 0, s.extent)
}

// ScrollToTop moves to the start of the document
func (s *State) ScrollToTop() {
	s.position = 0
}

// ScrollToBottom moves to the end of the document
func (s *State) ScrollToBottom() {
	s.position = s.extent
}

// PageBy scrolls by a fraction of the viewport. direction is +1 toward
// the document end, -1 toward the start.
func (s *State) PageBy(fraction float64, direction int) {
	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}
	s.ScrollBy(float64(direction) * s.viewportSize * fraction)
}

// CenterOn positions the viewport so that target sits in its middle,
// clamped into bounds
func (s *State) CenterOn(target float64) {
	s.ScrollTo(target - s.viewportSize/2)
}

// SetExtent updates the maximum scroll position and re-clamps the current
// position into the new bounds. This is the only path by which position
// moves without an explicit navigation action.
func (s *State) SetExtent(extent float64) {
	if extent < 0 {
		extent = 0
	}
	s.extent = extent
	s.position = clamp(s.position, 0, s.extent)
}

// SetViewportSize updates the visible height. The caller recomputes the
// extent afterwards; the position is re-clamped there.
func (s *State) SetViewportSize(size float64) {
	if size < 0 {
		size = 0
	}
	s.viewportSize = size
}

// Percentage reports how far through the scrollable range the viewport
// is, in [0, 1]. A document without scrollable extent reads as fully
// visible.
func (s *State) Percentage() float64 {
	if s.extent == 0 {
		return 1.0
	}
	return s.position / s.extent
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
