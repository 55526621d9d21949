package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrollByClampsToBounds(t *testing.T) {
	s := New(800)
	s.SetExtent(2000)

	s.ScrollBy(-100)
	require.Equal(t, 0.0, s.Position(), "Scrolling above the top should clamp to 0")

	s.ScrollBy(500)
	require.Equal(t, 500.0, s.Position())

	s.ScrollBy(10000)
	require.Equal(t, 2000.0, s.Position(), "Scrolling past the end should clamp to the extent")
}

func TestScrollToBoundaryIdempotence(t *testing.T) {
	s := New(800)
	s.SetExtent(1000)

	s.ScrollToTop()
	s.ScrollBy(-50)
	require.Equal(t, 0.0, s.Position(), "Scrolling up at the top should stay at the top")

	s.ScrollToBottom()
	s.ScrollBy(50)
	require.Equal(t, 1000.0, s.Position(), "Scrolling down at the bottom should stay at the bottom")
}

func TestPageBy(t *testing.T) {
	s := New(800)
	s.SetExtent(2000)

	s.PageBy(0.8, 1)
	require.Equal(t, 640.0, s.Position(), "Page down should move 80% of the viewport")

	s.PageBy(0.8, -1)
	require.Equal(t, 0.0, s.Position())

	s.PageBy(0.8, -1)
	require.Equal(t, 0.0, s.Position(), "Page up at the top should clamp to 0")
}

func TestCenterOn(t *testing.T) {
	s := New(800)
	s.SetExtent(2000)

	s.CenterOn(1000)
	require.Equal(t, 600.0, s.Position())

	s.CenterOn(100)
	require.Equal(t, 0.0, s.Position(), "Centering near the top should clamp to 0")

	s.CenterOn(5000)
	require.Equal(t, 2000.0, s.Position(), "Centering near the bottom should clamp to the extent")
}

func TestSetExtentReclampsPosition(t *testing.T) {
	s := New(800)
	s.SetExtent(500)
	s.ScrollTo(500)
	require.Equal(t, 500.0, s.Position())

	s.SetExtent(200)
	require.Equal(t, 200.0, s.Position(), "Shrinking the extent should pull the position back into bounds")

	s.SetExtent(1000)
	require.Equal(t, 200.0, s.Position(), "Growing the extent should not move the position")
}

func TestSetExtentFloorsAtZero(t *testing.T) {
	s := New(800)
	s.SetExtent(-300)
	require.Equal(t, 0.0, s.Extent())

	s.ScrollBy(100)
	require.Equal(t, 0.0, s.Position())
}

func TestNegativeViewportSizeClampsToZero(t *testing.T) {
	s := New(-10)
	require.Equal(t, 0.0, s.ViewportSize())

	s.SetViewportSize(-1)
	require.Equal(t, 0.0, s.ViewportSize())
}

func TestPercentage(t *testing.T) {
	s := New(800)
	s.SetExtent(2000)

	require.Equal(t, 0.0, s.Percentage())

	s.ScrollTo(500)
	require.Equal(t, 0.25, s.Percentage())

	s.ScrollToBottom()
	require.Equal(t, 1.0, s.Percentage())
}

func TestPercentageWithZeroExtent(t *testing.T) {
	s := New(800)
	require.Equal(t, 1.0, s.Percentage(), "A fully visible document reads as 100%")
}
