package navigator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"markview/internal/document"
	"markview/internal/metrics"
)

// A 100-line document viewed through an 800-unit viewport: the estimate
// is 100*24+400 = 2800, leaving an extent of 2000.
func newTestCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	doc := document.Parse(strings.Repeat("line\n", 100))
	doc.Path = "/tmp/test.md"
	return New(doc, Options{
		PageFraction:   0.8,
		SpaceFraction:  0.2,
		ArrowIncrement: 20,
		ViewportSize:   800,
		Metrics:        metrics.New(16, 1.5, 400),
	})
}

func TestExtentFromEstimate(t *testing.T) {
	c := newTestCoordinator(t)
	require.Equal(t, 2000.0, c.Extent())
	require.Equal(t, 0.0, c.Position())
}

func TestPageScrollsByConfiguredFraction(t *testing.T) {
	c := newTestCoordinator(t)

	c.Page(1)
	require.Equal(t, 640.0, c.Position(), "Page down should move 80% of the viewport")

	c.Page(-1)
	require.Equal(t, 0.0, c.Position())
}

func TestArrowAndHalfPageAndSpace(t *testing.T) {
	c := newTestCoordinator(t)

	c.ScrollArrow(1)
	require.Equal(t, 20.0, c.Position())

	c.HalfPage(1)
	require.Equal(t, 420.0, c.Position())

	c.Space(1)
	require.Equal(t, 580.0, c.Position())

	c.Space(-1)
	c.HalfPage(-1)
	c.ScrollArrow(-1)
	require.Equal(t, 0.0, c.Position())
}

func TestHomeAndEnd(t *testing.T) {
	c := newTestCoordinator(t)

	c.End()
	require.Equal(t, 2000.0, c.Position())
	require.Equal(t, 1.0, c.Percentage())

	c.Home()
	require.Equal(t, 0.0, c.Position())
}

func TestShrinkingViewportGrowsExtent(t *testing.T) {
	c := newTestCoordinator(t)

	c.SetViewportSize(400)
	require.Equal(t, 2400.0, c.Extent())

	// Growing the viewport shrinks the extent and re-clamps
	c.End()
	c.SetViewportSize(2200)
	require.Equal(t, 600.0, c.Extent())
	require.Equal(t, 600.0, c.Position(), "The position should be pulled back into the new bounds")
}

func TestEmptyDocumentHasNoExtent(t *testing.T) {
	c := New(nil, Options{ViewportSize: 800, Metrics: metrics.New(16, 1.5, 400)})

	require.Equal(t, 0.0, c.Extent())
	require.Equal(t, 1.0, c.Percentage(), "A fully visible document reads as 100%")

	c.ScrollBy(500)
	require.Equal(t, 0.0, c.Position())
}

func TestGotoLineCentersTarget(t *testing.T) {
	c := newTestCoordinator(t)
	c.OpenGotoLine()
	require.Equal(t, ModeGotoLine, c.Mode())

	require.NoError(t, c.GotoLine("50"))
	// Line 50 (0-based 49) sits at 49*24 = 1176; centered in an
	// 800-unit viewport the top lands at 776.
	require.Equal(t, 776.0, c.Position())
	require.Equal(t, ModeNormal, c.Mode(), "A successful jump returns to Normal mode")
}

func TestGotoLineRejectsInvalidInput(t *testing.T) {
	c := newTestCoordinator(t)
	c.OpenGotoLine()

	require.Error(t, c.GotoLine("abc"))
	require.Error(t, c.GotoLine(""))
	require.Error(t, c.GotoLine("0"))
	require.Error(t, c.GotoLine("101"))
	require.Equal(t, ModeGotoLine, c.Mode(), "Invalid input keeps line-input mode open")
	require.Equal(t, 0.0, c.Position())

	require.NoError(t, c.GotoLine("1"))
	require.Equal(t, ModeNormal, c.Mode())
}

func TestMarksRoundTrip(t *testing.T) {
	c := newTestCoordinator(t)

	c.ScrollBy(450)
	c.SetMark('a')

	c.End()
	require.Equal(t, 2000.0, c.Position())

	require.True(t, c.JumpToMark('a'))
	require.Equal(t, 450.0, c.Position(), "Jumping to a mark restores the exact position")
}

func TestJumpToUnsetMarkIsNoOp(t *testing.T) {
	c := newTestCoordinator(t)
	c.ScrollBy(300)

	require.False(t, c.JumpToMark('x'))
	require.Equal(t, 300.0, c.Position())
}

func TestMarksAreSessionScoped(t *testing.T) {
	c := newTestCoordinator(t)
	c.ScrollBy(450)
	c.SetMark('a')

	// Reloading the same file keeps marks
	same := document.Parse(strings.Repeat("line\n", 100))
	same.Path = "/tmp/test.md"
	c.BeginReload()
	c.SetDocument(same)
	require.Equal(t, []rune{'a'}, c.MarkKeys())

	// Loading a different file clears them
	other := document.Parse("just one line\n")
	other.Path = "/tmp/other.md"
	c.BeginReload()
	c.SetDocument(other)
	require.Empty(t, c.MarkKeys())
}

func TestIntentsQueueDuringReload(t *testing.T) {
	c := newTestCoordinator(t)

	c.BeginReload()
	c.Page(1)
	require.Equal(t, 0.0, c.Position(), "Intents should not apply against stale bounds")

	doc := document.Parse(strings.Repeat("line\n", 100))
	doc.Path = "/tmp/test.md"
	c.SetDocument(doc)
	require.Equal(t, 640.0, c.Position(), "Queued intents replay against the fresh bounds")
}

func TestReloadShrinkingDocumentClampsPosition(t *testing.T) {
	c := newTestCoordinator(t)
	c.End()

	small := document.Parse(strings.Repeat("line\n", 20))
	small.Path = "/tmp/test.md"
	c.BeginReload()
	c.SetDocument(small)

	// 20*24+400 = 880, extent 80
	require.Equal(t, 80.0, c.Extent())
	require.Equal(t, 80.0, c.Position())
}

func TestSearchFlow(t *testing.T) {
	doc := document.Parse("alpha\nbeta\nalpha again\ngamma\nALPHA last\n")
	doc.Path = "/tmp/search.md"
	c := New(doc, Options{ViewportSize: 800, Metrics: metrics.New(16, 1.5, 400)})

	c.OpenSearch()
	require.Equal(t, ModeSearching, c.Mode())

	c.UpdateSearch("alpha")
	current, total := c.SearchStatus()
	require.Equal(t, 3, total)
	require.Equal(t, 1, current)

	c.SubmitSearch("alpha")
	require.Equal(t, ModeNormal, c.Mode())
	require.Equal(t, "alpha", c.LastQuery())

	c.NextMatch()
	current, _ = c.SearchStatus()
	require.Equal(t, 2, current)

	c.NextMatch()
	c.NextMatch()
	current, _ = c.SearchStatus()
	require.Equal(t, 1, current, "Next past the last match wraps to the first")

	c.PreviousMatch()
	current, _ = c.SearchStatus()
	require.Equal(t, 3, current, "Previous before the first match wraps to the last")
}

func TestCancelSearchPreservesHistory(t *testing.T) {
	c := newTestCoordinator(t)

	c.OpenSearch()
	c.UpdateSearch("line")
	c.Cancel()

	require.Equal(t, ModeNormal, c.Mode())
	require.Equal(t, "", c.SearchQuery(), "Cancel clears the active query")
	require.Equal(t, "line", c.LastQuery(), "The query stays in history")
}

func TestSearchSurvivesReload(t *testing.T) {
	doc := document.Parse("alpha\nbeta\n")
	doc.Path = "/tmp/search.md"
	c := New(doc, Options{ViewportSize: 800, Metrics: metrics.New(16, 1.5, 400)})

	c.OpenSearch()
	c.SubmitSearch("alpha")

	updated := document.Parse("nothing\nalpha\nalpha\n")
	updated.Path = "/tmp/search.md"
	c.BeginReload()
	c.SetDocument(updated)

	_, total := c.SearchStatus()
	require.Equal(t, 2, total, "Matches are recomputed against the new text")
}

func TestZoomKeepsTopLineStable(t *testing.T) {
	c := newTestCoordinator(t)

	require.NoError(t, c.GotoLine("50"))
	anchor := c.TopLine()

	c.ZoomIn()
	require.Equal(t, 1.125, c.FontScale())
	require.Equal(t, anchor, c.TopLine(), "Zooming should keep the top line anchored")

	c.ZoomOut()
	c.ZoomOut()
	require.Equal(t, 0.875, c.FontScale())
	require.Equal(t, anchor, c.TopLine())
}

func TestZoomClampsToBounds(t *testing.T) {
	c := newTestCoordinator(t)

	for i := 0; i < 100; i++ {
		c.ZoomOut()
	}
	require.Equal(t, 0.5, c.FontScale())

	for i := 0; i < 100; i++ {
		c.ZoomIn()
	}
	require.Equal(t, 4.0, c.FontScale())
}

func TestSectionNavigation(t *testing.T) {
	var b strings.Builder
	b.WriteString("# Title\n")
	for i := 0; i < 20; i++ {
		b.WriteString("text\n")
	}
	b.WriteString("## First\n")
	for i := 0; i < 20; i++ {
		b.WriteString("text\n")
	}
	b.WriteString("## Second\n")
	for i := 0; i < 30; i++ {
		b.WriteString("text\n")
	}

	doc := document.Parse(b.String())
	doc.Path = "/tmp/sections.md"
	c := New(doc, Options{ViewportSize: 400, Metrics: metrics.New(16, 1.5, 0)})

	require.Equal(t, 2, c.Outline().Len())

	_, ok := c.CurrentSection()
	require.False(t, ok, "Before the first level-2 heading there is no current section")

	require.True(t, c.NextSection())
	section, ok := c.CurrentSection()
	require.True(t, ok)
	require.Equal(t, "First", section.Title)

	require.True(t, c.NextSection())
	section, _ = c.CurrentSection()
	require.Equal(t, "Second", section.Title)

	require.False(t, c.NextSection(), "There is no section after the last heading")

	require.True(t, c.PreviousSection())
	section, _ = c.CurrentSection()
	require.Equal(t, "First", section.Title)
}

func TestJumpToSectionScrollsToHeadingTop(t *testing.T) {
	doc := document.Parse("## A\n" + strings.Repeat("text\n", 60) + "## B\n" + strings.Repeat("text\n", 60))
	doc.Path = "/tmp/sections.md"
	c := New(doc, Options{ViewportSize: 400, Metrics: metrics.New(16, 1.5, 0)})

	require.True(t, c.JumpToSection(1))
	entry, _ := c.Outline().Entry(1)
	require.Equal(t, entry.Position, c.Position())

	require.False(t, c.JumpToSection(5))
}

func TestModalGatingOfJumps(t *testing.T) {
	c := newTestCoordinator(t)
	c.ScrollBy(450)
	c.SetMark('a')
	c.End()

	c.OpenSearch()
	require.False(t, c.JumpToMark('a'), "Mark jumps are Normal-mode only")
	require.False(t, c.NextSection())
	require.Equal(t, 2000.0, c.Position())

	c.Cancel()
	require.True(t, c.JumpToMark('a'))
}

func TestToggleHelp(t *testing.T) {
	c := newTestCoordinator(t)

	c.ToggleHelp()
	require.Equal(t, ModeHelp, c.Mode())

	c.ToggleHelp()
	require.Equal(t, ModeNormal, c.Mode())

	c.ToggleHelp()
	c.Cancel()
	require.Equal(t, ModeNormal, c.Mode())
}

func TestRestorePositionClamps(t *testing.T) {
	c := newTestCoordinator(t)

	c.RestorePosition(1200)
	require.Equal(t, 1200.0, c.Position())

	c.RestorePosition(99999)
	require.Equal(t, 2000.0, c.Position(), "A stale saved position clamps into the current bounds")
}

func TestCurrentLine(t *testing.T) {
	c := newTestCoordinator(t)
	require.Equal(t, 1, c.CurrentLine())

	c.ScrollBy(240)
	require.Equal(t, 11, c.CurrentLine(), "240 units at 24 per line puts line 11 on top")
}

func TestSetDocumentNilIsEmpty(t *testing.T) {
	c := newTestCoordinator(t)
	c.BeginReload()
	c.SetDocument(nil)

	require.NotNil(t, c.Doc())
	require.Equal(t, 0.0, c.Extent())
}
