package ui

import (
	"fmt"
	"log"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"markview/internal/config"
	"markview/internal/document"
	"markview/internal/eventbus"
	"markview/internal/navigator"
	"markview/internal/ui/input"
	inputtypes "markview/internal/ui/input/types"
	"markview/internal/ui/views"
)

const outlineWidth = 30

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	positions *config.PositionStore

	nav *navigator.Coordinator

	width  int
	height int

	showOutline bool
	statusErr   string
	inPager     bool

	// Rendered markdown, rebuilt when the document, width or zoom changes
	renderer      *glamour.TermRenderer
	renderedLines []string
	renderedFor   renderKey

	styles       *views.Styles
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	pagerOps     *PagerOps

	program *tea.Program
}

// renderKey identifies the inputs the rendered content depends on
type renderKey struct {
	path  string
	text  string
	width int
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, positions *config.PositionStore, nav *navigator.Coordinator) *Model {
	return &Model{
		bus:          bus,
		config:       cfg,
		positions:    positions,
		nav:          nav,
		styles:       views.NewStyles(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps = NewPagerOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// modelContext exposes the model state the input layer needs
type modelContext struct {
	nav *navigator.Coordinator
}

func (c *modelContext) SearchQuery() string { return c.nav.SearchQuery() }
func (c *modelContext) OutlineLen() int     { return c.nav.Outline().Len() }
func (c *modelContext) HasDocument() bool   { return c.nav.Doc() != nil && c.nav.Doc().Path != "" }

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyGeometry()
		return m, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.nav.ScrollBy(-3 * m.lineHeight())
		case tea.MouseButtonWheelDown:
			m.nav.ScrollBy(3 * m.lineHeight())
		}
		return m, nil

	case tea.KeyMsg:
		ctx := &modelContext{nav: m.nav}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.syncNavigatorMode()
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case documentLoadedMsg:
		if msg.err != nil {
			m.statusErr = msg.err.Error()
			// End the reload against the old document so queued intents drain
			m.nav.SetDocument(m.nav.Doc())
			return m, nil
		}
		m.nav.SetDocument(msg.doc)
		return m, nil

	case pagerMsg:
		m.inPager = false
		if msg.err != nil {
			m.statusErr = msg.err.Error()
		}
		return m, nil

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// syncNavigatorMode keeps the coordinator's mode aligned with the input
// handler after mode-changing actions
func (m *Model) syncNavigatorMode() {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeNormal:
		if m.nav.Mode() != navigator.ModeNormal {
			m.nav.Cancel()
		}
	case inputtypes.ModeSearch:
		m.nav.OpenSearch()
	case inputtypes.ModeGotoLine:
		m.nav.OpenGotoLine()
	case inputtypes.ModeHelp:
		if m.nav.Mode() != navigator.ModeHelp {
			m.nav.ToggleHelp()
		}
	}
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.statusErr = ""

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.nav.OpenSearch()
			m.nav.UpdateSearch(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.nav.SubmitSearch(a.Text)
			m.inputHandler.ChangeMode(inputtypes.ModeNormal, "")
		case inputtypes.ModeGotoLine:
			if err := m.nav.GotoLine(a.Text); err != nil {
				// Stay in line input so the user can correct it
				m.statusErr = err.Error()
				m.inputHandler.ChangeMode(inputtypes.ModeGotoLine, "")
			} else {
				m.inputHandler.ChangeMode(inputtypes.ModeNormal, "")
			}
		}

	case inputtypes.CancelTextAction:
		m.nav.Cancel()

	case inputtypes.SearchNavigateAction:
		if a.Direction == "next" {
			m.nav.NextMatch()
		} else {
			m.nav.PreviousMatch()
		}

	case inputtypes.SetMarkAction:
		m.nav.SetMark(a.Key)

	case inputtypes.JumpMarkAction:
		if !m.nav.JumpToMark(a.Key) {
			m.statusErr = fmt.Sprintf("mark %q not set", a.Key)
		}

	case inputtypes.SectionJumpAction:
		if a.Direction == "next" {
			m.nav.NextSection()
		} else {
			m.nav.PreviousSection()
		}

	case inputtypes.ToggleOutlineAction:
		m.showOutline = !m.showOutline
		m.applyGeometry()

	case inputtypes.ZoomAction:
		if a.In {
			m.nav.ZoomIn()
		} else {
			m.nav.ZoomOut()
		}
		m.applyGeometry()

	case inputtypes.ToggleHelpAction:
		m.nav.ToggleHelp()
		if m.nav.Mode() == navigator.ModeHelp {
			m.inputHandler.ChangeMode(inputtypes.ModeHelp, "")
		} else {
			m.inputHandler.ChangeMode(inputtypes.ModeNormal, "")
		}

	case inputtypes.ViewSourceAction:
		return m.viewSourceCmd()

	case inputtypes.ReloadAction:
		m.nav.BeginReload()
		return loadDocumentCmd(m.nav.Doc().Path)

	case inputtypes.QuitAction:
		m.savePosition()
		return tea.Quit
	}

	return nil
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.nav.ScrollArrow(-1)
	case "down":
		m.nav.ScrollArrow(1)
	case "pageup":
		m.nav.Page(-1)
	case "pagedown":
		m.nav.Page(1)
	case "halfup":
		m.nav.HalfPage(-1)
	case "halfdown":
		m.nav.HalfPage(1)
	case "spaceup":
		m.nav.Space(-1)
	case "spacedown":
		m.nav.Space(1)
	case "home":
		m.nav.Home()
	case "end":
		m.nav.End()
	case "center":
		m.nav.CenterView()
	}
}

// handleEvent processes domain events delivered from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DocumentChangedEvent:
		log.Printf("document changed on disk: %s", e.Path)
		m.nav.BeginReload()
		return loadDocumentCmd(e.Path)

	case eventbus.DocumentRemovedEvent:
		m.statusErr = fmt.Sprintf("%s was removed", e.Path)

	case eventbus.ErrorEvent:
		m.statusErr = e.Message
	}
	return nil
}

// loadDocumentCmd reads and parses a file off the UI goroutine
func loadDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Load(path)
		return documentLoadedMsg{doc: doc, err: err}
	}
}

// viewSourceCmd pages the raw markdown through ov
func (m *Model) viewSourceCmd() tea.Cmd {
	if m.pagerOps == nil {
		return nil
	}
	doc := m.nav.Doc()
	m.inPager = true
	return func() tea.Msg {
		err := m.pagerOps.ShowSource(doc.Path, doc.Text)
		return pagerMsg{err: err}
	}
}

// savePosition records the scroll position for the next session
func (m *Model) savePosition() {
	doc := m.nav.Doc()
	if doc == nil || doc.Path == "" || m.positions == nil {
		return
	}
	if err := m.positions.Save(doc.Path, m.nav.Position()); err != nil {
		log.Printf("failed to save position: %v", err)
	}
}

// --- Geometry ---

// lineHeight is the estimated height of one source line at the current
// zoom level
func (m *Model) lineHeight() float64 {
	return m.config.Theme.BaseTextSize * m.nav.FontScale() * m.config.Theme.LineHeightMultiplier
}

func (m *Model) contentRows() int {
	rows := m.height - 1 // status bar
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) contentWidth() int {
	w := m.width
	if m.showOutline {
		w -= outlineWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// applyGeometry feeds the terminal dimensions to the coordinator in
// estimated-height units and invalidates the rendered content
func (m *Model) applyGeometry() {
	if m.height == 0 {
		return
	}
	m.nav.SetViewportSize(float64(m.contentRows()) * m.lineHeight())
	m.renderer = nil
}

// --- Rendering ---

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPager {
		return ""
	}

	content := m.renderContent()

	if m.showOutline {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderOutline(), content)
	}

	if m.nav.Mode() == navigator.ModeHelp {
		help := m.styles.HelpBox.Render(m.helpRenderer.renderHelpContent())
		content = lipgloss.Place(m.width, m.contentRows(), lipgloss.Center, lipgloss.Center, help)
	}

	return content + "\n" + m.renderStatusBar()
}

// renderContent returns the visible slice of the glamour-rendered
// document
func (m *Model) renderContent() string {
	doc := m.nav.Doc()
	if doc == nil || doc.Text == "" {
		return lipgloss.Place(m.contentWidth(), m.contentRows(), lipgloss.Center, lipgloss.Center,
			m.styles.Dim.Render("no document"))
	}

	m.ensureRendered()

	rows := m.contentRows()
	lines := m.renderedLines

	// The logical position lives in estimated-height space; map its
	// progress onto the rendered line range.
	maxOffset := len(lines) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := int(math.Round(m.nav.Percentage() * float64(maxOffset)))
	if offset > maxOffset {
		offset = maxOffset
	}

	end := offset + rows
	if end > len(lines) {
		end = len(lines)
	}
	visible := m.highlightMatches(lines[offset:end])

	var b strings.Builder
	for i, line := range visible {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ansi.Truncate(line, m.contentWidth(), ""))
	}
	for i := len(visible); i < rows; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

// highlightMatches styles query occurrences in the visible rendered
// lines, once a matching source line falls inside the visible span
func (m *Model) highlightMatches(lines []string) []string {
	query := m.nav.SearchQuery()
	if query == "" {
		return lines
	}

	top := m.nav.TopLine()
	bottom := top + m.contentRows()
	inView := false
	for l := top; l <= bottom; l++ {
		if m.nav.SearchMatchesLine(l) {
			inView = true
			break
		}
	}
	if !inView {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = highlightLine(line, query, m.styles.Highlight)
	}
	return out
}

// highlightLine wraps case-insensitive occurrences of query in the
// given style. Occurrences split by glamour's inline styling are left
// alone.
func highlightLine(line, query string, style lipgloss.Style) string {
	lower := strings.ToLower(line)
	q := strings.ToLower(query)
	if q == "" || !strings.Contains(lower, q) {
		return line
	}

	var b strings.Builder
	for {
		i := strings.Index(lower, q)
		if i < 0 {
			b.WriteString(line)
			return b.String()
		}
		b.WriteString(line[:i])
		b.WriteString(style.Render(line[i : i+len(q)]))
		line = line[i+len(q):]
		lower = lower[i+len(q):]
	}
}

// ensureRendered rebuilds the glamour output when the document or
// layout changed
func (m *Model) ensureRendered() {
	doc := m.nav.Doc()
	key := renderKey{path: doc.Path, text: doc.Text, width: m.contentWidth()}
	if m.renderer != nil && key == m.renderedFor {
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.contentWidth()),
	)
	if err != nil {
		log.Printf("failed to create renderer: %v", err)
		m.renderedLines = strings.Split(doc.Text, "\n")
		return
	}
	m.renderer = renderer

	out, err := renderer.Render(doc.Text)
	if err != nil {
		log.Printf("failed to render markdown: %v", err)
		out = doc.Text
	}
	m.renderedLines = strings.Split(strings.TrimRight(out, "\n"), "\n")
	m.renderedFor = key
}

// renderOutline draws the heading sidebar
func (m *Model) renderOutline() string {
	toc := m.nav.Outline()
	currentIdx := m.nav.Outline().CurrentSectionIndex(m.nav.Position())

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Outline"))
	b.WriteString("\n")

	rows := m.contentRows() - 1
	for i := 0; i < toc.Len() && i < rows; i++ {
		entry, _ := toc.Entry(i)
		indent := strings.Repeat("  ", entry.Level-2)
		label := ansi.Truncate(indent+entry.Title, outlineWidth-3, "…")
		if i == currentIdx {
			b.WriteString(m.styles.OutlineCurrent.Render(label))
		} else {
			b.WriteString(m.styles.OutlineEntry.Render(label))
		}
		b.WriteString("\n")
	}

	return m.styles.OutlinePanel.
		Width(outlineWidth - 1).
		Height(m.contentRows()).
		Render(b.String())
}

// renderStatusBar draws the bottom line: prompt or document status
func (m *Model) renderStatusBar() string {
	if m.statusErr != "" {
		return m.styles.StatusError.Render(ansi.Truncate(m.statusErr, m.width, "…"))
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch, inputtypes.ModeGotoLine:
		return m.styles.Prompt.Render(m.inputHandler.Prompt()) + m.textInputView()
	}

	doc := m.nav.Doc()
	name := doc.Path
	if name == "" {
		name = "[no file]"
	}

	left := m.styles.Title.Render(name)
	if section, ok := m.nav.CurrentSection(); ok {
		left += m.styles.Status.Render(" · ") + m.styles.Section.Render(section.Title)
	}

	var parts []string
	if m.nav.SearchQuery() != "" {
		current, total := m.nav.SearchStatus()
		if total == 0 {
			parts = append(parts, m.styles.StatusError.Render("no matches"))
		} else {
			parts = append(parts, m.styles.Status.Render(fmt.Sprintf("match %d/%d", current, total)))
		}
	}
	parts = append(parts, m.styles.Status.Render(fmt.Sprintf("%d/%d", m.nav.CurrentLine(), doc.LineCount)))

	pct := m.nav.Percentage()
	if m.nav.Extent() == 0 {
		parts = append(parts, m.styles.Percent.Render("All"))
	} else {
		parts = append(parts, m.styles.Percent.Render(fmt.Sprintf("%d%%", int(math.Round(pct*100)))))
	}

	if scale := m.nav.FontScale(); scale != 1.0 {
		parts = append(parts, m.styles.Status.Render(fmt.Sprintf("%.0f%% zoom", scale*100)))
	}

	right := strings.Join(parts, m.styles.Status.Render(" · "))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) textInputView() string {
	if ti := m.inputHandler.TextInput(); ti != nil {
		return ti.View()
	}
	return ""
}
