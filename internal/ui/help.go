package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help overlay rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// renderHelpContent renders the key binding reference
func (r *HelpRenderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Markview Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Scrolling"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Scroll up/down")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("PgUp/PgDn"), descStyle.Render("Page up/down")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("Ctrl+U/D"), descStyle.Render("Half page up/down")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Space/b"), descStyle.Render("Step forward/back")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("gg/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("zz"), descStyle.Render("Center current line")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", keyStyle.Render(":, Ctrl+G"), descStyle.Render("Go to line number")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("/"), descStyle.Render("Search (case-insensitive)")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("n/N"), descStyle.Render("Next/previous match")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("Esc"), descStyle.Render("Cancel search")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Marks & Sections"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("m<x>"), descStyle.Render("Set mark at position")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("'<x>"), descStyle.Render("Jump to mark")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("[/]"), descStyle.Render("Previous/next section")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("t"), descStyle.Render("Toggle outline sidebar")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("View"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("+/-"), descStyle.Render("Zoom in/out")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("e"), descStyle.Render("View raw source in pager")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("r"), descStyle.Render("Reload file")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s            %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
