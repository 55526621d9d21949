package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Prompt         lipgloss.Style
	Percent        lipgloss.Style
	Section        lipgloss.Style
	Dim            lipgloss.Style
	HelpBox        lipgloss.Style
	OutlinePanel   lipgloss.Style
	OutlineEntry   lipgloss.Style
	OutlineCurrent lipgloss.Style
	Highlight      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")), // red
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")), // yellow
		Percent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")), // green
		Dim: lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		OutlinePanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			PaddingRight(1).
			BorderForeground(lipgloss.Color("238")),
		OutlineEntry: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		OutlineCurrent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
	}
}
