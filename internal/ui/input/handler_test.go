package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"markview/internal/ui/input/types"
)

type stubContext struct {
	query      string
	outlineLen int
	hasDoc     bool
}

func (c stubContext) SearchQuery() string { return c.query }
func (c stubContext) OutlineLen() int     { return c.outlineLen }
func (c stubContext) HasDocument() bool   { return c.hasDoc }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLineInputAcceptsOnlyDigits(t *testing.T) {
	h := New()
	ctx := stubContext{hasDoc: true}

	h.HandleKey(runeKey(':'), ctx)
	require.Equal(t, types.ModeGotoLine, h.CurrentMode())

	h.HandleKey(runeKey('1'), ctx)
	require.Equal(t, "1", h.TextInput().Value())

	h.HandleKey(runeKey('a'), ctx)
	require.Equal(t, "1", h.TextInput().Value(), "letters must not reach the line prompt")

	h.HandleKey(runeKey('2'), ctx)
	require.Equal(t, "12", h.TextInput().Value())
}

func TestSearchModeForwardsTextToInput(t *testing.T) {
	h := New()
	ctx := stubContext{hasDoc: true}

	h.HandleKey(runeKey('/'), ctx)
	require.Equal(t, types.ModeSearch, h.CurrentMode())

	actions, _ := h.HandleKey(runeKey('f'), ctx)
	require.Equal(t, "f", h.TextInput().Value())
	require.Contains(t, actions, types.UpdateTextAction{Text: "f"})
}

func TestTextModeSubmitLeavesInputAlone(t *testing.T) {
	h := New()
	ctx := stubContext{hasDoc: true}

	h.HandleKey(runeKey('/'), ctx)
	h.HandleKey(runeKey('f'), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Contains(t, actions, types.SubmitTextAction{Text: "f", Mode: types.ModeSearch})
	require.Equal(t, "f", h.TextInput().Value())
}

func TestPromptFollowsMode(t *testing.T) {
	h := New()
	ctx := stubContext{hasDoc: true}

	require.Equal(t, "", h.Prompt())

	h.HandleKey(runeKey('/'), ctx)
	require.Equal(t, "/", h.Prompt())

	h.ChangeMode(types.ModeGotoLine, "")
	require.Equal(t, ":", h.Prompt())

	h.ChangeMode(types.ModeNormal, "")
	require.Equal(t, "", h.Prompt())
}
