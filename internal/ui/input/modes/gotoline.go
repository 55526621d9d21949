package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"markview/internal/ui/input/types"
)

type GotoLineMode struct {
	TextInputMode
}

func NewGotoLineMode(ti *textinput.Model) *GotoLineMode {
	return &GotoLineMode{
		TextInputMode: NewTextInputMode(types.ModeGotoLine, "goto-line", ":", ti),
	}
}

func (m *GotoLineMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Only digits make sense as line input; swallow other printable keys
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r < '0' || r > '9' {
			return nil, true
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
