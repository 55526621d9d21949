package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"markview/internal/ui/input/types"
)

type HelpMode struct{}

func NewHelpMode() *HelpMode {
	return &HelpMode{}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch msg.String() {
	case "q", "esc", "?":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Everything else is consumed while the overlay is open
	return nil, true
}
