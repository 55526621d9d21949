package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"markview/internal/ui/input/types"
)

// prefixTimeout bounds two-key sequences like gg and zz
const prefixTimeout = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastKeyWasZ bool
	lastPrefix  time.Time

	// After 'm' or '\'' the next rune names a mark
	pendingMark rune // 'm' for set, '\'' for jump, 0 for none
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.clearPrefixes()
	return nil
}

func (m *NormalMode) clearPrefixes() {
	m.lastKeyWasG = false
	m.lastKeyWasZ = false
	m.pendingMark = 0
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// A pending mark prefix captures the next printable rune as the key
	if m.pendingMark != 0 {
		prefix := m.pendingMark
		m.pendingMark = 0
		if time.Since(m.lastPrefix) >= prefixTimeout {
			// Prefix expired; fall through to plain handling
		} else if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if prefix == 'm' {
				return []types.Action{types.SetMarkAction{Key: msg.Runes[0]}}, true
			}
			return []types.Action{types.JumpMarkAction{Key: msg.Runes[0]}}, true
		} else {
			// Non-rune key cancels the prefix
			return nil, true
		}
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyCtrlD:
		return []types.Action{types.NavigateAction{Direction: "halfdown"}}, true

	case tea.KeyCtrlU:
		return []types.Action{types.NavigateAction{Direction: "halfup"}}, true

	case tea.KeyCtrlG:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGotoLine}}, true
	}

	switch msg.String() {
	case "j":
		m.clearPrefixes()
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		m.clearPrefixes()
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case " ":
		return []types.Action{types.NavigateAction{Direction: "spacedown"}}, true

	case "b":
		return []types.Action{types.NavigateAction{Direction: "spaceup"}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastPrefix) < prefixTimeout {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.clearPrefixes()
		m.lastKeyWasG = true
		m.lastPrefix = time.Now()
		return nil, true

	case "G":
		m.clearPrefixes()
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "z":
		if m.lastKeyWasZ && time.Since(m.lastPrefix) < prefixTimeout {
			// zz - center the view
			m.lastKeyWasZ = false
			return []types.Action{types.NavigateAction{Direction: "center"}}, true
		}
		m.clearPrefixes()
		m.lastKeyWasZ = true
		m.lastPrefix = time.Now()
		return nil, true

	case "m":
		m.clearPrefixes()
		m.pendingMark = 'm'
		m.lastPrefix = time.Now()
		return nil, true

	case "'":
		m.clearPrefixes()
		m.pendingMark = '\''
		m.lastPrefix = time.Now()
		return nil, true

	case "/":
		m.clearPrefixes()
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case ":":
		m.clearPrefixes()
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGotoLine}}, true

	case "n":
		m.clearPrefixes()
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
		}
		return nil, true

	case "N":
		m.clearPrefixes()
		if ctx.SearchQuery() != "" {
			return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
		}
		return nil, true

	case "]":
		m.clearPrefixes()
		if ctx.OutlineLen() > 0 {
			return []types.Action{types.SectionJumpAction{Direction: "next"}}, true
		}
		return nil, true

	case "[":
		m.clearPrefixes()
		if ctx.OutlineLen() > 0 {
			return []types.Action{types.SectionJumpAction{Direction: "prev"}}, true
		}
		return nil, true

	case "t":
		m.clearPrefixes()
		return []types.Action{types.ToggleOutlineAction{}}, true

	case "+", "=":
		m.clearPrefixes()
		return []types.Action{types.ZoomAction{In: true}}, true

	case "-":
		m.clearPrefixes()
		return []types.Action{types.ZoomAction{In: false}}, true

	case "e":
		m.clearPrefixes()
		if ctx.HasDocument() {
			return []types.Action{types.ViewSourceAction{}}, true
		}
		return nil, true

	case "r":
		m.clearPrefixes()
		if ctx.HasDocument() {
			return []types.Action{types.ReloadAction{}}, true
		}
		return nil, true

	case "?":
		m.clearPrefixes()
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	default:
		// Any other key cancels pending prefixes
		m.clearPrefixes()
	}

	return nil, false
}
