package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "halfup", "halfdown", "spaceup", "spacedown", "home", "end", "center"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search navigation
type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

// Mark actions
type SetMarkAction struct {
	Key rune
}

func (a SetMarkAction) Type() string { return "set_mark" }

type JumpMarkAction struct {
	Key rune
}

func (a JumpMarkAction) Type() string { return "jump_mark" }

// Outline actions
type SectionJumpAction struct {
	Direction string // "next" or "prev"
}

func (a SectionJumpAction) Type() string { return "section_jump" }

type ToggleOutlineAction struct{}

func (a ToggleOutlineAction) Type() string { return "toggle_outline" }

// Zoom actions
type ZoomAction struct {
	In bool
}

func (a ZoomAction) Type() string { return "zoom" }

// Misc actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ViewSourceAction struct{}

func (a ViewSourceAction) Type() string { return "view_source" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
