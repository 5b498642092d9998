package types

// Cursor movement
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ActivateAction opens the entry under the cursor
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Directory travel
type GoUpAction struct{}

func (a GoUpAction) Type() string { return "go_up" }

type GoHomeAction struct{}

func (a GoHomeAction) Type() string { return "go_home" }

type GoBackAction struct{}

func (a GoBackAction) Type() string { return "go_back" }

type GoForwardAction struct{}

func (a GoForwardAction) Type() string { return "go_forward" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// BeginRenameAction opens rename state for the entry under the cursor
type BeginRenameAction struct{}

func (a BeginRenameAction) Type() string { return "begin_rename" }

// Clipboard
type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type CutAction struct{}

func (a CutAction) Type() string { return "cut" }

type PasteAction struct{}

func (a PasteAction) Type() string { return "paste" }

// CopyPathAction writes the popup's path to the system clipboard
type CopyPathAction struct{}

func (a CopyPathAction) Type() string { return "copy_path" }

// Entry commands
type DeleteAction struct{}

func (a DeleteAction) Type() string { return "delete" }

type OpenPopupAction struct{}

func (a OpenPopupAction) Type() string { return "open_popup" }

type ClosePopupAction struct{}

func (a ClosePopupAction) Type() string { return "close_popup" }

type PreviewAction struct{}

func (a PreviewAction) Type() string { return "preview" }

// View commands
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleHiddenAction struct{}

func (a ToggleHiddenAction) Type() string { return "toggle_hidden" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// ClearAction drops the filter, then the clipboard
type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
