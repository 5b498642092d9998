package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModePath
	ModeFilter
	ModeRename
	ModeDeleteConfirm
	ModePopup
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CursorIndex() int
	TotalItems() int
	// CurrentPath is the entry under the cursor, or "" for an empty listing
	CurrentPath() string
	CurrentIsDir() bool
	HasClipboard() bool
	// ConfirmDelete reports whether delete asks before running
	ConfirmDelete() bool
	FilterQuery() string
	PathInput() string
	// RenameName is the name to prefill when renaming
	RenameName() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
