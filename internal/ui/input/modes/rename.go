package modes

import (
	"dirhop/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/textinput"
)

// RenameMode edits the name of the entry under the cursor
type RenameMode struct {
	TextInputMode
}

func NewRenameMode(ti *textinput.Model) *RenameMode {
	return &RenameMode{
		TextInputMode: NewTextInputMode(types.ModeRename, "rename", "Rename: ", ti),
	}
}

// Enter asks the model to open rename state for the current entry
func (m *RenameMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	return append(actions, types.BeginRenameAction{})
}
