package modes

import (
	"dirhop/internal/ui/input/types"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmMode asks before deleting the entry under the cursor
type ConfirmMode struct {
	target string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// Target is the path awaiting confirmation
func (m *ConfirmMode) Target() string {
	return m.target
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.target = ctx.CurrentPath()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.target = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y", "enter":
		return []types.Action{
			types.DeleteAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc", "q":
		return []types.Action{
			types.ClosePopupAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else so a stray key never acts on the listing
	return nil, true
}
