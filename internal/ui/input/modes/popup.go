package modes

import (
	"dirhop/internal/ui/input/types"

	tea "github.com/charmbracelet/bubbletea"
)

// PopupMode drives the context menu opened with m
type PopupMode struct{}

func NewPopupMode() *PopupMode {
	return &PopupMode{}
}

func (m *PopupMode) Name() string {
	return "menu"
}

func (m *PopupMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PopupMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PopupMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	toNormal := types.ChangeModeAction{Mode: types.ModeNormal}

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y":
		return []types.Action{types.CopyPathAction{}, types.ClosePopupAction{}, toNormal}, true
	case "c":
		return []types.Action{types.CopyAction{}, toNormal}, true
	case "x":
		return []types.Action{types.CutAction{}, toNormal}, true
	case "r", "f2":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRename, Data: ctx.RenameName()}}, true
	case "d", "delete":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
	case "p":
		if ctx.CurrentIsDir() {
			return nil, true
		}
		return []types.Action{types.ClosePopupAction{}, toNormal, types.PreviewAction{}}, true
	case "esc", "m", "q":
		return []types.Action{types.ClosePopupAction{}, toNormal}, true
	}
	return nil, true
}
