package modes

import (
	"dirhop/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type NormalMode struct {
	keys KeyMap
}

func NewNormalMode() *NormalMode {
	return &NormalMode{keys: Keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	hasEntry := ctx.CurrentPath() != ""

	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Open):
		if !hasEntry {
			return nil, true
		}
		return []types.Action{types.ActivateAction{}}, true
	case key.Matches(msg, k.Parent):
		return []types.Action{types.GoUpAction{}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.GoHomeAction{}}, true
	case key.Matches(msg, k.Back):
		return []types.Action{types.GoBackAction{}}, true
	case key.Matches(msg, k.Forward):
		return []types.Action{types.GoForwardAction{}}, true

	case key.Matches(msg, k.Copy):
		if !hasEntry {
			return nil, true
		}
		return []types.Action{types.CopyAction{}}, true
	case key.Matches(msg, k.Cut):
		if !hasEntry {
			return nil, true
		}
		return []types.Action{types.CutAction{}}, true
	case key.Matches(msg, k.Paste):
		if !ctx.HasClipboard() {
			return nil, true
		}
		return []types.Action{types.PasteAction{}}, true

	case key.Matches(msg, k.Rename):
		if !hasEntry {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRename, Data: ctx.RenameName()}}, true
	case key.Matches(msg, k.Delete):
		if !hasEntry {
			return nil, true
		}
		if !ctx.ConfirmDelete() {
			return []types.Action{types.DeleteAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
	case key.Matches(msg, k.Menu):
		if !hasEntry {
			return nil, true
		}
		return []types.Action{types.OpenPopupAction{}, types.ChangeModeAction{Mode: types.ModePopup}}, true
	case key.Matches(msg, k.Preview):
		if !hasEntry || ctx.CurrentIsDir() {
			return nil, true
		}
		return []types.Action{types.PreviewAction{}}, true

	case key.Matches(msg, k.ToggleHidden):
		return []types.Action{types.ToggleHiddenAction{}}, true
	case key.Matches(msg, k.Refresh):
		return []types.Action{types.RefreshAction{}}, true
	case key.Matches(msg, k.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true
	case key.Matches(msg, k.EditPath):
		return []types.Action{types.ChangeModeAction{Mode: types.ModePath, Data: ctx.PathInput()}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
