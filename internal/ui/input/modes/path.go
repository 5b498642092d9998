package modes

import (
	"dirhop/internal/ui/input/types"

	"github.com/charmbracelet/bubbles/textinput"
)

type PathMode struct {
	TextInputMode
}

func NewPathMode(ti *textinput.Model) *PathMode {
	return &PathMode{
		TextInputMode: NewTextInputMode(types.ModePath, "path", "Go to: ", ti),
	}
}
