package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal mode bindings. It implements help.KeyMap.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Open         key.Binding
	Parent       key.Binding
	Home         key.Binding
	Back         key.Binding
	Forward      key.Binding
	Copy         key.Binding
	Cut          key.Binding
	Paste        key.Binding
	Rename       key.Binding
	Delete       key.Binding
	ToggleHidden key.Binding
	Refresh      key.Binding
	Filter       key.Binding
	EditPath     key.Binding
	Menu         key.Binding
	Preview      key.Binding
	Clear        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Top:          key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
	Bottom:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
	Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Parent:       key.NewBinding(key.WithKeys("backspace", "u"), key.WithHelp("⌫/u", "parent")),
	Home:         key.NewBinding(key.WithKeys("~"), key.WithHelp("~", "home")),
	Back:         key.NewBinding(key.WithKeys("alt+left", "H"), key.WithHelp("H/alt+←", "back")),
	Forward:      key.NewBinding(key.WithKeys("alt+right", "L"), key.WithHelp("L/alt+→", "forward")),
	Copy:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	Cut:          key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cut")),
	Paste:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "paste")),
	Rename:       key.NewBinding(key.WithKeys("r", "f2"), key.WithHelp("r/F2", "rename")),
	Delete:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d/del", "delete")),
	ToggleHidden: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "hidden files")),
	Refresh:      key.NewBinding(key.WithKeys("f5", "ctrl+r"), key.WithHelp("F5", "refresh")),
	Filter:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	EditPath:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to path")),
	Menu:         key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Preview:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
	Clear:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Parent, k.Back, k.Forward, k.Menu, k.Filter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Open, k.Parent, k.Home, k.Back, k.Forward, k.EditPath},
		{k.Copy, k.Cut, k.Paste, k.Rename, k.Delete, k.Menu},
		{k.Filter, k.Clear, k.ToggleHidden, k.Refresh, k.Preview, k.Help, k.Quit},
	}
}
