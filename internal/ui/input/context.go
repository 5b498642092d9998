package input

import (
	"path/filepath"

	"dirhop/internal/browser"
	"dirhop/internal/ui/logic"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Session *browser.Session
	Visible []logic.Match
	Cursor  int
	Filter  string
	Confirm bool
}

// CursorIndex returns the row under the cursor
func (c *ModelContext) CursorIndex() int {
	return c.Cursor
}

// TotalItems returns the number of rows after filtering
func (c *ModelContext) TotalItems() int {
	return len(c.Visible)
}

// CurrentPath returns the path of the entry under the cursor
func (c *ModelContext) CurrentPath() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Visible) {
		return ""
	}
	return c.Visible[c.Cursor].Entry.Path
}

func (c *ModelContext) CurrentIsDir() bool {
	if c.Cursor < 0 || c.Cursor >= len(c.Visible) {
		return false
	}
	return c.Visible[c.Cursor].Entry.IsDir
}

func (c *ModelContext) HasClipboard() bool {
	return c.Session != nil && c.Session.Clipboard() != nil
}

func (c *ModelContext) ConfirmDelete() bool {
	return c.Confirm
}

func (c *ModelContext) FilterQuery() string {
	return c.Filter
}

func (c *ModelContext) PathInput() string {
	if c.Session == nil {
		return ""
	}
	return c.Session.PathInput()
}

// RenameName prefers the popup's entry, then the entry under the cursor
func (c *ModelContext) RenameName() string {
	if c.Session != nil {
		if p := c.Session.Popup(); p != nil {
			return filepath.Base(p.Path)
		}
	}
	if path := c.CurrentPath(); path != "" {
		return filepath.Base(path)
	}
	return ""
}
