package browser

import (
	"errors"
	"fmt"
	"path/filepath"

	"dirhop/internal/eventbus"
	"dirhop/internal/fileops"
)

// Popup is the context menu opened on an entry
type Popup struct {
	Path        string
	Renaming    bool
	RenameInput string
	RenameError string
}

// Popup returns the open popup, or nil
func (s *Session) Popup() *Popup { return s.popup }

// OpenPopup opens the context menu for path
func (s *Session) OpenPopup(path string) {
	s.popup = &Popup{Path: path}
}

func (s *Session) ClosePopup() { s.popup = nil }

// PopupPath is the text the popup's "Copy Path" action puts on the system clipboard
func (s *Session) PopupPath() string {
	if s.popup == nil {
		return ""
	}
	return s.popup.Path
}

// StartRename switches the popup into rename mode, prefilled with the entry's name
func (s *Session) StartRename() {
	if s.popup == nil {
		return
	}
	s.popup.Renaming = true
	s.popup.RenameInput = filepath.Base(s.popup.Path)
	s.popup.RenameError = ""
}

// SetRenameInput updates the pending name
func (s *Session) SetRenameInput(name string) {
	if s.popup != nil && s.popup.Renaming {
		s.popup.RenameInput = name
	}
}

// ConfirmRename renames the popup's entry to name. On failure the popup stays
// open with RenameError set. On success the listing is reloaded and the
// renamed entry selected.
func (s *Session) ConfirmRename(name string) {
	if s.popup == nil || !s.popup.Renaming {
		return
	}
	old := s.popup.Path

	newPath, err := fileops.Rename(old, name)
	if err != nil {
		s.log.Debug("rename rejected", "path", old, "name", name, "err", err)
		s.popup.RenameInput = name
		s.popup.RenameError = renameMessage(err)
		return
	}

	s.log.Info("renamed", "from", old, "to", newPath)
	if s.clipboard != nil && s.clipboard.Path == old {
		s.clipboard.Path = newPath
	}
	s.publish(eventbus.EntryRenamedEvent{OldPath: old, NewPath: newPath})
	s.Refresh()
	s.selected = newPath
}

// CancelRename leaves rename mode and keeps the popup open
func (s *Session) CancelRename() {
	if s.popup == nil {
		return
	}
	s.popup.Renaming = false
	s.popup.RenameInput = ""
	s.popup.RenameError = ""
}

func renameMessage(err error) string {
	switch {
	case errors.Is(err, fileops.ErrEmptyName):
		return "Name cannot be empty"
	case errors.Is(err, fileops.ErrDestinationExists):
		return "A file/folder with that name already exists"
	case errors.Is(err, fileops.ErrInvalidName):
		return "Name cannot contain a path separator"
	default:
		return fmt.Sprintf("Error renaming: %v", err)
	}
}
