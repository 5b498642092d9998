package browser

import (
	"fmt"

	"dirhop/internal/domain"
	"dirhop/internal/eventbus"
	"dirhop/internal/fileops"
)

// Copy stages the selection for a copying paste
func (s *Session) Copy() { s.stage(false) }

// Cut stages the selection for a moving paste
func (s *Session) Cut() { s.stage(true) }

func (s *Session) stage(cut bool) {
	if s.selected == "" {
		return
	}
	s.clipboard = &domain.ClipboardItem{Path: s.selected, Cut: cut}
	s.popup = nil
	s.publish(eventbus.ClipboardChangedEvent{Item: s.clipboard})
}

// Paste copies or moves the clipboard item into the current directory. A
// cut item leaves the clipboard once it has been moved.
func (s *Session) Paste() {
	item := s.clipboard
	if item == nil {
		return
	}

	verb, op := "copying", fileops.Copy
	if item.Cut {
		verb, op = "moving", fileops.Move
	}

	dst, err := fileops.PasteTarget(s.Dir(), item.Path, item.Cut)
	if err == nil {
		err = op(item.Path, dst)
	}
	if err != nil {
		s.log.Warn("paste failed", "src", item.Path, "dir", s.Dir(), "cut", item.Cut, "err", err)
		s.SetError(fmt.Sprintf("Error %s file: %v", verb, err))
		return
	}

	s.log.Info("pasted", "src", item.Path, "dst", dst, "cut", item.Cut)
	if item.Cut {
		s.clipboard = nil
		s.publish(eventbus.ClipboardChangedEvent{})
	}
	s.publish(eventbus.PasteCompletedEvent{Source: item.Path, Destination: dst, Moved: item.Cut})
	s.Refresh()
}

// ClearClipboard drops the staged item
func (s *Session) ClearClipboard() {
	if s.clipboard == nil {
		return
	}
	s.clipboard = nil
	s.publish(eventbus.ClipboardChangedEvent{})
}
