package browser

import (
	"context"
	"fmt"
	"os"

	"dirhop/internal/deletion"
	"dirhop/internal/domain"
	"dirhop/internal/eventbus"
)

// BeginDelete prepares deletion of the selected entry. It returns false when
// nothing is selected or another delete is still running.
func (s *Session) BeginDelete() (deletion.Target, bool) {
	if s.selected == "" || s.deleting {
		return deletion.Target{}, false
	}
	s.popup = nil
	s.err = ""

	// Lstat so a symlink to a directory removes the link, not the tree behind it.
	info, err := os.Lstat(s.selected)
	target := deletion.Target{Path: s.selected, IsDir: err == nil && info.IsDir()}
	s.deleting = true
	return target, true
}

// FinishDelete applies a delete outcome. A failure only sets the error; a
// success clears the selection and reloads.
func (s *Session) FinishDelete(target deletion.Target, out deletion.Outcome) {
	s.deleting = false

	if !out.Removed {
		s.SetError(fmt.Sprintf("Error deleting %s: %s", domain.Kind(target.IsDir), out.Reason))
		s.publish(eventbus.DeleteFailedEvent{Path: target.Path, IsDir: target.IsDir, Reason: out.Reason})
		return
	}

	if s.clipboard != nil && s.clipboard.Path == target.Path {
		s.ClearClipboard()
	}
	s.publish(eventbus.EntryDeletedEvent{Path: target.Path, IsDir: target.IsDir, Stage: out.Stage})
	s.selected = ""
	s.Refresh()
}

// Delete removes the selected entry synchronously
func (s *Session) Delete(ctx context.Context) {
	target, ok := s.BeginDelete()
	if !ok {
		return
	}
	s.FinishDelete(target, s.deleter.Delete(ctx, target))
}

// Deleter returns the deleter the session uses, so a caller can run it off the UI goroutine
func (s *Session) Deleter() Deleter { return s.deleter }
