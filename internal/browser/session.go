// Package browser holds the file manager's session state and the operations
// the front end triggers on it. A Session is not safe for concurrent use; the
// TUI mutates it only from its update loop.
package browser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dirhop/internal/deletion"
	"dirhop/internal/domain"
	"dirhop/internal/eventbus"
	"dirhop/internal/history"
	"dirhop/internal/listing"
	"dirhop/internal/logging"
)

// User-visible error messages
const (
	MsgInvalidPath      = "Invalid directory path"
	MsgShortcutNotFound = "Could not resolve shortcut"
)

// Deleter removes a target, escalating privileges if needed
type Deleter interface {
	Delete(ctx context.Context, target deletion.Target) deletion.Outcome
}

// Options configures a new Session
type Options struct {
	StartDir   string // empty means the working directory
	ShowHidden bool
	MaxHistory int
	Deleter    Deleter
	Bus        eventbus.EventBus // optional
	Logger     *logging.Logger

	// HomeDir overrides os.UserHomeDir
	HomeDir func() (string, error)
	// Now overrides time.Now for the listing timestamp
	Now func() time.Time
	// ResolveShortcut overrides listing.ResolveShortcut
	ResolveShortcut func(path string) (string, error)
}

// listingCache is the last successful directory read
type listingCache struct {
	dir      string
	entries  []domain.FileEntry
	loadedAt time.Time
}

// Session is the state of one browsing session
type Session struct {
	history *history.History
	deleter Deleter
	bus     eventbus.EventBus
	log     *logging.Logger
	homeDir func() (string, error)
	now     func() time.Time
	resolve func(path string) (string, error)

	pathInput  string
	cache      *listingCache
	selected   string
	clipboard  *domain.ClipboardItem
	err        string
	showHidden bool
	scroll     float64
	loading    bool
	deleting   bool
	popup      *Popup
}

// New creates a session positioned at opts.StartDir and loads its listing.
// A listing failure is reported through ErrorMessage, not returned.
func New(opts Options) (*Session, error) {
	start := opts.StartDir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}

	s := &Session{
		history:    history.New(start, opts.MaxHistory),
		deleter:    opts.Deleter,
		bus:        opts.Bus,
		log:        opts.Logger,
		homeDir:    opts.HomeDir,
		now:        opts.Now,
		resolve:    opts.ResolveShortcut,
		pathInput:  start,
		showHidden: opts.ShowHidden,
	}
	if s.deleter == nil {
		s.deleter = deletion.New()
	}
	if s.log == nil {
		s.log = logging.Get()
	}
	s.log = s.log.With("component", "browser")
	if s.homeDir == nil {
		s.homeDir = os.UserHomeDir
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.resolve == nil {
		s.resolve = listing.ResolveShortcut
	}

	s.Refresh()
	return s, nil
}

// Dir is the directory being shown
func (s *Session) Dir() string { return s.history.Current().Path }

// PathInput is the text of the address bar
func (s *Session) PathInput() string { return s.pathInput }

// SetPathInput replaces the address bar text without navigating
func (s *Session) SetPathInput(text string) { s.pathInput = text }

// Entries returns the cached listing, or nil when the last load failed
func (s *Session) Entries() []domain.FileEntry {
	if s.cache == nil {
		return nil
	}
	return s.cache.entries
}

// LoadedAt is when the cached listing was read
func (s *Session) LoadedAt() time.Time {
	if s.cache == nil {
		return time.Time{}
	}
	return s.cache.loadedAt
}

func (s *Session) Selected() string                 { return s.selected }
func (s *Session) Clipboard() *domain.ClipboardItem { return s.clipboard }
func (s *Session) ErrorMessage() string             { return s.err }
func (s *Session) ShowHidden() bool                 { return s.showHidden }
func (s *Session) Scroll() float64                  { return s.scroll }
func (s *Session) Loading() bool                    { return s.loading }
func (s *Session) Deleting() bool                   { return s.deleting }
func (s *Session) CanGoBack() bool                  { return s.history.CanGoBack() }
func (s *Session) CanGoForward() bool               { return s.history.CanGoForward() }

// History exposes the navigation history for read-only inspection
func (s *Session) History() []history.Entry { return s.history.Entries() }

// VisitedPaths lists visited directories, oldest first
func (s *Session) VisitedPaths() []string { return s.history.VisitedPaths() }

// SetError shows message in the status line
func (s *Session) SetError(message string) {
	s.err = message
	if message != "" {
		s.publish(eventbus.ErrorEvent{Message: message})
	}
}

// ClearError hides the status line error
func (s *Session) ClearError() { s.err = "" }

// NavigateTo remembers the scroll of the current directory, moves to path and loads it
func (s *Session) NavigateTo(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	from := s.Dir()

	s.history.UpdateCurrentScroll(s.scroll)
	s.history.NavigateTo(path)
	s.pathInput = s.Dir()

	if from != s.Dir() {
		s.log.Debug("navigate", "from", from, "to", s.Dir())
		s.publish(eventbus.DirectoryChangedEvent{From: from, To: s.Dir()})
	}
	s.Refresh()
}

// SubmitPath navigates to the address bar text if it names a directory
func (s *Session) SubmitPath() {
	input := s.expandHome(strings.TrimSpace(s.pathInput))
	info, err := os.Stat(input)
	if input == "" || err != nil || !info.IsDir() {
		s.SetError(MsgInvalidPath)
		return
	}
	s.NavigateTo(input)
}

// expandHome replaces a leading "~" or "~/" with the home directory. Other
// users' homes ("~name") are left alone.
func (s *Session) expandHome(input string) string {
	if input != "~" && !strings.HasPrefix(input, "~/") && !strings.HasPrefix(input, "~"+string(filepath.Separator)) {
		return input
	}
	home, err := s.homeDir()
	if err != nil {
		return input
	}
	return filepath.Join(home, input[1:])
}

// Up moves to the parent directory. At a filesystem root it does nothing.
func (s *Session) Up() {
	s.popup = nil
	parent := filepath.Dir(s.Dir())
	if parent == s.Dir() {
		return
	}
	s.NavigateTo(parent)
}

// Home moves to the user's home directory
func (s *Session) Home() {
	home, err := s.homeDir()
	if err != nil {
		s.log.Warn("home directory unavailable", "err", err)
		return
	}
	s.NavigateTo(home)
}

// Back travels one step back in history
func (s *Session) Back() {
	s.travel(s.history.Back)
}

// Forward travels one step forward in history
func (s *Session) Forward() {
	s.travel(s.history.Forward)
}

func (s *Session) travel(step func() (history.Entry, bool)) {
	from := s.Dir()
	s.history.UpdateCurrentScroll(s.scroll)
	entry, ok := step()
	if !ok {
		return
	}
	s.pathInput = entry.Path
	s.publish(eventbus.DirectoryChangedEvent{From: from, To: entry.Path})
	s.Refresh()
}

// Refresh drops transient state and reloads the current directory. On
// success the scroll offset is restored from history.
func (s *Session) Refresh() {
	s.popup = nil
	s.selected = ""
	s.err = ""
	s.scroll = 0
	s.load()
}

func (s *Session) load() {
	dir := s.Dir()
	s.cache = nil
	s.loading = true

	var (
		entries []domain.FileEntry
		err     error
	)
	logging.Time("load directory", func() {
		entries, err = listing.Load(dir, s.showHidden)
	}, "path", dir)
	s.loading = false

	if err != nil {
		s.log.Warn("directory load failed", "path", dir, "err", err)
		s.SetError(err.Error())
		return
	}

	s.cache = &listingCache{dir: dir, entries: entries, loadedAt: s.now()}
	s.scroll = s.history.CurrentScroll()
	s.publish(eventbus.DirectoryLoadedEvent{Path: dir, Entries: len(entries)})
}

// ToggleHidden flips hidden-file visibility and reloads
func (s *Session) ToggleHidden() {
	s.showHidden = !s.showHidden
	s.publish(eventbus.ConfigChangedEvent{ShowHidden: s.showHidden})
	s.Refresh()
}

// SetScroll records the viewport offset for the current directory
func (s *Session) SetScroll(offset float64) {
	s.popup = nil
	s.scroll = offset
	s.history.UpdateCurrentScroll(offset)
}

// Select marks path as the selected entry without activating it
func (s *Session) Select(path string) {
	s.selected = path
}

// Click selects path, or activates it when it is already selected
func (s *Session) Click(path string) {
	s.popup = nil
	if s.selected == path {
		s.Activate(path)
		return
	}
	s.selected = path
}

// Activate opens path: directories are entered, shortcuts are followed and
// anything else is deselected
func (s *Session) Activate(path string) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		s.NavigateTo(path)
		return
	}
	if listing.IsShortcut(path) {
		s.followShortcut(path)
		return
	}
	s.selected = ""
}

// followShortcut enters a shortcut's target directory. A file target is
// selected inside its own directory.
func (s *Session) followShortcut(path string) {
	target, err := s.resolve(path)
	if err == nil {
		var info os.FileInfo
		if info, err = os.Stat(target); err == nil {
			if info.IsDir() {
				s.NavigateTo(target)
			} else {
				s.NavigateTo(filepath.Dir(target))
				s.selected = target
			}
			return
		}
	}
	s.log.Warn("shortcut resolution failed", "path", path, "err", err)
	s.SetError(MsgShortcutNotFound)
}

func (s *Session) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
