package browser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirhop/internal/deletion"
	"dirhop/internal/eventbus"
	"dirhop/internal/logging"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *recordingBus) Close()                                                      {}

func (b *recordingBus) ofType(t eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// fakeDeleter records targets and either removes them or reports a failure
type fakeDeleter struct {
	calls  []deletion.Target
	refuse bool
}

func (d *fakeDeleter) Delete(_ context.Context, t deletion.Target) deletion.Outcome {
	d.calls = append(d.calls, t)
	if d.refuse {
		return deletion.Outcome{
			Target: t,
			Reason: t.Path + " still exists after all deletion attempts (plain: permission denied)",
		}
	}
	if err := os.RemoveAll(t.Path); err != nil {
		return deletion.Outcome{Target: t, Reason: err.Error()}
	}
	return deletion.Outcome{Target: t, Removed: true, Stage: deletion.StagePlain}
}

type fixture struct {
	root    string
	home    string
	bus     *recordingBus
	deleter *fakeDeleter
	s       *Session
}

// newFixture builds root/{alpha/{inner},beta,notes.txt,.hidden} and a session at root
func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "alpha", "inner"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "beta"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("h"), 0o644))

	f := &fixture{root: root, home: home, bus: &recordingBus{}, deleter: &fakeDeleter{}}
	s, err := New(Options{
		StartDir: root,
		Deleter:  f.deleter,
		Bus:      f.bus,
		Logger:   logging.Nop(),
		HomeDir:  func() (string, error) { return home, nil },
		Now:      func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	f.s = s
	return f
}

func (f *fixture) path(parts ...string) string {
	return filepath.Join(append([]string{f.root}, parts...)...)
}

func entryNames(s *Session) []string {
	var out []string
	for _, e := range s.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func TestNewLoadsStartDirectory(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, f.root, f.s.Dir())
	assert.Equal(t, f.root, f.s.PathInput())
	assert.Equal(t, []string{"alpha", "beta", "notes.txt"}, entryNames(f.s))
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), f.s.LoadedAt())
	assert.False(t, f.s.Loading())
	assert.False(t, f.s.CanGoBack())
	assert.Empty(t, f.s.ErrorMessage())
	assert.Len(t, f.bus.ofType(eventbus.EventDirectoryLoaded), 1)
}

func TestNewMissingStartDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	s, err := New(Options{StartDir: missing, Deleter: &fakeDeleter{}, Logger: logging.Nop()})
	require.NoError(t, err)

	assert.Nil(t, s.Entries())
	assert.Contains(t, s.ErrorMessage(), "reading directory")
}

func TestNavigateAndTravel(t *testing.T) {
	f := newFixture(t)

	f.s.NavigateTo(f.path("alpha"))
	assert.Equal(t, f.path("alpha"), f.s.Dir())
	assert.Equal(t, f.path("alpha"), f.s.PathInput())
	assert.Equal(t, []string{"inner"}, entryNames(f.s))
	assert.True(t, f.s.CanGoBack())

	f.s.SetScroll(42)
	f.s.Back()
	assert.Equal(t, f.root, f.s.Dir())
	assert.Equal(t, 0.0, f.s.Scroll())
	assert.True(t, f.s.CanGoForward())

	f.s.Forward()
	assert.Equal(t, f.path("alpha"), f.s.Dir())
	assert.Equal(t, 42.0, f.s.Scroll(), "scroll restored after the listing loads")

	changes := f.bus.ofType(eventbus.EventDirectoryChanged)
	require.Len(t, changes, 3)
	assert.Equal(t, eventbus.DirectoryChangedEvent{From: f.root, To: f.path("alpha")}, changes[0])
}

func TestNavigateStoresScrollBeforeLeaving(t *testing.T) {
	f := newFixture(t)

	f.s.SetScroll(7)
	f.s.NavigateTo(f.path("beta"))
	assert.Equal(t, 0.0, f.s.Scroll())

	f.s.Back()
	assert.Equal(t, 7.0, f.s.Scroll())
}

func TestNavigateToRevisitedDirectoryRestoresScroll(t *testing.T) {
	f := newFixture(t)

	f.s.NavigateTo(f.path("alpha"))
	f.s.SetScroll(15)
	f.s.NavigateTo(f.path("beta"))
	f.s.NavigateTo(f.path("alpha"))
	assert.Equal(t, 15.0, f.s.Scroll())
}

func TestNavigateToCurrentDirectoryKeepsHistory(t *testing.T) {
	f := newFixture(t)

	f.s.NavigateTo(f.root + string(filepath.Separator))
	assert.Len(t, f.s.History(), 1)
	assert.Empty(t, f.bus.ofType(eventbus.EventDirectoryChanged))
}

func TestBackForwardAtBoundaries(t *testing.T) {
	f := newFixture(t)
	f.s.Select(f.path("notes.txt"))

	f.s.Back()
	f.s.Forward()
	assert.Equal(t, f.root, f.s.Dir())
	assert.Equal(t, f.path("notes.txt"), f.s.Selected(), "no reload at a boundary")
}

func TestBranchingDropsForwardHistory(t *testing.T) {
	f := newFixture(t)

	f.s.NavigateTo(f.path("alpha"))
	f.s.Back()
	f.s.NavigateTo(f.path("beta"))
	assert.False(t, f.s.CanGoForward())
	assert.Equal(t, []string{f.root, f.path("beta")}, f.s.VisitedPaths())
}

func TestSubmitPath(t *testing.T) {
	tests := []struct {
		name    string
		input   func(f *fixture) string
		wantDir func(f *fixture) string
		wantErr string
	}{
		{
			name:    "existing directory",
			input:   func(f *fixture) string { return f.path("beta") },
			wantDir: func(f *fixture) string { return f.path("beta") },
		},
		{
			name:    "surrounding whitespace",
			input:   func(f *fixture) string { return "  " + f.path("alpha") + " " },
			wantDir: func(f *fixture) string { return f.path("alpha") },
		},
		{
			name:    "tilde",
			input:   func(f *fixture) string { return "~" },
			wantDir: func(f *fixture) string { return f.home },
		},
		{
			name: "tilde subdirectory",
			input: func(f *fixture) string {
				require.NoError(t, os.Mkdir(filepath.Join(f.home, "docs"), 0o755))
				return "~/docs"
			},
			wantDir: func(f *fixture) string { return filepath.Join(f.home, "docs") },
		},
		{
			name: "tilde user form is not expanded",
			input: func(f *fixture) string {
				require.NoError(t, os.Mkdir(filepath.Join(f.home, "docs"), 0o755))
				return "~docs"
			},
			wantDir: func(f *fixture) string { return f.root },
			wantErr: MsgInvalidPath,
		},
		{
			name:    "file",
			input:   func(f *fixture) string { return f.path("notes.txt") },
			wantDir: func(f *fixture) string { return f.root },
			wantErr: MsgInvalidPath,
		},
		{
			name:    "missing",
			input:   func(f *fixture) string { return f.path("nope") },
			wantDir: func(f *fixture) string { return f.root },
			wantErr: MsgInvalidPath,
		},
		{
			name:    "empty",
			input:   func(f *fixture) string { return "" },
			wantDir: func(f *fixture) string { return f.root },
			wantErr: MsgInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.s.SetPathInput(tt.input(f))
			f.s.SubmitPath()

			assert.Equal(t, tt.wantDir(f), f.s.Dir())
			assert.Equal(t, tt.wantErr, f.s.ErrorMessage())
		})
	}
}

func TestUpAndHome(t *testing.T) {
	f := newFixture(t)

	f.s.NavigateTo(f.path("alpha", "inner"))
	f.s.Up()
	assert.Equal(t, f.path("alpha"), f.s.Dir())

	f.s.Home()
	assert.Equal(t, f.home, f.s.Dir())
}

func TestUpAtRootDoesNothing(t *testing.T) {
	root := filepath.VolumeName(os.TempDir()) + string(filepath.Separator)
	s, err := New(Options{StartDir: root, Deleter: &fakeDeleter{}, Logger: logging.Nop()})
	require.NoError(t, err)

	s.Up()
	assert.Equal(t, root, s.Dir())
	assert.Len(t, s.History(), 1)
}

func TestHomeUnavailable(t *testing.T) {
	f := newFixture(t)
	f.s.homeDir = func() (string, error) { return "", errors.New("no home") }

	f.s.Home()
	assert.Equal(t, f.root, f.s.Dir())
	assert.Empty(t, f.s.ErrorMessage())
}

func TestRefreshClearsTransientState(t *testing.T) {
	f := newFixture(t)
	f.s.Select(f.path("notes.txt"))
	f.s.OpenPopup(f.path("notes.txt"))
	f.s.SetError("stale")
	require.NoError(t, os.WriteFile(f.path("new.txt"), nil, 0o644))

	f.s.Refresh()
	assert.Empty(t, f.s.Selected())
	assert.Nil(t, f.s.Popup())
	assert.Empty(t, f.s.ErrorMessage())
	assert.Contains(t, entryNames(f.s), "new.txt")
}

func TestRefreshOfRemovedDirectory(t *testing.T) {
	f := newFixture(t)
	f.s.NavigateTo(f.path("beta"))
	require.NoError(t, os.Remove(f.path("beta")))

	f.s.Refresh()
	assert.Nil(t, f.s.Entries())
	assert.Contains(t, f.s.ErrorMessage(), "reading directory")
	assert.NotEmpty(t, f.bus.ofType(eventbus.EventError))
}

func TestToggleHidden(t *testing.T) {
	f := newFixture(t)

	f.s.ToggleHidden()
	assert.True(t, f.s.ShowHidden())
	assert.Contains(t, entryNames(f.s), ".hidden")

	f.s.ToggleHidden()
	assert.NotContains(t, entryNames(f.s), ".hidden")

	changed := f.bus.ofType(eventbus.EventConfigChanged)
	require.Len(t, changed, 2)
	assert.Equal(t, eventbus.ConfigChangedEvent{ShowHidden: true}, changed[0])
}

func TestSetScrollClosesPopup(t *testing.T) {
	f := newFixture(t)
	f.s.OpenPopup(f.path("notes.txt"))

	f.s.SetScroll(3.5)
	assert.Nil(t, f.s.Popup())
	assert.Equal(t, 3.5, f.s.Scroll())
	assert.Equal(t, 3.5, f.s.History()[0].Scroll)
}

func TestClick(t *testing.T) {
	t.Run("first click selects, second enters directory", func(t *testing.T) {
		f := newFixture(t)
		f.s.Click(f.path("alpha"))
		assert.Equal(t, f.path("alpha"), f.s.Selected())
		assert.Equal(t, f.root, f.s.Dir())

		f.s.Click(f.path("alpha"))
		assert.Equal(t, f.path("alpha"), f.s.Dir())
		assert.Empty(t, f.s.Selected())
	})

	t.Run("second click on a file deselects", func(t *testing.T) {
		f := newFixture(t)
		f.s.Click(f.path("notes.txt"))
		f.s.Click(f.path("notes.txt"))
		assert.Empty(t, f.s.Selected())
		assert.Equal(t, f.root, f.s.Dir())
	})

	t.Run("click closes popup", func(t *testing.T) {
		f := newFixture(t)
		f.s.OpenPopup(f.path("beta"))
		f.s.Click(f.path("notes.txt"))
		assert.Nil(t, f.s.Popup())
	})

	t.Run("shortcut", func(t *testing.T) {
		f := newFixture(t)
		lnk := f.path("Docs.LNK")
		require.NoError(t, os.WriteFile(lnk, nil, 0o644))
		f.s.Refresh()

		f.s.Click(lnk)
		f.s.Click(lnk)
		assert.Equal(t, MsgShortcutNotFound, f.s.ErrorMessage())
		assert.Equal(t, f.root, f.s.Dir())
	})
}

func TestActivateShortcut(t *testing.T) {
	tests := []struct {
		name       string
		target     func(f *fixture) string
		resolveErr error
		wantDir    func(f *fixture) string
		wantSel    func(f *fixture) string
		wantErr    string
	}{
		{
			name:    "directory target is entered",
			target:  func(f *fixture) string { return f.path("alpha", "inner") },
			wantDir: func(f *fixture) string { return f.path("alpha", "inner") },
			wantSel: func(*fixture) string { return "" },
		},
		{
			name:    "file target is selected in its folder",
			target:  func(f *fixture) string { return f.path("notes.txt") },
			wantDir: func(f *fixture) string { return f.root },
			wantSel: func(f *fixture) string { return f.path("notes.txt") },
		},
		{
			name:    "missing target",
			target:  func(f *fixture) string { return f.path("gone") },
			wantDir: func(f *fixture) string { return f.root },
			wantSel: func(*fixture) string { return "" },
			wantErr: MsgShortcutNotFound,
		},
		{
			name:       "resolver failure",
			target:     func(*fixture) string { return "" },
			resolveErr: errors.New("broken link"),
			wantDir:    func(f *fixture) string { return f.root },
			wantSel:    func(*fixture) string { return "" },
			wantErr:    MsgShortcutNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			lnk := f.path("Link.lnk")
			require.NoError(t, os.WriteFile(lnk, nil, 0o644))
			f.s.resolve = func(path string) (string, error) {
				assert.Equal(t, lnk, path)
				return tt.target(f), tt.resolveErr
			}

			f.s.Activate(lnk)

			assert.Equal(t, tt.wantDir(f), f.s.Dir())
			assert.Equal(t, tt.wantSel(f), f.s.Selected())
			assert.Equal(t, tt.wantErr, f.s.ErrorMessage())
		})
	}
}
