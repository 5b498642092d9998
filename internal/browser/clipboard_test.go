package browser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirhop/internal/domain"
	"dirhop/internal/eventbus"
)

func TestCopyCutNeedSelection(t *testing.T) {
	f := newFixture(t)

	f.s.Copy()
	f.s.Cut()
	assert.Nil(t, f.s.Clipboard())
	assert.Empty(t, f.bus.ofType(eventbus.EventClipboardChanged))
}

func TestCopyPaste(t *testing.T) {
	f := newFixture(t)
	f.s.Select(f.path("notes.txt"))
	f.s.OpenPopup(f.path("notes.txt"))

	f.s.Copy()
	assert.Equal(t, &domain.ClipboardItem{Path: f.path("notes.txt")}, f.s.Clipboard())
	assert.Nil(t, f.s.Popup())

	f.s.NavigateTo(f.path("beta"))
	f.s.Paste()
	assert.Empty(t, f.s.ErrorMessage())
	assert.FileExists(t, f.path("beta", "notes.txt"))
	assert.FileExists(t, f.path("notes.txt"))
	assert.Equal(t, []string{"notes.txt"}, entryNames(f.s))
	assert.NotNil(t, f.s.Clipboard(), "a copied item can be pasted again")

	pasted := f.bus.ofType(eventbus.EventPasteCompleted)
	require.Len(t, pasted, 1)
	assert.Equal(t, eventbus.PasteCompletedEvent{
		Source:      f.path("notes.txt"),
		Destination: f.path("beta", "notes.txt"),
	}, pasted[0])
}

func TestCopyPasteIntoSameDirectory(t *testing.T) {
	f := newFixture(t)
	f.s.Select(f.path("notes.txt"))
	f.s.Copy()

	f.s.Paste()
	f.s.Paste()
	assert.Empty(t, f.s.ErrorMessage())
	assert.FileExists(t, f.path("notes copy.txt"))
	assert.FileExists(t, f.path("notes copy 2.txt"))
}

func TestCutPaste(t *testing.T) {
	f := newFixture(t)
	f.s.Select(f.path("alpha"))
	f.s.Cut()
	assert.True(t, f.s.Clipboard().Cut)

	f.s.NavigateTo(f.path("beta"))
	f.s.Paste()
	assert.Empty(t, f.s.ErrorMessage())
	assert.DirExists(t, f.path("beta", "alpha", "inner"))
	assert.NoDirExists(t, f.path("alpha"))
	assert.Nil(t, f.s.Clipboard())

	pasted := f.bus.ofType(eventbus.EventPasteCompleted)
	require.Len(t, pasted, 1)
	assert.True(t, pasted[0].(eventbus.PasteCompletedEvent).Moved)
}

func TestPasteErrors(t *testing.T) {
	t.Run("cut into same directory", func(t *testing.T) {
		f := newFixture(t)
		f.s.Select(f.path("notes.txt"))
		f.s.Cut()

		f.s.Paste()
		assert.Contains(t, f.s.ErrorMessage(), "Error moving file: ")
		assert.FileExists(t, f.path("notes.txt"))
		assert.NotNil(t, f.s.Clipboard(), "failed move keeps the clipboard")
	})

	t.Run("copy onto existing name", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, os.WriteFile(f.path("beta", "notes.txt"), []byte("mine"), 0o644))
		f.s.Select(f.path("notes.txt"))
		f.s.Copy()

		f.s.NavigateTo(f.path("beta"))
		f.s.Paste()
		assert.Contains(t, f.s.ErrorMessage(), "Error copying file: ")
		data, err := os.ReadFile(f.path("beta", "notes.txt"))
		require.NoError(t, err)
		assert.Equal(t, "mine", string(data))
	})

	t.Run("source vanished", func(t *testing.T) {
		f := newFixture(t)
		f.s.Select(f.path("notes.txt"))
		f.s.Copy()
		require.NoError(t, os.Remove(f.path("notes.txt")))

		f.s.NavigateTo(f.path("beta"))
		f.s.Paste()
		assert.Contains(t, f.s.ErrorMessage(), "Error copying file: ")
	})
}

func TestPasteWithEmptyClipboard(t *testing.T) {
	f := newFixture(t)
	f.s.Select(f.path("notes.txt"))

	f.s.Paste()
	assert.Equal(t, f.path("notes.txt"), f.s.Selected(), "nothing reloaded")
}

func TestClearClipboard(t *testing.T) {
	f := newFixture(t)
	f.s.Select(f.path("notes.txt"))
	f.s.Copy()

	f.s.ClearClipboard()
	assert.Nil(t, f.s.Clipboard())
	assert.Len(t, f.bus.ofType(eventbus.EventClipboardChanged), 2)
}
