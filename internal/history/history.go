// Package history keeps the back/forward list of visited directories. Each
// entry remembers how far the listing was scrolled when the user left it.
package history

import "path/filepath"

// DefaultMaxEntries bounds the history when no explicit size is configured
const DefaultMaxEntries = 50

// Entry is one visited directory
type Entry struct {
	Path   string
	Scroll float64
}

// History is a bounded visit list with a cursor. It is never empty and
// no two consecutive entries share a path.
type History struct {
	entries    []Entry
	cursor     int
	maxEntries int
}

// New seeds the history with initial. A non-positive maxEntries selects DefaultMaxEntries.
func New(initial string, maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		entries:    []Entry{{Path: clean(initial)}},
		maxEntries: maxEntries,
	}
}

// NavigateTo records a visit to path. Revisiting the current directory is a
// no-op. Forward entries are discarded, and the new entry inherits the scroll
// of the most recent earlier visit to the same path.
func (h *History) NavigateTo(path string) {
	path = clean(path)
	if h.entries[h.cursor].Path == path {
		return
	}

	// Look up before truncating so forward entries still count as visits.
	scroll := h.rememberedScroll(path)

	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, Entry{Path: path, Scroll: scroll})

	if over := len(h.entries) - h.maxEntries; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.cursor = len(h.entries) - 1
}

func (h *History) rememberedScroll(path string) float64 {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].Path == path {
			return h.entries[i].Scroll
		}
	}
	return 0
}

// UpdateCurrentScroll stores offset on the entry under the cursor
func (h *History) UpdateCurrentScroll(offset float64) {
	h.entries[h.cursor].Scroll = offset
}

// Back moves the cursor one step toward older entries
func (h *History) Back() (Entry, bool) {
	if !h.CanGoBack() {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Forward moves the cursor one step toward newer entries
func (h *History) Forward() (Entry, bool) {
	if !h.CanGoForward() {
		return Entry{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func (h *History) CanGoBack() bool    { return h.cursor > 0 }
func (h *History) CanGoForward() bool { return h.cursor+1 < len(h.entries) }

// CurrentScroll is the scroll offset stored on the entry under the cursor
func (h *History) CurrentScroll() float64 { return h.entries[h.cursor].Scroll }

// Current returns the entry under the cursor
func (h *History) Current() Entry { return h.entries[h.cursor] }

func (h *History) Len() int    { return len(h.entries) }
func (h *History) Cursor() int { return h.cursor }

// VisitedPaths lists paths oldest first with consecutive repeats collapsed
func (h *History) VisitedPaths() []string {
	paths := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		if n := len(paths); n > 0 && paths[n-1] == e.Path {
			continue
		}
		paths = append(paths, e.Path)
	}
	return paths
}

// Entries returns a copy of the list, oldest first
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func clean(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}
