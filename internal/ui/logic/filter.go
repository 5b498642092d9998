package logic

import (
	"github.com/sahilm/fuzzy"

	"dirhop/internal/domain"
)

// Match is a listing entry that survived the filter. Indexes are the
// positions of the matched characters in the entry's name.
type Match struct {
	Entry   domain.FileEntry
	Indexes []int
}

type entrySource []domain.FileEntry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// FilterEntries fuzzy-matches query against entry names. An empty query keeps
// the listing order; otherwise the best matches come first.
func FilterEntries(entries []domain.FileEntry, query string) []Match {
	if query == "" {
		out := make([]Match, len(entries))
		for i, e := range entries {
			out[i] = Match{Entry: e}
		}
		return out
	}

	found := fuzzy.FindFrom(query, entrySource(entries))
	out := make([]Match, 0, len(found))
	for _, f := range found {
		out = append(out, Match{Entry: entries[f.Index], Indexes: f.MatchedIndexes})
	}
	return out
}

// IndexOf returns the position of path in matches, or -1
func IndexOf(matches []Match, path string) int {
	for i, m := range matches {
		if m.Entry.Path == path {
			return i
		}
	}
	return -1
}
