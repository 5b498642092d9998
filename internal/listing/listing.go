// Package listing reads directories into sorted entries and formats their
// metadata for display.
package listing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"dirhop/internal/domain"
)

// DefaultTimeLayout renders modification times as 2024.03.09 17:05
const DefaultTimeLayout = "2006.01.02 15:04"

// Load reads dir and returns its entries with directories first. Hidden
// entries are dropped unless showHidden is set. Entries whose metadata cannot
// be read are skipped.
func Load(dir string, showHidden bool) ([]domain.FileEntry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	entries := make([]domain.FileEntry, 0, len(des))
	for _, de := range des {
		path := filepath.Join(dir, de.Name())
		info, err := de.Info()
		if err != nil {
			continue
		}
		hidden := isHidden(path, info)
		if hidden && !showHidden {
			continue
		}
		entry := domain.FileEntry{
			Name:     de.Name(),
			Path:     path,
			IsDir:    info.IsDir(),
			Modified: info.ModTime(),
			Hidden:   hidden,
		}
		// Symlinks to directories are browsable like directories.
		if info.Mode()&os.ModeSymlink != 0 {
			if st, err := os.Stat(path); err == nil && st.IsDir() {
				entry.IsDir = true
			}
		}
		if !entry.IsDir {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}

	Sort(entries)
	return entries, nil
}

// Sort orders directories before files, then by case-folded name
func Sort(entries []domain.FileEntry) {
	fold := cases.Fold()
	keys := make(map[string]string, len(entries))
	key := func(name string) string {
		k, ok := keys[name]
		if !ok {
			k = fold.String(name)
			keys[name] = k
		}
		return k
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		ka, kb := key(a.Name), key(b.Name)
		if ka != kb {
			return ka < kb
		}
		return a.Name < b.Name
	})
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with one decimal in binary units, capped at TB
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	v, i := float64(bytes), 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", v, sizeUnits[i])
}

// FormatTime renders t in local time using layout, or DefaultTimeLayout when layout is empty
func FormatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return t.Local().Format(layout)
}

// FormatTimeAgo renders the age of t relative to now with the two largest units
func FormatTimeAgo(t, now time.Time) string {
	secs := int64(now.Sub(t) / time.Second)
	if secs < 0 {
		secs = 0
	}
	years := secs / 31_536_000
	days := (secs % 31_536_000) / 86_400
	hours := (secs % 86_400) / 3_600
	minutes := (secs % 3_600) / 60

	switch {
	case years > 0:
		return fmt.Sprintf("%dy %dd ago", years, days)
	case days > 0:
		return fmt.Sprintf("%dd %dh ago", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm ago", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm ago", minutes)
	default:
		return "Just now"
	}
}

// Shortcut resolution errors
var (
	ErrNoShortcutTarget    = errors.New("shortcut has no target")
	ErrShortcutUnsupported = errors.New("shortcuts cannot be resolved on this platform")
)

// IsShortcut reports whether path names a Windows .lnk shortcut
func IsShortcut(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".lnk")
}
