package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// FileEntry is a single row of a directory listing
type FileEntry struct {
	Name     string
	Path     string
	IsDir    bool
	Size     int64
	Modified time.Time
	Hidden   bool
}

// Ext returns the lower-cased extension without the dot, or "" for directories
func (e FileEntry) Ext() string {
	if e.IsDir {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name), "."))
}

// ClipboardItem is an entry staged for paste. Cut items are moved instead of copied.
type ClipboardItem struct {
	Path string
	Cut  bool
}

// Kind is "folder" for directories and "file" otherwise
func Kind(isDir bool) string {
	if isDir {
		return "folder"
	}
	return "file"
}
