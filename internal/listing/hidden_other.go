//go:build !windows

package listing

import (
	"io/fs"
	"path/filepath"
	"strings"
)

func isHidden(path string, _ fs.FileInfo) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
