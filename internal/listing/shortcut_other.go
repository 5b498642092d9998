//go:build !windows

package listing

import "fmt"

// ResolveShortcut always fails: .lnk files are only meaningful to the Windows shell
func ResolveShortcut(path string) (string, error) {
	return "", fmt.Errorf("%s: %w", path, ErrShortcutUnsupported)
}
