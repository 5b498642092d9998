//go:build !windows

package listing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveShortcutUnsupported(t *testing.T) {
	lnk := filepath.Join(t.TempDir(), "Docs.lnk")
	require.NoError(t, os.WriteFile(lnk, nil, 0o644))

	target, err := ResolveShortcut(lnk)
	assert.Empty(t, target)
	assert.ErrorIs(t, err, ErrShortcutUnsupported)
	assert.Contains(t, err.Error(), lnk)
}
