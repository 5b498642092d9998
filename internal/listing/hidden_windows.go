//go:build windows

package listing

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/windows"
)

func isHidden(_ string, info fs.FileInfo) bool {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}
	return attrs.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
