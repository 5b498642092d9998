//go:build !windows

package fileops

import (
	"errors"
	"syscall"
)

func crossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
