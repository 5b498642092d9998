//go:build windows

package deletion

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// Platform returns the UAC-based remover
func Platform() PrivilegedRemover {
	return NewWindowsRemover(ExecRunner{})
}

func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}

// CanElevate reports whether the process may request elevation. On Windows
// that is always true; UAC decides.
func CanElevate() bool { return true }

// IsElevated reports whether the process token is already elevated
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
