//go:build windows

package listing

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitializeEx when COM is already initialised on
// the thread. It still needs a matching CoUninitialize.
const sFalse = 1

// ResolveShortcut returns the target of a .lnk file through the shell's
// WScript.Shell automation object
func ResolveShortcut(path string) (string, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return "", fmt.Errorf("initializing COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return "", fmt.Errorf("creating shell object: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return "", fmt.Errorf("querying shell dispatch: %w", err)
	}
	defer shell.Release()

	res, err := oleutil.CallMethod(shell, "CreateShortcut", path)
	if err != nil {
		return "", fmt.Errorf("opening shortcut %s: %w", path, err)
	}
	link := res.ToIDispatch()
	defer link.Release()

	target, err := oleutil.GetProperty(link, "TargetPath")
	if err != nil {
		return "", fmt.Errorf("reading shortcut target %s: %w", path, err)
	}
	defer target.Clear()

	if t := target.ToString(); t != "" {
		return t, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrNoShortcutTarget)
}
