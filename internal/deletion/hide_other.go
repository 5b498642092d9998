//go:build !windows

package deletion

import "os/exec"

func hideWindow(*exec.Cmd) {}
