package deletion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its combined output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to Runner
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}

// ExecRunner runs commands as hidden child processes
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	// Elevation helpers must never wait on our terminal for a password.
	cmd.Stdin = nil

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out.Bytes(), fmt.Errorf("%s: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(out.String())
			if msg == "" {
				return out.Bytes(), fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode())
			}
			return out.Bytes(), fmt.Errorf("%s exited with status %d: %s", name, exitErr.ExitCode(), msg)
		}
		return out.Bytes(), fmt.Errorf("starting %s: %w", name, err)
	}
	return out.Bytes(), nil
}

// runScript writes body to a fresh temp file and runs the command built from
// its path. The file is removed afterwards whatever happened.
func runScript(ctx context.Context, r Runner, dir, pattern, body string, build func(script string) (string, []string)) error {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return fmt.Errorf("creating script: %w", err)
	}
	script := f.Name()
	defer func() { _ = os.Remove(script) }()

	if _, err := f.WriteString(body); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing script: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}
	if err := os.Chmod(script, 0o700); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}

	name, args := build(script)
	_, err = r.Run(ctx, name, args...)
	return err
}
