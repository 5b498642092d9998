package deletion

import (
	"context"
	"os"
)

// WindowsRemover escalates through UAC using powershell and cmd. It is
// buildable everywhere so the commands it produces can be inspected in tests.
type WindowsRemover struct {
	runner  Runner
	tempDir string
}

// NewWindowsRemover returns a remover that runs its commands through r
func NewWindowsRemover(r Runner) *WindowsRemover {
	return &WindowsRemover{runner: r, tempDir: os.TempDir()}
}

func (w *WindowsRemover) Name() string { return "uac" }

func (w *WindowsRemover) Stages() []Stage {
	return []Stage{
		stageFunc{StageElevatedShell, w.elevatedShell},
		stageFunc{StageTakeOwnership, w.takeOwnership},
		stageFunc{StageDirectElevated, w.directElevated},
	}
}

func (w *WindowsRemover) elevatedShell(ctx context.Context, target Target) error {
	return w.runElevated(ctx, removeItemScript(target))
}

func (w *WindowsRemover) directElevated(ctx context.Context, target Target) error {
	return w.runElevated(ctx, directDeleteScript(target))
}

func (w *WindowsRemover) takeOwnership(ctx context.Context, target Target) error {
	body, err := takeOwnershipBatch(target)
	if err != nil {
		return err
	}
	var buildErr error
	err = runScript(ctx, w.runner, w.tempDir, "dirhop_delete_*.bat", body, func(script string) (string, []string) {
		args, err := powerShellArgs(elevateBatch(script))
		buildErr = err
		return "powershell", args
	})
	if buildErr != nil {
		return buildErr
	}
	return err
}

func (w *WindowsRemover) runElevated(ctx context.Context, inner string) error {
	outer, err := elevatePowerShell(inner)
	if err != nil {
		return err
	}
	args, err := powerShellArgs(outer)
	if err != nil {
		return err
	}
	_, err = w.runner.Run(ctx, "powershell", args...)
	return err
}

// stageFunc adapts a method to Stage
type stageFunc struct {
	name string
	fn   func(context.Context, Target) error
}

func (s stageFunc) Name() string                                    { return s.name }
func (s stageFunc) Remove(ctx context.Context, target Target) error { return s.fn(ctx, target) }
