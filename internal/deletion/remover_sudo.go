package deletion

import (
	"context"
	"fmt"
	"os"
)

// SudoRemover escalates with non-interactive sudo and, last, pkexec. sudo
// runs with -n so a missing credential fails fast instead of prompting on a
// terminal the TUI owns.
type SudoRemover struct {
	runner     Runner
	tempDir    string
	uid        int
	canElevate func() bool
}

// NewSudoRemover returns a remover that runs its commands through r
func NewSudoRemover(r Runner) *SudoRemover {
	return &SudoRemover{
		runner:     r,
		tempDir:    os.TempDir(),
		uid:        os.Getuid(),
		canElevate: CanElevate,
	}
}

func (s *SudoRemover) Name() string { return "sudo" }

func (s *SudoRemover) Stages() []Stage {
	return []Stage{
		stageFunc{StageElevatedShell, s.elevatedShell},
		stageFunc{StageTakeOwnership, s.takeOwnership},
		stageFunc{StageDirectElevated, s.directElevated},
	}
}

func (s *SudoRemover) elevatedShell(ctx context.Context, target Target) error {
	if !s.canElevate() {
		return fmt.Errorf("sudo: %w", ErrNoElevation)
	}
	_, err := s.runner.Run(ctx, "sudo", "-n", "rm", "-rf", "--", target.Path)
	return err
}

func (s *SudoRemover) takeOwnership(ctx context.Context, target Target) error {
	if !s.canElevate() {
		return fmt.Errorf("sudo: %w", ErrNoElevation)
	}
	body := takeOwnershipShell(target, s.uid)
	return runScript(ctx, s.runner, s.tempDir, "dirhop_delete_*.sh", body, func(script string) (string, []string) {
		return "sudo", []string{"-n", "/bin/sh", script}
	})
}

// directElevated goes through polkit, which can succeed for users outside the sudo groups
func (s *SudoRemover) directElevated(ctx context.Context, target Target) error {
	_, err := s.runner.Run(ctx, "pkexec", "rm", "-rf", "--", target.Path)
	return err
}
