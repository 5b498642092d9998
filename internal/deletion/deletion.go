// Package deletion removes files and directories, escalating through the
// platform's elevation mechanisms when a plain delete is refused.
//
// Whether the path still exists on disk is the only success signal. Elevated
// helpers routinely report failure after doing their job, or succeed without
// doing it, so exit statuses are recorded but never trusted.
package deletion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"dirhop/internal/logging"
)

// Stage names reported in outcomes and logs
const (
	StagePlain          = "plain"
	StageElevatedShell  = "elevated-shell"
	StageTakeOwnership  = "take-ownership"
	StageDirectElevated = "direct-elevated"
	StageFinal          = "final"
)

// DefaultStageTimeout bounds a single elevated stage
const DefaultStageTimeout = 2 * time.Minute

var (
	// ErrStillExists is recorded when a stage reported success but the target is still there
	ErrStillExists = errors.New("target still exists")
	// ErrNoElevation is returned by stages that cannot elevate for the current user
	ErrNoElevation = errors.New("elevation not available")
)

// Target is the path to delete
type Target struct {
	Path  string
	IsDir bool
}

// Attempt records one failed stage
type Attempt struct {
	Stage string
	Err   error
}

// Outcome is the result of Delete
type Outcome struct {
	Target   Target
	Removed  bool
	Stage    string // stage after which the target was gone
	Reason   string // set when Removed is false
	Attempts []Attempt
}

// Err returns nil when the target was removed and an *Error otherwise
func (o Outcome) Err() error {
	if o.Removed {
		return nil
	}
	return &Error{Path: o.Target.Path, Reason: o.Reason, Attempts: o.Attempts}
}

// Error describes a target that survived every stage
type Error struct {
	Path     string
	Reason   string
	Attempts []Attempt
}

func (e *Error) Error() string { return e.Reason }

// Unwrap exposes the per-stage errors to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		if a.Err != nil {
			errs = append(errs, a.Err)
		}
	}
	return errs
}

// Stage is one elevated removal strategy
type Stage interface {
	Name() string
	Remove(ctx context.Context, target Target) error
}

// PrivilegedRemover supplies the elevated stages for a platform, in escalation order
type PrivilegedRemover interface {
	Name() string
	Stages() []Stage
}

// Deleter runs the escalation ladder. The zero value is not usable; call New.
type Deleter struct {
	remover      PrivilegedRemover
	stageTimeout time.Duration
	log          *logging.Logger

	removePlain func(Target) error
	exists      func(string) bool
}

// Option configures a Deleter
type Option func(*Deleter)

// WithRemover replaces the platform remover
func WithRemover(r PrivilegedRemover) Option {
	return func(d *Deleter) {
		if r != nil {
			d.remover = r
		}
	}
}

// WithStageTimeout bounds every elevated stage. Non-positive values keep the default.
func WithStageTimeout(timeout time.Duration) Option {
	return func(d *Deleter) {
		if timeout > 0 {
			d.stageTimeout = timeout
		}
	}
}

// WithLogger sets the logger used for stage diagnostics
func WithLogger(l *logging.Logger) Option {
	return func(d *Deleter) {
		if l != nil {
			d.log = l
		}
	}
}

// New builds a Deleter using the current platform's remover
func New(opts ...Option) *Deleter {
	d := &Deleter{
		remover:      Platform(),
		stageTimeout: DefaultStageTimeout,
		log:          logging.Get(),
		removePlain:  removePlain,
		exists:       Exists,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Remover returns the remover the deleter escalates through
func (d *Deleter) Remover() PrivilegedRemover { return d.remover }

// Delete removes target, escalating on failure. It never panics and never
// returns an error directly; inspect the Outcome. A cancelled ctx stops
// escalation and skips straight to the final existence check.
func (d *Deleter) Delete(ctx context.Context, target Target) Outcome {
	log := d.log.With("path", target.Path, "dir", target.IsDir)
	timer := logging.Start("delete")
	out := Outcome{Target: target}

	err := d.removePlain(target)
	if err == nil || !d.exists(target.Path) {
		out.Removed, out.Stage = true, StagePlain
		timer.Stop("path", target.Path, "stage", out.Stage)
		return out
	}
	out.Attempts = append(out.Attempts, Attempt{Stage: StagePlain, Err: err})
	log.Info("plain delete failed, escalating", "err", err, "remover", d.remover.Name())

	for _, stage := range d.remover.Stages() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			out.Attempts = append(out.Attempts, Attempt{Stage: stage.Name(), Err: ctxErr})
			break
		}

		err := d.runStage(ctx, stage, target)
		if !d.exists(target.Path) {
			if err != nil {
				log.Debug("stage reported failure but target is gone", "stage", stage.Name(), "err", err)
			}
			out.Removed, out.Stage = true, stage.Name()
			timer.Stop("path", target.Path, "stage", out.Stage)
			return out
		}
		if err == nil {
			err = ErrStillExists
		}
		out.Attempts = append(out.Attempts, Attempt{Stage: stage.Name(), Err: err})
		log.Warn("deletion stage failed", "stage", stage.Name(), "err", err)
	}

	if !d.exists(target.Path) {
		out.Removed, out.Stage = true, StageFinal
		timer.Stop("path", target.Path, "stage", out.Stage)
		return out
	}

	out.Reason = fmt.Sprintf("%s still exists after all deletion attempts (%s)", target.Path, chain(out.Attempts))
	log.Error("delete failed", "reason", out.Reason)
	timer.Stop("path", target.Path, "removed", false)
	return out
}

func (d *Deleter) runStage(ctx context.Context, stage Stage, target Target) (err error) {
	sctx, cancel := context.WithTimeout(ctx, d.stageTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage %s panicked: %v", stage.Name(), r)
		}
	}()
	return stage.Remove(sctx, target)
}

func chain(attempts []Attempt) string {
	parts := make([]string, 0, len(attempts))
	for _, a := range attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Stage, a.Err))
	}
	return strings.Join(parts, "; ")
}

func removePlain(target Target) error {
	if target.IsDir {
		return os.RemoveAll(target.Path)
	}
	return os.Remove(target.Path)
}

// Exists reports whether path is present. Errors other than not-exist count
// as present, so an unreadable parent never passes for a successful delete.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}
