package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/testall/pkg/adapters/process"
	"github.com/aretw0/testall/pkg/plan"
)

// ErrInterrupted is returned by Run when its context is cancelled mid-plan.
var ErrInterrupted = errors.New("run interrupted")

// Runner executes a plan one step at a time.
type Runner struct {
	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
	BaseDir   string

	// Launcher starts the children. If nil, a process.Launcher is built per run.
	Launcher   Launcher
	Middleware []Middleware
}

// New creates a Runner wired to the process's standard streams.
func New(opts ...Option) *Runner {
	r := &Runner{
		Input:     os.Stdin,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every step of p in order and returns what happened to each.
// The error is non-nil only if ctx was cancelled; the partial report is still returned.
func (r *Runner) Run(ctx context.Context, p plan.Plan) (*Report, error) {
	launcher := Chain(r.resolveLauncher(p), r.Middleware...)
	report := &Report{}

	for i, step := range p {
		index := i + 1
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%w before step %d (%s): %w", ErrInterrupted, index, step, err)
		}

		if step.Announce != "" {
			fmt.Fprintln(r.Output, step.Announce)
		}

		res := launcher.Launch(ctx, process.Invocation{
			Command: step.Command,
			Args:    step.Args,
			Dir:     r.stepDir(step),
			Stdin:   r.Input,
			Stdout:  r.Output,
			Stderr:  r.ErrOutput,
		})

		result := StepResult{
			Index:   index,
			Step:    step,
			Started: res.Started,
			Code:    res.Code,
			Err:     res.Err,
		}
		report.Steps = append(report.Steps, result)

		if !res.Started {
			fmt.Fprintf(r.ErrOutput, ">>> step %d (%s): %v\n", index, step, res.Err)
		}
		r.Logger.Debug("Step Finished", "step", index, "command", step.String(), "code", res.Code, "started", res.Started)

		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%w at step %d (%s): %w", ErrInterrupted, index, step, err)
		}
	}

	return report, nil
}

func (r *Runner) resolveLauncher(p plan.Plan) Launcher {
	if r.Launcher != nil {
		return r.Launcher
	}
	return process.NewLauncher(process.WithAllowList(p.Commands()...))
}

// stepDir joins the step directory onto the base directory.
// An empty result means "inherit the process working directory".
func (r *Runner) stepDir(step plan.Step) string {
	if step.Dir == "" {
		return r.BaseDir
	}
	return filepath.Join(r.BaseDir, filepath.FromSlash(step.Dir))
}
