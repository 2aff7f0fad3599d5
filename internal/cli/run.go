package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/testall/internal/logging"
	"github.com/aretw0/testall/pkg/plan"
	"github.com/aretw0/testall/pkg/runner"
)

// Exit codes returned by Execute.
const (
	ExitOK            = 0
	ExitLaunchFailure = 1
	ExitInterrupted   = 130
)

// RunOptions contains all the configuration for a run.
type RunOptions struct {
	Plan    plan.Plan // Defaults to plan.Default()
	BaseDir string    // Defaults to the working directory
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
}

// Execute runs the plan and maps the outcome to a process exit code.
func Execute(ctx context.Context, opts RunOptions) int {
	if opts.Plan == nil {
		opts.Plan = plan.Default()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	r := runner.New(
		runner.WithLogger(logger),
		runner.WithBaseDir(opts.BaseDir),
		runner.WithInput(opts.Stdin),
		runner.WithOutput(opts.Stdout),
		runner.WithErrorOutput(opts.Stderr),
		runner.WithMiddleware(runner.LoggingMiddleware(logger)),
	)

	logger.Debug("Run Started", "steps", len(opts.Plan), "base_dir", opts.BaseDir)
	report, err := r.Run(ctx, opts.Plan)
	if err != nil {
		if errors.Is(err, runner.ErrInterrupted) {
			printSystemMessage(opts.Stderr, "Interrupted: %v", err)
			return ExitInterrupted
		}
		printSystemMessage(opts.Stderr, "Error: %v", err)
		return ExitLaunchFailure
	}

	failures := report.LaunchFailures()
	logger.Debug("Run Finished", "steps", len(report.Steps), "launch_failures", len(failures))
	if len(failures) > 0 {
		return ExitLaunchFailure
	}
	return ExitOK
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
