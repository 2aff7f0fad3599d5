package runner

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInput sets the stdin handed to every child.
func WithInput(in io.Reader) Option {
	return func(r *Runner) {
		r.Input = in
	}
}

// WithOutput sets the stream for announcements and child stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.Output = w
	}
}

// WithErrorOutput sets the stream for child stderr and launch failure reports.
func WithErrorOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.ErrOutput = w
	}
}

// WithBaseDir sets the directory that step directories are relative to.
// If empty, the process working directory is used.
func WithBaseDir(dir string) Option {
	return func(r *Runner) {
		r.BaseDir = dir
	}
}

// WithLauncher configures the strategy for starting child processes.
// If not set, a process.Launcher allow-listed with the plan's commands is used.
func WithLauncher(l Launcher) Option {
	return func(r *Runner) {
		r.Launcher = l
	}
}

// WithMiddleware wraps the launcher. Middlewares run in the order given.
func WithMiddleware(mw ...Middleware) Option {
	return func(r *Runner) {
		r.Middleware = append(r.Middleware, mw...)
	}
}
