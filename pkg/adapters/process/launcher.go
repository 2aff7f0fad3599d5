package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// DefaultGracePeriod is how long a cancelled child may take to exit after
// being interrupted before it is killed.
const DefaultGracePeriod = 5 * time.Second

// Invocation describes one child process.
type Invocation struct {
	Command string
	Args    []string
	Dir     string // Empty means the launcher's own working directory
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Result is the outcome of a Launch.
type Result struct {
	Started bool  // False when the child could not be started at all
	Code    int   // Exit code; -1 when not started or terminated by a signal
	Err     error // Launch error, *exec.ExitError, or context error
}

// Launcher starts allow-listed commands.
// It follows a Strict Registry pattern: unknown names are never executed.
type Launcher struct {
	allowed map[string]bool
	grace   time.Duration
}

// LauncherOption configures the launcher.
type LauncherOption func(*Launcher)

// WithAllowList registers the command names the launcher may start.
func WithAllowList(names ...string) LauncherOption {
	return func(l *Launcher) {
		for _, name := range names {
			l.allowed[name] = true
		}
	}
}

// WithGracePeriod overrides DefaultGracePeriod.
func WithGracePeriod(d time.Duration) LauncherOption {
	return func(l *Launcher) {
		l.grace = d
	}
}

// NewLauncher creates a new Launcher.
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{
		allowed: make(map[string]bool),
		grace:   DefaultGracePeriod,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch runs the invocation to completion.
// Launch errors are reported in Result.Err with Started == false.
func (l *Launcher) Launch(ctx context.Context, inv Invocation) Result {
	if !l.allowed[inv.Command] {
		return notStarted(fmt.Errorf("%w: %s", ErrNotAllowed, inv.Command))
	}

	if inv.Dir != "" {
		info, err := os.Stat(inv.Dir)
		if err != nil || !info.IsDir() {
			return notStarted(fmt.Errorf("%w: %s", ErrNoDir, inv.Dir))
		}
	}

	path, err := Resolve(inv.Command, inv.Dir)
	if err != nil {
		return notStarted(err)
	}

	cmd := exec.CommandContext(ctx, path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	// Interrupt first so collaborators can clean up; Kill after the grace period.
	cmd.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return cmd.Process.Kill()
		}
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = l.grace

	if err := cmd.Start(); err != nil {
		return notStarted(fmt.Errorf("failed to start %s: %w", inv.Command, err))
	}

	err = cmd.Wait()
	if err == nil {
		return Result{Started: true, Code: 0}
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return Result{Started: true, Code: code, Err: err}
}

func notStarted(err error) Result {
	return Result{Started: false, Code: -1, Err: err}
}
