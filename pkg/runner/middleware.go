package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/testall/pkg/adapters/process"
)

// Launcher starts a single child process and blocks until it exits.
type Launcher interface {
	Launch(ctx context.Context, inv process.Invocation) process.Result
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(ctx context.Context, inv process.Invocation) process.Result

// Launch calls f(ctx, inv).
func (f LauncherFunc) Launch(ctx context.Context, inv process.Invocation) process.Result {
	return f(ctx, inv)
}

// Middleware decorates a Launcher.
type Middleware func(next Launcher) Launcher

// Chain applies middlewares so that the first one is the outermost.
func Chain(l Launcher, mw ...Middleware) Launcher {
	for i := len(mw) - 1; i >= 0; i-- {
		l = mw[i](l)
	}
	return l
}

// LoggingMiddleware traces every launch at debug level.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Launcher) Launcher {
		return LauncherFunc(func(ctx context.Context, inv process.Invocation) process.Result {
			logger.Debug("Launch", "command", inv.Command, "args", inv.Args, "dir", inv.Dir)
			start := time.Now()
			res := next.Launch(ctx, inv)
			if res.Err != nil {
				logger.Debug("Launch Returned (Error)", "command", inv.Command, "code", res.Code, "started", res.Started, "elapsed", time.Since(start), "err", res.Err)
			} else {
				logger.Debug("Launch Returned (Success)", "command", inv.Command, "elapsed", time.Since(start))
			}
			return res
		})
	}
}
