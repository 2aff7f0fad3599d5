package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvDebug enables debug logging when set to "1" or "true".
const EnvDebug = "TESTALL_DEBUG"

// New creates a configured application logger.
// It writes to Stderr (to keep Stdout for announcements and child output).
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter is New with an explicit destination.
// It standardizes common keys (e.g., "error" -> "err").
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FromEnv returns a debug logger when EnvDebug is set, and a no-op logger otherwise.
func FromEnv() *slog.Logger {
	if DebugEnabled(os.Getenv(EnvDebug)) {
		return New(slog.LevelDebug)
	}
	return NewNop()
}

// DebugEnabled reports whether an EnvDebug value turns debug logging on.
func DebugEnabled(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
