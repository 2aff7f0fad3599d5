package process

import "errors"

// ErrNotAllowed is returned when a command is not on the launcher's allow-list.
var ErrNotAllowed = errors.New("command not allowed")

// ErrNotFound is returned when a command cannot be resolved in the step directory or PATH.
var ErrNotFound = errors.New("command not found")

// ErrNoDir is returned when the working directory of an invocation does not exist.
var ErrNoDir = errors.New("working directory not found")
