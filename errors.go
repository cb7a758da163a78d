package encroissant

import (
	"errors"
	"strconv"
)

// Sentinel errors for session operations.
var (
	// ErrInvalidRequest indicates an analysis request that fails its
	// preconditions (line count out of range, non-positive depth, etc.).
	ErrInvalidRequest = errors.New("encroissant: invalid analysis request")

	// ErrUnavailable indicates the engine cannot start
	// (binary not found, resolver refused, spawn failed).
	ErrUnavailable = errors.New("encroissant: engine unavailable")

	// ErrConfigure indicates a protocol write failed while configuring the
	// engine. A broken pipe at this stage means the engine is unusable;
	// the session is aborted, never retried.
	ErrConfigure = errors.New("encroissant: engine configuration failed")
)

// ExitError represents an engine process that exited with a non-zero
// status. Wraps the underlying error to preserve the chain — consumers can
// errors.As to *exec.ExitError for OS-level detail (signal info, etc.).
//
// Code semantics: positive = exit status, negative (-1) = signal-killed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "encroissant: engine exit status " + strconv.Itoa(e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode extracts the exit code from an error chain containing *ExitError.
// Returns (0, false) if the chain does not contain one.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
