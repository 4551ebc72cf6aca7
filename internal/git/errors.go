package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRefNotFound is returned by LsRemote when the remote has no branch or
// tag matching the requested ref (git ls-remote --exit-code status 2).
var ErrRefNotFound = errors.New("ref not found on remote")

// ErrInvalidRef is returned for refs git would parse as an option.
var ErrInvalidRef = errors.New("invalid ref")

// CheckRef rejects refs that start with a dash.
func CheckRef(ref string) error {
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("%w %q: must not start with '-'", ErrInvalidRef, ref)
	}
	return nil
}

// ToolNotFoundError reports that the git executable is not on PATH.
type ToolNotFoundError struct {
	Tool string
	Err  error
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%q command line tool is not installed: make sure it is accessible on your PATH", e.Tool)
}

func (e *ToolNotFoundError) Unwrap() error { return e.Err }

// ProcessError reports a git invocation that failed to start or exited
// with a non-zero status. ExitCode is -1 when the process never ran.
type ProcessError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ProcessError) Unwrap() error { return e.Err }

// IsToolNotFound reports whether err is, or wraps, a *ToolNotFoundError.
func IsToolNotFound(err error) bool {
	var tnf *ToolNotFoundError
	return errors.As(err, &tnf)
}

// exitCode returns the exit status carried by err, or -1.
func exitCode(err error) int {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe.ExitCode
	}
	return -1
}
