package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// DefaultBinary is the executable name looked up on PATH.
const DefaultBinary = "git"

// Runner spawns git processes. Implementations must be safe for
// concurrent use when the directories passed to Run differ.
type Runner interface {
	// LookPath resolves the git executable, returning *ToolNotFoundError
	// when it is absent.
	LookPath() (string, error)
	// Run executes git with args in dir and returns its stdout.
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner runs the real git binary through os/exec.
type ExecRunner struct {
	Binary string
	// Stderr, if set, receives git's stderr as it is produced in addition
	// to the copy kept for error messages.
	Stderr io.Writer
}

// NewRunner returns an ExecRunner for binary, defaulting to "git".
func NewRunner(binary string) *ExecRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ExecRunner{Binary: binary}
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath() (string, error) {
	p, err := exec.LookPath(r.Binary)
	if err != nil {
		return "", &ToolNotFoundError{Tool: r.Binary, Err: err}
	}
	return p, nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.Binary, args...) //nolint:gosec // args are built by this package
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, r.Stderr)
	}

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &ToolNotFoundError{Tool: r.Binary, Err: err}
		}
		code := -1
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code = ee.ExitCode()
		}
		return "", &ProcessError{
			Args:     args,
			ExitCode: code,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}
	return stdout.String(), nil
}
