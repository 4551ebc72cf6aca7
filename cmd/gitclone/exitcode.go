package main

import (
	"errors"
	"fmt"

	"github.com/fbkclanna/gitclone/internal/batch"
	"github.com/fbkclanna/gitclone/internal/git"
)

const (
	exitFailure     = 1
	exitUsage       = 2
	exitToolMissing = 3
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return 0
	case git.IsToolNotFound(err):
		return exitToolMissing
	case errors.As(err, &ue), errors.Is(err, batch.ErrInvalid), errors.Is(err, git.ErrInvalidRef):
		return exitUsage
	default:
		return exitFailure
	}
}
