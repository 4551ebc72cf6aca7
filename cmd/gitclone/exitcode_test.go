package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fbkclanna/gitclone/internal/batch"
	"github.com/fbkclanna/gitclone/internal/git"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"tool missing", &git.ToolNotFoundError{Tool: "git"}, exitToolMissing},
		{"wrapped tool missing", fmt.Errorf("clone x: %w", &git.ToolNotFoundError{Tool: "git"}), exitToolMissing},
		{"usage", usagef("bad flag %s", "x"), exitUsage},
		{"invalid batch", fmt.Errorf("%w: name is required", batch.ErrInvalid), exitUsage},
		{"invalid ref", git.CheckRef("--upload-pack=x"), exitUsage},
		{"process", &git.ProcessError{Args: []string{"clone"}, ExitCode: 128, Err: errors.New("exit status 128")}, exitFailure},
		{"other", errors.New("boom"), exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
