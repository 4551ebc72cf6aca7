package main

import (
	"os"

	"github.com/fbkclanna/gitclone/internal/ui"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.NewLogger(os.Stderr, ui.ColorEnabled(os.Stderr, false)).Error("%v", err)
		os.Exit(exitCode(err))
	}
}
