package main

import (
	"github.com/fbkclanna/gitclone/internal/clone"
	"github.com/fbkclanna/gitclone/internal/config"
	"github.com/fbkclanna/gitclone/internal/ui"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitclone",
		Short:         "Clone a git repository at a branch, tag, or commit",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().String("config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress lines")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(
		newCloneCmd(),
		newBatchCmd(),
		newDoctorCmd(),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig resolves settings and folds in the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	return cfg, nil
}

// newLogger returns the sink for clone progress lines on stderr.
func newLogger(cmd *cobra.Command, cfg config.Config) clone.Logger {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return clone.Discard
	}
	out := cmd.ErrOrStderr()
	return ui.NewLogger(out, ui.ColorEnabled(out, cfg.NoColor))
}
