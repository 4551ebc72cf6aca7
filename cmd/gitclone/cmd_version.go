package main

import (
	"fmt"

	"github.com/fbkclanna/gitclone/internal/git"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gitclone and git versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "gitclone %s\n", version)
			if v, err := git.New(git.NewRunner(cfg.Git)).Version(cmd.Context()); err == nil {
				_, _ = fmt.Fprintln(out, v)
			} else {
				_, _ = fmt.Fprintln(out, "git not available")
			}
			return nil
		},
	}
}
