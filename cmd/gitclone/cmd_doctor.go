package main

import (
	"fmt"

	"github.com/fbkclanna/gitclone/internal/git"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
	cmd.Flags().StringSlice("url", nil, "Also check that these repository URLs are reachable")
	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	urls, _ := cmd.Flags().GetStringSlice("url")
	out := cmd.OutOrStdout()
	ok := true

	client := git.New(git.NewRunner(cfg.Git))

	_, _ = fmt.Fprint(out, "Checking git... ")
	gitPath, err := client.LookPath()
	if err != nil {
		_, _ = fmt.Fprintln(out, "NOT FOUND")
		_, _ = fmt.Fprintln(out, "  git is required. Install it from https://git-scm.com/")
		return err
	}
	_, _ = fmt.Fprintf(out, "found at %s\n", gitPath)

	_, _ = fmt.Fprint(out, "Checking git version... ")
	if v, verr := client.Version(cmd.Context()); verr != nil {
		_, _ = fmt.Fprintln(out, "ERROR")
		ok = false
	} else {
		_, _ = fmt.Fprintln(out, v)
	}

	_, _ = fmt.Fprintf(out, "Default ref: %s\n", cfg.Ref)
	_, _ = fmt.Fprintf(out, "Base dir: %s\n", cfg.BaseDir)

	for _, u := range urls {
		_, _ = fmt.Fprintf(out, "  Checking %s... ", u)
		if err := client.Reachable(cmd.Context(), u); err != nil {
			_, _ = fmt.Fprintln(out, "FAILED (cannot access)")
			ok = false
		} else {
			_, _ = fmt.Fprintln(out, "OK")
		}
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
