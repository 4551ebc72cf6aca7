package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fbkclanna/gitclone/internal/batch"
	"github.com/fbkclanna/gitclone/internal/config"
	"github.com/fbkclanna/gitclone/internal/git"
	"github.com/fbkclanna/gitclone/internal/ui"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Clone every repository listed in a batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	cmd.Flags().Int("jobs", 0, "Number of parallel clones (default from config)")
	cmd.Flags().String("base-dir", "", "Directory the clones are created under")
	cmd.Flags().String("record", "", "Write resolved commits to this record file")
	cmd.Flags().StringSlice("only", nil, "Clone only these IDs")
	cmd.Flags().StringSlice("skip", nil, "Skip these IDs")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	baseDir, _ := cmd.Flags().GetString("base-dir")
	recordPath, _ := cmd.Flags().GetString("record")
	only, _ := cmd.Flags().GetStringSlice("only")
	skip, _ := cmd.Flags().GetStringSlice("skip")
	quiet, _ := cmd.Flags().GetBool("quiet")

	if !cmd.Flags().Changed("jobs") {
		jobs = cfg.Jobs
	}
	if jobs < 1 {
		return usagef("--jobs must be >= 1 (got %d)", jobs)
	}

	f, err := batch.Load(args[0])
	if err != nil {
		return err
	}
	entries := batch.FilterByIDs(f.Clones, only, skip)
	if len(entries) == 0 {
		return usagef("no clones selected from %s", args[0])
	}
	if f.Defaults.Ref == "" {
		f.Defaults.Ref = cfg.Ref
	}

	runner := git.NewRunner(cfg.Git)
	if _, err := runner.LookPath(); err != nil {
		return err
	}

	var progressOut io.Writer = cmd.ErrOrStderr()
	if quiet {
		progressOut = io.Discard
	}
	r := &batch.Runner{
		Git:      runner,
		BaseDir:  resolveBaseDir(baseDir, args[0], f, cfg),
		Jobs:     jobs,
		Reporter: ui.NewProgress(progressOut, len(entries)),
	}
	outcomes, runErr := r.Run(cmd.Context(), f, entries)

	out := cmd.OutOrStdout()
	tbl := ui.NewTable(out, "ID", "REF", "COMMIT", "STRATEGY", "DIR")
	for _, o := range outcomes {
		commit, strategy := "", "failed"
		if o.Result != nil {
			commit, strategy = o.Result.Commit, "full"
			if o.Result.Shallow {
				strategy = "shallow"
			}
		}
		tbl.Row(o.ID, o.Ref, commit, strategy, o.Dir)
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	if recordPath != "" {
		rec := batch.NewRecord(f, outcomes, version, time.Now())
		if err := batch.SaveRecord(recordPath, rec); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Record written to %s\n", recordPath)
	}
	return runErr
}

// resolveBaseDir picks the clone root: the flag, then the batch file's
// defaults.base_dir (relative to the batch file), then the configured base dir.
func resolveBaseDir(flag, batchPath string, f *batch.File, cfg config.Config) string {
	switch {
	case flag != "":
		return flag
	case f.Defaults.BaseDir == "":
		return cfg.BaseDir
	case filepath.IsAbs(f.Defaults.BaseDir):
		return f.Defaults.BaseDir
	default:
		return filepath.Join(filepath.Dir(batchPath), f.Defaults.BaseDir)
	}
}
