package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fbkclanna/gitclone/internal/clone"
	"github.com/fbkclanna/gitclone/internal/git"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone [url] [ref]",
		Short: "Clone a repository and check out a branch, tag, or commit",
		Long: `Clone a repository and check out a ref.

Branches and tags are cloned shallow (depth 1). Any other ref, such as a
commit SHA, gets a full clone followed by a checkout. Without --dir the
clone goes to a fresh timestamped directory under the base dir.

With no arguments on a terminal, the URL and ref are prompted for.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runClone,
	}
	cmd.Flags().StringP("dir", "d", "", "Target directory (replaced if it exists)")
	cmd.Flags().Bool("verify", false, "Re-read HEAD from disk and check it against the resolved commit")
	cmd.Flags().StringP("output", "o", "text", "Output format: text, yaml, json")
	return cmd
}

func runClone(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")
	verify, _ := cmd.Flags().GetBool("verify")
	output, _ := cmd.Flags().GetString("output")

	if err := validateOutput(output); err != nil {
		return err
	}

	var url, ref string
	switch len(args) {
	case 2:
		url, ref = args[0], args[1]
	case 1:
		url = args[0]
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return usagef("clone requires a repository URL; the interactive prompt needs a TTY")
		}
		url, ref, err = promptCloneRequest(cfg.Ref)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}
	if ref == "" {
		ref = cfg.Ref
	}

	c := clone.New(git.NewRunner(cfg.Git), newLogger(cmd, cfg))
	c.TempDir = cfg.BaseDir
	res, err := c.Clone(cmd.Context(), clone.Request{SourceURL: url, Ref: ref, TargetDir: dir})
	if err != nil {
		return err
	}

	if verify {
		if err := res.Verify(); err != nil {
			return fmt.Errorf("verifying checkout: %w", err)
		}
	}
	return writeResult(cmd.OutOrStdout(), output, res)
}

func validateOutput(format string) error {
	switch format {
	case "text", "yaml", "json":
		return nil
	default:
		return usagef("unknown output format: %q (must be text, yaml, or json)", format)
	}
}

func writeResult(out io.Writer, format string, res *clone.Result) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		_, err := fmt.Fprintf(out, "%s %s\n", res.Dir, res.Commit)
		return err
	}
}
