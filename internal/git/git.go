package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CloneOpts configures a git clone operation.
type CloneOpts struct {
	Depth  int
	Branch string
}

// Args returns the clone arguments for url into dest.
func (o CloneOpts) Args(url, dest string) []string {
	args := []string{"clone"}
	if o.Depth > 0 {
		args = append(args, fmt.Sprintf("--depth=%d", o.Depth))
	}
	if o.Branch != "" {
		args = append(args, "-b", o.Branch)
	}
	return append(args, "--", url, dest)
}

// Client issues git commands through a Runner.
type Client struct {
	runner Runner
}

// New returns a Client backed by runner. A nil runner uses git on PATH.
func New(runner Runner) *Client {
	if runner == nil {
		runner = NewRunner(DefaultBinary)
	}
	return &Client{runner: runner}
}

// LookPath returns the resolved path of the git executable.
func (c *Client) LookPath() (string, error) {
	return c.runner.LookPath()
}

// Version returns the output of git version.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "", "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// LsRemote checks whether ref names a branch or tag on the remote at url.
// It returns ErrRefNotFound when the remote answered but nothing matched,
// and the underlying error for anything else (unreachable host, bad URL).
func (c *Client) LsRemote(ctx context.Context, url, ref string) error {
	_, err := c.runner.Run(ctx, "", "ls-remote", "--heads", "--tags", "--exit-code", "--", url, ref)
	if err != nil {
		if exitCode(err) == 2 {
			return fmt.Errorf("%w: %s", ErrRefNotFound, ref)
		}
		return err
	}
	return nil
}

// Reachable reports whether url answers git ls-remote.
func (c *Client) Reachable(ctx context.Context, url string) error {
	_, err := c.runner.Run(ctx, "", "ls-remote", "--exit-code", "--quiet", "--", url)
	return err
}

// Clone clones url into dest with the given options.
func (c *Client) Clone(ctx context.Context, url, dest string, opts CloneOpts) error {
	_, err := c.runner.Run(ctx, "", opts.Args(url, dest)...)
	return err
}

// Checkout checks out the given ref.
func (c *Client) Checkout(ctx context.Context, repoDir, ref string) error {
	if err := CheckRef(ref); err != nil {
		return err
	}
	_, err := c.runner.Run(ctx, repoDir, "checkout", ref)
	return err
}

// HeadCommit returns the short SHA of HEAD.
func (c *Client) HeadCommit(ctx context.Context, repoDir string) (string, error) {
	out, err := c.runner.Run(ctx, repoDir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	sha := strings.TrimSpace(out)
	if sha == "" {
		return "", errors.New("git rev-parse returned an empty hash")
	}
	return sha, nil
}

// HeadCommitFull returns the full SHA of HEAD.
func (c *Client) HeadCommitFull(ctx context.Context, repoDir string) (string, error) {
	out, err := c.runner.Run(ctx, repoDir, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsCloned returns true if the directory is a git repository.
func IsCloned(repoDir string) bool {
	info, err := os.Stat(filepath.Join(repoDir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
