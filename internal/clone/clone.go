package clone

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fbkclanna/gitclone/internal/git"
	"github.com/fbkclanna/gitclone/internal/repo"
)

// DefaultRef is checked out when a Request leaves Ref empty.
const DefaultRef = "master"

// Request describes one clone.
type Request struct {
	SourceURL string
	Ref       string
	// TargetDir is created (after removing anything already there). When
	// empty a fresh directory under the Cloner's TempDir is used.
	TargetDir string
}

// Result is a fully checked-out clone.
type Result struct {
	URL     string `json:"url" yaml:"url"`
	Ref     string `json:"ref" yaml:"ref"`
	Dir     string `json:"dir" yaml:"dir"`
	Commit  string `json:"commit" yaml:"commit"`
	Shallow bool   `json:"shallow" yaml:"shallow"`
}

// Verify re-reads HEAD and the origin remote from disk and checks them
// against Commit and URL.
func (r *Result) Verify() error {
	info, err := repo.Inspect(r.Dir)
	if err != nil {
		return err
	}
	if !info.MatchesShort(r.Commit) {
		return fmt.Errorf("HEAD in %s is %s, expected %s", r.Dir, info.Head, r.Commit)
	}
	if r.URL != "" && !sameOrigin(info.OriginURL, r.URL) {
		return fmt.Errorf("origin in %s is %q, expected %q", r.Dir, info.OriginURL, r.URL)
	}
	return nil
}

// sameOrigin compares the origin git recorded against the requested URL.
// git stores a local-path source as an absolute path, so local paths are
// compared after resolving both sides.
func sameOrigin(origin, url string) bool {
	if origin == url {
		return true
	}
	if !isLocalPath(url) || !isLocalPath(origin) {
		return false
	}
	a, err := filepath.Abs(origin)
	if err != nil {
		return false
	}
	b, err := filepath.Abs(url)
	if err != nil {
		return false
	}
	return a == b
}

// isLocalPath reports whether url names a directory rather than a remote.
// A colon before the first slash is git's scp-like host:path syntax.
func isLocalPath(url string) bool {
	if strings.Contains(url, "://") {
		return false
	}
	colon := strings.Index(url, ":")
	if colon < 0 {
		return true
	}
	if colon == 1 && filepath.VolumeName(url) != "" {
		return true
	}
	slash := strings.Index(url, "/")
	return slash >= 0 && slash < colon
}

// Cloner runs clones through a git Runner.
type Cloner struct {
	Logger Logger
	// TempDir is the parent of synthesized target directories. Defaults to
	// <os.TempDir()>/git.
	TempDir string

	git *git.Client
	now func() time.Time
}

// New returns a Cloner using runner for git and logger for progress lines.
// Nil arguments select git on PATH and Discard.
func New(runner git.Runner, logger Logger) *Cloner {
	if logger == nil {
		logger = Discard
	}
	return &Cloner{
		Logger: logger,
		git:    git.New(runner),
		now:    time.Now,
	}
}

// Clone clones req.SourceURL and checks out req.Ref. On failure the target
// directory is removed and the error from the failing step is returned as is.
func (c *Cloner) Clone(ctx context.Context, req Request) (*Result, error) {
	ref := req.Ref
	if ref == "" {
		ref = DefaultRef
	}

	if _, err := c.git.LookPath(); err != nil {
		return nil, err
	}
	if err := git.CheckRef(ref); err != nil {
		return nil, err
	}

	dir := req.TargetDir
	if dir == "" {
		dir = c.tempDir()
	}

	res, err := c.run(ctx, req.SourceURL, ref, dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}
	return res, nil
}

func (c *Cloner) run(ctx context.Context, url, ref, dir string) (*Result, error) {
	if err := os.RemoveAll(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // clone dir needs to be world-readable
		return nil, err
	}

	p := c.plan(ctx, url, ref)
	if err := c.git.Clone(ctx, url, dir, p.Opts); err != nil {
		return nil, err
	}
	if p.NeedsCheckout {
		if err := c.git.Checkout(ctx, dir, ref); err != nil {
			return nil, err
		}
	}

	sha, err := c.git.HeadCommit(ctx, dir)
	if err != nil {
		return nil, err
	}
	c.Logger.Log("Repository %q checked out to git ref %q at %q.", url, ref, sha)
	return &Result{URL: url, Ref: ref, Dir: dir, Commit: sha, Shallow: p.Shallow}, nil
}

var (
	stampMu   sync.Mutex
	lastStamp int64
)

// tempDir names a directory after the current time in milliseconds. Stamps
// are strictly increasing within the process so two calls never collide.
func (c *Cloner) tempDir() string {
	base := c.TempDir
	if base == "" {
		base = filepath.Join(os.TempDir(), "git")
	}
	stamp := c.now().UnixMilli()

	stampMu.Lock()
	if stamp <= lastStamp {
		stamp = lastStamp + 1
	}
	lastStamp = stamp
	stampMu.Unlock()

	return filepath.Join(base, strconv.FormatInt(stamp, 10))
}
