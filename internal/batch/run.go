package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fbkclanna/gitclone/internal/clone"
	"github.com/fbkclanna/gitclone/internal/git"
)

// Reporter receives progress for a batch run. *ui.Progress satisfies it.
type Reporter interface {
	clone.Logger
	Done(label string)
	Fail(label string, err error)
}

// Outcome is the result of one entry.
type Outcome struct {
	ID     string
	URL    string
	Ref    string
	Dir    string
	Result *clone.Result
	// Commit is the full SHA of HEAD, recorded in place of the short one.
	Commit string
	Err    error
}

// Runner clones batch entries concurrently, each into its own directory
// under BaseDir.
type Runner struct {
	Git      git.Runner
	BaseDir  string
	Jobs     int
	Reporter Reporter
}

// Run clones every entry, at most Jobs at a time. All entries are attempted;
// outcomes are returned in entry order along with the first failure.
func (r *Runner) Run(ctx context.Context, f *File, entries []Entry) ([]Outcome, error) {
	jobs := r.Jobs
	if jobs < 1 {
		return nil, fmt.Errorf("jobs must be >= 1 (got %d)", jobs)
	}

	outcomes := make([]Outcome, len(entries))
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup

	for i, e := range entries {
		outcomes[i] = Outcome{
			ID:  e.EffectiveID(),
			URL: e.URL,
			Ref: e.EffectiveRef(f.Defaults),
			Dir: filepath.Join(r.BaseDir, e.EffectiveDir()),
		}
		wg.Add(1)
		go func(o *Outcome) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			r.cloneOne(ctx, o)
		}(&outcomes[i])
	}
	wg.Wait()

	for _, o := range outcomes {
		if o.Err != nil {
			return outcomes, fmt.Errorf("clone %s: %w", o.ID, o.Err)
		}
	}
	return outcomes, nil
}

func (r *Runner) cloneOne(ctx context.Context, o *Outcome) {
	rep := r.reporter()
	c := clone.New(r.Git, clone.WithPrefix(rep, o.ID+": "))
	res, err := c.Clone(ctx, clone.Request{SourceURL: o.URL, Ref: o.Ref, TargetDir: o.Dir})
	if err != nil {
		o.Err = err
		rep.Fail(o.ID, err)
		return
	}
	o.Result = res
	o.Ref = res.Ref
	o.Commit, err = git.New(r.Git).HeadCommitFull(ctx, res.Dir)
	if err != nil {
		o.Err = err
		rep.Fail(o.ID, err)
		return
	}
	rep.Done(fmt.Sprintf("%s cloned @ %s", o.ID, res.Commit))
}

func (r *Runner) reporter() Reporter {
	if r.Reporter == nil {
		return discard{}
	}
	return r.Reporter
}

type discard struct{}

func (discard) Log(string, ...any) {}
func (discard) Done(string) {}
func (discard) Fail(string, error) {}

// NewRecord builds a record of the successful outcomes.
func NewRecord(f *File, outcomes []Outcome, toolVersion string, now time.Time) *Record {
	rec := &Record{
		Version:     1,
		Name:        f.Name,
		GeneratedAt: now.Format(time.RFC3339),
		ToolVersion: toolVersion,
		Clones:      make(map[string]*RecordEntry, len(outcomes)),
	}
	for _, o := range outcomes {
		if o.Err != nil || o.Result == nil {
			continue
		}
		rec.Clones[o.ID] = &RecordEntry{
			URL:     o.URL,
			Ref:     o.Ref,
			Dir:     o.Result.Dir,
			Commit:  o.Commit,
			Shallow: o.Result.Shallow,
		}
	}
	return rec
}
