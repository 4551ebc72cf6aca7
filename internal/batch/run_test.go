package batch

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fbkclanna/gitclone/internal/git"
	"github.com/fbkclanna/gitclone/internal/testutil"
	"github.com/fbkclanna/gitclone/internal/ui"
)

func TestRunner_Run(t *testing.T) {
	bareA := testutil.CreateBareRepo(t)
	bareB, tagged := testutil.CreateBareRepoWithTag(t, "v1.0.0")
	f := &File{
		Version:  1,
		Name:     "test",
		Defaults: Defaults{Ref: "main"},
		Clones: []Entry{
			{ID: "backend", URL: bareA},
			{ID: "frontend", URL: bareB, Ref: "v1.0.0", Dir: "web/frontend"},
		},
	}
	base := t.TempDir()
	var buf bytes.Buffer
	r := &Runner{BaseDir: base, Jobs: 2, Reporter: ui.NewProgress(&buf, len(f.Clones))}

	outcomes, err := r.Run(context.Background(), f, f.Clones)
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, buf.String())
	}
	if len(outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(outcomes))
	}
	if outcomes[0].ID != "backend" || outcomes[1].ID != "frontend" {
		t.Errorf("outcomes out of order: %+v", outcomes)
	}
	if !git.IsCloned(filepath.Join(base, "backend")) || !git.IsCloned(filepath.Join(base, "web", "frontend")) {
		t.Error("both entries should be cloned under the base dir")
	}
	if !strings.HasPrefix(tagged, outcomes[1].Result.Commit) {
		t.Errorf("frontend commit = %q, want prefix of %q", outcomes[1].Result.Commit, tagged)
	}
	out := buf.String()
	if !strings.Contains(out, "backend: Using shallow clone") {
		t.Errorf("clone lines should carry the entry id: %s", out)
	}
	if !strings.Contains(out, "[2/2]") {
		t.Errorf("missing progress counter: %s", out)
	}
}

func TestRunner_Run_continuesAfterFailure(t *testing.T) {
	bare := testutil.CreateBareRepo(t)
	f := &File{Version: 1, Name: "test"}
	entries := []Entry{
		{ID: "missing", URL: "/nonexistent/repo.git", Ref: "main"},
		{ID: "ok", URL: bare, Ref: "main"},
	}
	base := t.TempDir()
	var buf bytes.Buffer
	progress := ui.NewProgress(&buf, len(entries))
	r := &Runner{BaseDir: base, Jobs: 1, Reporter: progress}

	outcomes, err := r.Run(context.Background(), f, entries)
	if err == nil || !strings.Contains(err.Error(), "clone missing") {
		t.Fatalf("error = %v, want failure for missing", err)
	}
	if outcomes[1].Err != nil || !git.IsCloned(filepath.Join(base, "ok")) {
		t.Errorf("healthy entry should still be cloned: %+v", outcomes[1])
	}
	if progress.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", progress.Failed())
	}

	rec := NewRecord(f, outcomes, "dev", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if len(rec.Clones) != 1 || rec.Clones["ok"] == nil {
		t.Fatalf("record should only hold the successful clone: %+v", rec.Clones)
	}
	if rec.GeneratedAt != "2026-01-01T00:00:00Z" {
		t.Errorf("GeneratedAt = %q", rec.GeneratedAt)
	}
}

func TestRunner_Run_invalidJobs(t *testing.T) {
	r := &Runner{Jobs: 0}
	if _, err := r.Run(context.Background(), &File{}, nil); err == nil {
		t.Fatal("expected error for jobs < 1")
	}
}
