// Package testutil builds throwaway git repositories for tests.
package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// CreateBareRepo creates a bare git repository with an initial commit in a temp directory.
// Returns the path to the bare repo.
func CreateBareRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	work := initWorkRepo(t, dir)
	commitFile(t, work, "README.md", "# test\n", "initial commit")
	return cloneBare(t, dir, work)
}

// CreateBareRepoWithBranch creates a bare repo with a given branch.
func CreateBareRepoWithBranch(t *testing.T, branch string) string {
	t.Helper()
	dir := t.TempDir()
	work := initWorkRepo(t, dir)
	commitFile(t, work, "README.md", "# test\n", "initial commit")
	run(t, work, "git", "checkout", "-b", branch)
	commitFile(t, work, "feature.txt", "feature\n", "feature commit")

	// Switch back to main so the bare repo's HEAD points to main.
	run(t, work, "git", "checkout", "main")
	return cloneBare(t, dir, work)
}

// CreateBareRepoWithTag creates a bare repo whose main branch has moved
// past the given lightweight tag. Returns the bare path and the tagged SHA.
func CreateBareRepoWithTag(t *testing.T, tag string) (bare, tagged string) {
	t.Helper()
	dir := t.TempDir()
	work := initWorkRepo(t, dir)
	commitFile(t, work, "README.md", "# test\n", "initial commit")
	run(t, work, "git", "tag", tag)
	tagged = RevParse(t, work, "HEAD")
	commitFile(t, work, "CHANGELOG.md", "next\n", "second commit")
	return cloneBare(t, dir, work), tagged
}

// CreateBareRepoWithHistory creates a bare repo with two commits on main.
// Returns the bare path and the full SHA of the first (non-HEAD) commit.
func CreateBareRepoWithHistory(t *testing.T) (bare, first string) {
	t.Helper()
	dir := t.TempDir()
	work := initWorkRepo(t, dir)
	commitFile(t, work, "README.md", "# test\n", "initial commit")
	first = RevParse(t, work, "HEAD")
	commitFile(t, work, "CHANGELOG.md", "next\n", "second commit")
	return cloneBare(t, dir, work), first
}

// RevParse resolves rev in the repository at dir (bare or not).
func RevParse(t *testing.T, dir, rev string) string {
	t.Helper()
	return strings.TrimSpace(output(t, dir, "git", "rev-parse", rev))
}

func initWorkRepo(t *testing.T, dir string) string {
	t.Helper()
	work := filepath.Join(dir, "work")
	run(t, dir, "git", "init", "-b", "main", work)
	run(t, work, "git", "config", "user.email", "test@example.com")
	run(t, work, "git", "config", "user.name", "Test")
	return work
}

func commitFile(t *testing.T, work, name, content, message string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(work, name), []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	run(t, work, "git", "add", ".")
	run(t, work, "git", "commit", "-m", message)
}

func cloneBare(t *testing.T, dir, work string) string {
	t.Helper()
	bare := filepath.Join(dir, "repo.git")
	run(t, dir, "git", "clone", "--bare", work, bare)
	return bare
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}

func output(t *testing.T, dir string, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
	return stdout.String()
}
