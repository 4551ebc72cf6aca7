package batch

import (
	"errors"
	"testing"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`
version: 1
name: release
defaults:
  ref: main
  base_dir: checkouts
clones:
  - id: backend
    url: git@github.com:org/backend.git
    ref: v2.1.0
  - url: https://github.com/org/frontend.git
    dir: web/frontend
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "release" {
		t.Errorf("name = %q, want %q", f.Name, "release")
	}
	if len(f.Clones) != 2 {
		t.Fatalf("clones count = %d, want 2", len(f.Clones))
	}
	fe := f.Clones[1]
	if fe.EffectiveID() != "frontend" {
		t.Errorf("derived id = %q, want frontend", fe.EffectiveID())
	}
	if fe.EffectiveRef(f.Defaults) != "main" {
		t.Errorf("ref should fall back to defaults, got %q", fe.EffectiveRef(f.Defaults))
	}
	if f.Clones[0].EffectiveRef(f.Defaults) != "v2.1.0" {
		t.Error("entry ref should override defaults")
	}
	if f.Clones[0].EffectiveDir() != "backend" {
		t.Errorf("dir should default to id, got %q", f.Clones[0].EffectiveDir())
	}
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", ":::invalid"},
		{"missing version", `
name: foo
clones: []
`},
		{"missing name", `
version: 1
clones: []
`},
		{"missing url", `
version: 1
name: foo
clones:
  - id: a
`},
		{"duplicate id", `
version: 1
name: foo
clones:
  - url: git@github.com:org/a.git
  - url: https://github.com/other/a.git
    dir: other
`},
		{"shared dir", `
version: 1
name: foo
clones:
  - id: a
    url: git@github.com:org/a.git
    dir: same
  - id: b
    url: git@github.com:org/b.git
    dir: ./same
`},
		{"nested dir", `
version: 1
name: foo
clones:
  - id: web
    url: git@github.com:org/web.git
  - id: fe
    url: git@github.com:org/fe.git
    dir: web/frontend
`},
		{"nested dir listed first", `
version: 1
name: foo
clones:
  - id: fe
    url: git@github.com:org/fe.git
    dir: ./web/frontend/
  - id: web
    url: git@github.com:org/web.git
`},
		{"absolute dir", `
version: 1
name: foo
clones:
  - url: git@github.com:org/a.git
    dir: /tmp/a
`},
		{"escaping dir", `
version: 1
name: foo
clones:
  - url: git@github.com:org/a.git
    dir: ../outside
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParse_siblingDirsSharingPrefix(t *testing.T) {
	data := []byte(`
version: 1
name: foo
clones:
  - id: web
    url: git@github.com:org/web.git
  - id: webapp
    url: git@github.com:org/webapp.git
  - id: fe
    url: git@github.com:org/fe.git
    dir: web-frontend/app
`)
	if _, err := Parse(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFilterByIDs(t *testing.T) {
	entries := []Entry{
		{ID: "a"}, {ID: "b"}, {URL: "git@github.com:org/c.git"},
	}

	t.Run("only", func(t *testing.T) {
		result := FilterByIDs(entries, []string{"a", "c"}, nil)
		if len(result) != 2 {
			t.Errorf("got %d, want 2", len(result))
		}
	})
	t.Run("skip", func(t *testing.T) {
		result := FilterByIDs(entries, nil, []string{"b"})
		if len(result) != 2 {
			t.Errorf("got %d, want 2", len(result))
		}
	})
	t.Run("none", func(t *testing.T) {
		result := FilterByIDs(entries, nil, nil)
		if len(result) != 3 {
			t.Errorf("got %d, want 3", len(result))
		}
	})
}

func TestNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"git@github.com:org/backend.git", "backend"},
		{"https://github.com/org/frontend.git", "frontend"},
		{"https://github.com/org/infra/", "infra"},
		{"ssh://git@host:2222/org/tools.git", "tools"},
		{"/srv/git/local.git", "local"},
	}
	for _, tt := range tests {
		if got := NameFromURL(tt.url); got != tt.want {
			t.Errorf("NameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
