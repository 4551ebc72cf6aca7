package batch

import (
	"path"
	"strings"
)

// File represents a batch YAML file.
type File struct {
	Version  int      `yaml:"version"`
	Name     string   `yaml:"name"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Clones   []Entry  `yaml:"clones"`
}

// Defaults apply to every entry that does not override them.
type Defaults struct {
	Ref     string `yaml:"ref,omitempty"`
	BaseDir string `yaml:"base_dir,omitempty"`
}

// Entry is a single clone request.
type Entry struct {
	ID  string `yaml:"id,omitempty"`
	URL string `yaml:"url"`
	Ref string `yaml:"ref,omitempty"`
	Dir string `yaml:"dir,omitempty"`
}

// EffectiveID returns the entry ID, derived from the URL when unset.
func (e *Entry) EffectiveID() string {
	if e.ID != "" {
		return e.ID
	}
	return NameFromURL(e.URL)
}

// EffectiveRef returns the ref for this entry, falling back to defaults.
// Returns empty string when neither sets one, leaving the choice to the cloner.
func (e *Entry) EffectiveRef(d Defaults) string {
	if e.Ref != "" {
		return e.Ref
	}
	return d.Ref
}

// EffectiveDir returns the directory relative to the base dir, defaulting
// to the entry ID.
func (e *Entry) EffectiveDir() string {
	if e.Dir != "" {
		return e.Dir
	}
	return e.EffectiveID()
}

// NameFromURL extracts a repository name from a Git URL.
// Handles both SSH (git@host:org/repo.git) and HTTPS (https://host/org/repo.git).
func NameFromURL(url string) string {
	url = strings.TrimRight(url, "/")

	// SSH format: git@github.com:org/repo.git
	if idx := strings.LastIndex(url, ":"); idx != -1 && !strings.Contains(url, "://") {
		url = url[idx+1:]
	}

	name := path.Base(url)
	return strings.TrimSuffix(name, ".git")
}
