package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid batch file")

// Load reads and validates a batch file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied batch file
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates batch file content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing YAML: %v", ErrInvalid, err)
	}
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the batch file for errors.
func Validate(f *File) error {
	if f.Version != 1 {
		return invalid("unsupported version: %d (expected 1)", f.Version)
	}
	if f.Name == "" {
		return invalid("name is required")
	}
	ids := make(map[string]bool, len(f.Clones))
	type claim struct{ dir, id string }
	claims := make([]claim, 0, len(f.Clones))
	for i, e := range f.Clones {
		if e.URL == "" {
			return invalid("clones[%d].url is required", i)
		}
		id := e.EffectiveID()
		if id == "" || id == "." || id == "/" {
			return invalid("clones[%d]: cannot derive an id from url %q, set id", i, e.URL)
		}
		if ids[id] {
			return invalid("duplicate clone id %q", id)
		}
		ids[id] = true

		dir := e.EffectiveDir()
		if err := validatePath(dir, fmt.Sprintf("clones[%d] (%s).dir", i, id)); err != nil {
			return err
		}
		key := filepath.Clean(dir)
		for _, c := range claims {
			if c.dir == key {
				return invalid("clones %q and %q share directory %s", c.id, id, dir)
			}
			if isWithin(key, c.dir) || isWithin(c.dir, key) {
				return invalid("clones %q and %q have nested directories %s and %s", c.id, id, c.dir, key)
			}
		}
		claims = append(claims, claim{dir: key, id: id})
	}
	return nil
}

// isWithin reports whether the cleaned path p lies below dir.
func isWithin(p, dir string) bool {
	return strings.HasPrefix(p, dir+string(filepath.Separator))
}

// validatePath ensures a path is relative and stays under the base dir.
func validatePath(p, label string) error {
	if filepath.IsAbs(p) {
		return invalid("%s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return invalid("%s: path must stay inside the base directory: %s", label, p)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// FilterByIDs returns entries matching --only / --skip flags.
func FilterByIDs(entries []Entry, only, skip []string) []Entry {
	if len(only) == 0 && len(skip) == 0 {
		return entries
	}
	onlySet := toSet(only)
	skipSet := toSet(skip)
	var result []Entry
	for _, e := range entries {
		id := e.EffectiveID()
		if len(onlySet) > 0 && !onlySet[id] {
			continue
		}
		if skipSet[id] {
			continue
		}
		result = append(result, e)
	}
	return result
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
