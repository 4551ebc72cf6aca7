package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Record represents a record file written after a batch run.
type Record struct {
	Version     int                     `yaml:"version"`
	Name        string                  `yaml:"name"`
	GeneratedAt string                  `yaml:"generated_at"`
	ToolVersion string                  `yaml:"tool_version"`
	Clones      map[string]*RecordEntry `yaml:"clones"`
}

// RecordEntry records the resolved state of a single clone.
type RecordEntry struct {
	URL     string `yaml:"url,omitempty"`
	Ref     string `yaml:"ref"`
	Dir     string `yaml:"dir"`
	Commit  string `yaml:"commit"`
	Shallow bool   `yaml:"shallow"`
}

// LoadRecord reads a record file.
func LoadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the record file path
	if err != nil {
		return nil, fmt.Errorf("reading record file: %w", err)
	}
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing record YAML: %w", err)
	}
	return &r, nil
}

// SaveRecord writes the record file to disk.
func SaveRecord(path string, r *Record) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling record file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // record file needs to be readable
		return fmt.Errorf("writing record file: %w", err)
	}
	return nil
}
