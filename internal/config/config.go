// Package config resolves gitclone settings from built-in defaults, an
// optional YAML file, a .env file, and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = ".gitclone.yaml"

// DotEnvFile is loaded into the environment when present.
const DotEnvFile = ".env"

// Config holds resolved settings. Command-line flags override it.
type Config struct {
	Ref     string `yaml:"ref,omitempty"`
	BaseDir string `yaml:"base_dir,omitempty"`
	Git     string `yaml:"git,omitempty"`
	Jobs    int    `yaml:"jobs,omitempty"`
	NoColor bool   `yaml:"no_color,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Ref:     "master",
		BaseDir: filepath.Join(os.TempDir(), "git"),
		Git:     "git",
		Jobs:    4,
	}
}

// Load builds a Config. An explicit path must exist; when path is empty,
// DefaultFile is used only if present.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := mergeFile(&cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := loadDotEnv(DotEnvFile); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadDotEnv sets variables from path without overriding the environment.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied config file
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if fc.Ref != "" {
		cfg.Ref = fc.Ref
	}
	if fc.BaseDir != "" {
		cfg.BaseDir = expandHome(fc.BaseDir)
	}
	if fc.Git != "" {
		cfg.Git = fc.Git
	}
	if fc.Jobs != 0 {
		cfg.Jobs = fc.Jobs
	}
	cfg.NoColor = cfg.NoColor || fc.NoColor
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("GITCLONE_REF")); v != "" {
		cfg.Ref = v
	}
	if v := strings.TrimSpace(getenv("GITCLONE_BASE_DIR")); v != "" {
		cfg.BaseDir = expandHome(v)
	}
	if v := strings.TrimSpace(getenv("GITCLONE_GIT")); v != "" {
		cfg.Git = v
	}
	if v := strings.TrimSpace(getenv("GITCLONE_JOBS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GITCLONE_JOBS: %w", err)
		}
		cfg.Jobs = n
	}
	if getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return nil
}

// Validate checks that settings are usable.
func (c Config) Validate() error {
	if c.Ref == "" {
		return fmt.Errorf("config: ref must not be empty")
	}
	if c.Git == "" {
		return fmt.Errorf("config: git must not be empty")
	}
	if c.Jobs < 1 {
		return fmt.Errorf("config: jobs must be >= 1 (got %d)", c.Jobs)
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
