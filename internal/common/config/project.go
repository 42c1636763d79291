package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrProjectConfigNotFound is returned when .catalint.toml is not present
	ErrProjectConfigNotFound = errors.New(".catalint.toml not found")
	// ErrEmptySuppressPattern is returned when a suppress entry is blank
	ErrEmptySuppressPattern = errors.New("suppress entries must not be empty")
)

// projectConfigFile is the name of the per-project configuration file,
// looked up in the working directory.
const projectConfigFile = ".catalint.toml"

// ProjectConfig represents the per-project .catalint.toml file.
// It controls which catalogs are checked and which warnings the CLI
// drops from its report. Suppression happens at the presentation layer;
// the validation engine itself is never configured.
type ProjectConfig struct {
	// Catalogs lists catalog file paths to check, relative to the
	// project root
	Catalogs []string `toml:"catalogs"`
	// Suppress lists warning substrings to omit from the report
	Suppress []string `toml:"suppress"`
}

// LoadProject loads and parses .catalint.toml from dir.
func LoadProject(dir string) (*ProjectConfig, error) {
	path := filepath.Join(dir, projectConfigFile)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrProjectConfigNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", projectConfigFile, err)
	}

	var cfg ProjectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", projectConfigFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the project configuration for usable values.
func (c *ProjectConfig) Validate() error {
	for _, s := range c.Suppress {
		if strings.TrimSpace(s) == "" {
			return ErrEmptySuppressPattern
		}
	}
	return nil
}

// Suppressed reports whether a warning matches one of the configured
// suppress substrings.
func (c *ProjectConfig) Suppressed(warning string) bool {
	for _, s := range c.Suppress {
		if strings.Contains(warning, s) {
			return true
		}
	}
	return false
}
