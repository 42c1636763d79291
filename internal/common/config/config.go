package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrCatalogPathNotSet   = errors.New("catalog path is not configured")
	ErrCatalogPathNotFound = errors.New("catalog file does not exist")
)

// Config represents the tool configuration
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
}

// CatalogConfig holds catalog lookup settings
type CatalogConfig struct {
	Path string `yaml:"path"` // Default catalog file checked when none is given
}

// OutputConfig holds report rendering settings
type OutputConfig struct {
	Color bool `yaml:"color"`
}

// ConfigPaths returns all possible config file paths in priority order
// 1. ~/.config/catalint/config.yaml (XDG standard - priority)
// 2. ~/.catalint/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "catalint", "config.yaml"),
		filepath.Join(home, ".catalint", "config.yaml"),
	}, nil
}

// DefaultConfigPath returns the default config file path (XDG standard)
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path
// Returns the default path if no config file exists yet
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	// No config exists, return default (XDG) path for creation
	return paths[0], nil
}

// Load reads configuration from the first available config file
// Priority: ~/.config/catalint/config.yaml > ~/.catalint/config.yaml
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Create default config
			cfg := &Config{
				Catalog: CatalogConfig{
					Path: filepath.Join("gradle", "libs.versions.toml"),
				},
				Output: OutputConfig{Color: true},
			}
			if saveErr := cfg.SaveTo(path); saveErr != nil {
				return nil, saveErr
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes configuration to the default config file
func (c *Config) Save() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes configuration to a specific file path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetCatalogPath returns the configured default catalog path, verified
// to exist and to be a regular file.
func (c *Config) GetCatalogPath() (string, error) {
	if c.Catalog.Path == "" {
		return "", ErrCatalogPathNotSet
	}

	// Expand home directory if needed
	path := c.Catalog.Path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrCatalogPathNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", ErrCatalogPathNotFound
	}

	return path, nil
}
