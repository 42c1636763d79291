package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalint", "config.yaml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("gradle", "libs.versions.toml"), cfg.Catalog.Path)
	assert.True(t, cfg.Output.Color)

	// The default config was persisted for the next run.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadFromRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		Catalog: CatalogConfig{Path: "deps/catalog.toml"},
		Output:  OutputConfig{Color: false},
	}
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "deps/catalog.toml", loaded.Catalog.Path)
	assert.False(t, loaded.Output.Color)
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [broken"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestGetCatalogPath(t *testing.T) {
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "libs.versions.toml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("[versions]\n"), 0644))

	t.Run("existing file", func(t *testing.T) {
		cfg := &Config{Catalog: CatalogConfig{Path: catalogPath}}
		got, err := cfg.GetCatalogPath()
		require.NoError(t, err)
		assert.Equal(t, catalogPath, got)
	})

	t.Run("unset path", func(t *testing.T) {
		cfg := &Config{}
		_, err := cfg.GetCatalogPath()
		assert.ErrorIs(t, err, ErrCatalogPathNotSet)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{Catalog: CatalogConfig{Path: filepath.Join(dir, "nope.toml")}}
		_, err := cfg.GetCatalogPath()
		assert.ErrorIs(t, err, ErrCatalogPathNotFound)
	})

	t.Run("directory instead of file", func(t *testing.T) {
		cfg := &Config{Catalog: CatalogConfig{Path: dir}}
		_, err := cfg.GetCatalogPath()
		assert.ErrorIs(t, err, ErrCatalogPathNotFound)
	})
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	content := `catalogs = ["gradle/libs.versions.toml", "gradle/test.versions.toml"]
suppress = ["Unreferenced version"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".catalint.toml"), []byte(content), 0644))

	cfg, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Len(t, cfg.Catalogs, 2)
	assert.True(t, cfg.Suppressed("Unreferenced version: junit"))
	assert.False(t, cfg.Suppressed("Potentially vulnerable version: junit 4.12"))
}

func TestLoadProjectNotFound(t *testing.T) {
	_, err := LoadProject(t.TempDir())
	assert.ErrorIs(t, err, ErrProjectConfigNotFound)
}

func TestLoadProjectEmptySuppress(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".catalint.toml"), []byte("suppress = [\"  \"]\n"), 0644))

	_, err := LoadProject(dir)
	assert.ErrorIs(t, err, ErrEmptySuppressPattern)
}
