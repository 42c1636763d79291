package main

import (
	"path/filepath"
	"testing"

	"github.com/gradlekit/catalint/internal/common/config"
)

func TestResolveCatalogPathsExplicitArgsWin(t *testing.T) {
	project := &config.ProjectConfig{Catalogs: []string{"from-project.toml"}}

	paths, err := resolveCatalogPaths([]string{"a.toml", "b.toml"}, project)
	if err != nil {
		t.Fatalf("resolveCatalogPaths: %v", err)
	}
	if len(paths) != 2 || paths[0] != "a.toml" {
		t.Errorf("explicit args should win, got %v", paths)
	}
}

func TestResolveCatalogPathsProjectConfig(t *testing.T) {
	project := &config.ProjectConfig{Catalogs: []string{"gradle/libs.versions.toml", "gradle/test.versions.toml"}}

	paths, err := resolveCatalogPaths(nil, project)
	if err != nil {
		t.Fatalf("resolveCatalogPaths: %v", err)
	}
	if len(paths) != 2 || paths[1] != "gradle/test.versions.toml" {
		t.Errorf("project catalogs not used, got %v", paths)
	}
}

func TestResolveCatalogPathsConventionalFallback(t *testing.T) {
	// Point the tool config at an empty home so it cannot supply a path.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	paths, err := resolveCatalogPaths(nil, nil)
	if err != nil {
		t.Fatalf("resolveCatalogPaths: %v", err)
	}
	if len(paths) != 1 || paths[0] != filepath.Join("gradle", "libs.versions.toml") {
		t.Errorf("expected conventional fallback, got %v", paths)
	}
}

func TestFilterSuppressed(t *testing.T) {
	project := &config.ProjectConfig{Suppress: []string{"Unreferenced version"}}
	warnings := []string{
		"Unreferenced version: junit",
		"Potentially vulnerable version: junit 4.12",
	}

	kept := filterSuppressed(warnings, project)
	if len(kept) != 1 || kept[0] != "Potentially vulnerable version: junit 4.12" {
		t.Errorf("suppression filtered wrong warnings: %v", kept)
	}
}
