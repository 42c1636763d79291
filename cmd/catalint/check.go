package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gradlekit/catalint/internal/catalog"
	"github.com/gradlekit/catalint/internal/common/config"
	"github.com/gradlekit/catalint/internal/common/logger"
	"github.com/gradlekit/catalint/internal/common/output"
	"github.com/spf13/cobra"
)

var warningsAsErrors bool

var checkCmd = &cobra.Command{
	Use:   "check [catalog-file...]",
	Short: "Validate version catalog files",
	Long: `Validate one or more Gradle version catalog files.

Without arguments, catalogs are taken from .catalint.toml in the current
directory, then from the tool configuration, then from the conventional
gradle/libs.versions.toml location.`,
	Run: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "Exit non-zero when warnings are found")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	project, err := config.LoadProject(".")
	if err != nil && !errors.Is(err, config.ErrProjectConfigNotFound) {
		logger.Error("loading project config: %v", err)
		os.Exit(1)
	}

	paths, err := resolveCatalogPaths(args, project)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	hadErrors := false
	hadWarnings := false
	for _, path := range paths {
		result := catalog.New(path).Validate()

		warnings := result.Warnings
		if project != nil {
			warnings = filterSuppressed(warnings, project)
		}

		output.RenderReport(path, result.Errors, warnings)

		if !result.Valid {
			hadErrors = true
		}
		if len(warnings) > 0 {
			hadWarnings = true
		}
	}

	switch {
	case hadErrors:
		os.Exit(1)
	case hadWarnings && warningsAsErrors:
		os.Exit(2)
	}
}

// resolveCatalogPaths determines which catalogs to check: explicit
// arguments win, then the project config, then the tool config, then
// the conventional Gradle location.
func resolveCatalogPaths(args []string, project *config.ProjectConfig) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if project != nil && len(project.Catalogs) > 0 {
		return project.Catalogs, nil
	}

	cfg, err := config.Load()
	if err == nil {
		if path, pathErr := cfg.GetCatalogPath(); pathErr == nil {
			return []string{path}, nil
		}
	}

	return []string{filepath.Join("gradle", "libs.versions.toml")}, nil
}

// filterSuppressed drops warnings matching the project's suppress list.
// Suppression is a reporting concern; the validator itself never skips
// a check.
func filterSuppressed(warnings []string, project *config.ProjectConfig) []string {
	kept := make([]string, 0, len(warnings))
	for _, w := range warnings {
		if !project.Suppressed(w) {
			kept = append(kept, w)
		}
	}
	return kept
}
