package main

import (
	"fmt"
	"os"

	"github.com/gradlekit/catalint/internal/common/logger"
	"github.com/gradlekit/catalint/internal/common/output"
	"github.com/gradlekit/catalint/internal/common/version"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "catalint",
	Short: "Gradle version catalog linter",
	Long:  `A pre-flight linter for Gradle version catalogs. Checks libs.versions.toml files for structural problems, unresolved references, and known-bad versions before the build consumes them.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
