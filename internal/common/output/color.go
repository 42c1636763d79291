// Package output renders validation reports with colored terminal output.
package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// Message colors
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Error   = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
	Dim     = color.New(color.Faint)

	// Structural colors
	Header  = color.New(color.FgWhite, color.Bold)
	Catalog = color.New(color.FgBlue, color.Bold)
)

// NoColor disables color output
func NoColor() {
	color.NoColor = true
}

// ForceColor enables color output even when not a TTY
func ForceColor() {
	color.NoColor = false
}

// IsTerminal returns true if stdout is a terminal
func IsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Printf("✓ "+format+"\n", args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Printf("⚠ "+format+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Printf("→ "+format+"\n", args...)
}

// FormatCatalog formats a catalog path for report headers
func FormatCatalog(path string) string {
	return Catalog.Sprint(path)
}

// RenderReport prints the findings for one catalog: errors first, then
// warnings, then a one-line summary.
func RenderReport(path string, errors, warnings []string) {
	fmt.Println(FormatCatalog(path))

	for _, e := range errors {
		Error.Printf("  ✗ %s\n", e)
	}
	for _, w := range warnings {
		Warning.Printf("  ⚠ %s\n", w)
	}

	switch {
	case len(errors) > 0:
		Error.Printf("  %d error(s), %d warning(s)\n", len(errors), len(warnings))
	case len(warnings) > 0:
		Warning.Printf("  valid, %d warning(s)\n", len(warnings))
	default:
		Success.Println("  valid")
	}
}
