// Package catalog validates Gradle version-catalog documents before a
// build consumes them. It recognizes the catalog subset of TOML
// (sections, scalar strings, inline tables, string arrays), resolves
// cross-references between the versions, libraries, plugins, and
// bundles namespaces, and aggregates findings into errors and warnings.
package catalog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Validator validates one catalog source. It holds no state between
// calls: every Validate re-reads the source and builds a fresh model,
// so a Validator is safe for concurrent use.
type Validator struct {
	path string
	now  func() time.Time
}

// New creates a Validator for the catalog file at path.
func New(path string) *Validator {
	return &Validator{path: path, now: time.Now}
}

// Validate runs the full rule set and returns the aggregated result.
// It never returns a Go error and never panics: unreadable or malformed
// input becomes an invalid result, and any unexpected internal failure
// is reported as a syntax error.
func (v *Validator) Validate() (result *ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = newResult([]string{fmt.Sprintf("Syntax error: internal failure: %v", r)}, nil, v.now())
		}
	}()

	data, err := os.ReadFile(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newResult([]string{fmt.Sprintf("File not found: %s", v.path)}, nil, v.now())
		}
		return newResult([]string{fmt.Sprintf("Unreadable catalog file: %v", err)}, nil, v.now())
	}

	return v.validateText(string(data))
}

// validateText validates raw catalog text. Split out so the document
// pipeline is testable without touching the filesystem.
func (v *Validator) validateText(raw string) *ValidationResult {
	if strings.TrimSpace(raw) == "" {
		return newResult([]string{"Empty catalog file"}, nil, v.now())
	}

	entries, err := extractEntries(raw)
	if err != nil {
		return v.syntaxResult(err)
	}
	model, err := buildCatalog(entries)
	if err != nil {
		return v.syntaxResult(err)
	}

	var errs, warns []string
	for _, check := range ruleChecks {
		e, w := check(raw, model)
		errs = append(errs, e...)
		warns = append(warns, w...)
	}

	return newResult(errs, warns, v.now())
}

// syntaxResult short-circuits to a single syntax-error finding. A broken
// parse cannot be trusted for semantic checks, so none run.
func (v *Validator) syntaxResult(err error) *ValidationResult {
	return newResult([]string{fmt.Sprintf("Syntax error: %v", err)}, nil, v.now())
}
