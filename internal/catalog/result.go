package catalog

import "time"

// ValidationResult is the outcome of validating a single catalog document.
// It is constructed exactly once per Validate call and never mutated
// afterwards.
type ValidationResult struct {
	Valid     bool      // True when no errors were found
	Errors    []string  // Fatal findings; any entry makes the catalog invalid
	Warnings  []string  // Advisory findings; never affect Valid
	Timestamp time.Time // When the validation completed
}

// newResult builds an immutable result from collected findings.
// The Valid flag is derived, never set independently.
func newResult(errs, warns []string, at time.Time) *ValidationResult {
	if errs == nil {
		errs = []string{}
	}
	if warns == nil {
		warns = []string{}
	}
	return &ValidationResult{
		Valid:     len(errs) == 0,
		Errors:    errs,
		Warnings:  warns,
		Timestamp: at,
	}
}
