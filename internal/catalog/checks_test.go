package catalog

import (
	"strings"
	"testing"
)

func runChecks(t *testing.T, raw string) (errs, warns []string) {
	t.Helper()
	c := mustBuild(t, raw)
	for _, check := range ruleChecks {
		e, w := check(raw, c)
		errs = append(errs, e...)
		warns = append(warns, w...)
	}
	return errs, warns
}

func containsSubstring(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestCheckRequiredSections(t *testing.T) {
	errs, _ := runChecks(t, "[plugins]\np = { id = \"a.b\" }\n")
	if !containsSubstring(errs, "versions section is required") {
		t.Errorf("missing [versions] not reported: %v", errs)
	}
	if !containsSubstring(errs, "libraries section is required") {
		t.Errorf("missing [libraries] not reported: %v", errs)
	}

	errs, _ = runChecks(t, "[versions]\njunit = \"4.13.2\"\n[libraries]\n")
	if containsSubstring(errs, "section is required") {
		t.Errorf("present sections reported missing: %v", errs)
	}
}

func TestCheckVersionFormat(t *testing.T) {
	raw := `[versions]
good = "1.2.3"
wild = "1.2.+"
range = "[1.0,2.0)"
bad = "not-a-version"
[libraries]
junit = { module = "junit:junit", version.ref = "good" }
`
	errs, _ := runChecks(t, raw)
	if !containsSubstring(errs, "Invalid version format: not-a-version for key bad") {
		t.Errorf("bad version not reported: %v", errs)
	}
	if containsSubstring(errs, "for key good") || containsSubstring(errs, "for key wild") || containsSubstring(errs, "for key range") {
		t.Errorf("valid versions reported: %v", errs)
	}
}

func TestCheckDuplicateKeys(t *testing.T) {
	raw := `[versions]
agp = "8.11.1"
agp = "8.0.0"
junit = "4.13.2"
[libraries]
`
	errs, _ := runChecks(t, raw)
	if !containsSubstring(errs, "Duplicate key: agp") {
		t.Errorf("duplicate agp not reported: %v", errs)
	}
	if containsSubstring(errs, "Duplicate key: junit") {
		t.Errorf("single declaration reported as duplicate: %v", errs)
	}
}

func TestCheckVersionRefs(t *testing.T) {
	raw := `[versions]
agp = "8.11.1"
unused = "1.0.0"
[libraries]
lib = { module = "com.example:lib", version.ref = "agp" }
broken = { module = "com.example:broken", version.ref = "nope" }
[plugins]
p = { id = "a.b.c", version.ref = "ghost" }
`
	errs, warns := runChecks(t, raw)
	if !containsSubstring(errs, "Missing version reference: nope") {
		t.Errorf("library ref not resolved: %v", errs)
	}
	if !containsSubstring(errs, "Missing version reference: ghost") {
		t.Errorf("plugin ref not resolved: %v", errs)
	}
	if !containsSubstring(warns, "Unreferenced version: unused") {
		t.Errorf("unreferenced version not reported: %v", warns)
	}
	if containsSubstring(warns, "Unreferenced version: agp") {
		t.Errorf("referenced version reported as unreferenced: %v", warns)
	}
}

func TestCheckModuleFormat(t *testing.T) {
	raw := `[versions]
junit = "4.13.2"
[libraries]
good = { module = "com.example:lib" }
bad = { module = "com.example lib" }
none = { group = "com.example", name = "lib" }
`
	errs, _ := runChecks(t, raw)
	if !containsSubstring(errs, "Invalid module format: com.example lib") {
		t.Errorf("bad module not reported: %v", errs)
	}
	if containsSubstring(errs, "Invalid module format: com.example:lib") {
		t.Errorf("good module reported: %v", errs)
	}
}

func TestCheckPluginIDFormat(t *testing.T) {
	raw := `[versions]
junit = "4.13.2"
[libraries]
[plugins]
good = { id = "com.android.application" }
bad = { id = "nodots" }
missing = { version = "1.0.0" }
`
	errs, _ := runChecks(t, raw)
	if !containsSubstring(errs, "Invalid plugin ID format: nodots") {
		t.Errorf("bad plugin id not reported: %v", errs)
	}
	if containsSubstring(errs, "com.android.application") {
		t.Errorf("good plugin id reported: %v", errs)
	}
	// A plugin with no id at all is accepted.
	count := 0
	for _, e := range errs {
		if strings.Contains(e, "Invalid plugin ID format") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one plugin format error, got %d: %v", count, errs)
	}
}

func TestCheckBundleRefs(t *testing.T) {
	raw := `[versions]
junit = "4.13.2"
[libraries]
lib = { module = "com.example:lib" }
[bundles]
ok = ["lib"]
broken = ["missingLib"]
nested = ["ok"]
`
	errs, _ := runChecks(t, raw)
	if !containsSubstring(errs, "Invalid bundle reference: missingLib in bundle broken") {
		t.Errorf("unknown member not reported: %v", errs)
	}
	// Bundles never compose: a member naming a bundle fails the same way.
	if !containsSubstring(errs, "Invalid bundle reference: ok in bundle nested") {
		t.Errorf("bundle-typed member not reported: %v", errs)
	}
	if containsSubstring(errs, "in bundle ok") {
		t.Errorf("valid bundle reported: %v", errs)
	}
}

func TestCheckCriticalDeps(t *testing.T) {
	raw := `[versions]
agp = "8.0.1"
[libraries]
lib = { module = "com.example:lib" }
`
	_, warns := runChecks(t, raw)
	if !containsSubstring(warns, "Missing critical dependency: No testing dependencies found") {
		t.Errorf("missing testing deps not reported: %v", warns)
	}

	raw = strings.Replace(raw, "com.example:lib", "junit:junit", 1)
	_, warns = runChecks(t, raw)
	if containsSubstring(warns, "Missing critical dependency") {
		t.Errorf("testing dep present but still reported: %v", warns)
	}
}

func TestCheckCompatibility(t *testing.T) {
	raw := `[versions]
agp = "8.11.1"
kotlin = "1.8.0"
[libraries]
junit = { module = "junit:junit" }
`
	errs, _ := runChecks(t, raw)
	if !containsSubstring(errs, "Version incompatibility: AGP 8.11.1 requires Kotlin 1.9.0+") {
		t.Errorf("known incompatibility not reported: %v", errs)
	}

	// Satisfying the requirement clears the error.
	raw = strings.Replace(raw, `"1.8.0"`, `"1.9.20"`, 1)
	errs, _ = runChecks(t, raw)
	if containsSubstring(errs, "Version incompatibility") {
		t.Errorf("compatible pair reported: %v", errs)
	}

	// The rule only fires when both keys are declared.
	raw = `[versions]
agp = "8.11.1"
[libraries]
junit = { module = "junit:junit" }
`
	errs, _ = runChecks(t, raw)
	if containsSubstring(errs, "Version incompatibility") {
		t.Errorf("rule fired without the paired key: %v", errs)
	}
}

func TestCheckVulnerable(t *testing.T) {
	raw := `[versions]
junit = "4.12"
[libraries]
j = { module = "junit:junit", version.ref = "junit" }
`
	_, warns := runChecks(t, raw)
	if !containsSubstring(warns, "Potentially vulnerable version: junit 4.12") {
		t.Errorf("vulnerable junit not reported: %v", warns)
	}

	raw = strings.Replace(raw, `"4.12"`, `"4.13.2"`, 1)
	_, warns = runChecks(t, raw)
	if containsSubstring(warns, "Potentially vulnerable version") {
		t.Errorf("patched version reported: %v", warns)
	}
}
