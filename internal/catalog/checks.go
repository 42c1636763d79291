package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// checkFunc is one independent rule check. Checks are read-only over the
// model; some also scan the raw text for patterns the model does not
// capture. Execution order only affects display order, never the result
// set.
type checkFunc func(raw string, c *Catalog) (errs, warns []string)

// ruleChecks run in this fixed order during aggregation.
var ruleChecks = []checkFunc{
	checkRequiredSections,
	checkVersionFormat,
	checkDuplicateKeys,
	checkVersionRefs,
	checkModuleFormat,
	checkPluginIDFormat,
	checkBundleRefs,
	checkCriticalDeps,
	checkCompatibility,
	checkVulnerable,
}

// checkRequiredSections verifies the [versions] and [libraries] headers
// exist. A substring test on the raw text keeps this independent of
// section order.
func checkRequiredSections(raw string, _ *Catalog) ([]string, []string) {
	var errs []string
	if !strings.Contains(raw, "[versions]") {
		errs = append(errs, "versions section is required")
	}
	if !strings.Contains(raw, "[libraries]") {
		errs = append(errs, "libraries section is required")
	}
	return errs, nil
}

// checkVersionFormat verifies every declared version matches one of the
// accepted shapes: semantic, trailing wildcard, or bracket range.
func checkVersionFormat(_ string, c *Catalog) ([]string, []string) {
	var errs []string
	for _, key := range sortedKeys(c.Versions) {
		v := c.Versions[key]
		if !IsValidVersion(v.RawValue) {
			errs = append(errs, fmt.Sprintf("Invalid version format: %s for key %s", v.RawValue, key))
		}
	}
	return errs, nil
}

// checkDuplicateKeys reports keys declared more than once within their
// namespace, as recorded by the model builder.
func checkDuplicateKeys(_ string, c *Catalog) ([]string, []string) {
	var errs []string
	for _, key := range c.Duplicates {
		errs = append(errs, fmt.Sprintf("Duplicate key: %s", key))
	}
	return errs, nil
}

// checkVersionRefs resolves every version.ref against the versions
// namespace and flags versions nothing references.
func checkVersionRefs(_ string, c *Catalog) ([]string, []string) {
	referenced := make(map[string]bool)
	var errs []string

	resolve := func(ref string) {
		if ref == "" {
			return
		}
		referenced[ref] = true
		if _, ok := c.Versions[ref]; !ok {
			errs = append(errs, fmt.Sprintf("Missing version reference: %s", ref))
		}
	}

	for _, key := range sortedKeys(c.Libraries) {
		resolve(c.Libraries[key].VersionRef)
	}
	for _, key := range sortedKeys(c.Plugins) {
		resolve(c.Plugins[key].VersionRef)
	}

	var warns []string
	for _, key := range sortedKeys(c.Versions) {
		if !referenced[key] {
			warns = append(warns, fmt.Sprintf("Unreferenced version: %s", key))
		}
	}
	return errs, warns
}

// checkModuleFormat verifies every module value is a group:artifact
// coordinate. Entries without a module are accepted.
func checkModuleFormat(_ string, c *Catalog) ([]string, []string) {
	var errs []string
	for _, key := range sortedKeys(c.Libraries) {
		lib := c.Libraries[key]
		if lib.Module != "" && !IsValidModule(lib.Module) {
			errs = append(errs, fmt.Sprintf("Invalid module format: %s", lib.Module))
		}
	}
	return errs, nil
}

// checkPluginIDFormat verifies every plugin id is a dotted identifier.
// Entries without an id are accepted.
func checkPluginIDFormat(_ string, c *Catalog) ([]string, []string) {
	var errs []string
	for _, key := range sortedKeys(c.Plugins) {
		plugin := c.Plugins[key]
		if plugin.ID != "" && !IsValidPluginID(plugin.ID) {
			errs = append(errs, fmt.Sprintf("Invalid plugin ID format: %s", plugin.ID))
		}
	}
	return errs, nil
}

// checkBundleRefs verifies every bundle member names a known library
// key. A member naming another bundle fails the same way: bundles do
// not compose.
func checkBundleRefs(_ string, c *Catalog) ([]string, []string) {
	var errs []string
	for _, key := range sortedKeys(c.Bundles) {
		for _, member := range c.Bundles[key].Members {
			if _, ok := c.Libraries[member]; !ok {
				errs = append(errs, fmt.Sprintf("Invalid bundle reference: %s in bundle %s", member, key))
			}
		}
	}
	return errs, nil
}

// checkCriticalDeps warns when no known testing library appears anywhere
// in the document.
func checkCriticalDeps(raw string, _ *Catalog) ([]string, []string) {
	lower := strings.ToLower(raw)
	for _, fragment := range criticalTestingFragments {
		if strings.Contains(lower, fragment) {
			return nil, nil
		}
	}
	return nil, []string{"Missing critical dependency: No testing dependencies found"}
}

// checkCompatibility applies the compatibility matrix to the declared
// versions. A rule only fires when both keys are declared.
func checkCompatibility(_ string, c *Catalog) ([]string, []string) {
	var errs []string
	for _, rule := range compatibilityMatrix {
		a, ok := c.Versions[rule.KeyA]
		if !ok || a.RawValue != rule.VersionA {
			continue
		}
		b, ok := c.Versions[rule.KeyB]
		if !ok {
			continue
		}
		if compareVersions(b.RawValue, rule.MinB) < 0 {
			errs = append(errs, fmt.Sprintf("Version incompatibility: %s %s requires %s %s+",
				rule.NameA, rule.VersionA, rule.NameB, rule.MinB))
		}
	}
	return errs, nil
}

// checkVulnerable warns about declared versions with known security
// advisories.
func checkVulnerable(_ string, c *Catalog) ([]string, []string) {
	var warns []string
	for _, key := range sortedKeys(c.Versions) {
		bad, ok := vulnerableVersions[key]
		if !ok {
			continue
		}
		declared := c.Versions[key].RawValue
		for _, v := range bad {
			if declared == v {
				warns = append(warns, fmt.Sprintf("Potentially vulnerable version: %s %s", key, declared))
				break
			}
		}
	}
	return nil, warns
}

// sortedKeys returns map keys in lexical order so findings come out in
// a stable order run to run.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
