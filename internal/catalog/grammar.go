package catalog

import "regexp"

// semanticVersionRegex matches MAJOR[.MINOR[.PATCH]] with optional
// -prerelease and +build metadata, e.g. 8.11.1, 1.0, 2, 1.0.0-rc.1+b42
var semanticVersionRegex = regexp.MustCompile(`^\d+(\.\d+)?(\.\d+)?(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)

// wildcardVersionRegex matches the dynamic two-component form, e.g. 1.2.+
var wildcardVersionRegex = regexp.MustCompile(`^\d+\.\d+\.\+$`)

// rangeVersionRegex matches Maven-style range notation by shape only,
// e.g. [1.0,2.0) or (1.0,). Bounds are not compared numerically.
var rangeVersionRegex = regexp.MustCompile(`^[\[(][0-9., ]*[\])]$`)

// moduleRegex matches group:artifact coordinates: exactly two non-empty
// segments joined by one colon.
var moduleRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+:[A-Za-z0-9._-]+$`)

// pluginIDRegex matches dotted plugin identifiers with at least one dot,
// e.g. com.android.application
var pluginIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)+$`)

// IsValidVersion reports whether s has the shape of a version declaration:
// a semantic version, a trailing-wildcard version, or a bracket range.
func IsValidVersion(s string) bool {
	return semanticVersionRegex.MatchString(s) ||
		wildcardVersionRegex.MatchString(s) ||
		rangeVersionRegex.MatchString(s)
}

// IsValidModule reports whether s is a group:artifact coordinate.
func IsValidModule(s string) bool {
	return moduleRegex.MatchString(s)
}

// IsValidPluginID reports whether s is a dotted plugin identifier.
func IsValidPluginID(s string) bool {
	return pluginIDRegex.MatchString(s)
}
