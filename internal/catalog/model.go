package catalog

import (
	"fmt"
	"strings"
)

// VersionEntry is a named version declaration from [versions].
type VersionEntry struct {
	Key      string
	RawValue string
}

// LibraryEntry is a dependency declaration from [libraries]. All fields
// except Key are optional: a module string and separate group/name
// fields may coexist, and an entry with neither is still accepted.
type LibraryEntry struct {
	Key        string
	Module     string // group:artifact coordinate
	Group      string
	Name       string
	VersionRef string // reference into the versions namespace
	Version    string // inline version, mutually usable with VersionRef
}

// PluginEntry is a plugin declaration from [plugins]. ID may be absent.
type PluginEntry struct {
	Key        string
	ID         string
	VersionRef string
	Version    string
}

// BundleEntry is a named flat group of library keys from [bundles].
type BundleEntry struct {
	Key     string
	Members []string
}

// Catalog is the in-memory model of one catalog document. It is built
// fresh per validation and read-only once rule checks begin.
type Catalog struct {
	Versions  map[string]VersionEntry
	Libraries map[string]LibraryEntry
	Plugins   map[string]PluginEntry
	Bundles   map[string]BundleEntry

	// Duplicates lists keys declared more than once within their
	// namespace, each recorded once, in first-repeat order. The first
	// binding stays canonical for resolution.
	Duplicates []string
}

// buildCatalog populates the four namespaces from extracted entries.
// Entries in unknown sections are ignored. A malformed inline table
// returns a *SyntaxError.
func buildCatalog(entries []entry) (*Catalog, error) {
	c := &Catalog{
		Versions:  make(map[string]VersionEntry),
		Libraries: make(map[string]LibraryEntry),
		Plugins:   make(map[string]PluginEntry),
		Bundles:   make(map[string]BundleEntry),
	}
	dupSeen := make(map[string]bool)

	recordDup := func(key string) {
		if !dupSeen[key] {
			dupSeen[key] = true
			c.Duplicates = append(c.Duplicates, key)
		}
	}

	for _, e := range entries {
		switch e.section {
		case "versions":
			if _, exists := c.Versions[e.key]; exists {
				recordDup(e.key)
				continue
			}
			c.Versions[e.key] = VersionEntry{Key: e.key, RawValue: unquote(e.value)}

		case "libraries":
			if _, exists := c.Libraries[e.key]; exists {
				recordDup(e.key)
				continue
			}
			lib, err := parseLibrary(e.key, e.value)
			if err != nil {
				return nil, err
			}
			c.Libraries[e.key] = lib

		case "plugins":
			if _, exists := c.Plugins[e.key]; exists {
				recordDup(e.key)
				continue
			}
			plugin, err := parsePlugin(e.key, e.value)
			if err != nil {
				return nil, err
			}
			c.Plugins[e.key] = plugin

		case "bundles":
			if _, exists := c.Bundles[e.key]; exists {
				recordDup(e.key)
				continue
			}
			c.Bundles[e.key] = BundleEntry{Key: e.key, Members: parseStringArray(e.value)}
		}
	}

	return c, nil
}

// parseLibrary builds a LibraryEntry from an inline table or the
// "group:artifact:version" scalar shorthand.
func parseLibrary(key, value string) (LibraryEntry, error) {
	lib := LibraryEntry{Key: key}

	if strings.HasPrefix(strings.TrimSpace(value), "{") {
		fields, err := parseInlineTable(value)
		if err != nil {
			return lib, err
		}
		lib.Module = fields["module"]
		lib.Group = fields["group"]
		lib.Name = fields["name"]
		lib.VersionRef = fields["version.ref"]
		lib.Version = fields["version"]
		return lib, nil
	}

	// Scalar shorthand; anything else is accepted as-is (lenient).
	parts := strings.Split(unquote(value), ":")
	if len(parts) == 3 {
		lib.Module = parts[0] + ":" + parts[1]
		lib.Version = parts[2]
	}
	return lib, nil
}

// parsePlugin builds a PluginEntry from an inline table or the
// "plugin.id:version" scalar shorthand.
func parsePlugin(key, value string) (PluginEntry, error) {
	plugin := PluginEntry{Key: key}

	if strings.HasPrefix(strings.TrimSpace(value), "{") {
		fields, err := parseInlineTable(value)
		if err != nil {
			return plugin, err
		}
		plugin.ID = fields["id"]
		plugin.VersionRef = fields["version.ref"]
		plugin.Version = fields["version"]
		return plugin, nil
	}

	lit := unquote(value)
	if idx := strings.LastIndex(lit, ":"); idx >= 0 {
		plugin.ID = lit[:idx]
		plugin.Version = lit[idx+1:]
	} else {
		plugin.ID = lit
	}
	return plugin, nil
}

// parseInlineTable extracts the key/value pairs of a "{ ... }" body.
// A nested table value such as version = { ref = "x" } is flattened to
// dotted keys ("version.ref"). The trailing comma is optional.
func parseInlineTable(body string) (map[string]string, error) {
	inner := strings.TrimSpace(body)
	if !strings.HasPrefix(inner, "{") || !strings.HasSuffix(inner, "}") {
		return nil, &SyntaxError{Detail: fmt.Sprintf("malformed inline table %q", body)}
	}
	inner = inner[1 : len(inner)-1]

	fields := make(map[string]string)
	for _, part := range splitTopLevel(inner, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		eq := strings.Index(part, "=")
		if eq < 0 {
			return nil, &SyntaxError{Detail: fmt.Sprintf("missing '=' in inline table entry %q", part)}
		}
		k := strings.TrimSpace(part[:eq])
		v := strings.TrimSpace(part[eq+1:])
		if k == "" {
			return nil, &SyntaxError{Detail: fmt.Sprintf("missing key in inline table entry %q", part)}
		}
		if strings.HasPrefix(v, "{") {
			nested, err := parseInlineTable(v)
			if err != nil {
				return nil, err
			}
			for nk, nv := range nested {
				fields[k+"."+nk] = nv
			}
			continue
		}
		fields[k] = unquote(v)
	}
	return fields, nil
}

// parseStringArray extracts the quoted members of a "[ ... ]" body.
func parseStringArray(body string) []string {
	inner := strings.TrimSpace(body)
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")

	var members []string
	for _, part := range splitTopLevel(inner, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		members = append(members, unquote(part))
	}
	return members
}
