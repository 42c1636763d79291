package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// entry is one key assignment extracted from the document. value holds
// the raw right-hand side: a quoted scalar, an inline table body
// ("{ ... }"), or a string array ("[ ... ]").
type entry struct {
	section string
	key     string
	value   string
}

// SyntaxError marks a structural parse failure that prevents building a
// trustworthy catalog model. It aborts validation of the document.
type SyntaxError struct {
	Detail string
}

func (e *SyntaxError) Error() string {
	return e.Detail
}

// sectionHeaderRegex matches a complete [name] header line.
// Section names are case-sensitive: [Versions] is not [versions].
var sectionHeaderRegex = regexp.MustCompile(`^\[([^\[\]]+)\]$`)

// extractEntries splits raw catalog text into (section, key, value)
// entries. Inline tables and arrays may span multiple lines; comments
// and surrounding whitespace are ignored. Sections may appear in any
// order. A structural failure returns a *SyntaxError.
func extractEntries(raw string) ([]entry, error) {
	var entries []entry
	seenSections := make(map[string]bool)
	section := ""

	lines := strings.Split(raw, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(stripComment(lines[i]))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			m := sectionHeaderRegex.FindStringSubmatch(line)
			if m == nil {
				return nil, &SyntaxError{Detail: fmt.Sprintf("malformed section header %q", line)}
			}
			name := strings.TrimSpace(m[1])
			if seenSections[name] {
				return nil, &SyntaxError{Detail: fmt.Sprintf("duplicate section [%s]", name)}
			}
			seenSections[name] = true
			section = name
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			return nil, &SyntaxError{Detail: fmt.Sprintf("expected key = value, got %q", line)}
		}
		key := strings.TrimSpace(line[:eq])
		if key == "" {
			return nil, &SyntaxError{Detail: fmt.Sprintf("missing key before '=' in %q", line)}
		}
		value := strings.TrimSpace(line[eq+1:])

		switch {
		case strings.HasPrefix(value, "{"):
			v, next, err := collectBalanced(lines, i, value, '{', '}', key, "inline table")
			if err != nil {
				return nil, err
			}
			value, i = v, next
		case strings.HasPrefix(value, "["):
			v, next, err := collectBalanced(lines, i, value, '[', ']', key, "array")
			if err != nil {
				return nil, err
			}
			value, i = v, next
		}

		entries = append(entries, entry{section: section, key: key, value: value})
	}

	return entries, nil
}

// collectBalanced gathers a multiline value starting at lines[i] until
// the open/close delimiters balance. Returns the joined value and the
// index of the last consumed line.
func collectBalanced(lines []string, i int, first string, open, close rune, key, what string) (string, int, error) {
	depth := balanceDelta(first, open, close)
	parts := []string{first}

	for depth > 0 {
		i++
		if i >= len(lines) {
			return "", 0, &SyntaxError{Detail: fmt.Sprintf("unterminated %s for key %q", what, key)}
		}
		line := stripComment(lines[i])
		parts = append(parts, line)
		depth += balanceDelta(line, open, close)
	}
	if depth < 0 {
		return "", 0, &SyntaxError{Detail: fmt.Sprintf("unbalanced %s for key %q", what, key)}
	}

	return strings.Join(parts, "\n"), i, nil
}

// balanceDelta counts unquoted open/close delimiters in s.
func balanceDelta(s string, open, close rune) int {
	depth := 0
	inSingle, inDouble := false, false
	for _, r := range s {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case inSingle || inDouble:
			// quoted text does not affect nesting
		case r == open:
			depth++
		case r == close:
			depth--
		}
	}
	return depth
}

// stripComment removes a # comment from a line, ignoring # characters
// inside quoted strings.
func stripComment(line string) string {
	inSingle, inDouble := false, false
	for i, r := range line {
		switch r {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return line[:i]
			}
		}
	}
	return line
}

// unquote strips one layer of TOML quoting ('...', "...", '''...''',
// """...""") and returns the literal text. No escape processing is
// performed; the catalog subset does not need it.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range []string{`"""`, "'''"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitTopLevel splits s on sep, ignoring separators inside quotes or
// nested braces/brackets.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	inSingle, inDouble := false, false

	for _, r := range s {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case inSingle || inDouble:
		case r == '{' || r == '[':
			depth++
		case r == '}' || r == ']':
			depth--
		case r == sep && depth == 0:
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	parts = append(parts, cur.String())
	return parts
}
