package registry

import (
	"path"
	"strings"
)

// Filter selects contexts by name pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// FilterNames returns the names of registered contexts matching the pattern,
// in registry order. Supports wildcard patterns like "parser_*" or "*codec*";
// a pattern without wildcards is a substring match. An empty pattern matches
// every context.
func (f *Filter) FilterNames(r *Registry, pattern string) []string {
	var names []string
	for _, c := range r.Contexts() {
		if f.matches(c.Name, pattern) {
			names = append(names, c.Name)
		}
	}
	return names
}

func (f *Filter) matches(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	// Patterns like "*codec*" where path.Match is too strict: every
	// non-empty part between wildcards must appear in the name.
	if strings.Contains(pattern, "*") {
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
