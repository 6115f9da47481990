package discovery

import (
	"path/filepath"
	"strings"

	"ctr/internal/domain"
)

// Filter filters cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters cases by name pattern using wildcard matching.
// Supports patterns like "test_*" or "*loop*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(cases []domain.Case, pattern string) []domain.Case {
	if pattern == "" {
		return cases
	}

	var filtered []domain.Case
	for _, c := range cases {
		if f.matches(c.Name, pattern) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (f *Filter) matches(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*a*b*" style patterns: every literal part must appear, in order
	if strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
		rest := name
		found := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			i := strings.Index(rest, part)
			if i < 0 {
				return false
			}
			rest = rest[i+len(part):]
			found = true
		}
		return found
	}

	return false
}
