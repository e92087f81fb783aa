package discovery

import (
	"path/filepath"
	"strings"

	"ath/internal/domain"
)

// Filter filters suites by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters suites by name pattern using wildcard matching
// Supports patterns like "div*" or "*u*"
func (f *Filter) FilterByName(suites []domain.Suite, pattern string) []domain.Suite {
	if pattern == "" {
		return suites
	}

	var filtered []domain.Suite

	for _, suite := range suites {
		if matches(suite.Name, pattern) {
			filtered = append(filtered, suite)
		}
	}

	return filtered
}

func matches(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// Every non-empty part between wildcards has to appear in the name
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// No wildcards: simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
