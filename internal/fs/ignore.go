package fs

import (
	"path/filepath"
	"strings"
)

// defaultIgnorePatterns are OS metadata artifacts that are never organized.
var defaultIgnorePatterns = []string{
	".DS_Store",
	"._*",
	"Thumbs.db",
	"desktop.ini",
}

// IgnoreMatcher checks file names against a set of glob patterns.
// The source directory is flat, so patterns match the base name only.
type IgnoreMatcher struct {
	patterns []string
}

// NewIgnoreMatcher creates an IgnoreMatcher from raw pattern strings.
// Blank entries and entries starting with '#' are skipped.
func NewIgnoreMatcher(rawPatterns []string) *IgnoreMatcher {
	var patterns []string
	for _, raw := range rawPatterns {
		raw = strings.TrimSpace(raw)
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		patterns = append(patterns, raw)
	}
	return &IgnoreMatcher{patterns: patterns}
}

// Match reports whether name should be ignored.
func (m *IgnoreMatcher) Match(name string) bool {
	if name == "" {
		return false
	}
	base := filepath.Base(name)
	for _, p := range m.patterns {
		matched, err := filepath.Match(p, base)
		if err != nil {
			// Bad pattern, skip rather than fail the run.
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
