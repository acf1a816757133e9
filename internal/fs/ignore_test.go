package fs

import (
	"testing"
)

func TestNewIgnoreMatcher(t *testing.T) {
	t.Run("skips blank lines and comments", func(t *testing.T) {
		t.Parallel()
		m := NewIgnoreMatcher([]string{"", "  ", "# comment", "*.tmp"})
		if len(m.patterns) != 1 {
			t.Fatalf("expected 1 pattern, got %d", len(m.patterns))
		}
		if m.patterns[0] != "*.tmp" {
			t.Errorf("expected *.tmp, got %s", m.patterns[0])
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()
		m := NewIgnoreMatcher([]string{"  Thumbs.db  "})
		if len(m.patterns) != 1 || m.patterns[0] != "Thumbs.db" {
			t.Errorf("patterns = %v, want [Thumbs.db]", m.patterns)
		}
	})
}

func TestIgnoreMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		file     string
		want     bool
	}{
		{
			name:     "exact name",
			patterns: []string{".DS_Store"},
			file:     ".DS_Store",
			want:     true,
		},
		{
			name:     "exact name is case sensitive",
			patterns: []string{".DS_Store"},
			file:     ".ds_store",
			want:     false,
		},
		{
			name:     "prefix glob matches AppleDouble file",
			patterns: []string{"._*"},
			file:     "._IMG_0001.jpg",
			want:     true,
		},
		{
			name:     "prefix glob does not match regular photo",
			patterns: []string{"._*"},
			file:     "IMG_0001.jpg",
			want:     false,
		},
		{
			name:     "extension glob",
			patterns: []string{"*.tmp"},
			file:     "upload.tmp",
			want:     true,
		},
		{
			name:     "matches base name of a full path",
			patterns: []string{"Thumbs.db"},
			file:     "/photos/incoming/Thumbs.db",
			want:     true,
		},
		{
			name:     "bad pattern is skipped",
			patterns: []string{"[", "*.tmp"},
			file:     "a.tmp",
			want:     true,
		},
		{
			name:     "no patterns matches nothing",
			patterns: nil,
			file:     "anything.jpg",
			want:     false,
		},
		{
			name:     "empty name",
			patterns: []string{"*"},
			file:     "",
			want:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewIgnoreMatcher(tt.patterns)
			if got := m.Match(tt.file); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}
