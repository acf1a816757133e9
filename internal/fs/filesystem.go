package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"photosort/internal/photosort"
)

// OSFilesystemManager is the real filesystem implementation of FilesystemManager.
type OSFilesystemManager struct {
	ignore *IgnoreMatcher
}

// NewOSFilesystemManager creates a filesystem manager. ignorePatterns are added
// to the built-in set of OS artifacts that are never organized.
func NewOSFilesystemManager(ignorePatterns []string) *OSFilesystemManager {
	patterns := append(append([]string{}, defaultIgnorePatterns...), ignorePatterns...)
	return &OSFilesystemManager{ignore: NewIgnoreMatcher(patterns)}
}

// Resolve converts rawPath to an absolute path and stats it.
func (m *OSFilesystemManager) Resolve(rawPath string) (*photosort.Path, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}

	return photosort.NewPath(absPath, info.IsDir(), info), nil
}

// ReadDir lists the immediate entries of dir in name order.
// Symlinks keep their own info, so they are never regular files, but a link
// to a directory is reported as a directory.
func (m *OSFilesystemManager) ReadDir(dir *photosort.Path) ([]*photosort.Path, error) {
	if !dir.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir.String())
	}

	entries, err := os.ReadDir(dir.String())
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	paths := make([]*photosort.Path, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		fullPath := filepath.Join(dir.String(), entry.Name())
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// Dangling links are not directories.
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}
		paths = append(paths, photosort.NewPath(fullPath, isDir, info))
	}
	return paths, nil
}

// Open opens a file for reading.
func (m *OSFilesystemManager) Open(path *photosort.Path) (io.ReadCloser, error) {
	if path.IsDir() {
		return nil, fmt.Errorf("cannot open directory as file: %s", path.String())
	}
	return os.Open(path.String())
}

// Stat returns fresh file info for a path.
func (m *OSFilesystemManager) Stat(path *photosort.Path) (fs.FileInfo, error) {
	return os.Stat(path.String())
}

// CreationTime returns the birth time recorded by the filesystem.
func (m *OSFilesystemManager) CreationTime(path *photosort.Path) (time.Time, error) {
	return birthTime(path.String())
}

// IsIgnored reports whether the entry matches an ignore pattern.
func (m *OSFilesystemManager) IsIgnored(path *photosort.Path) bool {
	return m.ignore.Match(path.Name())
}

// Compile-time check that OSFilesystemManager implements photosort.FilesystemManager
var _ photosort.FilesystemManager = (*OSFilesystemManager)(nil)
