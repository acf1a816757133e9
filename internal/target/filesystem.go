package target

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"photosort/internal/photosort"
)

// FileSystemTarget writes sorted files under a root directory:
//
//	<root>/
//	  <groupKey>/
//	    <filename>
type FileSystemTarget struct {
	root string
}

// NewFileSystemTarget creates a target rooted at root. The root itself is
// created lazily, together with the first group folder.
func NewFileSystemTarget(root string) (*FileSystemTarget, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving target root: %w", err)
	}
	return &FileSystemTarget{root: abs}, nil
}

// EnsureDir creates the parent directory of rel.
func (t *FileSystemTarget) EnsureDir(rel string) error {
	dir := filepath.Dir(t.Location(rel))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Exists reports whether anything (file, directory or link) is at rel.
func (t *FileSystemTarget) Exists(rel string) (bool, error) {
	_, err := os.Lstat(t.Location(rel))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", t.Location(rel), err)
}

// Put copies r into rel, then applies the permission bits and modification
// time of info. The file is created exclusively, so a file that appeared after
// Exists was checked is reported as photosort.ErrTargetExists.
func (t *FileSystemTarget) Put(rel string, r io.Reader, info fs.FileInfo) error {
	destPath := t.Location(rel)

	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", destPath, photosort.ErrTargetExists)
		}
		return fmt.Errorf("failed to create file: %w", err)
	}

	// Clean up the partial file on failure.
	success := false
	defer func() {
		if !success {
			os.Remove(destPath)
		}
	}()

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Chmod(destPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Chtimes(destPath, time.Time{}, info.ModTime()); err != nil {
		return fmt.Errorf("setting file times: %w", err)
	}

	success = true
	return nil
}

// Remove deletes the file at rel.
func (t *FileSystemTarget) Remove(rel string) error {
	if err := os.Remove(t.Location(rel)); err != nil {
		return fmt.Errorf("removing %s: %w", t.Location(rel), err)
	}
	return nil
}

// Location returns the absolute path of rel.
func (t *FileSystemTarget) Location(rel string) string {
	return filepath.Join(t.root, rel)
}

// Compile-time check that FileSystemTarget implements photosort.Target
var _ photosort.Target = (*FileSystemTarget)(nil)
