package photosort

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Path is a filesystem entry with the stat info captured when it was listed.
// Paths are produced by FilesystemManager.Resolve and FilesystemManager.ReadDir.
type Path struct {
	absPath string
	isDir   bool
	info    fs.FileInfo
}

// NewPath creates a Path from its components.
// This is primarily for use by FilesystemManager implementations.
func NewPath(absPath string, isDir bool, info fs.FileInfo) *Path {
	return &Path{
		absPath: absPath,
		isDir:   isDir,
		info:    info,
	}
}

// String returns the absolute path.
func (p *Path) String() string {
	return p.absPath
}

// Name returns the final element of the path.
func (p *Path) Name() string {
	return filepath.Base(p.absPath)
}

// IsDir reports whether the entry is a directory.
func (p *Path) IsDir() bool {
	return p.isDir
}

// IsRegular reports whether the entry is a regular file.
func (p *Path) IsRegular() bool {
	return p.info != nil && p.info.Mode().IsRegular()
}

// Info returns the stat info captured at listing time.
func (p *Path) Info() fs.FileInfo {
	return p.info
}

// HasExtension reports whether the name contains an extension separator.
func (p *Path) HasExtension() bool {
	return strings.Contains(p.Name(), ".")
}
