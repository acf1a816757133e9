package photosort

import (
	"io"
	"io/fs"
)

// Target is the destination a run copies into. Paths passed to a Target are
// relative to its root and use the OS path separator.
type Target interface {
	// EnsureDir creates the parent directory of rel if it is missing.
	EnsureDir(rel string) error

	// Exists reports whether rel is already present.
	Exists(rel string) (bool, error)

	// Put writes r to rel, applying the permission bits and modification time
	// from info. It must not overwrite: if rel exists it returns ErrTargetExists.
	Put(rel string, r io.Reader, info fs.FileInfo) error

	// Remove deletes rel.
	Remove(rel string) error

	// Location renders rel for humans (an absolute path or URL).
	Location(rel string) string
}

// TargetFactory opens the Target rooted at a run's target directory.
type TargetFactory interface {
	Open(root string) (Target, error)
}
