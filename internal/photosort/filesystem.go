package photosort

import (
	"io"
	"io/fs"
	"time"
)

// FilesystemManager abstracts access to the source directory so the core can
// be tested without touching the real filesystem.
type FilesystemManager interface {
	// Resolve converts a raw path to an absolute Path and stats it.
	Resolve(rawPath string) (*Path, error)

	// ReadDir returns the immediate entries of dir, ordered by name.
	// Entries are not followed into subdirectories.
	ReadDir(dir *Path) ([]*Path, error)

	// Open opens a file for reading.
	Open(path *Path) (io.ReadCloser, error)

	// Stat returns fresh file info for a path.
	Stat(path *Path) (fs.FileInfo, error)

	// CreationTime returns the file's birth time.
	// It fails with ErrMetadataUnavailable when the filesystem does not record one.
	CreationTime(path *Path) (time.Time, error)

	// IsIgnored reports whether an entry is a filesystem artifact to skip.
	IsIgnored(path *Path) bool
}

// creationCache memoizes CreationTime for the duration of one run.
type creationCache struct {
	fsmgr FilesystemManager
	times map[string]time.Time
}

func newCreationCache(fsmgr FilesystemManager) *creationCache {
	return &creationCache{fsmgr: fsmgr, times: make(map[string]time.Time)}
}

func (c *creationCache) CreationTime(path *Path) (time.Time, error) {
	if t, ok := c.times[path.String()]; ok {
		return t, nil
	}
	t, err := c.fsmgr.CreationTime(path)
	if err != nil {
		return time.Time{}, err
	}
	c.times[path.String()] = t
	return t, nil
}
