package photosort_test

import (
	"path/filepath"
	"time"

	"photosort/internal/photosort"
)

// sourceFile builds a SourceFile under /src without touching a filesystem.
func sourceFile(name string, created time.Time, index int) photosort.SourceFile {
	return photosort.SourceFile{
		File:      photosort.NewPath(filepath.Join("/src", name), false, nil),
		CreatedAt: created,
		Index:     index,
	}
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}
