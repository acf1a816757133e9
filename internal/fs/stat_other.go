//go:build !linux && !darwin

package fs

import (
	"fmt"
	"runtime"
	"time"

	"photosort/internal/photosort"
)

func birthTime(path string) (time.Time, error) {
	return time.Time{}, fmt.Errorf("%s: birth time not supported on %s: %w", path, runtime.GOOS, photosort.ErrMetadataUnavailable)
}
