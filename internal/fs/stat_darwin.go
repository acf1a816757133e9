//go:build darwin

package fs

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"photosort/internal/photosort"
)

func birthTime(path string) (time.Time, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, fmt.Errorf("%s: unexpected stat type %T: %w", path, info.Sys(), photosort.ErrMetadataUnavailable)
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec), nil
}
