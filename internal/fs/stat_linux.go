//go:build linux

package fs

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"photosort/internal/photosort"
)

// birthTime reads the birth time with statx(2). Filesystems that do not
// record it leave STATX_BTIME unset in the returned mask.
func birthTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx); err != nil {
		if errors.Is(err, unix.ENOSYS) {
			return time.Time{}, fmt.Errorf("%s: statx not supported: %w", path, photosort.ErrMetadataUnavailable)
		}
		return time.Time{}, fmt.Errorf("statx %s: %w", path, err)
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, fmt.Errorf("%s: %w", path, photosort.ErrMetadataUnavailable)
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
