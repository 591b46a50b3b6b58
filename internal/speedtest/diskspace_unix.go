//go:build !windows

package speedtest

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/txlab/go-usb-speedtest/internal/config"
	usberrors "github.com/txlab/go-usb-speedtest/internal/errors"
)

// FreeSpaceMB returns the free space available to unprivileged users on the
// filesystem containing path, in megabytes.
func FreeSpaceMB(path string) (float64, error) {
	if err := ValidatePath(path); err != nil {
		return 0, err
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("%w: statfs %s: %v", usberrors.ErrSpaceCheckUnsupported, path, err)
	}

	free := float64(stat.Bavail) * float64(stat.Bsize) / config.BytesPerMB
	return free, nil
}

// IsWritable reports whether the current user can write to path
func IsWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
