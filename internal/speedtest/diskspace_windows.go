//go:build windows

package speedtest

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"

	"github.com/txlab/go-usb-speedtest/internal/config"
	usberrors "github.com/txlab/go-usb-speedtest/internal/errors"
)

// FreeSpaceMB returns the free space available to the current user on the
// volume containing path, in megabytes.
func FreeSpaceMB(path string) (float64, error) {
	if err := ValidatePath(path); err != nil {
		return 0, err
	}

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid path %s: %v", usberrors.ErrSpaceCheckUnsupported, path, err)
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", usberrors.ErrSpaceCheckUnsupported, path, err)
	}

	return float64(freeBytesAvailable) / config.BytesPerMB, nil
}

// IsWritable reports whether the current user can write to path. Windows has
// no cheap access(2) equivalent that respects ACLs, so this probes with a
// temporary file.
func IsWritable(path string) bool {
	probe, err := os.CreateTemp(path, ".usbspeed-probe-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(filepath.Clean(name))
	return true
}
