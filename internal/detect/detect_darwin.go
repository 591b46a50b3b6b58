//go:build darwin

package detect

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// systemVolumes are mounted volumes that are never removable drives
//
//nolint:gochecknoglobals // Fixed platform constant
var systemVolumes = map[string]bool{
	"Macintosh HD":        true,
	"Macintosh HD - Data": true,
	"Data":                true,
}

// platformDrives enumerates removable drives on macOS by listing /Volumes
// and filtering out the system volumes.
func platformDrives() []Drive {
	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		return nil
	}

	var drives []Drive
	for _, entry := range entries {
		if systemVolumes[entry.Name()] {
			continue
		}
		full := filepath.Join("/Volumes", entry.Name())
		info, err := os.Stat(full)
		if err != nil || !info.IsDir() {
			continue
		}
		if unix.Access(full, unix.R_OK) != nil {
			continue
		}
		drives = append(drives, Drive{Path: full, Name: entry.Name()})
	}
	return drives
}
