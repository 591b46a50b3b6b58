//go:build linux

package detect

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// platformDrives enumerates removable drives on Linux by scanning common
// mount bases and cross-checking lsblk for removable partitions.
func platformDrives() []Drive {
	var drives []Drive

	username := os.Getenv("USER")
	if username == "" {
		username = "user"
	}

	mountBases := []string{
		filepath.Join("/media", username),
		filepath.Join("/run/media", username),
		"/mnt",
		"/media",
	}

	for _, base := range mountBases {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			full := filepath.Join(base, entry.Name())
			if isMountPoint(full) && unix.Access(full, unix.R_OK) == nil {
				drives = append(drives, Drive{Path: full, Name: entry.Name()})
			}
		}
	}

	drives = append(drives, lsblkDrives()...)
	return drives
}

// isMountPoint reports whether path sits on a different device than its parent
func isMountPoint(path string) bool {
	var pathStat, parentStat unix.Stat_t
	if err := unix.Lstat(path, &pathStat); err != nil {
		return false
	}
	if err := unix.Lstat(filepath.Dir(path), &parentStat); err != nil {
		return false
	}
	return pathStat.Dev != parentStat.Dev
}

// lsblkDrives asks lsblk for mounted removable partitions
func lsblkDrives() []Drive {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "lsblk", "-o", "NAME,MOUNTPOINT,RM,TYPE", "-n").Output()
	if err != nil {
		return nil
	}

	var drives []Drive
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		// Columns: NAME MOUNTPOINT RM TYPE; only mounted removable partitions
		mountPoint, removable, devType := fields[1], fields[2], fields[3]
		if removable != "1" || devType != "part" {
			continue
		}
		if _, err := os.Stat(mountPoint); err != nil {
			continue
		}
		drives = append(drives, Drive{Path: mountPoint, Name: filepath.Base(mountPoint)})
	}
	return drives
}
