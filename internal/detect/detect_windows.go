//go:build windows

package detect

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// platformDrives enumerates removable drives on Windows via wmic, with a
// drive-letter scan as fallback when wmic yields nothing.
func platformDrives() []Drive {
	var drives []Drive

	// DriveType=2 is removable media
	drives = append(drives, wmicDrives("drivetype=2", "USB Drive", nil)...)

	// Large USB drives and external HDDs sometimes report DriveType=3
	// (local disk); include them but never the system drive.
	skip := map[string]bool{"C:": true}
	drives = append(drives, wmicDrives("drivetype=3", "", skip)...)

	if len(drives) == 0 {
		drives = letterScanDrives()
	}

	return drives
}

// wmicDrives queries wmic logicaldisk for drives of the given type
func wmicDrives(where, defaultName string, skip map[string]bool) []Drive {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "wmic", "logicaldisk", "where", where,
		"get", "deviceid,volumename").Output()
	if err != nil {
		return nil
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 {
		return nil
	}

	var drives []Drive
	for _, line := range lines[1:] { // skip header
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		letter := strings.ToUpper(fields[0])
		if skip[letter] {
			continue
		}

		name := defaultName
		if len(fields) > 1 {
			name = strings.Join(fields[1:], " ")
		}
		if name == "" {
			name = fmt.Sprintf("Drive %s", letter)
		}

		drives = append(drives, Drive{Path: letter + `\`, Name: name})
	}
	return drives
}

// letterScanDrives probes drive letters D-Z for accessible drives
func letterScanDrives() []Drive {
	var drives []Drive
	for letter := 'D'; letter <= 'Z'; letter++ {
		path := fmt.Sprintf(`%c:\`, letter)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := os.ReadDir(path); err != nil {
			continue
		}
		drives = append(drives, Drive{Path: path, Name: fmt.Sprintf("Drive %c", letter)})
	}
	return drives
}
