// Package detect enumerates removable drives across operating systems.
//
// Enumeration shells out to platform utilities and falls back to scanning
// well-known mount locations. Results are deduplicated by path; no attempt
// is made to canonicalize symlinks or case-insensitive paths.
package detect

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Drive describes one detected removable drive
type Drive struct {
	// Path is the mount point or drive root usable as a test target
	Path string

	// Name is a human-readable label for the drive
	Name string
}

// Drives returns all detected removable drives for the current platform
func Drives() []Drive {
	return dedupe(platformDrives())
}

// First returns the first detected drive, if any
func First() (Drive, bool) {
	drives := Drives()
	if len(drives) == 0 {
		return Drive{}, false
	}
	return drives[0], true
}

// Select prompts the user to pick one of the given drives, reading the choice
// from in and writing the prompt to out. An empty answer or any unparseable
// input selects the first drive. A single drive is returned without prompting.
func Select(drives []Drive, in io.Reader, out io.Writer) (Drive, bool) {
	if len(drives) == 0 {
		return Drive{}, false
	}
	if len(drives) == 1 {
		return drives[0], true
	}

	_, _ = fmt.Fprintf(out, "\nMultiple USB drives detected:\n")
	for i, drive := range drives {
		_, _ = fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, drive.Name, drive.Path)
	}
	_, _ = fmt.Fprintf(out, "\nSelect drive (1-%d) or press Enter for the first: ", len(drives))

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return drives[0], true
	}

	choice := strings.TrimSpace(line)
	if choice == "" {
		return drives[0], true
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(drives) {
		return drives[0], true
	}
	return drives[idx-1], true
}

// dedupe removes drives that share a path, keeping the first occurrence
func dedupe(drives []Drive) []Drive {
	seen := make(map[string]bool, len(drives))
	unique := make([]Drive, 0, len(drives))
	for _, drive := range drives {
		if seen[drive.Path] {
			continue
		}
		seen[drive.Path] = true
		unique = append(unique, drive)
	}
	return unique
}
