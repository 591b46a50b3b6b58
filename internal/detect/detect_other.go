//go:build !linux && !darwin && !windows

package detect

// platformDrives has no enumeration strategy on this platform
func platformDrives() []Drive {
	return nil
}
