package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/txlab/go-usb-speedtest/internal/detect"
	"github.com/txlab/go-usb-speedtest/internal/output"
	"github.com/txlab/go-usb-speedtest/internal/speedtest"
)

// drivesCmd represents the drives command
//
//nolint:gochecknoglobals // Required by cobra
var drivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "List detected USB drives",
	Long: `Scan for removable drives and show their status.

For each detected drive this displays the mount path, whether it is
writable, and how much free space it has.`,
	Example: `  # Show all detected drives
  usb-speedtest drives`,
	RunE: listDrives,
}

func listDrives(_ *cobra.Command, _ []string) error {
	formatter := output.New(output.Options{ColorEnabled: !noColor})

	formatter.Info("Operating system: %s", runtime.GOOS)
	formatter.Info("Scanning for USB drives...")

	drives := detect.Drives()
	if len(drives) == 0 {
		formatter.Warning("No USB drives detected")
		formatter.SuggestAction("Make sure the drive is connected and mounted, or set USB_TEST_PATH manually")
		return nil
	}

	formatter.Header("Detected Drives")
	for i, drive := range drives {
		formatter.Success("%d. %s", i+1, drive.Name)
		formatter.Detail("Path: %s", drive.Path)

		if speedtest.IsWritable(drive.Path) {
			formatter.Detail("Status: writable")
		} else {
			formatter.Detail("Status: read-only")
		}

		if free, err := speedtest.FreeSpaceMB(drive.Path); err == nil {
			formatter.Detail("Free space: %.1f MB", free)
		}
	}

	return nil
}
