// Package cmd implements the usb-speedtest command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/txlab/go-usb-speedtest/internal/config"
)

//nolint:gochecknoglobals // Required by cobra
var (
	verbose bool
	noColor bool
)

// rootCmd represents the base command
//
//nolint:gochecknoglobals // Required by cobra
var rootCmd = &cobra.Command{
	Use:   "usb-speedtest",
	Short: "USB drive write-speed validation harness",
	Long: `usb-speedtest validates that a USB drive sustains USB 3.0-class write
performance. It writes synthetic data files to the drive, measures
throughput, and asserts the drive meets a minimum speed threshold.

Cheap precondition checks (writability, free space, input validation)
always run before the expensive timed measurements; once a precondition
fails, the remaining performance checks are skipped.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	},
}

//nolint:gochecknoinits // Required by cobra
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(drivesCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command with version information injected at build time
func Execute(version, commit, buildDate string) error {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate)
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
	return rootCmd.Execute()
}

// configCmd prints the resolved configuration and the available knobs
//
//nolint:gochecknoglobals // Required by cobra
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration and available settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Target path:        %s\n", cfg.TestPath)
		_, _ = fmt.Fprintf(out, "Test sizes:         %v MB\n", cfg.TestSizesMB)
		_, _ = fmt.Fprintf(out, "Minimum speed:      %.1f MB/s\n", cfg.MinSpeedMBps)
		_, _ = fmt.Fprintf(out, "Chunk size:         %d bytes\n", cfg.ChunkSizeBytes)
		_, _ = fmt.Fprintf(out, "Space buffer:       %.1fx (requires %.0fMB free)\n", cfg.SpaceBuffer, cfg.RequiredSpaceMB())
		_, _ = fmt.Fprintf(out, "Progress interval:  every %d chunks\n", cfg.ProgressInterval)
		_, _ = fmt.Fprintf(out, "\n%s", config.GetConfigHelp())
		return nil
	},
}
