package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/txlab/go-usb-speedtest/internal/checks"
	"github.com/txlab/go-usb-speedtest/internal/config"
	"github.com/txlab/go-usb-speedtest/internal/detect"
	usberrors "github.com/txlab/go-usb-speedtest/internal/errors"
	"github.com/txlab/go-usb-speedtest/internal/harness"
	"github.com/txlab/go-usb-speedtest/internal/output"
	"github.com/txlab/go-usb-speedtest/internal/speedtest"
)

//nolint:gochecknoglobals // Required by cobra
var (
	targetPath string
	testSizes  []int
	minSpeed   float64
	autoDetect bool
	quiet      bool
)

// runCmd represents the run command
//
//nolint:gochecknoglobals // Required by cobra
var runCmd = &cobra.Command{
	Use:   "run [flags]",
	Short: "Run the speed test suite against a drive",
	Long: `Run the full speed test suite against a USB drive.

The target directory is resolved in order of precedence:
  1. --path flag
  2. USB_TEST_PATH environment variable (or .usbspeed.yml)
  3. automatic drive detection (with --auto)
  4. the built-in default path

Precondition checks run first; performance checks are skipped once any
precondition fails. A missing drive is reported but is not an error.`,
	Example: `  # Test the drive configured via USB_TEST_PATH
  usb-speedtest run

  # Test a specific mount point
  usb-speedtest run --path /media/tx/USB_DRIVE

  # Auto-detect the first removable drive
  usb-speedtest run --auto

  # Smaller, faster run
  usb-speedtest run --sizes 50 --min-speed 40`,
	RunE: runSpeedTests,
}

//nolint:gochecknoinits // Required by cobra
func init() {
	runCmd.Flags().StringVarP(&targetPath, "path", "p", "", "Target directory on the drive under test")
	runCmd.Flags().IntSliceVar(&testSizes, "sizes", nil, "Test file sizes in MB (default 50,100,200)")
	runCmd.Flags().Float64Var(&minSpeed, "min-speed", 0, "Minimum acceptable write speed in MB/s (default 50)")
	runCmd.Flags().BoolVar(&autoDetect, "auto", false, "Auto-detect the first removable drive")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress messages, show only results")
}

func runSpeedTests(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		formatter := output.NewDefault()
		formatter.Error("Failed to load configuration: %v", err)
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if len(testSizes) > 0 {
		cfg.TestSizesMB = testSizes
	}
	if minSpeed > 0 {
		cfg.MinSpeedMBps = minSpeed
	}
	if verbose {
		cfg.UI.Verbose = true
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	formatter := output.New(output.Options{
		ColorEnabled: cfg.UI.ColorOutput && !noColor,
	})

	target, ok := resolveTarget(cfg, formatter)
	if !ok {
		// Nothing to test against is informational, not a failure
		formatter.Warning("No USB drive available to test")
		formatter.Info("Connect a drive, or set USB_TEST_PATH to its mount point")
		return nil
	}

	measureOpts := &speedtest.Options{
		ChunkSizeBytes:   cfg.ChunkSizeBytes,
		ProgressInterval: cfg.ProgressInterval,
		Warnf:            formatter.Warning,
	}
	if !quiet && cfg.UI.Verbose {
		measureOpts.ProgressFunc = func(message string) {
			formatter.Progress(message)
		}
	}

	registry := checks.NewRegistry(cfg, target, measureOpts)
	ordered := harness.Reorder(registry.Checks())

	if !quiet {
		formatter.Info("Testing %s (%d checks)", target, len(ordered))
		if cfg.UI.Verbose {
			printExecutionOrder(formatter, ordered)
		}
	}

	r := harness.New()

	opts := harness.Options{}
	if !quiet {
		opts.ProgressCallback = func(checkName, status string) {
			switch status {
			case "running":
				formatter.Progress("Running %s...", checkName)
			case string(harness.StatusPassed):
				formatter.Success("%s passed", checkName)
			case string(harness.StatusFailed):
				formatter.Error("%s failed", checkName)
			case string(harness.StatusSkipped):
				formatter.Warning("%s skipped", checkName)
			}
		}
	}

	results, err := r.Run(context.Background(), registry.Checks(), opts)
	if err != nil {
		formatter.Error("Failed to run checks: %v", err)
		return fmt.Errorf("failed to run checks: %w", err)
	}

	displayResults(formatter, results)
	displaySummary(formatter, harness.Summarize(results, r.Session()), results)

	if results.Failed > 0 {
		return fmt.Errorf("%w: %d", usberrors.ErrChecksFailed, results.Failed)
	}
	return nil
}

// resolveTarget picks the directory to test. Returns false when no usable
// target exists, which callers treat as informational.
func resolveTarget(cfg *config.Config, formatter *output.Formatter) (string, bool) {
	if targetPath != "" {
		return targetPath, true
	}

	if autoDetect {
		if drive, ok := detect.Select(detect.Drives(), os.Stdin, os.Stdout); ok {
			formatter.Info("Detected drive: %s (%s)", drive.Name, drive.Path)
			return drive.Path, true
		}
		return "", false
	}

	// Fall back to the configured path, but only when it actually exists;
	// an absent default just means no drive is plugged in.
	if info, err := os.Stat(cfg.TestPath); err == nil && info.IsDir() {
		return cfg.TestPath, true
	}
	return "", false
}

// printExecutionOrder shows the cost-aware ordering before the run starts
func printExecutionOrder(formatter *output.Formatter, ordered []harness.Check) {
	groups := map[harness.Category][]string{}
	for _, check := range ordered {
		groups[check.Category()] = append(groups[check.Category()], check.Name())
	}

	formatter.Subheader("Execution order")
	for _, category := range []harness.Category{
		harness.CategoryPrecondition, harness.CategoryOther, harness.CategoryPerformance,
	} {
		if names := groups[category]; len(names) > 0 {
			formatter.Detail("%s (%d): %s", category, len(names), strings.Join(names, ", "))
		}
	}
}

// displayResults prints the per-check outcomes
func displayResults(formatter *output.Formatter, results *harness.Results) {
	formatter.Header("Check Results")

	for _, result := range results.CheckResults {
		switch result.Status {
		case harness.StatusPassed:
			formatter.Success("%s completed successfully", result.Name)
			if verbose {
				formatter.Detail("Duration: %s", formatter.Duration(result.Duration))
			}
		case harness.StatusSkipped:
			formatter.Warning("%s skipped", result.Name)
			formatter.Detail("Reason: %s", result.SkipReason)
		case harness.StatusFailed:
			formatter.Error("%s failed", result.Name)
			if result.Error != "" {
				formatter.Detail("Error: %s", result.Error)
			}
			if result.Suggestion != "" {
				formatter.SuggestAction(result.Suggestion)
			}
		}
	}
}

// displaySummary renders the distinguished end-of-run report
func displaySummary(formatter *output.Formatter, summary harness.Summary, results *harness.Results) {
	formatter.Subheader("Summary")
	stats := formatter.FormatExecutionStats(results.Passed, results.Failed, results.Skipped, results.TotalDuration)

	switch summary.Kind {
	case harness.SummaryPreconditionFailure:
		formatter.Error("Precondition check '%s' failed; performance checks were skipped to save time", summary.FailedPrecondition)
		formatter.SuggestAction("Fix the precondition issue and re-run the tests")
		formatter.Error(stats)
	case harness.SummaryAllSkipped:
		formatter.Warning("No checks were run")
		formatter.SuggestAction("Set USB_TEST_PATH or connect a USB drive")
		formatter.Warning(stats)
	case harness.SummaryAllPassed:
		formatter.Success("USB drive meets all requirements! %s", stats)
		displaySpeedStats(formatter, summary.Stats)
	case harness.SummaryFailures:
		formatter.Error(stats)
		displaySpeedStats(formatter, summary.Stats)
	}
}

// displaySpeedStats renders the collected throughput statistics, if any
func displaySpeedStats(formatter *output.Formatter, stats *harness.SpeedStats) {
	if stats == nil {
		return
	}
	formatter.Subheader("USB Performance Summary")
	formatter.Detail("Average speed: %s", formatter.Speed(stats.Average))
	formatter.Detail("Min speed: %s  |  Max speed: %s", formatter.Speed(stats.Min), formatter.Speed(stats.Max))
	formatter.Detail("Speed tests run: %d", stats.Count)
}

// resetRunFlags resets run command flags to their defaults for testing
func resetRunFlags() {
	targetPath = ""
	testSizes = nil
	minSpeed = 0
	autoDetect = false
	quiet = false
}
