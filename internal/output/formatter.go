// Package output provides utilities for formatting user-facing output and messages
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Formatter handles all output formatting for the speed test harness
type Formatter struct {
	colorEnabled bool
	out          io.Writer
	err          io.Writer
}

// Options for configuring the formatter
type Options struct {
	ColorEnabled bool
	Out          io.Writer
	Err          io.Writer
}

// New creates a new formatter with the given options
func New(opts Options) *Formatter {
	f := &Formatter{
		colorEnabled: opts.ColorEnabled,
		out:          opts.Out,
		err:          opts.Err,
	}

	// Default to stdout/stderr if not specified
	if f.out == nil {
		f.out = os.Stdout
	}
	if f.err == nil {
		f.err = os.Stderr
	}

	return f
}

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto automatically detects the best color setting
	ColorAuto ColorMode = iota
	// ColorAlways always enables color output
	ColorAlways
	// ColorNever never enables color output
	ColorNever
)

// NewDefault creates a formatter with default settings, respecting environment variables
func NewDefault() *Formatter {
	return NewWithColorMode(ColorAuto)
}

// NewWithColorMode creates a formatter with the specified color mode
func NewWithColorMode(mode ColorMode) *Formatter {
	return New(Options{
		ColorEnabled: shouldUseColor(mode),
		Out:          os.Stdout,
		Err:          os.Stderr,
	})
}

// shouldUseColor determines if color output should be enabled based on the mode
func shouldUseColor(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		// Check explicit disable flags first
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if os.Getenv("USB_SPEEDTEST_COLOR_OUTPUT") == "false" {
			return false
		}
		// Check for dumb terminal
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		// Check if running in CI environment
		if isCI() {
			return false
		}
		// Check if stdout is a TTY
		return isTTY()
	default:
		return false
	}
}

// isCI detects if we're running in a CI environment
func isCI() bool {
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"CIRCLECI",
		"TRAVIS",
		"BUILDKITE",
		"DRONE",
	}

	for _, envVar := range ciEnvVars {
		if value := os.Getenv(envVar); value == "true" || value == "1" || (envVar != "CI" && value != "") {
			return true
		}
	}

	return false
}

// isTTY checks if stdout is connected to a terminal
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Success prints a success message with green checkmark
func (f *Formatter) Success(format string, args ...interface{}) {
	if f.colorEnabled {
		c := color.New(color.FgGreen)
		c.SetWriter(f.out)
		_, _ = c.Fprintf(f.out, "✓ "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(f.out, "✓ "+format+"\n", args...)
	}
}

// Error prints an error message with red X
func (f *Formatter) Error(format string, args ...interface{}) {
	if f.colorEnabled {
		c := color.New(color.FgRed)
		c.SetWriter(f.err)
		_, _ = c.Fprintf(f.err, "✗ "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(f.err, "✗ "+format+"\n", args...)
	}
}

// Warning prints a warning message with yellow warning symbol
func (f *Formatter) Warning(format string, args ...interface{}) {
	if f.colorEnabled {
		c := color.New(color.FgYellow)
		c.SetWriter(f.err)
		_, _ = c.Fprintf(f.err, "⚠ "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(f.err, "⚠ "+format+"\n", args...)
	}
}

// Info prints an info message with blue info symbol
func (f *Formatter) Info(format string, args ...interface{}) {
	if f.colorEnabled {
		c := color.New(color.FgBlue)
		c.SetWriter(f.out)
		_, _ = c.Fprintf(f.out, "ℹ "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(f.out, "ℹ "+format+"\n", args...)
	}
}

// Progress prints a progress message with a waiting indicator
func (f *Formatter) Progress(format string, args ...interface{}) {
	if f.colorEnabled {
		c := color.New(color.FgCyan)
		c.SetWriter(f.out)
		_, _ = c.Fprintf(f.out, "⏳ "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(f.out, "⏳ "+format+"\n", args...)
	}
}

// Header prints a section header
func (f *Formatter) Header(text string) {
	if f.colorEnabled {
		c1 := color.New(color.FgCyan, color.Bold)
		c1.SetWriter(f.out)
		_, _ = c1.Fprintf(f.out, "\n%s\n", text)
		c2 := color.New(color.FgCyan)
		c2.SetWriter(f.out)
		_, _ = c2.Fprintf(f.out, "%s\n", strings.Repeat("─", len([]rune(text))))
	} else {
		_, _ = fmt.Fprintf(f.out, "\n%s\n%s\n", text, strings.Repeat("─", len([]rune(text))))
	}
}

// Subheader prints a subsection header
func (f *Formatter) Subheader(text string) {
	if f.colorEnabled {
		c := color.New(color.FgWhite, color.Bold)
		c.SetWriter(f.out)
		_, _ = c.Fprintf(f.out, "\n%s:\n", text)
	} else {
		_, _ = fmt.Fprintf(f.out, "\n%s:\n", text)
	}
}

// Detail prints detailed information with indentation
func (f *Formatter) Detail(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(f.out, "  "+format+"\n", args...)
}

// SuggestAction prints an actionable suggestion
func (f *Formatter) SuggestAction(action string) {
	if f.colorEnabled {
		c := color.New(color.FgMagenta)
		c.SetWriter(f.out)
		_, _ = c.Fprintf(f.out, "💡 %s\n", action)
	} else {
		_, _ = fmt.Fprintf(f.out, "💡 %s\n", action)
	}
}

// Duration formats a duration for display
func (f *Formatter) Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dμs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}

// Speed formats a throughput value for display
func (f *Formatter) Speed(mbps float64) string {
	return fmt.Sprintf("%.2f MB/s", mbps)
}

// FormatExecutionStats formats execution statistics
func (f *Formatter) FormatExecutionStats(passed, failed, skipped int, duration time.Duration) string {
	stats := []string{}

	if passed > 0 {
		if f.colorEnabled {
			c := color.New(color.FgGreen)
			stats = append(stats, c.Sprintf("%d passed", passed))
		} else {
			stats = append(stats, fmt.Sprintf("%d passed", passed))
		}
	}

	if failed > 0 {
		if f.colorEnabled {
			c := color.New(color.FgRed)
			stats = append(stats, c.Sprintf("%d failed", failed))
		} else {
			stats = append(stats, fmt.Sprintf("%d failed", failed))
		}
	}

	if skipped > 0 {
		if f.colorEnabled {
			c := color.New(color.FgYellow)
			stats = append(stats, c.Sprintf("%d skipped", skipped))
		} else {
			stats = append(stats, fmt.Sprintf("%d skipped", skipped))
		}
	}

	if len(stats) == 0 {
		stats = append(stats, "no checks run")
	}

	return fmt.Sprintf("%s in %s", strings.Join(stats, ", "), f.Duration(duration))
}
