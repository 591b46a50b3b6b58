package checks

import (
	"context"
	"fmt"

	"github.com/txlab/go-usb-speedtest/internal/config"
	usberrors "github.com/txlab/go-usb-speedtest/internal/errors"
	"github.com/txlab/go-usb-speedtest/internal/harness"
	"github.com/txlab/go-usb-speedtest/internal/speedtest"
)

// SpeedCheck measures write throughput for one test file size and asserts it
// meets the configured floor
type SpeedCheck struct {
	cfg         *config.Config
	target      string
	sizeMB      int
	measureOpts *speedtest.Options
}

// NewSpeedCheck creates a new timed speed check for one file size
func NewSpeedCheck(cfg *config.Config, target string, sizeMB int, measureOpts *speedtest.Options) *SpeedCheck {
	return &SpeedCheck{
		cfg:         cfg,
		target:      target,
		sizeMB:      sizeMB,
		measureOpts: measureOpts,
	}
}

// Name returns the name of the check
func (c *SpeedCheck) Name() string {
	return fmt.Sprintf("speed-%dmb", c.sizeMB)
}

// Description returns a brief description of the check
func (c *SpeedCheck) Description() string {
	return fmt.Sprintf("Write a %dMB file and verify throughput of at least %.1f MB/s",
		c.sizeMB, c.cfg.MinSpeedMBps)
}

// Category returns the check's ordering category
func (c *SpeedCheck) Category() harness.Category { return harness.CategoryPerformance }

// SizeMB returns the test file size this check writes
func (c *SpeedCheck) SizeMB() int { return c.sizeMB }

// Run executes the measurement and records the sample into the session.
// The sample is recorded even when the throughput assertion fails, so the
// end-of-run summary reflects everything that was measured.
func (c *SpeedCheck) Run(_ context.Context, session *harness.Session) error {
	speed, err := speedtest.Measure(c.target, c.sizeMB, c.measureOpts)
	if err != nil {
		return err
	}

	session.RecordSpeed(speed)

	if speed < c.cfg.MinSpeedMBps {
		return usberrors.NewSpeedBelowMinimumError(speed, c.cfg.MinSpeedMBps, c.sizeMB)
	}

	return nil
}
