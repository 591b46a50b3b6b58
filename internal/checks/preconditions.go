package checks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/txlab/go-usb-speedtest/internal/config"
	usberrors "github.com/txlab/go-usb-speedtest/internal/errors"
	"github.com/txlab/go-usb-speedtest/internal/harness"
	"github.com/txlab/go-usb-speedtest/internal/speedtest"
)

// WritableCheck verifies the target directory exists and is writable
type WritableCheck struct {
	target string
}

// NewWritableCheck creates a new writability check
func NewWritableCheck(target string) *WritableCheck {
	return &WritableCheck{target: target}
}

// Name returns the name of the check
func (c *WritableCheck) Name() string { return "path-writable" }

// Description returns a brief description of the check
func (c *WritableCheck) Description() string {
	return "Verify the target path exists and is writable"
}

// Category returns the check's ordering category
func (c *WritableCheck) Category() harness.Category { return harness.CategoryPrecondition }

// Run executes the check
func (c *WritableCheck) Run(_ context.Context, _ *harness.Session) error {
	if err := speedtest.ValidatePath(c.target); err != nil {
		return err
	}
	if !speedtest.IsWritable(c.target) {
		return usberrors.NewNotWritableError(c.target)
	}
	return nil
}

// FreeSpaceCheck verifies the drive has room for the largest test file.
// The test file is deleted between runs, so the requirement is the largest
// configured size with buffer, not the sum of all sizes.
type FreeSpaceCheck struct {
	cfg    *config.Config
	target string
}

// NewFreeSpaceCheck creates a new free space check
func NewFreeSpaceCheck(cfg *config.Config, target string) *FreeSpaceCheck {
	return &FreeSpaceCheck{cfg: cfg, target: target}
}

// Name returns the name of the check
func (c *FreeSpaceCheck) Name() string { return "free-space" }

// Description returns a brief description of the check
func (c *FreeSpaceCheck) Description() string {
	return "Verify the drive has enough free space for the largest test file"
}

// Category returns the check's ordering category
func (c *FreeSpaceCheck) Category() harness.Category { return harness.CategoryPrecondition }

// Run executes the check
func (c *FreeSpaceCheck) Run(_ context.Context, _ *harness.Session) error {
	free, err := speedtest.FreeSpaceMB(c.target)
	if err != nil {
		// A platform without a usable space probe should not block the
		// measurement itself.
		if errors.Is(err, usberrors.ErrSpaceCheckUnsupported) {
			return nil
		}
		return err
	}

	required := c.cfg.RequiredSpaceMB()
	if free < required {
		return usberrors.NewInsufficientSpaceError(c.target, required, free)
	}

	return nil
}

// SizeValidationCheck verifies the measurement routine rejects invalid sizes
// before any I/O happens
type SizeValidationCheck struct {
	target string
}

// NewSizeValidationCheck creates a new input validation check
func NewSizeValidationCheck(target string) *SizeValidationCheck {
	return &SizeValidationCheck{target: target}
}

// Name returns the name of the check
func (c *SizeValidationCheck) Name() string { return "size-validation" }

// Description returns a brief description of the check
func (c *SizeValidationCheck) Description() string {
	return "Verify invalid test sizes are rejected without touching the drive"
}

// Category returns the check's ordering category
func (c *SizeValidationCheck) Category() harness.Category { return harness.CategoryPrecondition }

// Run executes the check
func (c *SizeValidationCheck) Run(_ context.Context, _ *harness.Session) error {
	for _, size := range []int{-1, 0} {
		_, err := speedtest.Measure(c.target, size, nil)
		if err == nil {
			return fmt.Errorf("size %dMB was accepted, expected an invalid-size error", size)
		}
		if !errors.Is(err, usberrors.ErrInvalidSize) {
			return fmt.Errorf("size %dMB produced the wrong error: %w", size, err)
		}
	}

	// Rejected inputs must not leave a test file behind
	testFile := filepath.Join(c.target, config.TestFileName)
	if _, err := os.Stat(testFile); err == nil {
		return fmt.Errorf("rejected size still created %s", testFile)
	}

	return nil
}
