package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestError_Error(t *testing.T) {
	t.Run("message wins", func(t *testing.T) {
		err := NewTestError(ErrPathNotWritable, "custom message", "do something")
		assert.Equal(t, "custom message", err.Error())
	})

	t.Run("falls back to wrapped error", func(t *testing.T) {
		err := &TestError{Err: ErrInvalidSize}
		assert.Equal(t, ErrInvalidSize.Error(), err.Error())
	})

	t.Run("empty error", func(t *testing.T) {
		err := &TestError{}
		assert.Equal(t, "unknown error", err.Error())
	})
}

func TestTestError_Unwrapping(t *testing.T) {
	err := NewNotWritableError("/mnt/usb")

	assert.ErrorIs(t, err, ErrPathNotWritable)
	assert.Equal(t, ErrPathNotWritable, errors.Unwrap(err))

	// Survives further wrapping
	wrapped := fmt.Errorf("check failed: %w", err)
	assert.ErrorIs(t, wrapped, ErrPathNotWritable)

	var testErr *TestError
	require.ErrorAs(t, wrapped, &testErr)
	assert.Equal(t, "/mnt/usb", testErr.Path)
}

func TestNewNotWritableError(t *testing.T) {
	err := NewNotWritableError("/mnt/usb")

	assert.Contains(t, err.Error(), "/mnt/usb")
	assert.Contains(t, err.Suggestion, "read-only")
	assert.Equal(t, "/mnt/usb", err.Path)
}

func TestNewInsufficientSpaceError(t *testing.T) {
	err := NewInsufficientSpaceError("/mnt/usb", 300, 120)

	assert.ErrorIs(t, err, ErrInsufficientSpace)
	assert.Contains(t, err.Error(), "required 300MB")
	assert.Contains(t, err.Error(), "available 120MB")
	assert.Contains(t, err.Suggestion, "180MB")
}

func TestNewSpeedBelowMinimumError(t *testing.T) {
	err := NewSpeedBelowMinimumError(32.5, 50.0, 100)

	assert.ErrorIs(t, err, ErrSpeedBelowMinimum)
	assert.Contains(t, err.Error(), "32.50 MB/s")
	assert.Contains(t, err.Error(), "50.0 MB/s")
	assert.Contains(t, err.Error(), "100MB")
	assert.NotEmpty(t, err.Suggestion)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidSize,
		ErrEmptyPath,
		ErrPathNotFound,
		ErrNotDirectory,
		ErrPathNotWritable,
		ErrShortWrite,
		ErrInvalidElapsed,
		ErrSpeedBelowMinimum,
		ErrInsufficientSpace,
		ErrSpaceCheckUnsupported,
		ErrNoDrivesFound,
		ErrNoChecksToRun,
		ErrChecksFailed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
