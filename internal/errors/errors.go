// Package errors defines common errors for the USB speed test harness
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidSize is returned when a requested test size is below the minimum
	ErrInvalidSize = errors.New("invalid test file size")

	// ErrEmptyPath is returned when the target path is empty
	ErrEmptyPath = errors.New("path cannot be empty")

	// ErrPathNotFound is returned when the target path does not exist
	ErrPathNotFound = errors.New("path does not exist")

	// ErrNotDirectory is returned when the target path is not a directory
	ErrNotDirectory = errors.New("path is not a directory")

	// ErrPathNotWritable is returned when the target directory is not writable
	ErrPathNotWritable = errors.New("path is not writable")

	// ErrShortWrite is returned when a chunk write commits fewer bytes than requested
	ErrShortWrite = errors.New("write incomplete")

	// ErrInvalidElapsed is returned when the measured duration is not positive
	ErrInvalidElapsed = errors.New("invalid elapsed time")

	// ErrSpeedBelowMinimum is returned when measured throughput is below the floor
	ErrSpeedBelowMinimum = errors.New("write speed below minimum")

	// ErrInsufficientSpace is returned when the drive lacks room for the test files
	ErrInsufficientSpace = errors.New("insufficient free space")

	// ErrSpaceCheckUnsupported is returned when free space cannot be determined
	ErrSpaceCheckUnsupported = errors.New("free space check not supported")

	// ErrNoDrivesFound is returned when drive detection finds nothing testable
	ErrNoDrivesFound = errors.New("no USB drives detected")

	// ErrNoChecksToRun is returned when the registry produces no runnable cases
	ErrNoChecksToRun = errors.New("no checks to run")

	// ErrChecksFailed is returned when one or more cases fail
	ErrChecksFailed = errors.New("checks failed")
)

// TestError represents an enhanced error with context and suggestions
type TestError struct {
	// Base error
	Err error

	// Human-readable message explaining what went wrong
	Message string

	// Actionable suggestion for how to fix the issue
	Suggestion string

	// Path that was being tested (if applicable)
	Path string
}

// Error implements the error interface
func (e *TestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the error unwrapping interface
func (e *TestError) Unwrap() error {
	return e.Err
}

// Is implements the error checking interface
func (e *TestError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewTestError creates a new TestError
func NewTestError(err error, message, suggestion string) *TestError {
	return &TestError{
		Err:        err,
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewNotWritableError creates an error for read-only or permission-restricted targets
func NewNotWritableError(path string) *TestError {
	return &TestError{
		Err:        ErrPathNotWritable,
		Message:    fmt.Sprintf("path %s is not writable", path),
		Suggestion: "Check file permissions or whether the drive is mounted read-only",
		Path:       path,
	}
}

// NewInsufficientSpaceError creates an error describing how much space is missing
func NewInsufficientSpaceError(path string, requiredMB, freeMB float64) *TestError {
	return &TestError{
		Err: ErrInsufficientSpace,
		Message: fmt.Sprintf("insufficient space on %s: required %.0fMB, available %.0fMB",
			path, requiredMB, freeMB),
		Suggestion: fmt.Sprintf("Free up %.0fMB of space on the drive", requiredMB-freeMB),
		Path:       path,
	}
}

// NewSpeedBelowMinimumError creates an error for a failed throughput assertion
func NewSpeedBelowMinimumError(speed, minimum float64, sizeMB int) *TestError {
	return &TestError{
		Err: ErrSpeedBelowMinimum,
		Message: fmt.Sprintf("write speed %.2f MB/s is below the minimum of %.1f MB/s for a %dMB file",
			speed, minimum, sizeMB),
		Suggestion: "The drive may be USB 2.0 or faulty; USB 3.0 drives sustain 50-100+ MB/s",
	}
}
