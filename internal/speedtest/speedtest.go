// Package speedtest implements the chunked write-and-measure routine for
// validating drive throughput.
package speedtest

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/txlab/go-usb-speedtest/internal/config"
	usberrors "github.com/txlab/go-usb-speedtest/internal/errors"
	"github.com/txlab/go-usb-speedtest/internal/progress"
)

// Options configures a single measurement invocation
type Options struct {
	// ChunkSizeBytes is the size of each write chunk (default: 1 MiB)
	ChunkSizeBytes int

	// FileName is the name of the transient test file (default: speedtest.dat)
	FileName string

	// ProgressInterval reports progress every N chunks (default: 10)
	ProgressInterval int

	// ProgressFunc receives progress messages during the write, if set
	ProgressFunc func(message string)

	// Warnf receives non-fatal warnings (cleanup failures, size mismatch).
	// Warnings never affect the primary outcome.
	Warnf func(format string, args ...interface{})
}

func (o *Options) withDefaults() Options {
	opts := Options{}
	if o != nil {
		opts = *o
	}
	if opts.ChunkSizeBytes <= 0 {
		opts.ChunkSizeBytes = config.DefaultChunkSizeBytes
	}
	if opts.FileName == "" {
		opts.FileName = config.TestFileName
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = config.DefaultProgressInterval
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...interface{}) {}
	}
	return opts
}

// Measure writes sizeMB megabytes of random data to a test file inside dir,
// forces the data to stable storage, and returns the measured write speed in
// MB/s. The test file is removed on every exit path; removal failures are
// reported through Warnf and never mask the primary outcome.
func Measure(dir string, sizeMB int, o *Options) (float64, error) {
	opts := o.withDefaults()

	if sizeMB < config.MinFileSizeMB {
		return 0, fmt.Errorf("%w: %dMB, must be at least %dMB",
			usberrors.ErrInvalidSize, sizeMB, config.MinFileSizeMB)
	}

	if err := ValidatePath(dir); err != nil {
		return 0, err
	}

	totalBytes := sizeMB * config.BytesPerMB
	chunkBytes := opts.ChunkSizeBytes
	numChunks := totalBytes / chunkBytes

	// A request smaller than one chunk gets a single chunk sized to the
	// exact total.
	if numChunks == 0 {
		chunkBytes = totalBytes
		numChunks = 1
	}

	// Random content defeats filesystem-level compression and dedup that
	// would otherwise distort the measurement.
	chunk := make([]byte, chunkBytes)
	if _, err := rand.Read(chunk); err != nil {
		return 0, fmt.Errorf("failed to generate test data: %w", err)
	}

	testFile := filepath.Join(dir, opts.FileName)
	defer removeTestFile(testFile, opts.Warnf)

	f, err := os.OpenFile(testFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // Fixed name inside a validated directory
	if err != nil {
		return 0, fmt.Errorf("failed to create test file %s: %w", testFile, err)
	}

	tracker := progress.New(progress.Options{
		TotalChunks: numChunks,
		ChunkBytes:  chunkBytes,
		Interval:    opts.ProgressInterval,
		ReportFunc:  opts.ProgressFunc,
	})

	start := time.Now()

	for i := 0; i < numChunks; i++ {
		n, werr := f.Write(chunk)
		if werr != nil {
			_ = f.Close()
			return 0, fmt.Errorf("write failed after %d chunk(s): %w", i, werr)
		}
		if n != len(chunk) {
			_ = f.Close()
			return 0, fmt.Errorf("%w: expected %d bytes, wrote %d bytes",
				usberrors.ErrShortWrite, len(chunk), n)
		}
		tracker.Tick()
	}

	// Force the data onto the physical device before stopping the clock.
	// Without this the elapsed time measures the OS cache, not the drive.
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("failed to sync test file: %w", err)
	}

	elapsed := time.Since(start)

	if err = f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close test file: %w", err)
	}

	info, err := os.Stat(testFile)
	if err != nil {
		return 0, fmt.Errorf("test file was not created: %w", err)
	}

	if elapsed <= 0 {
		return 0, fmt.Errorf("%w: %v (system clock issue?)", usberrors.ErrInvalidElapsed, elapsed)
	}

	actualMB := float64(info.Size()) / config.BytesPerMB
	speed := actualMB / elapsed.Seconds()

	// Tolerate up to 1% drift between requested and on-disk size; anything
	// larger suggests silent truncation and is worth a warning.
	expectedMB := float64(sizeMB)
	if diffPercent := absFloat(actualMB-expectedMB) / expectedMB * 100; diffPercent > 1 {
		opts.Warnf("file size mismatch: expected %.0fMB, got %.2fMB (%.1f%% difference)",
			expectedMB, actualMB, diffPercent)
	}

	return speed, nil
}

// ValidatePath verifies that path is a non-empty, existing directory
func ValidatePath(path string) error {
	if path == "" {
		return usberrors.ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", usberrors.ErrPathNotFound, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", usberrors.ErrNotDirectory, path)
	}

	return nil
}

// removeTestFile deletes the test file if it exists. Failures are logged
// through warnf only; the measurement's primary outcome always wins.
func removeTestFile(path string, warnf func(format string, args ...interface{})) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		warnf("could not remove test file %s: %v", path, err)
	}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
