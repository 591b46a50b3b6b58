package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txlab/go-usb-speedtest/internal/config"
	usberrors "github.com/txlab/go-usb-speedtest/internal/errors"
	"github.com/txlab/go-usb-speedtest/internal/harness"
)

func TestSpeedCheck_Name(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "speed-100mb", NewSpeedCheck(cfg, "/mnt/usb", 100, nil).Name())
	assert.Equal(t, "speed-5mb", NewSpeedCheck(cfg, "/mnt/usb", 5, nil).Name())
}

func TestSpeedCheck_PassRecordsSample(t *testing.T) {
	cfg := config.Default()
	// Local disk writes comfortably clear a near-zero floor
	cfg.MinSpeedMBps = 0.001

	session := harness.NewSession()
	check := NewSpeedCheck(cfg, t.TempDir(), 1, nil)

	require.NoError(t, check.Run(context.Background(), session))

	speeds := session.Speeds()
	require.Len(t, speeds, 1)
	assert.Positive(t, speeds[0])
}

func TestSpeedCheck_FailureStillRecordsSample(t *testing.T) {
	cfg := config.Default()
	// No drive writes this fast; the assertion must fail
	cfg.MinSpeedMBps = 1e12

	session := harness.NewSession()
	check := NewSpeedCheck(cfg, t.TempDir(), 1, nil)

	err := check.Run(context.Background(), session)
	require.Error(t, err)
	assert.ErrorIs(t, err, usberrors.ErrSpeedBelowMinimum)

	var testErr *usberrors.TestError
	require.ErrorAs(t, err, &testErr)
	assert.NotEmpty(t, testErr.Suggestion)

	// The measured sample reaches the session even on failure
	assert.Len(t, session.Speeds(), 1)
}

func TestSpeedCheck_MeasurementErrorRecordsNothing(t *testing.T) {
	cfg := config.Default()
	session := harness.NewSession()
	check := NewSpeedCheck(cfg, filepath.Join(t.TempDir(), "gone"), 1, nil)

	err := check.Run(context.Background(), session)
	require.Error(t, err)
	assert.ErrorIs(t, err, usberrors.ErrPathNotFound)
	assert.Empty(t, session.Speeds())
}

func TestSpeedCheck_CleansUpTestFile(t *testing.T) {
	cfg := config.Default()
	cfg.MinSpeedMBps = 0.001
	dir := t.TempDir()

	check := NewSpeedCheck(cfg, dir, 1, nil)
	require.NoError(t, check.Run(context.Background(), harness.NewSession()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
