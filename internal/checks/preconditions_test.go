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

func TestWritableCheck(t *testing.T) {
	t.Run("writable directory passes", func(t *testing.T) {
		check := NewWritableCheck(t.TempDir())
		assert.NoError(t, check.Run(context.Background(), harness.NewSession()))
	})

	t.Run("missing path fails", func(t *testing.T) {
		check := NewWritableCheck(filepath.Join(t.TempDir(), "gone"))
		err := check.Run(context.Background(), harness.NewSession())
		require.Error(t, err)
		assert.ErrorIs(t, err, usberrors.ErrPathNotFound)
	})

	t.Run("read-only directory fails", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("root ignores directory permissions")
		}

		dir := t.TempDir()
		require.NoError(t, os.Chmod(dir, 0o500))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

		check := NewWritableCheck(dir)
		err := check.Run(context.Background(), harness.NewSession())
		require.Error(t, err)
		assert.ErrorIs(t, err, usberrors.ErrPathNotWritable)

		var testErr *usberrors.TestError
		require.ErrorAs(t, err, &testErr)
		assert.NotEmpty(t, testErr.Suggestion)
	})
}

func TestFreeSpaceCheck(t *testing.T) {
	t.Run("small requirement passes", func(t *testing.T) {
		cfg := config.Default()
		cfg.TestSizesMB = []int{1}

		check := NewFreeSpaceCheck(cfg, t.TempDir())
		assert.NoError(t, check.Run(context.Background(), harness.NewSession()))
	})

	t.Run("impossible requirement fails", func(t *testing.T) {
		cfg := config.Default()
		// A petabyte-scale requirement no test machine satisfies
		cfg.TestSizesMB = []int{1 << 30}

		check := NewFreeSpaceCheck(cfg, t.TempDir())
		err := check.Run(context.Background(), harness.NewSession())
		require.Error(t, err)
		assert.ErrorIs(t, err, usberrors.ErrInsufficientSpace)
	})

	t.Run("missing path fails", func(t *testing.T) {
		check := NewFreeSpaceCheck(config.Default(), filepath.Join(t.TempDir(), "gone"))
		err := check.Run(context.Background(), harness.NewSession())
		require.Error(t, err)
		assert.ErrorIs(t, err, usberrors.ErrPathNotFound)
	})
}

func TestSizeValidationCheck(t *testing.T) {
	dir := t.TempDir()
	check := NewSizeValidationCheck(dir)

	require.NoError(t, check.Run(context.Background(), harness.NewSession()))
	assert.NoFileExists(t, filepath.Join(dir, config.TestFileName))
}

func TestPreconditionNamesAndDescriptions(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	checks := []harness.Check{
		NewWritableCheck(dir),
		NewFreeSpaceCheck(cfg, dir),
		NewSizeValidationCheck(dir),
	}

	for _, check := range checks {
		assert.NotEmpty(t, check.Name())
		assert.NotEmpty(t, check.Description())
		assert.Equal(t, harness.CategoryPrecondition, check.Category())
	}
}
