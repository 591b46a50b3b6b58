package main

import (
	"context"
	"testing"

	"github.com/txlab/go-usb-speedtest/internal/checks"
	"github.com/txlab/go-usb-speedtest/internal/config"
	"github.com/txlab/go-usb-speedtest/internal/harness"
	"github.com/txlab/go-usb-speedtest/internal/speedtest"
)

// BenchmarkSuite_EndToEnd measures a complete run of the check suite against
// a local directory: preconditions, ordering, and the timed measurements.
func BenchmarkSuite_EndToEnd(b *testing.B) {
	dir := b.TempDir()

	cfg := config.Default()
	cfg.TestSizesMB = []int{1, 2}
	cfg.MinSpeedMBps = 0.001

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		registry := checks.NewRegistry(cfg, dir, nil)

		r := harness.New()
		results, err := r.Run(context.Background(), registry.Checks(), harness.Options{})
		if err != nil {
			b.Fatal(err)
		}
		if results.Failed > 0 {
			b.Fatalf("unexpected failures: %d", results.Failed)
		}
	}
}

// BenchmarkMeasure measures the raw write-and-measure routine at a few sizes
func BenchmarkMeasure(b *testing.B) {
	sizes := []struct {
		name   string
		sizeMB int
	}{
		{"1MB", 1},
		{"4MB", 4},
		{"16MB", 16},
	}

	for _, tc := range sizes {
		b.Run(tc.name, func(b *testing.B) {
			dir := b.TempDir()

			b.SetBytes(int64(tc.sizeMB) * config.BytesPerMB)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := speedtest.Measure(dir, tc.sizeMB, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReorder measures the category partition on a large check list
func BenchmarkReorder(b *testing.B) {
	cfg := config.Default()
	cfg.TestSizesMB = make([]int, 0, 100)
	for size := 1; size <= 100; size++ {
		cfg.TestSizesMB = append(cfg.TestSizesMB, size)
	}

	list := checks.NewRegistry(cfg, b.TempDir(), &speedtest.Options{}).Checks()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		harness.Reorder(list)
	}
}
