// Package progress provides interval-based progress reporting for chunked writes
package progress

import "fmt"

// ReportFunc receives a progress update after every reporting interval
type ReportFunc func(message string)

// Tracker reports progress of a chunked write at a fixed chunk interval
type Tracker struct {
	totalChunks  int
	chunkBytes   int
	interval     int
	written      int
	reportFunc   ReportFunc
	progressFunc func(writtenChunks, totalChunks int, writtenMB float64) string
}

// Options configures a progress tracker
type Options struct {
	TotalChunks  int        // Number of chunks the write will produce
	ChunkBytes   int        // Size of each chunk in bytes
	Interval     int        // Report every N chunks (default: 10)
	ReportFunc   ReportFunc // Destination for progress messages
	ProgressFunc func(writtenChunks, totalChunks int, writtenMB float64) string
}

// New creates a new progress tracker
func New(opts Options) *Tracker {
	if opts.Interval <= 0 {
		opts.Interval = 10
	}
	if opts.ProgressFunc == nil {
		opts.ProgressFunc = defaultProgressMessage
	}

	return &Tracker{
		totalChunks:  opts.TotalChunks,
		chunkBytes:   opts.ChunkBytes,
		interval:     opts.Interval,
		reportFunc:   opts.ReportFunc,
		progressFunc: opts.ProgressFunc,
	}
}

// Tick records one written chunk and emits a report on interval boundaries
func (t *Tracker) Tick() {
	t.written++

	if t.reportFunc == nil {
		return
	}
	if t.written%t.interval != 0 {
		return
	}

	writtenMB := float64(t.written) * float64(t.chunkBytes) / (1024 * 1024)
	t.reportFunc(t.progressFunc(t.written, t.totalChunks, writtenMB))
}

// Written returns the number of chunks recorded so far
func (t *Tracker) Written() int {
	return t.written
}

// defaultProgressMessage creates a default progress message
func defaultProgressMessage(writtenChunks, totalChunks int, writtenMB float64) string {
	if totalChunks <= 0 {
		return fmt.Sprintf("written %.1fMB", writtenMB)
	}
	return fmt.Sprintf("written %.1fMB (%d%%)", writtenMB, writtenChunks*100/totalChunks)
}
