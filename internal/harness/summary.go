package harness

// SummaryKind distinguishes the end-of-run report variants
type SummaryKind int

const (
	// SummaryAllPassed means every executed check passed and none were skipped
	SummaryAllPassed SummaryKind = iota

	// SummaryPreconditionFailure means a precondition check failed and
	// performance checks were skipped
	SummaryPreconditionFailure

	// SummaryAllSkipped means no check ran at all
	SummaryAllSkipped

	// SummaryFailures covers every other mix of outcomes
	SummaryFailures
)

// SpeedStats summarizes the throughput samples collected during a run
type SpeedStats struct {
	Count   int
	Min     float64
	Max     float64
	Average float64
}

// Summary is the distinguished end-of-run report
type Summary struct {
	Kind SummaryKind

	// FailedPrecondition names the first failing precondition check when
	// Kind is SummaryPreconditionFailure
	FailedPrecondition string

	// Stats holds speed statistics when samples were collected
	Stats *SpeedStats
}

// Summarize produces the end-of-run report from the run results and session
func Summarize(results *Results, session *Session) Summary {
	summary := Summary{Stats: speedStats(session.Speeds())}

	if failed, name := session.PreconditionFailed(); failed {
		summary.Kind = SummaryPreconditionFailure
		summary.FailedPrecondition = name
		return summary
	}

	switch {
	case results.Passed > 0 && results.Failed == 0 && results.Skipped == 0:
		summary.Kind = SummaryAllPassed
	case results.Skipped > 0 && results.Passed == 0 && results.Failed == 0:
		summary.Kind = SummaryAllSkipped
	default:
		summary.Kind = SummaryFailures
	}

	return summary
}

// speedStats computes min, max, and arithmetic mean over the samples
func speedStats(speeds []float64) *SpeedStats {
	if len(speeds) == 0 {
		return nil
	}

	stats := &SpeedStats{
		Count: len(speeds),
		Min:   speeds[0],
		Max:   speeds[0],
	}

	var sum float64
	for _, speed := range speeds {
		sum += speed
		if speed < stats.Min {
			stats.Min = speed
		}
		if speed > stats.Max {
			stats.Max = speed
		}
	}
	stats.Average = sum / float64(len(speeds))

	return stats
}
