package harness

import (
	"context"
	"errors"
	"time"

	usberrors "github.com/txlab/go-usb-speedtest/internal/errors"
)

// Status is the outcome of a single executed check
type Status string

const (
	// StatusPassed marks a check that ran and succeeded
	StatusPassed Status = "passed"

	// StatusFailed marks a check that ran and failed
	StatusFailed Status = "failed"

	// StatusSkipped marks a check that was not executed
	StatusSkipped Status = "skipped"
)

// Runner executes checks sequentially in cost-aware order
type Runner struct {
	session *Session
}

// Options configures a run
type Options struct {
	// ProgressCallback is called during execution for progress updates
	ProgressCallback ProgressCallback
}

// ProgressCallback is called during check execution for progress updates
type ProgressCallback func(checkName string, status string)

// CheckResult contains the result of a single check
type CheckResult struct {
	Name       string
	Category   Category
	Status     Status
	Error      string
	Suggestion string
	SkipReason string
	Duration   time.Duration
}

// Results contains the results of a run
type Results struct {
	CheckResults  []CheckResult
	Passed        int
	Failed        int
	Skipped       int
	TotalDuration time.Duration
}

// New creates a new Runner with a fresh session
func New() *Runner {
	return &Runner{session: NewSession()}
}

// Session returns the runner's session state
func (r *Runner) Session() *Session {
	return r.session
}

// Run executes the given checks in precondition-first order. Once a
// precondition check fails, every subsequent performance check is skipped
// with a reason naming the original failure. The run itself never fails
// because of check outcomes; callers inspect Results.
func (r *Runner) Run(ctx context.Context, checks []Check, opts Options) (*Results, error) {
	if len(checks) == 0 {
		return nil, usberrors.ErrNoChecksToRun
	}

	start := time.Now()
	r.session.Reset()

	ordered := Reorder(checks)

	results := &Results{
		CheckResults: make([]CheckResult, 0, len(ordered)),
	}

	for _, check := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if skip, reason := r.session.ShouldSkip(check.Category()); skip {
			results.CheckResults = append(results.CheckResults, CheckResult{
				Name:       check.Name(),
				Category:   check.Category(),
				Status:     StatusSkipped,
				SkipReason: reason,
			})
			results.Skipped++
			if opts.ProgressCallback != nil {
				opts.ProgressCallback(check.Name(), string(StatusSkipped))
			}
			continue
		}

		if opts.ProgressCallback != nil {
			opts.ProgressCallback(check.Name(), "running")
		}

		result := r.runCheck(ctx, check)
		results.CheckResults = append(results.CheckResults, result)

		if result.Status == StatusPassed {
			results.Passed++
		} else {
			results.Failed++
		}
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(check.Name(), string(result.Status))
		}
	}

	results.TotalDuration = time.Since(start)
	return results, nil
}

// runCheck executes a single check and records its outcome in the session
func (r *Runner) runCheck(ctx context.Context, check Check) CheckResult {
	start := time.Now()

	err := check.Run(ctx, r.session)
	r.session.RecordOutcome(check.Name(), check.Category(), err)

	result := CheckResult{
		Name:     check.Name(),
		Category: check.Category(),
		Status:   StatusPassed,
		Duration: time.Since(start),
	}

	if err != nil {
		result.Status = StatusFailed
		result.Error = err.Error()

		var testErr *usberrors.TestError
		if errors.As(err, &testErr) {
			result.Suggestion = testErr.Suggestion
		}
	}

	return result
}
