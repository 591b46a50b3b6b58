// Package harness provides the case execution engine for the USB speed test
// harness: deterministic ordering, precondition fail-fast, and end-of-run
// summaries.
package harness

import "context"

// Category classifies a check for ordering and fail-fast decisions
type Category int

const (
	// CategoryOther marks checks with no ordering significance
	CategoryOther Category = iota

	// CategoryPrecondition marks fast checks that must pass before any
	// expensive measurement is attempted
	CategoryPrecondition

	// CategoryPerformance marks the timed write-and-measure checks
	CategoryPerformance
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case CategoryPrecondition:
		return "precondition"
	case CategoryPerformance:
		return "performance"
	default:
		return "other"
	}
}

// Check is the interface every test case must implement
type Check interface {
	// Name returns the unique name of the check
	Name() string

	// Description returns a brief description of what the check verifies
	Description() string

	// Category returns the check's ordering category
	Category() Category

	// Run executes the check. The session is the run-scoped state shared
	// by all checks; performance checks record speed samples into it.
	Run(ctx context.Context, session *Session) error
}

// Reorder partitions checks into precondition, other, and performance groups,
// preserving each group's original relative order, and concatenates them so
// that every precondition check executes before every performance check.
func Reorder(checks []Check) []Check {
	var preconditions, performance, others []Check

	for _, check := range checks {
		switch check.Category() {
		case CategoryPrecondition:
			preconditions = append(preconditions, check)
		case CategoryPerformance:
			performance = append(performance, check)
		default:
			others = append(others, check)
		}
	}

	ordered := make([]Check, 0, len(checks))
	ordered = append(ordered, preconditions...)
	ordered = append(ordered, others...)
	ordered = append(ordered, performance...)
	return ordered
}
