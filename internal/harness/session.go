package harness

import "fmt"

// Session holds the run-scoped state shared by all checks in one invocation.
// It is constructed fresh at run start, passed by reference to every check,
// and discarded at run end. The harness is single-threaded, so no
// synchronization is required.
type Session struct {
	preconditionFailed bool
	failedName         string
	speeds             []float64
}

// NewSession creates a fresh session
func NewSession() *Session {
	return &Session{}
}

// Reset clears the failure flag, recorded name, and speed samples. It must be
// called at the start of every run so repeated invocations in the same
// process start clean.
func (s *Session) Reset() {
	s.preconditionFailed = false
	s.failedName = ""
	s.speeds = nil
}

// RecordOutcome records the result of a completed check. The first failing
// precondition check becomes the authoritative failure for the session;
// later precondition failures do not overwrite it.
func (s *Session) RecordOutcome(name string, category Category, err error) {
	if err == nil || category != CategoryPrecondition {
		return
	}
	if s.preconditionFailed {
		return
	}
	s.preconditionFailed = true
	s.failedName = name
}

// ShouldSkip reports whether a check of the given category must be skipped,
// along with an explanatory reason naming the original failed precondition.
// Only performance checks are skipped by this rule.
func (s *Session) ShouldSkip(category Category) (bool, string) {
	if !s.preconditionFailed || category != CategoryPerformance {
		return false, ""
	}
	return true, fmt.Sprintf(
		"precondition check '%s' failed; fix preconditions before running performance checks",
		s.failedName)
}

// PreconditionFailed reports whether a precondition failure has been recorded,
// and if so the name of the first failing check.
func (s *Session) PreconditionFailed() (bool, string) {
	return s.preconditionFailed, s.failedName
}

// RecordSpeed appends one throughput sample to the session
func (s *Session) RecordSpeed(mbps float64) {
	s.speeds = append(s.speeds, mbps)
}

// Speeds returns the throughput samples collected so far, in recording order
func (s *Session) Speeds() []float64 {
	return s.speeds
}
