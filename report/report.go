// Package report carries per-case outcomes and run summaries from the
// chain to whatever renders them.
package report

import "time"

// Outcome is the result of one finished case.
type Outcome struct {
	Should string
	Passed bool
	// TimedOut marks a passing case that exceeded the watchdog bound
	// before completing. Advisory only; never set on failures.
	TimedOut bool
	Err      error
	Duration time.Duration
}

// Summary is the final tally of one full chain traversal.
type Summary struct {
	Total     int
	Succeeded int
}

// Failed returns the number of cases that did not succeed.
func (s Summary) Failed() int {
	return s.Total - s.Succeeded
}

// Reporter consumes outcomes as the chain commits them. CaseFinished is
// called exactly once per case, in chain order, and RunFinished exactly
// once after the last case. Calls are serialized by the chain.
type Reporter interface {
	CaseFinished(o Outcome)
	RunFinished(s Summary)
}

// Multi fans out to several reporters in order. Delivery is synchronous,
// so one case's line is fully committed everywhere before the next case
// may start.
type Multi []Reporter

func (m Multi) CaseFinished(o Outcome) {
	for _, r := range m {
		r.CaseFinished(o)
	}
}

func (m Multi) RunFinished(s Summary) {
	for _, r := range m {
		r.RunFinished(s)
	}
}
