package spec

import (
	"sync"

	"github.com/msageha/specrun/report"
	"github.com/msageha/specrun/runner"
)

// chainHead drives the ordered traversal of registered cases. Cases live
// in a slice in registration order; a cursor advances one step per
// completion signal. The head borrows the container for the duration of
// one traversal and is the only writer of the run counters.
type chainHead struct {
	mu        sync.Mutex
	cases     []*testCase
	cursor    int
	container runner.Container
	running   bool

	total     int
	succeeded int

	reporter report.Reporter
}

func newChainHead(rep report.Reporter) *chainHead {
	return &chainHead{reporter: rep}
}

func (h *chainHead) append(tc *testCase) {
	h.mu.Lock()
	h.cases = append(h.cases, tc)
	h.mu.Unlock()
}

func (h *chainHead) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.cases)
}

func (h *chainHead) isRunning() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

// letItRun borrows the container and schedules the first case, if any.
// An empty chain schedules nothing and produces no output.
func (h *chainHead) letItRun(c runner.Container) {
	h.mu.Lock()
	h.container = c
	h.running = true
	h.total = len(h.cases)
	h.cursor = 0
	var first *testCase
	if len(h.cases) > 0 {
		first = h.cases[0]
	}
	h.mu.Unlock()

	if first != nil {
		c.ScheduleToRun(&caseRunnable{head: h, tc: first})
	}
}

// finish commits one case's outcome. The next case is scheduled and the
// report line emitted before EndRun releases the container, so the next
// case cannot start until this one's bookkeeping is fully committed.
func (h *chainHead) finish(tc *testCase, caseErr error) {
	passed := caseErr == nil
	dur, err := tc.markFinished(passed)
	if err != nil {
		// a signal already decided this case; the first one won
		return
	}

	h.mu.Lock()
	c := h.container
	h.cursor++
	var next *testCase
	if h.cursor < len(h.cases) {
		next = h.cases[h.cursor]
	}
	if passed {
		h.succeeded++
	}
	total, succeeded := h.total, h.succeeded
	h.mu.Unlock()

	if next != nil {
		c.ScheduleToRun(&caseRunnable{head: h, tc: next})
	}

	h.reporter.CaseFinished(report.Outcome{
		Should:   tc.should,
		Passed:   passed,
		TimedOut: passed && c.TimedOut(),
		Err:      caseErr,
		Duration: dur,
	})

	if next == nil {
		h.reporter.RunFinished(report.Summary{Total: total, Succeeded: succeeded})
	}

	c.EndRun()
}
