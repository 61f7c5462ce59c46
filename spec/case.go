package spec

import (
	"errors"
	"sync"
	"time"

	"github.com/msageha/specrun/runner"
)

// Notifier carries the two terminal completion signals for one case.
// Either may be invoked from any goroutine, synchronously from the case
// body or much later. The first call decides the case's outcome; later
// calls on the same case are no-ops.
type Notifier interface {
	Succeed()
	Fail(err error)
}

// testCase is one registered unit of behaviour. Immutable after
// registration except for its lifecycle status and timing.
type testCase struct {
	should string
	// exec runs the user body with its completion signals bound. It
	// never lets a panic escape; panics become Fail signals.
	exec func(n Notifier)

	mu        sync.Mutex
	status    CaseStatus
	startedAt time.Time
}

func newTestCase(should string, exec func(n Notifier)) *testCase {
	return &testCase{
		should: should,
		exec:   exec,
		status: CaseStatusPending,
	}
}

func (tc *testCase) markRunning() {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.status = CaseStatusRunning
	tc.startedAt = time.Now()
}

// markFinished moves the case to its terminal status. It returns an
// error when the case is already terminal, which is how a duplicate
// completion signal is detected and dropped.
func (tc *testCase) markFinished(passed bool) (time.Duration, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	to := CaseStatusPassed
	if !passed {
		to = CaseStatusFailed
	}
	if err := ValidateCaseTransition(tc.status, to); err != nil {
		return 0, err
	}
	tc.status = to
	return time.Since(tc.startedAt), nil
}

// caseRunnable adapts one case to the container's runnable contract.
type caseRunnable struct {
	head *chainHead
	tc   *testCase
}

func (r *caseRunnable) Run(c runner.Container) {
	c.BeginRun()
	r.tc.markRunning()
	r.tc.exec(&caseNotifier{head: r.head, tc: r.tc})
}

// caseNotifier binds the completion signals to one specific case.
type caseNotifier struct {
	head *chainHead
	tc   *testCase
}

func (n *caseNotifier) Succeed() {
	n.head.finish(n.tc, nil)
}

func (n *caseNotifier) Fail(err error) {
	if err == nil {
		err = errors.New("case failed")
	}
	n.head.finish(n.tc, err)
}
