// Package spec builds ordered chains of test cases and adapts them into
// the first runnable handed to a runner container. Traversal is driven
// by completion signals: each finished case schedules the next one, so
// cases execute in registration order, strictly one at a time.
package spec

import (
	"fmt"
	"os"

	"github.com/msageha/specrun/report"
	"github.com/msageha/specrun/runner"
)

// Spec is the registration surface: an ordered, fluent collection of
// synchronous and asynchronous cases. It implements runner.Runnable so a
// built spec can be scheduled directly on a container.
type Spec struct {
	head *chainHead
}

// New creates an empty spec reporting through rep. A nil reporter
// selects a console reporter on stdout.
func New(rep report.Reporter) *Spec {
	if rep == nil {
		rep = report.NewConsole(os.Stdout, report.ColorAuto)
	}
	return &Spec{head: newChainHead(rep)}
}

// It registers a synchronous case. A nil error return passes the case; a
// non-nil error or a panic fails it without stopping the chain. It
// panics if the chain has already started running.
func (s *Spec) It(should string, body func() error) *Spec {
	s.mustRegister(should)
	s.head.append(newTestCase(should, func(n Notifier) {
		defer recoverToFail(n)
		if err := body(); err != nil {
			n.Fail(err)
			return
		}
		n.Succeed()
	}))
	return s
}

// ItAsync registers an asynchronous case. The body receives the case's
// notifier and owns completion: the engine waits indefinitely for
// Succeed or Fail, from whatever goroutine the body chooses. A panic
// while the body is starting up fails the case. ItAsync panics if the
// chain has already started running.
func (s *Spec) ItAsync(should string, body func(n Notifier)) *Spec {
	s.mustRegister(should)
	s.head.append(newTestCase(should, func(n Notifier) {
		defer recoverToFail(n)
		body(n)
	}))
	return s
}

// Len returns the number of registered cases.
func (s *Spec) Len() int {
	return s.head.len()
}

// Run hands the first case to the container. Implements runner.Runnable.
func (s *Spec) Run(c runner.Container) {
	c.BeginRun()
	s.head.letItRun(c)
	c.EndRun()
}

func (s *Spec) mustRegister(should string) {
	if s.head.isRunning() {
		panic(fmt.Sprintf("spec: cannot register %q after the chain has started", should))
	}
}

func recoverToFail(n Notifier) {
	if r := recover(); r != nil {
		n.Fail(fmt.Errorf("case panicked: %v", r))
	}
}
