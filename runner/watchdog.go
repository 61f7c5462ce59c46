package runner

import (
	"errors"
	"sync/atomic"
	"time"
)

const (
	// DefaultProbeInterval is the soft deadline after which a
	// still-running case is flagged as a likely timeout.
	DefaultProbeInterval = 500 * time.Millisecond
	// DefaultActivationTimeout bounds the watchdog startup handshake.
	DefaultActivationTimeout = time.Second
)

// ErrWatchdogActivation is returned by Start when the watchdog goroutine
// does not confirm activation within its bound. The run is aborted before
// any case executes.
var ErrWatchdogActivation = errors.New("runner: watchdog failed to activate")

// watchdog observes how long each run holds the container and flags runs
// that exceed the probe bound. It is advisory only: it never interrupts
// or cancels the running case.
type watchdog struct {
	probe      time.Duration
	activation time.Duration

	timedOut atomic.Bool

	// runs carries one completion channel per beginRun. The container
	// is sequential, so at most one is outstanding at a time.
	runs chan (<-chan struct{})
	quit chan struct{}

	log *leveledLogger
}

func newWatchdog(probe, activation time.Duration, log *leveledLogger) *watchdog {
	if probe <= 0 {
		probe = DefaultProbeInterval
	}
	if activation <= 0 {
		activation = DefaultActivationTimeout
	}
	return &watchdog{
		probe:      probe,
		activation: activation,
		runs:       make(chan (<-chan struct{}), 1),
		quit:       make(chan struct{}),
		log:        log,
	}
}

// start launches the monitor goroutine and blocks until it confirms
// activation or the handshake bound elapses.
func (w *watchdog) start() error {
	ready := make(chan struct{})
	go w.monitor(ready)

	select {
	case <-ready:
		return nil
	case <-time.After(w.activation):
		close(w.quit)
		return ErrWatchdogActivation
	}
}

func (w *watchdog) stop() {
	close(w.quit)
}

func (w *watchdog) monitor(ready chan<- struct{}) {
	close(ready)

	for {
		select {
		case <-w.quit:
			return
		case done := <-w.runs:
			select {
			case <-done:
				// finished within the bound
			case <-time.After(w.probe):
				w.timedOut.Store(true)
				w.log.log(LogLevelWarn, "run exceeded probe bound %s, flagged as likely timeout", w.probe)
				// give up probing this run and wait for it to end
				select {
				case <-done:
				case <-w.quit:
					return
				}
			case <-w.quit:
				return
			}
		}
	}
}

// beginRun hands the monitor the completion channel of the run that is
// about to start. The container closes it in EndRun.
func (w *watchdog) beginRun(done <-chan struct{}) {
	w.runs <- done
}

// reset clears the observed flag; called by the container right before
// each promotion so the flag only describes the current run.
func (w *watchdog) reset() {
	w.timedOut.Store(false)
}

func (w *watchdog) isTimedOut() bool {
	return w.timedOut.Load()
}
