package runner

import (
	"io"
	"sync"
	"time"
)

// Config controls a sequential container. The zero value selects the
// built-in defaults and discards engine logs.
type Config struct {
	// ProbeInterval is the watchdog's soft deadline per run. Zero or
	// negative selects DefaultProbeInterval.
	ProbeInterval time.Duration
	// ActivationTimeout bounds the watchdog startup handshake. Zero or
	// negative selects DefaultActivationTimeout.
	ActivationTimeout time.Duration
	// LogWriter receives leveled engine logs. Nil discards them.
	LogWriter io.Writer
	LogLevel  LogLevel
}

// Sequential is a Container that runs scheduled runnables strictly one
// at a time.
//
// It holds a pending slot (the next runnable to execute) and an active
// slot (the one currently executing). A runnable is promoted only when
// the active slot is empty, and the loop exits once both slots are
// empty. Slot hand-off is serialized under a mutex so that completion
// signals arriving from other goroutines are safe.
type Sequential struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending Runnable
	active  Runnable

	// runDone is closed by EndRun to release the watchdog probe of the
	// bracketed run.
	runDone chan struct{}

	started sync.Once

	dog *watchdog
	log *leveledLogger
}

// NewSequential creates a container with the given configuration.
func NewSequential(cfg Config) *Sequential {
	logger := newLeveledLogger(cfg.LogWriter, cfg.LogLevel, "runner")
	s := &Sequential{
		dog: newWatchdog(cfg.ProbeInterval, cfg.ActivationTimeout, logger),
		log: logger,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// ScheduleToRun stores r in the pending slot, replacing any previous
// value. Safe to call from any goroutine, including the one executing
// the current case's body.
func (s *Sequential) ScheduleToRun(r Runnable) {
	s.mu.Lock()
	s.pending = r
	s.cond.Broadcast()
	s.mu.Unlock()
}

// BeginRun marks the start of one runnable's execution and arms the
// watchdog probe for it.
func (s *Sequential) BeginRun() {
	done := make(chan struct{})
	s.mu.Lock()
	s.runDone = done
	s.mu.Unlock()
	s.dog.beginRun(done)
}

// EndRun commits the end of the current execution. The watchdog probe is
// released first, then the active slot is cleared so the loop can
// promote the next pending runnable.
func (s *Sequential) EndRun() {
	s.mu.Lock()
	done := s.runDone
	s.runDone = nil
	s.mu.Unlock()

	if done != nil {
		close(done)
	}

	s.mu.Lock()
	s.active = nil
	s.cond.Broadcast()
	s.mu.Unlock()
}

// TimedOut reports whether the watchdog flagged the current or
// just-completed run.
func (s *Sequential) TimedOut() bool {
	return s.dog.isTimedOut()
}

// Start runs the scheduling loop until no runnable is pending and none
// is running. It is idempotent: only the first call does anything, and
// that call returns immediately unless a runnable has been scheduled.
// The only error is a watchdog that fails its activation handshake,
// which aborts the run before any case executes.
func (s *Sequential) Start() error {
	var err error
	s.started.Do(func() {
		s.mu.Lock()
		hasPending := s.pending != nil
		s.mu.Unlock()
		if !hasPending {
			return
		}

		if err = s.dog.start(); err != nil {
			return
		}
		defer s.dog.stop()

		s.log.log(LogLevelInfo, "container started")
		s.loop()
		s.log.log(LogLevelInfo, "container drained")
	})
	return err
}

func (s *Sequential) loop() {
	s.mu.Lock()
	for {
		switch {
		case s.pending == nil && s.active == nil:
			// terminal state
			s.mu.Unlock()
			return
		case s.pending != nil && s.active == nil:
			r := s.pending
			s.pending = nil
			s.active = r
			s.mu.Unlock()

			s.dog.reset()
			s.log.log(LogLevelDebug, "promoted pending runnable")
			r.Run(s)

			s.mu.Lock()
		default:
			// a run is in flight; wait for EndRun or ScheduleToRun
			s.cond.Wait()
		}
	}
}
