package runner

import (
	"testing"
	"time"
)

func newTestWatchdog(probe time.Duration) *watchdog {
	return newWatchdog(probe, 0, newLeveledLogger(nil, LogLevelError, "watchdog"))
}

func TestWatchdog_DefaultsApplied(t *testing.T) {
	w := newTestWatchdog(0)
	if w.probe != DefaultProbeInterval {
		t.Errorf("expected probe %s, got %s", DefaultProbeInterval, w.probe)
	}
	if w.activation != DefaultActivationTimeout {
		t.Errorf("expected activation %s, got %s", DefaultActivationTimeout, w.activation)
	}
}

func TestWatchdog_ActivationHandshake(t *testing.T) {
	w := newTestWatchdog(50 * time.Millisecond)
	if err := w.start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	w.stop()
}

func TestWatchdog_FastRunNotFlagged(t *testing.T) {
	w := newTestWatchdog(100 * time.Millisecond)
	if err := w.start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.stop()

	done := make(chan struct{})
	w.beginRun(done)
	time.Sleep(20 * time.Millisecond)
	close(done)

	time.Sleep(20 * time.Millisecond)
	if w.isTimedOut() {
		t.Error("run finished within the bound but was flagged")
	}
}

func TestWatchdog_SlowRunFlagged(t *testing.T) {
	w := newTestWatchdog(30 * time.Millisecond)
	if err := w.start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.stop()

	done := make(chan struct{})
	w.beginRun(done)
	time.Sleep(100 * time.Millisecond)

	if !w.isTimedOut() {
		t.Error("run exceeded the bound but was not flagged")
	}
	// The case still completes; the flag stays until the next reset.
	close(done)
	if !w.isTimedOut() {
		t.Error("flag must survive run completion")
	}

	w.reset()
	if w.isTimedOut() {
		t.Error("reset must clear the flag")
	}
}
