// Package runner provides the sequential execution container: it hands
// control to one runnable at a time and watches, through a background
// watchdog, for runs that exceed a soft deadline.
package runner

// Runnable is the unit of schedulable work. Implementations must not let
// a panic escape Run; failures are delivered through the completion
// signals of whatever work the runnable wraps.
type Runnable interface {
	Run(c Container)
}

// Container runs runnables strictly one at a time. BeginRun and EndRun
// bracket a single execution and must be called exactly once each, in
// that order; no execution may straddle two bracket pairs.
type Container interface {
	// ScheduleToRun stores r as the next runnable to execute, replacing
	// any previously scheduled one. Safe to call from any goroutine; the
	// last write before promotion wins.
	ScheduleToRun(r Runnable)

	BeginRun()
	EndRun()

	// TimedOut reports whether the watchdog observed a stall during the
	// current or just-completed run.
	TimedOut() bool
}
