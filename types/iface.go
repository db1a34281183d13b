package types

import (
	"time"
)

// Spinner is a terminal activity indicator that owns the output line
// while active. Messages logged through it are rendered in place
// (Info), forwarded to the sink at once (Verbose, Debug), or deferred
// until the spinner stops (Warn, Error).
type Spinner interface {
	// Start launches the animation loop. Calling Start on a running or
	// stopped spinner is a no-op; a stopped spinner cannot be restarted.
	Start()
	// Stop ends the animation, erases the spinner line and flushes
	// deferred messages to the sink in the order they were logged.
	// It blocks until the flush has completed, bounded by the join
	// wait, and is safe to call more than once.
	Stop()
	// Info replaces the message shown next to the animation frame.
	// Only the newest message is ever rendered; info messages never
	// reach the sink. Info waits a short delay before returning so the
	// message survives at least one animation tick.
	Info(msg string, opts ...LogOpt)
	// Verbose forwards msg to the sink immediately, interleaving with
	// the animation.
	Verbose(msg string, opts ...LogOpt)
	// Debug forwards msg to the sink immediately, interleaving with
	// the animation.
	Debug(msg string, opts ...LogOpt)
	// Warn defers msg until Stop. With WithQuit, the spinner stops
	// before Warn returns and the process exits after the flush.
	Warn(msg string, opts ...LogOpt)
	// Error defers msg until Stop. With WithQuit, the spinner stops
	// before Error returns and the process exits after the flush with
	// status 1 unless WithReturnCode overrides it.
	Error(msg string, opts ...LogOpt)
}

type Time interface {
	Now() time.Time
	NewTimer(time.Duration) *time.Timer
}

// Terminator ends the process abruptly with the given status code.
// Exit does not return and deferred functions do not run, so callers
// must finish all cleanup beforehand.
type Terminator interface {
	Exit(code int)
}
