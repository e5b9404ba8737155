// Package clock provides the timer source used to arm deferred actions.
//
// Real delegates to the runtime timer wheel. Fake is a manual clock whose
// timers fire only when Advance is called, on the caller's goroutine, which
// models a cooperative single-threaded event loop and makes delay boundaries
// exact in tests.
package clock

import "time"

// Timer is a handle to an armed one-shot action.
type Timer interface {
	// Stop prevents the action from firing. It reports whether the call
	// stopped the timer; false means it already fired or was stopped.
	Stop() bool
}

// Clock arms one-shot deferred actions.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Real is a Clock backed by time.AfterFunc.
type Real struct{}

// AfterFunc runs f in its own goroutine once d has elapsed.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (Real) Now() time.Time { return time.Now() }
