package dismiss

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/alertdismiss/pkg/clock"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDelay overrides the dismissal delay. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithCategory overrides the class that selects alert elements. Empty values
// are ignored.
func WithCategory(category string) Option {
	return func(s *Scheduler) {
		if category != "" {
			s.category = category
		}
	}
}

// WithClock sets the timer source.
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger used for scheduling records. Nil loggers are
// ignored and records are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}
