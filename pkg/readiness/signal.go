package readiness

import (
	"context"
	"sync"
)

// Signal is a one-shot readiness event. The zero value is not usable; call New.
type Signal struct {
	mu          sync.Mutex
	fired       bool
	done        chan struct{}
	subscribers []func()
}

// New returns an unresolved Signal.
func New() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Fire resolves the signal and delivers it to every pending subscriber in
// registration order on the calling goroutine. Done is closed only after all
// of them have returned. Only the first call has any effect and returns true.
func (s *Signal) Fire() bool {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		return false
	}
	s.fired = true
	subs := s.subscribers
	s.subscribers = nil
	s.mu.Unlock()

	// Callbacks run unlocked so they may subscribe or inspect the signal.
	for _, fn := range subs {
		fn()
	}
	close(s.done)
	return true
}

// Subscribe registers fn to run once when the signal fires. If the signal has
// already fired, fn runs immediately on the caller's goroutine. Nil callbacks
// are ignored.
func (s *Signal) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		fn()
		return
	}
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Done returns a channel closed once the signal has fired and its pending
// subscribers have run.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Fired reports whether Fire has been called.
func (s *Signal) Fired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// Wait blocks until Done is closed or ctx is done, returning ctx.Err() in the
// latter case.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
