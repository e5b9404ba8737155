package dismiss

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/alertdismiss/pkg/clock"
	"github.com/dmitrymomot/alertdismiss/pkg/logger"
	"github.com/dmitrymomot/alertdismiss/pkg/readiness"
)

const (
	// DefaultDelay is how long an alert stays visible after readiness.
	DefaultDelay = 5000 * time.Millisecond
	// DefaultCategory is the class that marks an element as an alert.
	DefaultCategory = "alert"
)

// Element is a notification element that can be hidden. Hide must be a
// no-op for elements no longer in the document.
type Element interface {
	ID() string
	Hide()
}

// Document is queried once for the elements of a category.
type Document interface {
	// Query returns the elements currently in category. The result is a
	// snapshot; later document changes must not alter it.
	Query(category string) []Element
}

// Scheduler arms dismissal timers for alert elements.
type Scheduler struct {
	delay    time.Duration
	category string
	clock    clock.Clock
	log      *slog.Logger
}

// New creates a Scheduler with a 5 second delay on the "alert" category.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		delay:    DefaultDelay,
		category: DefaultCategory,
		clock:    clock.Real{},
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("dismiss"))
	return s
}

// Delay returns the configured dismissal delay.
func (s *Scheduler) Delay() time.Duration { return s.delay }

// Category returns the configured element category.
func (s *Scheduler) Category() string { return s.category }

// Schedule snapshots the category in doc and arms exactly one timer per
// element. It does not block and returns the number of timers armed. A nil
// document is treated as empty.
func (s *Scheduler) Schedule(doc Document) int {
	if doc == nil {
		return 0
	}

	armed := 0
	for _, el := range doc.Query(s.category) {
		if el == nil {
			continue
		}
		s.arm(el)
		armed++
	}
	s.log.Info("dismissal timers armed",
		logger.Category(s.category),
		logger.Count(armed),
		logger.Delay(s.delay),
	)
	return armed
}

// arm binds one timer to el. The callback captures only the element.
func (s *Scheduler) arm(el Element) {
	id := el.ID()
	s.log.Debug("arming dismissal timer", logger.ElementID(id))
	s.clock.AfterFunc(s.delay, func() {
		el.Hide()
		s.log.Debug("alert hidden", logger.ElementID(id))
	})
}

// Run schedules doc once ready fires. It returns immediately. If ctx is done
// before the signal fires, nothing is scheduled. A nil ctx is treated as
// context.Background().
func (s *Scheduler) Run(ctx context.Context, ready *readiness.Signal, doc Document) {
	if ready == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ready.Subscribe(func() {
		if err := ctx.Err(); err != nil {
			s.log.DebugContext(ctx, "readiness after cancellation, skipping", logger.Error(err))
			return
		}
		s.Schedule(doc)
	})
}
