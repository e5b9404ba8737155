// Package dismiss makes transient alert banners hide themselves.
//
// When a page's structure is ready, a Scheduler takes a single snapshot of
// the elements in the alert category and arms one independent one-shot timer
// per element. When a timer fires, its element is hidden. Hiding is a
// presentation change: the element stays in the document. Elements added
// after the snapshot are never scheduled, and elements removed before their
// timer fires are left alone.
//
// The document is an explicit handle satisfying the Document interface, so
// the scheduler works against htmldoc.Document or any in-memory fake. Timers
// come from a clock.Clock; use clock.NewFake in tests to step time exactly.
//
// # Usage
//
//	doc, ready := htmldoc.Load(ctx, page)
//	s := dismiss.New(dismiss.WithLogger(log))
//	s.Run(ctx, ready, doc)
//
// Run returns immediately. Schedule does the same work synchronously for a
// document that is already ready and reports how many timers it armed.
//
// # Configuration
//
// Config maps ALERT_DISMISS_DELAY (default 5s) and ALERT_CATEGORY (default
// "alert") from the environment through pkg/config; NewFromConfig applies it.
package dismiss
