// Package readiness provides a one-shot signal that resolves at most once.
//
// A Signal models an event such as "the document structure is fully parsed":
// interested parties register a callback with Subscribe or block with Wait,
// and the producer calls Fire exactly once. Registrations are exhausted after
// their single delivery, and callbacks registered after the signal fired run
// immediately.
//
// # Usage
//
//	ready := readiness.New()
//	ready.Subscribe(func() {
//	    // runs once, on the goroutine that called Fire
//	})
//
//	go func() {
//	    parse(doc)
//	    ready.Fire()
//	}()
//
//	if err := ready.Wait(ctx); err != nil {
//	    return err // context ended first
//	}
package readiness
