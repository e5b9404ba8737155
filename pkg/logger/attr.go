package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Category records the element category under the key "category".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// ElementID records an element handle under the key "element_id".
func ElementID(id string) slog.Attr {
	return slog.String("element_id", id)
}

// Delay records a delay under the key "delay".
func Delay(d time.Duration) slog.Attr {
	return slog.Duration("delay", d)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
