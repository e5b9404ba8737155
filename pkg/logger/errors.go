package logger

import "errors"

var (
	// ErrInvalidFormat is returned when a configured log format is neither json nor text
	ErrInvalidFormat = errors.New("logger: invalid log format")

	// ErrInvalidLevel is returned when a configured log level cannot be parsed
	ErrInvalidLevel = errors.New("logger: invalid log level")
)
