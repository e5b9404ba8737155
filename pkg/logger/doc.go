// Package logger builds the *slog.Logger used across the module and provides
// attribute helpers that keep key names consistent.
//
// New creates a logger from functional options: output format (text or json),
// minimum level, output writer and static attributes. WithEnvironment applies
// per-environment defaults (text/debug for development, json/info for staging
// and production). Discard returns a logger that drops every record, which is
// the default for library components that were not handed a logger.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "quiz-web"),
//	    logger.WithAttr(logger.Component("dismiss")),
//	)
//	log.Info("alerts armed", logger.Count(3), logger.Delay(5*time.Second))
//
// Helpers such as Error return an empty slog.Attr for nil input, so
//
//	log.Warn("render failed", logger.Error(err))
//
// needs no nil check at the call site.
package logger
