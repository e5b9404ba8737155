// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file in the working directory is loaded once if present, then
// the environment is parsed into a struct using `env` and `envDefault` field
// tags. Each configuration type is parsed once per process and served from an
// in-memory cache afterwards; Reset clears the cache for tests.
//
// # Usage
//
//	var cfg dismiss.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures wrap one of the sentinel errors so callers can use errors.Is:
// ErrParsingConfig when env.Parse rejects the environment, ErrNilPointer when
// a nil pointer is supplied and ErrLoadingEnvFile when an explicitly named
// .env file cannot be read.
package config
