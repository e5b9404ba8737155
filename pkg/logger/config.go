package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config holds logger settings loaded from the environment.
type Config struct {
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_SERVICE" envDefault:"alertdismiss"`
}

// FromConfig builds a logger from cfg. Environment defaults are applied first
// so that explicit LOG_LEVEL and LOG_FORMAT values win. Unknown formats and
// levels are reported as errors rather than panics.
func FromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	all := []Option{WithEnvironment(cfg.Env, cfg.Service)}
	if cfg.Format != "" {
		f := Format(strings.ToLower(strings.TrimSpace(cfg.Format)))
		if f != FormatJSON && f != FormatText {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
		}
		all = append(all, WithFormat(f))
	}
	if cfg.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
			return nil, errors.Join(ErrInvalidLevel, err)
		}
		all = append(all, WithLevel(lvl))
	}
	return New(append(all, opts...)...), nil
}
