package dismiss

import (
	"time"

	"github.com/dmitrymomot/alertdismiss/pkg/config"
	"github.com/dmitrymomot/alertdismiss/pkg/logger"
)

// Config holds scheduler settings loaded from the environment.
type Config struct {
	Delay    time.Duration `env:"ALERT_DISMISS_DELAY" envDefault:"5s"`
	Category string        `env:"ALERT_CATEGORY" envDefault:"alert"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a Scheduler from cfg. Options passed in opts are
// applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) *Scheduler {
	all := append([]Option{WithDelay(cfg.Delay), WithCategory(cfg.Category)}, opts...)
	return New(all...)
}

// NewFromEnv loads Config and logger.Config from the environment and creates
// a Scheduler logging through the configured logger. Options passed in opts
// are applied last.
func NewFromEnv(opts ...Option) (*Scheduler, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return nil, err
	}
	log, err := logger.FromConfig(logCfg)
	if err != nil {
		return nil, err
	}

	return NewFromConfig(cfg, append([]Option{WithLogger(log)}, opts...)...), nil
}
