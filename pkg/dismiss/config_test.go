package dismiss_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertdismiss/pkg/clock"
	"github.com/dmitrymomot/alertdismiss/pkg/config"
	"github.com/dmitrymomot/alertdismiss/pkg/dismiss"
	"github.com/dmitrymomot/alertdismiss/pkg/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	cfg, err := dismiss.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Delay)
	assert.Equal(t, "alert", cfg.Category)
}

func TestLoadConfig_Overrides(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("ALERT_DISMISS_DELAY", "750ms")
	t.Setenv("ALERT_CATEGORY", "toast")

	cfg, err := dismiss.LoadConfig()
	require.NoError(t, err)

	clk := clock.NewFake()
	s := dismiss.NewFromConfig(cfg, dismiss.WithClock(clk))
	assert.Equal(t, 750*time.Millisecond, s.Delay())
	assert.Equal(t, "toast", s.Category())

	doc := newFakeDocument()
	el := doc.add("t1", "toast")
	require.Equal(t, 1, s.Schedule(doc))
	clk.Advance(750 * time.Millisecond)
	assert.True(t, el.hidden())
}

func TestLoadConfig_Invalid(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("ALERT_DISMISS_DELAY", "later")

	_, err := dismiss.LoadConfig()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestNewFromEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("ALERT_DISMISS_DELAY", "2s")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")

	s, err := dismiss.NewFromEnv(dismiss.WithClock(clock.NewFake()))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, s.Delay())
	assert.Equal(t, "alert", s.Category())
}

func TestNewFromEnv_InvalidLogFormat(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("LOG_FORMAT", "xml")

	var err error
	require.NotPanics(t, func() { _, err = dismiss.NewFromEnv() })
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}
