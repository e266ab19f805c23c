// Package config holds the runtime tunables for input synthesis and
// clipboard negotiation. Values come from defaults, then an optional
// ~/.config/deskhand/config.yaml, then DESKHAND_* environment variables.
package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/deskhand/deskhand/internal/logger"
)

// Config carries the timing knobs the adapters consume.
type Config struct {
	// MoveStepsPerSecond is the sample rate for interpolated cursor moves.
	MoveStepsPerSecond int `mapstructure:"move_steps_per_second"`
	// TypeKeyDelay is the pause between synthesized keystrokes.
	TypeKeyDelay time.Duration `mapstructure:"type_key_delay"`
	// ClipboardReadTimeout bounds the X11 selection negotiation wait.
	ClipboardReadTimeout time.Duration `mapstructure:"clipboard_read_timeout"`
	// ClipboardServiceIterations bounds how many pending selection requests
	// are answered inline after claiming clipboard ownership.
	ClipboardServiceIterations int `mapstructure:"clipboard_service_iterations"`
}

var (
	once sync.Once
	cfg  *Config
)

// Get returns the process configuration, loading it on first use. Load
// failures fall back to defaults; automation should not die on a bad config
// file.
func Get() *Config {
	once.Do(func() {
		cfg = load()
	})
	return cfg
}

func load() *Config {
	v := viper.New()
	v.SetDefault("move_steps_per_second", 60)
	v.SetDefault("type_key_delay", 10*time.Millisecond)
	v.SetDefault("clipboard_read_timeout", time.Second)
	v.SetDefault("clipboard_service_iterations", 10)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/deskhand")
	v.SetEnvPrefix("deskhand")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			logger.Warn("ignoring unreadable config file", "error", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		logger.Warn("ignoring malformed config, using defaults", "error", err)
		return defaults()
	}
	if c.MoveStepsPerSecond <= 0 {
		c.MoveStepsPerSecond = 60
	}
	if c.ClipboardReadTimeout <= 0 {
		c.ClipboardReadTimeout = time.Second
	}
	if c.ClipboardServiceIterations <= 0 {
		c.ClipboardServiceIterations = 10
	}
	return c
}

func defaults() *Config {
	return &Config{
		MoveStepsPerSecond:         60,
		TypeKeyDelay:               10 * time.Millisecond,
		ClipboardReadTimeout:       time.Second,
		ClipboardServiceIterations: 10,
	}
}
