package inspector

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/exp/slog"
)

// Config is a configuration for the inspector application
type Config struct {
	HTTPAddr string `env:"INSPECTOR_HTTP_ADDR"`
	// ISO8583Addr is where the ISO 8583 TCP server listens. Empty disables it.
	ISO8583Addr string `env:"INSPECTOR_ISO8583_ADDR"`
	// MaxBodyBytes caps request bodies; card payloads are tiny.
	MaxBodyBytes    int64         `env:"INSPECTOR_MAX_BODY_BYTES"`
	ShutdownTimeout time.Duration `env:"INSPECTOR_SHUTDOWN_TIMEOUT"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"INSPECTOR_LOG_LEVEL"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:        "localhost:9090",
		ISO8583Addr:     "localhost:8583",
		MaxBodyBytes:    16 << 10,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
	}
}

// LoadConfig returns DefaultConfig overridden by any INSPECTOR_* environment
// variables that are set.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("INSPECTOR_MAX_BODY_BYTES must be positive (got %d)", cfg.MaxBodyBytes)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("INSPECTOR_LOG_LEVEL: %w", err)
	}
	return level, nil
}
