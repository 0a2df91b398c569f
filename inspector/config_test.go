package inspector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("INSPECTOR_HTTP_ADDR", ":8081")
	t.Setenv("INSPECTOR_ISO8583_ADDR", ":8584")
	t.Setenv("INSPECTOR_MAX_BODY_BYTES", "1024")
	t.Setenv("INSPECTOR_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("INSPECTOR_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8081", cfg.HTTPAddr)
	require.Equal(t, ":8584", cfg.ISO8583Addr)
	require.Equal(t, int64(1024), cfg.MaxBodyBytes)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("max body", func(t *testing.T) {
		t.Setenv("INSPECTOR_MAX_BODY_BYTES", "0")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("INSPECTOR_MAX_BODY_BYTES", "lots")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv("INSPECTOR_LOG_LEVEL", "loud")
		_, err := LoadConfig()
		require.Error(t, err)
	})
}
