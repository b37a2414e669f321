package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPServer.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.True(t, cfg.NATS.Enabled)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "9090", cfg.Metrics.Port)
	assert.Equal(t, 720*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("NATS_ENABLED", "false")
	t.Setenv("CART_TTL", "48h")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.HTTPServer.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, 48*time.Hour, cfg.Cart.TTL)
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("ENV", "prod")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
}
