package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpanel/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "server-only-secret")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "adpanel_session", cfg.Session.CookieName)

	policy := cfg.Grid.Policy()
	assert.Equal(t, 72*time.Hour, policy.Window)
	assert.Equal(t, 24*time.Hour, policy.DeleteWindow)
	assert.Equal(t, []string{"paused_date", "total_count", "deduction", "approved_count"}, policy.LateEditable)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "server-only-secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDRESS", "redis://localhost:6379/0")
	t.Setenv("GRID_EDIT_WINDOW", "48h")
	t.Setenv("GRID_LATE_EDITABLE", "paused_date")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "adpanel:events", cfg.Redis.Channel)
	assert.Equal(t, 48*time.Hour, cfg.Grid.Policy().Window)
	assert.Equal(t, []string{"paused_date"}, cfg.Grid.LateEditable)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRefusesSessionSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"unset", ""},
		{"client key", "adpanel-dev-secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", tt.secret)
			_, err := Load()
			assert.ErrorContains(t, err, "SESSION_SECRET")
		})
	}
}

func TestLoggerSettings(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: " DEBUG "}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, configs.Logger{Level: "err"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "verbose"}.SlogLevel())

	assert.Equal(t, "json", configs.Logger{Format: "Json"}.SlogFormat())
	assert.Equal(t, "text", configs.Logger{Format: "logfmt"}.SlogFormat())
}
