package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("NOTIFICATIONS_INTERVAL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimit)
	assert.Equal(t, 20, cfg.Server.RateBurst)
	assert.Equal(t, time.Hour, cfg.Notifications.Interval)
	assert.Equal(t, 4, cfg.Notifications.Workers)
	assert.True(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.TelegramConfigured())
	assert.Equal(t, "db/migrations", cfg.Database.MigrationsPath)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_RATE_PER_SECOND", "2.5")
	t.Setenv("NOTIFICATIONS_INTERVAL", "15m")
	t.Setenv("NOTIFICATIONS_WORKERS", "8")
	t.Setenv("NOTIFICATIONS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.True(t, cfg.TelegramConfigured())
	assert.Equal(t, 2.5, cfg.Telegram.RatePerSecond)
	assert.Equal(t, 15*time.Minute, cfg.Notifications.Interval)
	assert.Equal(t, 8, cfg.Notifications.Workers)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("NOTIFICATIONS_WORKERS", "many")
	t.Setenv("NOTIFICATIONS_INTERVAL", "soon")
	t.Setenv("AUTO_MIGRATE", "maybe")

	cfg := Load()

	assert.Equal(t, 4, cfg.Notifications.Workers)
	assert.Equal(t, time.Hour, cfg.Notifications.Interval)
	assert.False(t, cfg.Database.RunMigrations)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "u",
		Password: "p",
		Name:     "finance",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=finance sslmode=require", cfg.DSN())
}

func TestLogConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for level, expected := range cases {
		cfg := LogConfig{Level: level}
		assert.Equal(t, expected, cfg.SlogLevel(), level)
	}
}
