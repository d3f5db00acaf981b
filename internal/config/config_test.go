package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 15*time.Minute, cfg.TickInterval)
	assert.Equal(t, 0.6, cfg.HappeningChance)
	assert.Equal(t, 0.4, cfg.QuestEncounterChance)
	assert.Equal(t, 0.2, cfg.BonusDieChance)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REDIS_URL", "redis:6380")
	t.Setenv("TICK_INTERVAL", "30s")
	t.Setenv("HAPPENING_CHANCE", "0.9")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.TickInterval)
	assert.Equal(t, 0.9, cfg.HappeningChance)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("chance above one", func(t *testing.T) {
		t.Setenv("BONUS_DIE_CHANCE", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative chance", func(t *testing.T) {
		t.Setenv("QUEST_ENCOUNTER_CHANCE", "-0.1")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive interval", func(t *testing.T) {
		t.Setenv("TICK_INTERVAL", "0s")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.level)
	}
}
