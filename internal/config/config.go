package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the daemon configuration, loaded from the environment.
type Config struct {
	RedisURL    string `env:"REDIS_URL" envDefault:"localhost:6379"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// How often each party's adventure advances by one event.
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"15m"`

	// Simulation tuning.
	HappeningChance      float64 `env:"HAPPENING_CHANCE" envDefault:"0.6"`
	QuestEncounterChance float64 `env:"QUEST_ENCOUNTER_CHANCE" envDefault:"0.4"`
	BonusDieChance       float64 `env:"BONUS_DIE_CHANCE" envDefault:"0.2"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	for name, chance := range map[string]float64{
		"HAPPENING_CHANCE":       cfg.HappeningChance,
		"QUEST_ENCOUNTER_CHANCE": cfg.QuestEncounterChance,
		"BONUS_DIE_CHANCE":       cfg.BonusDieChance,
	} {
		if chance < 0 || chance > 1 {
			return nil, fmt.Errorf("%s must be between 0 and 1, got %v", name, chance)
		}
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("TICK_INTERVAL must be positive, got %v", cfg.TickInterval)
	}
	return cfg, nil
}

// SlogLevel maps the configured level string to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
