package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "bot_schema", cfg.DBSchema)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 10, cfg.LeaderboardLimit)
	assert.Equal(t, time.Minute, cfg.RedisTTL)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_SCHEMA", "custom_schema")
	t.Setenv("LEADERBOARD_LIMIT", "25")
	t.Setenv("REDIS_TTL", "30s")

	cfg := LoadConfig()

	assert.Equal(t, "custom_schema", cfg.DBSchema)
	assert.Equal(t, 25, cfg.LeaderboardLimit)
	assert.Equal(t, 30*time.Second, cfg.RedisTTL)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("LEADERBOARD_LIMIT", "lots")
	t.Setenv("REDIS_TTL", "forever")

	cfg := LoadConfig()

	assert.Equal(t, 10, cfg.LeaderboardLimit)
	assert.Equal(t, time.Minute, cfg.RedisTTL)
}

func TestPostgresDSNPinsSearchPath(t *testing.T) {
	t.Setenv("DB_SCHEMA", "bot_schema")

	cfg := LoadConfig()

	assert.Contains(t, cfg.PostgresDSN(), "search_path=bot_schema")
}
