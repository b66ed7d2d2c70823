package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPass           string
	DBName           string
	DBSchema         string
	ServerPort       string
	RedisURL         string
	RedisTTL         time.Duration
	Env              string
	DiscordToken     string
	LeaderboardLimit int
}

func LoadConfig() Config {
	ttlStr := getEnv("REDIS_TTL", "1m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = time.Minute
	}

	return Config{
		DBHost:           getEnv("DB_HOST", "postgres"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPass:           getEnv("DB_PASSWORD", "password"),
		DBName:           getEnv("DB_NAME", "db_statsbot"),
		DBSchema:         getEnv("DB_SCHEMA", "bot_schema"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		RedisURL:         getEnv("REDIS_URL", "redis:6379"),
		RedisTTL:         ttl,
		Env:              getEnv("ENV", "dev"),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		LeaderboardLimit: getEnvAsInt("LEADERBOARD_LIMIT", 10),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return fallback
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort, c.DBSchema,
	)
}
