/*
Package config loads server configuration from the environment.

A .env file is honored when present; every value has a default so the
server runs with no configuration at all. Flags in cmd/server may
override individual values.
*/
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	Port      int           // HTTP port
	DBPath    string        // SQLite database path, ":memory:" allowed
	RedisAddr string        // empty = use the in-memory schedule cache
	CacheTTL  time.Duration // schedule cache entry lifetime
}

// Load reads configuration from the environment, consulting .env first.
func Load() *Config {
	// Missing .env is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	return &Config{
		Port:      getEnvInt("PORT", 8080),
		DBPath:    getEnvString("DB_PATH", "loans.db"),
		RedisAddr: getEnvString("REDIS_ADDR", ""),
		CacheTTL:  getEnvDuration("CACHE_TTL", time.Hour),
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
