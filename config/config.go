package config

import (
	"log"
	"os"
	"time"
)

const (
	DefaultDatabaseURL     = "sqlite:///database.db"
	DefaultTestDatabaseURL = "sqlite://"
)

type Config struct {
	DatabaseURL        string
	LogLevel           string
	Language           string
	SlowQueryThreshold time.Duration
}

func Load() *Config {
	return &Config{
		DatabaseURL:        getEnv("TODO_CLI_DB_URL", DefaultDatabaseURL),
		LogLevel:           getEnv("TODO_CLI_LOG_LEVEL", "warn"),
		Language:           getEnv("TODO_CLI_LANG", "en"),
		SlowQueryThreshold: getDurationEnv("TODO_CLI_SLOW_QUERY", 200*time.Millisecond),
	}
}

// LoadTest is Load with the in-memory store as the fallback connection string.
func LoadTest() *Config {
	cfg := Load()
	cfg.DatabaseURL = getEnv("TODO_CLI_TEST_DB_URL", DefaultTestDatabaseURL)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: Invalid duration value for %s, using default %v", key, defaultValue)
	}
	return defaultValue
}
