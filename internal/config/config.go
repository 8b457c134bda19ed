// Package config collects lexidex's environment-variable configuration
// into one struct, following the same env-first, sensible-default
// philosophy as the teacher's cmd/main.go, just gathered in one place
// since this module has no web framework to hang flag parsing off of.
package config

import (
	"fmt"
	"os"
)

// Config holds every runtime option spec.md §6.3 names.
type Config struct {
	Host             string
	Port             int
	DataDir          string
	WorkerThreads    int
	ClientThreads    int
	RefreshIntervalS int
	NotifyIntervalS  int
}

// Load reads Config from the environment, falling back to sensible
// defaults for anything unset.
func Load() Config {
	return Config{
		Host:             getEnv("LEXIDEX_HOST", "0.0.0.0"),
		Port:             getEnvInt("LEXIDEX_PORT", 9090),
		DataDir:          getEnv("LEXIDEX_DATA_DIR", "./data"),
		WorkerThreads:    getEnvInt("LEXIDEX_WORKER_THREADS", 4),
		ClientThreads:    getEnvInt("LEXIDEX_CLIENT_THREADS", 8),
		RefreshIntervalS: getEnvInt("LEXIDEX_REFRESH_INTERVAL_S", 5),
		NotifyIntervalS:  getEnvInt("LEXIDEX_NOTIFY_INTERVAL_S", 3),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
