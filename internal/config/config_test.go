package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LEXIDEX_HOST", "LEXIDEX_PORT", "LEXIDEX_DATA_DIR",
		"LEXIDEX_WORKER_THREADS", "LEXIDEX_CLIENT_THREADS",
		"LEXIDEX_REFRESH_INTERVAL_S", "LEXIDEX_NOTIFY_INTERVAL_S",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "./data", cfg.DataDir)
	require.Equal(t, 4, cfg.WorkerThreads)
	require.Equal(t, 8, cfg.ClientThreads)
	require.Equal(t, 5, cfg.RefreshIntervalS)
	require.Equal(t, 3, cfg.NotifyIntervalS)
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	t.Setenv("LEXIDEX_HOST", "127.0.0.1")
	t.Setenv("LEXIDEX_PORT", "1234")
	t.Setenv("LEXIDEX_DATA_DIR", "/srv/docs")
	t.Setenv("LEXIDEX_WORKER_THREADS", "16")
	t.Setenv("LEXIDEX_CLIENT_THREADS", "32")
	t.Setenv("LEXIDEX_REFRESH_INTERVAL_S", "10")
	t.Setenv("LEXIDEX_NOTIFY_INTERVAL_S", "2")

	cfg := Load()

	require.Equal(t, "127.0.0.1", cfg.Host)
	require.Equal(t, 1234, cfg.Port)
	require.Equal(t, "/srv/docs", cfg.DataDir)
	require.Equal(t, 16, cfg.WorkerThreads)
	require.Equal(t, 32, cfg.ClientThreads)
	require.Equal(t, 10, cfg.RefreshIntervalS)
	require.Equal(t, 2, cfg.NotifyIntervalS)
}

func TestLoadIgnoresUnparseableInt(t *testing.T) {
	t.Setenv("LEXIDEX_PORT", "not-a-number")

	cfg := Load()

	require.Equal(t, 9090, cfg.Port)
}
