package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TASK_LOG_FILE", "APP_ENV", "APP_VERSION"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "tasks.jsonl", cfg.LogFile)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "1.0.0", cfg.Version)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("TASK_LOG_FILE", "/var/lib/taskledger/events.jsonl")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_VERSION", "2.3.4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "/var/lib/taskledger/events.jsonl", cfg.LogFile)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "2.3.4", cfg.Version)
}
