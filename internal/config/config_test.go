package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 5, cfg.OpenAI.MaxSteps)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.HistorySize)
	assert.Zero(t, cfg.DiceSeed)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Equal(t, int64(42), cfg.DiceSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9090\nHISTORY_SIZE=7\n"), 0o600))

	// godotenv sets real process env, register cleanup for the keys it touches
	t.Setenv("HTTP_ADDR", "")
	os.Unsetenv("HTTP_ADDR")
	t.Setenv("HISTORY_SIZE", "")
	os.Unsetenv("HISTORY_SIZE")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 7, cfg.HistorySize)
}

func TestLoadMissingDotenvIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("DICE_SEED", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
