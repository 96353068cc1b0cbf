package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: the rest falls back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, 30*time.Second, conf.ReconnectTimeout)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "medium", conf.Bot.DefaultDifficulty)
		assert.InDelta(t, 0.8, conf.Bot.HardOptimalRate, 1e-9)
	})

	t.Run("Reads nested sections", func(t *testing.T) {
		// Given: a config file with redis and bot sections
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "redis:\n  host: cache\n  port: \"6380\"\nbot:\n  hard-optimal-rate: 0.5\n  seed: 42\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: the values are taken from the file
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.InDelta(t, 0.5, conf.Bot.HardOptimalRate, 1e-9)
		assert.Equal(t, int64(42), conf.Bot.Seed)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
