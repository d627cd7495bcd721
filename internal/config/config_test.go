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
	t.Run("Reads values and fills defaults", func(t *testing.T) {
		// Given: a config file that only sets some keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nmove-cache:\n  driver: redis\n  ttl: 1h\nredis:\n  host: cache\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: explicit values win and the rest are defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, CacheDriverRedis, conf.MoveCache.Driver)
		assert.Equal(t, time.Hour, conf.MoveCache.TTL)
		assert.Equal(t, "O", conf.Bot.Mark)
		assert.Equal(t, 30*time.Minute, conf.Sessions.IdleTTL)
	})

	t.Run("Empty redis host has no address", func(t *testing.T) {
		redis := Redis{Port: "6379"}

		assert.Empty(t, redis.GetRedisAddr())
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
