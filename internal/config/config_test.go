package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_PORT", "")
	t.Setenv("QUEUE_ENABLED", "")

	cfg := Load()
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 120, cfg.AccessTTLMin)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.Queue.Enabled)
	assert.Equal(t, "content_changed", cfg.Queue.QueueName)
}

func TestBackendConfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "")
	assert.False(t, Load().Backend.Configured())

	t.Setenv("SUPABASE_ANON_KEY", "anon")
	assert.True(t, Load().Backend.Configured())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "ON")
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "2m")
	t.Setenv("X_LIST", " get , head,, ")

	assert.True(t, envBool("X_BOOL", false))
	assert.Equal(t, 7, envInt("X_INT", 7))
	assert.Equal(t, 2*time.Minute, envDur("X_DUR", time.Second))
	assert.Equal(t, []string{"get", "head"}, envList("X_LIST", ""))
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	rl := LoadRateLimitConfig()
	assert.Equal(t, 1, rl.Capacity)
	assert.Equal(t, 5*time.Minute, rl.TTL)
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get,head")
	c := LoadCacheConfig()
	assert.True(t, c.Methods["GET"])
	assert.True(t, c.Methods["HEAD"])
	assert.Equal(t, 30*time.Second, c.TTL)
}

func TestNewRedisClientDisabled(t *testing.T) {
	client, err := NewRedisClient(RedisConfig{Enabled: false})
	assert.NoError(t, err)
	assert.Nil(t, client)
}
