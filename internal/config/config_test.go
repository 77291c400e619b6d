package config

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestLoadRateLimitConfigClampsValues(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "0")
    t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "3s")
    t.Setenv("RATE_LIMIT_TTL", "1s")

    cfg := LoadRateLimitConfig()
    assert.Equal(t, 1, cfg.Capacity)
    assert.Equal(t, 1, cfg.RefillTokens)
    assert.Equal(t, 3*time.Second, cfg.RefillInterval)
    assert.Equal(t, 15*time.Second, cfg.TTL)
    assert.Equal(t, "ip_route", cfg.KeyStrategy)
}

func TestLoadCacheConfigDefaults(t *testing.T) {
    t.Setenv("CACHE_METHODS", "get, head")
    cfg := LoadCacheConfig()
    assert.True(t, cfg.Enabled)
    assert.True(t, cfg.Methods["GET"])
    assert.True(t, cfg.Methods["HEAD"])
    assert.False(t, cfg.Methods["POST"])
    assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestLoadRedisConfigHostPortWins(t *testing.T) {
    t.Setenv("REDIS_ADDR", "cache:6380")
    t.Setenv("REDIS_HOST", "redis")
    t.Setenv("REDIS_PORT", "6379")
    t.Setenv("REDIS_TLS", "1")
    cfg := LoadRedisConfig()
    assert.Equal(t, "redis:6379", cfg.Addr)
    assert.True(t, cfg.TLS)
}

func TestLoadReadsDefaults(t *testing.T) {
    t.Setenv("DB_USER", "rail")
    t.Setenv("DB_HOST", "127.0.0.1")
    t.Setenv("DB_NAME", "karnataka_trains")
    t.Setenv("APP_TIMEZONE", "UTC")
    t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

    cfg := Load()
    assert.Equal(t, "3306", cfg.DBPort)
    assert.Equal(t, 10, cfg.BcryptCost)
    assert.Equal(t, time.UTC, cfg.Location)
    assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}
