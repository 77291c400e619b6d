package config

import (
	"strings"
	"time"
)

// CacheConfig drives middleware.NewRedisCache.  Station data never changes
// while the server runs, so GET responses are cached for minutes.
//
//	CACHE_ENABLED         on/off (default on; also off without Redis)
//	CACHE_METHODS         comma separated, default GET
//	CACHE_TTL             default 5m
//	CACHE_KEY_STRATEGY    route | method_route | route_query | method_route_query
//	CACHE_PREFIX          default rail:cache
//	CACHE_MAX_BODY_BYTES  larger bodies are served but not stored
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

func LoadCacheConfig() CacheConfig {
	methods := map[string]bool{}
	for _, m := range splitList(envStr("CACHE_METHODS", "GET")) {
		methods[strings.ToUpper(m)] = true
	}
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      methods,
		TTL:          envDur("CACHE_TTL", 5*time.Minute),
		KeyStrategy:  envStr("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       envStr("CACHE_PREFIX", "rail:cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
