package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the public response cache.  When Enabled
// is false or no Redis client is available, caching is skipped.  Methods
// lists the HTTP methods to cache.  Prefix namespaces the keys and
// MaxBodyBytes caps the size of a cached response.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads CACHE_* variables, falling back to defaults.
func LoadCacheConfig() CacheConfig {
	c := CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      map[string]bool{},
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
	for _, m := range envList("CACHE_METHODS", "GET") {
		c.Methods[strings.ToUpper(m)] = true
	}
	if c.TTL <= 0 {
		c.TTL = time.Second
	}
	return c
}
