package config

import "time"

// CacheConfig defines settings for the response cache middleware used on the
// public catalog endpoints (service and testimonial listings). Entries are
// keyed on route plus query string so pagination and filters cache
// independently. Caching is disabled when Enabled is false or no Redis
// client is available.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration // lifetime of a cached response
	Prefix       string        // key namespace
	MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig reads cache settings from the environment with defaults
// suited to a mostly-static catalog.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
