package env

import "time"

const DefaultCachePrefix = "portfolio"
const DefaultCacheTTLSeconds = 300

// CacheEnvironment configures the shared cache. A blank RedisURL selects the
// in-process store.
type CacheEnvironment struct {
	RedisURL   string `validate:"omitempty,url"`
	Prefix     string `validate:"required,min=1"`
	TTLSeconds int    `validate:"required,gt=0"`
}

func (e CacheEnvironment) UsesRedis() bool {
	return e.RedisURL != ""
}

func (e CacheEnvironment) TTL() time.Duration {
	return time.Duration(e.TTLSeconds) * time.Second
}
