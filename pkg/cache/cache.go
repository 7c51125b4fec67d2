// Package cache provides pluggable storage for HTTP responses.
//
// The default [NullCache] keeps nothing, so a crawl never depends on state
// left behind by an earlier run. [FileCache] stores entries under the XDG
// cache directory for repeated local crawls, and [RedisCache] shares entries
// between machines.
//
// Values are opaque bytes; callers choose the encoding. Every backend is safe
// for concurrent use by the goroutines of one crawl level.
package cache

import (
	"context"
	"time"
)

// Cache stores byte payloads under string keys with an optional TTL.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Backend names accepted by [New].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config selects and configures a cache backend.
type Config struct {
	Backend   string // none (default), file or redis
	Dir       string // FileCache directory
	RedisAddr string // RedisCache address, host:port
	RedisDB   int    // RedisCache database index
}

// New builds the cache described by cfg.
func New(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		fc, err := NewFileCache(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case BackendRedis:
		return NewRedisCache(ctx, RedisOptions{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	default:
		return nil, &UnknownBackendError{Backend: cfg.Backend}
	}
}

// UnknownBackendError is returned by [New] for an unsupported backend name.
type UnknownBackendError struct{ Backend string }

func (e *UnknownBackendError) Error() string {
	return "unknown cache backend: " + e.Backend + " (must be none, file or redis)"
}
