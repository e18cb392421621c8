// Package cache provides the result cache used to memoize filtered listings
package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrCacheMiss indicates a cache miss
var ErrCacheMiss = errors.New("cache miss")

// Client defines the cache interface
type Client interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// CacheKey joins key components with ':'
func CacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}
