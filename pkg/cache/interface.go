// Package cache is a byte-oriented key/value cache with an in-process LRU
// driver and a Redis driver.
package cache

import "context"

// Cache stores serialized values under string keys. A miss is reported through
// the bool result, never as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverNone   = "none"
)
