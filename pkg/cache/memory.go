package cache

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryCache struct {
	lru *expirable.LRU[string, []byte]
}

// NewMemory returns an in-process cache holding at most size entries, each
// evicted ttl after it was written.
func NewMemory(size int, ttl time.Duration) Cache {
	if size <= 0 {
		size = 1000
	}
	return &memoryCache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte) error {
	c.lru.Add(key, slices.Clone(value))
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

func (c *memoryCache) Close() error {
	c.lru.Purge()
	return nil
}
