package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CacheEntry holds one cached value and the time it was built.
type CacheEntry[T any] struct {
	// Value is the cached value.
	Value T

	// Built is the timestamp when this entry was built.
	Built time.Time

	// TTL is the time-to-live for this entry.
	TTL time.Duration
}

// IsExpired returns true if this entry has expired based on its TTL.
func (e *CacheEntry[T]) IsExpired() bool {
	if e.TTL == 0 {
		return true // No caching
	}
	return time.Since(e.Built) > e.TTL
}

// Cache is a TTL cache with stampede protection. Concurrent misses for the
// same key share a single build.
type Cache[T any] struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*CacheEntry[T]
	sf      singleflight.Group
}

// NewCache creates a cache whose entries live for ttl. A zero ttl disables
// caching; every call rebuilds.
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		entries: make(map[string]*CacheEntry[T]),
	}
}

// GetOrBuild returns the cached value for key, or builds and stores a new one
// if it doesn't exist or has expired.
func (c *Cache[T]) GetOrBuild(ctx context.Context, key string, build func(ctx context.Context) (T, error)) (T, error) {
	// Fast path: check if entry exists and is fresh
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if exists && !entry.IsExpired() {
		return entry.Value, nil
	}

	// Slow path: build using singleflight to prevent stampedes
	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()

		if exists && !entry.IsExpired() {
			return entry, nil
		}

		value, err := build(ctx)
		if err != nil {
			return nil, err
		}

		newEntry := &CacheEntry[T]{
			Value: value,
			Built: time.Now(),
			TTL:   c.ttl,
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = newEntry
			c.mu.Unlock()
		}

		return newEntry, nil
	})

	if err != nil {
		var zero T
		return zero, err
	}

	return result.(*CacheEntry[T]).Value, nil
}

// Invalidate removes the entry for key.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
