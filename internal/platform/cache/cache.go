// Package cache provides a small in-memory TTL cache for downstream API
// responses.
package cache

import (
	"sync"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/platform/clock"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Cache is a concurrency-safe map of string keys to values that expire a
// fixed TTL after they were stored. A non-positive TTL disables the cache:
// Set is a no-op and Get always misses.
//
// Values are passed through clone on the way in and out so callers can never
// mutate a cached slice or map.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	clock   clock.Clock
	clone   func(T) T
}

// New creates a Cache. clone may be nil for value types.
func New[T any](clk clock.Clock, ttl time.Duration, clone func(T) T) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		clock:   clk,
		clone:   clone,
	}
}

// Get returns the value stored under key if it has not expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}

	if !c.clock.Now().Before(e.expiry) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.expiry.Equal(e.expiry) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}

	return c.cloneValue(e.value), true
}

// Set stores value under key for the cache's TTL.
func (c *Cache[T]) Set(key string, value T) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Purge drops every expired entry and returns how many were removed.
func (c *Cache[T]) Purge() int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiry) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, including expired ones not yet
// purged.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
