package utils

import (
	"sync"
	"time"
)

type cacheEntry[T any] struct {
	value     T
	cachedAt  time.Time
	expiresAt time.Time
}

// KeyedCache is a capacity-bounded TTL cache. Concurrent writers to the same
// key race last-write-wins, which is fine for idempotent query results.
type KeyedCache[T any] struct {
	mutex      sync.RWMutex
	maxEntries int
	ttl        time.Duration
	entries    map[string]cacheEntry[T]
}

// NewKeyedCache initializes a cache holding at most maxEntries values, each
// expiring ttl after being set.
func NewKeyedCache[T any](maxEntries int, ttl time.Duration) *KeyedCache[T] {
	return &KeyedCache[T]{
		maxEntries: maxEntries,
		ttl:        ttl,
		entries:    make(map[string]cacheEntry[T]),
	}
}

// Get retrieves the cached value for key, checking expiration.
func (c *KeyedCache[T]) Get(key string) (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		var zero T
		return zero, false
	}
	return entry.value, true
}

// Set stores value under key, evicting expired entries first and then the
// oldest entry when the cache is full.
func (c *KeyedCache[T]) Set(key string, value T) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.entries[key] = cacheEntry[T]{
		value:     value,
		cachedAt:  now,
		expiresAt: now.Add(c.ttl),
	}
}

// Len returns the number of live (non-expired) entries.
func (c *KeyedCache[T]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	now := time.Now()
	count := 0
	for _, entry := range c.entries {
		if now.Before(entry.expiresAt) {
			count++
		}
	}
	return count
}

// Clear removes all cached values.
func (c *KeyedCache[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]cacheEntry[T])
}

func (c *KeyedCache[T]) evictLocked(now time.Time) {
	var oldestKey string
	var oldestAt time.Time
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			continue
		}
		if oldestKey == "" || entry.cachedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.cachedAt
		}
	}
	if len(c.entries) >= c.maxEntries && oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
