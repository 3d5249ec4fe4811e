package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedCache(t *testing.T) {
	t.Run("should return the cached value if valid", func(t *testing.T) {
		cache := NewKeyedCache[string](10, 1*time.Minute)
		cache.Set("key", "test value")

		value, found := cache.Get("key")
		assert.True(t, found)
		assert.Equal(t, "test value", value)
	})

	t.Run("should miss on an unknown key", func(t *testing.T) {
		cache := NewKeyedCache[string](10, 1*time.Minute)

		_, found := cache.Get("missing")
		assert.False(t, found)
	})

	t.Run("should miss once the entry expired", func(t *testing.T) {
		cache := NewKeyedCache[string](10, 10*time.Millisecond)
		cache.Set("key", "test value")
		time.Sleep(20 * time.Millisecond)

		_, found := cache.Get("key")
		assert.False(t, found)
		assert.Zero(t, cache.Len())
	})

	t.Run("should overwrite an existing key", func(t *testing.T) {
		cache := NewKeyedCache[string](10, 1*time.Minute)
		cache.Set("key", "old")
		cache.Set("key", "new")

		value, _ := cache.Get("key")
		assert.Equal(t, "new", value)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("should never exceed its capacity", func(t *testing.T) {
		cache := NewKeyedCache[int](3, 1*time.Minute)
		for i := 0; i < 10; i++ {
			cache.Set(fmt.Sprintf("key-%d", i), i)
		}

		assert.LessOrEqual(t, cache.Len(), 3)

		// The most recent entry survives eviction.
		value, found := cache.Get("key-9")
		assert.True(t, found)
		assert.Equal(t, 9, value)
	})

	t.Run("should clear all entries", func(t *testing.T) {
		cache := NewKeyedCache[string](10, 1*time.Minute)
		cache.Set("a", "1")
		cache.Set("b", "2")
		cache.Clear()

		assert.Zero(t, cache.Len())
	})
}

func TestGenerateUUID(t *testing.T) {
	t.Run("should be deterministic for equal inputs", func(t *testing.T) {
		assert.Equal(t, GenerateUUID("a", "b"), GenerateUUID("a", "b"))
	})

	t.Run("should differ for different inputs", func(t *testing.T) {
		assert.NotEqual(t, GenerateUUID("a"), GenerateUUID("b"))
	})
}
