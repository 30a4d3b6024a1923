package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackkit/trackkit/pkg/cache"
)

func TestLRUCache(t *testing.T) {
	t.Run("get returns stored value", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)

		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("miss returns zero value", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)

		v, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("put returns previous value", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)

		prev, existed := c.Put("a", 2)
		require.True(t, existed)
		assert.Equal(t, 1, prev)

		v, _ := c.Get("a")
		assert.Equal(t, 2, v)
	})

	t.Run("evicts least recently used at capacity", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)

		// Touch "a" so "b" becomes the eviction candidate.
		_, _ = c.Get("a")
		c.Put("c", 3)

		_, ok := c.Get("b")
		assert.False(t, ok)
		_, ok = c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("remove", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)

		v, ok := c.Remove("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = c.Get("a")
		assert.False(t, ok)
	})

	t.Run("clear empties the cache", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)

		c.Clear()
		assert.Equal(t, 0, c.Len())
		_, ok := c.Get("a")
		assert.False(t, ok)
	})

	t.Run("non-positive capacity panics", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
	})
}
