package corpus

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

// newClockedCache returns a cache whose clock the test advances by hand.
func newClockedCache(ttl time.Duration) (*Cache, *time.Time) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache(ttl)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCache(t *testing.T) {
	corpus := models.Corpus{{ID: "1", UserName: "Layla Hassan", Text: "hi"}}

	t.Run("get within TTL returns the identical corpus", func(t *testing.T) {
		c, _ := newClockedCache(300 * time.Second)
		c.Set(corpus)

		got, ok := c.Get()
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(corpus, got))
	})

	t.Run("get after TTL elapses returns absent", func(t *testing.T) {
		c, now := newClockedCache(300 * time.Second)
		c.Set(corpus)

		*now = now.Add(300 * time.Second)
		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("get on an empty cache returns absent", func(t *testing.T) {
		c, _ := newClockedCache(300 * time.Second)
		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("second set wins", func(t *testing.T) {
		c, _ := newClockedCache(300 * time.Second)
		c.Set(corpus)

		newer := models.Corpus{{ID: "2", UserName: "Vikram Desai", Text: "hello"}}
		c.Set(newer)

		got, ok := c.Get()
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(newer, got))
	})

	t.Run("an empty corpus is a cacheable value", func(t *testing.T) {
		c, _ := newClockedCache(300 * time.Second)
		c.Set(nil)

		got, ok := c.Get()
		assert.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("invalidate drops the entry immediately", func(t *testing.T) {
		c, _ := newClockedCache(300 * time.Second)
		c.Set(corpus)
		c.Invalidate()

		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("non-positive TTL falls back to the default", func(t *testing.T) {
		c := NewCache(0)
		assert.Equal(t, DefaultCacheTTL, c.ttl)
	})
}
