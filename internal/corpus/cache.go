package corpus

import (
	"sync"
	"time"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

// DefaultCacheTTL is how long a fetched corpus stays valid.
const DefaultCacheTTL = 300 * time.Second

// Cache is a single-slot, time-boxed store for the last fetched corpus.
// The whole corpus is cached as one unit; there is no per-query keying.
// Set is last-write-wins, so concurrent fill-on-miss races stay harmless.
type Cache struct {
	mu        sync.Mutex
	corpus    models.Corpus
	filled    bool
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewCache creates a Cache with the given TTL. A non-positive TTL falls back
// to DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached corpus and true while the entry is within its TTL.
// An expired entry is treated as absent.
func (c *Cache) Get() (models.Corpus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.filled {
		return nil, false
	}
	if c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.corpus, true
}

// Set stores the corpus and records the current time as its fetch time.
func (c *Cache) Set(corpus models.Corpus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.corpus = corpus
	c.filled = true
	c.fetchedAt = c.now()
}

// Invalidate drops the cached corpus immediately.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.corpus = nil
	c.filled = false
	c.fetchedAt = time.Time{}
}
