package corpus

import (
	"context"

	"go.uber.org/zap"

	"github.com/karthikyeluripati/aurora-chatbot/internal/models"
)

// Fetcher is the slice of Client the Provider depends on. The concrete
// implementation is *Client; tests substitute a stub.
type Fetcher interface {
	FetchAll(ctx context.Context) (models.Corpus, error)
}

// Provider hands out the corpus, serving from cache while the entry is valid
// and falling through to the source client on a miss.
//
// Concurrent misses may each trigger a fetch; Set is idempotent so the last
// write simply wins. Deduplicating in-flight fetches would be an
// optimization, not a correctness requirement.
type Provider struct {
	fetcher Fetcher
	cache   *Cache
	logger  *zap.Logger
}

// NewProvider creates a Provider over the given fetcher and cache.
func NewProvider(fetcher Fetcher, cache *Cache, logger *zap.Logger) *Provider {
	return &Provider{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
	}
}

// Corpus returns the cached corpus, fetching and caching a fresh one when the
// cache has no valid entry.
func (p *Provider) Corpus(ctx context.Context) (models.Corpus, error) {
	if corpus, ok := p.cache.Get(); ok {
		p.logger.Debug("serving corpus from cache", zap.Int("messages", len(corpus)))
		return corpus, nil
	}

	corpus, err := p.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	p.cache.Set(corpus)
	return corpus, nil
}
