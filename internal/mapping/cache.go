package mapping

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mohitbhoir789/resume-builder/internal/embedding"
)

// warmConcurrency bounds parallel embed calls during cache warm-up.
const warmConcurrency = 4

// termCache memoizes keyword term embeddings for the duration of one run.
// Terms recur across optimizer iterations, so each term is embedded once.
type termCache struct {
	provider embedding.Provider

	mu      sync.Mutex
	vectors map[string][]float64
}

func newTermCache(provider embedding.Provider) *termCache {
	return &termCache{
		provider: provider,
		vectors:  make(map[string][]float64),
	}
}

// warm embeds all uncached terms with bounded concurrency. Remote providers
// dominate mapping latency, so warm-up amortizes it up front.
func (c *termCache) warm(ctx context.Context, terms []string) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)

	for _, term := range terms {
		key := cacheKey(term)
		c.mu.Lock()
		_, cached := c.vectors[key]
		c.mu.Unlock()
		if cached {
			continue
		}

		g.Go(func() error {
			vec, err := c.provider.Embed(gCtx, term)
			if err != nil {
				return err
			}
			c.mu.Lock()
			c.vectors[key] = vec
			c.mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

// get returns the cached vector for a term, embedding it on a miss.
func (c *termCache) get(ctx context.Context, term string) ([]float64, error) {
	key := cacheKey(term)

	c.mu.Lock()
	vec, ok := c.vectors[key]
	c.mu.Unlock()
	if ok {
		return vec, nil
	}

	vec, err := c.provider.Embed(ctx, term)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.vectors[key] = vec
	c.mu.Unlock()
	return vec, nil
}

func cacheKey(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
