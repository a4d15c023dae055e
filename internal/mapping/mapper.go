package mapping

import (
	"context"

	"github.com/mohitbhoir789/resume-builder/internal/embedding"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// Default mapping thresholds.
const (
	// DefaultThreshold is the minimum best similarity for a keyword to
	// count as matched.
	DefaultThreshold = 0.55
	// DefaultMargin widens the matched chunk set to everything within this
	// distance of the best similarity.
	DefaultMargin = 0.05
)

// Mapper maps keywords onto profile chunks by embedding similarity. One
// Mapper serves one run; its term cache is private to that run.
type Mapper struct {
	provider  embedding.Provider
	threshold float64
	margin    float64
	cache     *termCache
}

// NewMapper creates a mapper over the given embedding provider. Threshold
// and margin values outside (0, 1] fall back to the defaults.
func NewMapper(provider embedding.Provider, threshold, margin float64) *Mapper {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	if margin <= 0 || margin > 1 {
		margin = DefaultMargin
	}
	return &Mapper{
		provider:  provider,
		threshold: threshold,
		margin:    margin,
		cache:     newTermCache(provider),
	}
}

// Map partitions keywords into matched and missing against the profile.
// Every keyword lands in exactly one of the two lists. The call fails fast
// with a DimensionMismatchError when the provider's vectors disagree with
// the profile's chunk embedding dimension.
func (m *Mapper) Map(ctx context.Context, keywords []types.Keyword, profile *types.Profile) (*types.MappingResult, error) {
	result := &types.MappingResult{
		Matched: []types.MappingEntry{},
		Missing: []types.Keyword{},
	}
	if len(keywords) == 0 {
		return result, nil
	}

	index, err := NewChunkIndex(profile)
	if err != nil {
		return nil, err
	}
	if index.Len() == 0 {
		result.Missing = append(result.Missing, keywords...)
		return result, nil
	}
	if index.Dimension() != m.provider.Dimension() {
		return nil, &embedding.DimensionMismatchError{Want: index.Dimension(), Got: m.provider.Dimension()}
	}

	terms := make([]string, len(keywords))
	for i, kw := range keywords {
		terms[i] = kw.Term
	}
	if err := m.cache.warm(ctx, terms); err != nil {
		return nil, err
	}

	for _, kw := range keywords {
		vec, err := m.cache.get(ctx, kw.Term)
		if err != nil {
			return nil, err
		}

		best, chunkIDs, err := index.Query(vec, m.margin)
		if err != nil {
			return nil, err
		}

		if best < m.threshold {
			result.Missing = append(result.Missing, kw)
			continue
		}
		result.Matched = append(result.Matched, types.MappingEntry{
			Keyword:         kw,
			MatchedChunkIDs: chunkIDs,
			Similarity:      best,
		})
	}

	return result, nil
}
