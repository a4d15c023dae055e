package embedding

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/mohitbhoir789/resume-builder/internal/textutil"
)

// DefaultDimension is the vector length used when none is configured.
const DefaultDimension = 384

// HashingProvider is a deterministic local embedding provider. It hashes
// unigram and bigram features of normalized text into a fixed-length
// L2-normalized vector. It needs no network access and always agrees with
// itself, which makes it the reference provider for tests and the fallback
// when no semantic model is configured.
type HashingProvider struct {
	dimension int
}

// NewHashingProvider creates a hashing provider with the given dimension.
// A non-positive dimension falls back to DefaultDimension.
func NewHashingProvider(dimension int) *HashingProvider {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &HashingProvider{dimension: dimension}
}

// Embed hashes the text's token features into a normalized vector.
func (p *HashingProvider) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, p.dimension)

	tokens := textutil.Tokenize(text)
	features := make([]string, 0, len(tokens)*2)
	features = append(features, tokens...)
	features = append(features, textutil.Bigrams(tokens)...)

	for _, feature := range features {
		h := fnv.New64a()
		_, _ = h.Write([]byte(feature))
		vec[h.Sum64()%uint64(p.dimension)]++
	}

	normalize(vec)
	return vec, nil
}

// Dimension returns the provider's fixed vector length.
func (p *HashingProvider) Dimension() int {
	return p.dimension
}

// Name identifies the provider in audit output.
func (p *HashingProvider) Name() string {
	return "hashing"
}

// normalize scales vec to unit L2 norm in place. Zero vectors are left as is.
func normalize(vec []float64) {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
