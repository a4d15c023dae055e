package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingProviderDeterministic(t *testing.T) {
	provider := NewHashingProvider(64)

	a, err := provider.Embed(context.Background(), "distributed systems in Go")
	require.NoError(t, err)
	b, err := provider.Embed(context.Background(), "distributed systems in Go")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashingProviderUnitNorm(t *testing.T) {
	provider := NewHashingProvider(DefaultDimension)

	vec, err := provider.Embed(context.Background(), "kubernetes docker terraform")
	require.NoError(t, err)

	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-9)
}

func TestHashingProviderEmptyText(t *testing.T) {
	provider := NewHashingProvider(32)

	vec, err := provider.Embed(context.Background(), "")
	require.NoError(t, err)

	// No features hash to anything; the zero vector is returned untouched.
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestHashingProviderSimilarTextsOverlap(t *testing.T) {
	provider := NewHashingProvider(DefaultDimension)

	a, err := provider.Embed(context.Background(), "python backend development")
	require.NoError(t, err)
	b, err := provider.Embed(context.Background(), "python backend services")
	require.NoError(t, err)
	c, err := provider.Embed(context.Background(), "watercolor painting")
	require.NoError(t, err)

	assert.Greater(t, dot(a, b), dot(a, c))
}

func TestHashingProviderDefaults(t *testing.T) {
	provider := NewHashingProvider(0)
	assert.Equal(t, DefaultDimension, provider.Dimension())
	assert.Equal(t, "hashing", provider.Name())
}

func TestDimensionMismatchError(t *testing.T) {
	err := &DimensionMismatchError{Want: 384, Got: 128}
	assert.Contains(t, err.Error(), "384")
	assert.Contains(t, err.Error(), "128")
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
