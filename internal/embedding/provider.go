// Package embedding defines the embedding provider contract and a
// deterministic local implementation.
package embedding

import "context"

// Provider turns text into a fixed-length vector. Implementations must be
// pure: identical input yields an identical vector, and every vector has
// length Dimension(). Providers must be safe for concurrent use.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Dimension() int
	Name() string
}
