// Package mapping matches job keywords to profile content via embedding
// cosine similarity.
package mapping

import (
	"math"
	"sort"

	"github.com/mohitbhoir789/resume-builder/internal/embedding"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// indexedChunk pairs a chunk with its global insertion order, used as the
// final tie-break.
type indexedChunk struct {
	chunk types.Chunk
	order int
}

// ChunkIndex is an immutable in-memory similarity index over a profile's
// chunk embeddings. Profiles are read-only per run, so the index needs no
// update path and is safe to share.
type ChunkIndex struct {
	chunks    []indexedChunk
	dimension int
}

// NewChunkIndex builds an index over every chunk in the profile. It fails
// fast with a DimensionMismatchError if chunk embeddings disagree on
// dimension.
func NewChunkIndex(profile *types.Profile) (*ChunkIndex, error) {
	idx := &ChunkIndex{dimension: profile.Dimension()}

	order := 0
	for _, section := range profile.Sections {
		for _, chunk := range section.Chunks {
			if chunk.Dimension() != idx.dimension {
				return nil, &embedding.DimensionMismatchError{Want: idx.dimension, Got: chunk.Dimension()}
			}
			idx.chunks = append(idx.chunks, indexedChunk{chunk: chunk, order: order})
			order++
		}
	}

	return idx, nil
}

// Dimension returns the embedding dimension of the indexed chunks.
func (idx *ChunkIndex) Dimension() int {
	return idx.dimension
}

// Len returns the number of indexed chunks.
func (idx *ChunkIndex) Len() int {
	return len(idx.chunks)
}

// hit is one chunk's similarity to a query vector.
type hit struct {
	chunk      types.Chunk
	order      int
	similarity float64
}

// Query computes cosine similarity of the vector against every chunk and
// returns the best similarity plus the ids of all chunks within margin of
// it, ordered by similarity descending with ties broken by higher recency
// score, then original chunk order.
func (idx *ChunkIndex) Query(vec []float64, margin float64) (best float64, chunkIDs []string, err error) {
	if len(vec) != idx.dimension {
		return 0, nil, &embedding.DimensionMismatchError{Want: idx.dimension, Got: len(vec)}
	}
	if len(idx.chunks) == 0 {
		return 0, nil, nil
	}

	hits := make([]hit, 0, len(idx.chunks))
	for _, ic := range idx.chunks {
		sim := cosine(vec, ic.chunk.Embedding)
		hits = append(hits, hit{chunk: ic.chunk, order: ic.order, similarity: sim})
		if sim > best {
			best = sim
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].similarity != hits[j].similarity {
			return hits[i].similarity > hits[j].similarity
		}
		if hits[i].chunk.RecencyScore != hits[j].chunk.RecencyScore {
			return hits[i].chunk.RecencyScore > hits[j].chunk.RecencyScore
		}
		return hits[i].order < hits[j].order
	})

	for _, h := range hits {
		if h.similarity >= best-margin {
			chunkIDs = append(chunkIDs, h.chunk.ID)
		}
	}

	return best, chunkIDs, nil
}

// cosine returns the cosine similarity of two equal-length vectors, clamped
// to [0, 1]. Zero vectors yield 0.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
