package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

func twoOfThreeMapping() *types.MappingResult {
	return &types.MappingResult{
		Matched: []types.MappingEntry{
			{Keyword: types.Keyword{Term: "python", Weight: 1.0}, Similarity: 0.9},
			{Keyword: types.Keyword{Term: "docker", Weight: 1.0}, Similarity: 0.8},
		},
		Missing: []types.Keyword{{Term: "react", Weight: 1.0}},
	}
}

func TestScoreCoverage(t *testing.T) {
	result := Score(twoOfThreeMapping(), Flags{}, DefaultConfig())

	// Two of three equal-weight keywords matched.
	assert.InDelta(t, 100.0*2.0/3.0, result.Score, 1e-6)
	assert.Empty(t, result.Penalties)
}

func TestScoreIsPure(t *testing.T) {
	mapping := twoOfThreeMapping()
	flags := Flags{OverflowUnresolved: true, EmptySections: []string{"experience"}}
	cfg := DefaultConfig()

	first := Score(mapping, flags, cfg)
	second := Score(mapping, flags, cfg)

	assert.Equal(t, first, second)
}

func TestScoreEmptyKeywordSet(t *testing.T) {
	mapping := &types.MappingResult{Matched: []types.MappingEntry{}, Missing: []types.Keyword{}}

	result := Score(mapping, Flags{}, DefaultConfig())

	assert.Zero(t, result.Score)
	assert.Empty(t, result.Penalties)
}

func TestScoreMissingCriticalKeywordPenalty(t *testing.T) {
	mapping := &types.MappingResult{
		Matched: []types.MappingEntry{
			{Keyword: types.Keyword{Term: "python", Weight: 1.0}},
		},
		Missing: []types.Keyword{
			{Term: "kubernetes", Weight: 0.9}, // above critical weight
			{Term: "react", Weight: 0.4},      // below
		},
	}

	result := Score(mapping, Flags{}, DefaultConfig())

	require.Len(t, result.Penalties, 1)
	assert.Contains(t, result.Penalties[0].Reason, "kubernetes")
	assert.InDelta(t, DefaultCriticalPenalty, result.Penalties[0].Amount, 1e-9)

	coverage := 1.0 / (1.0 + 0.9 + 0.4)
	assert.InDelta(t, 100*coverage-DefaultCriticalPenalty, result.Score, 1e-6)
}

func TestScoreOverflowAndEmptySectionPenalties(t *testing.T) {
	result := Score(twoOfThreeMapping(), Flags{
		OverflowUnresolved: true,
		EmptySections:      []string{"experience"},
	}, DefaultConfig())

	assert.Len(t, result.Penalties, 2)
	assert.InDelta(t, DefaultOverflowPenalty+DefaultEmptySectionPenalty, result.TotalPenalty(), 1e-9)
	assert.InDelta(t, 100.0*2.0/3.0-15.0, result.Score, 1e-6)
}

func TestScoreClampedToZero(t *testing.T) {
	mapping := &types.MappingResult{
		Missing: []types.Keyword{
			{Term: "a", Weight: 0.9},
			{Term: "b", Weight: 0.9},
			{Term: "c", Weight: 0.9},
		},
	}

	result := Score(mapping, Flags{OverflowUnresolved: true}, DefaultConfig())

	assert.Zero(t, result.Score)
	assert.Greater(t, result.TotalPenalty(), 0.0)
}
