package selection

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

func selectionProfile() *types.Profile {
	return &types.Profile{
		Name: "candidate",
		Sections: []types.ProfileSection{
			{Name: types.SectionExperience, Chunks: []types.Chunk{
				{ID: "exp-1", Section: types.SectionExperience, Text: "Led the migration of payment services to Kubernetes", RecencyScore: 0.9},
				{ID: "exp-2", Section: types.SectionExperience, Text: "Built Python data pipelines", RecencyScore: 0.7},
				{ID: "exp-3", Section: types.SectionExperience, Text: "Maintained legacy Perl scripts", RecencyScore: 0.1},
			}},
			{Name: types.SectionSkills, Chunks: []types.Chunk{
				{ID: "sk-1", Section: types.SectionSkills, Text: "Python, Docker, Kubernetes", RecencyScore: 0.5},
			}},
		},
	}
}

func selectionMapping() *types.MappingResult {
	return &types.MappingResult{
		Matched: []types.MappingEntry{
			{Keyword: types.Keyword{Term: "python", Weight: 0.9}, MatchedChunkIDs: []string{"exp-2", "sk-1"}, Similarity: 0.8},
			{Keyword: types.Keyword{Term: "kubernetes", Weight: 0.6}, MatchedChunkIDs: []string{"exp-1"}, Similarity: 0.7},
		},
	}
}

func TestSelectRanksBackedChunksFirst(t *testing.T) {
	state := Select(selectionMapping(), selectionProfile(), 0, DefaultConfig())

	assert.Equal(t, DefaultBudget, state.Budget)
	require.NotEmpty(t, state.Sections)
	assert.Equal(t, types.SectionExperience, state.Sections[0].Section)

	// Backed chunks rank ahead of the unbacked one within the section.
	expChunks := state.Sections[0].Chunks
	require.NotEmpty(t, expChunks)
	assert.True(t, expChunks[0].Backed)
}

func TestSelectHonorsSectionMinimum(t *testing.T) {
	// Budget far too small for everything; each section still seeds its
	// minimum chunk.
	state := Select(selectionMapping(), selectionProfile(), 10, DefaultConfig())

	for _, sec := range state.Sections {
		assert.GreaterOrEqual(t, len(sec.Chunks), 1, "section %s below minimum", sec.Section)
	}
}

func TestSelectRespectsBudgetBeyondMinimum(t *testing.T) {
	profile := selectionProfile()
	generous := Select(selectionMapping(), profile, 10_000, DefaultConfig())
	tight := Select(selectionMapping(), profile, 80, DefaultConfig())

	assert.Equal(t, profile.ChunkCount(), generous.ChunkCount())
	assert.Less(t, tight.ChunkCount(), generous.ChunkCount())
}

func TestSelectMarksCriticalChunks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CriticalWeight = 0.8
	state := Select(selectionMapping(), selectionProfile(), 0, cfg)

	criticalSeen := false
	for _, sec := range state.Sections {
		for _, sc := range sec.Chunks {
			if sc.Chunk.ID == "exp-2" || sc.Chunk.ID == "sk-1" {
				assert.True(t, sc.Critical, "chunk %s backs the python keyword", sc.Chunk.ID)
				criticalSeen = true
			}
		}
	}
	assert.True(t, criticalSeen)
}

func TestReduceLowersBudgetMonotonically(t *testing.T) {
	cfg := DefaultConfig()
	state := Select(selectionMapping(), selectionProfile(), 0, cfg)

	budgets := []int{state.Budget}
	for i := 0; i < 4; i++ {
		var changes []string
		state, changes = Reduce(state, cfg.BudgetStep, cfg)
		budgets = append(budgets, state.Budget)
		require.NotEmpty(t, changes)
		assert.Contains(t, changes[0], fmt.Sprintf("to %d chars", state.Budget))
	}

	for i := 1; i < len(budgets); i++ {
		assert.Less(t, budgets[i], budgets[i-1])
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	cfg := DefaultConfig()
	state := Select(selectionMapping(), selectionProfile(), 0, cfg)
	before := state.Clone()

	_, _ = Reduce(state, cfg.BudgetStep, cfg)

	assert.Equal(t, before, state)
}

func TestReduceDropsNonCriticalFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CriticalWeight = 0.8
	state := Select(selectionMapping(), selectionProfile(), 10_000, cfg)
	require.Equal(t, 4, state.ChunkCount())

	// Shrink until something must go.
	reduced, changes := Reduce(state, state.Budget-60, cfg)

	var dropped []string
	for _, change := range changes {
		if strings.Contains(change, "dropped") {
			dropped = append(dropped, change)
		}
	}
	require.NotEmpty(t, dropped)
	// The unbacked, non-critical chunk goes before any critical one.
	assert.Contains(t, dropped[0], "exp-3")
	assert.Less(t, reduced.ChunkCount(), state.ChunkCount())
}

func TestReduceBudgetFloorsAtZero(t *testing.T) {
	cfg := DefaultConfig()
	state := Select(selectionMapping(), selectionProfile(), 100, cfg)

	reduced, _ := Reduce(state, 10_000, cfg)
	assert.Zero(t, reduced.Budget)
}
