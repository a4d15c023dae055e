package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSelectionState() SelectionState {
	return SelectionState{
		Budget: 100,
		Sections: []SectionSelection{
			{Section: SectionExperience, Chunks: []SelectedChunk{
				{Chunk: Chunk{ID: "a", Text: "led team"}},
				{Chunk: Chunk{ID: "b", Text: "shipped api"}},
			}},
			{Section: SectionSkills, Chunks: []SelectedChunk{
				{Chunk: Chunk{ID: "c", Text: "go"}},
			}},
		},
	}
}

func TestSelectionStateTotals(t *testing.T) {
	state := testSelectionState()

	// len("led team")+2 + len("shipped api")+2 + len("go")+2
	assert.Equal(t, 10+13+4, state.TotalChars())
	assert.Equal(t, 3, state.ChunkCount())
}

func TestSelectionStateCloneIsDeep(t *testing.T) {
	state := testSelectionState()
	clone := state.Clone()

	clone.Budget = 50
	clone.Sections[0].Chunks[0].Chunk.ID = "mutated"

	assert.Equal(t, 100, state.Budget)
	assert.Equal(t, "a", state.Sections[0].Chunks[0].Chunk.ID)
}

func TestSelectionStateEmptySections(t *testing.T) {
	profile := &Profile{
		Name: "test",
		Sections: []ProfileSection{
			{Name: SectionExperience, Chunks: []Chunk{{ID: "a", Text: "x", Embedding: []float64{1}}}},
		},
	}

	empty := SelectionState{Sections: []SectionSelection{{Section: SectionExperience}}}
	assert.Equal(t, []string{SectionExperience}, empty.EmptySections(profile))

	filled := testSelectionState()
	assert.Empty(t, filled.EmptySections(profile))
}

func TestMappingResultHelpers(t *testing.T) {
	mapping := MappingResult{
		Matched: []MappingEntry{
			{Keyword: Keyword{Term: "python", Weight: 0.9}, MatchedChunkIDs: []string{"a", "b"}, Similarity: 0.8},
			{Keyword: Keyword{Term: "docker", Weight: 0.5}, MatchedChunkIDs: []string{"b"}, Similarity: 0.6},
		},
		Missing: []Keyword{{Term: "react", Weight: 0.4}},
	}

	keywords := mapping.Keywords()
	assert.Len(t, keywords, 3)
	assert.Equal(t, "react", keywords[2].Term)

	backed := mapping.BackedChunkIDs()
	assert.InDelta(t, 0.8, backed["a"], 1e-9)
	// Highest similarity wins when two entries reference the same chunk.
	assert.InDelta(t, 0.8, backed["b"], 1e-9)

	critical := mapping.CriticalChunkIDs(0.8)
	assert.True(t, critical["a"])
	assert.True(t, critical["b"])

	none := mapping.CriticalChunkIDs(0.95)
	assert.Empty(t, none)
}
