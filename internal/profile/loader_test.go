package profile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohitbhoir789/resume-builder/internal/embedding"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

func writeProfile(t *testing.T, dir, name string, p any) {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+"_profile.json"), data, 0o644))
}

func validProfile() types.Profile {
	return types.Profile{
		Name: "jane",
		Sections: []types.ProfileSection{
			{Name: types.SectionExperience, Chunks: []types.Chunk{
				{Text: "Led the data platform team", Embedding: []float64{0.1, 0.2, 0.3}, RecencyScore: 0.9},
				{Text: "Built ETL pipelines in Python", Embedding: []float64{0.4, 0.5, 0.6}, RecencyScore: 0.6},
			}},
		},
	}
}

func TestCacheLoaderLoadsAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "jane", validProfile())

	loader, err := NewCacheLoader(dir)
	require.NoError(t, err)

	p, err := loader.Load(context.Background(), "jane")
	require.NoError(t, err)

	assert.Equal(t, "jane", p.Name)
	require.Equal(t, 2, p.ChunkCount())
	for _, chunk := range p.AllChunks() {
		assert.NotEmpty(t, chunk.ID)
		assert.Equal(t, types.SectionExperience, chunk.Section)
		assert.Equal(t, types.SeniorityUnknown, chunk.Seniority)
	}
}

func TestCacheLoaderMissingProfile(t *testing.T) {
	loader, err := NewCacheLoader(t.TempDir())
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), "nobody")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nobody", notFound.Name)
}

func TestCacheLoaderRejectsSchemaViolations(t *testing.T) {
	dir := t.TempDir()
	// Chunks missing the required embedding field.
	writeProfile(t, dir, "broken", map[string]any{
		"name": "broken",
		"sections": []map[string]any{
			{"name": "experience", "chunks": []map[string]any{{"text": "no embedding"}}},
		},
	})

	loader, err := NewCacheLoader(dir)
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), "broken")

	var invalid *InvalidProfileError
	require.ErrorAs(t, err, &invalid)
}

func TestCacheLoaderRejectsMixedDimensions(t *testing.T) {
	dir := t.TempDir()
	p := validProfile()
	p.Sections[0].Chunks[1].Embedding = []float64{0.1, 0.2}
	writeProfile(t, dir, "mixed", p)

	loader, err := NewCacheLoader(dir)
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), "mixed")

	var invalid *InvalidProfileError
	require.ErrorAs(t, err, &invalid)
	var mismatch *embedding.DimensionMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestCacheLoaderList(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "zoe", validProfile())
	writeProfile(t, dir, "amir", validProfile())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	loader, err := NewCacheLoader(dir)
	require.NoError(t, err)

	names, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"amir", "zoe"}, names)
}

func TestCacheLoaderListMissingDirectory(t *testing.T) {
	loader, err := NewCacheLoader(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)

	names, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
