package guardrail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohitbhoir789/resume-builder/internal/assembly"
	"github.com/mohitbhoir789/resume-builder/internal/rendering"
	"github.com/mohitbhoir789/resume-builder/internal/selection"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// scriptedRenderer returns canned results per attempt, repeating the last
// entry when attempts outnumber the script.
type scriptedRenderer struct {
	script []func() (*rendering.Result, error)
	calls  int
}

func (r *scriptedRenderer) Render(_ context.Context, _ string) (*rendering.Result, error) {
	idx := r.calls
	if idx >= len(r.script) {
		idx = len(r.script) - 1
	}
	r.calls++
	return r.script[idx]()
}

func pages(n int) func() (*rendering.Result, error) {
	return func() (*rendering.Result, error) {
		return &rendering.Result{PDF: []byte("%PDF-fake"), PageCount: n}, nil
	}
}

func guardrailState() types.SelectionState {
	return types.SelectionState{
		Budget: 500,
		Sections: []types.SectionSelection{
			{Section: types.SectionExperience, Chunks: []types.SelectedChunk{
				{Chunk: types.Chunk{ID: "a", Text: "Led a platform migration across three teams"}},
				{Chunk: types.Chunk{ID: "b", Text: "Built the deployment pipeline"}},
				{Chunk: types.Chunk{ID: "c", Text: "Mentored junior engineers"}},
			}},
		},
	}
}

func newTestGuardrail(t *testing.T, renderer rendering.Renderer, maxAttempts int) *Guardrail {
	t.Helper()
	assembler, err := assembly.NewAssembler("", 0)
	require.NoError(t, err)
	return New(assembler, renderer, maxAttempts, selection.DefaultConfig())
}

func TestGuardrailAcceptsFirstAttempt(t *testing.T) {
	renderer := &scriptedRenderer{script: []func() (*rendering.Result, error){pages(1)}}
	rail := newTestGuardrail(t, renderer, 5)

	outcome, err := rail.Run(context.Background(), guardrailState(), types.JobDescription{Title: "Engineer"})
	require.NoError(t, err)

	assert.Equal(t, StateAccepted, outcome.State)
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, 1, outcome.PageCount)
	assert.NotEmpty(t, outcome.PDF)
}

func TestGuardrailFailsAfterMaxAttempts(t *testing.T) {
	// Renderer that always reports two pages.
	renderer := &scriptedRenderer{script: []func() (*rendering.Result, error){pages(2)}}
	rail := newTestGuardrail(t, renderer, 5)

	outcome, err := rail.Run(context.Background(), guardrailState(), types.JobDescription{})
	require.NoError(t, err)

	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, 5, outcome.Attempts)
	assert.Equal(t, 5, renderer.calls)
}

func TestGuardrailReducesThenAccepts(t *testing.T) {
	renderer := &scriptedRenderer{script: []func() (*rendering.Result, error){pages(2), pages(2), pages(1)}}
	rail := newTestGuardrail(t, renderer, 5)
	state := guardrailState()

	outcome, err := rail.Run(context.Background(), state, types.JobDescription{})
	require.NoError(t, err)

	assert.Equal(t, StateAccepted, outcome.State)
	assert.Equal(t, 3, outcome.Attempts)
	assert.Less(t, outcome.Selection.Budget, state.Budget)
	assert.NotEmpty(t, outcome.Changes)
}

func TestGuardrailBudgetMonotonicAcrossReductions(t *testing.T) {
	renderer := &scriptedRenderer{script: []func() (*rendering.Result, error){pages(3)}}
	rail := newTestGuardrail(t, renderer, 4)
	state := guardrailState()

	outcome, err := rail.Run(context.Background(), state, types.JobDescription{})
	require.NoError(t, err)

	assert.Equal(t, StateFailed, outcome.State)
	assert.LessOrEqual(t, outcome.Selection.Budget, state.Budget)
}

func TestGuardrailTimeoutCountsAsFailedAttempt(t *testing.T) {
	renderer := &scriptedRenderer{script: []func() (*rendering.Result, error){
		func() (*rendering.Result, error) { return nil, &rendering.TimeoutError{Message: "exceeded 30s"} },
		pages(1),
	}}
	rail := newTestGuardrail(t, renderer, 5)

	outcome, err := rail.Run(context.Background(), guardrailState(), types.JobDescription{})
	require.NoError(t, err)

	assert.Equal(t, StateAccepted, outcome.State)
	assert.Equal(t, 2, outcome.Attempts)
	assert.Contains(t, outcome.Changes[0], "timed out")
}

func TestGuardrailRenderErrorCountsAsFailedAttempt(t *testing.T) {
	renderer := &scriptedRenderer{script: []func() (*rendering.Result, error){
		func() (*rendering.Result, error) { return nil, &rendering.RenderError{Message: "compile failed"} },
		pages(1),
	}}
	rail := newTestGuardrail(t, renderer, 5)

	outcome, err := rail.Run(context.Background(), guardrailState(), types.JobDescription{})
	require.NoError(t, err)

	assert.Equal(t, StateAccepted, outcome.State)
	assert.Equal(t, 2, outcome.Attempts)
}

func TestGuardrailZeroPageCountIsFailure(t *testing.T) {
	renderer := &scriptedRenderer{script: []func() (*rendering.Result, error){pages(0), pages(1)}}
	rail := newTestGuardrail(t, renderer, 5)

	outcome, err := rail.Run(context.Background(), guardrailState(), types.JobDescription{})
	require.NoError(t, err)

	assert.Equal(t, StateAccepted, outcome.State)
	assert.Equal(t, 2, outcome.Attempts)
}

func TestGuardrailContextCancellation(t *testing.T) {
	renderer := &scriptedRenderer{script: []func() (*rendering.Result, error){pages(2)}}
	rail := newTestGuardrail(t, renderer, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rail.Run(ctx, guardrailState(), types.JobDescription{})
	assert.ErrorIs(t, err, context.Canceled)
}
