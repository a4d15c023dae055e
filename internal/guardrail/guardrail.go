package guardrail

import (
	"context"
	"fmt"
	"log"

	"github.com/mohitbhoir789/resume-builder/internal/assembly"
	"github.com/mohitbhoir789/resume-builder/internal/rendering"
	"github.com/mohitbhoir789/resume-builder/internal/selection"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// DefaultMaxAttempts bounds render attempts within one guardrail pass.
const DefaultMaxAttempts = 5

// Outcome is the result of one guardrail pass.
type Outcome struct {
	State     State
	Attempts  int
	PageCount int
	PDF       []byte
	Selection types.SelectionState
	Changes   []string
}

// Guardrail drives assemble -> render -> measure -> reduce until the
// document fits one page or the attempt budget runs out.
type Guardrail struct {
	assembler    *assembly.Assembler
	renderer     rendering.Renderer
	maxAttempts  int
	budgetStep   int
	selectionCfg selection.Config
}

// New creates a guardrail. Non-positive maxAttempts uses
// DefaultMaxAttempts.
func New(assembler *assembly.Assembler, renderer rendering.Renderer, maxAttempts int, selectionCfg selection.Config) *Guardrail {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Guardrail{
		assembler:    assembler,
		renderer:     renderer,
		maxAttempts:  maxAttempts,
		budgetStep:   selectionCfg.BudgetStep,
		selectionCfg: selectionCfg,
	}
}

// Run executes the state machine starting from an assembled selection.
// Budget reductions are monotonically non-increasing across REDUCE
// transitions. The returned outcome is terminal: StateAccepted or
// StateFailed. Only context cancellation produces an error.
func (g *Guardrail) Run(ctx context.Context, state types.SelectionState, job types.JobDescription) (*Outcome, error) {
	outcome := &Outcome{State: StateAssembled, Selection: state}

	for outcome.Attempts < g.maxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcome.State = StateRendering
		outcome.Attempts++

		source, err := g.assembler.Assemble(outcome.Selection, job)
		if err != nil {
			// Assembly is pure; a failure here is a template bug, not an
			// overflow, and reducing will not fix it.
			log.Printf("assembly failed on attempt %d: %v", outcome.Attempts, err)
			outcome.Changes = append(outcome.Changes, fmt.Sprintf("attempt %d: assembly failed: %v", outcome.Attempts, err))
			outcome.State = StateFailed
			return outcome, nil
		}

		result, err := g.renderer.Render(ctx, source)
		switch {
		case err == nil && result.PageCount == 1:
			outcome.State = StateAccepted
			outcome.PageCount = result.PageCount
			outcome.PDF = result.PDF
			return outcome, nil

		case err == nil && result.PageCount == 0:
			// No measurable output counts as a render failure.
			outcome.State = StateMeasured
			outcome.Changes = append(outcome.Changes, fmt.Sprintf("attempt %d: renderer produced no valid output", outcome.Attempts))

		case err == nil:
			outcome.State = StateMeasured
			outcome.PageCount = result.PageCount
			outcome.Changes = append(outcome.Changes, fmt.Sprintf("attempt %d: rendered %d pages, over the one-page limit", outcome.Attempts, result.PageCount))

		case ctx.Err() != nil:
			return nil, ctx.Err()

		case rendering.IsTimeout(err):
			outcome.Changes = append(outcome.Changes, fmt.Sprintf("attempt %d: render timed out", outcome.Attempts))
			log.Printf("render attempt %d timed out: %v", outcome.Attempts, err)

		default:
			outcome.Changes = append(outcome.Changes, fmt.Sprintf("attempt %d: render failed", outcome.Attempts))
			log.Printf("render attempt %d failed: %v", outcome.Attempts, err)
		}

		if outcome.Attempts >= g.maxAttempts {
			break
		}

		outcome.State = StateReduce
		reduced, changes := selection.Reduce(outcome.Selection, g.budgetStep, g.selectionCfg)
		outcome.Selection = reduced
		outcome.Changes = append(outcome.Changes, changes...)
	}

	outcome.State = StateFailed
	return outcome, nil
}
