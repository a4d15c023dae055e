package optimizer

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/mohitbhoir789/resume-builder/internal/assembly"
	"github.com/mohitbhoir789/resume-builder/internal/embedding"
	"github.com/mohitbhoir789/resume-builder/internal/extraction"
	"github.com/mohitbhoir789/resume-builder/internal/guardrail"
	"github.com/mohitbhoir789/resume-builder/internal/mapping"
	"github.com/mohitbhoir789/resume-builder/internal/profile"
	"github.com/mohitbhoir789/resume-builder/internal/rendering"
	"github.com/mohitbhoir789/resume-builder/internal/scoring"
	"github.com/mohitbhoir789/resume-builder/internal/selection"
	"github.com/mohitbhoir789/resume-builder/internal/storage"
	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// DefaultMaxIterations bounds optimizer passes over select, render, score.
const DefaultMaxIterations = 3

// DefaultEpsilon is the minimum score improvement that justifies another
// iteration.
const DefaultEpsilon = 0.5

// Config carries the optimizer loop parameters together with the nested
// pipeline stage configurations.
type Config struct {
	MaxIterations       int
	Epsilon             float64
	SimilarityThreshold float64
	SimilarityMargin    float64
	MaxRenderAttempts   int
	Selection           selection.Config
	Scoring             scoring.Config
}

// DefaultConfig returns the default optimizer configuration.
func DefaultConfig() Config {
	return Config{
		MaxIterations:       DefaultMaxIterations,
		Epsilon:             DefaultEpsilon,
		SimilarityThreshold: mapping.DefaultThreshold,
		SimilarityMargin:    mapping.DefaultMargin,
		MaxRenderAttempts:   guardrail.DefaultMaxAttempts,
		Selection:           selection.DefaultConfig(),
		Scoring:             scoring.DefaultConfig(),
	}
}

// Optimizer runs the full pipeline: keyword extraction, semantic mapping,
// content selection, guarded rendering, and scoring, iterating while the
// score keeps improving.
type Optimizer struct {
	loader    profile.Loader
	extractor extraction.Strategy
	provider  embedding.Provider
	assembler *assembly.Assembler
	renderer  rendering.Renderer
	store     storage.ArtifactStore
	cfg       Config
}

// New creates an optimizer. The artifact store may be nil, in which case
// run outputs stay in memory only.
func New(loader profile.Loader, extractor extraction.Strategy, provider embedding.Provider,
	assembler *assembly.Assembler, renderer rendering.Renderer, store storage.ArtifactStore, cfg Config) *Optimizer {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = DefaultEpsilon
	}
	return &Optimizer{
		loader:    loader,
		extractor: extractor,
		provider:  provider,
		assembler: assembler,
		renderer:  renderer,
		store:     store,
		cfg:       cfg,
	}
}

// Generate runs the pipeline end to end for the named profile and job
// description, producing a run result with the final score, the rendered
// document when one was accepted, and the full iteration log.
//
// Fatal conditions return an error: a job description with no usable text,
// an unknown profile name, or an embedding dimension mismatch between the
// provider and the stored profile. Extraction service failures never
// surface here; the extraction strategy is expected to fall back to local
// keyword analysis on its own.
func (o *Optimizer) Generate(ctx context.Context, profileName string, job types.JobDescription) (*types.RunResult, error) {
	if strings.TrimSpace(job.RawText) == "" {
		return nil, &InvalidJobDescriptionError{Message: "job description text is empty"}
	}

	prof, err := o.loader.Load(ctx, profileName)
	if err != nil {
		return nil, err
	}

	keywords, err := o.extractor.Extract(ctx, job)
	if err != nil {
		return nil, err
	}

	mapper := mapping.NewMapper(o.provider, o.cfg.SimilarityThreshold, o.cfg.SimilarityMargin)
	mapped, err := mapper.Map(ctx, keywords, prof)
	if err != nil {
		return nil, err
	}

	result := &types.RunResult{
		RunID:   uuid.NewString(),
		Mapping: *mapped,
	}

	rail := guardrail.New(o.assembler, o.renderer, o.cfg.MaxRenderAttempts, o.cfg.Selection)

	budget := o.cfg.Selection.Budget
	scoreBefore := 0.0
	var bestDetail types.ATSScoreResult
	for i := 1; i <= o.cfg.MaxIterations; i++ {
		state := selection.Select(mapped, prof, budget, o.cfg.Selection)

		outcome, err := rail.Run(ctx, state, job)
		if err != nil {
			return nil, err
		}

		flags := scoring.Flags{
			OverflowUnresolved: outcome.State == guardrail.StateFailed,
			EmptySections:      outcome.Selection.EmptySections(prof),
		}
		detail := scoring.Score(mapped, flags, o.cfg.Scoring)

		result.Optimizer.Iterations = append(result.Optimizer.Iterations, types.Iteration{
			Number:      i,
			ScoreBefore: scoreBefore,
			ScoreAfter:  detail.Score,
			Changes:     outcome.Changes,
		})
		result.FinalScore = detail.Score
		result.ScoreDetail = detail
		result.RenderAttempts = outcome.Attempts
		if outcome.State == guardrail.StateAccepted {
			result.DocumentBytes = outcome.PDF
		}
		if i == 1 || detail.Score > bestDetail.Score {
			bestDetail = detail
		}

		improvement := detail.Score - scoreBefore
		scoreBefore = detail.Score
		// The guardrail's final budget seeds the next iteration, so the
		// whole candidate pool is re-ranked at the discovered budget
		// instead of keeping the greedy tail drops.
		budget = outcome.Selection.Budget

		switch {
		case outcome.State == guardrail.StateFailed:
			result.TerminalState = types.TerminalFailed
			// A later iteration's failure must not discard an earlier
			// accepted result: report the best score seen, which matches the
			// document kept from the accepted iteration.
			result.FinalScore = bestDetail.Score
			result.ScoreDetail = bestDetail
		case i == 1 && outcome.Attempts == 1:
			// First selection fit on the first render; nothing to improve.
			result.TerminalState = types.TerminalAccepted
		case i > 1 && improvement <= o.cfg.Epsilon:
			result.TerminalState = types.TerminalConverged
		case outcome.Attempts == 1 && i > 1:
			// Deterministic pipeline and an unchanged selection: another
			// pass would reproduce this exact result.
			result.TerminalState = types.TerminalConverged
		case i == o.cfg.MaxIterations:
			result.TerminalState = types.TerminalMaxIterations
		}
		if result.TerminalState != "" {
			break
		}
	}

	o.persist(result)
	return result, nil
}

// Score runs extraction, mapping, and scoring without selecting content or
// rendering. It reports what the profile covers against the job as-is.
func (o *Optimizer) Score(ctx context.Context, profileName string, job types.JobDescription) (*types.ATSScoreResult, error) {
	if strings.TrimSpace(job.RawText) == "" {
		return nil, &InvalidJobDescriptionError{Message: "job description text is empty"}
	}

	prof, err := o.loader.Load(ctx, profileName)
	if err != nil {
		return nil, err
	}

	keywords, err := o.extractor.Extract(ctx, job)
	if err != nil {
		return nil, err
	}

	mapper := mapping.NewMapper(o.provider, o.cfg.SimilarityThreshold, o.cfg.SimilarityMargin)
	mapped, err := mapper.Map(ctx, keywords, prof)
	if err != nil {
		return nil, err
	}

	detail := scoring.Score(mapped, scoring.Flags{}, o.cfg.Scoring)
	return &detail, nil
}

// persist saves run artifacts, logging failures without failing the run.
func (o *Optimizer) persist(result *types.RunResult) {
	if o.store == nil {
		return
	}
	if len(result.DocumentBytes) > 0 {
		path, err := o.store.SavePDF(result.RunID, result.DocumentBytes)
		if err != nil {
			log.Printf("failed to save pdf artifact for run %s: %v", result.RunID, err)
		} else {
			result.DocumentPath = path
		}
	}
	if _, err := o.store.SaveAudit(result.RunID, result); err != nil {
		log.Printf("failed to save audit record for run %s: %v", result.RunID, err)
	}
}
