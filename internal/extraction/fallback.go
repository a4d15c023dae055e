package extraction

import (
	"context"
	"log"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// Fallback composes a primary strategy with a deterministic local fallback.
// Any primary failure is logged and recovered; Extract never returns the
// primary's error.
type Fallback struct {
	primary  Strategy
	fallback Strategy
}

// WithFallback wraps primary so that fallback handles every failure. A nil
// primary means the fallback runs directly.
func WithFallback(primary, fallback Strategy) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

// Name identifies the strategy in logs and audit output.
func (f *Fallback) Name() string {
	if f.primary == nil {
		return f.fallback.Name()
	}
	return f.primary.Name() + "+" + f.fallback.Name()
}

// Extract tries the primary strategy, then falls back locally. The combined
// result merges primary keywords with local ones so explicit terms from the
// job text are never lost, deduplicated case-insensitively.
func (f *Fallback) Extract(ctx context.Context, job types.JobDescription) ([]types.Keyword, error) {
	local, err := f.fallback.Extract(ctx, job)
	if err != nil {
		// The local extractor is contractually infallible; treat a violation
		// as an empty set rather than aborting the run.
		log.Printf("local keyword extraction failed: %v", err)
		local = []types.Keyword{}
	}

	if f.primary == nil {
		return local, nil
	}

	remote, err := f.primary.Extract(ctx, job)
	if err != nil {
		log.Printf("remote keyword extraction failed, using local extractor: %v", err)
		return local, nil
	}

	return types.DedupeKeywords(append(remote, local...)), nil
}
