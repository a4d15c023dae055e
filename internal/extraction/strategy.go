// Package extraction derives weighted keyword sets from job descriptions.
//
// Two strategies exist: a deterministic local pattern extractor and a
// remote LLM extractor. Callers should compose them with WithFallback so a
// remote failure can never abort a run.
package extraction

import (
	"context"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// Strategy extracts a deduplicated, weighted keyword set from a job
// description. An empty or unusable job text yields an empty set, never an
// error.
type Strategy interface {
	Extract(ctx context.Context, job types.JobDescription) ([]types.Keyword, error)
	Name() string
}
