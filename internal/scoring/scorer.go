// Package scoring computes the deterministic ATS compatibility score.
package scoring

import (
	"fmt"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// Default scoring configuration values.
const (
	// DefaultCriticalWeight is the keyword weight above which a missing
	// keyword draws a fixed penalty.
	DefaultCriticalWeight = 0.8
	// DefaultCriticalPenalty is deducted per missing critical keyword.
	DefaultCriticalPenalty = 5.0
	// DefaultOverflowPenalty is deducted when page overflow stays
	// unresolved after the render attempt budget.
	DefaultOverflowPenalty = 10.0
	// DefaultEmptySectionPenalty is deducted per empty required section.
	DefaultEmptySectionPenalty = 5.0
)

// Config carries the scoring thresholds and penalty amounts.
type Config struct {
	CriticalWeight      float64
	CriticalPenalty     float64
	OverflowPenalty     float64
	EmptySectionPenalty float64
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() Config {
	return Config{
		CriticalWeight:      DefaultCriticalWeight,
		CriticalPenalty:     DefaultCriticalPenalty,
		OverflowPenalty:     DefaultOverflowPenalty,
		EmptySectionPenalty: DefaultEmptySectionPenalty,
	}
}

// Flags carries per-iteration facts that draw penalties.
type Flags struct {
	// OverflowUnresolved is set when the guardrail exhausted its render
	// attempts without reaching one page.
	OverflowUnresolved bool
	// EmptySections names required sections with no selected content.
	EmptySections []string
}

// Score computes the ATS score for a mapping. The function is pure: the
// same mapping, flags, and config always produce an identical result.
//
//	coverage = sum(weight of matched) / sum(weight of all)   (0 if none)
//	score    = 100*coverage - penalties, clamped to [0, 100]
func Score(mapping *types.MappingResult, flags Flags, cfg Config) types.ATSScoreResult {
	result := types.ATSScoreResult{
		Matched:   mapping.Matched,
		Missing:   mapping.Missing,
		Penalties: []types.Penalty{},
	}

	matchedWeight := 0.0
	for _, entry := range mapping.Matched {
		matchedWeight += entry.Keyword.Weight
	}
	totalWeight := matchedWeight + types.TotalWeight(mapping.Missing)

	coverage := 0.0
	if totalWeight > 0 {
		coverage = matchedWeight / totalWeight
	}

	for _, kw := range mapping.Missing {
		if kw.Weight > cfg.CriticalWeight {
			result.Penalties = append(result.Penalties, types.Penalty{
				Reason: fmt.Sprintf("missing critical keyword %q", kw.Term),
				Amount: cfg.CriticalPenalty,
			})
		}
	}
	if flags.OverflowUnresolved {
		result.Penalties = append(result.Penalties, types.Penalty{
			Reason: "page overflow unresolved after max render attempts",
			Amount: cfg.OverflowPenalty,
		})
	}
	for _, section := range flags.EmptySections {
		result.Penalties = append(result.Penalties, types.Penalty{
			Reason: fmt.Sprintf("required section %q has no content", section),
			Amount: cfg.EmptySectionPenalty,
		})
	}

	score := 100*coverage - result.TotalPenalty()
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.Score = score

	return result
}
