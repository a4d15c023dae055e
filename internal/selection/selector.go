// Package selection chooses and ranks profile chunks for assembly under a
// character budget approximating one rendered page.
package selection

import (
	"fmt"
	"sort"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

// Default selection configuration values.
const (
	// DefaultBudget is the initial character budget for one page.
	DefaultBudget = 2600
	// DefaultBudgetStep is subtracted from the budget on each overflow
	// reduction.
	DefaultBudgetStep = 250
	// DefaultSectionMinimum guarantees this many chunks per non-empty
	// section before the global budget applies.
	DefaultSectionMinimum = 1
)

// Config carries the selection parameters.
type Config struct {
	Budget         int
	BudgetStep     int
	SectionMinimum int
	CriticalWeight float64
}

// DefaultConfig returns the default selection configuration.
func DefaultConfig() Config {
	return Config{
		Budget:         DefaultBudget,
		BudgetStep:     DefaultBudgetStep,
		SectionMinimum: DefaultSectionMinimum,
	}
}

// rankedChunk is a selection candidate with its computed ranking signals.
type rankedChunk struct {
	selected types.SelectedChunk
	section  string
	order    int
}

// Select builds a SelectionState for the profile under the given budget.
// Chunks rank by: backs a matched keyword, best similarity of its backing
// keywords, recency score, then original order. Each non-empty section gets
// its per-section minimum before the remaining budget is filled greedily in
// global rank order.
func Select(mapping *types.MappingResult, profile *types.Profile, budget int, cfg Config) types.SelectionState {
	if budget <= 0 {
		budget = cfg.Budget
	}
	if budget <= 0 {
		budget = DefaultBudget
	}

	backed := mapping.BackedChunkIDs()
	critical := mapping.CriticalChunkIDs(cfg.CriticalWeight)

	candidates := rankCandidates(profile, backed, critical)

	state := types.SelectionState{Budget: budget}
	for _, name := range sectionNames(profile) {
		state.Sections = append(state.Sections, types.SectionSelection{Section: name})
	}
	sectionAt := make(map[string]int, len(state.Sections))
	for i, sec := range state.Sections {
		sectionAt[sec.Section] = i
	}

	used := 0
	taken := make(map[string]bool, len(candidates))
	cost := func(c rankedChunk) int { return len(c.selected.Chunk.Text) + 2 }

	// Per-section minimum first: the top-ranked chunks of each section are
	// seeded even if the budget is already tight.
	minimum := cfg.SectionMinimum
	if minimum <= 0 {
		minimum = DefaultSectionMinimum
	}
	perSection := make(map[string]int)
	for _, c := range candidates {
		if perSection[c.section] >= minimum {
			continue
		}
		idx := sectionAt[c.section]
		state.Sections[idx].Chunks = append(state.Sections[idx].Chunks, c.selected)
		taken[c.selected.Chunk.ID] = true
		perSection[c.section]++
		used += cost(c)
	}

	// Fill the remaining budget in global rank order.
	for _, c := range candidates {
		if taken[c.selected.Chunk.ID] {
			continue
		}
		if used+cost(c) > budget {
			continue
		}
		idx := sectionAt[c.section]
		state.Sections[idx].Chunks = append(state.Sections[idx].Chunks, c.selected)
		taken[c.selected.Chunk.ID] = true
		used += cost(c)
	}

	return state
}

// Reduce builds a new SelectionState with the budget lowered by step,
// dropping the lowest-ranked selected chunks until the selection fits.
// Chunks backing critical keywords are dropped only when nothing else
// remains, and per-section minimums are respected while any section still
// holds more than its minimum. The returned change descriptions feed the
// iteration log.
func Reduce(state types.SelectionState, step int, cfg Config) (types.SelectionState, []string) {
	if step <= 0 {
		step = cfg.BudgetStep
	}
	if step <= 0 {
		step = DefaultBudgetStep
	}

	next := state.Clone()
	next.Budget = state.Budget - step
	if next.Budget < 0 {
		next.Budget = 0
	}
	changes := []string{fmt.Sprintf("reduced content budget by %d to %d chars", step, next.Budget)}

	minimum := cfg.SectionMinimum
	if minimum <= 0 {
		minimum = DefaultSectionMinimum
	}

	for next.TotalChars() > next.Budget {
		victim := pickVictim(&next, minimum)
		if victim == nil {
			break
		}
		changes = append(changes, fmt.Sprintf("dropped %s chunk %s", victim.section, victim.selected.Chunk.ID))
	}

	return next, changes
}

// pickVictim removes and returns the lowest-ranked droppable chunk, or nil
// when nothing can be dropped. Non-critical chunks from sections above
// their minimum go first, then non-critical chunks at the minimum, then
// critical ones.
func pickVictim(state *types.SelectionState, minimum int) *rankedChunk {
	type candidate struct {
		sectionIdx, chunkIdx int
		aboveMinimum         bool
	}

	var best *candidate
	var bestChunk types.SelectedChunk
	better := func(a types.SelectedChunk, aAbove bool, b types.SelectedChunk, bAbove bool) bool {
		// Prefer dropping non-critical before critical, then sections above
		// minimum, then the weaker ranking signals.
		if a.Critical != b.Critical {
			return !a.Critical
		}
		if aAbove != bAbove {
			return aAbove
		}
		if a.Backed != b.Backed {
			return !a.Backed
		}
		if a.BestSimilarity != b.BestSimilarity {
			return a.BestSimilarity < b.BestSimilarity
		}
		return a.Chunk.RecencyScore < b.Chunk.RecencyScore
	}

	for si := range state.Sections {
		sec := &state.Sections[si]
		above := len(sec.Chunks) > minimum
		if len(sec.Chunks) == 0 {
			continue
		}
		// Within a section the last chunk is the lowest ranked.
		ci := len(sec.Chunks) - 1
		ch := sec.Chunks[ci]
		if best == nil || better(ch, above, bestChunk, best.aboveMinimum) {
			best = &candidate{sectionIdx: si, chunkIdx: ci, aboveMinimum: above}
			bestChunk = ch
		}
	}

	if best == nil {
		return nil
	}

	sec := &state.Sections[best.sectionIdx]
	victim := &rankedChunk{selected: sec.Chunks[best.chunkIdx], section: sec.Section}
	sec.Chunks = sec.Chunks[:best.chunkIdx]
	return victim
}

// rankCandidates orders every profile chunk by the selection ranking.
func rankCandidates(profile *types.Profile, backed map[string]float64, critical map[string]bool) []rankedChunk {
	var candidates []rankedChunk
	order := 0
	for _, section := range profile.Sections {
		for _, chunk := range section.Chunks {
			sim, isBacked := backed[chunk.ID]
			candidates = append(candidates, rankedChunk{
				selected: types.SelectedChunk{
					Chunk:          chunk,
					Backed:         isBacked,
					BestSimilarity: sim,
					Critical:       critical[chunk.ID],
				},
				section: section.Name,
				order:   order,
			})
			order++
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].selected, candidates[j].selected
		if a.Backed != b.Backed {
			return a.Backed
		}
		if a.BestSimilarity != b.BestSimilarity {
			return a.BestSimilarity > b.BestSimilarity
		}
		if a.Chunk.RecencyScore != b.Chunk.RecencyScore {
			return a.Chunk.RecencyScore > b.Chunk.RecencyScore
		}
		return candidates[i].order < candidates[j].order
	})

	return candidates
}

// sectionNames returns the profile's section names in canonical order,
// followed by any non-canonical sections in profile order.
func sectionNames(profile *types.Profile) []string {
	present := make(map[string]bool, len(profile.Sections))
	for _, sec := range profile.Sections {
		present[sec.Name] = true
	}

	var names []string
	for _, name := range types.SectionOrder {
		if present[name] {
			names = append(names, name)
			present[name] = false
		}
	}
	for _, sec := range profile.Sections {
		if present[sec.Name] {
			names = append(names, sec.Name)
			present[sec.Name] = false
		}
	}
	return names
}
