package types

// Penalty is a single deduction applied to the ATS score.
type Penalty struct {
	Reason string  `json:"reason"`
	Amount float64 `json:"amount"`
}

// ATSScoreResult is the deterministic scoring output for one mapping.
type ATSScoreResult struct {
	Score     float64        `json:"score"`
	Matched   []MappingEntry `json:"matched"`
	Missing   []Keyword      `json:"missing"`
	Penalties []Penalty      `json:"penalties"`
}

// TotalPenalty sums all penalty amounts.
func (r *ATSScoreResult) TotalPenalty() float64 {
	total := 0.0
	for _, p := range r.Penalties {
		total += p.Amount
	}
	return total
}
