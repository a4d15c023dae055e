package types

// TerminalState communicates how a run ended.
type TerminalState string

// Terminal states for a run.
const (
	// TerminalAccepted means the guardrail produced a one-page document on
	// the first optimizer iteration.
	TerminalAccepted TerminalState = "ACCEPTED"
	// TerminalConverged means a later iteration was accepted but the score
	// stopped improving beyond the configured epsilon.
	TerminalConverged TerminalState = "CONVERGED"
	// TerminalMaxIterations means the optimizer hit its iteration cap.
	TerminalMaxIterations TerminalState = "MAX_ITERATIONS"
	// TerminalFailed means the guardrail could not reach one page within
	// the render attempt budget.
	TerminalFailed TerminalState = "FAILED"
)

// Iteration is one append-only log entry of an optimizer pass.
type Iteration struct {
	Number      int      `json:"iteration"`
	ScoreBefore float64  `json:"score_before"`
	ScoreAfter  float64  `json:"score_after"`
	Changes     []string `json:"changes"`
}

// OptimizerTrace is the append-only iteration log of one run.
type OptimizerTrace struct {
	Iterations []Iteration `json:"iterations"`
}

// RunResult is the final outcome of one pipeline run.
type RunResult struct {
	RunID          string         `json:"run_id"`
	FinalScore     float64        `json:"ats_score"`
	RenderAttempts int            `json:"render_attempts"`
	Optimizer      OptimizerTrace `json:"optimizer"`
	Mapping        MappingResult  `json:"mapping"`
	ScoreDetail    ATSScoreResult `json:"score_detail"`
	DocumentBytes  []byte         `json:"-"`
	DocumentPath   string         `json:"document_reference,omitempty"`
	TerminalState  TerminalState  `json:"terminal_state"`
}
