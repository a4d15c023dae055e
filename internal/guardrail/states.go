// Package guardrail enforces the one-page constraint through a bounded
// render/measure/reduce loop.
package guardrail

// State is one node of the guardrail state machine:
//
//	ASSEMBLED -> RENDERING -> MEASURED -> {ACCEPTED, REDUCE, FAILED}
//
// REDUCE loops back to RENDERING after shrinking the content budget.
type State string

// Guardrail states. StateAccepted and StateFailed are terminal.
const (
	StateAssembled State = "ASSEMBLED"
	StateRendering State = "RENDERING"
	StateMeasured  State = "MEASURED"
	StateAccepted  State = "ACCEPTED"
	StateReduce    State = "REDUCE"
	StateFailed    State = "FAILED"
)
