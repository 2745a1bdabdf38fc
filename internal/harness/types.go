package harness

// TraceEvent is one accepted edit as observed by the harness: the edit
// itself plus the text and evaluation state right after it.
type TraceEvent struct {
	Seq       int64  `json:"seq"`
	Op        string `json:"op"`
	Char      string `json:"char,omitempty"` // empty for backspace
	Text      string `json:"text"`
	GateIndex int    `json:"gate_index"`
	Satisfied int    `json:"satisfied"`
	Complete  bool   `json:"complete"`
}

// FinalState is the session state after the last step.
type FinalState struct {
	Text      string `json:"text"`
	GateIndex int    `json:"gate_index"`
	Complete  bool   `json:"complete"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expect clause and the final expectation match.
	Pass bool `json:"pass"`

	// Trace contains every accepted edit in logical clock order.
	Trace []TraceEvent `json:"trace"`

	// Final is the observed end state.
	Final FinalState `json:"final"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result to accumulate into.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []TraceEvent{},
	}
}

// AddError records an expectation failure and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
