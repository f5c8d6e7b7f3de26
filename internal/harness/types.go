package harness

// TraceEvent records the outcome of one scenario case.
type TraceEvent struct {
	Seq            int64  `json:"seq"`
	Input          string `json:"input"`
	Representation string `json:"representation,omitempty"`
	Decimal        int    `json:"decimal,omitempty"`
	Kibenian       string `json:"kibenian,omitempty"`
	Canonical      string `json:"canonical,omitempty"` // set only when it differs from Kibenian
	Error          string `json:"error,omitempty"`     // error kind
	Message        string `json:"message,omitempty"`   // not part of golden snapshots
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// RunID identifies this execution.
	RunID string `json:"run_id"`

	// Pass indicates overall test success.
	// True if all expectations match.
	Pass bool `json:"pass"`

	// Trace contains one event per case, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation failures.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult(runID string) *Result {
	return &Result{
		RunID:  runID,
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an event to the trace.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
