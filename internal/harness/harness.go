package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/kibenian/internal/numeral"
)

// Harness executes scenarios.
//
// Sequence numbers are logical: the first case of every run is seq 1,
// so traces are identical across runs and suitable for golden files.
type Harness struct {
	logger *slog.Logger
	runIDs RunIDGenerator
	seq    int64
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithRunIDGenerator overrides run ID generation for scenarios that do
// not set run_id.
func WithRunIDGenerator(gen RunIDGenerator) Option {
	return func(h *Harness) {
		h.runIDs = gen
	}
}

// Run executes a scenario and returns the result.
//
// Execution never aborts early: every case is converted and recorded,
// and each failed expectation is added to Result.Errors.
func Run(scenario *Scenario, opts ...Option) *Result {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		runIDs: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(h)
	}

	runID := scenario.RunID
	if runID == "" {
		runID = h.runIDs.Generate()
	}

	result := NewResult(runID)
	h.logger.Info("scenario starting", "scenario", scenario.Name, "run_id", runID, "cases", len(scenario.Cases))

	for i, c := range scenario.Cases {
		event := h.convert(*c.Input)
		result.AddTrace(event)

		for _, msg := range CheckExpect(event, c.Expect) {
			result.AddError(fmt.Sprintf("case %d (%q): %s", i, event.Input, msg))
		}

		h.logger.Debug("case converted",
			"seq", event.Seq,
			"input", event.Input,
			"representation", event.Representation,
			"decimal", event.Decimal,
			"kibenian", event.Kibenian,
			"error", event.Error,
		)
	}

	h.logger.Info("scenario finished", "scenario", scenario.Name, "pass", result.Pass, "errors", len(result.Errors))
	return result
}

// convert runs one input through the converter and records what happened.
func (h *Harness) convert(input string) TraceEvent {
	h.seq++
	event := TraceEvent{Seq: h.seq, Input: input}

	c, err := numeral.New(input)
	if err != nil {
		return withError(event, err)
	}
	event.Representation = string(c.Representation())

	dec, err := c.ToDecimal()
	if err != nil {
		return withError(event, err)
	}
	event.Decimal = dec

	kib, err := c.ToKibenian()
	if err != nil {
		return withError(event, err)
	}
	event.Kibenian = kib

	canonical, err := c.Canonical()
	if err != nil {
		return withError(event, err)
	}
	if canonical != kib {
		event.Canonical = canonical
	}
	return event
}

func withError(event TraceEvent, err error) TraceEvent {
	event.Error = string(numeral.KindOf(err))
	event.Message = err.Error()
	return event
}
