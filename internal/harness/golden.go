package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/kibenian/internal/canon"
)

// GoldenDir is where golden files live relative to a scenarios directory.
const GoldenDir = "golden"

// Snapshot serializes a result's trace as canonical JSON.
//
// Run IDs and error messages are excluded so snapshots only change when
// conversion behavior changes.
func Snapshot(scenarioName string, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		m := map[string]any{
			"seq":   event.Seq,
			"input": event.Input,
		}
		if event.Representation != "" {
			m["representation"] = event.Representation
		}
		if event.Decimal != 0 {
			m["decimal"] = event.Decimal
		}
		if event.Kibenian != "" {
			m["kibenian"] = event.Kibenian
		}
		if event.Canonical != "" {
			m["canonical"] = event.Canonical
		}
		if event.Error != "" {
			m["error"] = event.Error
		}
		trace[i] = m
	}

	return canon.Marshal(map[string]any{
		"scenario_name": scenarioName,
		"trace":         trace,
	})
}

// RunWithGolden executes a scenario and compares the trace against
// fixtureDir/{scenario.Name}.golden.
//
// To regenerate golden files, run the test with -update.
func RunWithGolden(t *testing.T, fixtureDir string, scenario *Scenario, opts ...Option) *Result {
	t.Helper()

	result := Run(scenario, opts...)
	AssertGolden(t, fixtureDir, scenario.Name, result)
	return result
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, fixtureDir, scenarioName string, result *Result) {
	t.Helper()

	data, err := Snapshot(scenarioName, result)
	if err != nil {
		t.Fatalf("snapshot %s: %v", scenarioName, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(fixtureDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
}
