// Package harness runs conformance scenarios against the numeral converter.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: cross_place
//	description: "Values that carry into higher places"
//	run_id: cross-place-001   # optional
//	cases:
//	  - input: "76"
//	    expect:
//	      kibenian: "I_XVI"
//	  - input: "I_XVI"
//	    expect:
//	      decimal: 76
//	  - input: "_II"
//	    expect:
//	      canonical: "II"
//	  - input: "XL"
//	    expect:
//	      error: MALFORMED
//
// Every case must set at least one expectation. A case without an error
// expectation fails if conversion fails.
//
// # Traces
//
// Running a scenario records one trace event per case, numbered from 1.
// The trace is serialized with canon.Marshal and compared against golden
// files stored in a golden/ directory next to the scenarios:
//
//	testdata/scenarios/cross_place.yaml
//	testdata/scenarios/golden/cross_place.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// or use `kibenian test <dir> --update`.
package harness
