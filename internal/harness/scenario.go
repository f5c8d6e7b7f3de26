package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/kibenian/internal/numeral"
)

// Scenario defines a conformance test scenario: a list of inputs and the
// conversions each one must produce.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID is an optional fixed identifier for this run.
	// If empty, Run generates a UUIDv7.
	RunID string `yaml:"run_id,omitempty"`

	// Cases are executed in order.
	Cases []Case `yaml:"cases"`
}

// Case is a single input with its expected conversions.
type Case struct {
	// Input is passed verbatim to numeral.New. Quote it in YAML so numbers
	// and whitespace survive.
	Input *string `yaml:"input"`

	// Expect lists the expected outcome.
	Expect Expect `yaml:"expect"`
}

// Expect specifies the expected outcome of a case. Unset fields are not
// checked.
type Expect struct {
	// Decimal is the expected ToDecimal result.
	Decimal *int `yaml:"decimal,omitempty"`

	// Kibenian is the expected ToKibenian result.
	Kibenian *string `yaml:"kibenian,omitempty"`

	// Canonical is the expected Canonical result.
	Canonical *string `yaml:"canonical,omitempty"`

	// Error is the expected error kind (OUT_OF_RANGE or MALFORMED).
	Error string `yaml:"error,omitempty"`
}

// empty reports whether no expectation is set.
func (e Expect) empty() bool {
	return e.Decimal == nil && e.Kibenian == nil && e.Canonical == nil && e.Error == ""
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Input == nil {
			return fmt.Errorf("case %d: input is required", i)
		}
		if c.Expect.empty() {
			return fmt.Errorf("case %d: expect must set at least one of decimal, kibenian, canonical, error", i)
		}
		switch numeral.ErrorKind(c.Expect.Error) {
		case "", numeral.ErrKindOutOfRange, numeral.ErrKindMalformed:
		default:
			return fmt.Errorf("case %d: unknown error kind %q (must be %s or %s)",
				i, c.Expect.Error, numeral.ErrKindOutOfRange, numeral.ErrKindMalformed)
		}
		if c.Expect.Error != "" && (c.Expect.Decimal != nil || c.Expect.Kibenian != nil || c.Expect.Canonical != nil) {
			return fmt.Errorf("case %d: error cannot be combined with value expectations", i)
		}
	}

	return nil
}
