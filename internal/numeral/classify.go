package numeral

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Representation identifies which notation an input is written in.
type Representation string

const (
	Decimal  Representation = "decimal"
	Kibenian Representation = "kibenian"
)

var (
	decimalPattern    = regexp.MustCompile(`^-?[0-9]+$`)
	fractionalPattern = regexp.MustCompile(`^-?([0-9]+\.[0-9]*|\.[0-9]+)$`)
	kibenianPattern   = regexp.MustCompile(`^[IVXL_]+$`)
)

// Classify reports whether input is a decimal or a Kibenian numeral.
//
// Decimal inputs are fully validated (format and range). Kibenian inputs
// are only checked against the alphabet; structural errors such as glyph
// order or subgroup overflow are reported by Decode.
func Classify(input string) (Representation, error) {
	rep, _, err := classify(input)
	return rep, err
}

// classify returns the representation and, for decimal input, the parsed
// magnitude.
func classify(input string) (Representation, int, error) {
	switch {
	case decimalPattern.MatchString(input):
		n, err := parseDecimal(input)
		if err != nil {
			return "", 0, err
		}
		return Decimal, n, nil

	case fractionalPattern.MatchString(input):
		return "", 0, newMalformed(input, "decimal values must be whole numbers")

	case kibenianPattern.MatchString(input):
		return Kibenian, 0, nil

	case input == "":
		return "", 0, newMalformed(input, "empty input")
	}

	return "", 0, newMalformed(input, "not a decimal or Kibenian numeral")
}

// parseDecimal parses a string already matched by decimalPattern.
func parseDecimal(input string) (int, error) {
	digits := strings.TrimPrefix(input, "-")
	if len(digits) > 1 && digits[0] == '0' {
		return 0, newMalformed(input, "decimal values cannot have leading zeros")
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newOutOfRange(input, "value must be between %d and %d", MinValue, MaxValue)
		}
		return 0, newMalformed(input, "invalid decimal value")
	}
	if n < MinValue || n > MaxValue {
		return 0, newOutOfRange(input, "value must be between %d and %d", MinValue, MaxValue)
	}
	return n, nil
}
