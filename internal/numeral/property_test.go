package numeral

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_RoundTrip verifies Decode(Encode(m)) == m.
func TestProperty_RoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("decode inverts encode", prop.ForAll(
		func(m int) bool {
			k, err := Encode(m)
			if err != nil {
				return false
			}
			got, err := Decode(k)
			return err == nil && got == m
		},
		gen.IntRange(MinValue, MaxValue),
	))

	properties.Property("converter agrees with encode", prop.ForAll(
		func(m int) bool {
			k, err := Encode(m)
			if err != nil {
				return false
			}
			c, err := New(k)
			if err != nil {
				return false
			}
			canon, err := c.Canonical()
			return err == nil && canon == k
		},
		gen.IntRange(MinValue, MaxValue),
	))

	properties.TestingRun(t)
}

// TestProperty_EncodedShape verifies every encoded numeral has at most
// three places, each in LXVI order.
func TestProperty_EncodedShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("encoded numerals are well formed", prop.ForAll(
		func(m int) bool {
			k, err := Encode(m)
			if err != nil {
				return false
			}
			groups := strings.Split(k, string(Delimiter))
			if len(groups) > MaxPlaces || groups[0] == "" {
				return false
			}
			for _, g := range groups {
				prev := 0
				for _, r := range g {
					rank := glyphRank(r)
					if rank < prev {
						return false
					}
					prev = rank
				}
			}
			return true
		},
		gen.IntRange(MinValue, MaxValue),
	))

	properties.TestingRun(t)
}
