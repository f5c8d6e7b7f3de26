package numeral

import "strings"

// Delimiter separates base-60 places in a Kibenian numeral.
const Delimiter = '_'

// Glyph order from highest to lowest weight. Subgroups must follow it.
const glyphOrder = "LXVI"

const (
	// Base is the radix of a Kibenian place.
	Base = 60

	// MaxPlaces is the number of places a numeral may have.
	MaxPlaces = 3

	// MinValue and MaxValue bound every representable magnitude.
	MinValue = 1
	MaxValue = Base*Base*Base - 1 // 215999

	// subgroupCap is the largest subgroup sum the decoder accepts.
	// A base-60 digit never exceeds 59; decoding still admits 60.
	subgroupCap = 60
)

type glyph struct {
	symbol rune
	weight int
}

// glyphs is the digit-value table in descending weight order.
var glyphs = [...]glyph{
	{'L', 50},
	{'X', 10},
	{'V', 5},
	{'I', 1},
}

// GlyphValue returns the weight of a Kibenian glyph.
func GlyphValue(r rune) (int, bool) {
	for _, g := range glyphs {
		if g.symbol == r {
			return g.weight, true
		}
	}
	return 0, false
}

// glyphRank returns the position of r in glyphOrder, or -1.
func glyphRank(r rune) int {
	return strings.IndexRune(glyphOrder, r)
}

// renderSubgroup writes v (0-59) as glyphs, highest weight first.
// Zero renders as the empty string.
func renderSubgroup(v int) string {
	var b strings.Builder
	for _, g := range glyphs {
		n := v / g.weight
		v %= g.weight
		for i := 0; i < n; i++ {
			b.WriteRune(g.symbol)
		}
	}
	return b.String()
}
