package numeral

// Decode parses a Kibenian numeral and returns its magnitude.
//
// The numeral is scanned from the least significant end. Each delimiter
// moves to the next place; at most MaxPlaces places are allowed. Every
// subgroup must list its glyphs in LXVI order and sum to at most 60.
// Empty subgroups are zero places.
func Decode(s string) (int, error) {
	if !kibenianPattern.MatchString(s) {
		if s == "" {
			return 0, newMalformed(s, "empty input")
		}
		return 0, newMalformed(s, "numerals may only contain I, V, X, L and _")
	}

	runes := []rune(s)
	total := 0
	weight := 1
	place := 0
	end := len(runes)

	for i := len(runes) - 1; i >= -1; i-- {
		if i >= 0 && runes[i] != Delimiter {
			continue
		}

		// runes[i+1:end] is the subgroup for the current place.
		v, err := subgroupValue(s, runes[i+1:end])
		if err != nil {
			return 0, err
		}
		total += v * weight

		if i < 0 {
			break
		}
		place++
		if place >= MaxPlaces {
			return 0, newMalformed(s, "numerals cannot have more than %d subgroups", MaxPlaces)
		}
		weight *= Base
		end = i
	}

	if total < MinValue || total > MaxValue {
		return 0, newOutOfRange(s, "value %d must be between %d and %d", total, MinValue, MaxValue)
	}
	return total, nil
}

// subgroupValue sums one subgroup, enforcing glyph order and the cap.
func subgroupValue(numeral string, group []rune) (int, error) {
	sum := 0
	prev := 0
	for _, r := range group {
		rank := glyphRank(r)
		if rank < prev {
			return 0, newMalformed(numeral, "subgroups must be in order of %s", glyphOrder)
		}
		prev = rank

		w, _ := GlyphValue(r)
		sum += w
	}
	if sum > subgroupCap {
		return 0, newMalformed(numeral, "subgroups cannot exceed %d", subgroupCap)
	}
	return sum, nil
}
