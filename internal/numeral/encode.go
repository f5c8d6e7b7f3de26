package numeral

import (
	"strconv"
	"strings"
)

// Encode returns the canonical Kibenian numeral for m.
//
// Places are emitted up to the highest non-zero one. A zero place below it
// is written as an empty subgroup, so 3600 encodes as "I__" and 3601 as
// "I__I".
func Encode(m int) (string, error) {
	if m < MinValue || m > MaxValue {
		return "", newOutOfRange(strconv.Itoa(m), "value must be between %d and %d", MinValue, MaxValue)
	}

	// Least significant place first.
	places := make([]string, 0, MaxPlaces)
	for r := m; r > 0; r /= Base {
		places = append(places, renderSubgroup(r%Base))
	}

	// Most significant place leftmost.
	for i, j := 0, len(places)-1; i < j; i, j = i+1, j-1 {
		places[i], places[j] = places[j], places[i]
	}
	return strings.Join(places, string(Delimiter)), nil
}
