// Package numeral converts values between decimal notation and Kibenian
// numerals.
//
// A Kibenian numeral is a base-60 positional number. Each place (subgroup)
// is written with additive Roman-style glyphs and places are separated by
// an underscore, most significant place first:
//
//	I      = 1
//	XXXXII = 42
//	I_XVI  = 1*60 + 16 = 76
//	I__    = 1*3600 = 3600
//
// Glyph weights are L=50, X=10, V=5, I=1. Within a subgroup glyphs appear
// in non-increasing weight order and no subtractive notation is used.
//
// Supported magnitudes are 1 through 215999 (three places of 59).
//
// # Errors
//
// All failures are *ConversionError values carrying one of two kinds:
//   - OUT_OF_RANGE: the magnitude is outside [1, 215999]
//   - MALFORMED: the input is not a valid decimal or Kibenian numeral
//
// Use errors.Is with ErrOutOfRange / ErrMalformed, or IsOutOfRange and
// IsMalformed, to branch on the kind.
package numeral
