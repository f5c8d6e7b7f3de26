package numeral

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes conversion errors.
type ErrorKind string

const (
	// ErrKindOutOfRange indicates a magnitude outside [MinValue, MaxValue].
	ErrKindOutOfRange ErrorKind = "OUT_OF_RANGE"

	// ErrKindMalformed indicates input that is neither a valid decimal
	// nor a valid Kibenian numeral.
	ErrKindMalformed ErrorKind = "MALFORMED"
)

// Sentinels for errors.Is. Every *ConversionError matches exactly one.
var (
	ErrOutOfRange = errors.New("value out of range")
	ErrMalformed  = errors.New("malformed number")
)

// ConversionError is returned by every failing operation in this package.
type ConversionError struct {
	// Kind identifies the error category.
	Kind ErrorKind

	// Input is the raw string (or formatted magnitude) that was rejected.
	Input string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (input=%q)", e.Kind, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ConversionError) Is(target error) bool {
	switch e.Kind {
	case ErrKindOutOfRange:
		return target == ErrOutOfRange
	case ErrKindMalformed:
		return target == ErrMalformed
	}
	return false
}

// IsOutOfRange returns true if err is an out-of-range conversion error.
// Uses errors.As to handle wrapped errors.
func IsOutOfRange(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind == ErrKindOutOfRange
	}
	return false
}

// IsMalformed returns true if err is a malformed-input conversion error.
// Uses errors.As to handle wrapped errors.
func IsMalformed(err error) bool {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind == ErrKindMalformed
	}
	return false
}

// KindOf returns the kind of a conversion error, or "" if err is not one.
func KindOf(err error) ErrorKind {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

func newOutOfRange(input, format string, args ...any) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindOutOfRange,
		Input:   input,
		Message: fmt.Sprintf(format, args...),
	}
}

func newMalformed(input, format string, args ...any) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindMalformed,
		Input:   input,
		Message: fmt.Sprintf(format, args...),
	}
}
