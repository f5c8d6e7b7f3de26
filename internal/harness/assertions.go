package harness

import "fmt"

// CheckExpect compares a trace event with a case's expectations and
// returns one message per mismatch.
func CheckExpect(event TraceEvent, expect Expect) []string {
	var errs []string

	if expect.Error != "" {
		if event.Error != expect.Error {
			errs = append(errs, fmt.Sprintf("expected error %s, got %s", expect.Error, describeOutcome(event)))
		}
		return errs
	}

	if event.Error != "" {
		return append(errs, fmt.Sprintf("unexpected error: %s", event.Message))
	}

	if expect.Decimal != nil && event.Decimal != *expect.Decimal {
		errs = append(errs, fmt.Sprintf("expected decimal %d, got %d", *expect.Decimal, event.Decimal))
	}
	if expect.Kibenian != nil && event.Kibenian != *expect.Kibenian {
		errs = append(errs, fmt.Sprintf("expected kibenian %q, got %q", *expect.Kibenian, event.Kibenian))
	}
	if expect.Canonical != nil && canonicalOf(event) != *expect.Canonical {
		errs = append(errs, fmt.Sprintf("expected canonical %q, got %q", *expect.Canonical, canonicalOf(event)))
	}
	return errs
}

// canonicalOf returns the canonical numeral recorded by an event.
func canonicalOf(event TraceEvent) string {
	if event.Canonical != "" {
		return event.Canonical
	}
	return event.Kibenian
}

func describeOutcome(event TraceEvent) string {
	if event.Error != "" {
		return event.Error
	}
	return fmt.Sprintf("success (decimal=%d, kibenian=%q)", event.Decimal, event.Kibenian)
}
