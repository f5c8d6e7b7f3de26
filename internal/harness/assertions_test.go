package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func TestCheckExpect_Match(t *testing.T) {
	event := TraceEvent{Seq: 1, Input: "76", Representation: "decimal", Decimal: 76, Kibenian: "I_XVI"}

	assert.Empty(t, CheckExpect(event, Expect{Kibenian: strPtr("I_XVI")}))
	assert.Empty(t, CheckExpect(event, Expect{Decimal: intPtr(76)}))
	assert.Empty(t, CheckExpect(event, Expect{Canonical: strPtr("I_XVI")}))
}

func TestCheckExpect_Mismatch(t *testing.T) {
	event := TraceEvent{Seq: 1, Input: "76", Decimal: 76, Kibenian: "I_XVI"}

	errs := CheckExpect(event, Expect{Decimal: intPtr(77), Kibenian: strPtr("I_XVII")})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[0], "expected decimal 77, got 76")
	assert.Contains(t, errs[1], `expected kibenian "I_XVII", got "I_XVI"`)
}

func TestCheckExpect_Canonical(t *testing.T) {
	event := TraceEvent{Input: "_II", Decimal: 2, Kibenian: "_II", Canonical: "II"}

	assert.Empty(t, CheckExpect(event, Expect{Canonical: strPtr("II")}))
	errs := CheckExpect(event, Expect{Canonical: strPtr("_II")})
	assert.Len(t, errs, 1)
}

func TestCheckExpect_Errors(t *testing.T) {
	failed := TraceEvent{Input: "XL", Error: "MALFORMED", Message: "MALFORMED: subgroups must be in order of LXVI"}
	ok := TraceEvent{Input: "1", Decimal: 1, Kibenian: "I"}

	assert.Empty(t, CheckExpect(failed, Expect{Error: "MALFORMED"}))

	errs := CheckExpect(failed, Expect{Error: "OUT_OF_RANGE"})
	assert.Equal(t, []string{"expected error OUT_OF_RANGE, got MALFORMED"}, errs)

	errs = CheckExpect(ok, Expect{Error: "MALFORMED"})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "got success")

	errs = CheckExpect(failed, Expect{Decimal: intPtr(1)})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "unexpected error")
	assert.Contains(t, errs[0], "LXVI")
}
