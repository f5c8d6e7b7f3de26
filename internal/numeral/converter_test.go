package numeral

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToKibenian_SingleGlyphs(t *testing.T) {
	tests := map[string]string{
		"1":  "I",
		"5":  "V",
		"10": "X",
		"50": "L",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			c, err := New(input)
			require.NoError(t, err)
			assert.Equal(t, Decimal, c.Representation())

			got, err := c.ToKibenian()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestKibenianToDecimal_SingleGlyphs(t *testing.T) {
	tests := map[string]int{
		"I": 1,
		"V": 5,
		"X": 10,
		"L": 50,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			c, err := New(input)
			require.NoError(t, err)
			assert.Equal(t, Kibenian, c.Representation())

			got, err := c.ToDecimal()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestConverter_Examples(t *testing.T) {
	tests := []struct {
		decimal  int
		kibenian string
	}{
		{42, "XXXXII"},
		{59, "LVIIII"},
		{60, "I_"},
		{76, "I_XVI"},
		{3600, "I__"},
		{3601, "I__I"},
		{3670, "I_I_X"},
		{7276, "II_I_XVI"},
		{215999, "LVIIII_LVIIII_LVIIII"},
	}

	for _, tt := range tests {
		t.Run(tt.kibenian, func(t *testing.T) {
			c, err := New(fmt.Sprint(tt.decimal))
			require.NoError(t, err)
			k, err := c.ToKibenian()
			require.NoError(t, err)
			assert.Equal(t, tt.kibenian, k)

			c, err = New(tt.kibenian)
			require.NoError(t, err)
			d, err := c.ToDecimal()
			require.NoError(t, err)
			assert.Equal(t, tt.decimal, d)
		})
	}
}

func TestConverter_SameRepresentation(t *testing.T) {
	c, err := New("76")
	require.NoError(t, err)
	d, err := c.ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, 76, d)

	c, err = New("I_XVI")
	require.NoError(t, err)
	k, err := c.ToKibenian()
	require.NoError(t, err)
	assert.Equal(t, "I_XVI", k)
}

func TestConverter_NonCanonicalInput(t *testing.T) {
	c, err := New("_II")
	require.NoError(t, err)

	k, err := c.ToKibenian()
	require.NoError(t, err)
	assert.Equal(t, "_II", k, "kibenian input is returned as given")

	canon, err := c.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "II", canon)

	c, err = New("LX")
	require.NoError(t, err)
	canon, err = c.Canonical()
	require.NoError(t, err)
	assert.Equal(t, "I_", canon)
}

func TestConverter_ConstructionErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"0", ErrKindOutOfRange},
		{"-10", ErrKindOutOfRange},
		{"-0", ErrKindOutOfRange},
		{"216000", ErrKindOutOfRange},
		{"99999999999999999999999", ErrKindOutOfRange},
		{"0342", ErrKindMalformed},
		{"00", ErrKindMalformed},
		{"123.45", ErrKindMalformed},
		{"12.", ErrKindMalformed},
		{".5", ErrKindMalformed},
		{"xXI", ErrKindMalformed},
		{"xi", ErrKindMalformed},
		{"X I", ErrKindMalformed},
		{" XI", ErrKindMalformed},
		{"XI\n", ErrKindMalformed},
		{"4 2", ErrKindMalformed},
		{"\t42", ErrKindMalformed},
		{"4X", ErrKindMalformed},
		{"XIC", ErrKindMalformed},
		{"", ErrKindMalformed},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			c, err := New(tt.input)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestConverter_DecodeErrorsSurfaceLazily(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"XL", ErrKindMalformed},
		{"I_IX", ErrKindMalformed},
		{"LXI", ErrKindMalformed},
		{"I___", ErrKindMalformed},
		{"_", ErrKindOutOfRange},
		{"LX_LX_LX", ErrKindOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := New(tt.input)
			require.NoError(t, err, "construction only checks the alphabet")

			_, err = c.ToDecimal()
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))

			_, err = c.ToKibenian()
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestConverter_Idempotent(t *testing.T) {
	c, err := New("7276")
	require.NoError(t, err)

	first, err := c.ToKibenian()
	require.NoError(t, err)
	second, err := c.ToKibenian()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	bad, err := New("XL")
	require.NoError(t, err)
	_, err1 := bad.ToDecimal()
	_, err2 := bad.ToDecimal()
	assert.Same(t, err1, err2)
}

func TestConverter_ConcurrentReaders(t *testing.T) {
	c, err := New("II_I_XVI")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.ToDecimal()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 7276, r)
	}
}

func TestErrors_SentinelMatching(t *testing.T) {
	_, err := New("216000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.False(t, errors.Is(err, ErrMalformed))
	assert.True(t, IsOutOfRange(err))

	wrapped := fmt.Errorf("convert: %w", err)
	assert.True(t, errors.Is(wrapped, ErrOutOfRange))
	assert.True(t, IsOutOfRange(wrapped))

	_, err = New("xXI")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.True(t, IsMalformed(err))
	assert.False(t, IsOutOfRange(err))

	assert.False(t, IsMalformed(errors.New("other")))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("other")))
}

func TestErrors_Message(t *testing.T) {
	_, err := Decode("XL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MALFORMED")
	assert.Contains(t, err.Error(), "subgroups must be in order of LXVI")
	assert.Contains(t, err.Error(), `input="XL"`)

	_, err = Decode("LXI")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subgroups cannot exceed 60")
}
