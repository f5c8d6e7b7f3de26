package numeral

import "sync"

// Converter holds a single validated input and converts it on demand.
//
// The input is classified once by New. Each accessor computes its result
// on first use and returns the same value (or error) on later calls.
// A Converter is safe for concurrent use.
type Converter struct {
	input string
	rep   Representation
	value int // magnitude for decimal input

	decOnce sync.Once
	dec     int
	decErr  error

	kibOnce sync.Once
	kib     string
	kibErr  error
}

// New classifies input and returns a Converter for it.
//
// Decimal format and range errors are returned here. Kibenian inputs are
// stored as given; structural errors surface from ToDecimal or ToKibenian.
func New(input string) (*Converter, error) {
	rep, value, err := classify(input)
	if err != nil {
		return nil, err
	}
	return &Converter{input: input, rep: rep, value: value}, nil
}

// Input returns the string the converter was built from.
func (c *Converter) Input() string {
	return c.input
}

// Representation reports how the input was written.
func (c *Converter) Representation() Representation {
	return c.rep
}

// ToDecimal returns the magnitude of the input.
func (c *Converter) ToDecimal() (int, error) {
	c.decOnce.Do(func() {
		if c.rep == Decimal {
			c.dec = c.value
			return
		}
		c.dec, c.decErr = Decode(c.input)
	})
	return c.dec, c.decErr
}

// ToKibenian returns the input as a Kibenian numeral.
//
// Kibenian input is validated by decoding it and returned unchanged,
// even when it is not in canonical form. Use Canonical for that.
func (c *Converter) ToKibenian() (string, error) {
	c.kibOnce.Do(func() {
		if c.rep == Kibenian {
			if _, err := c.ToDecimal(); err != nil {
				c.kibErr = err
				return
			}
			c.kib = c.input
			return
		}
		c.kib, c.kibErr = Encode(c.value)
	})
	return c.kib, c.kibErr
}

// Canonical returns the canonical Kibenian numeral for the input's value.
func (c *Converter) Canonical() (string, error) {
	m, err := c.ToDecimal()
	if err != nil {
		return "", err
	}
	return Encode(m)
}
