package harness

import "github.com/google/uuid"

// RunIDGenerator produces identifiers for scenario runs.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns the same run ID every time.
type FixedGenerator struct {
	id string
}

// NewFixedGenerator creates a generator that always returns id.
func NewFixedGenerator(id string) FixedGenerator {
	return FixedGenerator{id: id}
}

// Generate returns the fixed run ID.
func (g FixedGenerator) Generate() string {
	return g.id
}
