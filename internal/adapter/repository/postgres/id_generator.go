package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator produces the ids for accounts, entries, movements and
// receivable movements. ULIDs sort by creation time, which keeps listing
// queries cheap without a second timestamp index.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
