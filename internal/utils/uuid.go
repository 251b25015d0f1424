package utils

import "github.com/google/uuid"

// UUIDGenerator mints identifiers for request tracing. Version 7 UUIDs are
// preferred for their timestamp prefix; the random fallback only fires when
// the system clock or entropy source misbehaves.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
