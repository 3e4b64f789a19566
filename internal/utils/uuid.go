package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for stored files and
// upload batches. Version 7 UUIDs sort by creation time, which keeps
// index scans over recent uploads cheap.
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
