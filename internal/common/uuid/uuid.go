// Package uuid hands out identifiers for games.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/montecarlo/internal/common/uuid Generator

// Generator produces unique identifiers
type Generator interface {
	NewID() string
}

// RandomGenerator issues version 4 UUIDs
type RandomGenerator struct{}

// New returns a generator of random UUIDs
func New() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns a new random UUID string
func (g *RandomGenerator) NewID() string {
	return uuid.NewString()
}
