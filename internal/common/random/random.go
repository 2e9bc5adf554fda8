// Package random provides the injectable random sources used by dice.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/montecarlo/internal/common/random Source

// Source yields uniform floats in [0, 1).
// Implementations are not safe for concurrent use.
type Source interface {
	Float64() float64
}

// Config for a random source
type Config struct {
	// Optional seed for testing; zero draws a seed from crypto/rand
	Seed uint64
}

type pcgSource struct {
	r *rand.Rand
}

// New creates a PCG-backed source
func New(cfg *Config) Source {
	var seed uint64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = NewSeed()
	}

	return &pcgSource{
		r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewSeeded is shorthand for New(&Config{Seed: seed})
func NewSeeded(seed uint64) Source {
	return New(&Config{Seed: seed})
}

// Float64 returns the next float in [0, 1)
func (s *pcgSource) Float64() float64 {
	return s.r.Float64()
}

// NewSeed generates a seed using crypto/rand, falling back to the clock.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint64(b[:])
}
