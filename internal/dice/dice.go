// Package dice implements weighted dice with a fixed set of distinct faces.
//
// A Die samples faces with replacement; the probability of a face is its
// weight divided by the sum of all weights at the time of the roll. Weights
// start at 1.0 and are only changed through SetWeight.
package dice

import (
	"cmp"
	"fmt"
	"math"
	"sort"

	"github.com/KirkDiggler/montecarlo/internal/common/random"
	"github.com/KirkDiggler/montecarlo/internal/common/simerr"
)

// DefaultWeight is the weight every face starts with
const DefaultWeight = 1.0

// Face is any ordered value usable as a die face
type Face interface {
	cmp.Ordered
}

// FaceWeight is one row of a die's state table
type FaceWeight[F Face] struct {
	Face   F
	Weight float64
}

// Config for a die
type Config struct {
	// Source overrides the random source; takes precedence over Seed
	Source random.Source

	// Optional seed for testing
	Seed uint64
}

// Die is a weighted die. It is not safe for concurrent use.
type Die[F Face] struct {
	faces   []F
	index   map[F]int
	weights []float64

	// cumulative weights scaled by the largest weight, rebuilt on the first
	// roll after a weight change
	cdf   []float64
	dirty bool

	source random.Source
}

// New creates a die with the given distinct faces, each weighted 1.0
func New[F Face](faces []F, cfg *Config) (*Die[F], error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: at least one face is required", simerr.ErrInvalidFaces)
	}

	index := make(map[F]int, len(faces))
	for i, face := range faces {
		if face != face {
			return nil, fmt.Errorf("%w: face at position %d is not comparable to itself", simerr.ErrInvalidFaces, i)
		}
		if prev, ok := index[face]; ok {
			return nil, fmt.Errorf("%w: face %v repeated at positions %d and %d", simerr.ErrInvalidFaces, face, prev, i)
		}
		index[face] = i
	}

	weights := make([]float64, len(faces))
	for i := range weights {
		weights[i] = DefaultWeight
	}

	var source random.Source
	switch {
	case cfg != nil && cfg.Source != nil:
		source = cfg.Source
	case cfg != nil:
		source = random.New(&random.Config{Seed: cfg.Seed})
	default:
		source = random.New(nil)
	}

	return &Die[F]{
		faces:   append([]F(nil), faces...),
		index:   index,
		weights: weights,
		dirty:   true,
		source:  source,
	}, nil
}

// SetWeight changes the weight of an existing face
func (d *Die[F]) SetWeight(face F, weight float64) error {
	i, ok := d.index[face]
	if !ok {
		return fmt.Errorf("%w: %v", simerr.ErrUnknownFace, face)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v for face %v", simerr.ErrInvalidWeight, weight, face)
	}

	d.weights[i] = weight
	d.dirty = true
	return nil
}

// Weight returns the current weight of a face
func (d *Die[F]) Weight(face F) (float64, error) {
	i, ok := d.index[face]
	if !ok {
		return 0, fmt.Errorf("%w: %v", simerr.ErrUnknownFace, face)
	}
	return d.weights[i], nil
}

// Roll draws times faces with replacement, in draw order
func (d *Die[F]) Roll(times int) ([]F, error) {
	if times <= 0 {
		return nil, fmt.Errorf("%w: roll count must be positive, got %d", simerr.ErrInvalidArgument, times)
	}

	outcomes := make([]F, times)

	// a lone face always comes up, whatever its weight
	if len(d.faces) == 1 {
		for i := range outcomes {
			outcomes[i] = d.faces[0]
		}
		return outcomes, nil
	}

	if d.dirty {
		d.rebuild()
	}
	total := d.cdf[len(d.cdf)-1]
	if total <= 0 {
		return nil, fmt.Errorf("%w: total weight is zero", simerr.ErrInvalidWeight)
	}

	for i := range outcomes {
		outcomes[i] = d.faces[d.pick(d.source.Float64()*total)]
	}
	return outcomes, nil
}

// RollOnce draws a single face
func (d *Die[F]) RollOnce() (F, error) {
	outcomes, err := d.Roll(1)
	if err != nil {
		var zero F
		return zero, err
	}
	return outcomes[0], nil
}

// State returns the face/weight table in face order
func (d *Die[F]) State() []FaceWeight[F] {
	state := make([]FaceWeight[F], len(d.faces))
	for i, face := range d.faces {
		state[i] = FaceWeight[F]{Face: face, Weight: d.weights[i]}
	}
	return state
}

// Faces returns a copy of the faces in construction order
func (d *Die[F]) Faces() []F {
	return append([]F(nil), d.faces...)
}

// Len returns the number of faces
func (d *Die[F]) Len() int {
	return len(d.faces)
}

// rebuild sums weights divided by the largest one, so the total stays within
// len(weights) however large the individual weights are.
func (d *Die[F]) rebuild() {
	if cap(d.cdf) < len(d.weights) {
		d.cdf = make([]float64, len(d.weights))
	}
	d.cdf = d.cdf[:len(d.weights)]

	var peak float64
	for _, w := range d.weights {
		peak = max(peak, w)
	}

	var acc float64
	for i, w := range d.weights {
		if peak > 0 {
			acc += w / peak
		}
		d.cdf[i] = acc
	}
	d.dirty = false
}

// pick returns the first face whose cumulative weight exceeds target.
// Zero-weight faces never satisfy the strict comparison.
func (d *Die[F]) pick(target float64) int {
	i := sort.Search(len(d.cdf), func(i int) bool {
		return d.cdf[i] > target
	})
	if i == len(d.cdf) {
		// rounding pushed target to the total; take the last weighted face
		for i = len(d.cdf) - 1; i > 0 && d.weights[i] == 0; i-- {
		}
	}
	return i
}
