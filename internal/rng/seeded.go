package rng

import (
	"math/rand"
)

// Seeded is a deterministic Generator for tests
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Generator backed by math/rand with the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		r: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
