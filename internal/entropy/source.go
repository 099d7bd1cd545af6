// Package entropy provides the single pseudo-random source shared by every
// stochastic point of the simulation (candidate picks, event picks, death
// rolls). One seed reproduces one run exactly.
package entropy

import (
	"math/rand"
	"sync"
)

// Source wraps a seeded math/rand generator behind a mutex. The simulation
// itself is single-caller, but observers may probe from other goroutines.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a deterministic source from the seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform float64 in [0, 1).
func (s *Source) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Intn returns a uniform int in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
