// Package chance isolates every random draw the simulation makes behind one
// seedable source so callers can replay a run deterministically.
package chance

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields uniform draws.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n <= 0 returns 0.
	IntN(n int) int
}

// Seeded is a PCG-backed Source. It is safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded with seed. A zero seed draws one from the clock.
func New(seed uint64) *Seeded {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *Seeded) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Sequence replays a fixed list of floats, cycling when exhausted.
// IntN scales the next float into [0, n).
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Range returns an integer in [min, max] inclusive.
func Range(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + src.IntN(max-min+1)
}
