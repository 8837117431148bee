package dice

import (
	"math/rand"
	"sync"
)

// Roller produces a single die result in [1, sides]
type Roller interface {
	Roll(sides int) int
}

// RandomRoller implements Roller with a seedable pseudo-random source.
// Safe for concurrent use.
type RandomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRoller creates a roller seeded from the global source
func NewRoller() *RandomRoller {
	return &RandomRoller{
		rng: rand.New(rand.NewSource(rand.Int63())), // #nosec G404 // game dice, not crypto
	}
}

// NewSeededRoller creates a roller with a fixed seed for reproducible runs
func NewSeededRoller(seed int64) *RandomRoller {
	return &RandomRoller{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 // game dice, not crypto
	}
}

// Roll returns a uniform integer in [1, sides]
func (r *RandomRoller) Roll(sides int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(sides) + 1
}
