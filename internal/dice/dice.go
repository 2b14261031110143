package dice

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultSides is the number of faces on a standard die
const DefaultSides = 6

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/primedice/internal/dice Roller

// Roller rolls dice
type Roller interface {
	// Roll rolls a standard six-sided die
	Roll() int

	// RollSides rolls a die with the given number of sides
	RollSides(sides int) int
}

// Source is the random source a Rand draws from. It must return a value in [0, n).
type Source interface {
	Intn(n int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64

	// Optional source, takes precedence over Seed
	Source Source
}

// Rand implements Roller on top of a Source. It is safe for concurrent use.
type Rand struct {
	mu     sync.Mutex
	source Source
}

// New creates a new dice roller
func New(cfg *Config) *Rand {
	if cfg != nil && cfg.Source != nil {
		return &Rand{source: cfg.Source}
	}

	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Rand{
		source: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a roll of a six-sided die
func (r *Rand) Roll() int {
	return r.RollSides(DefaultSides)
}

// RollSides generates a random dice roll with the specified number of sides
func (r *Rand) RollSides(sides int) int {
	if sides < 1 {
		sides = DefaultSides
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.source.Intn(sides) + 1
}
