package core

import "math/rand/v2"

// RNG is a seeded random source stored by value inside game state.
// Copying an RNG forks its stream, so a resolver that draws from its own
// copy never disturbs the previous state.
type RNG struct {
	pcg rand.PCG
}

// NewRNG returns a source seeded from seed.
func NewRNG(seed int64) RNG {
	return RNG{pcg: *rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)}
}

// Rand returns a generator drawing from r. Draws advance r.
func (r *RNG) Rand() *rand.Rand {
	return rand.New(&r.pcg)
}

// IntN returns a value in [0, n).
func (r *RNG) IntN(n int) int {
	return r.Rand().IntN(n)
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.Rand().Float64()
}
