package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Each owner keeps its own instance so independent generators never share a stream.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed reports the value the stream was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a uniformly distributed value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Int64 returns a non-negative pseudo-random 63-bit integer.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}

// Signed returns a value uniformly distributed in [-scale, scale).
func (r *RNG) Signed(scale float64) float64 {
	return r.r.Float64()*scale*2 - scale
}
