package core

import (
	"pgregory.net/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a seeded pgregory.net/rand generator. It is not safe
// for concurrent use; each goroutine owns its own sampler.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler whose stream is fully determined by seeds
func NewRandomSampler(seeds ...uint64) *RandomSampler {
	return &RandomSampler{random: rand.New(seeds...)}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// ConstantSampler always returns the same value. Useful in tests to force a
// particular branch of a stochastic material.
type ConstantSampler float64

// Get1D returns the constant
func (c ConstantSampler) Get1D() float64 {
	return float64(c)
}

// Get2D returns the constant in both components
func (c ConstantSampler) Get2D() Vec2 {
	return NewVec2(float64(c), float64(c))
}
