package pong

import "math/rand/v2"

// RandomSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a PCG-backed source. A zero seed draws a seed from
// the runtime generator so every match plays differently.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// sign returns +1 or -1 with equal probability.
func sign(rng RandomSource) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}
