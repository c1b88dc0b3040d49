// SPDX-License-Identifier: MIT

package seqgen

import "math/rand"

// Option customizes a generator call.
type Option func(*genConfig)

// WithSeed uses a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seqgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithAlphabet draws symbols from the runes of s. Panics on an empty alphabet.
func WithAlphabet(s string) Option {
	if s == "" {
		panic("seqgen: WithAlphabet(\"\")")
	}
	runes := []rune(s)
	return func(c *genConfig) {
		c.alphabet = runes
	}
}

// WithMutationRate sets the per-position mutation probability used by Related.
// Panics unless 0 ≤ p ≤ 1.
func WithMutationRate(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic("seqgen: WithMutationRate out of [0,1]")
	}
	return func(c *genConfig) {
		c.rate = p
	}
}
