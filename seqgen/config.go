// SPDX-License-Identifier: MIT

package seqgen

import "math/rand"

// Predefined alphabets.
const (
	DNA     = "ACGT"
	RNA     = "ACGU"
	Protein = "ACDEFGHIKLMNPQRSTVWY"
)

const (
	defaultSeed         = int64(1)
	defaultAlphabet     = DNA
	defaultMutationRate = 0.1
)

// genConfig aggregates all generator knobs; passed by value once resolved.
type genConfig struct {
	rng      *rand.Rand
	alphabet []rune
	rate     float64
}

// newGenConfig applies opts in order over deterministic defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		alphabet: []rune(defaultAlphabet),
		rate:     defaultMutationRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}
