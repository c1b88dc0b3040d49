// SPDX-License-Identifier: MIT

package seqgen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative sequence length.
var ErrBadSize = errors.New("seqgen: invalid size/length")

// Random returns n symbols drawn uniformly from the configured alphabet.
//
// Complexity: O(n) time and memory.
func Random(n int, opts ...Option) ([]rune, error) {
	if n < 0 {
		return nil, fmt.Errorf("Random(%d): %w", n, ErrBadSize)
	}
	cfg := newGenConfig(opts...)

	return draw(cfg, n), nil
}

// Related returns a random sequence a of length n and a mutated copy b.
//
// Each position of a is, with probability rate, mutated by one of three
// equally likely edits: substitution (a different symbol when the alphabet
// allows), deletion, or insertion of a random symbol after it.
// With rate 0, b equals a.
func Related(n int, opts ...Option) (a, b []rune, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("Related(%d): %w", n, ErrBadSize)
	}
	cfg := newGenConfig(opts...)
	a = draw(cfg, n)
	b = make([]rune, 0, n+n/8)
	for _, s := range a {
		if cfg.rng.Float64() >= cfg.rate {
			b = append(b, s)
			continue
		}
		switch cfg.rng.Intn(3) {
		case 0: // substitution
			b = append(b, substitute(cfg, s))
		case 1: // deletion
		default: // insertion
			b = append(b, s, pick(cfg))
		}
	}

	return a, b, nil
}

func draw(cfg genConfig, n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = pick(cfg)
	}

	return out
}

func pick(cfg genConfig) rune {
	return cfg.alphabet[cfg.rng.Intn(len(cfg.alphabet))]
}

// substitute returns a symbol different from s, or s for one-letter alphabets.
func substitute(cfg genConfig, s rune) rune {
	if len(cfg.alphabet) < 2 {
		return s
	}
	for {
		if r := pick(cfg); r != s {
			return r
		}
	}
}
