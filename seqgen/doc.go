// SPDX-License-Identifier: MIT

// Package seqgen produces deterministic random symbol sequences for tests,
// benchmarks, demos and fixtures.
//
// Two generators:
//
//	Random(n, opts...)  : n symbols drawn uniformly from the alphabet.
//	Related(n, opts...) : a random sequence a and a mutated copy b, where each
//	                       position of a is substituted, deleted, or followed
//	                       by an insertion with total probability MutationRate.
//
// Options follow the functional-option pattern:
//
//	WithSeed(s)         : reproducible stream (default seed 1).
//	WithRand(r)         : share one *rand.Rand across several calls.
//	WithAlphabet(s)     : symbols to draw from (default DNA "ACGT").
//	WithMutationRate(p) : p ∈ [0,1] for Related (default 0.1).
//
// Option constructors panic on meaningless values (nil RNG, empty alphabet,
// rate outside [0,1]); generators themselves never panic and report invalid
// sizes with ErrBadSize.
package seqgen
