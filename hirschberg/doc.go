// SPDX-License-Identifier: MIT

// Package hirschberg computes optimal global alignments of two symbol
// sequences in linear auxiliary space (Hirschberg, 1975).
//
// 🚀 What is it?
//
//	Needleman–Wunsch needs an (n+1)×(m+1) table to recover an alignment.
//	Hirschberg's divide-and-conquer recovers the same optimum while keeping
//	only O(m) scores live per split:
//
//	  1. mid = len(a)/2 (floor; for odd len(a) the left half is shorter).
//	  2. L = nw.LastRow(a[:mid], b)         : forward scores.
//	     R = nw.LastRowReverse(a[mid:], b)  : backward scores.
//	  3. cut = argmax_j L[j] + R[len(b)-j], smallest j on ties.
//	  4. Align a[:mid] with b[:cut], then a[mid:] with b[cut:], and
//	     concatenate left before right.
//
//	Subproblems with an empty side are filled with gaps; subproblems where
//	one side has a single symbol are solved by nw.Align.
//
// ✨ Determinism
//
//	The split tie-break (smallest cut) and the traceback priority of nw.Align
//	(diagonal > up > left) make the returned alignment unique for given
//	inputs and params. Both strategies below return byte-identical results.
//
// ⚙️ Usage:
//
//	res, err := hirschberg.AlignStrings("TACGCGC", "TCCGA", core.DefaultParams(), nil)
//	a, b := core.FormatAlignment(res.Alignment, '-')
//
//	opts := hirschberg.DefaultOptions()
//	opts.Strategy = hirschberg.WorkStack  // no Go recursion at all
//	res, err = hirschberg.AlignStrings(x, y, p, &opts)
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n+m) for the result plus O(m) scratch per split;
//     recursion depth O(log n).
//
// Every call returns its own fragment; there is no shared accumulator and
// no package state, so independent alignments may run concurrently with
// different Params.
package hirschberg
