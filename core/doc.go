// SPDX-License-Identifier: MIT

// Package core provides the fundamental value types shared by every lvlalign
// algorithm: scoring parameters, aligned elements, alignments, and the
// scoring primitives that every dynamic-programming table consults.
//
// The data model:
//
//   - Params{Match, Mismatch, Gap}: additive scoring model, passed by value
//     into every call that scores anything. There is no package-level state.
//   - Element[T]: one column entry of an aligned row: either a symbol of
//     type T or a gap. The gap is a tag, not a reserved symbol value, so input
//     alphabets may contain any value of T (including '-').
//   - Alignment[T]: two equal-length rows of Elements.
//
// Scoring:
//
//	Score(p, a, b)            // symbol vs symbol: Match or Mismatch
//	ScoreElements(p, x, y)    // element vs element: Gap if either is a gap
//	ScoreAlignment(p, al)     // Σ ScoreElements over all columns
//
// Invariants checked by Alignment.Validate:
//
//   - len(A) == len(B)                      (ErrLengthMismatch)
//   - no column holds a gap in both rows    (ErrDoubleGap)
//   - removing gaps from A (B) yields the original input (ErrReconstruct)
//
// Overflow:
//
//	Every optimal score and every intermediate DP cell is bounded by
//	(n+m)·max(|Match|, |Mismatch|, |Gap|). CheckBounds rejects inputs for
//	which that bound does not fit in an int (ErrOverflow).
//
// Errors are package-level sentinels; branch on them with errors.Is.
package core
