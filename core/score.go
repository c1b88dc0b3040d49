// SPDX-License-Identifier: MIT

package core

import "math"

// Score returns the score of aligning symbol a against symbol b:
// p.Match when they are equal, p.Mismatch otherwise. Symbols are compared
// with == only; no normalisation (case folding, wildcards) is applied.
func Score[T comparable](p Params, a, b T) int {
	if a == b {
		return p.Match
	}

	return p.Mismatch
}

// ScoreElements returns the score of one alignment column.
// A gap on either side scores p.Gap; otherwise it is Score of the symbols.
func ScoreElements[T comparable](p Params, x, y Element[T]) int {
	if x.gap || y.gap {
		return p.Gap
	}

	return Score(p, x.sym, y.sym)
}

// ScoreAlignment sums ScoreElements over every column of al.
//
// Errors:
//   - ErrLengthMismatch if len(al.A) != len(al.B); rows are never truncated.
//   - ErrDoubleGap if some column is gap/gap.
//
// Complexity: O(len(al.A)) time, O(1) space.
func ScoreAlignment[T comparable](p Params, al Alignment[T]) (int, error) {
	if len(al.A) != len(al.B) {
		return 0, coreErrorf("ScoreAlignment", "%d,%d", ErrLengthMismatch, len(al.A), len(al.B))
	}
	total := 0
	for i := range al.A {
		if al.A[i].gap && al.B[i].gap {
			return 0, coreErrorf("ScoreAlignment", "column %d", ErrDoubleGap, i)
		}
		total += ScoreElements(p, al.A[i], al.B[i])
	}

	return total, nil
}

// CheckBounds verifies that aligning sequences of lengths n and m under p
// cannot overflow int. The bound used is (n+m)·max(|Match|,|Mismatch|,|Gap|),
// which dominates every DP cell and every candidate sum.
func CheckBounds(p Params, n, m int) error {
	if n < 0 || m < 0 {
		return coreErrorf("CheckBounds", "%d,%d", ErrNegativeLength, n, m)
	}
	w, ok := p.maxAbs()
	if !ok {
		return coreErrorf("CheckBounds", "%+v", ErrOverflow, p)
	}
	if n > math.MaxInt-m {
		return coreErrorf("CheckBounds", "%d,%d", ErrOverflow, n, m)
	}
	// one extra step of headroom for candidate sums taken before max()
	steps := n + m
	if steps < math.MaxInt {
		steps++
	}
	if w != 0 && steps > math.MaxInt/w {
		return coreErrorf("CheckBounds", "%d,%d", ErrOverflow, n, m)
	}

	return nil
}

// maxAbs returns the largest absolute parameter value; false if one of them
// is math.MinInt and has no int absolute value.
func (p Params) maxAbs() (int, bool) {
	w := 0
	for _, v := range [...]int{p.Match, p.Mismatch, p.Gap} {
		if v == math.MinInt {
			return 0, false
		}
		if v < 0 {
			v = -v
		}
		if v > w {
			w = v
		}
	}

	return w, true
}
