// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"

	"github.com/katalvlaran/lvlalign/core"
)

// BuildMatrix builds the complete (len(a)+1)×(len(b)+1) score table.
//
// It is the quadratic reference: Final() is the optimal global score, which
// any linear-space alignment of the same inputs must reproduce. It is meant
// for reporting and validation, never as a step of a linear-space algorithm.
//
// Errors:
//   - core.ErrOverflow if scores for these lengths may exceed int.
//
// Complexity: O(n·m) time and memory.
func BuildMatrix[T comparable](a, b []T, p core.Params) (*Matrix, error) {
	if err := core.CheckBounds(p, len(a), len(b)); err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w", err)
	}

	return fill(a, b, p), nil
}

// fill computes every cell of the table for a against b.
func fill[T comparable](a, b []T, p core.Params) *Matrix {
	n, m := len(a), len(b)
	t := newMatrix(n+1, m+1)
	for i := 0; i <= n; i++ {
		t.set(i, 0, i*p.Gap)
	}
	for j := 0; j <= m; j++ {
		t.set(0, j, j*p.Gap)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			t.set(i, j, max(
				t.at(i-1, j-1)+core.Score(p, a[i-1], b[j-1]),
				t.at(i-1, j)+p.Gap,
				t.at(i, j-1)+p.Gap,
			))
		}
	}

	return t
}
