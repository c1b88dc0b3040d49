// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"

	"github.com/katalvlaran/lvlalign/core"
)

// Align returns an optimal global alignment of a against b using the full
// score table and a traceback from (n,m) to (0,0).
//
// At each cell (i,j) with i,j > 0 the first move that reproduces the cell
// value is taken:
//  1. diagonal: S[i][j] == S[i-1][j-1] + Score(a[i-1], b[j-1])
//  2. up      : S[i][j] == S[i-1][j] + Gap     (a[i-1] against a gap)
//  3. left    : otherwise                      (a gap against b[j-1])
//
// When one index reaches 0 the remaining symbols of the other sequence are
// emitted against gaps. The fixed priority makes the result unique for given
// inputs and params, not merely score-optimal.
//
// Errors:
//   - core.ErrOverflow if scores for these lengths may exceed int.
//
// Complexity: O(n·m) time and memory; intended for small subproblems.
func Align[T comparable](a, b []T, p core.Params) (core.Alignment[T], error) {
	if err := core.CheckBounds(p, len(a), len(b)); err != nil {
		return core.Alignment[T]{}, fmt.Errorf("Align: %w", err)
	}
	t := fill(a, b, p)

	i, j := len(a), len(b)
	al := core.Alignment[T]{
		A: make([]core.Element[T], 0, i+j),
		B: make([]core.Element[T], 0, i+j),
	}
	gap := core.Gap[T]()
	for i > 0 && j > 0 {
		cur := t.at(i, j)
		switch {
		case cur == t.at(i-1, j-1)+core.Score(p, a[i-1], b[j-1]):
			al.Push(core.Sym(a[i-1]), core.Sym(b[j-1]))
			i--
			j--
		case cur == t.at(i-1, j)+p.Gap:
			al.Push(core.Sym(a[i-1]), gap)
			i--
		default:
			al.Push(gap, core.Sym(b[j-1]))
			j--
		}
	}
	for ; i > 0; i-- {
		al.Push(core.Sym(a[i-1]), gap)
	}
	for ; j > 0; j-- {
		al.Push(gap, core.Sym(b[j-1]))
	}
	// columns were collected from (n,m) backwards
	al.Reverse()

	return al, nil
}
