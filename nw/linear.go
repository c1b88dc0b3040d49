// SPDX-License-Identifier: MIT

package nw

import "github.com/katalvlaran/lvlalign/core"

// LastRow returns row len(a) of the Needleman–Wunsch table of a against b:
// out[j] is the optimal score of all of a against b[:j].
//
// Algorithm Outline:
//  1. prev[j] = j·Gap  (empty prefix of a against b[:j]).
//  2. For i = 1..n: curr[0] = i·Gap; fill curr[1..m] from prev and curr;
//     swap(prev, curr).
//  3. Return prev, which now holds row n.
//
// Only two rows of len(b)+1 ints are live at any time.
//
// Complexity: O(len(a)·len(b)) time, O(len(b)) memory.
func LastRow[T comparable](a, b []T, p core.Params) []int {
	return lastRow(a, b, p, false)
}

// LastRowReverse returns LastRow(reverse(a), reverse(b), p) without building
// the reversed sequences: out[j] is the optimal score of all of a against
// the last j symbols of b.
func LastRowReverse[T comparable](a, b []T, p core.Params) []int {
	return lastRow(a, b, p, true)
}

func lastRow[T comparable](a, b []T, p core.Params, reverse bool) []int {
	n, m := len(a), len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j * p.Gap
	}

	for i := 1; i <= n; i++ {
		ai := a[i-1]
		if reverse {
			ai = a[n-i]
		}
		curr[0] = i * p.Gap
		for j := 1; j <= m; j++ {
			bj := b[j-1]
			if reverse {
				bj = b[m-j]
			}
			curr[j] = max(
				prev[j-1]+core.Score(p, ai, bj),
				prev[j]+p.Gap,
				curr[j-1]+p.Gap,
			)
		}
		prev, curr = curr, prev
	}

	return prev
}
