// SPDX-License-Identifier: MIT

// Package nw implements the Needleman–Wunsch global alignment recurrence in
// its two storage shapes, plus the quadratic traceback solver.
//
// 🚀 The recurrence
//
//	S[i][0] = i·Gap,  S[0][j] = j·Gap
//	S[i][j] = max( S[i-1][j-1] + Score(a[i-1], b[j-1]),   // diagonal
//	               S[i-1][j]   + Gap,                      // up   (gap in b)
//	               S[i][j-1]   + Gap )                     // left (gap in a)
//
// S[i][j] is the optimal score of a[:i] against b[:j].
//
// ✨ Entry points
//
//   - LastRow       : row S[len(a)][*] in O(len(b)) memory (two rolling rows).
//   - LastRowReverse: the same row for reverse(a) against reverse(b), read
//     back-to-front in place; no reversed copies are allocated.
//   - BuildMatrix   : the full (n+1)×(m+1) table, for reporting and validation.
//   - Align         : full table + traceback. Ties are broken in the fixed
//     order diagonal > up > left, so the alignment returned is unique.
//
// Performance:
//
//   - Time:   O(n·m) for every entry point
//   - Memory: O(m) (LastRow, LastRowReverse) or O(n·m) (BuildMatrix, Align)
//
// Hirschberg's linear-space algorithm (package hirschberg) is built from
// LastRow/LastRowReverse and calls Align only on subproblems where one side
// has a single symbol.
package nw
