// SPDX-License-Identifier: MIT

// Package report renders a finished alignment as a human-readable text
// artifact: the input sequences, both aligned rows, the total score, the
// optional full score matrix, and the number of alignments generated.
//
// Layout:
//
//	==============================
//	GLOBAL ALIGNMENT (Hirschberg)
//	==============================
//	Sequence A: TACGCGC
//	Sequence B: TCCGA
//	------------------------------
//	Alignment A: TACGCGC
//	Alignment B: T-C-CGA
//
//	Total score: -1
//
//	Score matrix:
//	0	-2	-4	...
//
//	Alignments generated: 1
//
// The input block is written only when both sequences are non-empty, and
// the matrix block only when a matrix is attached.
package report
