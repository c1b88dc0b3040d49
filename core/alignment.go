// SPDX-License-Identifier: MIT

package core

import "strings"

// DefaultGapRune is the rune used to render gaps in text output.
const DefaultGapRune = '-'

// Validate checks that al is a well-formed global alignment of a against b.
//
// Errors (first failure wins, in this order):
//   - ErrLengthMismatch: rows differ in length.
//   - ErrDoubleGap     : a column is gap/gap.
//   - ErrReconstruct   : row A without gaps is not a, or row B without gaps is not b.
func (al Alignment[T]) Validate(a, b []T) error {
	if len(al.A) != len(al.B) {
		return coreErrorf("Validate", "%d,%d", ErrLengthMismatch, len(al.A), len(al.B))
	}
	for i := range al.A {
		if al.A[i].gap && al.B[i].gap {
			return coreErrorf("Validate", "column %d", ErrDoubleGap, i)
		}
	}
	if !reconstructs(al.A, a) {
		return coreErrorf("Validate", "row %s", ErrReconstruct, "A")
	}
	if !reconstructs(al.B, b) {
		return coreErrorf("Validate", "row %s", ErrReconstruct, "B")
	}

	return nil
}

// reconstructs reports whether the symbols of row, in order, are exactly seq.
func reconstructs[T comparable](row []Element[T], seq []T) bool {
	k := 0
	for _, e := range row {
		if e.gap {
			continue
		}
		if k == len(seq) || e.sym != seq[k] {
			return false
		}
		k++
	}

	return k == len(seq)
}

// Runes splits s into its runes; the element type used for text alignment.
func Runes(s string) []rune {
	return []rune(s)
}

// FormatRunes renders an aligned rune row, writing gap for every gap element.
func FormatRunes(row []Element[rune], gap rune) string {
	var sb strings.Builder
	sb.Grow(len(row))
	for _, e := range row {
		if e.gap {
			sb.WriteRune(gap)
			continue
		}
		sb.WriteRune(e.sym)
	}

	return sb.String()
}

// FormatAlignment renders both rows of a rune alignment.
func FormatAlignment(al Alignment[rune], gap rune) (string, string) {
	return FormatRunes(al.A, gap), FormatRunes(al.B, gap)
}

// ParseRunes is the inverse of FormatRunes: every gap rune becomes a gap
// element. Use it only for rows whose alphabet excludes gap.
func ParseRunes(s string, gap rune) []Element[rune] {
	row := make([]Element[rune], 0, len(s))
	for _, r := range s {
		if r == gap {
			row = append(row, Gap[rune]())
			continue
		}
		row = append(row, Sym(r))
	}

	return row
}
