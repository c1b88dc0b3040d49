// SPDX-License-Identifier: MIT

package core

// Params is the additive scoring model of a single alignment run.
//
// A column of two equal symbols scores Match, two different symbols score
// Mismatch, and a symbol opposite a gap scores Gap. Alignments maximise the
// column sum, so rewards are positive and penalties negative.
//
// Params is a plain value: copy it freely, never share it by pointer.
type Params struct {
	Match    int
	Mismatch int
	Gap      int
}

// Default scoring model used by the examples and the CLI.
const (
	DefaultMatch    = 1
	DefaultMismatch = -1
	DefaultGap      = -2
)

// DefaultParams returns {Match: 1, Mismatch: -1, Gap: -2}.
func DefaultParams() Params {
	return Params{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// LevenshteinParams returns {Match: 0, Mismatch: -1, Gap: -1}.
// Under these parameters the optimal score is the negated Levenshtein
// distance and the alignment is an optimal edit script.
func LevenshteinParams() Params {
	return Params{Match: 0, Mismatch: -1, Gap: -1}
}

// Element is one entry of an aligned row: a symbol or a gap.
// The zero value is the symbol whose value is the zero value of T.
type Element[T comparable] struct {
	sym T
	gap bool
}

// Sym wraps v as a symbol element.
func Sym[T comparable](v T) Element[T] {
	return Element[T]{sym: v}
}

// Gap returns the gap element.
func Gap[T comparable]() Element[T] {
	return Element[T]{gap: true}
}

// IsGap reports whether e is a gap.
func (e Element[T]) IsGap() bool {
	return e.gap
}

// Symbol returns the wrapped symbol and true, or the zero T and false for a gap.
func (e Element[T]) Symbol() (T, bool) {
	if e.gap {
		var zero T
		return zero, false
	}

	return e.sym, true
}

// Alignment is a global alignment of two sequences: row A against row B,
// column by column. Build it with Push/Concat; read it via the exported rows.
type Alignment[T comparable] struct {
	A []Element[T]
	B []Element[T]
}

// Len returns the number of columns (len(A)).
func (al Alignment[T]) Len() int {
	return len(al.A)
}

// Push appends one column.
func (al *Alignment[T]) Push(x, y Element[T]) {
	al.A = append(al.A, x)
	al.B = append(al.B, y)
}

// Concat returns al followed by other. Neither input is modified.
func (al Alignment[T]) Concat(other Alignment[T]) Alignment[T] {
	out := Alignment[T]{
		A: make([]Element[T], 0, len(al.A)+len(other.A)),
		B: make([]Element[T], 0, len(al.B)+len(other.B)),
	}
	out.A = append(append(out.A, al.A...), other.A...)
	out.B = append(append(out.B, al.B...), other.B...)

	return out
}

// Reverse reverses the column order in place.
func (al *Alignment[T]) Reverse() {
	reverseElements(al.A)
	reverseElements(al.B)
}

func reverseElements[T comparable](row []Element[T]) {
	for l, r := 0, len(row)-1; l < r; l, r = l+1, r-1 {
		row[l], row[r] = row[r], row[l]
	}
}
