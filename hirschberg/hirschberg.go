// SPDX-License-Identifier: MIT

package hirschberg

import (
	"fmt"

	"github.com/katalvlaran/lvlalign/core"
	"github.com/katalvlaran/lvlalign/nw"
)

// Align returns the optimal global alignment of a against b under p, and
// its score, using linear auxiliary space. opts may be nil (DefaultOptions).
//
// Edge cases:
//   - a empty: row A is len(b) gaps, row B is b, score len(b)·Gap.
//   - b empty: symmetric.
//
// Errors:
//   - core.ErrOverflow      : scores for these lengths may exceed int.
//   - ErrUnknownStrategy    : opts.Strategy is not Recursive or WorkStack.
//
// Complexity: O(n·m) time, O(n+m) memory.
func Align[T comparable](a, b []T, p core.Params, opts *Options) (Result[T], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := core.CheckBounds(p, len(a), len(b)); err != nil {
		return Result[T]{}, fmt.Errorf("Align: %w", err)
	}

	var (
		al  core.Alignment[T]
		err error
	)
	switch o.Strategy {
	case Recursive:
		al, err = divide(a, b, p)
	case WorkStack:
		al, err = divideStack(a, b, p)
	default:
		return Result[T]{}, hirschbergErrorf("Align", int(o.Strategy), ErrUnknownStrategy)
	}
	if err != nil {
		return Result[T]{}, fmt.Errorf("Align: %w", err)
	}

	score, err := core.ScoreAlignment(p, al)
	if err != nil {
		return Result[T]{}, fmt.Errorf("Align: %w", err)
	}

	return Result[T]{Alignment: al, Score: score}, nil
}

// divide aligns a against b recursively; the left fragment always precedes
// the right one in the returned alignment.
func divide[T comparable](a, b []T, p core.Params) (core.Alignment[T], error) {
	if frag, ok, err := leaf(a, b, p); ok || err != nil {
		return frag, err
	}

	mid, cut, _ := split(a, b, p)
	left, err := divide(a[:mid], b[:cut], p)
	if err != nil {
		return core.Alignment[T]{}, err
	}
	right, err := divide(a[mid:], b[cut:], p)
	if err != nil {
		return core.Alignment[T]{}, err
	}
	// left is owned by this frame; extend it in place
	left.A = append(left.A, right.A...)
	left.B = append(left.B, right.B...)

	return left, nil
}

// leaf solves the base cases, in order: a empty, b empty, one side of
// length 1. ok is false when (a, b) must be split further.
func leaf[T comparable](a, b []T, p core.Params) (frag core.Alignment[T], ok bool, err error) {
	switch {
	case len(a) == 0:
		frag = core.Alignment[T]{
			A: make([]core.Element[T], 0, len(b)),
			B: make([]core.Element[T], 0, len(b)),
		}
		for _, s := range b {
			frag.Push(core.Gap[T](), core.Sym(s))
		}

		return frag, true, nil
	case len(b) == 0:
		frag = core.Alignment[T]{
			A: make([]core.Element[T], 0, len(a)),
			B: make([]core.Element[T], 0, len(a)),
		}
		for _, s := range a {
			frag.Push(core.Sym(s), core.Gap[T]())
		}

		return frag, true, nil
	case len(a) == 1 || len(b) == 1:
		frag, err = nw.Align(a, b, p)

		return frag, true, err
	}

	return core.Alignment[T]{}, false, nil
}

// split returns the row split mid = len(a)/2, the column cut where an
// optimal path crosses row mid, and the optimal score of (a, b).
//
// total(j) = L[j] + R[len(b)-j]; the running best starts at j=0 and only a
// strictly larger total replaces it, so the smallest maximising j wins.
func split[T comparable](a, b []T, p core.Params) (mid, cut, best int) {
	mid = len(a) / 2
	scoreL := nw.LastRow(a[:mid], b, p)
	scoreR := nw.LastRowReverse(a[mid:], b, p)

	m := len(b)
	best = scoreL[0] + scoreR[m]
	for j := 1; j <= m; j++ {
		if total := scoreL[j] + scoreR[m-j]; total > best {
			best, cut = total, j
		}
	}

	return mid, cut, best
}
