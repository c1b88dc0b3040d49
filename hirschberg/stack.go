// SPDX-License-Identifier: MIT

package hirschberg

import "github.com/katalvlaran/lvlalign/core"

// subproblem is a pending (a, b) pair of the split tree.
type subproblem[T comparable] struct {
	a, b []T
}

// divideStack walks the same split tree as divide without recursion.
// The right half is pushed before the left half, so halves are popped
// left-first and every leaf fragment is appended in left-to-right order.
func divideStack[T comparable](a, b []T, p core.Params) (core.Alignment[T], error) {
	out := core.Alignment[T]{
		A: make([]core.Element[T], 0, len(a)+len(b)),
		B: make([]core.Element[T], 0, len(a)+len(b)),
	}
	stack := []subproblem[T]{{a: a, b: b}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		frag, ok, err := leaf(top.a, top.b, p)
		if err != nil {
			return core.Alignment[T]{}, err
		}
		if ok {
			out.A = append(out.A, frag.A...)
			out.B = append(out.B, frag.B...)
			continue
		}

		mid, cut, _ := split(top.a, top.b, p)
		stack = append(stack,
			subproblem[T]{a: top.a[mid:], b: top.b[cut:]},
			subproblem[T]{a: top.a[:mid], b: top.b[:cut]},
		)
	}

	return out, nil
}
