// SPDX-License-Identifier: MIT

package hirschberg

import (
	"strings"

	"github.com/katalvlaran/lvlalign/core"
)

// Strategy selects how the split tree is walked.
//
//   - Recursive: plain recursion, depth O(log n).
//   - WorkStack: explicit LIFO stack of pending subproblems; for callers
//     that want to avoid Go recursion entirely. Same output as Recursive.
type Strategy int

const (
	// Recursive walks the split tree with direct recursion.
	Recursive Strategy = iota

	// WorkStack walks the split tree with an explicit stack.
	WorkStack
)

var strategyNames = [...]string{Recursive: "recursive", WorkStack: "stack"}

// String returns "recursive" or "stack".
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}

	return strategyNames[s]
}

// ParseStrategy is the inverse of Strategy.String (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}

	return 0, hirschbergErrorf("ParseStrategy", name, ErrUnknownStrategy)
}

// Options configures Align.
//
// Example:
//
//	opts := hirschberg.DefaultOptions()
//	opts.Strategy = hirschberg.WorkStack
//	res, err := hirschberg.Align(a, b, core.DefaultParams(), &opts)
type Options struct {
	Strategy Strategy
}

// DefaultOptions returns Options{Strategy: Recursive}.
func DefaultOptions() Options {
	return Options{Strategy: Recursive}
}

// Result is a finished global alignment and its total score.
type Result[T comparable] struct {
	Alignment core.Alignment[T]
	Score     int
}
