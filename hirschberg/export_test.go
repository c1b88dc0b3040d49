// SPDX-License-Identifier: MIT

package hirschberg

import "github.com/katalvlaran/lvlalign/core"

// SplitRunes exposes split to external tests.
func SplitRunes(a, b []rune, p core.Params) (mid, cut, best int) {
	return split(a, b, p)
}
