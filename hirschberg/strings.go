// SPDX-License-Identifier: MIT

package hirschberg

import "github.com/katalvlaran/lvlalign/core"

// AlignStrings aligns the runes of a against the runes of b.
func AlignStrings(a, b string, p core.Params, opts *Options) (Result[rune], error) {
	return Align(core.Runes(a), core.Runes(b), p, opts)
}

// EditDistance returns the Levenshtein distance between a and b together
// with an optimal edit script: in each column a gap in row A is an
// insertion, a gap in row B a deletion, and unequal symbols a substitution.
//
// It aligns under core.LevenshteinParams, where the optimal score is the
// negated distance.
func EditDistance(a, b string) (int, core.Alignment[rune], error) {
	res, err := AlignStrings(a, b, core.LevenshteinParams(), nil)
	if err != nil {
		return 0, core.Alignment[rune]{}, err
	}

	return -res.Score, res.Alignment, nil
}
