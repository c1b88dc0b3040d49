// SPDX-License-Identifier: MIT

package hirschberg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlalign/core"
	"github.com/katalvlaran/lvlalign/hirschberg"
	"github.com/katalvlaran/lvlalign/nw"
	"github.com/katalvlaran/lvlalign/seqgen"
)

// Sizes and seeds for the randomized cross-checks.
const (
	propertyRuns   = 150
	propertyMaxLen = 40
	propertySeed   = 5150
)

var unitParams = core.Params{Match: 1, Mismatch: -1, Gap: -1}

// AlignSuite pins concrete alignments and checks the linear-space result
// against the quadratic reference table.
type AlignSuite struct {
	suite.Suite
	p core.Params
}

func (s *AlignSuite) SetupTest() {
	s.p = core.DefaultParams()
}

// alignBoth runs both strategies, requires identical output, and returns the
// rendered rows and score.
func (s *AlignSuite) alignBoth(a, b string, p core.Params) (string, string, int) {
	rec, err := hirschberg.AlignStrings(a, b, p, nil)
	require.NoError(s.T(), err)

	opts := hirschberg.DefaultOptions()
	opts.Strategy = hirschberg.WorkStack
	stk, err := hirschberg.AlignStrings(a, b, p, &opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), rec, stk, "strategies must agree for %q/%q", a, b)

	require.NoError(s.T(), rec.Alignment.Validate([]rune(a), []rune(b)))
	gotA, gotB := core.FormatAlignment(rec.Alignment, core.DefaultGapRune)

	return gotA, gotB, rec.Score
}

// TestGolden pins exact alignments; ties must resolve the same way every run.
func (s *AlignSuite) TestGolden() {
	cases := []struct {
		a, b         string
		p            core.Params
		wantA, wantB string
		wantScore    int
	}{
		{"AGC", "AAAC", s.p, "AG-C", "AAAC", -1},
		{"AGC", "AAAC", unitParams, "AG-C", "AAAC", 0},
		{"ACTGATTCA", "ACGCATCA", s.p, "ACTGATTCA", "AC-GCATCA", 2},
		{"ACTGATTCA", "ACGCATCA", unitParams, "ACTG-ATTCA", "AC-GCA-TCA", 4},
		{"", "ACG", s.p, "---", "ACG", -6},
		{"ACG", "", s.p, "ACG", "---", -6},
		{"", "", s.p, "", "", 0},
		{"TACGCGC", "TCCGA", s.p, "TACGCGC", "T-C-CGA", -1},
		{"A", "CCCC", s.p, "---A", "CCCC", -7},
		{"CCCC", "A", s.p, "CCCC", "---A", -7},
		{"A", "ACCC", s.p, "A---", "ACCC", -5},
		{"GATTACA", "GCATGCU", s.p, "GATTACA", "GCATGCU", -1},
		{"AAAA", "AA", s.p, "AAAA", "--AA", -2},
		{"ACGT", "ACGT", s.p, "ACGT", "ACGT", 4},
		{"GGTTGACTA", "TGTTACGG", s.p, "GGTTGACTA", "TGTT-ACGG", 0},
	}
	for _, tc := range cases {
		gotA, gotB, score := s.alignBoth(tc.a, tc.b, tc.p)
		s.Equal(tc.wantA, gotA, "%q/%q row A", tc.a, tc.b)
		s.Equal(tc.wantB, gotB, "%q/%q row B", tc.a, tc.b)
		s.Equal(tc.wantScore, score, "%q/%q score", tc.a, tc.b)
	}
}

// TestEmptySide checks the all-gap edge cases against len·Gap.
func (s *AlignSuite) TestEmptySide() {
	p := core.Params{Match: 5, Mismatch: -4, Gap: -3}
	gotA, gotB, score := s.alignBoth("", "GATTACA", p)
	s.Equal(strings.Repeat("-", 7), gotA)
	s.Equal("GATTACA", gotB)
	s.Equal(7*p.Gap, score)

	gotA, gotB, score = s.alignBoth("GATTACA", "", p)
	s.Equal("GATTACA", gotA)
	s.Equal(strings.Repeat("-", 7), gotB)
	s.Equal(7*p.Gap, score)
}

// TestMatchesReferenceTable checks optimality on the TACGCGC/TCCGA demo input.
func (s *AlignSuite) TestMatchesReferenceTable() {
	a, b := []rune("TACGCGC"), []rune("TCCGA")
	m, err := nw.BuildMatrix(a, b, s.p)
	s.Require().NoError(err)
	final, err := m.At(7, 5)
	s.Require().NoError(err)

	res, err := hirschberg.Align(a, b, s.p, nil)
	s.Require().NoError(err)
	s.Equal(final, res.Score)
}

// TestDashIsASymbol verifies '-' in the input is aligned like any other symbol.
func (s *AlignSuite) TestDashIsASymbol() {
	res, err := hirschberg.AlignStrings("A-C-", "A-C-", s.p, nil)
	s.Require().NoError(err)
	s.Equal(4, res.Score)
	for i := range res.Alignment.A {
		s.False(res.Alignment.A[i].IsGap())
		s.False(res.Alignment.B[i].IsGap())
	}
}

// TestGenericTokens aligns word tokens instead of runes.
func (s *AlignSuite) TestGenericTokens() {
	a := strings.Fields("the quick brown fox jumps over the lazy dog")
	b := strings.Fields("the quick red fox jumped over a lazy dog")
	res, err := hirschberg.Align(a, b, s.p, nil)
	s.Require().NoError(err)
	s.Require().NoError(res.Alignment.Validate(a, b))

	m, err := nw.BuildMatrix(a, b, s.p)
	s.Require().NoError(err)
	s.Equal(m.Final(), res.Score)
}

func TestAlignSuite(t *testing.T) {
	suite.Run(t, new(AlignSuite))
}

// TestAlign_Properties cross-checks random inputs for well-formedness,
// optimality, strategy agreement, and determinism.
func TestAlign_Properties(t *testing.T) {
	params := []core.Params{
		core.DefaultParams(),
		core.LevenshteinParams(),
		{Match: 2, Mismatch: -3, Gap: -1},
		{Match: 0, Mismatch: 0, Gap: 0},
	}
	stack := hirschberg.Options{Strategy: hirschberg.WorkStack}
	for _, p := range params {
		for k := 0; k < propertyRuns; k++ {
			seed := int64(propertySeed + k)
			a, err := seqgen.Random(int(seed%propertyMaxLen), seqgen.WithSeed(seed), seqgen.WithAlphabet("ACGT"))
			require.NoError(t, err)
			b, err := seqgen.Random(int((seed*7)%propertyMaxLen), seqgen.WithSeed(seed+1), seqgen.WithAlphabet("ACGT"))
			require.NoError(t, err)

			res, err := hirschberg.Align(a, b, p, nil)
			require.NoError(t, err)
			require.NoError(t, res.Alignment.Validate(a, b))

			m, err := nw.BuildMatrix(a, b, p)
			require.NoError(t, err)
			require.Equal(t, m.Final(), res.Score, "a=%q b=%q p=%+v", string(a), string(b), p)

			scored, err := core.ScoreAlignment(p, res.Alignment)
			require.NoError(t, err)
			require.Equal(t, res.Score, scored)

			again, err := hirschberg.Align(a, b, p, nil)
			require.NoError(t, err)
			require.Equal(t, res, again, "repeated runs must be identical")

			viaStack, err := hirschberg.Align(a, b, p, &stack)
			require.NoError(t, err)
			require.Equal(t, res, viaStack)
		}
	}
}

// TestSplit_OptimalScore verifies L[cut] + R[m-cut] equals the reference
// optimum of the subproblem, and that cut is the smallest maximiser.
func TestSplit_OptimalScore(t *testing.T) {
	p := core.DefaultParams()
	for k := 0; k < propertyRuns; k++ {
		seed := int64(propertySeed + k)
		a, b, err := seqgen.Related(2+int(seed%20), seqgen.WithSeed(seed), seqgen.WithMutationRate(0.3))
		require.NoError(t, err)
		if len(b) < 2 {
			continue
		}

		mid, cut, best := hirschberg.SplitRunes(a, b, p)
		assert.Equal(t, len(a)/2, mid)

		m, err := nw.BuildMatrix(a, b, p)
		require.NoError(t, err)
		require.Equal(t, m.Final(), best, "a=%q b=%q", string(a), string(b))

		left := nw.LastRow(a[:mid], b, p)
		right := nw.LastRowReverse(a[mid:], b, p)
		for j := 0; j < cut; j++ {
			assert.Less(t, left[j]+right[len(b)-j], best, "cut must be the smallest maximiser")
		}
	}
}

// TestSplit_OddLengthBias verifies the left half is the shorter one.
func TestSplit_OddLengthBias(t *testing.T) {
	mid, _, _ := hirschberg.SplitRunes([]rune("ACGTA"), []rune("ACG"), core.DefaultParams())
	assert.Equal(t, 2, mid)
}

// TestAlign_Errors covers invalid options and overflow.
func TestAlign_Errors(t *testing.T) {
	bad := hirschberg.Options{Strategy: hirschberg.Strategy(9)}
	_, err := hirschberg.AlignStrings("AC", "AG", core.DefaultParams(), &bad)
	assert.ErrorIs(t, err, hirschberg.ErrUnknownStrategy)

	huge := core.Params{Match: 1, Mismatch: -1, Gap: -(1 << 62)}
	_, err = hirschberg.AlignStrings("ACGT", "AG", huge, nil)
	assert.ErrorIs(t, err, core.ErrOverflow)
}

// TestStrategyNames covers String/ParseStrategy round trips.
func TestStrategyNames(t *testing.T) {
	for _, s := range []hirschberg.Strategy{hirschberg.Recursive, hirschberg.WorkStack} {
		got, err := hirschberg.ParseStrategy(strings.ToUpper(s.String()))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "unknown", hirschberg.Strategy(-1).String())
	_, err := hirschberg.ParseStrategy("parallel")
	assert.ErrorIs(t, err, hirschberg.ErrUnknownStrategy)
}

// TestEditDistance checks the Levenshtein reduction and its edit script.
func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b         string
		dist         int
		wantA, wantB string
	}{
		{"kitten", "sitting", 3, "kitten-", "sitting"},
		{"flaw", "lawn", 2, "flaw-", "-lawn"},
		{"", "abc", 3, "---", "abc"},
		{"same", "same", 0, "same", "same"},
	}
	for _, tc := range cases {
		dist, al, err := hirschberg.EditDistance(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.dist, dist, "%s/%s", tc.a, tc.b)
		gotA, gotB := core.FormatAlignment(al, '-')
		assert.Equal(t, tc.wantA, gotA)
		assert.Equal(t, tc.wantB, gotB)
	}
}
