// Package lvlalign computes optimal global alignments of symbol sequences
// (DNA, protein, text, or any comparable tokens) in linear space.
//
// 🚀 What is lvlalign?
//
//	A small, dependency-light library built around Hirschberg's
//	divide-and-conquer refinement of Needleman–Wunsch:
//		• Scoring model: match reward, mismatch and gap penalties (core.Params)
//		• Linear-space alignment with deterministic tie-breaking (hirschberg)
//		• Rolling-row scoring, full reference tables and traceback (nw)
//		• Edit distance with an explicit edit script (hirschberg.EditDistance)
//		• Text reports of alignments and score matrices (report)
//
// ✨ Why choose lvlalign?
//
//   - Generic: align []rune, []byte, []string tokens, any comparable T
//   - No reserved gap symbol: gaps are tagged elements, '-' is a normal symbol
//   - Deterministic: the same inputs always yield the same alignment
//   - No hidden state: parameters travel with every call
//
// Under the hood:
//
//	core/      : Params, Element, Alignment, scoring primitives & validation
//	nw/        : Needleman–Wunsch rows, tables and traceback
//	hirschberg/: linear-space divide & conquer (recursive or explicit stack)
//	report/    : human-readable alignment reports
//	seqgen/    : deterministic random sequences for tests and demos
//	substring/ : containment check between two strings
//	cmd/lvlalign: command-line front end
//
// Quick example:
//
//	res, _ := hirschberg.AlignStrings("TACGCGC", "TCCGA", core.DefaultParams(), nil)
//	a, b := core.FormatAlignment(res.Alignment, '-')
//	// a = TACGCGC
//	// b = T-C-CGA   score = -1
//
//	go get github.com/katalvlaran/lvlalign
package lvlalign
