// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlalign/core"
	"github.com/katalvlaran/lvlalign/hirschberg"
	"github.com/katalvlaran/lvlalign/nw"
)

// ErrNilWriter indicates Render was given a nil destination.
var ErrNilWriter = errors.New("report: nil writer")

const (
	banner  = "=============================="
	divider = "------------------------------"
	title   = "GLOBAL ALIGNMENT (Hirschberg)"
)

// Report is everything a rendered alignment shows.
type Report struct {
	SeqA, SeqB     string
	AlignA, AlignB string
	Score          int
	Matrix         *nw.Matrix // optional
	Count          int
}

// FromResult builds a single-alignment Report from a rune alignment, using
// gap to render gap columns. m may be nil.
func FromResult(seqA, seqB string, res hirschberg.Result[rune], m *nw.Matrix, gap rune) Report {
	alignA, alignB := core.FormatAlignment(res.Alignment, gap)

	return Report{
		SeqA:   seqA,
		SeqB:   seqB,
		AlignA: alignA,
		AlignB: alignB,
		Score:  res.Score,
		Matrix: m,
		Count:  1,
	}
}

// Render writes r to w.
func Render(w io.Writer, r Report) error {
	if w == nil {
		return fmt.Errorf("Render: %w", ErrNilWriter)
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, banner)
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, banner)
	if r.SeqA != "" && r.SeqB != "" {
		fmt.Fprintf(bw, "Sequence A: %s\n", r.SeqA)
		fmt.Fprintf(bw, "Sequence B: %s\n", r.SeqB)
		fmt.Fprintln(bw, divider)
	}
	fmt.Fprintf(bw, "Alignment A: %s\n", r.AlignA)
	fmt.Fprintf(bw, "Alignment B: %s\n", r.AlignB)
	fmt.Fprintf(bw, "\nTotal score: %d\n", r.Score)
	if r.Matrix != nil {
		fmt.Fprintf(bw, "\nScore matrix:\n%s", r.Matrix)
	}
	fmt.Fprintf(bw, "\nAlignments generated: %d\n", r.Count)

	// bufio keeps the first write error; Flush reports it
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	return nil
}

// Save renders r into the file at path, creating or truncating it.
func Save(path string, r Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Save(%s): %w", path, cerr)
		}
	}()

	return Render(f, r)
}
