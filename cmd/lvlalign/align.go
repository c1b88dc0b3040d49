// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/lvlalign/core"
	"github.com/katalvlaran/lvlalign/hirschberg"
	"github.com/katalvlaran/lvlalign/nw"
	"github.com/katalvlaran/lvlalign/report"
)

// maxMatrixCells caps the reference table built for --matrix output.
const maxMatrixCells = 1 << 22

// Inputs of the demo command.
const (
	demoSeqA   = "TACGCGC"
	demoSeqB   = "TCCGA"
	demoReport = "result.txt"
)

type alignCmd struct {
	cmd    *kingpin.CmdClause
	a, b   *string
	out    *string
	matrix *bool
}

func newAlignCmd(app *kingpin.Application) *alignCmd {
	c := &alignCmd{cmd: app.Command("align", "align two sequences")}
	c.a = c.cmd.Arg("a", "first sequence (may be empty)").String()
	c.b = c.cmd.Arg("b", "second sequence (may be empty)").String()
	c.out = c.cmd.Flag("out", "also save a report to this file").Short('o').String()
	c.matrix = c.cmd.Flag("matrix", "build the full score matrix for the report").Bool()

	return c
}

func (c *alignCmd) run(cfg config) error {
	return alignAndReport(cfg, *c.a, *c.b, *c.matrix, *c.out)
}

type demoCmd struct {
	cmd *kingpin.CmdClause
	out *string
}

func newDemoCmd(app *kingpin.Application) *demoCmd {
	c := &demoCmd{cmd: app.Command("demo", "align the built-in example "+demoSeqA+"/"+demoSeqB+" and save its report")}
	c.out = c.cmd.Flag("out", "report file").Short('o').Default(demoReport).String()

	return c
}

func (c *demoCmd) run(cfg config) error {
	return alignAndReport(cfg, demoSeqA, demoSeqB, true, *c.out)
}

// alignAndReport aligns a and b, prints the rows and score, and when out is
// set writes the full report there.
func alignAndReport(cfg config, a, b string, withMatrix bool, out string) error {
	res, err := hirschberg.AlignStrings(a, b, cfg.params, cfg.options())
	if err != nil {
		return err
	}
	rowA, rowB := core.FormatAlignment(res.Alignment, cfg.gap)
	if strings.ContainsRune(a+b, cfg.gap) {
		WARN.Printf("input contains the gap rune %q; printed rows are ambiguous", cfg.gap)
	}

	var m *nw.Matrix
	if withMatrix {
		m, err = referenceMatrix(a, b, cfg.params)
		if err != nil {
			return err
		}
		if m != nil && m.Final() != res.Score {
			return fmt.Errorf("linear-space score %d differs from reference %d", res.Score, m.Final())
		}
	}

	fmt.Fprintf(cfg.stdout, "Alignment A: %s\n", rowA)
	fmt.Fprintf(cfg.stdout, "Alignment B: %s\n", rowB)
	fmt.Fprintf(cfg.stdout, "Total score: %d\n", res.Score)

	if out == "" {
		return nil
	}
	r := report.Report{
		SeqA: a, SeqB: b,
		AlignA: rowA, AlignB: rowB,
		Score: res.Score, Matrix: m, Count: 1,
	}
	if err := report.Save(out, r); err != nil {
		return err
	}
	INFO.Printf("report saved to %s", out)

	return nil
}

// referenceMatrix builds the quadratic table, or returns nil with a warning
// when it would exceed maxMatrixCells.
func referenceMatrix(a, b string, p core.Params) (*nw.Matrix, error) {
	ra, rb := core.Runes(a), core.Runes(b)
	cells := (len(ra) + 1) * (len(rb) + 1)
	if len(ra) > maxMatrixCells || len(rb) > maxMatrixCells || cells > maxMatrixCells {
		WARN.Printf("score matrix skipped: %d×%d exceeds %d cells", len(ra)+1, len(rb)+1, maxMatrixCells)
		return nil, nil
	}

	return nw.BuildMatrix(ra, rb, p)
}
