// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/lvlalign/seqgen"
)

type randomCmd struct {
	cmd      *kingpin.CmdClause
	length   *int
	seed     *int64
	rate     *float64
	alphabet *string
	matrix   *bool
	out      *string
}

func newRandomCmd(app *kingpin.Application) *randomCmd {
	c := &randomCmd{cmd: app.Command("random", "align a random sequence against a mutated copy")}
	c.length = c.cmd.Flag("len", "length of the random sequence").Default("60").Int()
	c.seed = c.cmd.Flag("seed", "random seed").Default("1").Int64()
	c.rate = c.cmd.Flag("rate", "per-position mutation probability").Default("0.1").Float64()
	c.alphabet = c.cmd.Flag("alphabet", "symbols to draw from").Default(seqgen.DNA).String()
	c.matrix = c.cmd.Flag("matrix", "build the full score matrix for the report").Bool()
	c.out = c.cmd.Flag("out", "also save a report to this file").Short('o').String()

	return c
}

func (c *randomCmd) run(cfg config) error {
	if *c.alphabet == "" {
		return fmt.Errorf("--alphabet must not be empty")
	}
	if *c.rate < 0 || *c.rate > 1 {
		return fmt.Errorf("--rate must be within [0,1], got %g", *c.rate)
	}
	a, b, err := seqgen.Related(*c.length,
		seqgen.WithSeed(*c.seed),
		seqgen.WithAlphabet(*c.alphabet),
		seqgen.WithMutationRate(*c.rate),
	)
	if err != nil {
		return err
	}
	INFO.Printf("generated %d/%d symbols (seed %d, rate %g)", len(a), len(b), *c.seed, *c.rate)

	return alignAndReport(cfg, string(a), string(b), *c.matrix, *c.out)
}
