// SPDX-License-Identifier: MIT

// Command lvlalign computes optimal global alignments in linear space.
//
//	lvlalign align GATTACA GCATGCU --matrix --out result.txt
//	lvlalign batch pairs.tsv --verify --progress
//	lvlalign random --len 2000 --rate 0.1 --seed 7
//	lvlalign substring GCA AGCAT
//	lvlalign demo
//
// Scoring defaults to match=1, mismatch=-1, gap=-2; override with flags or
// the LVLALIGN_MATCH, LVLALIGN_MISMATCH, LVLALIGN_GAP environment variables.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/lvlalign/core"
	"github.com/katalvlaran/lvlalign/hirschberg"
)

const version = "v0.1.0"

var (
	// INFO and WARN are the command's loggers; --quiet discards both.
	INFO *log.Logger
	WARN *log.Logger
)

// config is the resolved global flag set shared by every command.
type config struct {
	params   core.Params
	gap      rune
	strategy hirschberg.Strategy
	stdout   io.Writer
	stderr   io.Writer
}

func (c config) options() *hirschberg.Options {
	return &hirschberg.Options{Strategy: c.strategy}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lvlalign:", err)
		os.Exit(1)
	}
}

// run parses args and dispatches to the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	app := kingpin.New("lvlalign", "Optimal global sequence alignment in linear space (Hirschberg).")
	app.Version(version)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	match := app.Flag("match", "score for two equal symbols").Default("1").Envar("LVLALIGN_MATCH").Int()
	mismatch := app.Flag("mismatch", "score for two different symbols").Default("-1").Envar("LVLALIGN_MISMATCH").Int()
	gap := app.Flag("gap", "score for a symbol opposite a gap").Default("-2").Envar("LVLALIGN_GAP").Int()
	gapRune := app.Flag("gap-rune", "rune used to print gaps").Default("-").Envar("LVLALIGN_GAP_RUNE").String()
	strategy := app.Flag("strategy", "split-tree walk: recursive or stack").Default("recursive").Envar("LVLALIGN_STRATEGY").Enum("recursive", "stack")
	quiet := app.Flag("quiet", "suppress log output").Short('q').Bool()

	align := newAlignCmd(app)
	demo := newDemoCmd(app)
	batch := newBatchCmd(app)
	random := newRandomCmd(app)
	sub := newSubstringCmd(app)

	selected, err := app.Parse(args)
	if err != nil {
		return err
	}

	cfg := config{
		params: core.Params{Match: *match, Mismatch: *mismatch, Gap: *gap},
		stdout: stdout,
		stderr: stderr,
	}
	if cfg.gap, err = parseGapRune(*gapRune); err != nil {
		return err
	}
	if cfg.strategy, err = hirschberg.ParseStrategy(*strategy); err != nil {
		return err
	}
	registerLoggers(stderr, *quiet)

	switch selected {
	case align.cmd.FullCommand():
		return align.run(cfg)
	case demo.cmd.FullCommand():
		return demo.run(cfg)
	case batch.cmd.FullCommand():
		return batch.run(cfg)
	case random.cmd.FullCommand():
		return random.run(cfg)
	case sub.cmd.FullCommand():
		return sub.run(cfg)
	}

	return fmt.Errorf("unknown command %q", selected)
}

func registerLoggers(w io.Writer, quiet bool) {
	if quiet {
		w = io.Discard
	}
	INFO = log.New(w, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(w, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
}

func parseGapRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("--gap-rune must be a single rune, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}
