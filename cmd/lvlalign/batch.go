// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/katalvlaran/lvlalign/core"
	"github.com/katalvlaran/lvlalign/hirschberg"
	"github.com/katalvlaran/lvlalign/nw"
)

type batchCmd struct {
	cmd      *kingpin.CmdClause
	file     *string
	verify   *bool
	progress *bool
}

func newBatchCmd(app *kingpin.Application) *batchCmd {
	c := &batchCmd{cmd: app.Command("batch", "align every A<TAB>B pair of a file")}
	c.file = c.cmd.Arg("file", "tab-separated pairs, one per line; '#' starts a comment").Required().ExistingFile()
	c.verify = c.cmd.Flag("verify", "check each score against the quadratic reference table").Bool()
	c.progress = c.cmd.Flag("progress", "show a progress bar on stderr").Bool()

	return c
}

type pair struct {
	line int
	a, b string
}

func (c *batchCmd) run(cfg config) error {
	pairs, err := readPairs(*c.file)
	if err != nil {
		return err
	}
	INFO.Printf("aligning %d pairs from %s", len(pairs), *c.file)

	var bar *pb.ProgressBar
	if *c.progress {
		bar = pb.New(len(pairs))
		bar.Output = cfg.stderr
		bar.Start()
		defer bar.Finish()
	}

	w := bufio.NewWriter(cfg.stdout)
	for _, pr := range pairs {
		res, err := hirschberg.AlignStrings(pr.a, pr.b, cfg.params, cfg.options())
		if err != nil {
			return fmt.Errorf("line %d: %w", pr.line, err)
		}
		if *c.verify {
			if err := verify(pr, res, cfg.params); err != nil {
				return err
			}
		}
		rowA, rowB := core.FormatAlignment(res.Alignment, cfg.gap)
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", pr.line, res.Score, rowA, rowB)
		if bar != nil {
			bar.Increment()
		}
	}

	return w.Flush()
}

// verify checks res against the reference table and the alignment invariants.
func verify(pr pair, res hirschberg.Result[rune], p core.Params) error {
	ra, rb := core.Runes(pr.a), core.Runes(pr.b)
	if err := res.Alignment.Validate(ra, rb); err != nil {
		return fmt.Errorf("line %d: %w", pr.line, err)
	}
	m, err := nw.BuildMatrix(ra, rb, p)
	if err != nil {
		return fmt.Errorf("line %d: %w", pr.line, err)
	}
	if m.Final() != res.Score {
		return fmt.Errorf("line %d: score %d differs from reference %d", pr.line, res.Score, m.Final())
	}

	return nil
}

// readPairs parses "A<TAB>B" lines. Blank lines and '#' comments are
// skipped; a line without a tab is an error. Either side may be empty.
func readPairs(path string) ([]pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs []pair
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, b, ok := strings.Cut(line, "\t")
		if !ok {
			WARN.Printf("%s:%d: missing tab separator", path, n)
			return nil, fmt.Errorf("%s:%d: expected A<TAB>B", path, n)
		}
		pairs = append(pairs, pair{line: n, a: a, b: b})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}
