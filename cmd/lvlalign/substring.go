// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/lvlalign/substring"
)

type substringCmd struct {
	cmd  *kingpin.CmdClause
	a, b *string
}

func newSubstringCmd(app *kingpin.Application) *substringCmd {
	c := &substringCmd{cmd: app.Command("substring", "check whether one string contains the other")}
	c.a = c.cmd.Arg("a", "first string").String()
	c.b = c.cmd.Arg("b", "second string").String()

	return c
}

func (c *substringCmd) run(cfg config) error {
	a, b := *c.a, *c.b
	pos, ok := substring.Find(a, b)
	switch {
	case a == "" || b == "":
		fmt.Fprintln(cfg.stdout, "one string is empty: substring at position 0")
	case a == b:
		fmt.Fprintln(cfg.stdout, "strings are identical: substring at position 0")
	case ok:
		shorter, longer := b, a
		if len(a) < len(b) {
			shorter, longer = a, b
		}
		fmt.Fprintf(cfg.stdout, "%q is a substring of %q at position %d\n", shorter, longer, pos)
	default:
		fmt.Fprintln(cfg.stdout, "neither string is a substring of the other")
	}

	return nil
}
