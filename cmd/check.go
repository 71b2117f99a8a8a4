package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/bnf/parser"
)

var checkCommand = cli.Command{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "Validate a grammar and print it in normal form",
	Action:  check,
	Flags: []cli.Flag{
		grammarFlag,
		startFlag,
	},
}

func check(c *cli.Context) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	if err := parser.Validate(g, startingRule); err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, g)
	return err
}
