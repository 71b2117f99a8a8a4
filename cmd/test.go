package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/bnf/gotree"
)

var inFile string
var jsonOutput bool
var treeOutput bool
var testCommand = cli.Command{
	Name:    "test",
	Aliases: []string{"t"},
	Usage:   "Parse input with a grammar",
	Action:  test,
	Flags: []cli.Flag{
		grammarFlag,
		startFlag,
		cli.StringFlag{
			Name:        "input",
			Usage:       "input test file, - for stdin",
			TakesFile:   true,
			Destination: &inFile,
		},
		cli.BoolFlag{
			Name:        "json",
			Usage:       "print the parse tree as nested JSON arrays",
			Destination: &jsonOutput,
		},
		cli.BoolFlag{
			Name:        "tree",
			Usage:       "print the parse tree, or the failure, as a tree",
			Destination: &treeOutput,
		},
		backtrackFlag,
		verboseFlag,
	},
}

type explainer interface {
	Tree() *gotree.Tree
}

func test(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	p, err := loadParser()
	if err != nil {
		return err
	}

	input, err := readInput(inFile, stdin)
	if err != nil {
		return err
	}
	filename := inFile
	if filename == "" || filename == "-" {
		filename = "<stdin>"
	}

	w := c.App.Writer
	tree, err := p.ParseFile(filename, input)
	if err != nil {
		var e explainer
		if treeOutput && errors.As(err, &e) {
			fmt.Fprint(w, e.Tree().Print())
		}
		return err
	}

	switch {
	case jsonOutput:
		return json.NewEncoder(w).Encode(tree)
	case treeOutput:
		_, err = fmt.Fprint(w, tree.Tree().Print())
	default:
		_, err = fmt.Fprintln(w, tree.String())
	}
	return err
}
