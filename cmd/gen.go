package cmd

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/bnf/cmd/codegen"
	"github.com/arr-ai/bnf/parser"
)

var pkgName string
var outFile string
var genCommand = cli.Command{
	Name:    "gen",
	Aliases: []string{"g"},
	Usage:   "Generate Go source embedding a grammar",
	Action:  gen,
	Flags: []cli.Flag{
		grammarFlag,
		startFlag,
		cli.StringFlag{
			Name:        "pkg",
			Usage:       "name of the generated package",
			Required:    true,
			Destination: &pkgName,
		},
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to",
			TakesFile:   true,
			Destination: &outFile,
		},
		backtrackFlag,
	},
}

func gen(c *cli.Context) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	if err := parser.Validate(g, startingRule); err != nil {
		return err
	}

	data := codegen.MakeTemplateData(g, startingRule, pkgName, strings.Join(os.Args[1:], " "), backtrack)
	out, err := codegen.Source(data)
	if err != nil {
		return err
	}

	switch outFile {
	case "", "-":
		_, err = c.App.Writer.Write(out)
		return err
	default:
		logrus.WithField("file", outFile).Info("writing generated parser")
		return ioutil.WriteFile(outFile, out, 0644)
	}
}
