package cmd

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/bnf/bnf"
	"github.com/arr-ai/bnf/parser"
)

var inGrammarFile string
var startingRule string
var backtrack bool
var verboseMode bool

var stdin io.Reader = os.Stdin

var grammarFlag = cli.StringFlag{
	Name:        "grammar",
	Usage:       "input grammar file",
	EnvVar:      "BNF_GRAMMAR",
	Required:    true,
	TakesFile:   true,
	Destination: &inGrammarFile,
}

var startFlag = cli.StringFlag{
	Name:        "start",
	Usage:       "rule to begin parsing at",
	EnvVar:      "BNF_START",
	Required:    true,
	Destination: &startingRule,
}

var backtrackFlag = cli.BoolFlag{
	Name:        "backtrack",
	Usage:       "try later alternatives after one fails having consumed input",
	Destination: &backtrack,
}

var verboseFlag = cli.BoolFlag{
	Name:        "v",
	Usage:       "trace rule evaluation",
	Destination: &verboseMode,
}

func parserOptions() []parser.Option {
	if backtrack {
		return []parser.Option{parser.Backtracking()}
	}
	return nil
}

func loadGrammar() (parser.Grammar, error) {
	text, err := ioutil.ReadFile(inGrammarFile)
	if err != nil {
		return nil, err
	}
	logrus.WithField("file", inGrammarFile).Debug("loaded grammar")
	return bnf.ParseFile(inGrammarFile, string(text))
}

func loadParser() (parser.Parser, error) {
	g, err := loadGrammar()
	if err != nil {
		return parser.Parser{}, err
	}
	return parser.Compile(g, startingRule, parserOptions()...)
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(source string, stdin io.Reader) (string, error) {
	var buf []byte
	var err error
	switch source {
	case "", "-":
		buf, err = ioutil.ReadAll(stdin)
	default:
		buf, err = ioutil.ReadFile(source)
	}
	return string(buf), err
}
