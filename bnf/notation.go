package bnf

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/arr-ai/bnf/parse"
	"github.com/arr-ai/bnf/parser"
)

const (
	ruleNameLabel = "rule-name"
	literalLabel  = "literal"
	newlineLabel  = "new-line"
	assign        = "::="
	bar           = "|"
)

var (
	spacesRE     = regexp.MustCompile(`\A[ \t]*`)
	whitespaceRE = regexp.MustCompile(`\A\s*`)
	newlineRE    = regexp.MustCompile(`\A\r?\n`)
	ruleNameRE   = regexp.MustCompile(`\A<([^<>\s]+)>`)
	dquotedRE    = regexp.MustCompile(`\A"((?:\\(?:u[0-9A-Fa-f]{4}|["\\/bfnrt])|[^\\"\x08\f\n\r\t])*)"`)
	squotedRE    = regexp.MustCompile(`\A'((?:\\(?:u[0-9A-Fa-f]{4}|['\\/bfnrt])|[^\\'\x08\f\n\r\t])*)'`)
)

// SyntaxError reports malformed BNF source: where reading stopped and what
// would have been accepted there.
type SyntaxError struct {
	parse.Failure
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("grammar syntax error at %s: expected %s, found %s",
		e.At.Location(), e.Describe(), e.Found())
}

// ParseString reads BNF source into a Grammar. Repeated definitions of a rule
// append their alternatives in source order.
func ParseString(src string) (parser.Grammar, error) {
	return parseGrammar(*parse.NewScanner(src))
}

// ParseFile is ParseString with error positions reported against filename.
func ParseFile(filename, src string) (parser.Grammar, error) {
	return parseGrammar(*parse.NewScannerWithFilename(src, filename))
}

// notation is the reading state. err accumulates what could have been
// accepted at the current position since input was last consumed.
type notation struct {
	input parse.Scanner
	err   parse.Failure
}

func parseGrammar(input parse.Scanner) (parser.Grammar, error) {
	n := &notation{input: input}
	n.input.EatRegexp(whitespaceRE, nil, nil)
	n.err = parse.Unknown(n.input)

	g := parser.Grammar{}
	for {
		name, ok := n.ruleName()
		if !ok {
			break
		}
		if !n.token(assign) {
			return nil, n.fail()
		}
		alts, err := n.alternatives()
		if err != nil {
			return nil, err
		}
		g.Add(name, alts...)
		if !n.newlines() {
			break
		}
	}
	if !n.input.AtEnd() {
		n.miss(parse.EndOfInput)
		return nil, n.fail()
	}
	return g, nil
}

// alternatives reads seq ('|' seq)*.
func (n *notation) alternatives() ([]parser.Alternative, error) {
	var alts []parser.Alternative
	for {
		sym, ok := n.symbol()
		if !ok {
			return nil, n.fail()
		}
		seq := parser.Alternative{sym}
		for {
			if sym, ok = n.symbol(); !ok {
				break
			}
			seq = append(seq, sym)
		}
		alts = append(alts, seq)
		if !n.token(bar) {
			return alts, nil
		}
	}
}

func (n *notation) symbol() (parser.Symbol, bool) {
	if text, ok := n.literal(); ok {
		return parser.Literal(text), true
	}
	if name, ok := n.ruleName(); ok {
		return parser.RuleRef(name), true
	}
	return nil, false
}

func (n *notation) ruleName() (string, bool) {
	var name [1]parse.Scanner
	if _, ok := n.input.EatRegexp(ruleNameRE, nil, name[:]); !ok {
		n.miss(ruleNameLabel)
		return "", false
	}
	n.lexeme()
	return name[0].String(), true
}

func (n *notation) literal() (string, bool) {
	var body [1]parse.Scanner
	for _, re := range []*regexp.Regexp{dquotedRE, squotedRE} {
		if _, ok := n.input.EatRegexp(re, nil, body[:]); ok {
			n.lexeme()
			return Unescape(body[0].String()), true
		}
	}
	n.miss(literalLabel)
	return "", false
}

func (n *notation) token(s string) bool {
	var eaten parse.Scanner
	if !n.input.EatString(s, &eaten) {
		n.miss(strconv.Quote(s))
		return false
	}
	n.lexeme()
	return true
}

// newlines reads one or more line breaks, each followed by optional spaces.
func (n *notation) newlines() bool {
	count := 0
	for {
		if _, ok := n.input.EatRegexp(newlineRE, nil, nil); !ok {
			n.miss(newlineLabel)
			return count > 0
		}
		n.lexeme()
		count++
	}
}

// lexeme skips spaces after a token and forgets expectations recorded before
// it.
func (n *notation) lexeme() {
	n.input.EatRegexp(spacesRE, nil, nil)
	n.err = parse.Unknown(n.input)
}

func (n *notation) miss(label string) {
	n.err = n.err.Merge(parse.Expect(n.input, label))
}

func (n *notation) fail() error {
	return SyntaxError{n.err}
}
