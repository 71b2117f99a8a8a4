package parser

import (
	"github.com/arr-ai/frozen"

	"github.com/arr-ai/bnf/parse"
)

// Parser evaluates a compiled grammar from a start rule. It holds no state
// between calls and is safe for concurrent use.
type Parser struct {
	rules     frozen.Map[string, []alternative]
	start     string
	backtrack bool
}

// Option adjusts how a compiled Parser evaluates its grammar.
type Option func(*Parser)

// Backtracking makes a choice try the next alternative even after a failed
// alternative consumed input. By default such a failure commits the choice.
func Backtracking() Option {
	return func(p *Parser) {
		p.backtrack = true
	}
}

type alternative struct {
	symbols Alternative
	label   string
}

// outcome is the result of matching one symbol, sequence or rule at a
// position. err carries the expected labels gathered at or beyond that
// position, even on success.
type outcome struct {
	value    parse.TreeElement
	rest     parse.Scanner
	consumed bool
	ok       bool
	err      parse.Failure
}

// Compile validates g and prepares it for parsing from start. The parser
// holds its own copy of the grammar, so later changes to g are not seen.
func Compile(g Grammar, start string, opts ...Option) (Parser, error) {
	if err := Validate(g, start); err != nil {
		return Parser{}, err
	}
	rules := frozen.NewMap[string, []alternative]()
	for rule, alts := range g.clone() {
		compiled := make([]alternative, 0, len(alts))
		for _, alt := range alts {
			compiled = append(compiled, alternative{symbols: alt, label: alt.Label()})
		}
		rules = rules.With(rule, compiled)
	}
	p := Parser{rules: rules, start: start}
	for _, opt := range opts {
		opt(&p)
	}
	return p, nil
}

// MustCompile is like Compile but panics on an invalid grammar.
func MustCompile(g Grammar, start string, opts ...Option) Parser {
	p, err := Compile(g, start, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Start is the rule parsing begins from.
func (p Parser) Start() string {
	return p.start
}

// WithStart returns a parser over the same grammar starting from rule.
func (p Parser) WithStart(rule string) (Parser, error) {
	if !p.rules.Has(rule) {
		return Parser{}, UndefinedStartRuleError{Rule: rule}
	}
	p.start = rule
	return p, nil
}

// Parse matches the whole of input against the start rule.
func (p Parser) Parse(input string) (Node, error) {
	return p.ParseScanner(*parse.NewScanner(input))
}

// ParseFile is Parse with error positions reported against filename.
func (p Parser) ParseFile(filename, input string) (Node, error) {
	return p.ParseScanner(*parse.NewScannerWithFilename(input, filename))
}

// ParseScanner matches the text visible to input. The result is a ParseError
// if the start rule fails, or an UnconsumedInputError if it matches only a
// prefix.
func (p Parser) ParseScanner(input parse.Scanner) (Node, error) {
	if p.rules.Count() == 0 {
		return Node{}, UndefinedStartRuleError{Rule: p.start}
	}
	out := p.choice(p.start, input, 0)
	if !out.ok {
		return Node{}, ParseError{out.err}
	}
	tree := out.value.(Node)
	if !out.rest.AtEnd() {
		return Node{}, UnconsumedInputError{
			Failure: out.err.Merge(parse.Expect(out.rest, parse.EndOfInput)),
			tree:    tree,
		}
	}
	return tree, nil
}

// choice tries each alternative of rule in order. The first success wins. A
// failure that consumed input ends the choice unless backtracking; other
// failures are merged and the next alternative is tried.
func (p Parser) choice(rule string, input parse.Scanner, depth int) (out outcome) {
	defer enter(rule, input, depth).exit(&out)

	alts, _ := p.rules.Get(rule)
	failed := parse.Unknown(input)
	for i, alt := range alts {
		values, o := p.sequence(alt, input, depth)
		if !o.consumed {
			if !o.ok || !o.err.IsUnknown() {
				o.err = o.err.Relabel(alt.label)
			}
			o.err = failed.Merge(o.err)
		}
		switch {
		case o.ok:
			o.value = Node{Rule: rule, Choice: i, Children: values}
			return o
		case o.consumed && !p.backtrack:
			return o
		case o.consumed:
			o.err = failed.Merge(o.err)
		}
		failed = o.err
	}
	return outcome{rest: input, err: failed}
}

// sequence matches the symbols of alt left to right. Once any symbol has
// consumed input, a later failure commits the whole sequence.
func (p Parser) sequence(alt alternative, input parse.Scanner, depth int) ([]parse.TreeElement, outcome) {
	values := make([]parse.TreeElement, 0, len(alt.symbols))
	state := outcome{rest: input, ok: true, err: parse.Unknown(input)}
	for _, sym := range alt.symbols {
		o := p.symbol(sym, state.rest, depth)
		err := o.err
		if !o.consumed {
			err = state.err.Merge(o.err)
		}
		state = outcome{
			rest:     o.rest,
			consumed: state.consumed || o.consumed,
			ok:       o.ok,
			err:      err,
		}
		if !o.ok {
			return nil, state
		}
		values = append(values, o.value)
	}
	return values, state
}

func (p Parser) symbol(sym Symbol, input parse.Scanner, depth int) outcome {
	switch sym := sym.(type) {
	case Literal:
		return matchLiteral(sym, input)
	case RuleRef:
		return p.choice(string(sym), input, depth+1)
	}
	panic(Inconceivable)
}

func matchLiteral(lit Literal, input parse.Scanner) outcome {
	rest := input
	var eaten parse.Scanner
	var ok bool
	if len(lit) == 1 {
		ok = rest.EatByte(lit[0], &eaten)
	} else {
		ok = rest.EatString(string(lit), &eaten)
	}
	if !ok {
		return outcome{rest: input, err: parse.Expect(input, lit.Label())}
	}
	return outcome{
		value:    eaten,
		rest:     rest,
		consumed: len(lit) > 0,
		ok:       true,
		err:      parse.Unknown(rest),
	}
}
