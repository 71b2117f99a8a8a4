package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidGrammar is wrapped by every grammar validation error.
var ErrInvalidGrammar = errors.New("invalid grammar")

type UndefinedStartRuleError struct {
	Rule string
}

func (e UndefinedStartRuleError) Error() string {
	return fmt.Sprintf("%s: start rule <%s> is not defined", ErrInvalidGrammar, e.Rule)
}

func (e UndefinedStartRuleError) Unwrap() error { return ErrInvalidGrammar }

type EmptyAlternativeError struct {
	Rule  string
	Index int
}

func (e EmptyAlternativeError) Error() string {
	return fmt.Sprintf("%s: alternative %d of <%s> has no symbols", ErrInvalidGrammar, e.Index, e.Rule)
}

func (e EmptyAlternativeError) Unwrap() error { return ErrInvalidGrammar }

type MissingSymbolError struct {
	Rule        string
	Alternative int
	Index       int
}

func (e MissingSymbolError) Error() string {
	return fmt.Sprintf("%s: symbol %d of alternative %d of <%s> is nil",
		ErrInvalidGrammar, e.Index, e.Alternative, e.Rule)
}

func (e MissingSymbolError) Unwrap() error { return ErrInvalidGrammar }

type UnknownRuleReferenceError struct {
	Rule   string
	Target string
}

func (e UnknownRuleReferenceError) Error() string {
	return fmt.Sprintf("%s: <%s> refers to undefined rule <%s>", ErrInvalidGrammar, e.Rule, e.Target)
}

func (e UnknownRuleReferenceError) Unwrap() error { return ErrInvalidGrammar }

// Validate checks that start names a rule, that no alternative is empty or
// holds a nil symbol and that every RuleRef names a rule, in that order. Rules are visited in sorted
// order so the reported violation is deterministic.
func Validate(g Grammar, start string) error {
	if _, has := g[start]; !has {
		return UndefinedStartRuleError{Rule: start}
	}
	names := g.RuleNames()
	for _, rule := range names {
		for i, alt := range g[rule] {
			if len(alt) == 0 {
				return EmptyAlternativeError{Rule: rule, Index: i}
			}
			for j, sym := range alt {
				if sym == nil {
					return MissingSymbolError{Rule: rule, Alternative: i, Index: j}
				}
			}
		}
	}
	for _, rule := range names {
		for _, alt := range g[rule] {
			for _, sym := range alt {
				switch sym := sym.(type) {
				case RuleRef:
					if _, has := g[string(sym)]; !has {
						return UnknownRuleReferenceError{Rule: rule, Target: string(sym)}
					}
				case Literal:
				default:
					panic(Inconceivable)
				}
			}
		}
	}
	return nil
}
