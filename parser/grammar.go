package parser

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol is one element of an Alternative. It is either a Literal or a
// RuleRef; no other implementations exist.
type Symbol interface {
	// Label names the symbol in expected-label sets.
	Label() string
	isSymbol()
}

// Literal matches its text exactly.
type Literal string

// RuleRef matches whatever the named rule matches.
type RuleRef string

func (Literal) isSymbol() {}
func (RuleRef) isSymbol() {}

func (t Literal) Label() string { return quoteLiteral(string(t)) }
func (t RuleRef) Label() string { return "<" + string(t) + ">" }

func (t Literal) String() string { return t.Label() }
func (t RuleRef) String() string { return t.Label() }

// Alternative is one production of a rule: a sequence of symbols matched in
// order.
type Alternative []Symbol

// Label is the single symbol's label, or a bracketed list of all labels.
func (a Alternative) Label() string {
	if len(a) == 1 {
		return a[0].Label()
	}
	labels := make([]string, 0, len(a))
	for _, sym := range a {
		labels = append(labels, sym.Label())
	}
	return "[" + strings.Join(labels, ", ") + "]"
}

func (a Alternative) String() string {
	parts := make([]string, 0, len(a))
	for _, sym := range a {
		parts = append(parts, sym.Label())
	}
	return strings.Join(parts, " ")
}

// Grammar maps rule names to their alternatives in try order.
type Grammar map[string][]Alternative

// Add appends alternatives to a rule, creating it if needed.
func (g Grammar) Add(rule string, alts ...Alternative) {
	g[rule] = append(g[rule], alts...)
}

// RuleNames returns the rule names in sorted order.
func (g Grammar) RuleNames() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g Grammar) clone() Grammar {
	clone := make(Grammar, len(g))
	for rule, alts := range g {
		copied := make([]Alternative, 0, len(alts))
		for _, alt := range alts {
			copied = append(copied, append(Alternative(nil), alt...))
		}
		clone[rule] = copied
	}
	return clone
}

// String renders the grammar in BNF notation, one rule per line.
func (g Grammar) String() string {
	var sb strings.Builder
	for _, name := range g.RuleNames() {
		alts := make([]string, 0, len(g[name]))
		for _, alt := range g[name] {
			alts = append(alts, alt.String())
		}
		fmt.Fprintf(&sb, "<%s> ::= %s\n", name, strings.Join(alts, " | "))
	}
	return sb.String()
}

// quoteLiteral double-quotes s using only the escapes BNF literals accept.
func quoteLiteral(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
