// Package bnf turns BNF grammar source into ready-to-run parsers.
//
// A grammar is a sequence of rules, one per line:
//
//	<number>  ::= "-" <non-neg> | <non-neg>
//	<non-neg> ::= <digits> "." <digits> | <digits>
//
// Literals may be double- or single-quoted and support the escapes
// \b \f \n \r \t \" \' \\ \/ and \uHHHH.
package bnf

import (
	"github.com/arr-ai/bnf/parser"
)

// Compile parses src and compiles it into a parser for start. Syntax and
// validation errors are reported here, never on first use.
func Compile(src, start string, opts ...parser.Option) (parser.Parser, error) {
	g, err := ParseString(src)
	if err != nil {
		return parser.Parser{}, err
	}
	return parser.Compile(g, start, opts...)
}

// CompileFile is Compile with syntax error positions reported against
// filename.
func CompileFile(filename, src, start string, opts ...parser.Option) (parser.Parser, error) {
	g, err := ParseFile(filename, src)
	if err != nil {
		return parser.Parser{}, err
	}
	return parser.Compile(g, start, opts...)
}

// MustCompile is like Compile but panics on error.
func MustCompile(src, start string, opts ...parser.Option) parser.Parser {
	p, err := Compile(src, start, opts...)
	if err != nil {
		panic(err)
	}
	return p
}
