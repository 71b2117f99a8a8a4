package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arr-ai/bnf/parser"
)

func TestWalkSymbol(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input  parser.Symbol
		output string
	}{
		"literal":         {parser.Literal("hello"), `parser.Literal("hello")`},
		"literal newline": {parser.Literal("\n"), `parser.Literal("\n")`},
		"literal quote":   {parser.Literal(`"`), `parser.Literal("\"")`},
		"literal cr":      {parser.Literal("\r"), `parser.Literal("\r")`},
		"rule":            {parser.RuleRef("non-neg"), `parser.RuleRef("non-neg")`},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.output, walkSymbol(tt.input).String())
		})
	}
}

func TestMakeGrammar(t *testing.T) {
	t.Parallel()

	g := parser.Grammar{
		"s": {{parser.RuleRef("a"), parser.Literal("y")}, {parser.Literal("z")}},
		"a": {{parser.Literal("x")}},
	}
	assert.Equal(t,
		`parser.Grammar{
"a": {{parser.Literal("x")}},
"s": {
{
parser.RuleRef("a"),
parser.Literal("y"),
},
{parser.Literal("z")},
},
}`,
		MakeGrammar(g).String(),
	)
	assert.Equal(t, "parser.Grammar{}", MakeGrammar(parser.Grammar{}).String())
}
