package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolLabels(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		sym   Symbol
		label string
	}{
		{Literal("a"), `"a"`},
		{Literal(`say "hi"`), `"say \"hi\""`},
		{Literal("\n\t\\"), `"\n\t\\"`},
		{Literal("\x01é"), `"\u0001é"`},
		{Literal(""), `""`},
		{RuleRef("digit"), `<digit>`},
	} {
		assert.Equal(t, test.label, test.sym.Label())
	}
}

func TestAlternativeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"a"`, Alternative{Literal("a")}.Label())
	assert.Equal(t, `<a>`, Alternative{RuleRef("a")}.Label())
	assert.Equal(t, `[<a>, "y"]`, Alternative{RuleRef("a"), Literal("y")}.Label())
}

func TestGrammarString(t *testing.T) {
	t.Parallel()

	g := Grammar{
		"s": {{RuleRef("a"), Literal("y")}, {Literal("z")}},
		"a": {{Literal("x")}},
	}
	assert.Equal(t, "<a> ::= \"x\"\n<s> ::= <a> \"y\" | \"z\"\n", g.String())
	assert.Equal(t, []string{"a", "s"}, g.RuleNames())
}

func TestGrammarAdd(t *testing.T) {
	t.Parallel()

	g := Grammar{}
	g.Add("x", Alternative{Literal("a")})
	g.Add("x", Alternative{Literal("b")}, Alternative{Literal("c")})
	assert.Equal(t, []Alternative{{Literal("a")}, {Literal("b")}, {Literal("c")}}, g["x"])
}

func TestGrammarCloneIsDeep(t *testing.T) {
	t.Parallel()

	g := Grammar{"x": {{Literal("a")}}}
	c := g.clone()
	g["x"][0][0] = Literal("b")
	g.Add("y", Alternative{Literal("c")})
	assert.Equal(t, Grammar{"x": {{Literal("a")}}}, c)
}
