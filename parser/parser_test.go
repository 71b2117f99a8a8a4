package parser

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type list = []interface{}

func digitAlternatives() []Alternative {
	alts := make([]Alternative, 0, 10)
	for _, c := range "0123456789" {
		alts = append(alts, Alternative{Literal(string(c))})
	}
	return alts
}

var numberGrammar = Grammar{
	"number":  {{Literal("-"), RuleRef("non-neg")}, {RuleRef("non-neg")}},
	"non-neg": {{RuleRef("digits"), Literal("."), RuleRef("digits")}, {RuleRef("digits")}},
	"digits":  {{RuleRef("digit"), RuleRef("digits")}, {RuleRef("digit")}},
	"digit":   digitAlternatives(),
}

func assertParseError(t *testing.T, err error, offset int, labels ...string) bool { //nolint:unparam
	var pe ParseError
	if assert.True(t, errors.As(err, &pe), "%v", err) {
		return assert.Equal(t, offset, pe.Offset()) &&
			assert.ElementsMatch(t, labels, pe.Labels())
	}
	return false
}

func assertUnconsumed(t *testing.T, err error, offset int, residue string) bool {
	var ue UnconsumedInputError
	if assert.True(t, errors.As(err, &ue), "%v", err) {
		return assert.Equal(t, offset, ue.Offset()) &&
			assert.Equal(t, residue, ue.Residue().String()) &&
			assert.Contains(t, ue.Labels(), "end of input")
	}
	return false
}

func TestOrderedChoiceFirstMatchWins(t *testing.T) {
	t.Parallel()

	p := MustCompile(Grammar{"x": {{Literal("a")}, {Literal("ab")}}}, "x")

	tree, err := p.Parse("a")
	require.NoError(t, err)
	assert.Equal(t, list{"a"}, tree.List())
	assert.Equal(t, 0, tree.Choice)

	_, err = p.Parse("ab")
	require.Error(t, err)
	assertUnconsumed(t, err, 1, "b")
	var ue UnconsumedInputError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, list{"a"}, ue.Result().List())
}

func TestCommitOnConsumption(t *testing.T) {
	t.Parallel()

	g := Grammar{
		"s": {{RuleRef("a"), Literal("y")}, {Literal("z")}},
		"a": {{Literal("x")}},
	}
	_, err := MustCompile(g, "s").Parse("xz")
	assertParseError(t, err, 1, `"y"`)

	tree, err := MustCompile(g, "s").Parse("xy")
	require.NoError(t, err)
	assert.Equal(t, list{list{"x"}, "y"}, tree.List())
}

func TestCommitSkipsMatchingSibling(t *testing.T) {
	t.Parallel()

	g := Grammar{"s": {{Literal("x"), Literal("y")}, {Literal("x"), Literal("z")}}}

	_, err := MustCompile(g, "s").Parse("xz")
	assertParseError(t, err, 1, `"y"`)

	tree, err := MustCompile(g, "s", Backtracking()).Parse("xz")
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Choice)
	assert.Equal(t, list{"x", "z"}, tree.List())
}

func TestNonConsumingFailuresMerge(t *testing.T) {
	t.Parallel()

	_, err := MustCompile(Grammar{"s": {{Literal("a")}, {Literal("b")}}}, "s").Parse("c")
	assertParseError(t, err, 0, `"a"`, `"b"`)
}

func TestAlternativeLabelsReplaceInnerExpectations(t *testing.T) {
	t.Parallel()

	g := Grammar{
		"s": {{RuleRef("a"), Literal("y")}, {Literal("z")}},
		"a": {{Literal("x")}},
	}
	_, err := MustCompile(g, "s").Parse("q")
	assertParseError(t, err, 0, `[<a>, "y"]`, `"z"`)
}

func TestNonConsumingSuccessCarriesExpectations(t *testing.T) {
	t.Parallel()

	g := Grammar{
		"s": {{RuleRef("e"), Literal("b")}},
		"e": {{Literal("a")}, {Literal("")}},
	}
	p := MustCompile(g, "s")

	tree, err := p.Parse("b")
	require.NoError(t, err)
	assert.Equal(t, list{list{""}, "b"}, tree.List())
	assert.Equal(t, 1, tree.GetNode(0).Choice)

	_, err = p.Parse("c")
	assertParseError(t, err, 0, `[<e>, "b"]`)

	_, err = MustCompile(g, "e").Parse("c")
	assertUnconsumed(t, err, 0, "c")
	var ue UnconsumedInputError
	require.True(t, errors.As(err, &ue))
	assert.ElementsMatch(t, []string{`"a"`, "end of input"}, ue.Labels())
}

func TestNumber(t *testing.T) {
	t.Parallel()

	p := MustCompile(numberGrammar, "number", Backtracking())

	tree, err := p.Parse("-1230.0456")
	require.NoError(t, err)
	assert.Equal(t, "-1230.0456", tree.Text())
	assert.Equal(t,
		list{"-", list{
			list{list{"1"}, list{list{"2"}, list{list{"3"}, list{list{"0"}}}}},
			".",
			list{list{"0"}, list{list{"4"}, list{list{"5"}, list{list{"6"}}}}},
		}},
		tree.List(),
	)
	assert.Equal(t, "non-neg", tree.GetNode(1).Rule)
	assert.Equal(t, "digits", tree.GetNode(1, 0).Rule)
	assert.Equal(t, ".", tree.GetString(1, 1))

	_, err = p.Parse("12.34.56")
	assertUnconsumed(t, err, 5, ".56")

	_, err = p.Parse("-")
	assertParseError(t, err, 1, `[<digits>, ".", <digits>]`, `<digits>`)
}

func TestNumberCommitsOnLastDigit(t *testing.T) {
	t.Parallel()

	// The first alternative of <digits> consumes a digit before failing on
	// the next, so without backtracking <digit> alone is never tried.
	_, err := MustCompile(numberGrammar, "number").Parse("-1230.0456")
	assertParseError(t, err, 5, `[<digit>, <digits>]`, `<digit>`)
}

func TestSingleCharLiterals(t *testing.T) {
	t.Parallel()

	p := MustCompile(Grammar{"s": {{Literal("é"), Literal("\n")}}}, "s")
	tree, err := p.Parse("é\n")
	require.NoError(t, err)
	assert.Equal(t, list{"é", "\n"}, tree.List())

	_, err = p.Parse("e\n")
	assertParseError(t, err, 0, `["é", "\n"]`)
}

func TestWithStart(t *testing.T) {
	t.Parallel()

	p := MustCompile(numberGrammar, "number", Backtracking())

	digit, err := p.WithStart("digit")
	require.NoError(t, err)
	assert.Equal(t, "digit", digit.Start())
	assert.Equal(t, "number", p.Start())

	tree, err := digit.Parse("7")
	require.NoError(t, err)
	assert.Equal(t, list{"7"}, tree.List())
	assert.Equal(t, 7, tree.Choice)

	_, err = p.WithStart("nope")
	assert.Equal(t, UndefinedStartRuleError{Rule: "nope"}, err)
}

func TestCompileRejectsInvalidGrammar(t *testing.T) {
	t.Parallel()

	_, err := Compile(Grammar{"a": {{RuleRef("b")}}}, "a")
	assert.Equal(t, UnknownRuleReferenceError{Rule: "a", Target: "b"}, err)

	assert.Panics(t, func() {
		MustCompile(Grammar{}, "a")
	})

	_, err = Parser{}.Parse("x")
	assert.True(t, errors.Is(err, ErrInvalidGrammar))
}

func TestCompileCopiesGrammar(t *testing.T) {
	t.Parallel()

	g := Grammar{"s": {{Literal("a")}}}
	p := MustCompile(g, "s")
	g["s"][0][0] = Literal("b")
	g.Add("s", Alternative{Literal("c")})

	_, err := p.Parse("a")
	assert.NoError(t, err)
	_, err = p.Parse("b")
	assert.Error(t, err)
}

func TestConcurrentParses(t *testing.T) {
	t.Parallel()

	p := MustCompile(numberGrammar, "number", Backtracking())
	inputs := []string{"1", "-22", "3.14", "-0.5", "12.34.56", "x"}

	var wg sync.WaitGroup
	errs := make([]error, 8*len(inputs))
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = p.Parse(inputs[i%len(inputs)])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		switch inputs[i%len(inputs)] {
		case "12.34.56", "x":
			assert.Error(t, err)
		default:
			assert.NoError(t, err)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	p := MustCompile(Grammar{"s": {{Literal("a")}, {Literal("b")}}}, "s")

	_, err := p.ParseFile("in.txt", "c")
	assert.EqualError(t, err, `parse failed at in.txt:1:1: expected "a" or "b", found "c"`)

	var pe ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, `parse failed
├── at in.txt:1:1
├── found "c"
└── expected
    ├── "a"
    └── "b"
`, pe.Tree().Print())

	_, err = p.Parse("")
	assert.EqualError(t, err, `parse failed at 1:1: expected "a" or "b", found end of input`)

	_, err = p.Parse("ab")
	assert.EqualError(t, err, `unconsumed input at 1:2: expected end of input, found "b"`)
}

func TestTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	level, out := logrus.GetLevel(), logrus.StandardLogger().Out
	logrus.SetLevel(logrus.TraceLevel)
	logrus.SetOutput(&buf)
	defer func() {
		logrus.SetLevel(level)
		logrus.SetOutput(out)
	}()

	g := Grammar{"s": {{RuleRef("a"), Literal("y")}}, "a": {{Literal("x")}}}
	_, err := MustCompile(g, "s").Parse("xy")
	require.NoError(t, err)

	log := buf.String()
	assert.Equal(t, 2, strings.Count(log, "msg=enter"))
	assert.Equal(t, 2, strings.Count(log, "msg=exit"))
	assert.Contains(t, log, "rule=a")
	assert.Contains(t, log, "depth=1")
}
