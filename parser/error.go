package parser

import (
	"fmt"

	"github.com/arr-ai/bnf/gotree"
	"github.com/arr-ai/bnf/parse"
)

// Inconceivable is the panic value for states that validation rules out.
const Inconceivable = "inconceivable"

// ParseError reports that the start rule did not match. At is the furthest
// position reached and Expected the labels that would have been accepted
// there.
type ParseError struct {
	parse.Failure
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse failed at %s: expected %s, found %s",
		e.At.Location(), e.Describe(), e.Found())
}

// Tree explains the failure for display.
func (e ParseError) Tree() *gotree.Tree {
	return explain("parse failed", e.Failure)
}

// UnconsumedInputError is returned by a successful parse that didn't fully
// consume the input.
type UnconsumedInputError struct {
	parse.Failure
	tree Node
}

func (e UnconsumedInputError) Error() string {
	return fmt.Sprintf("unconsumed input at %s: expected %s, found %s",
		e.At.Location(), e.Describe(), e.Found())
}

// Result is the tree matched before the residue.
func (e UnconsumedInputError) Result() Node { return e.tree }

// Residue is the input left unmatched.
func (e UnconsumedInputError) Residue() parse.Scanner { return e.At }

func (e UnconsumedInputError) Tree() *gotree.Tree {
	return explain("unconsumed input", e.Failure)
}

func explain(title string, f parse.Failure) *gotree.Tree {
	t := gotree.New(title)
	t.Add("at " + f.At.Location())
	t.Add("found " + f.Found())
	expected := t.Add("expected")
	for _, label := range f.Labels() {
		expected.Add(label)
	}
	return t
}
