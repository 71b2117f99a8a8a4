package parser

import (
	"encoding/json"
	"fmt"

	"github.com/arr-ai/bnf/gotree"
	"github.com/arr-ai/bnf/parse"
)

// Node is the value produced by a rule: the rule's name, the index of the
// alternative that matched and one child per symbol of that alternative.
// Literal symbols yield parse.Scanner children, rule references yield Nodes.
type Node struct {
	Rule     string
	Choice   int
	Children []parse.TreeElement
}

func (Node) IsTreeElement() {}

func (n Node) Count() int {
	return len(n.Children)
}

func (n Node) Get(path ...int) parse.TreeElement {
	var v parse.TreeElement = n
	for _, i := range path {
		v = v.(Node).Children[i]
	}
	return v
}

func (n Node) GetNode(path ...int) Node {
	return n.Get(path...).(Node)
}

func (n Node) GetString(path ...int) string {
	return n.Get(path...).(parse.Scanner).String()
}

// List returns the tree as nested []interface{} of matched strings.
func (n Node) List() []interface{} {
	out := make([]interface{}, 0, len(n.Children))
	for _, child := range n.Children {
		switch child := child.(type) {
		case Node:
			out = append(out, child.List())
		case parse.Scanner:
			out = append(out, child.String())
		default:
			panic(Inconceivable)
		}
	}
	return out
}

// MarshalJSON encodes the nested-list form.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.List())
}

// Text concatenates all matched text under n.
func (n Node) Text() string {
	var out []byte
	for _, child := range n.Children {
		switch child := child.(type) {
		case Node:
			out = append(out, child.Text()...)
		case parse.Scanner:
			out = append(out, child.String()...)
		}
	}
	return string(out)
}

func (n Node) String() string {
	return fmt.Sprintf("%q", n)
}

func (n Node) Format(state fmt.State, c rune) {
	fmt.Fprintf(state, "%s", n.Rule)
	format := "%" + string(c)
	fmt.Fprint(state, "[")
	for i, child := range n.Children {
		if i > 0 {
			fmt.Fprint(state, ", ")
		}
		fmt.Fprintf(state, format, child)
	}
	fmt.Fprint(state, "]")
}

// Tree renders n for display, one rule or literal per line.
func (n Node) Tree() *gotree.Tree {
	t := gotree.New(fmt.Sprintf("<%s> #%d", n.Rule, n.Choice))
	n.addChildren(t)
	return t
}

func (n Node) addChildren(t *gotree.Tree) {
	for _, child := range n.Children {
		switch child := child.(type) {
		case Node:
			n := t.Add(fmt.Sprintf("<%s> #%d", child.Rule, child.Choice))
			child.addChildren(n)
		case parse.Scanner:
			t.Add(fmt.Sprintf("%q @ %s", child.String(), child.Location()))
		}
	}
}
