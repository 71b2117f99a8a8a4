// Package diff reports structural differences between parse trees.
package diff

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/arr-ai/bnf/parse"
	"github.com/arr-ai/bnf/parser"
)

type NodeDiff struct {
	A, B     parser.Node
	Children map[int]NodeDiff
	Types    map[int][2]reflect.Type
	Text     map[int][2]string
}

func (d NodeDiff) String() string {
	var sb strings.Builder
	d.report(nil, &sb)
	return sb.String()
}

func (d NodeDiff) report(path []string, w io.Writer) {
	if d.Equal() {
		return
	}
	prefix := ""
	if len(path) > 0 {
		prefix = fmt.Sprintf("[%s] ", strings.Join(path, "."))
	}
	if d.A.Rule != d.B.Rule {
		fmt.Fprintf(w, "%sRule: %v != %v\n", prefix, d.A.Rule, d.B.Rule)
	}
	if d.A.Choice != d.B.Choice {
		fmt.Fprintf(w, "%sChoice: %v != %v\n", prefix, d.A.Choice, d.B.Choice)
	}
	if len(d.A.Children) != len(d.B.Children) {
		fmt.Fprintf(w, "%slen(Children): %v != %v\n", prefix, len(d.A.Children), len(d.B.Children))
	}
	for _, i := range sortedKeys(d.Types) {
		t := d.Types[i]
		fmt.Fprintf(w, "%sChildren[%d].Type: %v != %v\n", prefix, i, t[0], t[1])
	}
	for _, i := range sortedKeys(d.Text) {
		t := d.Text[i]
		fmt.Fprintf(w, "%sChildren[%d]: %q != %q\n", prefix, i, t[0], t[1])
	}
	for _, i := range sortedKeys(d.Children) {
		c := d.Children[i]
		c.report(append(append([]string{}, path...), fmt.Sprintf("%s[%d]", d.A.Rule, i)), w)
	}
}

// Equal reports whether the two trees have the same shape, rules, choices
// and matched text.
func (d NodeDiff) Equal() bool {
	return len(d.A.Children) == len(d.B.Children) &&
		d.A.Rule == d.B.Rule &&
		d.A.Choice == d.B.Choice &&
		len(d.Children) == 0 &&
		len(d.Types) == 0 &&
		len(d.Text) == 0
}

// NewNodeDiff compares a and b child by child. Leaves are compared by text,
// not position.
func NewNodeDiff(a, b parser.Node) NodeDiff {
	children := map[int]NodeDiff{}
	types := map[int][2]reflect.Type{}
	text := map[int][2]string{}
	n := len(a.Children)
	if n > len(b.Children) {
		n = len(b.Children)
	}
	for i, x := range a.Children[:n] {
		y := b.Children[i]
		aType := reflect.TypeOf(x)
		bType := reflect.TypeOf(y)
		if aType != bType {
			types[i] = [2]reflect.Type{aType, bType}
			continue
		}
		switch x := x.(type) {
		case parser.Node:
			if d := NewNodeDiff(x, y.(parser.Node)); !d.Equal() {
				children[i] = d
			}
		case parse.Scanner:
			if s, t := x.String(), y.(parse.Scanner).String(); s != t {
				text[i] = [2]string{s, t}
			}
		}
	}
	return NodeDiff{
		A:        a,
		B:        b,
		Children: children,
		Types:    types,
		Text:     text,
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
