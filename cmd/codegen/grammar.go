package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arr-ai/bnf/parser"
)

const (
	noScope int = iota
	squigglyScope
	mapScope
)

// GoNode is a fragment of Go source for a composite literal. Children are
// rendered comma separated inside the node's scope.
type GoNode struct {
	name     string
	children []GoNode
	scope    int
}

func (g GoNode) String() string {
	x := map[int]struct {
		open  string
		close string
	}{
		noScope:       {"", ""},
		mapScope:      {": ", ""},
		squigglyScope: {"{", "}"},
	}[g.scope]
	children := make([]string, 0, len(g.children))
	for _, c := range g.children {
		children = append(children, c.String())
	}
	body := strings.Join(children, ",\n")
	if g.scope == squigglyScope && len(children) > 1 {
		body = "\n" + body + ",\n"
	}
	return g.name + x.open + body + x.close
}

func (g *GoNode) Add(n GoNode) {
	g.children = append(g.children, n)
}

func stringNode(fmtString string, args ...interface{}) GoNode {
	return GoNode{name: fmt.Sprintf(fmtString, args...)}
}

func walkSymbol(sym parser.Symbol) GoNode {
	switch s := sym.(type) {
	case parser.Literal:
		return stringNode("parser.Literal(%s)", strconv.Quote(string(s)))
	case parser.RuleRef:
		return stringNode("parser.RuleRef(%s)", strconv.Quote(string(s)))
	}
	panic(fmt.Errorf("unexpected symbol type: %v %[1]T", sym))
}

func walkAlternative(alt parser.Alternative) GoNode {
	node := GoNode{scope: squigglyScope}
	for _, sym := range alt {
		node.Add(walkSymbol(sym))
	}
	return node
}

// MakeGrammar renders g as a parser.Grammar composite literal with rules in
// sorted order.
func MakeGrammar(g parser.Grammar) GoNode {
	root := GoNode{name: "parser.Grammar", scope: squigglyScope}
	for _, rule := range g.RuleNames() {
		alts := GoNode{scope: squigglyScope}
		for _, alt := range g[rule] {
			alts.Add(walkAlternative(alt))
		}
		root.Add(GoNode{
			name:     strconv.Quote(rule),
			children: []GoNode{alts},
			scope:    mapScope,
		})
	}
	return root
}
