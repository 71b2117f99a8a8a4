// Package gotree builds and prints text trees with box-drawing connectors.
package gotree

import "strings"

const (
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

// Tree is a labelled node with ordered children.
type Tree struct {
	text  string
	items []*Tree
}

// New returns a tree with a root labelled text.
func New(text string) *Tree {
	return &Tree{text: text}
}

// Add appends a child labelled text and returns it.
func (t *Tree) Add(text string) *Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

// AddTree appends an existing tree as a child.
func (t *Tree) AddTree(tree *Tree) {
	t.items = append(t.items, tree)
}

func (t *Tree) Text() string {
	return t.text
}

func (t *Tree) Items() []*Tree {
	return t.items
}

// Print renders the tree, one line per node. Multi-line labels keep their
// continuation lines aligned under the connector.
func (t *Tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text)
	sb.WriteByte('\n')
	printItems(&sb, t.items, "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []*Tree, indent string) {
	for i, item := range items {
		last := i == len(items)-1
		connector, continuation := middleItem, continueItem
		if last {
			connector, continuation = lastItem, emptySpace
		}
		for j, line := range strings.Split(item.text, "\n") {
			sb.WriteString(indent)
			if j == 0 {
				sb.WriteString(connector)
			} else {
				sb.WriteString(continuation)
			}
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		printItems(sb, item.items, indent+continuation)
	}
}
