package parse

import (
	"strconv"
	"strings"

	"github.com/arr-ai/frozen"
)

// EndOfInput is the label expected when input should have been exhausted.
const EndOfInput = "end of input"

// Failure records where a match attempt stopped and what would have been
// accepted there. A Failure with no expected labels is "unknown": it marks a
// position without saying anything about it.
type Failure struct {
	At       Scanner
	Expected frozen.Set[string]
}

// Unknown returns a Failure at the scanner's position with no expectations.
func Unknown(at Scanner) Failure {
	return Failure{At: at, Expected: frozen.NewSet[string]()}
}

// Expect returns a Failure at the scanner's position expecting labels.
func Expect(at Scanner, labels ...string) Failure {
	return Failure{At: at, Expected: frozen.NewSet(labels...)}
}

func (f Failure) IsUnknown() bool {
	return f.Expected.IsEmpty()
}

func (f Failure) Offset() int {
	return f.At.Offset()
}

// Merge combines two failures. A known failure beats an unknown one, the
// further position wins, and equal positions union their labels. Ties keep
// g's scanner.
func (f Failure) Merge(g Failure) Failure {
	switch {
	case g.IsUnknown() && !f.IsUnknown():
		return f
	case f.IsUnknown() && !g.IsUnknown():
		return g
	}
	switch {
	case f.Offset() > g.Offset():
		return f
	case f.Offset() < g.Offset():
		return g
	}
	return Failure{At: g.At, Expected: f.Expected.Union(g.Expected)}
}

// Relabel replaces the expected labels while keeping the position.
func (f Failure) Relabel(labels ...string) Failure {
	return Failure{At: f.At, Expected: frozen.NewSet(labels...)}
}

// Labels returns the expected labels in sorted order.
func (f Failure) Labels() []string {
	return f.Expected.OrderedElements(func(a, b string) bool { return a < b })
}

// Describe renders the expected labels as "a, b or c".
func (f Failure) Describe() string {
	labels := f.Labels()
	switch len(labels) {
	case 0:
		return "nothing"
	case 1:
		return labels[0]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1]
}

// Found describes the input at the failure position.
func (f Failure) Found() string {
	if f.At.AtEnd() {
		return EndOfInput
	}
	return strconv.Quote(f.At.Excerpt(20))
}
