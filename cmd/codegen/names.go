package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// GoName turns a rule name into an exported Go identifier. Characters that
// cannot appear in an identifier act as word breaks.
func GoName(rule string) string {
	var sb strings.Builder
	for _, r := range rule {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	name := strcase.ToCamel(DropCaps(sb.String()))
	if name == "" || !unicode.IsLetter([]rune(name)[0]) {
		name = "X" + name
	}
	return name
}

// DropCaps lowercases all but the first letter of each run of capitals so
// that "HTTPHeader" camel-cases as "HttpHeader". A capital followed by a
// lowercase letter starts a new word and is kept.
func DropCaps(rule string) string {
	isCaps := func(r uint8) bool { return r >= 'A' && r <= 'Z' }
	isLower := func(r uint8) bool { return r >= 'a' && r <= 'z' }
	out := make([]string, 0, len(rule))
	for i := 0; i < len(rule); i++ {
		out = append(out, string(rule[i]))
		if isCaps(rule[i]) {
			for i+1 < len(rule) && isCaps(rule[i+1]) && !(i+2 < len(rule) && isLower(rule[i+2])) {
				i++
				out = append(out, strings.ToLower(string(rule[i])))
			}
		}
	}

	return strings.Join(out, "")
}

// RuleIdent pairs a rule with the Go constant naming it.
type RuleIdent struct {
	Ident string
	Rule  string
}

// RuleIdents returns a Rule<Name> constant for each rule, in the order given.
// Names that collide after camel-casing get the smallest numeric suffix not
// already taken by an earlier rule.
func RuleIdents(rules []string) []RuleIdent {
	used := map[string]bool{}
	idents := make([]RuleIdent, 0, len(rules))
	for _, rule := range rules {
		base := "Rule" + GoName(rule)
		ident := base
		for n := 2; used[ident]; n++ {
			ident = fmt.Sprintf("%s%d", base, n)
		}
		used[ident] = true
		idents = append(idents, RuleIdent{Ident: ident, Rule: rule})
	}
	return idents
}
