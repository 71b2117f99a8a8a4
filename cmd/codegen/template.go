package codegen

import (
	"bytes"
	"go/format"
	"io"
	"text/template"

	"github.com/arr-ai/bnf/parser"
)

// TemplateData is everything the generated file is built from.
type TemplateData struct {
	CommandLine string
	PackageName string
	StartRule   string
	Backtrack   bool
	Grammar     GoNode
	Rules       []RuleIdent
}

// MakeTemplateData prepares g for rendering with start as the parse entry
// point.
func MakeTemplateData(g parser.Grammar, start, pkg, commandLine string, backtrack bool) TemplateData {
	return TemplateData{
		CommandLine: commandLine,
		PackageName: pkg,
		StartRule:   start,
		Backtrack:   backtrack,
		Grammar:     MakeGrammar(g),
		Rules:       RuleIdents(g.RuleNames()),
	}
}

// StartName is the Go name used for the start rule's parse helper.
func (d TemplateData) StartName() string {
	return GoName(d.StartRule)
}

// StartIdent is the constant naming the start rule.
func (d TemplateData) StartIdent() string {
	for _, r := range d.Rules {
		if r.Rule == d.StartRule {
			return r.Ident
		}
	}
	return "Rule" + GoName(d.StartRule)
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by "bnf {{.CommandLine}}". DO NOT EDIT.

package {{.PackageName}}

import (
	"github.com/arr-ai/bnf/parser"
)

const (
{{- range .Rules}}
	{{.Ident}} = {{printf "%q" .Rule}}
{{- end}}
)

// Grammar returns a fresh copy of the grammar this file was generated from.
func Grammar() parser.Grammar {
	return {{.Grammar}}
}

var parse{{.StartName}}Parser = parser.MustCompile(Grammar(), {{.StartIdent}}
{{- if .Backtrack}}, parser.Backtracking(){{end}})

// Parse{{.StartName}} parses input as a <{{.StartRule}}>.
func Parse{{.StartName}}(input string) (parser.Node, error) {
	return parse{{.StartName}}Parser.Parse(input)
}
`))

// Write renders data as unformatted Go source.
func Write(w io.Writer, data TemplateData) error {
	return fileTemplate.Execute(w, data)
}

// Source renders data as gofmt-formatted Go source.
func Source(data TemplateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, data); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
