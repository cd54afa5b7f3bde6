package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Definition describes one enumerated token set.
type Definition struct {
	Package string `yaml:"package"`
	Type    string `yaml:"type"`
	Doc     string `yaml:"doc"`

	// LongestFirst reorders matching so a longer literal wins over its
	// prefix. Constant values keep declaration order.
	LongestFirst bool `yaml:"longest_first"`

	Tokens []Token `yaml:"tokens"`
}

// Token is one name = literal pair.
type Token struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// Parse decodes and validates a YAML definition.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Definition) validate() error {
	if !token.IsIdentifier(d.Package) {
		return fmt.Errorf("invalid package name %q", d.Package)
	}
	if !token.IsIdentifier(d.Type) || !token.IsExported(d.Type) {
		return fmt.Errorf("invalid type name %q", d.Type)
	}
	if len(d.Tokens) == 0 {
		return errors.New("no tokens defined")
	}
	if len(d.Tokens) > 1<<16 {
		return fmt.Errorf("too many tokens: %d", len(d.Tokens))
	}

	names := make(map[string]bool, len(d.Tokens))
	texts := make(map[string]string, len(d.Tokens))
	for _, t := range d.Tokens {
		if !token.IsIdentifier(t.Name) || !token.IsExported(t.Name) {
			return fmt.Errorf("invalid token name %q", t.Name)
		}
		if names[t.Name] {
			return fmt.Errorf("duplicate token name %q", t.Name)
		}
		names[t.Name] = true

		if t.Text == "" || !utf8.ValidString(t.Text) {
			return fmt.Errorf("token %s: literal must be non-empty UTF-8", t.Name)
		}
		if other, ok := texts[t.Text]; ok {
			return fmt.Errorf("tokens %s and %s share literal %q", other, t.Name, t.Text)
		}
		texts[t.Text] = t.Name
	}

	order := d.matchOrder()
	for i, a := range order {
		for _, b := range order[i+1:] {
			if strings.HasPrefix(b.Text, a.Text) {
				return fmt.Errorf("token %s is shadowed by %s", b.Name, a.Name)
			}
		}
	}
	return nil
}

// matchOrder returns the tokens in the order Match tries them.
func (d *Definition) matchOrder() []Token {
	order := append([]Token(nil), d.Tokens...)
	if d.LongestFirst {
		sort.SliceStable(order, func(i, j int) bool {
			return len(order[i].Text) > len(order[j].Text)
		})
	}
	return order
}

type group struct {
	Lead   byte
	Max    int
	Tokens []Token
}

// groups buckets tokens by lead byte, in order of first appearance.
func (d *Definition) groups() []group {
	var gs []group
	index := make(map[byte]int)
	for _, t := range d.matchOrder() {
		i, ok := index[t.Text[0]]
		if !ok {
			i = len(gs)
			index[t.Text[0]] = i
			gs = append(gs, group{Lead: t.Text[0]})
		}
		gs[i].Tokens = append(gs[i].Tokens, t)
		gs[i].Max = max(gs[i].Max, len(t.Text))
	}
	return gs
}

type templateData struct {
	*Definition
	Source      string
	Lower       string
	Underlying  string
	Groups      []group
	NeedStrings bool
}

// Generate renders the Go source for d. source names the definition file
// in the generated header.
func Generate(d *Definition, source string) ([]byte, error) {
	data := templateData{
		Definition: d,
		Source:     source,
		Lower:      lowerFirst(d.Type),
		Underlying: "uint8",
		Groups:     d.groups(),
	}
	if len(d.Tokens) > 1<<8 {
		data.Underlying = "uint16"
	}
	for _, t := range d.Tokens {
		if len(t.Text) > 1 {
			data.NeedStrings = true
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

// byteLit renders b as a character literal when printable ASCII.
func byteLit(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}

var tmpl = template.Must(template.New("tokens").Funcs(template.FuncMap{
	"quote":   strconv.Quote,
	"byteLit": byteLit,
}).Parse(`// Code generated by tokengen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{if .NeedStrings}}
import "strings"
{{end}}
{{if .Doc}}// {{.Type}} {{.Doc}}{{else}}// {{.Type}} enumerates a token set.{{end}}
type {{.Type}} {{.Underlying}}

const (
{{- range $i, $t := .Tokens}}
	{{$t.Name}}{{if eq $i 0}} {{$.Type}} = iota{{end}}
{{- end}}
)

var {{.Lower}}Names = [...]string{
{{- range .Tokens}}
	{{.Name}}: {{quote .Name}},
{{- end}}
}

var {{.Lower}}Text = [...]string{
{{- range .Tokens}}
	{{.Name}}: {{quote .Text}},
{{- end}}
}

// Text returns the literal of t.
func (t {{.Type}}) Text() string { return {{.Lower}}Text[t] }

// Len returns the length of the literal in bytes.
func (t {{.Type}}) Len() int { return len({{.Lower}}Text[t]) }

// String returns the name of t.
func (t {{.Type}}) String() string { return {{.Lower}}Names[t] }

// {{.Type}}Pattern matches any {{.Type}}. The discriminant reported by Match
// converts to {{.Type}}.
type {{.Type}}Pattern struct{}

// Indicate implements pattern.Pattern.
func ({{.Type}}Pattern) Indicate(b byte) (int, bool) {
	switch b {
{{- range .Groups}}
	case {{byteLit .Lead}}:
		return {{.Max}}, true
{{- end}}
	}
	return 0, false
}

// Match implements pattern.Pattern.
func ({{.Type}}Pattern) Match(s string) (int, int, bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	switch s[0] {
{{- range .Groups}}
	case {{byteLit .Lead}}:
{{- range .Tokens}}
{{- if eq (len .Text) 1}}
		return 1, int({{.Name}}), true
{{- else}}
		if strings.HasPrefix(s, {{quote .Text}}) {
			return {{len .Text}}, int({{.Name}}), true
		}
{{- end}}
{{- end}}
{{- end}}
	}
	return 0, 0, false
}
`))
