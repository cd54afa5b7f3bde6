package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"bad_package", "package: 1x\ntype: T\ntokens: [{name: A, text: a}]", "invalid package"},
		{"unexported_type", "package: p\ntype: t\ntokens: [{name: A, text: a}]", "invalid type"},
		{"no_tokens", "package: p\ntype: T\n", "no tokens"},
		{"duplicate_name", "package: p\ntype: T\ntokens: [{name: A, text: a}, {name: A, text: b}]", "duplicate token name"},
		{"duplicate_text", "package: p\ntype: T\ntokens: [{name: A, text: a}, {name: B, text: a}]", "share literal"},
		{"empty_text", "package: p\ntype: T\ntokens: [{name: A, text: ''}]", "non-empty"},
		{"shadowed", "package: p\ntype: T\ntokens: [{name: A, text: '-'}, {name: B, text: '->'}]", "shadowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLongestFirstResolvesShadowing(t *testing.T) {
	def, err := Parse([]byte("package: p\ntype: T\nlongest_first: true\ntokens: [{name: A, text: '-'}, {name: B, text: '->'}]"))
	require.NoError(t, err)

	gs := def.groups()
	require.Len(t, gs, 1)
	assert.Equal(t, byte('-'), gs[0].Lead)
	assert.Equal(t, 2, gs[0].Max)
	assert.Equal(t, []Token{{"B", "->"}, {"A", "-"}}, gs[0].Tokens)
}

func TestGenerateCompiles(t *testing.T) {
	def, err := Parse([]byte("package: ops\ntype: Op\ntokens: [{name: Arrow, text: '→'}, {name: Plus, text: '+'}]"))
	require.NoError(t, err)

	src, err := Generate(def, "ops.yaml")
	require.NoError(t, err)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "ops_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "ops", f.Name.Name)
	assert.Contains(t, string(src), "// Code generated by tokengen from ops.yaml. DO NOT EDIT.")
	assert.Contains(t, string(src), "case 0xe2:")
	assert.Contains(t, string(src), `strings.HasPrefix(s, "→")`)
}

func TestGenerateWithoutStrings(t *testing.T) {
	def, err := Parse([]byte("package: p\ntype: T\ntokens: [{name: A, text: a}, {name: B, text: b}]"))
	require.NoError(t, err)

	src, err := Generate(def, "t.yaml")
	require.NoError(t, err)
	assert.NotContains(t, string(src), `import "strings"`)
}

// TestCheckedInPunct keeps internal/punct in sync with its definition.
func TestCheckedInPunct(t *testing.T) {
	dir := filepath.Join("..", "..", "internal", "punct")
	data, err := os.ReadFile(filepath.Join(dir, "punct.yaml"))
	require.NoError(t, err)
	def, err := Parse(data)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(dir, "punct_gen.go"))
	require.NoError(t, err)
	got, err := Generate(def, "punct.yaml")
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, got), "punct_gen.go is stale; run go generate ./internal/punct")
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ops.yaml")
	require.NoError(t, os.WriteFile(in, []byte("package: ops\ntype: Op\ntokens: [{name: Plus, text: '+'}]"), 0o644))
	out := filepath.Join(dir, "ops_gen.go")

	cmd := newCommand()
	cmd.SetArgs([]string{"-o", out, in})
	require.NoError(t, cmd.Execute())

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "type Op uint8")
}
