package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/streamlex"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestWordsCommand(t *testing.T) {
	path := writeFile(t, "words.txt", "the cat and THE hat; the end\nкот и кот\n")
	out, _, err := run(t, "words", "--top", "2", path)
	require.NoError(t, err)

	assert.Contains(t, out, "the")
	assert.Contains(t, out, "кот")
	assert.NotContains(t, out, "hat")
	assert.Contains(t, out, "10")
}

func TestCountWords(t *testing.T) {
	counts, total, err := countWords(streamlex.MustFromString("b a B, a-a!"))
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, []wordCount{{"a", 3}, {"b", 2}}, counts)
}

func TestLinesCommand(t *testing.T) {
	path := writeFile(t, "lines.txt", "first\r\n\nthird")
	out, _, err := run(t, "lines", "-n", path)
	require.NoError(t, err)
	assert.Equal(t, "     1\tfirst\n     2\t\n     3\tthird\n", out)
}

func TestLinesStamp(t *testing.T) {
	path := writeFile(t, "one.txt", "only\n")
	out, _, err := run(t, "lines", "--stamp", path)
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 2)
	assert.Len(t, fields[0], 16)
	assert.Equal(t, "only", fields[1])
}

func TestEachLineLongInput(t *testing.T) {
	cfg := streamlex.DefaultConfig()
	cfg.InitialCapacity = 32
	cfg.ShrinkThreshold = 8
	cfg.ExtendThreshold = 8
	long := strings.Repeat("x", 500)
	input := strings.Repeat(long+"\n", 10)
	r, err := streamlex.NewWithConfig(strings.NewReader(input), cfg)
	require.NoError(t, err)

	var lines []string
	n, err := eachLine(r, func(_ int, line string) error {
		lines = append(lines, strings.Clone(line))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	for _, l := range lines {
		assert.Equal(t, long, l)
	}
}

func TestEachLineKeepsBufferSmall(t *testing.T) {
	const line = "abcdefghijklmnopqr"
	input := strings.Repeat(line+"\n", 200_000)
	r := streamlex.New(strings.NewReader(input))

	n, err := eachLine(r, func(_ int, got string) error {
		if got != line {
			t.Fatalf("line = %q", got)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 200_000, n)
	assert.Equal(t, int64(len(input)), r.Consumed())

	st := r.Stats()
	assert.NotZero(t, st.Compactions)
	assert.Zero(t, st.Grows, "buffer grew on short lines: %+v", st)
}

func TestCountWordsKeepsBufferSmall(t *testing.T) {
	input := strings.Repeat("alpha beta, gamma\n", 200_000)
	r := streamlex.New(strings.NewReader(input))

	counts, total, err := countWords(r)
	require.NoError(t, err)
	assert.Equal(t, 600_000, total)
	assert.Len(t, counts, 3)

	st := r.Stats()
	assert.NotZero(t, st.Compactions)
	assert.Zero(t, st.Grows, "buffer grew on short words: %+v", st)
}

func TestTokensList(t *testing.T) {
	path := writeFile(t, "src.c", `if (a->b >= 1.5) { s = "x\"y"; } // done
/* block */ #`)
	out, _, err := run(t, "tokens", "--list", path)
	require.NoError(t, err)

	var kinds []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		kinds = append(kinds, strings.Split(line, "\t")[1])
	}
	assert.Equal(t, []string{
		"ident", "punct", "ident", "punct", "ident", "punct", "number", "punct",
		"punct", "ident", "punct", "string", "punct", "punct", "comment",
		"comment", "other",
	}, kinds)
	assert.Contains(t, out, `"\"x\\\"y\""`)
	assert.Contains(t, out, `"/* block */"`)
	assert.True(t, strings.HasPrefix(out, "0\tident\t\"if\"\n"))
}

func TestTokensSummary(t *testing.T) {
	path := writeFile(t, "src.c", "x = y + 42;")
	out, _, err := run(t, "tokens", path)
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(out), "KIND")
	assert.Contains(t, out, "ident")
	assert.Contains(t, out, "punct")
	assert.Contains(t, out, "number")
}

func TestTokensErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"unterminated_comment", "a /* never", "offset 2: unterminated block comment"},
		{"unterminated_string", `"abc`, "offset 0: unterminated string"},
		{"invalid_utf8", "ok \xff", "invalid UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "tokens", writeFile(t, "bad.c", tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLenient(t *testing.T) {
	path := writeFile(t, "bad.txt", "\xef\xbb\xbfgood \xff bad\n")
	_, _, err := run(t, "words", path)
	require.Error(t, err)

	out, _, err := run(t, "words", "--lenient", path)
	require.NoError(t, err)
	assert.Contains(t, out, "good")
	assert.Contains(t, out, "bad")
}

func TestStampCommand(t *testing.T) {
	out, _, err := run(t, "stamp", "--precise")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 21)
}

func TestStampLayouts(t *testing.T) {
	out, _, err := run(t, "stamp", "--human")
	require.NoError(t, err)
	assert.Regexp(t, `^[a-tA-T][0-9]~[01][0-9]/[0-3][0-9] [0-2][0-9]:[0-5][0-9]:[0-6][0-9]\n$`, out)

	out, _, err = run(t, "stamp", "--date-only")
	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 6)

	_, _, err = run(t, "stamp", "--date-only", "--time-only")
	require.Error(t, err)
	_, _, err = run(t, "stamp", "--human", "--precise")
	require.Error(t, err)
}

func TestDebugDumpsStats(t *testing.T) {
	path := writeFile(t, "w.txt", "alpha beta")
	_, stderr, err := run(t, "--debug", "words", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "reader stats")
	assert.Contains(t, stderr, "BytesRead")
}

func TestFollowNeedsFile(t *testing.T) {
	_, _, err := run(t, "lines", "--follow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--follow needs a file")
}
