// Package pattern provides literal patterns the reader matches against its
// window: a single string or character, fixed arrays of them, a precomputed
// literal set, and enumerated token sets produced by tokengen.
//
// A Pattern is used in two steps. Indicate looks only at the first raw byte
// at the current position and reports the longest candidate that could start
// with it, so the reader knows how many bytes must be buffered before the
// exact test. Match then runs against text that is known to be present and
// reports the matched length and which candidate matched:
//
//	n, ok := pat.Indicate(window[0])    // reject cheaply, learn how much to fetch
//	size, which, ok := pat.Match(text)  // exact test, declaration order wins
//
// When several candidates share a first byte, Indicate reports the maximum of
// their lengths so the reader never under-fetches. Match tries candidates in
// declaration order and returns the first that matches: earlier entries have
// priority, so list "==" before "=".
//
// Empty candidates never match.
package pattern

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/streamlex/simd"
)

// Pattern matches one of a fixed set of literal candidates at the start of a
// text.
type Pattern interface {
	// Indicate reports whether a candidate may start with byte b and, if so,
	// the maximum length of such candidates in bytes.
	Indicate(b byte) (maxLen int, ok bool)

	// Match tests the candidates against the start of s in declaration order.
	// It returns the matched length and the index (discriminant) of the first
	// matching candidate.
	Match(s string) (n, which int, ok bool)
}

// Finder is an optional interface for patterns that can locate candidate
// positions in bulk.
//
// Find returns the smallest index at which a candidate may start, counting
// candidates cut short by the end of haystack, or len(haystack) if there is
// none. Positions before the returned index are guaranteed not to match.
type Finder interface {
	Find(haystack []byte) int
}

// String is a single literal string.
type String string

// Indicate implements Pattern.
func (p String) Indicate(b byte) (int, bool) {
	if len(p) == 0 || p[0] != b {
		return 0, false
	}
	return len(p), true
}

// Match implements Pattern. The discriminant is always 0.
func (p String) Match(s string) (int, int, bool) {
	if len(p) == 0 || !strings.HasPrefix(s, string(p)) {
		return 0, 0, false
	}
	return len(p), 0, true
}

// Find implements Finder.
func (p String) Find(haystack []byte) int {
	if len(p) == 0 {
		return len(haystack)
	}
	if i := simd.Memmem(haystack, []byte(p)); i >= 0 {
		return i
	}
	// A prefix of p may still be cut off at the end of haystack.
	tail := max(len(haystack)-len(p)+1, 0)
	return tail + found(simd.Memchr(haystack[tail:], p[0]), haystack[tail:])
}

// Rune is a single literal character.
type Rune rune

func (p Rune) encode() ([utf8.UTFMax]byte, int) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(p))
	return buf, n
}

// Indicate implements Pattern.
func (p Rune) Indicate(b byte) (int, bool) {
	buf, n := p.encode()
	if buf[0] != b {
		return 0, false
	}
	return n, true
}

// Match implements Pattern. The discriminant is always 0.
func (p Rune) Match(s string) (int, int, bool) {
	buf, n := p.encode()
	if len(s) < n || s[:n] != string(buf[:n]) {
		return 0, 0, false
	}
	return n, 0, true
}

// Find implements Finder.
func (p Rune) Find(haystack []byte) int {
	buf, _ := p.encode()
	return found(simd.Memchr(haystack, buf[0]), haystack)
}

// Runes is a fixed array of alternative characters.
type Runes []rune

// Indicate implements Pattern.
func (p Runes) Indicate(b byte) (int, bool) {
	best := 0
	for _, r := range p {
		if Rune(r).leads(b) {
			best = max(best, utf8.RuneLen(r))
		}
	}
	return best, best > 0
}

// Match implements Pattern. The discriminant is the index in the array.
func (p Runes) Match(s string) (int, int, bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	first, size := utf8.DecodeRuneInString(s)
	for i, r := range p {
		if r == first && utf8.ValidRune(r) {
			return size, i, true
		}
	}
	return 0, 0, false
}

// Find implements Finder.
func (p Runes) Find(haystack []byte) int {
	var leads firstBytes
	for _, r := range p {
		buf, _ := Rune(r).encode()
		leads.add(buf[0])
	}
	return leads.find(haystack)
}

func (p Rune) leads(b byte) bool {
	buf, _ := p.encode()
	return buf[0] == b
}

// Strings is a fixed array of alternative strings.
type Strings []string

// Indicate implements Pattern.
func (p Strings) Indicate(b byte) (int, bool) {
	best := 0
	for _, s := range p {
		if len(s) > 0 && s[0] == b {
			best = max(best, len(s))
		}
	}
	return best, best > 0
}

// Match implements Pattern. The discriminant is the index in the array.
func (p Strings) Match(s string) (int, int, bool) {
	for i, lit := range p {
		if len(lit) > 0 && strings.HasPrefix(s, lit) {
			return len(lit), i, true
		}
	}
	return 0, 0, false
}

// Find implements Finder.
func (p Strings) Find(haystack []byte) int {
	var leads firstBytes
	for _, s := range p {
		if len(s) > 0 {
			leads.add(s[0])
		}
	}
	return leads.find(haystack)
}

// firstBytes collects distinct candidate lead bytes and picks the narrowest
// search primitive for them.
type firstBytes struct {
	few   [3]byte
	n     int
	table [256]bool
}

func (f *firstBytes) add(b byte) {
	if f.table[b] {
		return
	}
	f.table[b] = true
	if f.n < len(f.few) {
		f.few[f.n] = b
	}
	f.n++
}

func (f *firstBytes) find(haystack []byte) int {
	switch f.n {
	case 0:
		return len(haystack)
	case 1:
		return found(simd.Memchr(haystack, f.few[0]), haystack)
	case 2:
		return found(simd.Memchr2(haystack, f.few[0], f.few[1]), haystack)
	case 3:
		return found(simd.Memchr3(haystack, f.few[0], f.few[1], f.few[2]), haystack)
	default:
		return found(simd.MemchrInTable(haystack, &f.table), haystack)
	}
}

// found maps a -1 search result to len(haystack).
func found(idx int, haystack []byte) int {
	if idx < 0 {
		return len(haystack)
	}
	return idx
}
