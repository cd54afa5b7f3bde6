// Package predicate provides the character classification capability the
// reader scans with.
//
// A Predicate accepts or rejects one character. Closures, single characters,
// character sets, and ranges all implement it, so they can be passed to the
// reader and combined with Not and AnyOf interchangeably:
//
//	sep := predicate.Chars(" ><")
//	word := predicate.Not(sep, predicate.Whitespace)
//	ident := predicate.AnyOf(predicate.XIDContinue, predicate.Rune('-'))
//
// Predicates that can describe their ASCII behaviour as a byte table
// implement Tabled. The reader uses the table to skip runs of accepted ASCII
// bytes without decoding them.
package predicate

import "strings"

// Predicate classifies one character.
type Predicate interface {
	// Accept reports whether r is accepted.
	Accept(r rune) bool
}

// Tabled is implemented by predicates with an exact answer for every ASCII
// byte.
//
// ASCIITable returns a table where entry b, for b < 0x80, equals
// Accept(rune(b)). Entries for b >= 0x80 are always false: such bytes start
// multi-byte characters, which must be decoded and passed to Accept.
type Tabled interface {
	Predicate
	ASCIITable() *[256]bool
}

// Func adapts an ordinary function to the Predicate interface.
type Func func(r rune) bool

// Accept calls f(r).
func (f Func) Accept(r rune) bool { return f(r) }

// Rune accepts exactly one character.
type Rune rune

// Accept reports whether r equals the character.
func (c Rune) Accept(r rune) bool { return rune(c) == r }

// Range accepts characters in the closed interval [Lo, Hi].
type Range struct {
	Lo, Hi rune
}

// Accept reports whether Lo <= r <= Hi.
func (g Range) Accept(r rune) bool { return g.Lo <= r && r <= g.Hi }

// RangeHalfOpen accepts characters in the half-open interval [Lo, Hi).
type RangeHalfOpen struct {
	Lo, Hi rune
}

// Accept reports whether Lo <= r < Hi.
func (g RangeHalfOpen) Accept(r rune) bool { return g.Lo <= r && r < g.Hi }

// Set accepts any character of a string, without precomputation.
// Use Chars for sets scanned over long inputs.
type Set string

// Accept reports whether r occurs in the set.
func (s Set) Accept(r rune) bool { return strings.ContainsRune(string(s), r) }

// CharSet is a character set with a precomputed ASCII table.
type CharSet struct {
	table [256]bool
	wide  []rune
}

// Chars returns a set accepting every character of chars.
func Chars(chars string) *CharSet {
	s := &CharSet{}
	for _, r := range chars {
		if r < 0x80 {
			s.table[r] = true
		} else {
			s.wide = append(s.wide, r)
		}
	}
	return s
}

// Accept reports whether r is in the set.
func (s *CharSet) Accept(r rune) bool {
	if r >= 0 && r < 0x80 {
		return s.table[r]
	}
	for _, w := range s.wide {
		if w == r {
			return true
		}
	}
	return false
}

// ASCIITable implements Tabled.
func (s *CharSet) ASCIITable() *[256]bool { return &s.table }

// NoneOf returns a set accepting every character not in chars.
func NoneOf(chars string) Predicate {
	return Not(Chars(chars))
}

// Not returns a predicate accepting r iff none of ps accept it (logical NOR).
// Not() with no arguments accepts everything.
func Not(ps ...Predicate) Predicate {
	n := &nor{ps: ps}
	if t, ok := tables(ps); ok {
		n.table = new([256]bool)
		for b := 0; b < 0x80; b++ {
			n.table[b] = true
			for _, tb := range t {
				if tb[b] {
					n.table[b] = false
					break
				}
			}
		}
		return &tabledNor{nor: n}
	}
	return n
}

// AnyOf returns a predicate accepting r iff any of ps accepts it (logical OR).
// AnyOf() with no arguments rejects everything.
func AnyOf(ps ...Predicate) Predicate {
	o := &or{ps: ps}
	if t, ok := tables(ps); ok {
		o.table = new([256]bool)
		for b := 0; b < 0x80; b++ {
			for _, tb := range t {
				if tb[b] {
					o.table[b] = true
					break
				}
			}
		}
		return &tabledOr{or: o}
	}
	return o
}

type nor struct {
	ps    []Predicate
	table *[256]bool
}

func (n *nor) Accept(r rune) bool {
	for _, p := range n.ps {
		if p.Accept(r) {
			return false
		}
	}
	return true
}

type tabledNor struct{ *nor }

func (n *tabledNor) ASCIITable() *[256]bool { return n.table }

type or struct {
	ps    []Predicate
	table *[256]bool
}

func (o *or) Accept(r rune) bool {
	for _, p := range o.ps {
		if p.Accept(r) {
			return true
		}
	}
	return false
}

type tabledOr struct{ *or }

func (o *tabledOr) ASCIITable() *[256]bool { return o.table }

// tables collects the ASCII tables of ps, reporting false if any member
// lacks one.
func tables(ps []Predicate) ([]*[256]bool, bool) {
	out := make([]*[256]bool, 0, len(ps))
	for _, p := range ps {
		t, ok := p.(Tabled)
		if !ok {
			return nil, false
		}
		out = append(out, t.ASCIITable())
	}
	return out, true
}

// TableOf returns the ASCII table of p, or nil if p does not provide one.
func TableOf(p Predicate) *[256]bool {
	if t, ok := p.(Tabled); ok {
		return t.ASCIITable()
	}
	return nil
}
