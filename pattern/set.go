package pattern

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/streamlex/internal/conv"
	"github.com/coregx/streamlex/simd"
)

// automatonThreshold is the literal count above which a Set builds an
// Aho-Corasick automaton for Find. Below it, scanning for lead bytes is
// cheaper than running the automaton.
const automatonThreshold = 8

// Set is a literal set with precomputed lookup tables.
//
// Indicate is a single table load. Find depends on the set's shape: up to
// eight literals of at least three bytes use a Teddy fingerprint scan, more
// than eight use an Aho-Corasick automaton, and anything else scans for lead
// bytes.
//
// A Set is immutable after construction and safe to share between readers.
type Set struct {
	lits    []string
	maxLen  [256]uint16
	leads   firstBytes
	longest int
	teddy   *teddy
	auto    *ahocorasick.Automaton
}

// NewSet builds a set from lits. Declaration order is the match priority.
// Empty literals are kept for discriminant numbering but never match.
func NewSet(lits ...string) (*Set, error) {
	s := &Set{lits: append([]string(nil), lits...)}

	builder := ahocorasick.NewBuilder()
	var nonEmpty []string
	for _, lit := range s.lits {
		if lit == "" {
			continue
		}
		nonEmpty = append(nonEmpty, lit)
		n := conv.IntToUint16(len(lit))
		if n > s.maxLen[lit[0]] {
			s.maxLen[lit[0]] = n
		}
		s.leads.add(lit[0])
		s.longest = max(s.longest, len(lit))
		builder.AddPattern([]byte(lit))
	}

	if len(nonEmpty) > automatonThreshold {
		auto, err := builder.Build()
		if err != nil {
			return nil, err
		}
		s.auto = auto
	} else {
		s.teddy = newTeddy(nonEmpty)
	}
	return s, nil
}

// MustSet is like NewSet but panics if the set cannot be built.
func MustSet(lits ...string) *Set {
	s, err := NewSet(lits...)
	if err != nil {
		panic("pattern: NewSet: " + err.Error())
	}
	return s
}

// Len returns the number of literals, including empty ones.
func (s *Set) Len() int { return len(s.lits) }

// Literal returns the literal with discriminant i.
func (s *Set) Literal(i int) string { return s.lits[i] }

// Indicate implements Pattern.
func (s *Set) Indicate(b byte) (int, bool) {
	n := int(s.maxLen[b])
	return n, n > 0
}

// Match implements Pattern.
func (s *Set) Match(text string) (int, int, bool) {
	if len(text) == 0 || s.maxLen[text[0]] == 0 {
		return 0, 0, false
	}
	for i, lit := range s.lits {
		if len(lit) > 0 && strings.HasPrefix(text, lit) {
			return len(lit), i, true
		}
	}
	return 0, 0, false
}

// Find implements Finder.
//
// The automaton reports some complete match; any earlier-starting match must
// start within longest bytes of its end. If there is no complete match, only
// candidates truncated by the end of haystack remain possible.
func (s *Set) Find(haystack []byte) int {
	if s.teddy != nil {
		// Positions from tail on may hold a candidate cut off by the end of
		// haystack; only their lead byte can be checked.
		tail := max(len(haystack)-s.longest+1, 0)
		if i := s.teddy.candidate(haystack, tail); i >= 0 {
			return i
		}
		return tail + found(simd.MemchrInTable(haystack[tail:], &s.leads.table), haystack[tail:])
	}
	if s.auto == nil {
		return s.leads.find(haystack)
	}

	lower := len(haystack) - s.longest + 1
	if m := s.auto.Find(haystack, 0); m != nil {
		lower = m.End - s.longest
	}
	lower = max(lower, 0)
	if lower >= len(haystack) {
		return len(haystack)
	}
	return lower + found(simd.MemchrInTable(haystack[lower:], &s.leads.table), haystack[lower:])
}
