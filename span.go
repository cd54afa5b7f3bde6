package streamlex

import (
	"strings"
	"unsafe"
)

// Span is a zero-copy view of text in a Reader's buffer.
//
// A span stays readable until the buffer is compacted, which only bounded
// pulls do (Next, Peek, TakeOnce, Matches, Pull). Reading a span after that
// panics with ErrStaleSpan instead of returning shifted bytes. Strings
// returned by String share the buffer and follow the same rule; use Clone to
// keep text across calls.
type Span struct {
	s   string
	r   *Reader
	gen uint64
}

// String returns the text. It panics with ErrStaleSpan if the span is stale.
func (s Span) String() string {
	s.check()
	return s.s
}

// Clone returns a copy of the text that is safe to retain.
func (s Span) Clone() string {
	s.check()
	return strings.Clone(s.s)
}

// Len returns the length of the text in bytes.
func (s Span) Len() int { return len(s.s) }

// IsEmpty reports whether the span has no text.
func (s Span) IsEmpty() bool { return len(s.s) == 0 }

// Valid reports whether the span can still be read.
func (s Span) Valid() bool {
	return s.r == nil || s.r.gen == s.gen
}

func (s Span) check() {
	if !s.Valid() {
		panic(ErrStaleSpan)
	}
}

// span returns the view buf[lo:hi] tagged with the current generation.
func (r *Reader) span(lo, hi int) Span {
	return Span{s: trustedText(r.buf[lo:hi]), r: r, gen: r.gen}
}

// trustedText views b as a string without copying or re-validating.
//
// This is the only unchecked []byte to string conversion in the package. It
// must only be called on ranges inside [0, offValid), which the validator has
// already confirmed to be whole UTF-8 characters.
func trustedText(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// borrowedBytes views s as a read-only byte slice. The slice must never be
// written to; borrowed readers never read or compact.
func borrowedBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
