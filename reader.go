// Package streamlex provides a streaming UTF-8 tokenizer engine.
//
// A Reader pulls bytes from an io.Reader into a growable buffer, validates
// them as UTF-8 incrementally and exposes scanning primitives that hand out
// zero-copy views of the input. Character classes live in package predicate,
// literal patterns in package pattern and repetition bounds in package repeat.
//
// Basic usage:
//
//	r := streamlex.New(strings.NewReader("hello world"))
//	word, err := r.TakeWhile(predicate.ASCIIAlpha)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(word.Span) // "hello"
//
// Buffer Semantics:
//
// Bounded operations (Next, Peek, TakeOnce, Matches) keep the buffer near its
// initial capacity and may compact it, which moves unconsumed bytes to the
// start and invalidates outstanding spans. Unbounded scans (TakeWhile,
// TakeTimes and Until) grow the buffer instead, so the span a scan returns
// covers its whole range no matter how long it is. Loops built from
// unbounded scans call Compact between records to release consumed input.
//
// Thread Safety:
//
// A Reader is not safe for concurrent use.
package streamlex

import (
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/coregx/streamlex/internal/conv"
	"github.com/coregx/streamlex/internal/utf8valid"
	"github.com/coregx/streamlex/pattern"
	"github.com/coregx/streamlex/predicate"
	"github.com/coregx/streamlex/repeat"
	"github.com/coregx/streamlex/simd"
)

// Reader is a streaming UTF-8 scanner.
//
// The buffer is partitioned by three offsets:
//
//	[0, offConsumed)         consumed, eligible for compaction
//	[offConsumed, offValid)  validated content
//	[offValid, offRaw)       read but incomplete trailing bytes
//	[offRaw, bufCap)         free space
type Reader struct {
	src io.Reader // nil for borrowed readers
	cfg Config
	log *slog.Logger

	buf    []byte
	bufCap int // logical capacity, <= len(buf)

	offConsumed int
	offValid    int
	offRaw      int

	totConsumed int64 // bytes discarded by compaction
	eof         bool

	// peeked is the width of the character the last peeking step looked at.
	// It is committed by the next peeking step and cleared by anything else.
	peeked uint8

	// gen increments on every compaction; spans carry the gen they were
	// created under.
	gen uint64

	stats Stats
}

// New returns a Reader over src with DefaultConfig.
func New(src io.Reader) *Reader {
	r, err := NewWithConfig(src, DefaultConfig())
	if err != nil {
		panic(err)
	}
	return r
}

// NewWithConfig returns a Reader over src with a custom configuration.
func NewWithConfig(src io.Reader, config Config) (*Reader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Reader{
		src:    src,
		cfg:    config,
		log:    config.Logger,
		buf:    make([]byte, config.InitialCapacity),
		bufCap: config.InitialCapacity,
	}, nil
}

// FromString returns a Reader over s that never copies it.
//
// s is validated once up front; an invalid or truncated sequence is reported
// as an *EncodingError. The whole string is content from the start and the
// reader is already at end of input, so pulls are no-ops.
func FromString(s string) (*Reader, error) {
	b := borrowedBytes(s)
	n, err := utf8valid.Complete(b)
	switch {
	case err != nil:
		return nil, &EncodingError{Offset: int64(n), Err: ErrInvalidEncoding}
	case n < len(b):
		return nil, &EncodingError{Offset: int64(n), Err: ErrTruncatedEncoding}
	}
	return &Reader{
		buf:      b,
		bufCap:   len(s),
		offValid: len(s),
		offRaw:   len(s),
		eof:      true,
	}, nil
}

// MustFromString is like FromString but panics if s is not valid UTF-8.
func MustFromString(s string) *Reader {
	r, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Content returns the validated, unconsumed text.
func (r *Reader) Content() Span {
	return r.span(r.offConsumed, r.offValid)
}

func (r *Reader) content() []byte {
	return r.buf[r.offConsumed:r.offValid]
}

// Consume marks the first n bytes of Content as consumed.
//
// It panics with a *BoundaryError if n is negative, larger than the content
// or not at a character boundary. The reader is unchanged in that case.
func (r *Reader) Consume(n int) {
	c := r.content()
	if n < 0 || n > len(c) || (n < len(c) && !utf8.RuneStart(c[n])) {
		panic(&BoundaryError{N: n, Len: len(c)})
	}
	r.peeked = 0
	r.offConsumed += n
}

// Consumed returns the total number of bytes consumed since creation.
func (r *Reader) Consumed() int64 {
	return r.totConsumed + int64(r.offConsumed)
}

// Exhausted reports whether the source ended and all content is consumed.
func (r *Reader) Exhausted() bool {
	return r.eof && r.offConsumed == r.offValid
}

// first decodes the first content character. size is 0 if there is none.
func (r *Reader) first() (ch rune, size int) {
	if r.offConsumed == r.offValid {
		return 0, 0
	}
	if b := r.buf[r.offConsumed]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(r.buf[r.offConsumed:r.offValid])
}

// Next consumes and returns the next character.
// ok is false at end of input.
func (r *Reader) Next() (ch rune, ok bool, err error) {
	if r.offConsumed == r.offValid {
		if err := r.Pull(); err != nil {
			return 0, false, err
		}
	}
	ch, size := r.first()
	if size == 0 {
		return 0, false, nil
	}
	r.peeked = 0
	r.offConsumed += size
	return ch, true, nil
}

// Peek returns the next character without consuming it. Calling Peek twice
// returns the same character.
func (r *Reader) Peek() (ch rune, ok bool, err error) {
	if r.offConsumed == r.offValid {
		if err := r.Pull(); err != nil {
			return 0, false, err
		}
	}
	ch, size := r.first()
	return ch, size != 0, nil
}

// peeking commits the previously peeked character, if any, and looks at the
// one after it. It never compacts.
func (r *Reader) peeking() (ch rune, ok bool, err error) {
	r.offConsumed += int(r.peeked)
	r.peeked = 0
	if r.offConsumed == r.offValid {
		if err := r.PullMore(); err != nil {
			return 0, false, err
		}
	}
	ch, size := r.first()
	if size == 0 {
		return 0, false, nil
	}
	r.peeked = conv.IntToUint8(size)
	return ch, true, nil
}

// TakeOnce consumes the next character if p accepts it.
// ok is false, and nothing is consumed, otherwise.
func (r *Reader) TakeOnce(p predicate.Predicate) (ch rune, ok bool, err error) {
	r.peeked = 0
	if r.offConsumed == r.offValid {
		if err := r.Pull(); err != nil {
			return 0, false, err
		}
	}
	ch, size := r.first()
	if size == 0 || !p.Accept(ch) {
		return ch, false, nil
	}
	r.offConsumed += size
	return ch, true, nil
}

// Take is the result of TakeWhile and TakeTimes.
type Take struct {
	// Span is the text the scan covered.
	Span Span

	// Next is the first character not taken; HasNext is false at end of input.
	Next    rune
	HasNext bool

	// OK is false if TakeTimes rejected the run; nothing was consumed then.
	OK bool
}

// TakeWhile consumes the longest run of characters accepted by p. The run
// may be empty.
func (r *Reader) TakeWhile(p predicate.Predicate) (Take, error) {
	r.peeked = 0
	start := r.offConsumed
	table := predicate.TableOf(p)

	var t Take
	for {
		ch, ok, err := r.peeking()
		if err != nil {
			r.peeked = 0
			return Take{}, err
		}
		if !ok {
			break
		}
		if !p.Accept(ch) {
			t.Next, t.HasNext = ch, true
			break
		}
		if table != nil && ch < utf8.RuneSelf {
			r.commitPeek()
			r.skipASCII(table)
		}
	}
	r.peeked = 0
	t.Span = r.span(start, r.offConsumed)
	t.OK = true
	return t, nil
}

func (r *Reader) commitPeek() {
	r.offConsumed += int(r.peeked)
	r.peeked = 0
}

// skipASCII consumes the leading content bytes marked in table.
func (r *Reader) skipASCII(table *[256]bool) {
	c := r.content()
	if i := simd.MemchrNotInTable(c, table); i >= 0 {
		r.offConsumed += i
	} else {
		r.offConsumed += len(c)
	}
}

// TakeTimes consumes a run of characters accepted by p whose length is
// contained in b. The scan stops as soon as b wants no more characters.
//
// If the run length is not contained in b, the run is rejected: Take.OK is
// false, Take.Span holds the scanned text and nothing is consumed.
func (r *Reader) TakeTimes(p predicate.Predicate, b repeat.Bound) (Take, error) {
	r.peeked = 0
	start := r.offConsumed

	var t Take
	times := 0
	for {
		ch, ok, err := r.peeking()
		if err != nil {
			r.peeked = 0
			return Take{}, err
		}
		if !ok {
			break
		}
		if !b.WantMore(times) || !p.Accept(ch) {
			t.Next, t.HasNext = ch, true
			break
		}
		times++
	}
	r.peeked = 0
	t.Span = r.span(start, r.offConsumed)
	if !b.Contains(times) {
		r.offConsumed = start
		return t, nil
	}
	t.OK = true
	return t, nil
}

// Matches consumes the first candidate of pat that prefixes the content and
// reports its index.
func (r *Reader) Matches(pat pattern.Pattern) (which int, ok bool, err error) {
	r.peeked = 0
	if r.offConsumed == r.offValid {
		if err := r.Pull(); err != nil {
			return 0, false, err
		}
	}
	if r.offConsumed == r.offValid {
		return 0, false, nil
	}
	need, ok := pat.Indicate(r.buf[r.offConsumed])
	if !ok {
		return 0, false, nil
	}
	if _, err := r.PullAtLeast(need); err != nil {
		return 0, false, err
	}
	n, which, ok := pat.Match(trustedText(r.content()))
	if !ok {
		return 0, false, nil
	}
	r.Consume(n)
	return which, true, nil
}

// Found is the result of Until.
type Found struct {
	// Span is the text before the match. If OK is false it is the text that
	// was scanned without finding one.
	Span Span

	// Which is the index of the matched candidate.
	Which int

	// OK is false if no candidate occurred before end of input; nothing was
	// consumed then.
	OK bool
}

// Until scans for the first position where a candidate of pat matches. On
// success the text before the match and the match itself are consumed.
//
// If pat also implements pattern.Finder, it is used to skip ahead.
func (r *Reader) Until(pat pattern.Pattern) (Found, error) {
	r.peeked = 0
	start := r.offConsumed
	finder, _ := pat.(pattern.Finder)

	pos := start
	for {
		if pos == r.offValid {
			if r.eof {
				break
			}
			if err := r.PullMore(); err != nil {
				return Found{}, err
			}
			continue
		}

		window := r.buf[pos:r.offValid]
		if finder != nil {
			pos += finder.Find(window)
		} else {
			pos += indicated(pat, window)
		}
		if pos == r.offValid {
			continue
		}

		need, ok := pat.Indicate(r.buf[pos])
		if !ok || !utf8.RuneStart(r.buf[pos]) {
			pos++
			continue
		}
		for r.offValid-pos < need && !r.eof {
			if err := r.PullMore(); err != nil {
				return Found{}, err
			}
		}
		if n, which, ok := pat.Match(trustedText(r.buf[pos:r.offValid])); ok && r.boundary(pos+n) {
			f := Found{Span: r.span(start, pos), Which: which, OK: true}
			r.offConsumed = pos + n
			return f, nil
		}
		pos++
	}

	f := Found{Span: r.span(start, r.offValid)}
	r.offConsumed = start
	return f, nil
}

// indicated returns the index of the first byte of window pat may start at,
// or len(window).
func indicated(pat pattern.Pattern, window []byte) int {
	for i, b := range window {
		if _, ok := pat.Indicate(b); ok {
			return i
		}
	}
	return len(window)
}

func (r *Reader) boundary(i int) bool {
	return i == r.offValid || (i < r.offValid && utf8.RuneStart(r.buf[i]))
}
