// Package utf8valid implements the incremental UTF-8 validation step of the
// reader: given the bytes that arrived since the last validation, it reports
// how many leading bytes are complete, valid text.
//
// A span may end in the middle of a multi-byte sequence because reads split
// characters arbitrarily. Such a trailing prefix is not an error; it is left
// out of the valid count and the caller retries once more bytes arrive.
package utf8valid

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/streamlex/simd"
)

// Error reports a byte that can never start or continue valid UTF-8.
type Error struct {
	// Offset is the index of the first illegal byte within the validated span.
	Offset int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 byte at offset %d", e.Offset)
}

// Complete returns the length of the longest prefix of p consisting of whole,
// valid UTF-8 characters.
//
// Outcomes:
//   - n == len(p), nil: p is entirely valid
//   - n < len(p), nil: p[n:] is a valid but incomplete sequence (at most 3 bytes)
//   - n, *Error: p[n] is illegal; Error.Offset == n
func Complete(p []byte) (int, error) {
	i := 0
	for i < len(p) {
		// ASCII runs dominate real input; skip them a word at a time
		if p[i] < utf8.RuneSelf {
			j := simd.FirstNonASCII(p[i:])
			if j == -1 {
				return len(p), nil
			}
			i += j
			continue
		}

		if !utf8.FullRune(p[i:]) {
			return i, nil
		}
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return i, &Error{Offset: i}
		}
		i += size
	}
	return i, nil
}

// Incomplete reports whether p is a non-empty proper prefix of a valid
// multi-byte sequence.
func Incomplete(p []byte) bool {
	return len(p) > 0 && len(p) < utf8.UTFMax && !utf8.FullRune(p)
}
