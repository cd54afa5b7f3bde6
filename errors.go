package streamlex

import (
	"errors"
	"fmt"
)

// Common reader errors
var (
	// ErrInvalidEncoding indicates a byte sequence that can never be valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

	// ErrTruncatedEncoding indicates the source ended inside a multi-byte sequence.
	ErrTruncatedEncoding = errors.New("incomplete UTF-8 code point at the end")

	// ErrStaleSpan is the panic value when a Span is read after the buffer it
	// points into has been compacted.
	ErrStaleSpan = errors.New("span used after buffer compaction")

	errNegativeRead = errors.New("streamlex: reader returned invalid count from Read")
)

// EncodingError reports malformed input together with the absolute stream
// offset of the first offending byte.
type EncodingError struct {
	// Offset is the absolute byte position in the stream, comparable with
	// Reader.Consumed.
	Offset int64

	// Err is ErrInvalidEncoding or ErrTruncatedEncoding.
	Err error
}

// Error implements the error interface
func (e *EncodingError) Error() string {
	return fmt.Sprintf("streamlex: %v at byte %d", e.Err, e.Offset)
}

// Unwrap returns the underlying error
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// BoundaryError is the panic value of Consume when the byte count does not
// fall on a character boundary. It signals a caller bug, not bad input.
type BoundaryError struct {
	N   int
	Len int
}

// Error implements the error interface
func (e *BoundaryError) Error() string {
	return fmt.Sprintf("streamlex: %d is not at a UTF-8 character boundary (content length %d)", e.N, e.Len)
}
