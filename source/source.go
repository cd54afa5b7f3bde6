// Package source provides io.Reader adapters that feed a streamlex.Reader:
// raw file descriptors, encoding normalisation and a follow mode that keeps
// reading a file as it grows.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gogs/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/coregx/streamlex/internal/utf8valid"
)

// sniffLen is how much input Transcode inspects before choosing a decoder.
const sniffLen = 2048

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// ErrUnknownCharset is returned by Transcode when the detected charset has no
// decoder.
var ErrUnknownCharset = errors.New("source: unsupported charset")

// Decode returns a reader that strips a UTF-8 byte order mark, converts
// UTF-16 input announced by a BOM and replaces invalid UTF-8 with U+FFFD.
//
// It trades the reader's strict validation for lenient input handling.
func Decode(r io.Reader) io.Reader {
	// BOMOverride's UTF-8 branch passes invalid bytes through, so the
	// replacing decoder runs after it on every branch.
	return transform.NewReader(r, transform.Chain(unicode.BOMOverride(transform.Nop), unicode.UTF8.NewDecoder()))
}

// Transcode sniffs the start of r and returns a reader producing UTF-8 along
// with the name of the detected charset. UTF-8 input passes through with its
// BOM removed.
func Transcode(r io.Reader) (io.Reader, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", err
	}
	head = head[:n]

	if _, verr := utf8valid.Complete(head); verr == nil {
		return io.MultiReader(bytes.NewReader(bytes.TrimPrefix(head, utf8BOM)), r), "UTF-8", nil
	}

	best, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil, "", fmt.Errorf("source: detect charset: %w", err)
	}
	enc, name := charset.Lookup(best.Charset)
	if enc == nil {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownCharset, best.Charset)
	}
	return transform.NewReader(io.MultiReader(bytes.NewReader(head), r), enc.NewDecoder()), name, nil
}
