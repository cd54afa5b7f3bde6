package streamlex

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/coregx/streamlex/internal/utf8valid"
)

// maxConsecutiveEmptyReads bounds retries on sources returning (0, nil).
const maxConsecutiveEmptyReads = 100

// Pull reads more input while keeping the buffer at its initial capacity.
//
// If more than InitialCapacity unconsumed bytes are buffered it does nothing.
// Otherwise it compacts the buffer when free space at the end of the initial
// capacity falls below ShrinkThreshold, which invalidates outstanding spans,
// and then reads into that space. Pull returns once new content is available
// or the source has ended.
func (r *Reader) Pull() error {
	if r.src == nil || r.eof {
		return nil
	}
	initCap := r.cfg.InitialCapacity
	if r.offRaw-r.offConsumed > initCap {
		return nil
	}
	if r.offRaw+r.cfg.ShrinkThreshold > initCap {
		r.compact()
	}
	r.bufCap = initCap
	if r.offRaw >= initCap {
		return nil
	}
	r.stats.Pulls++
	return r.fetch(r.Pull)
}

// PullMore reads more input, doubling the buffer when free space falls below
// ExtendThreshold. It never compacts, so spans stay valid.
func (r *Reader) PullMore() error {
	if r.src == nil || r.eof {
		return nil
	}
	if r.bufCap-r.offRaw < r.cfg.ExtendThreshold {
		r.grow()
	}
	r.stats.PullMores++
	return r.fetch(r.PullMore)
}

// PullAtLeast pulls with PullMore until at least n bytes of content are
// available. It reports false if the source ended first.
func (r *Reader) PullAtLeast(n int) (bool, error) {
	for r.offValid-r.offConsumed < n {
		if r.src == nil || r.eof {
			return false, nil
		}
		if err := r.PullMore(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Compact discards consumed bytes without reading, once they make up at
// least half of the buffered input, and returns the buffer to its initial
// capacity when the rest fits. Like Pull it invalidates outstanding spans.
//
// Loops made only of unbounded scans never compact on their own. Calling
// Compact between records keeps the buffer proportional to the longest
// record rather than to the whole input.
func (r *Reader) Compact() {
	if r.src == nil || r.offConsumed == 0 || r.offConsumed < r.offRaw-r.offConsumed {
		return
	}
	r.compact()
	if r.offRaw < r.cfg.InitialCapacity {
		r.bufCap = r.cfg.InitialCapacity
	}
}

func (r *Reader) compact() {
	if r.offConsumed == 0 {
		return
	}
	shift := r.offConsumed
	r.offRaw = copy(r.buf, r.buf[shift:r.offRaw])
	r.offValid -= shift
	r.offConsumed = 0
	r.totConsumed += int64(shift)
	r.gen++
	r.stats.Compactions++
	r.debug("compact", slog.Int("shift", shift), slog.Int("kept", r.offRaw))
}

func (r *Reader) grow() {
	newCap := r.bufCap * 2
	if len(r.buf) < newCap {
		buf := make([]byte, newCap)
		copy(buf, r.buf[:r.offRaw])
		r.buf = buf
		r.stats.Reallocations++
	}
	r.bufCap = newCap
	r.stats.Grows++
	r.debug("grow", slog.Int("capacity", newCap), slog.Int("used", r.offRaw))
}

// fetch reads once into the free space and validates what arrived. If no new
// character became complete it repeats through again, which re-applies the
// caller's capacity policy.
func (r *Reader) fetch(again func() error) error {
	n, err := r.read(r.buf[r.offRaw:r.bufCap])
	if n > 0 {
		r.offRaw += n
		valid, verr := r.validate()
		if verr != nil {
			return verr
		}
		if err == nil {
			if valid > 0 {
				return nil
			}
			return again()
		}
	}
	if errors.Is(err, io.EOF) {
		r.eof = true
		if r.offValid != r.offRaw {
			return &EncodingError{
				Offset: r.totConsumed + int64(r.offValid),
				Err:    ErrTruncatedEncoding,
			}
		}
		return nil
	}
	return err
}

func (r *Reader) read(p []byte) (int, error) {
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.src.Read(p)
		if n < 0 || n > len(p) {
			panic(errNegativeRead)
		}
		r.stats.Reads++
		r.stats.BytesRead += uint64(n)
		if n > 0 || err != nil {
			return n, err
		}
	}
	return 0, io.ErrNoProgress
}

// validate extends offValid over the complete characters read so far.
func (r *Reader) validate() (int, error) {
	n, err := utf8valid.Complete(r.buf[r.offValid:r.offRaw])
	r.offValid += n
	if err != nil {
		return n, &EncodingError{
			Offset: r.totConsumed + int64(r.offValid),
			Err:    ErrInvalidEncoding,
		}
	}
	return n, nil
}

func (r *Reader) debug(msg string, attrs ...slog.Attr) {
	if r.log == nil {
		return
	}
	r.log.LogAttrs(context.Background(), slog.LevelDebug, "streamlex: "+msg, attrs...)
}
