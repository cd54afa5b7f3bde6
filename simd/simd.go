// Package simd provides word-at-a-time byte search primitives used by the
// scanner fast paths.
//
// All functions use SWAR (SIMD Within A Register): eight bytes are loaded as
// one uint64 and tested in parallel with bitwise arithmetic. The functions are
// portable pure Go and behave exactly like their bytes package counterparts;
// they exist so a scan loop can skip runs of uninteresting bytes without
// decoding runes one by one.
//
// The primary use case is skipping ahead in the reader window while looking
// for the first byte of a pattern candidate, or for the end of an ASCII run
// accepted by a predicate.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// broadcast replicates b into every byte of a uint64.
// Example: b=0x42 → 0x4242424242424242
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// zeroBytes returns a mask with the high bit set for every zero byte of v.
//
// Formula (Hacker's Delight): (v - 0x01..01) & ^v & 0x80..80
//   - subtracting 0x01 from each byte borrows only if that byte was 0x00
//   - AND with ^v drops bytes that had their high bit set originally
//   - AND with 0x80 keeps one marker bit per byte
//
// A borrow can only falsely mark bytes above a true zero byte, so the lowest
// marker is always exact.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// firstMarked converts the lowest marker bit into a byte index.
func firstMarked(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.IndexByte.
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	// For small inputs, byte-by-byte is faster (no setup overhead)
	idx := 0
	if n >= 8 {
		mask := broadcast(needle)
		for ; idx+8 <= n; idx += 8 {
			chunk := binary.LittleEndian.Uint64(haystack[idx:])
			if m := zeroBytes(chunk ^ mask); m != 0 {
				return idx + firstMarked(m)
			}
		}
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// Memchr2 returns the index of the first instance of either needle1 or needle2
// in haystack, or -1 if neither is present.
//
// Both needles are checked within the same 8-byte chunk, so the result is the
// position of whichever needle appears first.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	idx := 0
	if n >= 8 {
		mask1, mask2 := broadcast(needle1), broadcast(needle2)
		for ; idx+8 <= n; idx += 8 {
			chunk := binary.LittleEndian.Uint64(haystack[idx:])
			if m := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2); m != 0 {
				return idx + firstMarked(m)
			}
		}
	}

	for ; idx < n; idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 {
			return idx
		}
	}
	return -1
}

// Memchr3 returns the index of the first instance of needle1, needle2, or
// needle3 in haystack, or -1 if none are present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	idx := 0
	if n >= 8 {
		mask1, mask2, mask3 := broadcast(needle1), broadcast(needle2), broadcast(needle3)
		for ; idx+8 <= n; idx += 8 {
			chunk := binary.LittleEndian.Uint64(haystack[idx:])
			m := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2) | zeroBytes(chunk^mask3)
			if m != 0 {
				return idx + firstMarked(m)
			}
		}
	}

	for ; idx < n; idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 || b == needle3 {
			return idx
		}
	}
	return -1
}
