package simd

import "encoding/binary"

// IsASCII checks if all bytes in the slice are ASCII (< 0x80).
//
// The UTF-8 validator uses this to accept long ASCII spans without decoding.
func IsASCII(data []byte) bool {
	return FirstNonASCII(data) == -1
}

// FirstNonASCII returns the index of the first non-ASCII byte, or -1 if all
// bytes are ASCII.
//
// Eight bytes are tested at once by masking their high bits.
func FirstNonASCII(data []byte) int {
	n := len(data)
	idx := 0
	for ; idx+8 <= n; idx += 8 {
		if m := binary.LittleEndian.Uint64(data[idx:]) & hi8; m != 0 {
			return idx + firstMarked(m)
		}
	}
	for ; idx < n; idx++ {
		if data[idx] >= 0x80 {
			return idx
		}
	}
	return -1
}
