package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Results match bytes.Index. Candidates are located with Memchr on the
// last byte of the needle, then verified.
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memmem(haystack, []byte("world")) // 6
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	last := len(needle) - 1
	for at := last; at < len(haystack); {
		i := Memchr(haystack[at:], needle[last])
		if i < 0 {
			return -1
		}
		end := at + i + 1
		if bytes.Equal(haystack[end-len(needle):end], needle) {
			return end - len(needle)
		}
		at = end
	}
	return -1
}
