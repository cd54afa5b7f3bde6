package simd

// MemchrInTable finds the first byte where table[byte] is true.
// Returns position or -1 if not found.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// MemchrNotInTable finds the first byte where table[byte] is false.
// Returns position or -1 if all bytes have table[byte] == true.
//
// Runs of plain ASCII text are common in the reader window, so the loop is
// unrolled by four to keep the table lookups independent.
func MemchrNotInTable(haystack []byte, table *[256]bool) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}

	n := len(haystack)
	idx := 0
	for ; idx+4 <= n; idx += 4 {
		if !table[haystack[idx]] {
			return idx
		}
		if !table[haystack[idx+1]] {
			return idx + 1
		}
		if !table[haystack[idx+2]] {
			return idx + 2
		}
		if !table[haystack[idx+3]] {
			return idx + 3
		}
	}
	for ; idx < n; idx++ {
		if !table[haystack[idx]] {
			return idx
		}
	}
	return -1
}
