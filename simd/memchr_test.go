package simd

import (
	"bytes"
	"strings"
	"testing"
)

// TestMemchr compares Memchr against bytes.IndexByte
func TestMemchr(t *testing.T) {
	long := strings.Repeat("abcdefgh", 9) + "Z" + strings.Repeat("x", 7)

	tests := []struct {
		name     string
		haystack string
		needle   byte
	}{
		{"empty", "", 'a'},
		{"single_found", "a", 'a'},
		{"single_not_found", "a", 'b'},
		{"short_found", "hello", 'l'},
		{"chunk_boundary", "12345678x", 'x'},
		{"in_first_chunk", "12x45678", 'x'},
		{"long_found", long, 'Z'},
		{"long_not_found", long, 'Q'},
		{"high_byte", "ab\xffcdefghij", 0xff},
		{"zero_byte", "abcdefgh\x00", 0},
		{"needle_0x80", "\x7f\x81\x80abcdefgh", 0x80},
		{"tail_only", "abcdefghijk", 'k'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memchr([]byte(tt.haystack), tt.needle)
			want := bytes.IndexByte([]byte(tt.haystack), tt.needle)
			if got != want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, want)
			}
		})
	}
}

// TestMemchr2 verifies the first of either needle is returned
func TestMemchr2(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		n1, n2   byte
		want     int
	}{
		{"empty", "", 'a', 'b', -1},
		{"first_needle", "xxxxaxxxxb", 'a', 'b', 4},
		{"second_needle_first", "xxxxbxxxxa", 'a', 'b', 4},
		{"none", "xxxxxxxxxxxxxxxx", 'a', 'b', -1},
		{"long_second_chunk", "0123456789abcdef>", '>', '<', 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memchr2([]byte(tt.haystack), tt.n1, tt.n2); got != tt.want {
				t.Errorf("Memchr2(%q, %q, %q) = %d, want %d", tt.haystack, tt.n1, tt.n2, got, tt.want)
			}
		})
	}
}

// TestMemchr3 verifies the first of three needles is returned
func TestMemchr3(t *testing.T) {
	tests := []struct {
		name       string
		haystack   string
		n1, n2, n3 byte
		want       int
	}{
		{"empty", "", 'a', 'b', 'c', -1},
		{"third", "     c  a", 'a', 'b', 'c', 5},
		{"long", strings.Repeat(" ", 20) + "b", 'a', 'b', 'c', 20},
		{"none", strings.Repeat(" ", 20), 'a', 'b', 'c', -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memchr3([]byte(tt.haystack), tt.n1, tt.n2, tt.n3); got != tt.want {
				t.Errorf("Memchr3(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestMemchrTables(t *testing.T) {
	var digits [256]bool
	for c := '0'; c <= '9'; c++ {
		digits[c] = true
	}

	if got := MemchrInTable([]byte("abc123"), &digits); got != 3 {
		t.Errorf("MemchrInTable = %d, want 3", got)
	}
	if got := MemchrInTable([]byte("abc"), &digits); got != -1 {
		t.Errorf("MemchrInTable = %d, want -1", got)
	}
	if got := MemchrNotInTable([]byte("0123456789x"), &digits); got != 10 {
		t.Errorf("MemchrNotInTable = %d, want 10", got)
	}
	if got := MemchrNotInTable([]byte("12345"), &digits); got != -1 {
		t.Errorf("MemchrNotInTable = %d, want -1", got)
	}
	if got := MemchrNotInTable(nil, &digits); got != -1 {
		t.Errorf("MemchrNotInTable(nil) = %d, want -1", got)
	}
	if got := MemchrInTable([]byte("1"), nil); got != -1 {
		t.Errorf("MemchrInTable(nil table) = %d, want -1", got)
	}
}

func TestASCII(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		first int
	}{
		{"empty", "", -1},
		{"short_ascii", "abc", -1},
		{"long_ascii", strings.Repeat("a", 33), -1},
		{"short_utf8", "aé", 1},
		{"second_chunk", "abcdefgh€", 8},
		{"first_chunk", "abc€defgh", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstNonASCII([]byte(tt.data)); got != tt.first {
				t.Errorf("FirstNonASCII(%q) = %d, want %d", tt.data, got, tt.first)
			}
			if got := IsASCII([]byte(tt.data)); got != (tt.first == -1) {
				t.Errorf("IsASCII(%q) = %v", tt.data, got)
			}
		})
	}
}

func BenchmarkMemchr(b *testing.B) {
	haystack := []byte(strings.Repeat("lorem ipsum dolor ", 256) + "\n")
	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Memchr(haystack, '\n')
	}
}
