package predicate

import "unicode"

// Class is a named built-in character class with a precomputed ASCII table.
type Class struct {
	name  string
	fn    func(r rune) bool
	table [256]bool
}

func newClass(name string, fn func(r rune) bool) *Class {
	c := &Class{name: name, fn: fn}
	for b := 0; b < 0x80; b++ {
		c.table[b] = fn(rune(b))
	}
	return c
}

// Accept reports whether r belongs to the class.
func (c *Class) Accept(r rune) bool {
	if r >= 0 && r < 0x80 {
		return c.table[r]
	}
	return c.fn(r)
}

// ASCIITable implements Tabled.
func (c *Class) ASCIITable() *[256]bool { return &c.table }

// String returns the class name.
func (c *Class) String() string { return c.name }

// Built-in classes.
var (
	// Any accepts every character.
	Any = newClass("any", func(rune) bool { return true })

	// Newline accepts '\n'.
	Newline = newClass("newline", func(r rune) bool { return r == '\n' })

	// Whitespace accepts ASCII whitespace: space, \t, \n, \v, \f, \r.
	Whitespace = newClass("whitespace", func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return false
	})

	// ASCII accepts U+0000 through U+007F.
	ASCII = newClass("ascii", func(r rune) bool { return r >= 0 && r < 0x80 })

	// ASCIIAlpha accepts [A-Za-z].
	ASCIIAlpha = newClass("ascii-alpha", isASCIIAlpha)

	// ASCIIAlnum accepts [A-Za-z0-9].
	ASCIIAlnum = newClass("ascii-alnum", func(r rune) bool { return isASCIIAlpha(r) || isDigit(r) })

	// Digit accepts [0-9].
	Digit = newClass("digit", isDigit)

	// HexDigit accepts [0-9A-Fa-f].
	HexDigit = newClass("hex-digit", func(r rune) bool {
		return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
	})

	// OctDigit accepts [0-7].
	OctDigit = newClass("oct-digit", func(r rune) bool { return '0' <= r && r <= '7' })

	// BinDigit accepts [01].
	BinDigit = newClass("bin-digit", func(r rune) bool { return r == '0' || r == '1' })

	// Alphabetic accepts characters with the Unicode Alphabetic property.
	Alphabetic = newClass("alphabetic", isAlphabetic)

	// Alphanumeric accepts Alphabetic characters and Unicode numbers.
	Alphanumeric = newClass("alphanumeric", func(r rune) bool {
		return isAlphabetic(r) || unicode.IsNumber(r)
	})

	// XIDStart accepts characters that may start an identifier (UAX #31).
	XIDStart = newClass("xid-start", isIDStart)

	// XIDContinue accepts characters that may continue an identifier (UAX #31).
	XIDContinue = newClass("xid-continue", isIDContinue)
)

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isASCIIAlpha(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }

func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

// isIDStart implements ID_Start: L, Nl, Other_ID_Start, minus pattern
// characters.
func isIDStart(r rune) bool {
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_ID_Start)
}

// isIDContinue implements ID_Continue: ID_Start, Mn, Mc, Nd, Pc,
// Other_ID_Continue, minus pattern characters.
func isIDContinue(r rune) bool {
	if isIDStart(r) {
		return true
	}
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}
