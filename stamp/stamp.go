// Package stamp formats instants as compact fixed-width stamps such as
// "A30128-2304-0000" or, with sub-millisecond precision, "A30128-2304-0000.1123".
//
// Layout (in UTC+8):
//
//	Y y M M D D - h h m m - s s c c [. u u u u]
//
// Yy encodes (year-2022) mod 200 as a letter for the tens and a digit for the
// ones; the letter is upper case for years after 1 BC. cc is centiseconds and
// uuuu is the microsecond count modulo 10000.
//
// Layout renders local-time variants: date or time alone, and a human
// readable form such as "A0~11/23 04:56:07".
package stamp

import "time"

const (
	shortLen   = 16
	preciseLen = shortLen + 5
)

var zone = time.FixedZone("UTC+8", 8*60*60)

// Of formats t without the precision suffix.
func Of(t time.Time) string {
	var b [preciseLen]byte
	return string(format(b[:0], t, false))
}

// PreciseOf formats t with the precision suffix.
func PreciseOf(t time.Time) string {
	var b [preciseLen]byte
	return string(format(b[:0], t, true))
}

// Now formats the current time.
func Now() string { return Of(time.Now()) }

// NowPrecise formats the current time with the precision suffix.
func NowPrecise() string { return PreciseOf(time.Now()) }

// Append appends the stamp of t to dst.
func Append(dst []byte, t time.Time, precise bool) []byte {
	return format(dst, t, precise)
}

func format(dst []byte, t time.Time, precise bool) []byte {
	t = t.In(zone)

	lead := byte('a')
	if t.Year() > 0 {
		lead = 'A'
	}
	yy := ((t.Year()-2022)%200 + 200) % 200

	dst = append(dst, lead+byte(yy/10), '0'+byte(yy%10))
	dst = appendTwo(dst, int(t.Month()))
	dst = appendTwo(dst, t.Day())
	dst = append(dst, '-')
	dst = appendTwo(dst, t.Hour())
	dst = appendTwo(dst, t.Minute())
	dst = append(dst, '-')
	dst = appendTwo(dst, t.Second())
	dst = appendTwo(dst, t.Nanosecond()/int(10*time.Millisecond))

	if precise {
		micro := t.Nanosecond() / int(time.Microsecond) % 10000
		dst = append(dst, '.')
		dst = appendTwo(dst, micro/100)
		dst = appendTwo(dst, micro%100)
	}
	return dst
}

func appendTwo(dst []byte, v int) []byte {
	return append(dst, '0'+byte(v/10), '0'+byte(v%10))
}
