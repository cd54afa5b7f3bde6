package stamp

import "time"

// Layout is a variable stamp format rendered in the location of the time it
// is given, so callers pick the zone with t.Local() or t.In(loc).
//
// Unlike Of, the year letter is lower case for every year before 2022. The
// file name safe form of a date and time reads "A01123-0456-0789"; Human
// renders the same instant as "A0~11/23 04:56:07".
type Layout struct {
	Date  bool
	Time  bool
	Human bool
}

// Predefined layouts. Set Human on a copy for the readable variants.
var (
	DateOnly = Layout{Date: true}
	TimeOnly = Layout{Time: true}
	DateTime = Layout{Date: true, Time: true}
)

// Format returns the stamp of t. A layout with neither Date nor Time
// formats as the empty string.
func (l Layout) Format(t time.Time) string {
	var b [20]byte
	return string(l.Append(b[:0], t))
}

// Now formats the current local time.
func (l Layout) Now() string { return l.Format(time.Now()) }

// Append appends the stamp of t to dst.
func (l Layout) Append(dst []byte, t time.Time) []byte {
	if l.Date {
		yy := ((t.Year()-2022)%200 + 200) % 200
		lead := byte('A')
		if t.Year() < 2022 {
			lead = 'a'
		}
		dst = append(dst, lead+byte(yy/10), '0'+byte(yy%10))
		if l.Human {
			dst = append(dst, '~')
			dst = appendTwo(dst, int(t.Month()))
			dst = append(dst, '/')
		} else {
			dst = appendTwo(dst, int(t.Month()))
		}
		dst = appendTwo(dst, t.Day())
		if l.Time {
			if l.Human {
				dst = append(dst, ' ')
			} else {
				dst = append(dst, '-')
			}
		}
	}

	if l.Time {
		dst = appendTwo(dst, t.Hour())
		if l.Human {
			dst = append(dst, ':')
			dst = appendTwo(dst, t.Minute())
			dst = append(dst, ':')
			dst = appendTwo(dst, t.Second())
		} else {
			dst = appendTwo(dst, t.Minute())
			dst = append(dst, '-')
			dst = appendTwo(dst, t.Second())
			dst = appendTwo(dst, t.Nanosecond()/int(10*time.Millisecond))
		}
	}
	return dst
}
