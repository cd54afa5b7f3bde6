// Package repeat turns a repetition bound into the two questions a counted
// scan asks: is this count acceptable as a final count, and is it worth
// trying one more.
package repeat

import (
	"math"
	"strconv"
)

// Bound is consulted by counted scans.
type Bound interface {
	// Contains reports whether n is an acceptable final count.
	Contains(n int) bool

	// WantMore reports whether the scan should attempt repetition n+1 after
	// n repetitions. It is false as soon as n+1 would exceed the upper bound.
	WantMore(n int) bool
}

// Range is a closed interval [Min, Max] of repetition counts. Max == math.MaxInt
// means unbounded.
type Range struct {
	Min, Max int
}

// Exactly returns the range accepting exactly n repetitions.
func Exactly(n int) Range { return Range{Min: n, Max: n} }

// AtLeast returns the range accepting n or more repetitions.
func AtLeast(n int) Range { return Range{Min: n, Max: math.MaxInt} }

// AtMost returns the range accepting 0 through n repetitions.
func AtMost(n int) Range { return Range{Min: 0, Max: n} }

// Between returns the closed range [lo, hi].
func Between(lo, hi int) Range { return Range{Min: lo, Max: hi} }

// HalfOpen returns the half-open range [lo, hi). HalfOpen(n, n) is empty.
func HalfOpen(lo, hi int) Range {
	if hi <= lo {
		return Range{Min: lo, Max: lo - 1}
	}
	return Range{Min: lo, Max: hi - 1}
}

// Unbounded returns the range accepting any count.
func Unbounded() Range { return Range{Min: 0, Max: math.MaxInt} }

// Contains reports whether Min <= n <= Max.
func (r Range) Contains(n int) bool { return r.Min <= n && n <= r.Max }

// WantMore reports whether n < Max.
func (r Range) WantMore(n int) bool { return n < r.Max }

// IsEmpty reports whether no count is acceptable.
func (r Range) IsEmpty() bool { return r.Max < r.Min }

// String formats the range for diagnostics, e.g. "3..=5" or "2..".
func (r Range) String() string {
	switch {
	case r.IsEmpty():
		return "empty"
	case r.Max == math.MaxInt:
		return strconv.Itoa(r.Min) + ".."
	case r.Min == r.Max:
		return strconv.Itoa(r.Min)
	default:
		return strconv.Itoa(r.Min) + "..=" + strconv.Itoa(r.Max)
	}
}
