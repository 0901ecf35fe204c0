package rangeset

import (
	"fmt"
	"math"
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Range is the closed interval [start, end] with start <= end.
type Range[T Number] struct {
	start T
	end   T
}

// RangeOf returns the range holding the single value v.
func RangeOf[T Number](v T) Range[T] {
	return Range[T]{start: v, end: v}
}

// NewRange returns the range between a and b; the smaller of the two
// becomes the start.
func NewRange[T Number](a, b T) Range[T] {
	if b < a {
		a, b = b, a
	}
	return Range[T]{start: a, end: b}
}

// Start returns the lower bound of r.
func (r Range[T]) Start() T { return r.start }

// End returns the upper bound of r.
func (r Range[T]) End() T { return r.end }

func (r Range[T]) String() string {
	if r.start == r.end {
		return fmt.Sprintf("%d", r.start)
	}
	return fmt.Sprintf("%d-%d", r.start, r.end)
}

func (r Range[T]) Contains(v T) bool {
	return r.start <= v && v <= r.end
}

// Len returns the number of values covered by r, saturating at
// math.MaxUint64 for the full 64 bit range.
func (r Range[T]) Len() uint64 {
	n := uint64(r.end) - uint64(r.start)
	if n == math.MaxUint64 {
		return n
	}
	return n + 1
}

func (r Range[T]) Less(other Range[T]) bool {
	if r.start != other.start {
		return r.start < other.start
	}
	return r.end < other.end
}

// with returns r with its bounds replaced. Ordering is not checked, the
// caller hands in ordered bounds.
func (r Range[T]) with(start, end T) Range[T] {
	r.start = start
	r.end = end
	return r
}

// coveredBy returns whether r is entirely contained within other.
func (r Range[T]) coveredBy(other Range[T]) bool {
	return other.start <= r.start && r.end <= other.end
}

// touches returns whether r and other overlap or sit next to each other
// with no value in between.
func (r Range[T]) touches(other Range[T]) bool {
	if other.start < r.start {
		r, other = other, r
	}
	return other.start <= r.end || adjacent(r.end, other.start)
}

// adjacent returns whether b directly follows a. Written so that it does
// not wrap at the bounds of T.
func adjacent[T Number](a, b T) bool {
	return a < b && a+1 == b
}
