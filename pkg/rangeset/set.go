package rangeset

import (
	"cmp"
	"iter"
	"slices"
	"sort"
	"strings"
)

// Set is a collection of closed integer ranges kept in canonical form:
// sorted by start, with no two ranges overlapping or adjacent. Inserting a
// value or a range merges it with every range it touches.
//
// The zero value is an empty set using MergeStrict. A Set is not safe for
// concurrent use; callers sharing one must serialize access themselves.
type Set[T Number] struct {
	opts options
	// ranges is sorted by start and holds no overlapping or adjacent
	// entries after every exported method returns.
	ranges []Range[T]
}

func New[T Number](opts ...Option) *Set[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Set[T]{opts: o}
}

// Insert adds r to s, merging it with the ranges it touches. Inserting a
// range identical to one already present is a no-op.
func (s *Set[T]) Insert(r Range[T]) {
	var merge []int
	for i, c := range s.ranges {
		if c == r {
			s.opts.log.V(1).Info("range already present", "range", r.String())
			return
		}
		if s.mergeable(c, r, len(merge) > 0) {
			merge = append(merge, i)
		}
	}

	if len(merge) == 0 {
		s.ranges = append(s.ranges, r)
		s.canonicalize()
		return
	}

	merged := r
	kept := make([]Range[T], 0, len(s.ranges)-len(merge)+1)
	next := 0
	for i, c := range s.ranges {
		if next < len(merge) && merge[next] == i {
			merged = merged.with(min(merged.start, c.start), max(merged.end, c.end))
			next++
			continue
		}
		kept = append(kept, c)
	}
	s.opts.log.V(1).Info("merged ranges", "range", r.String(), "absorbed", len(merge), "result", merged.String())
	s.ranges = append(kept, merged)
	s.canonicalize()
}

func (s *Set[T]) mergeable(c, r Range[T], matched bool) bool {
	if s.opts.policy != MergeLegacy {
		return c.touches(r)
	}
	if matched {
		// c.end >= r.end-1
		return c.end >= r.end || adjacent(c.end, r.end)
	}
	// r.start within [c.start-1, c.end+1]
	if (c.start <= r.start || adjacent(r.start, c.start)) &&
		(r.start <= c.end || adjacent(c.end, r.start)) {
		return true
	}
	return c.coveredBy(r)
}

// InsertValue adds the single value v to s. It has the same outcome as
// Insert(RangeOf(v)); a value already covered is a no-op.
func (s *Set[T]) InsertValue(v T) {
	for i, c := range s.ranges {
		switch {
		case c.Contains(v):
			s.opts.log.V(1).Info("value already covered", "value", v, "range", c.String())
			return
		case adjacent(v, c.start):
			s.ranges[i] = c.with(v, c.end)
			s.canonicalize()
			return
		case adjacent(c.end, v):
			s.ranges[i] = c.with(c.start, v)
			s.canonicalize()
			return
		}
	}
	s.ranges = append(s.ranges, RangeOf(v))
	s.canonicalize()
}

// canonicalize sorts the ranges by start and folds every overlapping or
// adjacent neighbour into its predecessor in one forward sweep.
func (s *Set[T]) canonicalize() {
	if len(s.ranges) < 2 {
		return
	}
	slices.SortFunc(s.ranges, func(a, b Range[T]) int {
		return cmp.Compare(a.start, b.start)
	})

	out := s.ranges[:1]
	for _, r := range s.ranges[1:] {
		last := &out[len(out)-1]
		if last.touches(r) {
			if r.end > last.end {
				*last = last.with(last.start, r.end)
			}
			continue
		}
		out = append(out, r)
	}
	s.ranges = out
}

// Contains reports whether v is covered by one of the ranges of s.
func (s *Set[T]) Contains(v T) bool {
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.ranges[i].end >= v
	})
	return i < len(s.ranges) && s.ranges[i].start <= v
}

// Count returns the number of ranges in s.
func (s *Set[T]) Count() int {
	return len(s.ranges)
}

// Ranges returns a copy of the ranges of s in ascending order.
func (s *Set[T]) Ranges() []Range[T] {
	return append([]Range[T]{}, s.ranges...)
}

// All returns the ranges of s in ascending order. Each iteration walks the
// ranges as they are when it starts; mutating s while an iteration is in
// progress is not supported.
func (s *Set[T]) All() iter.Seq[Range[T]] {
	return func(yield func(Range[T]) bool) {
		for _, r := range s.ranges {
			if !yield(r) {
				return
			}
		}
	}
}

// Iterate returns an iterator over a copy of the ranges taken now.
func (s *Set[T]) Iterate() *Iterator[T] {
	return &Iterator[T]{current: -1, ranges: s.Ranges()}
}

// String renders s as its ranges joined by ", ", e.g. "1-3, 10-11".
func (s *Set[T]) String() string {
	parts := make([]string, 0, len(s.ranges))
	for _, r := range s.ranges {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}
