package rangeset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseRange parses the rendering produced by Range.String: "N" for a
// single value or "A-B" for a span. The bounds may be given in either
// order and may be negative, e.g. "-5--3".
func ParseRange[T Number](s string) (Range[T], error) {
	var r Range[T]
	s = strings.TrimSpace(s)
	if s == "" {
		return r, fmt.Errorf("empty range")
	}
	// a leading '-' is a sign, not the separator
	h := strings.IndexByte(s[1:], '-')
	if h == -1 {
		v, err := parseNumber[T](s)
		if err != nil {
			return r, fmt.Errorf("invalid value in range %q: %w", s, err)
		}
		return RangeOf(v), nil
	}
	from, to := s[:h+1], s[h+2:]
	a, err := parseNumber[T](from)
	if err != nil {
		return r, fmt.Errorf("invalid from value %q in range %q: %w", from, s, err)
	}
	b, err := parseNumber[T](to)
	if err != nil {
		return r, fmt.Errorf("invalid to value %q in range %q: %w", to, s, err)
	}
	return NewRange(a, b), nil
}

// ParseSet parses the rendering produced by Set.String, inserting every
// comma separated range in order. Malformed elements are skipped and
// reported together in the returned error.
func ParseSet[T Number](s string, opts ...Option) (*Set[T], error) {
	set := New[T](opts...)
	if strings.TrimSpace(s) == "" {
		return set, nil
	}
	var errs error
	for _, part := range strings.Split(s, ",") {
		r, err := ParseRange[T](part)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		set.Insert(r)
	}
	return set, errs
}

func parseNumber[T Number](s string) (T, error) {
	var zero T
	if zero-1 < zero {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, err
		}
		if int64(T(v)) != v {
			return zero, fmt.Errorf("value %d out of range", v)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return zero, err
	}
	if uint64(T(v)) != v {
		return zero, fmt.Errorf("value %d out of range", v)
	}
	return T(v), nil
}
