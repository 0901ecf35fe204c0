package rangeset

type Iterator[T Number] struct {
	current int
	ranges  []Range[T]
}

func (r *Iterator[T]) Value() Range[T] {
	return r.ranges[r.current]
}

func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.ranges)
}

// Reset rewinds the iterator to before the first range.
func (r *Iterator[T]) Reset() {
	r.current = -1
}
