package seqz

// filterIterator pulls upstream until fn accepts an element. The position
// passed to fn counts every upstream element this stage has consumed,
// including the ones it rejected.
type filterIterator[T any] struct {
	src Iterator[T]
	fn  func(T, int) bool
	pos int
}

func (f *filterIterator[T]) Next() (T, bool) {
	for {
		v, ok := f.src.Next()
		if !ok {
			var zero T
			return zero, false
		}
		i := f.pos
		f.pos++
		if f.fn(v, i) {
			return v, true
		}
	}
}

// Filter returns a new Sequence that yields only the elements fn accepts.
// The index handed to fn is the element's upstream position, so rejected
// elements still advance it; stages downstream of the filter see their own,
// renumbered positions.
//
//	seqz.From(nums).Filter(func(n, _ int) bool { return n%2 == 0 })
func (s *Sequence[T]) Filter(fn func(T, int) bool) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		return &filterIterator[T]{src: src, fn: fn}
	})
}
