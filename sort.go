package seqz

import (
	"cmp"
	"slices"
)

// SortFunc returns a new Sequence that yields the upstream elements in the
// order cmp defines. It is an eager stage: the first pull materializes the
// entire upstream, sorts the buffer, and replays it.
func (s *Sequence[T]) SortFunc(compare func(a, b T) int) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		var inner Iterator[T]
		return Func[T](func() (T, bool) {
			if inner == nil {
				buf := drain(src)
				slices.SortFunc(buf, compare)
				inner = &sliceIterator[T]{items: buf}
			}
			return inner.Next()
		})
	})
}

// Sort is SortFunc with the natural total order of an ordered element type.
// Like every type-constrained operation in this package it is a function, not
// a method.
func Sort[T cmp.Ordered](s *Sequence[T]) *Sequence[T] {
	return s.SortFunc(cmp.Compare[T])
}
