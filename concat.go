package seqz

// concatIterator drains each source in order before moving to the next.
type concatIterator[T any] struct {
	sources []Iterator[T]
}

func (c *concatIterator[T]) Next() (T, bool) {
	for len(c.sources) > 0 {
		v, ok := c.sources[0].Next()
		if ok {
			return v, true
		}
		c.sources = c.sources[1:]
	}
	var zero T
	return zero, false
}

// Concat returns a new Sequence that yields every element of the receiver,
// then every element of each additional source in argument order. A
// *Sequence is itself an Iterator, so sequences concatenate directly:
//
//	seqz.Of(1, 2).Concat(seqz.Of(3, 4)).Collect() // [1 2 3 4]
//
// Later sources are not touched until the earlier ones are exhausted, so an
// infinite source in the middle starves everything after it.
func (s *Sequence[T]) Concat(sources ...Iterator[T]) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		all := make([]Iterator[T], 0, len(sources)+1)
		all = append(all, src)
		all = append(all, sources...)
		return &concatIterator[T]{sources: all}
	})
}

// Push returns a new Sequence with values appended after the receiver's
// elements. Sugar for Concat over a fixed element list.
func (s *Sequence[T]) Push(values ...T) *Sequence[T] {
	return s.Concat(&sliceIterator[T]{items: values})
}

// Unshift returns a new Sequence with values prepended before the receiver's
// elements.
func (s *Sequence[T]) Unshift(values ...T) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		return &concatIterator[T]{sources: []Iterator[T]{
			&sliceIterator[T]{items: values},
			src,
		}}
	})
}
