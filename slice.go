package seqz

// rangeIterator yields the elements whose position i satisfies
// start <= i <= end, both bounds inclusive. It stops pulling upstream as soon
// as the position passes end, which is what lets bounded windows terminate
// over infinite sources.
type rangeIterator[T any] struct {
	src        Iterator[T]
	start, end int
	pos        int
}

func (r *rangeIterator[T]) Next() (T, bool) {
	for {
		if r.pos > r.end {
			var zero T
			return zero, false
		}
		v, ok := r.src.Next()
		if !ok {
			var zero T
			return zero, false
		}
		i := r.pos
		r.pos++
		if i < r.start {
			continue
		}
		return v, true
	}
}

// Slice returns a new Sequence of the elements at positions start through
// end, both bounds inclusive:
//
//	seqz.Of(0, 1, 2, 3, 4).Slice(1, 3).Collect() // [1 2 3]
//
// No upstream element past position end is ever pulled.
func (s *Sequence[T]) Slice(start, end int) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		return &rangeIterator[T]{src: src, start: start, end: end}
	})
}

// Take returns a new Sequence of exactly the first n elements (none when
// n <= 0). It stops pulling upstream immediately after the nth element, so a
// Take bounds any chain over an infinite source.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		taken := 0
		return Func[T](func() (T, bool) {
			if taken >= n {
				var zero T
				return zero, false
			}
			v, ok := src.Next()
			if !ok {
				return v, false
			}
			taken++
			return v, true
		})
	})
}

// Drop returns a new Sequence that withholds only the first n-1 elements,
// one fewer than the name implies. Drop(1) removes nothing and Drop(3)
// removes only the first two elements. The off-by-one is the documented
// contract, kept for compatibility; Skip is the corrected variant.
func (s *Sequence[T]) Drop(n int) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		pos := 0
		return Func[T](func() (T, bool) {
			for {
				v, ok := src.Next()
				if !ok {
					return v, false
				}
				i := pos
				pos++
				if i < n-1 {
					continue
				}
				return v, true
			}
		})
	})
}

// Skip returns a new Sequence that withholds exactly the first n elements,
// the arithmetic Drop's name promises. New code should prefer Skip; Drop
// exists for compatibility with the historical contract.
func (s *Sequence[T]) Skip(n int) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		pos := 0
		return Func[T](func() (T, bool) {
			for {
				v, ok := src.Next()
				if !ok {
					return v, false
				}
				i := pos
				pos++
				if i < n {
					continue
				}
				return v, true
			}
		})
	})
}

// Pop returns a new Sequence of every element except the last. Knowing an
// element is not the last requires seeing its successor, so the stage buffers
// exactly one pending element and emits it only once the next one arrives.
func (s *Sequence[T]) Pop() *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		var pending T
		primed := false
		return Func[T](func() (T, bool) {
			if !primed {
				v, ok := src.Next()
				if !ok {
					var zero T
					return zero, false
				}
				pending = v
				primed = true
			}
			next, ok := src.Next()
			if !ok {
				// pending is the final element; withhold it.
				var zero T
				return zero, false
			}
			out := pending
			pending = next
			return out, true
		})
	})
}

// Shift returns a new Sequence of every element except the first.
func (s *Sequence[T]) Shift() *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		shifted := false
		return Func[T](func() (T, bool) {
			if !shifted {
				shifted = true
				if _, ok := src.Next(); !ok {
					var zero T
					return zero, false
				}
			}
			return src.Next()
		})
	})
}

// drain fully materializes an iterator into a slice. The buffering stages
// below (Reverse, TakeLast, DropLast, the sorts) call it on their first pull,
// so chain construction stays free of evaluation but the stage can never
// finish over an infinite upstream.
func drain[T any](src Iterator[T]) []T {
	var out []T
	for {
		v, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Reverse returns a new Sequence that yields the upstream elements
// back-to-front. It is an eager stage: the first pull materializes the entire
// upstream into a buffer.
func (s *Sequence[T]) Reverse() *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		var buf []T
		primed := false
		return Func[T](func() (T, bool) {
			if !primed {
				buf = drain(src)
				primed = true
			}
			if len(buf) == 0 {
				var zero T
				return zero, false
			}
			v := buf[len(buf)-1]
			buf = buf[:len(buf)-1]
			return v, true
		})
	})
}

// TakeLast returns a new Sequence of exactly the last n elements. It is an
// eager stage: the first pull materializes the upstream into a buffer of
// length L and replays the inclusive window [L-n, L-1] over it.
func (s *Sequence[T]) TakeLast(n int) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		var inner Iterator[T]
		return Func[T](func() (T, bool) {
			if inner == nil {
				buf := drain(src)
				inner = &rangeIterator[T]{
					src:   &sliceIterator[T]{items: buf},
					start: len(buf) - n,
					end:   len(buf) - 1,
				}
			}
			return inner.Next()
		})
	})
}

// DropLast returns a new Sequence of all but the last n elements. It is an
// eager stage: the first pull materializes the upstream into a buffer of
// length L and replays the inclusive window [0, L-n-1] over it.
func (s *Sequence[T]) DropLast(n int) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		var inner Iterator[T]
		return Func[T](func() (T, bool) {
			if inner == nil {
				buf := drain(src)
				inner = &rangeIterator[T]{
					src:   &sliceIterator[T]{items: buf},
					start: 0,
					end:   len(buf) - n - 1,
				}
			}
			return inner.Next()
		})
	})
}
