package seqz

// ForEach returns a new Sequence that invokes fn(v, i) as a side effect for
// each element, then yields the element unchanged. The side effect is lazy:
// it runs exactly once per element, at the moment that element is actually
// pulled by a downstream stage, and never for elements a short-circuiting
// consumer leaves unpulled.
//
// ForEach is a combinator, not a terminal: building the stage runs nothing.
// Drive it with Consume (or any other terminal) to make the effects happen.
//
//	seqz.From(orders).
//	    ForEach(func(o Order, i int) { log.Printf("order %d: %v", i, o.ID) }).
//	    Consume()
func (s *Sequence[T]) ForEach(fn func(T, int)) *Sequence[T] {
	return s.Pipe(func(src Iterator[T]) Iterator[T] {
		pos := 0
		return Func[T](func() (T, bool) {
			v, ok := src.Next()
			if !ok {
				return v, false
			}
			fn(v, pos)
			pos++
			return v, true
		})
	})
}
