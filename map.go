package seqz

// mapIterator applies fn to each upstream element as it is pulled.
type mapIterator[T, U any] struct {
	src Iterator[T]
	fn  func(T, int) U
	pos int
}

func (m *mapIterator[T, U]) Next() (U, bool) {
	v, ok := m.src.Next()
	if !ok {
		var zero U
		return zero, false
	}
	u := m.fn(v, m.pos)
	m.pos++
	return u, true
}

// Map returns a new Sequence that yields fn(v, i) for each element v at
// position i. Nothing runs until the result is driven; fn is then invoked
// once per pulled element, at the moment that element is pulled.
//
// Map is a package-level function rather than a method because it changes the
// element type, which a Go method cannot express.
//
//	lengths := seqz.Map(words, func(w string, _ int) int { return len(w) })
func Map[T, U any](s *Sequence[T], fn func(T, int) U) *Sequence[U] {
	return Pipe(s, func(src Iterator[T]) Iterator[U] {
		return &mapIterator[T, U]{src: src, fn: fn}
	})
}

// Entry pairs an element with its position in the sequence it was pulled
// from.
type Entry[T any] struct {
	Value T
	Index int
}

// Entries returns a new Sequence of each element paired with its position.
//
// Entries is a package-level function rather than a method because a method
// returning Sequence[Entry[T]] triggers the compiler's generic instantiation
// cycle check.
func Entries[T any](s *Sequence[T]) *Sequence[Entry[T]] {
	return Map(s, func(v T, i int) Entry[T] {
		return Entry[T]{Value: v, Index: i}
	})
}

// Indexes returns a new Sequence of just the positions, one per upstream
// element.
func (s *Sequence[T]) Indexes() *Sequence[int] {
	return Map(s, func(_ T, i int) int {
		return i
	})
}

// Replace returns a new Sequence that substitutes replacement for every
// element strictly equal to old, passing all other elements through
// unchanged.
func Replace[T comparable](s *Sequence[T], old, replacement T) *Sequence[T] {
	return Map(s, func(v T, _ int) T {
		if v == old {
			return replacement
		}
		return v
	})
}
