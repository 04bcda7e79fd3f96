package seqz

import (
	"iter"
	"time"

	"github.com/zoobzio/clockz"
)

// sliceIterator is a cursor over a fixed slice. Like every iterator in this
// package it is single-use: the cursor only moves forward.
type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (s *sliceIterator[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

// From wraps a slice in a Sequence. The slice is not copied; mutating it
// while the sequence is being driven leaks through.
//
//	seqz.From([]int{1, 2, 3}).Take(2).Collect() // [1 2]
func From[T any](items []T) *Sequence[T] {
	return New[T](&sliceIterator[T]{items: items})
}

// Of wraps its arguments in a Sequence.
//
//	seqz.Of("hello", "world").Join(" ") // "hello world"
func Of[T any](items ...T) *Sequence[T] {
	return From(items)
}

// Generate returns an infinite iterator that yields fn(0), fn(1), fn(2), ...
// on demand. The iterator never reports exhaustion, so only short-circuiting
// operations (Take, Find, Some, Every, Includes) terminate over it.
//
//	squares := seqz.New(seqz.Generate(func(i int) int { return i * i }))
//	squares.Take(4).Collect() // [0 1 4 9]
func Generate[T any](fn func(i int) T) Iterator[T] {
	i := 0
	return Func[T](func() (T, bool) {
		v := fn(i)
		i++
		return v, true
	})
}

// seqIterator bridges a Go range-over-func sequence into the pull model.
type seqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

func (s *seqIterator[T]) Next() (T, bool) {
	v, ok := s.next()
	if !ok {
		s.stop()
	}
	return v, ok
}

// FromSeq adapts an iter.Seq into an Iterator using the runtime's pull
// conversion. The result is single-use, and the underlying coroutine is
// released when the sequence is exhausted.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIterator[T]{next: next, stop: stop}
}

// Ticks returns an infinite single-use iterator that blocks on the clock for
// interval between pulls and yields the clock's current time. It is the
// archetypal live generator: the cursor is wall-clock time, it advances
// whether or not a downstream chain is watching, and it never ends.
//
// A nil clock defaults to clockz.RealClock. Pass clockz.NewFakeClock() in
// tests to drive ticks deterministically.
//
//	times := seqz.New(seqz.Ticks(nil, time.Second)).Take(3).Collect()
func Ticks(clock clockz.Clock, interval time.Duration) Iterator[time.Time] {
	if clock == nil {
		clock = clockz.RealClock
	}
	return Func[time.Time](func() (time.Time, bool) {
		<-clock.After(interval)
		return clock.Now(), true
	})
}
