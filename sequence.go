package seqz

import (
	"context"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Sequence is an immutable wrapper around exactly one Iterator. Chain methods
// never mutate the receiver; each returns a new Sequence whose iterator
// re-derives elements from the receiver's iterator on demand. Building a
// chain pulls nothing; elements only flow when a terminal consumer
// (Collect, Reduce, Find, ...) drives the chain, and then strictly one
// element at a time, each pull cascading back through every stage to the
// original source.
//
// A Sequence produced by a combinator holds a reference into the sequence it
// was derived from, forming a singly-linked chain from terminal consumer back
// to the source. The wrapper itself carries no mutable state and is safe to
// alias; the shared upstream cursor is not. Driving a single-use source
// through two downstream chains corrupts both.
//
// # Observability
//
// Every chain shares one set of instruments, created when the source sequence
// is constructed and inherited by every derived sequence:
//
// Metrics:
//   - seq.drives.total: Counter of terminal drives
//   - seq.elements.pulled.total: Counter of elements delivered to terminals
//   - seq.drive.duration.ms: Gauge of the last drive's duration
//
// Traces:
//   - seq.drive: Span around each terminal drive, tagged with the operation
//
// Events (via hooks):
//   - seq.drive.complete: Fired when a terminal consumer finishes driving
type Sequence[T any] struct {
	it      Iterator[T]
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[DriveEvent]
}

// New wraps an Iterator in a Sequence and initializes the chain's
// observability components.
func New[T any](it Iterator[T]) *Sequence[T] {
	metrics := metricz.New()
	metrics.Counter(DrivesTotal)
	metrics.Counter(ElementsPulledTotal)
	metrics.Gauge(DriveDurationMs)

	return &Sequence[T]{
		it:      it,
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[DriveEvent](),
	}
}

// derive builds a child sequence around it, inheriting the parent chain's
// instruments so the whole pipeline reports through one registry, tracer and
// hook bus.
func derive[T, U any](parent *Sequence[T], it Iterator[U]) *Sequence[U] {
	return &Sequence[U]{
		it:      it,
		metrics: parent.metrics,
		tracer:  parent.tracer,
		hooks:   parent.hooks,
	}
}

// Pipe threads the sequence's iterator through fn and wraps the result in a
// new Sequence. It is the primitive every same-type combinator in this
// package is defined in terms of, and the extension point for custom stages:
//
//	evens := seqz.From(nums).Pipe(func(src seqz.Iterator[int]) seqz.Iterator[int] {
//	    return seqz.Func[int](func() (int, bool) {
//	        for {
//	            v, ok := src.Next()
//	            if !ok || v%2 == 0 {
//	                return v, ok
//	            }
//	        }
//	    })
//	})
//
// Pipe itself never drives an element. fn may do eager work, but none of the
// stages shipped with this package pull upstream before the first downstream
// demand; the eager ones (Reverse, Sort, TakeLast, DropLast) materialize on
// first pull.
//
// For stages that change the element type, use the package-level Pipe
// function.
func (s *Sequence[T]) Pipe(fn func(Iterator[T]) Iterator[T]) *Sequence[T] {
	return derive(s, fn(s.it))
}

// Pipe threads s's iterator through a type-changing transformation and wraps
// the result in a new Sequence. It exists because Go methods cannot introduce
// type parameters; it is otherwise identical to the Pipe method.
func Pipe[T, U any](s *Sequence[T], fn func(Iterator[T]) Iterator[U]) *Sequence[U] {
	return derive(s, fn(s.it))
}

// Next implements Iterator by driving the sequence's own iterator. This lets
// a Sequence feed another chain directly, most usefully as a Concat source or
// a Flatten element. Pulls issued here advance the same cursor the sequence's
// own terminal consumers advance.
func (s *Sequence[T]) Next() (T, bool) {
	return s.it.Next()
}

// Elements implements the Nested marker by re-yielding the sequence's
// elements as any. See Flatten.
func (s *Sequence[T]) Elements() Iterator[any] {
	return Func[any](func() (any, bool) {
		v, ok := s.it.Next()
		if !ok {
			return nil, false
		}
		return v, true
	})
}

// Metrics returns the metrics registry shared by this chain.
func (s *Sequence[T]) Metrics() *metricz.Registry {
	return s.metrics
}

// Tracer returns the tracer shared by this chain.
func (s *Sequence[T]) Tracer() *tracez.Tracer {
	return s.tracer
}

// OnDriveComplete registers a handler fired after a terminal consumer
// finishes driving the chain. The handler is called asynchronously.
func (s *Sequence[T]) OnDriveComplete(handler func(context.Context, DriveEvent) error) error {
	_, err := s.hooks.Hook(DriveEventComplete, handler)
	return err
}

// Close gracefully shuts down the chain's observability components. Closing
// any sequence in a chain closes the shared instruments for all of them.
func (s *Sequence[T]) Close() error {
	if s.tracer != nil {
		s.tracer.Close()
	}
	s.hooks.Close()
	return nil
}
