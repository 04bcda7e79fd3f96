package seqz

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for terminal drives.
const (
	// Metrics.
	DrivesTotal         = metricz.Key("seq.drives.total")
	ElementsPulledTotal = metricz.Key("seq.elements.pulled.total")
	DriveDurationMs     = metricz.Key("seq.drive.duration.ms")

	// Spans.
	DriveSpan = tracez.Key("seq.drive")

	// Tags.
	DriveTagOp       = tracez.Tag("seq.op")
	DriveTagElements = tracez.Tag("seq.elements")

	// Hook event keys.
	DriveEventComplete = hookz.Key("seq.drive.complete")
)

// Terminal operation names, as they appear in span tags and DriveEvents.
const (
	opCollect  = "collect"
	opConsume  = "consume"
	opCount    = "count"
	opFirst    = "first"
	opLast     = "last"
	opFind     = "find"
	opSome     = "some"
	opEvery    = "every"
	opIncludes = "includes"
	opReduce   = "reduce"
	opJoin     = "join"
)

// DriveEvent describes one completed terminal drive. It is emitted via hookz
// after the terminal consumer stops pulling, whether the chain was exhausted
// or the operation short-circuited.
type DriveEvent struct {
	Op        string        // Terminal operation name
	Elements  int           // Elements pulled through the full chain
	Duration  time.Duration // How long the drive took
	Timestamp time.Time     // When the drive finished
}

// drive opens the instrumentation around one terminal operation. The returned
// finish func records the element count, closes the span and emits the
// completion event; callers defer it so a panicking user callback still
// leaves the span closed.
func (s *Sequence[T]) drive(op string) func(pulled int) {
	s.metrics.Counter(DrivesTotal).Inc()
	start := time.Now()
	_, span := s.tracer.StartSpan(context.Background(), DriveSpan)
	span.SetTag(DriveTagOp, op)

	return func(pulled int) {
		elapsed := time.Since(start)
		s.metrics.Gauge(DriveDurationMs).Set(float64(elapsed.Milliseconds()))
		span.SetTag(DriveTagElements, strconv.Itoa(pulled))
		span.Finish()
		_ = s.hooks.Emit(context.Background(), DriveEventComplete, DriveEvent{ //nolint:errcheck
			Op:        op,
			Elements:  pulled,
			Duration:  elapsed,
			Timestamp: time.Now(),
		})
	}
}

// Collect fully drives the chain and returns every produced element in order.
// It never terminates over a genuinely infinite source; compose Take first.
func (s *Sequence[T]) Collect() []T {
	pulled := 0
	finish := s.drive(opCollect)
	defer func() { finish(pulled) }()

	var out []T
	for {
		v, ok := s.it.Next()
		if !ok {
			return out
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
		out = append(out, v)
	}
}

// Consume fully drives the chain and discards every element. Its only purpose
// is to trigger side effects registered with ForEach or a custom Pipe stage.
func (s *Sequence[T]) Consume() {
	pulled := 0
	finish := s.drive(opConsume)
	defer func() { finish(pulled) }()

	for {
		if _, ok := s.it.Next(); !ok {
			return
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
	}
}

// Count fully drives the chain and returns the number of elements produced.
func (s *Sequence[T]) Count() int {
	pulled := 0
	finish := s.drive(opCount)
	defer func() { finish(pulled) }()

	for {
		if _, ok := s.it.Next(); !ok {
			return pulled
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
	}
}

// First pulls exactly one element and returns it, or the zero value and false
// when the chain is already exhausted.
func (s *Sequence[T]) First() (T, bool) {
	pulled := 0
	finish := s.drive(opFirst)
	defer func() { finish(pulled) }()

	v, ok := s.it.Next()
	if ok {
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
	}
	return v, ok
}

// Last fully drives the chain and returns the most recently produced element,
// or the zero value and false when the chain produced nothing.
func (s *Sequence[T]) Last() (T, bool) {
	pulled := 0
	finish := s.drive(opLast)
	defer func() { finish(pulled) }()

	var last T
	found := false
	for {
		v, ok := s.it.Next()
		if !ok {
			return last, found
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
		last = v
		found = true
	}
}

// Find pulls elements until fn reports true, stopping immediately at the
// match. It returns the matching element, or the zero value and false when
// the chain is exhausted without one. Because it short-circuits, Find is safe
// over an infinite source whenever a match exists.
func (s *Sequence[T]) Find(fn func(T, int) bool) (T, bool) {
	pulled := 0
	finish := s.drive(opFind)
	defer func() { finish(pulled) }()

	for i := 0; ; i++ {
		v, ok := s.it.Next()
		if !ok {
			var zero T
			return zero, false
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
		if fn(v, i) {
			return v, true
		}
	}
}

// Some reports whether fn is true for any element. It stops pulling at the
// first match.
func (s *Sequence[T]) Some(fn func(T, int) bool) bool {
	pulled := 0
	finish := s.drive(opSome)
	defer func() { finish(pulled) }()

	for i := 0; ; i++ {
		v, ok := s.it.Next()
		if !ok {
			return false
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
		if fn(v, i) {
			return true
		}
	}
}

// Every reports whether fn is true for all elements. It stops pulling at the
// first counterexample, so a false answer can come off an infinite source.
func (s *Sequence[T]) Every(fn func(T, int) bool) bool {
	pulled := 0
	finish := s.drive(opEvery)
	defer func() { finish(pulled) }()

	for i := 0; ; i++ {
		v, ok := s.it.Next()
		if !ok {
			return true
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
		if !fn(v, i) {
			return false
		}
	}
}

// Includes reports whether any element of s is strictly equal to target,
// stopping at the first hit.
func Includes[T comparable](s *Sequence[T], target T) bool {
	pulled := 0
	finish := s.drive(opIncludes)
	defer func() { finish(pulled) }()

	for {
		v, ok := s.it.Next()
		if !ok {
			return false
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
		if v == target {
			return true
		}
	}
}

// Reduce fully drives the chain, folding elements left to right into an
// accumulator starting from init. It must consume everything, so it never
// returns over an infinite source.
func Reduce[T, A any](s *Sequence[T], init A, fn func(acc A, v T, i int) A) A {
	pulled := 0
	finish := s.drive(opReduce)
	defer func() { finish(pulled) }()

	acc := init
	for i := 0; ; i++ {
		v, ok := s.it.Next()
		if !ok {
			return acc
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()
		acc = fn(acc, v, i)
	}
}

// Join fully drives the chain and concatenates the string forms of its
// elements, placing sep only between two kept forms.
//
// The string form of an element is the element itself when it is a string,
// its String() result when it implements fmt.Stringer, and its default fmt
// representation otherwise. nil elements have no textual form. Elements whose
// form is missing or empty are skipped entirely: they contribute neither text
// nor a separator.
//
//	seqz.Of[any](1, "", 0, "a").Join(";") // "1;0;a"
func (s *Sequence[T]) Join(sep string) string {
	pulled := 0
	finish := s.drive(opJoin)
	defer func() { finish(pulled) }()

	var b strings.Builder
	kept := 0
	for {
		v, ok := s.it.Next()
		if !ok {
			return b.String()
		}
		pulled++
		s.metrics.Counter(ElementsPulledTotal).Inc()

		form, ok := stringForm(v)
		if !ok || form == "" {
			continue
		}
		if kept > 0 {
			b.WriteString(sep)
		}
		b.WriteString(form)
		kept++
	}
}

// stringForm computes the textual form of an element for Join. The second
// return is false when the element has no textual form at all.
func stringForm(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}
