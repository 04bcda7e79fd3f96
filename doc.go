// Package seqz provides lazy, chainable sequence transformations over
// pull-driven sources.
//
// # Overview
//
// seqz wraps any on-demand producer of ordered values in an immutable
// Sequence and lets you compose transformations (map, filter, concat,
// flatten, slicing, sorting) into a new Sequence without evaluating a single
// element. Evaluation happens only when a terminal consumer (Collect, Reduce,
// Find, ...) drives the chain, and then strictly one element at a time:
// every pull cascades back through each stage to the original source.
//
// # Core Concepts
//
// Two types carry the whole library:
//
//	type Iterator[T any] interface {
//	    Next() (T, bool)
//	}
//
//	type Sequence[T any] struct{ ... } // immutable wrapper around one Iterator
//
// Iterator is the pull-sequence capability: produce the next element or
// report exhaustion. Sequence owns exactly one Iterator; every chain method
// returns a new Sequence wrapping a new adaptor iterator chained to the old
// one. Pipe is the primitive they are all built from, and the extension point
// for custom stages.
//
// # Laziness and Short-Circuiting
//
// Chain construction is pure bookkeeping. Lazy stages (Map, Filter, ForEach,
// Concat, Slice, Take, Drop, Flatten, Pop, Shift) touch upstream only when
// pulled. Eager stages (Reverse, Sort, TakeLast, DropLast) must see their
// whole upstream, so their first pull materializes it into a buffer; they can
// never finish over an infinite source. The short-circuiting operations
// (Take, Find, Some, Every, Includes) stop pulling the moment their condition
// is met, which is the only mechanism that makes infinite sources usable:
//
//	naturals := seqz.New(seqz.Generate(func(i int) int { return i }))
//	firstSquare := naturals.
//	    Filter(func(n, _ int) bool { return n > 1 }).
//	    Find(func(n, _ int) bool { return isSquare(n) })
//
// # Quick Start
//
//	evens := seqz.From([]int{1, 2, 3, 4, 5, 6}).
//	    Filter(func(n, _ int) bool { return n%2 == 0 })
//	doubled := seqz.Map(evens, func(n, _ int) int { return n * 2 })
//	doubled.Collect() // [4 8 12]
//
// Type-changing operations (Map, the package-level Pipe, Flatten, Reduce) and
// type-constrained ones (Sort, Includes, Replace) are functions rather than
// methods, because Go methods cannot introduce type parameters. Everything
// else chains as a method.
//
// # Single-Use Sources
//
// Many sources are single-use: their cursor advances permanently on every
// pull (Generate, FromSeq, Ticks, and any stage mid-drive). The library does
// not track which kind a source is. Driving one single-use source through two
// different chains interleaves their pulls over the shared cursor and
// corrupts both results; keeping one active traversal per source is the
// caller's responsibility. Sequence values themselves hold no mutable state
// and alias safely.
//
// # Error Handling
//
// Exhaustion is never an error: consumers that may come up empty (First,
// Last, Find) return an explicit ok bool. FlattenDepth rejects a negative
// depth with ErrNegativeDepth before any element is produced. A panic inside
// a caller-supplied callback propagates unmodified out of whichever terminal
// call is driving the chain, possibly far from where the stage was built,
// and only once the element needing that callback is actually pulled.
//
// # Observability
//
// Each chain shares one metrics registry, tracer and hook bus, created with
// the source Sequence and inherited by every derived stage. Terminal drives
// increment seq.drives.total and seq.elements.pulled.total, record a
// seq.drive span tagged with the operation, and emit a DriveEvent through
// OnDriveComplete handlers. Close shuts the instruments down.
package seqz
