package seqz

import (
	"fmt"
	"math"
)

// Nested marks an element as a nested sequence that Flatten descends into.
// Anything that does not implement Nested is an atomic leaf. In particular
// strings never satisfy the marker, so they always survive flattening intact
// no matter how string-like iteration might look elsewhere.
//
// *Sequence implements Nested, so nested structures are built by wrapping
// sequences inside sequences:
//
//	nested := seqz.Of[any](1, seqz.Of[any](2, seqz.Of[any](3)), "abc")
//	seqz.Flatten(nested).Collect() // [1 2 3 "abc"]
type Nested interface {
	Elements() Iterator[any]
}

// unboundedDepth is the recursion bound used when no depth is given.
const unboundedDepth = math.MaxInt

// flattenFrame is one level of descent: the iterator being drained and how
// much deeper it may still descend.
type flattenFrame struct {
	it    Iterator[any]
	depth int
}

type flattenIterator struct {
	stack []flattenFrame
}

func (f *flattenIterator) Next() (any, bool) {
	for len(f.stack) > 0 {
		top := &f.stack[len(f.stack)-1]
		v, ok := top.it.Next()
		if !ok {
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		if top.depth > 0 {
			if nested, ok := v.(Nested); ok {
				f.stack = append(f.stack, flattenFrame{
					it:    nested.Elements(),
					depth: top.depth - 1,
				})
				continue
			}
		}
		return v, true
	}
	return nil, false
}

// Flatten returns a new Sequence that recursively descends into every Nested
// element, with no bound on recursion depth. Descent is lazy: a nested
// sequence is only opened when the element holding it is pulled.
func Flatten(s *Sequence[any]) *Sequence[any] {
	flat, _ := FlattenDepth(s, unboundedDepth) //nolint:errcheck // depth is non-negative
	return flat
}

// FlattenDepth is Flatten with a recursion bound. A depth of 0 is the
// identity transformation: no element is descended into, however nested. A
// negative depth fails with ErrNegativeDepth at chain-build time, before any
// element is produced.
func FlattenDepth(s *Sequence[any], depth int) (*Sequence[any], error) {
	if depth < 0 {
		return nil, fmt.Errorf("flatten(%d): %w", depth, ErrNegativeDepth)
	}
	return s.Pipe(func(src Iterator[any]) Iterator[any] {
		return &flattenIterator{stack: []flattenFrame{{it: src, depth: depth}}}
	}), nil
}
