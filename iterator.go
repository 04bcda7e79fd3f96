package seqz

// Iterator is the pull-sequence contract at the heart of seqz: produce the
// next element in order, or report exhaustion. Everything in this library is
// either an Iterator, something that builds one, or something that drives one.
//
// An Iterator may be single-use: its internal cursor advances permanently on
// every Next call and cannot be rewound. The library never distinguishes
// single-use iterators from restartable ones; driving the same single-use
// iterator through two different chains interleaves their pulls over the one
// shared cursor, and keeping that from happening is the caller's job.
//
// Exhaustion is not an error. Once Next returns false, every subsequent call
// must also return false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Func adapts a plain closure to the Iterator interface, the same way
// http.HandlerFunc adapts a function to http.Handler.
//
//	n := 0
//	naturals := seqz.Func[int](func() (int, bool) {
//	    n++
//	    return n, true
//	})
type Func[T any] func() (T, bool)

// Next implements Iterator by calling the closure.
func (f Func[T]) Next() (T, bool) {
	return f()
}
