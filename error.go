package seqz

import "errors"

// ErrNegativeDepth is returned by FlattenDepth when given a negative depth.
// The error is reported synchronously at chain-build time, before any element
// is produced.
var ErrNegativeDepth = errors.New("flatten depth must not be negative")
