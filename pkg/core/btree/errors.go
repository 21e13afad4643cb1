package btree

import "errors"

var (
	// ErrInvalidConfig signals an index that cannot be constructed, e.g. a
	// degree below 2.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrCorrupted is returned by Check when a structural invariant is violated.
	ErrCorrupted = errors.New("btree: invariant violated")
)
