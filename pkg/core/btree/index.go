// Package btree implements the ordered primary-key index of EVLite: an
// in-memory B-tree mapping unique keys to values.
//
// A tree of degree t keeps between t-1 and 2t-1 entries in every node except
// the root, and all leaves at the same depth. Insertion splits full nodes on
// the way down, so a single pass from the root suffices and the tree only
// ever grows at the top.
//
// OrderedIndex is not safe for concurrent use. Callers sharing one index
// between goroutines must serialize access themselves.
package btree

import (
	"cmp"
	"fmt"
)

// MinDegree is the smallest degree an OrderedIndex accepts.
const MinDegree = 2

// OrderedIndex is a B-tree of unique keys K mapped to values V.
type OrderedIndex[K, V any] struct {
	root    *node[K, V]
	degree  int
	height  int
	size    int
	compare func(a, b K) int
}

// New creates an empty index for keys with a natural order.
//
// New(2, ...), for example, creates a 2-3-4 tree (each node holds 1-3 keys).
func New[K cmp.Ordered, V any](degree int) (*OrderedIndex[K, V], error) {
	return NewFunc[K, V](degree, cmp.Compare[K])
}

// NewFunc creates an empty index ordered by compare, which must implement a
// total order and return a negative number, zero or a positive number when a
// is less than, equal to or greater than b.
func NewFunc[K, V any](degree int, compare func(a, b K) int) (*OrderedIndex[K, V], error) {
	if degree < MinDegree {
		return nil, fmt.Errorf("%w: degree must be >= %d, got %d", ErrInvalidConfig, MinDegree, degree)
	}
	if compare == nil {
		return nil, fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return &OrderedIndex[K, V]{
		root:    &node[K, V]{leaf: true},
		degree:  degree,
		compare: compare,
	}, nil
}

func (t *OrderedIndex[K, V]) maxEntries() int {
	return 2*t.degree - 1
}

// Get returns the value stored for key. The second result is false if key is
// not in the index.
func (t *OrderedIndex[K, V]) Get(key K) (V, bool) {
	return t.root.search(key, t.compare)
}

// Has reports whether key is in the index.
func (t *OrderedIndex[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put stores value under key, replacing the value of an existing key.
func (t *OrderedIndex[K, V]) Put(key K, value V) {
	if len(t.root.entries) == t.maxEntries() {
		oldRoot := t.root
		t.root = &node[K, V]{first: oldRoot}
		t.root.splitChild(0, t.degree)
		t.height++
	}
	if t.root.insertNonFull(key, value, t.degree, t.compare) {
		t.size++
	}
}

// IsEmpty reports whether the index holds no keys.
func (t *OrderedIndex[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Len returns the number of keys in the index.
func (t *OrderedIndex[K, V]) Len() int {
	return t.size
}

// Height returns the number of edges between the root and any leaf.
func (t *OrderedIndex[K, V]) Height() int {
	return t.height
}

// Degree returns the minimum branching factor the index was created with.
func (t *OrderedIndex[K, V]) Degree() int {
	return t.degree
}
