package btree

// ItemIterator is called for each key/value pair during a traversal. Returning
// false stops the traversal.
type ItemIterator[K, V any] func(key K, value V) bool

// Ascend calls fn for every key in ascending order.
func (t *OrderedIndex[K, V]) Ascend(fn ItemIterator[K, V]) {
	t.root.ascend(nil, t.compare, fn)
}

// AscendGreaterOrEqual calls fn for every key >= pivot in ascending order.
func (t *OrderedIndex[K, V]) AscendGreaterOrEqual(pivot K, fn ItemIterator[K, V]) {
	t.root.ascend(&pivot, t.compare, fn)
}

// ascend walks the subtree in order, starting at the first key >= *from when
// from is set. It returns false once fn asked to stop.
func (n *node[K, V]) ascend(from *K, compare func(a, b K) int, fn ItemIterator[K, V]) bool {
	start, found := 0, false
	if from != nil {
		start, found = n.find(*from, compare)
	}
	for i := start; i <= len(n.entries); i++ {
		// an exact match means everything in the child before it is smaller
		if !n.leaf && !(found && i == start) {
			if !n.child(i).ascend(from, compare, fn) {
				return false
			}
		}
		if i == len(n.entries) {
			break
		}
		if !fn(n.entries[i].key, n.entries[i].value) {
			return false
		}
	}
	return true
}
