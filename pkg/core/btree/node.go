package btree

import "sort"

// entry is a key/value pair stored in a node. In an internal node it also owns
// the subtree holding all keys between its key and the next entry's key.
type entry[K, V any] struct {
	key   K
	value V
	child *node[K, V]
}

// node must at all times maintain the invariant that either
//   - leaf is true and first and every entry's child are nil
//   - leaf is false, first is set and every entry carries a child
type node[K, V any] struct {
	entries []entry[K, V]
	first   *node[K, V]
	leaf    bool
}

// child returns the i-th subtree: first for i == 0, otherwise the subtree
// owned by entries[i-1].
func (n *node[K, V]) child(i int) *node[K, V] {
	if i == 0 {
		return n.first
	}
	return n.entries[i-1].child
}

// find returns the position of key in this node. If found is false, index is
// the smallest position whose key is greater than key, which is also the
// child to descend into.
func (n *node[K, V]) find(key K, compare func(a, b K) int) (index int, found bool) {
	i := sort.Search(len(n.entries), func(i int) bool {
		return compare(key, n.entries[i].key) < 0
	})
	if i > 0 && compare(n.entries[i-1].key, key) == 0 {
		return i - 1, true
	}
	return i, false
}

func (n *node[K, V]) search(key K, compare func(a, b K) int) (_ V, _ bool) {
	i, found := n.find(key, compare)
	if found {
		return n.entries[i].value, true
	}
	if n.leaf {
		return
	}
	return n.child(i).search(key, compare)
}

// insertAt inserts e at index, pushing all subsequent entries right.
func (n *node[K, V]) insertAt(index int, e entry[K, V]) {
	n.entries = append(n.entries, entry[K, V]{})
	copy(n.entries[index+1:], n.entries[index:])
	n.entries[index] = e
}

// splitChild splits the full child at position i. Its median entry moves up
// into n at position i and the new right sibling becomes that entry's child.
// Afterwards both halves hold exactly degree-1 entries.
func (n *node[K, V]) splitChild(i, degree int) {
	full := n.child(i)
	median := full.entries[degree-1]

	sibling := &node[K, V]{leaf: full.leaf}
	sibling.entries = make([]entry[K, V], degree-1, 2*degree-1)
	copy(sibling.entries, full.entries[degree:])
	if !full.leaf {
		sibling.first = median.child
	}

	clear(full.entries[degree-1:])
	full.entries = full.entries[:degree-1]

	median.child = sibling
	n.insertAt(i, median)
}

// insertNonFull puts key into the subtree rooted at n, which must hold fewer
// than 2*degree-1 entries. It returns true if key was not present before.
func (n *node[K, V]) insertNonFull(key K, value V, degree int, compare func(a, b K) int) bool {
	i, found := n.find(key, compare)
	if found {
		n.entries[i].value = value
		return false
	}
	if n.leaf {
		n.insertAt(i, entry[K, V]{key: key, value: value})
		return true
	}
	if len(n.child(i).entries) == 2*degree-1 {
		n.splitChild(i, degree)
		switch c := compare(key, n.entries[i].key); {
		case c == 0:
			n.entries[i].value = value
			return false
		case c > 0:
			i++
		}
	}
	return n.child(i).insertNonFull(key, value, degree, compare)
}
