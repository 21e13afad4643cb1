package btree

import "fmt"

// Check validates the structural invariants of the index: node occupancy,
// uniform leaf depth, key ordering within and across nodes, and the size and
// height bookkeeping. It returns nil for a well-formed tree.
func (t *OrderedIndex[K, V]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	count, err := t.checkNode(t.root, 0, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d keys, size %d)", ErrCorrupted, count, t.size)
	}
	return nil
}

// checkNode validates the subtree at depth, whose keys must lie strictly
// between *lo and *hi when those bounds are set. It returns the number of keys
// in the subtree.
func (t *OrderedIndex[K, V]) checkNode(n *node[K, V], depth int, lo, hi *K) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node at depth %d", ErrCorrupted, depth)
	}
	if len(n.entries) > t.maxEntries() {
		return 0, fmt.Errorf("%w: node at depth %d holds %d entries, max %d",
			ErrCorrupted, depth, len(n.entries), t.maxEntries())
	}
	if depth > 0 && len(n.entries) < t.degree-1 {
		return 0, fmt.Errorf("%w: node at depth %d holds %d entries, min %d",
			ErrCorrupted, depth, len(n.entries), t.degree-1)
	}
	for i, e := range n.entries {
		if i > 0 && t.compare(n.entries[i-1].key, e.key) >= 0 {
			return 0, fmt.Errorf("%w: keys out of order at depth %d index %d", ErrCorrupted, depth, i)
		}
		if lo != nil && t.compare(*lo, e.key) >= 0 {
			return 0, fmt.Errorf("%w: key at depth %d index %d not above separator", ErrCorrupted, depth, i)
		}
		if hi != nil && t.compare(e.key, *hi) >= 0 {
			return 0, fmt.Errorf("%w: key at depth %d index %d not below separator", ErrCorrupted, depth, i)
		}
	}
	if n.leaf {
		if depth != t.height {
			return 0, fmt.Errorf("%w: leaf at depth %d, height %d", ErrCorrupted, depth, t.height)
		}
		if n.first != nil {
			return 0, fmt.Errorf("%w: leaf at depth %d owns a child", ErrCorrupted, depth)
		}
		for i, e := range n.entries {
			if e.child != nil {
				return 0, fmt.Errorf("%w: leaf entry %d at depth %d owns a child", ErrCorrupted, i, depth)
			}
		}
		return len(n.entries), nil
	}
	if depth == t.height {
		return 0, fmt.Errorf("%w: internal node at leaf depth %d", ErrCorrupted, depth)
	}

	count := len(n.entries)
	for i := 0; i <= len(n.entries); i++ {
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.entries[i-1].key
		}
		if i < len(n.entries) {
			childHi = &n.entries[i].key
		}
		c, err := t.checkNode(n.child(i), depth+1, childLo, childHi)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}
