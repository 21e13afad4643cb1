package btree

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes an indented dump of the node structure to w, one node per
// line with its keys, children indented below their parent.
func (t *OrderedIndex[K, V]) WriteTo(w io.Writer) (int64, error) {
	var written int64
	err := t.root.print(w, 0, &written)
	return written, err
}

func (n *node[K, V]) print(w io.Writer, level int, written *int64) error {
	kind := "internal"
	if n.leaf {
		kind = "leaf"
	}
	keys := make([]K, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.key
	}
	c, err := fmt.Fprintf(w, "%s- %s (size %d) %v\n", strings.Repeat("  ", level), kind, len(keys), keys)
	*written += int64(c)
	if err != nil || n.leaf {
		return err
	}
	for i := 0; i <= len(n.entries); i++ {
		if err := n.child(i).print(w, level+1, written); err != nil {
			return err
		}
	}
	return nil
}
