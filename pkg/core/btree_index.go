package core

import (
	"io"

	"evlite/pkg/common"
	"evlite/pkg/core/btree"
)

// BTreeIndex adapts the native B-tree to the Index interface.
type BTreeIndex struct {
	tree *btree.OrderedIndex[common.KeyType, common.ValueType]
}

// NewBTreeIndex creates an empty B-tree index. A degree below 2 yields an
// error wrapping btree.ErrInvalidConfig.
func NewBTreeIndex(degree int) (*BTreeIndex, error) {
	tree, err := btree.New[common.KeyType, common.ValueType](degree)
	if err != nil {
		return nil, err
	}
	common.T().Debugf("[Index] btree created, degree=%d", degree)
	return &BTreeIndex{tree: tree}, nil
}

func (b *BTreeIndex) Get(key common.KeyType) (common.ValueType, bool) {
	return b.tree.Get(key)
}

func (b *BTreeIndex) Put(key common.KeyType, val common.ValueType) error {
	height := b.tree.Height()
	b.tree.Put(key, val)
	if b.tree.Height() != height {
		common.T().Debugf("[Index] root split, height %d -> %d (%d keys)", height, b.tree.Height(), b.tree.Len())
	}
	return nil
}

func (b *BTreeIndex) Len() int {
	return b.tree.Len()
}

func (b *BTreeIndex) Ascend(fn common.RecordIterator) {
	b.tree.Ascend(func(k common.KeyType, v common.ValueType) bool {
		return fn(common.Record{Key: k, Value: v})
	})
}

func (b *BTreeIndex) AscendGreaterOrEqual(pivot common.KeyType, fn common.RecordIterator) {
	b.tree.AscendGreaterOrEqual(pivot, func(k common.KeyType, v common.ValueType) bool {
		return fn(common.Record{Key: k, Value: v})
	})
}

func (b *BTreeIndex) Type() string {
	return EngineBTree
}

func (b *BTreeIndex) Close() error {
	return nil
}

func (b *BTreeIndex) Degree() int {
	return b.tree.Degree()
}

func (b *BTreeIndex) Height() int {
	return b.tree.Height()
}

func (b *BTreeIndex) WriteTo(w io.Writer) (int64, error) {
	return b.tree.WriteTo(w)
}

// Check validates the invariants of the underlying tree.
func (b *BTreeIndex) Check() error {
	return b.tree.Check()
}
