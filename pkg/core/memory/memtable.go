package memory

import (
	"evlite/pkg/common"
	"sync"

	"github.com/google/btree"
)

type Item struct {
	Key common.KeyType
	Val common.ValueType
}

func (i Item) Less(than btree.Item) bool {
	return i.Key < than.(Item).Key
}

// MemTable is an index engine on github.com/google/btree. It serves as the
// reference the native B-tree is measured against.
type MemTable struct {
	tree *btree.BTree
	lock sync.RWMutex
	size int
}

func NewMemTable(degree int) *MemTable {
	return &MemTable{
		tree: btree.New(degree),
	}
}

func (mt *MemTable) Put(key common.KeyType, val common.ValueType) error {
	mt.lock.Lock()
	defer mt.lock.Unlock()

	item := Item{Key: key, Val: val}
	if old := mt.tree.ReplaceOrInsert(item); old != nil {
		mt.size -= 8 + len(old.(Item).Val)
	}
	mt.size += 8 + len(val)
	return nil
}

func (mt *MemTable) Get(key common.KeyType) (common.ValueType, bool) {
	mt.lock.RLock()
	defer mt.lock.RUnlock()

	item := Item{Key: key}
	res := mt.tree.Get(item)
	if res == nil {
		return nil, false
	}
	return res.(Item).Val, true
}

// Size returns the approximate payload size in bytes.
func (mt *MemTable) Size() int {
	mt.lock.RLock()
	defer mt.lock.RUnlock()
	return mt.size
}

func (mt *MemTable) Ascend(fn common.RecordIterator) {
	mt.lock.RLock()
	defer mt.lock.RUnlock()

	mt.tree.Ascend(func(i btree.Item) bool {
		item := i.(Item)
		return fn(common.Record{Key: item.Key, Value: item.Val})
	})
}

func (mt *MemTable) AscendGreaterOrEqual(pivot common.KeyType, fn common.RecordIterator) {
	mt.lock.RLock()
	defer mt.lock.RUnlock()

	mt.tree.AscendGreaterOrEqual(Item{Key: pivot}, func(i btree.Item) bool {
		item := i.(Item)
		return fn(common.Record{Key: item.Key, Value: item.Val})
	})
}

func (mt *MemTable) Len() int {
	mt.lock.RLock()
	defer mt.lock.RUnlock()
	return mt.tree.Len()
}

func (mt *MemTable) Type() string {
	return "memtable"
}

func (mt *MemTable) Close() error {
	mt.lock.Lock()
	defer mt.lock.Unlock()
	mt.tree.Clear(false)
	mt.size = 0
	return nil
}
