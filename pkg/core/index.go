package core

import (
	"errors"
	"fmt"
	"io"

	"evlite/pkg/common"
	"evlite/pkg/config"
	"evlite/pkg/core/memory"
	"evlite/pkg/storage"
)

// Engine names accepted by Open.
const (
	EngineBTree    = "btree"
	EngineMemTable = "memtable"
	EngineSQLite   = "sqlite"
)

var ErrUnknownEngine = errors.New("unknown index engine")

// Index is the primary-key index a table is built on. It hides the
// difference between the native B-tree and the reference engines.
type Index interface {
	Get(key common.KeyType) (common.ValueType, bool)
	Put(key common.KeyType, val common.ValueType) error
	Len() int
	Ascend(fn common.RecordIterator)
	AscendGreaterOrEqual(pivot common.KeyType, fn common.RecordIterator)
	Type() string // "btree", "memtable", "sqlite"
	Close() error
}

// Tree is implemented by indexes that can describe their node layout.
type Tree interface {
	Degree() int
	Height() int
	WriteTo(w io.Writer) (int64, error)
}

// Open creates an empty index for the configured engine.
func Open(cfg config.IndexConfig) (Index, error) {
	switch cfg.Engine {
	case EngineBTree, "":
		idx, err := NewBTreeIndex(cfg.Degree)
		if err != nil {
			return nil, err
		}
		return idx, nil
	case EngineMemTable:
		if cfg.Degree < 2 {
			return nil, fmt.Errorf("memtable: degree must be >= 2, got %d", cfg.Degree)
		}
		return memory.NewMemTable(cfg.Degree), nil
	case EngineSQLite:
		backend, err := storage.NewSQLiteBackend()
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.Engine)
	}
}
