// Package table implements the dogs table on top of a primary-key index.
package table

import (
	"errors"
	"fmt"
	"math"

	"evlite/pkg/common"
	"evlite/pkg/core"
	"evlite/pkg/monitor"
	"evlite/pkg/sql"
)

// DefaultName is the name of the single table the shell serves.
const DefaultName = "dogs"

var ErrUnknownTable = errors.New("unknown table")

// Table stores encoded rows in an index keyed by row ID. Inserting an
// existing ID replaces the row.
type Table struct {
	name  string
	index core.Index
	stats *monitor.WorkloadStats
}

func New(name string, index core.Index) *Table {
	return &Table{
		name:  name,
		index: index,
		stats: monitor.NewWorkloadStats(),
	}
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Index() core.Index {
	return t.index
}

func (t *Table) Stats() *monitor.WorkloadStats {
	return t.stats
}

// Count returns the number of rows.
func (t *Table) Count() int {
	return t.index.Len()
}

func (t *Table) Insert(row common.Row) error {
	val, err := Encode(row)
	if err != nil {
		return err
	}
	t.stats.RecordWrite()
	if err := t.index.Put(row.ID, val); err != nil {
		return fmt.Errorf("insert %d: %w", row.ID, err)
	}
	common.T().Debugf("[Table] %s: stored row %d", t.name, row.ID)
	return nil
}

// Get returns the row stored under id. ok is false if there is none.
func (t *Table) Get(id common.KeyType) (common.Row, bool, error) {
	t.stats.RecordRead()
	val, ok := t.index.Get(id)
	if !ok {
		t.stats.RecordMiss()
		return common.Row{}, false, nil
	}
	t.stats.RecordHit()
	row, err := Decode(val)
	if err != nil {
		return common.Row{}, false, err
	}
	return row, true, nil
}

// Select returns the rows matching q in ascending ID order. A nil query
// selects all rows.
func (t *Table) Select(q *sql.SelectStmt) ([]common.Row, error) {
	if q == nil {
		q = &sql.SelectStmt{Limit: -1}
	}
	if q.Table != "" && q.Table != t.name {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, q.Table)
	}
	if q.Limit == 0 {
		return nil, nil
	}

	if q.Where != nil && q.Where.Op == "=" {
		row, ok, err := t.Get(common.KeyType(q.Where.Value))
		if err != nil || !ok {
			return nil, err
		}
		return []common.Row{row}, nil
	}

	t.stats.RecordRead()
	var rows []common.Row
	var scanErr error
	visit := func(rec common.Record) bool {
		if !q.MatchID(int64(rec.Key)) {
			// keys ascend, so an upper bound that fails once fails for good
			return !isUpperBound(q.Where)
		}
		row, err := Decode(rec.Value)
		if err != nil {
			scanErr = fmt.Errorf("row %d: %w", rec.Key, err)
			return false
		}
		rows = append(rows, row)
		return q.Limit < 0 || len(rows) < q.Limit
	}

	if pivot, ok := lowerBound(q.Where); ok {
		t.index.AscendGreaterOrEqual(pivot, visit)
	} else if q.Where != nil && q.Where.Op == ">" {
		// nothing is greater than the largest key
		return nil, nil
	} else {
		t.index.Ascend(visit)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return rows, nil
}

func isUpperBound(w *sql.WhereClause) bool {
	return w != nil && (w.Op == "<" || w.Op == "<=")
}

// lowerBound returns the smallest key a > or >= clause can match.
func lowerBound(w *sql.WhereClause) (common.KeyType, bool) {
	if w == nil {
		return 0, false
	}
	switch w.Op {
	case ">=":
		return common.KeyType(w.Value), true
	case ">":
		if w.Value == math.MaxInt64 {
			return 0, false
		}
		return common.KeyType(w.Value + 1), true
	}
	return 0, false
}

func (t *Table) Close() error {
	return t.index.Close()
}
