package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync"

	"evlite/pkg/common"

	_ "modernc.org/sqlite"
)

// SQLiteBackend is an index engine on an in-memory SQLite table. Nothing is
// written to disk.
type SQLiteBackend struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteBackend() (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// every connection to ":memory:" sees its own database
	db.SetMaxOpenConns(1)

	query := `
	CREATE TABLE IF NOT EXISTS data (
		key INTEGER PRIMARY KEY,
		value BLOB
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("init table: %w", err)
	}
	common.T().Debugf("[Storage] sqlite backend ready")
	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Put(key common.KeyType, val common.ValueType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("INSERT OR REPLACE INTO data (key, value) VALUES (?, ?)", int64(key), []byte(val))
	return err
}

// BatchPut stores all records in a single transaction.
func (s *SQLiteBackend) BatchPut(records []common.Record) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO data (key, value) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(int64(rec.Key), []byte(rec.Value)); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteBackend) Get(key common.KeyType) (common.ValueType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var val []byte
	err := s.db.QueryRow("SELECT value FROM data WHERE key = ?", int64(key)).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		common.T().Errorf("[Storage] read key %d: %v", key, err)
		return nil, false
	}
	return val, true
}

func (s *SQLiteBackend) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM data").Scan(&n); err != nil {
		common.T().Errorf("[Storage] count: %v", err)
		return 0
	}
	return n
}

func (s *SQLiteBackend) Ascend(fn common.RecordIterator) {
	s.AscendGreaterOrEqual(common.KeyType(math.MinInt64), fn)
}

// AscendGreaterOrEqual loads the matching rows before calling fn, so fn may
// use the backend again.
func (s *SQLiteBackend) AscendGreaterOrEqual(pivot common.KeyType, fn common.RecordIterator) {
	records, err := s.loadFrom(pivot)
	if err != nil {
		common.T().Errorf("[Storage] scan from %d: %v", pivot, err)
		return
	}
	for _, rec := range records {
		if !fn(rec) {
			return
		}
	}
}

func (s *SQLiteBackend) loadFrom(pivot common.KeyType) ([]common.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT key, value FROM data WHERE key >= ? ORDER BY key ASC", int64(pivot))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []common.Record
	for rows.Next() {
		var k int64
		var v []byte
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		records = append(records, common.Record{Key: common.KeyType(k), Value: v})
	}
	return records, rows.Err()
}

func (s *SQLiteBackend) Type() string {
	return "sqlite"
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
