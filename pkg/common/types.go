package common

import (
	"errors"
	"fmt"
)

// KeyType is the primary key type, currently fixed to int64.
type KeyType int64

// ValueType is the encoded payload stored under a key.
type ValueType []byte

// Record is a key/value pair as handed out by index traversals.
type Record struct {
	Key   KeyType
	Value ValueType
}

// RecordIterator is called for each record of an ordered traversal. Returning
// false stops the traversal.
type RecordIterator func(rec Record) bool

// String is handy for debug output.
func (r *Record) String() string {
	return fmt.Sprintf("Record{Key: %d, ValLen: %d}", r.Key, len(r.Value))
}

// Column limits of a Row, in bytes.
const (
	NameSize  = 32
	BreedSize = 32
)

var (
	ErrNegativeID    = errors.New("ID must be positive")
	ErrStringTooLong = errors.New("string is too long")
)

// Row is a single record of the dogs table.
type Row struct {
	ID    KeyType
	Name  string
	Breed string
}

// Validate checks the row against the column limits.
func (r Row) Validate() error {
	if r.ID < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, r.ID)
	}
	if len(r.Name) > NameSize {
		return fmt.Errorf("%w: name has %d bytes, max %d", ErrStringTooLong, len(r.Name), NameSize)
	}
	if len(r.Breed) > BreedSize {
		return fmt.Errorf("%w: breed has %d bytes, max %d", ErrStringTooLong, len(r.Breed), BreedSize)
	}
	return nil
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Name, r.Breed)
}
