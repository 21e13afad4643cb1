package table

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"evlite/pkg/common"
)

// Row layout, all offsets in bytes. Strings are NUL padded.
const (
	idSize      = 8
	nameOffset  = idSize
	breedOffset = nameOffset + common.NameSize
	RowSize     = breedOffset + common.BreedSize
)

var ErrCorruptRow = errors.New("corrupt row")

// Encode serializes row into its fixed-width layout.
func Encode(row common.Row) (common.ValueType, error) {
	if err := row.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, RowSize)
	binary.LittleEndian.PutUint64(buf[:idSize], uint64(row.ID))
	copy(buf[nameOffset:breedOffset], row.Name)
	copy(buf[breedOffset:], row.Breed)
	return buf, nil
}

func Decode(val common.ValueType) (common.Row, error) {
	if len(val) != RowSize {
		return common.Row{}, fmt.Errorf("%w: %d bytes, want %d", ErrCorruptRow, len(val), RowSize)
	}
	return common.Row{
		ID:    common.KeyType(binary.LittleEndian.Uint64(val[:idSize])),
		Name:  string(bytes.TrimRight(val[nameOffset:breedOffset], "\x00")),
		Breed: string(bytes.TrimRight(val[breedOffset:], "\x00")),
	}, nil
}
