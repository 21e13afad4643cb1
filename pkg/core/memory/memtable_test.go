package memory

import (
	"testing"

	"evlite/pkg/common"
)

func TestMemTablePutGet(t *testing.T) {
	mt := NewMemTable(2)
	for _, k := range []common.KeyType{10, 20, 5, 6, 12, 30, 7, 17} {
		if err := mt.Put(k, []byte{byte(k)}); err != nil {
			t.Fatalf("Put(%d): %v", k, err)
		}
	}
	if mt.Len() != 8 {
		t.Fatalf("Len = %d, want 8", mt.Len())
	}
	if v, ok := mt.Get(12); !ok || v[0] != 12 {
		t.Errorf("Get(12) = %v, %v", v, ok)
	}
	if _, ok := mt.Get(11); ok {
		t.Error("Get(11) should miss")
	}
}

func TestMemTableSizeTracksUpserts(t *testing.T) {
	mt := NewMemTable(4)
	mt.Put(1, []byte("abc"))
	if mt.Size() != 11 {
		t.Fatalf("Size = %d, want 11", mt.Size())
	}
	mt.Put(1, []byte("a"))
	if mt.Size() != 9 {
		t.Errorf("Size after upsert = %d, want 9", mt.Size())
	}
	if mt.Len() != 1 {
		t.Errorf("Len = %d, want 1", mt.Len())
	}
	mt.Close()
	if mt.Len() != 0 || mt.Size() != 0 {
		t.Errorf("Close should clear the table")
	}
}

func TestMemTableAscendGreaterOrEqual(t *testing.T) {
	mt := NewMemTable(3)
	for k := common.KeyType(0); k < 100; k += 10 {
		mt.Put(k, nil)
	}
	var keys []common.KeyType
	mt.AscendGreaterOrEqual(35, func(rec common.Record) bool {
		keys = append(keys, rec.Key)
		return rec.Key < 60
	})
	want := []common.KeyType{40, 50, 60}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}
