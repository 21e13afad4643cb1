package sql

import (
	"errors"
	"testing"

	"evlite/pkg/common"
)

func TestPrepareType(t *testing.T) {
	tests := []struct {
		line string
		want StatementType
	}{
		{"select", Select},
		{"select *", Select},
		{"SELECT * FROM dogs", Select},
		{"insert 1 evie jindo", Insert},
		{"  Insert 2 rex collie  ", Insert},
		{"update dogs set x = 1", Unrecognized},
		{"delete 1", Unrecognized},
		{"", Unrecognized},
	}
	for _, tt := range tests {
		stmt, err := Prepare(tt.line)
		if err != nil {
			t.Errorf("Prepare(%q): %v", tt.line, err)
			continue
		}
		if stmt.Type != tt.want {
			t.Errorf("Prepare(%q): type %s, want %s", tt.line, stmt.Type, tt.want)
		}
	}
}

func TestPrepareInsert(t *testing.T) {
	stmt, err := Prepare("insert 1 evie jindo")
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	want := common.Row{ID: 1, Name: "evie", Breed: "jindo"}
	if stmt.Row != want {
		t.Errorf("row: got %v, want %v", stmt.Row, want)
	}
	if stmt.Text != "insert 1 evie jindo" {
		t.Errorf("text: got %q", stmt.Text)
	}
}

func TestPrepareInsertErrors(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxyz0123456" // 33 bytes
	tests := []struct {
		line string
		want error
	}{
		{"insert", ErrSyntax},
		{"insert 1 evie", ErrSyntax},
		{"insert 1 evie jindo extra", ErrSyntax},
		{"insert one evie jindo", ErrSyntax},
		{"insert -1 evie jindo", common.ErrNegativeID},
		{"insert 1 " + long + " jindo", common.ErrStringTooLong},
		{"insert 1 evie " + long, common.ErrStringTooLong},
	}
	for _, tt := range tests {
		_, err := Prepare(tt.line)
		if !errors.Is(err, tt.want) {
			t.Errorf("Prepare(%q): got %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestParseSelect(t *testing.T) {
	tests := []struct {
		sql   string
		table string
		limit int
		hasW  bool
		err   bool
	}{
		{"select", "", -1, false, false},
		{"select *", "", -1, false, false},
		{"SELECT * FROM dogs", "dogs", -1, false, false},
		{"select * from Dogs;", "dogs", -1, false, false},
		{"  SELECT * FROM my_table_1  ", "my_table_1", -1, false, false},
		{"select * limit 10", "", 10, false, false},
		{"SELECT * FROM dogs WHERE id >= 100", "dogs", -1, true, false},
		{"select where id = -3", "", -1, true, false},
		{"SELECT * FROM dogs WHERE id >= 100 LIMIT 5", "dogs", 5, true, false},
		{"SELECT * FROM dogs WHERE name = 1", "", 0, false, true},
		{"SELECT * FROM ", "", 0, false, true},
		{"SELECT a FROM dogs", "", 0, false, true},
		{"select * limit -1", "", 0, false, true},
	}
	for _, tt := range tests {
		stmt, err := ParseSelect(tt.sql)
		if tt.err {
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("ParseSelect(%q): expected syntax error, got %v", tt.sql, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSelect(%q): %v", tt.sql, err)
			continue
		}
		if stmt.Table != tt.table {
			t.Errorf("ParseSelect(%q): table=%q, want %q", tt.sql, stmt.Table, tt.table)
		}
		if stmt.Limit != tt.limit {
			t.Errorf("ParseSelect(%q): limit=%d, want %d", tt.sql, stmt.Limit, tt.limit)
		}
		if (stmt.Where != nil) != tt.hasW {
			t.Errorf("ParseSelect(%q): where=%v, want hasWhere=%v", tt.sql, stmt.Where, tt.hasW)
		}
	}
}

func TestPrepareSelectError(t *testing.T) {
	if _, err := Prepare("select name from dogs"); !errors.Is(err, ErrSyntax) {
		t.Errorf("expected syntax error, got %v", err)
	}
}

func TestMatchID(t *testing.T) {
	stmt, _ := ParseSelect("SELECT * FROM dogs WHERE id >= 10")
	if stmt.MatchID(9) {
		t.Fatalf("expected id=9 not to match")
	}
	if !stmt.MatchID(10) || !stmt.MatchID(11) {
		t.Fatalf("expected id>=10 to match")
	}
	stmt2, _ := ParseSelect("SELECT * FROM dogs")
	if !stmt2.MatchID(1) || !stmt2.MatchID(999) {
		t.Fatalf("expected query without WHERE to match any id")
	}
	stmt3, _ := ParseSelect("select where id != 4")
	if stmt3.MatchID(4) || !stmt3.MatchID(5) {
		t.Fatalf("expected id!=4 to exclude only 4")
	}
}
