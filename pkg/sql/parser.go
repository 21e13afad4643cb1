// Package sql recognizes the statements of the EVLite shell.
package sql

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"evlite/pkg/common"
)

var ErrSyntax = errors.New("syntax error")

type StatementType int

const (
	Unrecognized StatementType = iota
	Insert
	Select
)

func (t StatementType) String() string {
	switch t {
	case Insert:
		return "insert"
	case Select:
		return "select"
	default:
		return "unrecognized"
	}
}

// Statement is a prepared shell statement. Row is set for inserts, Query for
// selects.
type Statement struct {
	Type  StatementType
	Text  string
	Row   common.Row
	Query *SelectStmt
}

// SelectStmt represents a parsed SELECT statement.
type SelectStmt struct {
	Table string // empty if no FROM clause was given
	Where *WhereClause
	Limit int // -1 = no limit
}

type WhereClause struct {
	Field string
	Op    string
	Value int64
}

var selectRe = regexp.MustCompile(`(?i)^SELECT(?:\s+\*(?:\s+FROM\s+([a-zA-Z_][a-zA-Z0-9_]*))?)?(?:\s+WHERE\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*(=|!=|>=|<=|>|<)\s*(-?\d+))?(?:\s+LIMIT\s+(\d+))?\s*;?\s*$`)

// Prepare recognizes line by its leading keyword and parses it:
//
//	insert <id> <name> <breed>
//	select [* [FROM <table>]] [WHERE id <op> <int>] [LIMIT <n>]
//
// A line with any other keyword yields an Unrecognized statement and no
// error.
func Prepare(line string) (*Statement, error) {
	text := strings.TrimSpace(line)
	stmt := &Statement{Text: text}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return stmt, nil
	}
	switch strings.ToLower(fields[0]) {
	case "insert":
		stmt.Type = Insert
		row, err := parseInsert(fields[1:])
		if err != nil {
			return nil, err
		}
		stmt.Row = row
	case "select":
		stmt.Type = Select
		q, err := ParseSelect(text)
		if err != nil {
			return nil, err
		}
		stmt.Query = q
	}
	return stmt, nil
}

func parseInsert(args []string) (common.Row, error) {
	if len(args) != 3 {
		return common.Row{}, fmt.Errorf("%w: expected insert <id> <name> <breed>", ErrSyntax)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return common.Row{}, fmt.Errorf("%w: invalid id %q", ErrSyntax, args[0])
	}
	row := common.Row{ID: common.KeyType(id), Name: args[1], Breed: args[2]}
	if err := row.Validate(); err != nil {
		return common.Row{}, err
	}
	return row, nil
}

// ParseSelect parses simple queries:
// "select"
// "select * from dogs"
// "select * from dogs where id >= 100"
// "select * limit 10"
// Only WHERE id is supported.
func ParseSelect(s string) (*SelectStmt, error) {
	matches := selectRe.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return nil, fmt.Errorf("%w: expected select [* [from <table>]] [where id <op> <int>] [limit <n>]", ErrSyntax)
	}

	stmt := &SelectStmt{
		Table: strings.ToLower(matches[1]),
		Limit: -1,
	}

	if matches[2] != "" {
		field := strings.ToLower(matches[2])
		if field != "id" {
			return nil, fmt.Errorf("%w: only where id is supported", ErrSyntax)
		}
		whereVal, err := strconv.ParseInt(matches[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid where value", ErrSyntax)
		}
		stmt.Where = &WhereClause{
			Field: field,
			Op:    matches[3],
			Value: whereVal,
		}
	}

	if matches[5] != "" {
		limitVal, err := strconv.Atoi(matches[5])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid limit value", ErrSyntax)
		}
		stmt.Limit = limitVal
	}

	return stmt, nil
}

func (stmt *SelectStmt) MatchID(id int64) bool {
	if stmt.Where == nil {
		return true
	}
	v := stmt.Where.Value
	switch stmt.Where.Op {
	case "=":
		return id == v
	case "!=":
		return id != v
	case ">":
		return id > v
	case "<":
		return id < v
	case ">=":
		return id >= v
	case "<=":
		return id <= v
	default:
		return false
	}
}
