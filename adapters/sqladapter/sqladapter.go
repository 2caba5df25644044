// Package sqladapter is the SQL ingestion/emission adapter: a
// read/write boundary between a SQL Server or Postgres table and
// alsval.TabularData, selected by DSN scheme.
package sqladapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"

	"github.com/vippsas/als/alserr"
	"github.com/vippsas/als/alsval"
	"github.com/vippsas/als/alsxid"
)

// DB is the subset of *sql.DB the adapter needs, so callers can pass
// a *sql.Tx-backed wrapper or a fake in tests.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var _ DB = &sql.DB{}

// Dialect distinguishes the two target databases; Open reports it so
// callers can pick a dialect-specific placeholder style without the DB
// interface exposing Driver().
type Dialect int

const (
	DialectMSSQL Dialect = iota
	DialectPostgres
)

// Open opens a *sql.DB for dsn, selecting the driver by URI scheme:
// sqlserver:// or azuresql:// -> go-mssqldb, postgres:// -> pgx's
// database/sql stdlib shim.
func Open(dsn string) (*sql.DB, Dialect, error) {
	switch {
	case strings.HasPrefix(dsn, "sqlserver://"), strings.HasPrefix(dsn, "azuresql://"):
		connector, err := mssql.NewConnector(dsn)
		if err != nil {
			return nil, 0, alserr.SqlError{Query: dsn, Err: err}
		}
		return sql.OpenDB(connector), DialectMSSQL, nil
	case strings.HasPrefix(dsn, "postgres://"):
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, 0, alserr.SqlError{Query: dsn, Err: err}
		}
		return db, DialectPostgres, nil
	default:
		return nil, 0, alserr.SqlError{Query: dsn, Err: fmt.Errorf(
			"expected sqlserver://, azuresql:// or postgres:// DSN")}
	}
}

var _ = stdlib.Driver{} // keep the pgx stdlib driver import registered

// ReadQuery runs query against db and scans every returned column
// into a TabularData, preserving the driver's native Go type for each
// cell.
func ReadQuery(ctx context.Context, db DB, query string, args ...any) (alsval.TabularData, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return alsval.TabularData{}, alserr.SqlError{Query: query, Err: err}
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return alsval.TabularData{}, alserr.SqlError{Query: query, Err: err}
	}
	for i, name := range names {
		names[i] = alsxid.Sanitize(name)
	}

	var values [][]alsval.Value
	for rows.Next() {
		scanTargets := make([]any, len(names))
		cells := make([]any, len(names))
		for i := range cells {
			scanTargets[i] = &cells[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return alsval.TabularData{}, alserr.SqlError{Query: query, Err: err}
		}
		row := make([]alsval.Value, len(names))
		for i, c := range cells {
			row[i] = sqlToValue(c)
		}
		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return alsval.TabularData{}, alserr.SqlError{Query: query, Err: err}
	}

	return alsval.FromRows(names, values)
}

func sqlToValue(c any) alsval.Value {
	switch x := c.(type) {
	case nil:
		return alsval.Null()
	case int64:
		return alsval.Int(x)
	case float64:
		return alsval.Float(x)
	case bool:
		return alsval.Bool(x)
	case []byte:
		return alsval.String(string(x)).WithText(string(x))
	case string:
		return alsval.String(x).WithText(x)
	default:
		return alsval.String(fmt.Sprint(x)).WithText(fmt.Sprint(x))
	}
}

// WriteTable inserts every row of t into tableName via a batched
// multi-row INSERT. go-mssqldb takes @p1-style ordinal params, pgx's
// stdlib shim takes $1-style.
func WriteTable(ctx context.Context, db DB, dialect Dialect, tableName string, t alsval.TabularData) error {
	if t.RowCount == 0 {
		return nil
	}
	names := t.ColumnNames()

	var b strings.Builder
	fmt.Fprintf(&b, "insert into %s (%s) values ", tableName, strings.Join(names, ", "))

	args := make([]any, 0, t.RowCount*len(names))
	n := 1
	for r, row := range t.Rows() {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for i, v := range row {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(placeholder(dialect, n))
			n++
			args = append(args, valueArg(v))
		}
		b.WriteString(")")
	}

	if _, err := db.ExecContext(ctx, b.String(), args...); err != nil {
		return alserr.SqlError{Query: b.String(), Err: err}
	}
	return nil
}

func placeholder(dialect Dialect, n int) string {
	if dialect == DialectMSSQL {
		return fmt.Sprintf("@p%d", n)
	}
	return fmt.Sprintf("$%d", n)
}

func valueArg(v alsval.Value) any {
	switch v.Kind() {
	case alsval.KindNull:
		return nil
	case alsval.KindInt:
		i, _ := v.Int()
		return i
	case alsval.KindFloat:
		f, _ := v.Float()
		return f
	case alsval.KindBool:
		b, _ := v.Bool()
		return b
	default:
		s, _ := v.Str()
		return s
	}
}
