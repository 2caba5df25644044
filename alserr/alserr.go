// Package alserr holds the error taxonomy shared across the ALS codec
// and its adapters. Every variant implements error; variants wrapping
// a cause also implement Unwrap() error so callers can use
// errors.Is/errors.As.
package alserr

import "fmt"

// CsvParseError reports a malformed CSV cell at the adapter boundary.
type CsvParseError struct {
	Line, Column int
	Message      string
}

func (e CsvParseError) Error() string {
	return fmt.Sprintf("csv parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// JsonParseError wraps the standard library's JSON decode error.
type JsonParseError struct {
	Err error
}

func (e JsonParseError) Error() string { return fmt.Sprintf("json parse error: %s", e.Err) }
func (e JsonParseError) Unwrap() error { return e.Err }

// AlsSyntaxError reports a tokenizer or parser failure at a byte
// position in the source text.
type AlsSyntaxError struct {
	Position int
	Message  string
}

func (e AlsSyntaxError) Error() string {
	return fmt.Sprintf("als syntax error at position %d: %s", e.Position, e.Message)
}

// InvalidDictRef reports a DictRef whose index is out of bounds, or
// that has no backing dictionary at all.
type InvalidDictRef struct {
	Index uint32
	Size  int
}

func (e InvalidDictRef) Error() string {
	return fmt.Sprintf("invalid dictionary reference _%d (dictionary has %d entries)", e.Index, e.Size)
}

// RangeOverflow reports a Range whose expansion would exceed
// max_range_expansion, or whose (end-start)/step overflows.
type RangeOverflow struct {
	Start, End, Step int64
}

func (e RangeOverflow) Error() string {
	return fmt.Sprintf("range %d>%d:%d would produce too many values", e.Start, e.End, e.Step)
}

// VersionMismatch reports an ALS version newer than this parser
// supports.
type VersionMismatch struct {
	Expected, Found uint8
}

func (e VersionMismatch) Error() string {
	return fmt.Sprintf("version mismatch: expected <= %d, found %d", e.Expected, e.Found)
}

// ColumnMismatch reports a stream count, or an expanded column length,
// that disagrees with the schema.
type ColumnMismatch struct {
	Schema, Data int
}

func (e ColumnMismatch) Error() string {
	return fmt.Sprintf("column count mismatch: schema has %d, data has %d", e.Schema, e.Data)
}

// IoError wraps an underlying I/O failure at an adapter boundary.
type IoError struct {
	Err error
}

func (e IoError) Error() string { return fmt.Sprintf("io error: %s", e.Err) }
func (e IoError) Unwrap() error { return e.Err }

// SqlError wraps a driver error from the SQL adapter.
type SqlError struct {
	Query string
	Err   error
}

func (e SqlError) Error() string { return fmt.Sprintf("sql error running %q: %s", e.Query, e.Err) }
func (e SqlError) Unwrap() error { return e.Err }
