// Package csv is a CSV ingestion/emission adapter: it produces
// alsval.TabularData from CSV text and renders TabularData back to
// CSV. It is not part of the ALS core; the core never imports it.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vippsas/als/alserr"
	"github.com/vippsas/als/alslex"
	"github.com/vippsas/als/alsval"
	"github.com/vippsas/als/alsxid"
)

// Read parses CSV text from r into TabularData. The first row is the
// header; its cells become column names after alsxid.Sanitize rewrites
// any rune the ALS schema grammar would reject. A cell equal to the
// \N/\E sentinels round-trips to null or the empty string; any other
// cell is type-inferred per column.
func Read(r io.Reader) (alsval.TabularData, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		if pe, ok := err.(*csv.ParseError); ok {
			return alsval.TabularData{}, alserr.CsvParseError{Line: pe.Line, Column: pe.Column, Message: pe.Err.Error()}
		}
		return alsval.TabularData{}, alserr.IoError{Err: err}
	}
	if len(records) == 0 {
		return alsval.TabularData{}, nil
	}

	names := make([]string, len(records[0]))
	for i, h := range records[0] {
		names[i] = alsxid.Sanitize(h)
	}
	rows := records[1:]
	cols := make([]alsval.Column, len(names))
	for c, name := range names {
		values := make([]alsval.Value, len(rows))
		for r, row := range rows {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			values[r] = cellToValue(cell)
		}
		cols[c] = alsval.NewColumn(name, values)
	}
	return alsval.New(cols)
}

func cellToValue(cell string) alsval.Value {
	switch cell {
	case alslex.NullSentinel:
		return alsval.Null()
	case alslex.EmptySentinel:
		return alsval.String("").WithText("")
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return alsval.Int(i).WithText(cell)
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return alsval.Float(f).WithText(cell)
	}
	return alsval.String(cell).WithText(cell)
}

// Write renders t as CSV to w: a header row of column names, then one
// row per value, translating Null/empty-string back to the \N/\E
// sentinels.
func Write(w io.Writer, t alsval.TabularData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return alserr.IoError{Err: err}
	}
	for _, row := range t.Rows() {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = alslex.Cell(v)
		}
		if err := cw.Write(record); err != nil {
			return alserr.IoError{Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return alserr.IoError{Err: err}
	}
	return nil
}

