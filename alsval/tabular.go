package alsval

import "fmt"

// TabularData is a set of equally-long, uniquely-named Columns plus the
// shared RowCount. SourceDialect is an optional diagnostic tag:
// AlsDocument.Expand sets it to the document's format indicator ("ALS"
// or "CTX"), and the CSV/JSON/SQL adapters leave it empty. It has no
// bearing on core compression semantics.
type TabularData struct {
	Columns       []Column
	RowCount      int
	SourceDialect string
}

// ShapeError reports a TabularData that violates the equal-column-length
// or unique-name invariant.
type ShapeError struct {
	Message string
}

func (e ShapeError) Error() string { return e.Message }

// New builds a TabularData from columns, validating the equal-length
// and unique-name invariants.
func New(columns []Column) (TabularData, error) {
	t := TabularData{Columns: columns}
	if len(columns) > 0 {
		t.RowCount = len(columns[0].Values)
	}
	if err := t.Validate(); err != nil {
		return TabularData{}, err
	}
	return t, nil
}

// FromRows builds column-major TabularData from row-major input, the
// shape adapters (CSV/JSON/SQL) naturally produce.
func FromRows(names []string, rows [][]Value) (TabularData, error) {
	cols := make([]Column, len(names))
	for i, name := range names {
		values := make([]Value, len(rows))
		for r, row := range rows {
			if i < len(row) {
				values[r] = row[i]
			} else {
				values[r] = Null()
			}
		}
		cols[i] = NewColumn(name, values)
	}
	return New(cols)
}

// Validate checks the shape invariants: unique column names and
// every column sharing the document's RowCount.
func (t TabularData) Validate() error {
	seen := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if seen[c.Name] {
			return ShapeError{Message: fmt.Sprintf("duplicate column name %q", c.Name)}
		}
		seen[c.Name] = true
		if len(c.Values) != t.RowCount {
			return ShapeError{Message: fmt.Sprintf(
				"column %q has %d values, expected row_count %d", c.Name, len(c.Values), t.RowCount)}
		}
	}
	return nil
}

// ColumnNames returns the schema in column order.
func (t TabularData) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Rows transposes the column-major storage into row-major values, the
// shape row-oriented adapters (CSV/JSON writers) want to emit.
func (t TabularData) Rows() [][]Value {
	rows := make([][]Value, t.RowCount)
	for r := range rows {
		row := make([]Value, len(t.Columns))
		for c, col := range t.Columns {
			row[c] = col.Values[r]
		}
		rows[r] = row
	}
	return rows
}

// Empty reports whether the document has no columns at all.
func (t TabularData) Empty() bool {
	return len(t.Columns) == 0
}
