package alsval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTabularData(t *testing.T) {
	tab, err := New([]Column{
		NewColumn("a", []Value{Int(1), Int(2)}),
		NewColumn("b", []Value{String("x"), String("y")}),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tab.RowCount)
	assert.Equal(t, []string{"a", "b"}, tab.ColumnNames())
	assert.False(t, tab.Empty())
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New([]Column{
		NewColumn("a", []Value{Int(1), Int(2)}),
		NewColumn("b", []Value{String("x")}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"b"`)
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]Column{
		NewColumn("a", []Value{Int(1)}),
		NewColumn("a", []Value{Int(2)}),
	})
	require.Error(t, err)
}

func TestFromRows(t *testing.T) {
	tab, err := FromRows([]string{"a", "b"}, [][]Value{
		{Int(1), String("x")},
		{Int(2), String("y")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tab.RowCount)
	assert.Equal(t, TypeInt, tab.Columns[0].InferredType)
	assert.Equal(t, TypeString, tab.Columns[1].InferredType)

	// short rows are padded with nulls
	tab, err = FromRows([]string{"a", "b"}, [][]Value{{Int(1)}})
	require.NoError(t, err)
	assert.True(t, tab.Columns[1].Values[0].IsNull())
}

func TestRowsTransposes(t *testing.T) {
	tab, err := New([]Column{
		NewColumn("a", []Value{Int(1), Int(2)}),
		NewColumn("b", []Value{String("x"), String("y")}),
	})
	require.NoError(t, err)

	rows := tab.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []Value{Int(1), String("x")}, rows[0])
	assert.Equal(t, []Value{Int(2), String("y")}, rows[1])
}

func TestEmptyTabularData(t *testing.T) {
	tab, err := New(nil)
	require.NoError(t, err)
	assert.True(t, tab.Empty())
	assert.Equal(t, 0, tab.RowCount)
	assert.Empty(t, tab.Rows())
}
