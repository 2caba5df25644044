package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/als/alserr"
	"github.com/vippsas/als/alsval"
)

func TestRead(t *testing.T) {
	tab, err := Read(strings.NewReader("id,name\n1,Alice\n2,Bob\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, tab.RowCount)
	assert.Equal(t, []string{"id", "name"}, tab.ColumnNames())
	assert.Equal(t, alsval.TypeInt, tab.Columns[0].InferredType)
	assert.Equal(t, alsval.TypeString, tab.Columns[1].InferredType)

	i, ok := tab.Columns[0].Values[0].Int()
	assert.True(t, ok)
	assert.Equal(t, int64(1), i)
}

func TestReadTypeInference(t *testing.T) {
	tab, err := Read(strings.NewReader("v\n1\n2.5\nhello\n"))
	require.NoError(t, err)

	assert.Equal(t, alsval.KindInt, tab.Columns[0].Values[0].Kind())
	assert.Equal(t, alsval.KindFloat, tab.Columns[0].Values[1].Kind())
	assert.Equal(t, alsval.KindString, tab.Columns[0].Values[2].Kind())
	assert.Equal(t, alsval.TypeMixed, tab.Columns[0].InferredType)
}

func TestReadSentinels(t *testing.T) {
	tab, err := Read(strings.NewReader("a\n\\N\n\\E\nx\n"))
	require.NoError(t, err)

	assert.True(t, tab.Columns[0].Values[0].IsNull())
	s, ok := tab.Columns[0].Values[1].Str()
	assert.True(t, ok)
	assert.Equal(t, "", s)
}

func TestReadSanitizesHeaders(t *testing.T) {
	tab, err := Read(strings.NewReader("First Name,order-date\na,b\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"First_Name", "order_date"}, tab.ColumnNames())
}

func TestReadPreservesFormatting(t *testing.T) {
	tab, err := Read(strings.NewReader("code\n007\n"))
	require.NoError(t, err)
	assert.Equal(t, "007", tab.Columns[0].Values[0].Raw())
}

func TestReadEmpty(t *testing.T) {
	tab, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, tab.Empty())
}

func TestReadParseError(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n\"unterminated\n"))
	var csvErr alserr.CsvParseError
	require.ErrorAs(t, err, &csvErr)
	assert.Greater(t, csvErr.Line, 0)
}

func TestWriteRoundTrip(t *testing.T) {
	input := "id,name,note\n1,Alice,\\N\n2,Bob,\\E\n3,Charlie,hi\n"
	tab, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tab))
	assert.Equal(t, input, buf.String())
}
