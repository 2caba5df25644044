package dictionary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/als/alsconfig"
	"github.com/vippsas/als/alsval"
)

func column(name string, cells ...string) alsval.Column {
	values := make([]alsval.Value, len(cells))
	for i, c := range cells {
		values[i] = alsval.String(c).WithText(c)
	}
	return alsval.NewColumn(name, values)
}

func tabular(t *testing.T, cols ...alsval.Column) alsval.TabularData {
	t.Helper()
	tab, err := alsval.New(cols)
	require.NoError(t, err)
	return tab
}

func TestBuildSelectsFrequentTokens(t *testing.T) {
	tab := tabular(t, column("status",
		"active", "active", "active", "inactive", "inactive", "inactive"))
	dict := Build(tab, alsconfig.DefaultCompressorConfig())
	assert.ElementsMatch(t, []string{"active", "inactive"}, dict)
	// higher score first: inactive saves more per occurrence
	assert.Equal(t, []string{"inactive", "active"}, dict)
}

func TestBuildFilters(t *testing.T) {
	cfg := alsconfig.DefaultCompressorConfig()

	// too short, regardless of frequency
	tab := tabular(t, column("c", "ab", "ab", "ab", "ab"))
	assert.Empty(t, Build(tab, cfg))

	// too rare
	tab = tabular(t, column("c", "seldom", "seldom", "x", "y", "z", "w"))
	assert.Empty(t, Build(tab, cfg))
}

func TestBuildCrossColumn(t *testing.T) {
	// occurrences accumulate across columns
	tab := tabular(t,
		column("a", "shared", "x1", "y1"),
		column("b", "shared", "x2", "y2"),
		column("c", "shared", "x3", "y3"),
	)
	dict := Build(tab, alsconfig.DefaultCompressorConfig())
	assert.Equal(t, []string{"shared"}, dict)
}

func TestBuildMaxSize(t *testing.T) {
	cfg := alsconfig.DefaultCompressorConfig()
	cfg.DictMaxSize = 2

	var cells []string
	for _, tok := range []string{"alpha", "bravo", "charlie", "delta"} {
		for i := 0; i < 5; i++ {
			cells = append(cells, tok)
		}
	}
	dict := Build(tabular(t, column("c", cells...)), cfg)
	assert.Len(t, dict, 2)
}

func TestBuildDeterministic(t *testing.T) {
	// equal scores fall back to first-encounter order, so repeated
	// builds agree byte for byte
	tab := tabular(t, column("c",
		"aaaa", "bbbb", "cccc", "aaaa", "bbbb", "cccc", "aaaa", "bbbb", "cccc"))
	first := Build(tab, alsconfig.DefaultCompressorConfig())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Build(tab, alsconfig.DefaultCompressorConfig()))
	}
	assert.Equal(t, []string{"aaaa", "bbbb", "cccc"}, first)
}

func TestBuildEnumColumnBypassesOccurrenceFloor(t *testing.T) {
	// 12 rows, 3 distinct values: an enum column. "tuesday" and
	// "wedsday" occur only twice each, below dict_min_occurrences,
	// but enum membership keeps them candidates and their score is
	// still positive.
	cells := []string{
		"monday", "monday", "monday", "monday", "monday", "monday",
		"monday", "monday", "tuesday", "tuesday", "wedsday", "wedsday",
	}
	dict := Build(tabular(t, column("day", cells...)), alsconfig.DefaultCompressorConfig())
	assert.ElementsMatch(t, []string{"monday", "tuesday", "wedsday"}, dict)
}

func TestBuildNonEnumStillFiltered(t *testing.T) {
	// many distinct values: not an enum column, so the occurrence
	// floor applies unchanged
	var cells []string
	for i := 0; i < 20; i++ {
		cells = append(cells, fmt.Sprintf("value%02d", i))
	}
	dict := Build(tabular(t, column("c", cells...)), alsconfig.DefaultCompressorConfig())
	assert.Empty(t, dict)
}

func TestIndex(t *testing.T) {
	idx := Index([]string{"red", "green"})
	assert.Equal(t, map[string]uint32{"red": 0, "green": 1}, idx)
	assert.Empty(t, Index(nil))
}

func TestIsEnumColumn(t *testing.T) {
	assert.True(t, IsEnumColumn(column("c",
		"a", "a", "a", "a", "b", "b", "b", "b")))

	// unique ratio above 25%
	assert.False(t, IsEnumColumn(column("c", "a", "b", "c", "d")))

	// empty column
	assert.False(t, IsEnumColumn(alsval.NewColumn("c", nil)))
}
