package alsop

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/als/alserr"
)

func expandOne(t *testing.T, op Operator, dict []string) []string {
	t.Helper()
	out, err := Expand(op, dict, NewBudget(10000), 4)
	require.NoError(t, err)
	return out
}

func TestExpandRaw(t *testing.T) {
	assert.Equal(t, []string{"hello"}, expandOne(t, NewRaw("hello"), nil))
}

func TestExpandDictRef(t *testing.T) {
	dict := []string{"red", "green", "blue"}
	assert.Equal(t, []string{"green"}, expandOne(t, NewDictRef(1), dict))

	_, err := Expand(NewDictRef(3), dict, NewBudget(10000), 4)
	var refErr alserr.InvalidDictRef
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, uint32(3), refErr.Index)
	assert.Equal(t, 3, refErr.Size)

	// no dictionary at all
	_, err = Expand(NewDictRef(0), nil, NewBudget(10000), 4)
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, 0, refErr.Size)
}

func TestExpandRange(t *testing.T) {
	test := func(start, end, step int64, expected ...string) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, expected, expandOne(t, NewRange(start, end, step), nil))
		}
	}

	t.Run("", test(1, 5, 1, "1", "2", "3", "4", "5"))
	t.Run("", test(5, 1, -1, "5", "4", "3", "2", "1"))
	t.Run("", test(10, 50, 10, "10", "20", "30", "40", "50"))
	t.Run("", test(-2, 2, 1, "-2", "-1", "0", "1", "2"))
	t.Run("", test(3, 3, 1, "3"))
	// end not on the step grid: stop at the last value not past end
	t.Run("", test(1, 6, 2, "1", "3", "5"))
	t.Run("", test(6, 1, -2, "6", "4", "2"))
}

func TestExpandRangeErrors(t *testing.T) {
	testErr := func(start, end, step int64) func(*testing.T) {
		return func(t *testing.T) {
			_, err := Expand(NewRange(start, end, step), nil, NewBudget(10000), 4)
			var rangeErr alserr.RangeOverflow
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, start, rangeErr.Start)
		}
	}

	t.Run("zero step", testErr(1, 5, 0))
	t.Run("sign mismatch up", testErr(5, 1, 1))
	t.Run("sign mismatch down", testErr(1, 5, -1))
}

func TestExpandRangeBudget(t *testing.T) {
	_, err := Expand(NewRange(1, 100, 1), nil, NewBudget(10), 4)
	var rangeErr alserr.RangeOverflow
	require.ErrorAs(t, err, &rangeErr)

	// budget is cumulative across operators sharing it
	budget := NewBudget(8)
	_, err = Expand(NewRange(1, 5, 1), nil, budget, 4)
	require.NoError(t, err)
	_, err = Expand(NewRange(1, 5, 1), nil, budget, 4)
	require.ErrorAs(t, err, &rangeErr)
}

func TestRangeFaithfulness(t *testing.T) {
	// expansion is strictly monotonic in the direction of step and
	// contains no value beyond end
	for _, op := range []Operator{
		NewRange(1, 17, 3),
		NewRange(20, -5, -4),
		NewRange(-100, 100, 7),
	} {
		out := expandOne(t, op, nil)
		require.NotEmpty(t, out)
		prev, err := strconv.ParseInt(out[0], 10, 64)
		require.NoError(t, err)
		assert.Equal(t, op.Start, prev)
		for _, s := range out[1:] {
			n, err := strconv.ParseInt(s, 10, 64)
			require.NoError(t, err)
			if op.Step > 0 {
				assert.Greater(t, n, prev)
				assert.LessOrEqual(t, n, op.End)
			} else {
				assert.Less(t, n, prev)
				assert.GreaterOrEqual(t, n, op.End)
			}
			prev = n
		}
	}
}

func TestExpandMultiply(t *testing.T) {
	assert.Equal(t, []string{"1", "1", "1", "1"},
		expandOne(t, NewMultiply(NewRaw("1"), 4), nil))

	assert.Equal(t, []string{"1", "2", "3", "1", "2", "3"},
		expandOne(t, NewMultiply(NewRange(1, 3, 1), 2), nil))

	assert.Empty(t, expandOne(t, NewMultiply(NewRaw("x"), 0), nil))
}

func TestExpandToggle(t *testing.T) {
	assert.Equal(t, []string{"T", "F", "T", "F", "T", "F"},
		expandOne(t, NewToggle([]string{"T", "F"}, 6), nil))

	// count not a multiple of the period
	assert.Equal(t, []string{"a", "b", "c", "a", "b"},
		expandOne(t, NewToggle([]string{"a", "b", "c"}, 5), nil))
}

func TestToggleCyclicity(t *testing.T) {
	values := []string{"x", "y", "z"}
	out := expandOne(t, NewToggle(values, 17), nil)
	require.Len(t, out, 17)
	for i, s := range out {
		assert.Equal(t, values[i%len(values)], s)
	}
}

func TestExpandNestingDepth(t *testing.T) {
	// depth 3: Multiply(Multiply(Raw))
	nested := NewMultiply(NewMultiply(NewRaw("x"), 2), 2)
	assert.Equal(t, 3, nested.Depth())

	out, err := Expand(nested, nil, NewBudget(10000), 4)
	require.NoError(t, err)
	assert.Len(t, out, 4)

	_, err = Expand(nested, nil, NewBudget(10000), 2)
	var syntaxErr alserr.AlsSyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}
