package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/als/alsop"
)

func TestCombinedDetectorRepeatedRange(t *testing.T) {
	d := NewCombinedDetector(NewRangeDetector(3), NewToggleDetector(4))

	res, ok := d.Detect([]string{"1", "2", "3", "1", "2", "3"})
	require.True(t, ok)
	assert.Equal(t, alsop.NewMultiply(alsop.NewRange(1, 3, 1), 2), res.Operator)
	assert.Equal(t, 6, res.ConsumedLength)
	assert.Equal(t, TypeRepeatedRange, res.PatternType)

	res, ok = d.Detect([]string{"10", "20", "30", "10", "20", "30", "10", "20", "30"})
	require.True(t, ok)
	assert.Equal(t, alsop.NewMultiply(alsop.NewRange(10, 30, 10), 3), res.Operator)
}

func TestCombinedDetectorRepeatedToggle(t *testing.T) {
	d := NewCombinedDetector(NewRangeDetector(3), NewToggleDetector(2))

	// period 4 = a full a/b toggle cycle repeated twice over; the
	// divisor walk finds k=4 and the toggle sub-detector describes it
	res, ok := d.Detect([]string{"on", "off", "on", "off", "on", "off", "on", "off"})
	require.True(t, ok)
	assert.Equal(t, TypeRepeatedToggle, res.PatternType)
	assert.Equal(t, 8, res.ConsumedLength)
}

func TestCombinedDetectorRejects(t *testing.T) {
	d := NewCombinedDetector(NewRangeDetector(3), NewToggleDetector(4))

	_, ok := d.Detect([]string{"1", "2", "3"})
	assert.False(t, ok, "too short to repeat")

	_, ok = d.Detect([]string{"1", "2", "3", "1", "2", "4"})
	assert.False(t, ok, "second period differs")

	_, ok = d.Detect([]string{"1", "2", "3", "4", "5", "6"})
	assert.False(t, ok, "no period divides into repeats")
}
