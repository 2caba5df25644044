package pattern

import (
	"strconv"

	"github.com/vippsas/als/alsop"
)

// RangeDetector finds the longest leading arithmetic progression of
// integer-parsable values.
type RangeDetector struct {
	MinLength int
}

func NewRangeDetector(minLength int) RangeDetector {
	return RangeDetector{MinLength: minLength}
}

func (d RangeDetector) Detect(values []string) (Result, bool) {
	if len(values) < 2 {
		return Result{}, false
	}

	nums := make([]int64, 0, len(values))
	for _, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			break
		}
		nums = append(nums, n)
	}
	if len(nums) < 2 {
		return Result{}, false
	}

	step := nums[1] - nums[0]
	if step == 0 {
		return Result{}, false
	}
	prefixLen := 2
	for i := 2; i < len(nums); i++ {
		if nums[i]-nums[i-1] != step {
			break
		}
		prefixLen++
	}
	if prefixLen < d.MinLength {
		return Result{}, false
	}

	start, end := nums[0], nums[prefixLen-1]
	raw := rawCost(values[:prefixLen])
	opCost := len(strconv.FormatInt(start, 10)) + 1 + len(strconv.FormatInt(end, 10))
	if abs64(step) != 1 {
		opCost += 1 + len(strconv.FormatInt(step, 10))
	}
	ratio := float64(raw) / float64(opCost)
	if ratio <= 1 {
		return Result{}, false
	}

	return Result{
		Operator:         alsop.NewRange(start, end, step),
		ConsumedLength:   prefixLen,
		CompressionRatio: ratio,
		PatternType:      TypeRange,
	}, true
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
