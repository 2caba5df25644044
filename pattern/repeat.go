package pattern

import "github.com/vippsas/als/alsop"

// RepeatDetector finds the longest leading run of identical values,
// the whole-column "all values equal" case.
type RepeatDetector struct{}

func NewRepeatDetector() RepeatDetector { return RepeatDetector{} }

func (d RepeatDetector) Detect(values []string) (Result, bool) {
	if len(values) < 2 {
		return Result{}, false
	}
	first := values[0]
	n := 1
	for n < len(values) && values[n] == first {
		n++
	}
	if n < 2 {
		return Result{}, false
	}

	raw := rawCost(values[:n])
	opCost := len(first) + 1 + len(itoa(n))
	ratio := float64(raw) / float64(opCost)
	if ratio <= 1 {
		return Result{}, false
	}

	return Result{
		Operator:         alsop.NewMultiply(alsop.NewRaw(first), n),
		ConsumedLength:   n,
		CompressionRatio: ratio,
		PatternType:      TypeRepeat,
	}, true
}
