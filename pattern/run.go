package pattern

import "github.com/vippsas/als/alsop"

// RunDetector finds the longest leading run of at least two identical
// values, for use by the pattern engine's position-by-position scan
// when the whole column is not a single repeat. Its prefix-detection
// logic is the
// same arithmetic as RepeatDetector; the two stay separate types
// because the engine consults them at different points: RepeatDetector
// only as the whole-column shortcut, RunDetector as one of the ordinary
// per-position detectors.
type RunDetector struct{}

func NewRunDetector() RunDetector { return RunDetector{} }

func (d RunDetector) Detect(values []string) (Result, bool) {
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
