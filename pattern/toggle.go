package pattern

import "github.com/vippsas/als/alsop"

// maxTogglePeriod caps how large a toggle period ToggleDetector will
// search for, keeping detection O(n*maxTogglePeriod) rather than O(n^2).
const maxTogglePeriod = 64

// ToggleDetector finds the smallest period k >= 2 whose repeating
// pattern values[0:k] tiles the longest possible leading run of
// values. A period only counts if the pattern actually repeats, i.e.
// it covers more than k values. Among candidate periods it picks the
// one that covers the most values, breaking ties toward the smaller k.
type ToggleDetector struct {
	MinLength int
}

func NewToggleDetector(minLength int) ToggleDetector {
	return ToggleDetector{MinLength: minLength}
}

func (d ToggleDetector) Detect(values []string) (Result, bool) {
	maxK := len(values)
	if maxK > maxTogglePeriod {
		maxK = maxTogglePeriod
	}

	bestK, bestN := 0, 0
	for k := 2; k <= maxK; k++ {
		n := tileLength(values, k)
		if n > k && n > bestN {
			bestN, bestK = n, k
		}
	}
	if bestK == 0 || bestN < d.MinLength || bestN < bestK {
		return Result{}, false
	}

	pattern := append([]string(nil), values[:bestK]...)
	raw := rawCost(values[:bestN])
	opCost := 0
	for _, p := range pattern {
		opCost += len(p)
	}
	opCost += bestK - 1
	if bestN != bestK {
		opCost += 1 + len(itoa(bestN))
	}
	ratio := float64(raw) / float64(opCost)
	if ratio <= 1 {
		return Result{}, false
	}

	return Result{
		Operator:         alsop.NewToggle(pattern, bestN),
		ConsumedLength:   bestN,
		CompressionRatio: ratio,
		PatternType:      TypeToggle,
	}, true
}

// tileLength returns how many leading elements of values satisfy
// values[i] == values[i%k].
func tileLength(values []string, k int) int {
	n := 0
	for n < len(values) && values[n] == values[n%k] {
		n++
	}
	return n
}
