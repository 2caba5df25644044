package pattern

import "github.com/vippsas/als/alsop"

// CombinedDetector looks for a periodic column that is not itself a
// single Range or Toggle but whose first period is: for every divisor
// k of len(values) with k >= 2 and n/k >= 2, it checks whether the
// leading k values repeat across the whole slice, then asks a
// sub-detector (Range, Toggle) to describe that leading period, and
// wraps the result as Multiply{inner, n/k}. This is the detector
// behind encodings like "(1>3)*2".
type CombinedDetector struct {
	subDetectors []Detector
}

func NewCombinedDetector(sub ...Detector) CombinedDetector {
	return CombinedDetector{subDetectors: sub}
}

func (d CombinedDetector) Detect(values []string) (Result, bool) {
	n := len(values)
	if n < 4 {
		return Result{}, false
	}

	var best Result
	found := false

	for k := 2; k*2 <= n; k++ {
		if n%k != 0 {
			continue
		}
		reps := n / k
		if reps < 2 {
			continue
		}
		if !fullyTiles(values, k, n) {
			continue
		}

		for _, sub := range d.subDetectors {
			inner, ok := sub.Detect(values[:k])
			if !ok || inner.ConsumedLength != k {
				continue
			}
			innerOpCost := float64(rawCost(values[:k])) / inner.CompressionRatio
			opCost := innerOpCost + 1 + float64(len(itoa(reps)))
			raw := rawCost(values[:n])
			ratio := float64(raw) / opCost
			if ratio <= 1 {
				continue
			}
			candidate := Result{
				Operator:         alsop.NewMultiply(inner.Operator, reps),
				ConsumedLength:   n,
				CompressionRatio: ratio,
				PatternType:      repeatedType(inner.PatternType),
			}
			if !found || candidate.Better(best) {
				best, found = candidate, true
			}
		}
	}

	return best, found
}

// repeatedType maps an inner detector's PatternType to the "wrapped
// in a repeat" variant used for tie-breaking.
func repeatedType(inner Type) Type {
	switch inner {
	case TypeRange:
		return TypeRepeatedRange
	case TypeToggle:
		return TypeRepeatedToggle
	default:
		return inner
	}
}

// fullyTiles reports whether values[i] == values[i%k] for every i in
// [0, n).
func fullyTiles(values []string, k, n int) bool {
	for i := 0; i < n; i++ {
		if values[i] != values[i%k] {
			return false
		}
	}
	return true
}
