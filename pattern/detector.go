// Package pattern implements the per-column pattern detectors behind
// ALS encoding: Range, Repeat, Run, Toggle, and Combined. Each
// detector is a pure function from a value slice to an optional
// operator plus its estimated compression ratio and consumed prefix
// length.
package pattern

import "github.com/vippsas/als/alsop"

// Type tags which detector produced a Result, used for tie-breaking
// when two results have compression ratios within 5% of each other.
type Type int

const (
	TypeRange Type = iota
	TypeRepeatedRange
	TypeToggle
	TypeRepeatedToggle
	TypeRepeat
	TypeRaw
)

// priority orders Types for tie-breaking: lower value wins, in the
// order Range > RepeatedRange > Toggle > Repeat > Raw.
// RepeatedToggle sits beside Toggle since it is also combined's
// alternating-pattern result.
func (t Type) priority() int {
	switch t {
	case TypeRange:
		return 0
	case TypeRepeatedRange:
		return 1
	case TypeToggle:
		return 2
	case TypeRepeatedToggle:
		return 2
	case TypeRepeat:
		return 3
	default:
		return 4
	}
}

// Result is what a Detector returns for a value slice it can encode
// beneficially. ConsumedLength is how many leading values of the
// input slice the Operator accounts for, letting the pattern engine
// use detectors for prefix matching as well as whole-column matching.
type Result struct {
	Operator         alsop.Operator
	ConsumedLength   int
	CompressionRatio float64
	PatternType      Type
}

// Better reports whether r should be preferred over other: the
// higher (length*ratio) product wins,
// and when two results are within 5% of each other on that score, the
// PatternType priority order decides.
func (r Result) Better(other Result) bool {
	score := float64(r.ConsumedLength) * r.CompressionRatio
	otherScore := float64(other.ConsumedLength) * other.CompressionRatio
	if otherScore == 0 {
		return true
	}
	ratio := score / otherScore
	if ratio > 1.05 {
		return true
	}
	if ratio < 0.95 {
		return false
	}
	return r.PatternType.priority() < other.PatternType.priority()
}

// Detector is the shared single-method contract every pattern
// detector implements: given the cursor-to-end slice of a column's
// values, find the
// longest beneficial prefix match, or false if none exists.
type Detector interface {
	Detect(values []string) (Result, bool)
}

// rawCost is the raw (uncompressed) encoded length of the given
// values: the sum of their lengths plus n-1 separators.
func rawCost(values []string) int {
	total := 0
	for _, v := range values {
		total += len(v)
	}
	if len(values) > 0 {
		total += len(values) - 1
	}
	return total
}
