// Package alsop implements the ALS operator algebraic type and its
// expansion to row values: one Kind enum plus a struct carrying only
// the fields relevant to that kind, rather than a Go interface
// hierarchy.
package alsop

import (
	"strconv"

	"github.com/vippsas/als/alserr"
)

type Kind int

const (
	Raw Kind = iota
	DictRef
	Range
	Multiply
	Toggle
)

func (k Kind) String() string {
	switch k {
	case Raw:
		return "Raw"
	case DictRef:
		return "DictRef"
	case Range:
		return "Range"
	case Multiply:
		return "Multiply"
	case Toggle:
		return "Toggle"
	default:
		return "Unknown"
	}
}

// Operator is the ALS algebraic operator type: Raw, DictRef, Range,
// Multiply, or Toggle. Only the fields relevant to Kind are populated.
type Operator struct {
	Kind Kind

	// Raw
	Literal string

	// DictRef
	RefIndex uint32

	// Range
	Start, End, Step int64

	// Multiply
	Value *Operator
	Count int

	// Toggle
	Values []string
	// Toggle also uses Count for its emitted length.
}

func NewRaw(literal string) Operator { return Operator{Kind: Raw, Literal: literal} }

func NewDictRef(index uint32) Operator { return Operator{Kind: DictRef, RefIndex: index} }

func NewRange(start, end, step int64) Operator {
	return Operator{Kind: Range, Start: start, End: end, Step: step}
}

func NewMultiply(value Operator, count int) Operator {
	return Operator{Kind: Multiply, Value: &value, Count: count}
}

func NewToggle(values []string, count int) Operator {
	return Operator{Kind: Toggle, Values: values, Count: count}
}

// Depth reports the nesting depth of op: 1 for a leaf operator, and
// 1 + the wrapped operator's depth for Multiply.
func (op Operator) Depth() int {
	if op.Kind != Multiply || op.Value == nil {
		return 1
	}
	return 1 + op.Value.Depth()
}

// Budget tracks the cumulative number of values a single stream's
// Range operators may produce, enforcing the expansion cap across the
// whole stream rather than per-operator.
type Budget struct {
	remaining int
}

func NewBudget(maxRangeExpansion int) *Budget {
	return &Budget{remaining: maxRangeExpansion}
}

// Expand materializes op into its sequence of cell strings, using
// dict for DictRef resolution and budget to cap cumulative Range
// output across the whole stream. maxDepth bounds Multiply nesting.
func Expand(op Operator, dict []string, budget *Budget, maxDepth int) ([]string, error) {
	return expand(op, dict, budget, maxDepth, 1)
}

func expand(op Operator, dict []string, budget *Budget, maxDepth, depth int) ([]string, error) {
	if depth > maxDepth {
		return nil, alserr.AlsSyntaxError{Message: "operator nesting exceeds maximum depth"}
	}
	switch op.Kind {
	case Raw:
		return []string{op.Literal}, nil
	case DictRef:
		if int(op.RefIndex) >= len(dict) {
			return nil, alserr.InvalidDictRef{Index: op.RefIndex, Size: len(dict)}
		}
		return []string{dict[op.RefIndex]}, nil
	case Range:
		return expandRange(op.Start, op.End, op.Step, budget)
	case Multiply:
		if op.Value == nil {
			return nil, alserr.AlsSyntaxError{Message: "multiply operator missing value"}
		}
		inner, err := expand(*op.Value, dict, budget, maxDepth, depth+1)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(inner)*op.Count)
		for i := 0; i < op.Count; i++ {
			out = append(out, inner...)
		}
		return out, nil
	case Toggle:
		if len(op.Values) == 0 {
			return nil, alserr.AlsSyntaxError{Message: "toggle operator has no values"}
		}
		out := make([]string, op.Count)
		k := len(op.Values)
		for i := 0; i < op.Count; i++ {
			out[i] = op.Values[i%k]
		}
		return out, nil
	default:
		return nil, alserr.AlsSyntaxError{Message: "unknown operator kind"}
	}
}

func sign(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// expandRange produces the arithmetic progression start, start+step,
// ... up to and including end in the direction of step, stopping at
// the last value not past end when end is not exactly reached.
func expandRange(start, end, step int64, budget *Budget) ([]string, error) {
	rangeErr := alserr.RangeOverflow{Start: start, End: end, Step: step}
	if step == 0 {
		return nil, rangeErr
	}
	diff := end - start
	if diff != 0 && sign(diff) != sign(step) {
		return nil, rangeErr
	}

	var out []string
	cur := start
	for {
		out = append(out, strconv.FormatInt(cur, 10))
		budget.remaining--
		if budget.remaining < 0 {
			return nil, rangeErr
		}

		next := cur + step
		if step > 0 {
			if next < cur {
				return nil, rangeErr // overflow wraparound
			}
			if next > end {
				break
			}
		} else {
			if next > cur {
				return nil, rangeErr // overflow wraparound
			}
			if next < end {
				break
			}
		}
		cur = next
	}
	return out, nil
}
