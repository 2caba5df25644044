// Package alstest is test-support infrastructure for round-trip and
// property tests across the module: a small random TabularData
// generator.
package alstest

import (
	"fmt"
	"math/rand"

	"github.com/vippsas/als/alsval"
)

// Shapes a generated column can take, biased toward the patterns the
// pattern engine is meant to detect so generated fixtures exercise
// every detector, not just raw literals.
const (
	ShapeRange = iota
	ShapeRepeat
	ShapeToggle
	ShapeRandomInt
	ShapeRandomString
	shapeCount
)

// GenerateTabularData builds a random TabularData with the given row
// count and column count, using rng for all randomness; alstest never
// seeds a global source, so callers control determinism.
func GenerateTabularData(rng *rand.Rand, rowCount, colCount int) alsval.TabularData {
	cols := make([]alsval.Column, colCount)
	for c := 0; c < colCount; c++ {
		name := fmt.Sprintf("col%d", c)
		shape := rng.Intn(shapeCount)
		cols[c] = alsval.NewColumn(name, generateColumnValues(rng, shape, rowCount))
	}
	t, err := alsval.New(cols)
	if err != nil {
		panic(err) // generator invariants guarantee equal-length columns
	}
	return t
}

func generateColumnValues(rng *rand.Rand, shape, n int) []alsval.Value {
	values := make([]alsval.Value, n)
	switch shape {
	case ShapeRange:
		start := int64(rng.Intn(1000))
		step := int64(rng.Intn(5) + 1)
		for i := 0; i < n; i++ {
			values[i] = alsval.Int(start + int64(i)*step)
		}
	case ShapeRepeat:
		v := randomWord(rng)
		for i := 0; i < n; i++ {
			values[i] = alsval.String(v).WithText(v)
		}
	case ShapeToggle:
		k := rng.Intn(3) + 2
		pool := make([]string, k)
		for i := range pool {
			pool[i] = randomWord(rng)
		}
		for i := 0; i < n; i++ {
			s := pool[i%k]
			values[i] = alsval.String(s).WithText(s)
		}
	case ShapeRandomInt:
		for i := 0; i < n; i++ {
			values[i] = alsval.Int(int64(rng.Intn(10000)))
		}
	default:
		for i := 0; i < n; i++ {
			if rng.Intn(20) == 0 {
				values[i] = alsval.Null()
				continue
			}
			s := randomWord(rng)
			values[i] = alsval.String(s).WithText(s)
		}
	}
	return values
}

var syllables = []string{"al", "ba", "co", "de", "el", "fo", "gi", "ha", "ix", "jo"}

func randomWord(rng *rand.Rand) string {
	n := rng.Intn(3) + 1
	s := ""
	for i := 0; i < n; i++ {
		s += syllables[rng.Intn(len(syllables))]
	}
	return s
}
