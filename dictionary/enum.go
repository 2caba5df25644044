package dictionary

import (
	"github.com/vippsas/als/alslex"
	"github.com/vippsas/als/alsval"
)

// defaultEnumMaxUnique and defaultEnumMaxRatio bound what counts as
// an enum column: at most 16 distinct values covering at most 25% of
// the row count.
const (
	defaultEnumMaxUnique = 16
	defaultEnumMaxRatio  = 0.25
)

// IsEnumColumn reports whether col qualifies as an enum candidate: few
// enough distinct values, relative to its length, that DictRef
// replacement in place is worth preferring over other detectors.
func IsEnumColumn(col alsval.Column) bool {
	if len(col.Values) == 0 {
		return false
	}
	seen := make(map[string]bool, len(col.Values))
	for _, v := range col.Values {
		seen[alslex.Cell(v)] = true
		if len(seen) > defaultEnumMaxUnique {
			return false
		}
	}
	ratio := float64(len(seen)) / float64(len(col.Values))
	return len(seen) <= defaultEnumMaxUnique && ratio <= defaultEnumMaxRatio
}
