// Package dictionary implements the cross-column dictionary builder
// and enum detector: a single document-scoped pass that tallies string
// token frequency across every column and greedily selects the entries
// worth replacing with DictRef indices. Frequency maps are flattened
// to insertion order before selection so repeated builds of the same
// input pick identical entries.
package dictionary

import (
	"sort"

	"github.com/vippsas/als/alsconfig"
	"github.com/vippsas/als/alslex"
	"github.com/vippsas/als/alsval"
)

// candidate is one distinct token seen while scanning, with enough
// bookkeeping to score and deterministically order it.
type candidate struct {
	token      string
	count      int
	firstIndex int
}

// Build scans every column of t and greedily selects dictionary
// entries, returning them in pick order
// (the order DictRef indices are assigned).
func Build(t alsval.TabularData, cfg alsconfig.CompressorConfig) []string {
	counts := map[string]int{}
	enumToken := map[string]bool{}
	var order []string

	for _, col := range t.Columns {
		isEnum := IsEnumColumn(col)
		for _, v := range col.Values {
			s := alslex.Cell(v)
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
			if isEnum {
				enumToken[s] = true
			}
		}
	}

	candidates := make([]candidate, 0, len(order))
	for i, tok := range order {
		if len(tok) < cfg.DictMinLength {
			continue
		}
		// Tokens from enum-flagged columns stay candidates even below
		// the occurrence floor; the greedy score still decides whether
		// they make the cut.
		if counts[tok] < cfg.DictMinOccurrences && !enumToken[tok] {
			continue
		}
		candidates = append(candidates, candidate{token: tok, count: counts[tok], firstIndex: i})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := score(candidates[i]), score(candidates[j])
		if si != sj {
			return si > sj
		}
		return candidates[i].firstIndex < candidates[j].firstIndex
	})

	var dict []string
	for _, c := range candidates {
		if len(dict) >= cfg.DictMaxSize {
			break
		}
		if score(c) <= 0 {
			break
		}
		dict = append(dict, c.token)
	}
	return dict
}

// score ranks a candidate by estimated saving:
// (occurrences * (len(token) - 2)) - len(token).
func score(c candidate) int {
	return c.count*(len(c.token)-2) - len(c.token)
}

// Index builds the token -> DictRef-index lookup for a built
// dictionary, the form the pattern engine consults when substituting
// a single cursor value.
func Index(dict []string) map[string]uint32 {
	idx := make(map[string]uint32, len(dict))
	for i, tok := range dict {
		idx[tok] = uint32(i)
	}
	return idx
}
