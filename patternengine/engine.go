// Package patternengine implements the per-column pattern engine: it
// orchestrates the pattern detectors, picking a minimal-length
// operator sequence whose expansion reproduces a column's values
// exactly.
package patternengine

import (
	"github.com/vippsas/als/alsconfig"
	"github.com/vippsas/als/alslex"
	"github.com/vippsas/als/alsop"
	"github.com/vippsas/als/alsval"
	"github.com/vippsas/als/pattern"
)

// Engine holds a fixed ordered list of detector instances plus the
// document-scoped dictionary index built once per compression.
type Engine struct {
	cfg alsconfig.CompressorConfig

	wholeColumn []pattern.Detector
	scanning    []pattern.Detector

	dictIndex map[string]uint32
}

// New builds an Engine configured per cfg, with dictIndex (built by
// the dictionary package, possibly nil/empty) as the single-value
// substitution fallback.
func New(cfg alsconfig.CompressorConfig, dictIndex map[string]uint32) *Engine {
	rangeDetector := pattern.NewRangeDetector(cfg.MinRangeLength)
	toggleDetector := pattern.NewToggleDetector(cfg.MinToggleLength)
	combined := pattern.NewCombinedDetector(rangeDetector, toggleDetector)

	return &Engine{
		cfg: cfg,
		wholeColumn: []pattern.Detector{
			rangeDetector,
			pattern.NewRepeatDetector(),
			toggleDetector,
			combined,
		},
		scanning: []pattern.Detector{
			rangeDetector,
			toggleDetector,
			pattern.NewRunDetector(),
			combined,
		},
		dictIndex: dictIndex,
	}
}

// Compress produces the ColumnStream for one column by a
// coverage-first greedy: a whole-column shortcut first, then a
// left-to-right scan picking the best detector at each cursor, falling
// back to dictionary substitution or a bare Raw.
func (e *Engine) Compress(col alsval.Column) []alsop.Operator {
	values := make([]string, len(col.Values))
	for i, v := range col.Values {
		values[i] = alslex.Cell(v)
	}
	if len(values) == 0 {
		return nil
	}

	if op, ok := e.wholeColumnMatch(values); ok {
		return []alsop.Operator{op}
	}

	var ops []alsop.Operator
	cursor := 0
	for cursor < len(values) {
		op, consumed := e.bestAt(values[cursor:])
		ops = append(ops, op)
		cursor += consumed
	}
	return ops
}

// wholeColumnMatch checks whether the entire column is covered by a
// single beneficial whole-column detector.
func (e *Engine) wholeColumnMatch(values []string) (alsop.Operator, bool) {
	var best pattern.Result
	found := false
	for _, d := range e.wholeColumn {
		res, ok := d.Detect(values)
		if !ok || res.ConsumedLength != len(values) || res.CompressionRatio < e.cfg.PatternRatioThreshold {
			continue
		}
		if !found || res.Better(best) {
			best, found = res, true
		}
	}
	return best.Operator, found
}

// bestAt picks the single operator covering the longest,
// highest-value prefix of values starting at the cursor, or falls back
// to dictionary substitution / a bare Raw for one cell.
func (e *Engine) bestAt(values []string) (alsop.Operator, int) {
	var best pattern.Result
	found := false
	for _, d := range e.scanning {
		res, ok := d.Detect(values)
		if !ok || res.CompressionRatio < e.cfg.PatternRatioThreshold {
			continue
		}
		if !found || res.Better(best) {
			best, found = res, true
		}
	}
	if found {
		return best.Operator, best.ConsumedLength
	}

	if idx, ok := e.dictIndex[values[0]]; ok {
		return alsop.NewDictRef(idx), 1
	}
	return alsop.NewRaw(values[0]), 1
}
