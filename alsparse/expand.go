package alsparse

import (
	"github.com/vippsas/als/alsconfig"
	"github.com/vippsas/als/alserr"
	"github.com/vippsas/als/alslex"
	"github.com/vippsas/als/alsop"
	"github.com/vippsas/als/alsval"
)

// Expand materializes the document back into TabularData. Operator
// expansion yields plain cell strings; alslex.CellValue then turns the
// \N/\E sentinels back into null and the empty string, so adapters
// receive the same Value model the compressor consumed. Every other
// cell is a string carrying its own decoded text.
func (d *AlsDocument) Expand(cfg alsconfig.ParserConfig) (alsval.TabularData, error) {
	dict := d.DefaultDictionary()
	columns := make([]alsval.Column, len(d.Schema))
	rowCount := -1

	for i, stream := range d.Streams {
		budget := alsop.NewBudget(cfg.MaxRangeExpansion)
		var cells []string
		for _, op := range stream {
			vals, err := alsop.Expand(op, dict, budget, cfg.MaxNestingDepth)
			if err != nil {
				return alsval.TabularData{}, err
			}
			cells = append(cells, vals...)
		}

		if rowCount == -1 {
			rowCount = len(cells)
		} else if len(cells) != rowCount {
			return alsval.TabularData{}, alserr.ColumnMismatch{Schema: rowCount, Data: len(cells)}
		}

		values := make([]alsval.Value, len(cells))
		for j, c := range cells {
			values[j] = alslex.CellValue(c)
		}
		columns[i] = alsval.NewColumn(d.Schema[i], values)
	}

	if rowCount == -1 {
		rowCount = 0
	}
	return alsval.TabularData{
		Columns:       columns,
		RowCount:      rowCount,
		SourceDialect: d.FormatIndicator.String(),
	}, nil
}
