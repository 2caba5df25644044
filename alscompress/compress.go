// Package alscompress implements the compressor facade: TabularData
// -> AlsDocument, wiring together the dictionary builder and pattern
// engine and applying the CTX fallback guarantee. One exported
// pipeline function calls a fixed sequence of internal stages and
// returns the assembled result, rather than exposing each stage
// separately.
package alscompress

import (
	"context"
	"sync"

	"github.com/vippsas/als/alsconfig"
	"github.com/vippsas/als/alslex"
	"github.com/vippsas/als/alsop"
	"github.com/vippsas/als/alsparse"
	"github.com/vippsas/als/alsval"
	"github.com/vippsas/als/dictionary"
	"github.com/vippsas/als/patternengine"
)

// Compress runs the full encode pipeline for one TabularData:
// dictionary building across all columns, per-column pattern engine,
// document assembly, and the CTX no-enlargement fallback.
func Compress(t alsval.TabularData, cfg alsconfig.CompressorConfig) (*alsparse.AlsDocument, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	dict := dictionary.Build(t, cfg)
	dictIndex := dictionary.Index(dict)
	engine := patternengine.New(cfg, dictIndex)

	doc := &alsparse.AlsDocument{
		Version:         1,
		FormatIndicator: alsparse.FormatALS,
		Schema:          t.ColumnNames(),
		Streams:         make([]alsparse.ColumnStream, len(t.Columns)),
	}
	if len(dict) > 0 {
		doc.Dictionaries = []alsparse.Dictionary{{Name: "default", Entries: dict}}
	}
	for i, col := range t.Columns {
		doc.Streams[i] = engine.Compress(col)
	}

	// An empty document is never re-flavored: there is no payload for
	// CTX to improve on.
	if cfg.EnableCtxFallback && t.RowCount > 0 &&
		alsparse.PayloadSize(doc) >= int(float64(rawSize(t))*0.95) {
		return ctxFallback(t), nil
	}
	return doc, nil
}

// CompressMany fans out Compress over docs using plain goroutines and
// a sync.WaitGroup; documents are independent, so per-document
// compression parallelizes without coordination. ctx cancellation is
// checked before each document starts; an already cancelled context
// short-circuits remaining work.
func CompressMany(ctx context.Context, docs []alsval.TabularData, cfg alsconfig.CompressorConfig) ([]*alsparse.AlsDocument, error) {
	results := make([]*alsparse.AlsDocument, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup
	for i, t := range docs {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}
		wg.Add(1)
		go func(i int, t alsval.TabularData) {
			defer wg.Done()
			results[i], errs[i] = Compress(t, cfg)
		}(i, t)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ctxFallback builds the CTX-flavored document: every cell is a bare
// Raw operator, no dictionary.
func ctxFallback(t alsval.TabularData) *alsparse.AlsDocument {
	doc := &alsparse.AlsDocument{
		Version:         1,
		FormatIndicator: alsparse.FormatCTX,
		Schema:          t.ColumnNames(),
		Streams:         make([]alsparse.ColumnStream, len(t.Columns)),
	}
	for i, col := range t.Columns {
		stream := make(alsparse.ColumnStream, len(col.Values))
		for j, v := range col.Values {
			stream[j] = alsop.NewRaw(alslex.Cell(v))
		}
		doc.Streams[i] = stream
	}
	return doc
}

// rawSize estimates a CSV-shaped encoding of t's cells: cell lengths
// plus one separator between columns and one newline after each row, the
// baseline the no-enlargement fallback compares against. Headers are
// excluded on both sides of the comparison; see alsparse.PayloadSize.
func rawSize(t alsval.TabularData) int {
	if len(t.Columns) == 0 {
		return 0
	}
	total := 0
	for r := 0; r < t.RowCount; r++ {
		for c, col := range t.Columns {
			if c > 0 {
				total++ // column separator
			}
			total += len(alslex.Cell(col.Values[r]))
		}
		total++ // row terminator
	}
	return total
}
