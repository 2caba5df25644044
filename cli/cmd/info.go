package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/vippsas/als/alsop"
	"github.com/vippsas/als/alsparse"
)

var infoInput string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about ALS compressed data",
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoInput, "input", "i", "-", "input file ('-' for stdin)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	input, err := readInput(infoInput)
	if err != nil {
		return err
	}
	if len(input) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: input is empty")
		}
		return nil
	}

	doc, err := alsparse.Parse(string(input), loadedCfg.ParserConfig())
	if err != nil {
		return err
	}
	if !quiet {
		displayDocumentInfo(cmd, doc, len(input))
	}
	return nil
}

// displayDocumentInfo prints document metadata, estimated compression
// ratio, schema, dictionaries, and per-operator-type pattern
// statistics, with a per-column breakdown under --verbose.
func displayDocumentInfo(cmd *cobra.Command, doc *alsparse.AlsDocument, compressedSize int) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "=== ALS Document Information ===")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Format: %s\n", doc.FormatIndicator)
	fmt.Fprintf(out, "Version: %d\n", doc.Version)
	fmt.Fprintf(out, "Columns: %d\n", len(doc.Schema))
	rowCount := streamRowCount(doc)
	fmt.Fprintf(out, "Rows: %d\n", rowCount)
	fmt.Fprintf(out, "Compressed size: %d bytes\n", compressedSize)

	if estimated := estimateUncompressedSize(doc, rowCount); estimated > 0 {
		ratio := float64(estimated) / float64(compressedSize)
		savings := (1 - float64(compressedSize)/float64(estimated)) * 100
		if savings < 0 {
			savings = 0
		}
		fmt.Fprintf(out, "Estimated uncompressed size: %d bytes\n", estimated)
		fmt.Fprintf(out, "Compression ratio: %.2fx\n", ratio)
		fmt.Fprintf(out, "Space savings: %.1f%%\n", savings)
	}

	if len(doc.Schema) > 0 {
		fmt.Fprintln(out, "\n--- Schema ---")
		for i, name := range doc.Schema {
			fmt.Fprintf(out, "  %d: %s\n", i+1, name)
		}
	}

	if len(doc.Dictionaries) > 0 {
		fmt.Fprintln(out, "\n--- Dictionaries ---")
		for _, dict := range doc.Dictionaries {
			fmt.Fprintf(out, "  %s: %d entries\n", dict.Name, len(dict.Entries))
			if verbose {
				for i, entry := range dict.Entries {
					fmt.Fprintf(out, "    [%d]: %s\n", i, truncate(entry, 50))
				}
			}
		}
	}

	stats := patternStats{}
	for _, stream := range doc.Streams {
		for _, op := range stream {
			stats.count(op)
		}
	}
	fmt.Fprintln(out, "\n--- Compression Patterns ---")
	stats.display(out)

	if verbose && len(doc.Streams) > 0 {
		fmt.Fprintln(out, "\n--- Per-Column Details ---")
		for i, name := range doc.Schema {
			stream := doc.Streams[i]
			colStats := patternStats{}
			for _, op := range stream {
				colStats.count(op)
			}
			fmt.Fprintf(out, "  Column %d: %s\n", i+1, name)
			fmt.Fprintf(out, "    Operators: %d\n", len(stream))
			fmt.Fprintln(out, "    Dump:", repr.String(stream))
			colStats.display(out)
		}
	}
	fmt.Fprintln(out)
}

func streamRowCount(doc *alsparse.AlsDocument) int {
	if len(doc.Streams) == 0 {
		return 0
	}
	budget := alsop.NewBudget(1 << 30)
	dict := doc.DefaultDictionary()
	total := 0
	for _, op := range doc.Streams[0] {
		vals, err := alsop.Expand(op, dict, budget, 8)
		if err != nil {
			return 0
		}
		total += len(vals)
	}
	return total
}

// estimateUncompressedSize assumes an average cell width of 11 bytes
// (10 chars + 1 delimiter) plus schema header overhead.
func estimateUncompressedSize(doc *alsparse.AlsDocument, rowCount int) int {
	if rowCount == 0 {
		return 0
	}
	const estimatedValueSize = 11
	schemaSize := 0
	for _, name := range doc.Schema {
		schemaSize += len(name) + 1
	}
	return schemaSize + rowCount*len(doc.Schema)*estimatedValueSize
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

type patternStats struct {
	ranges, multipliers, toggles, dictRefs, rawValues int
}

func (s *patternStats) count(op alsop.Operator) {
	switch op.Kind {
	case alsop.Range:
		s.ranges++
	case alsop.Multiply:
		s.multipliers++
		if op.Value != nil {
			s.count(*op.Value)
		}
	case alsop.Toggle:
		s.toggles++
	case alsop.DictRef:
		s.dictRefs++
	case alsop.Raw:
		s.rawValues++
	}
}

func (s patternStats) display(out interface{ Write([]byte) (int, error) }) {
	if s.ranges > 0 {
		fmt.Fprintf(out, "  Ranges: %d (sequential/arithmetic sequences)\n", s.ranges)
	}
	if s.multipliers > 0 {
		fmt.Fprintf(out, "  Multipliers: %d (repeated values)\n", s.multipliers)
	}
	if s.toggles > 0 {
		fmt.Fprintf(out, "  Toggles: %d (alternating patterns)\n", s.toggles)
	}
	if s.dictRefs > 0 {
		fmt.Fprintf(out, "  Dictionary references: %d\n", s.dictRefs)
	}
	if s.rawValues > 0 {
		fmt.Fprintf(out, "  Raw values: %d (no compression)\n", s.rawValues)
	}
	total := s.ranges + s.multipliers + s.toggles + s.dictRefs + s.rawValues
	if total > 0 {
		compressed := s.ranges + s.multipliers + s.toggles + s.dictRefs
		fmt.Fprintf(out, "  Compression effectiveness: %.1f%% of operators use compression\n",
			float64(compressed)/float64(total)*100)
	}
}
