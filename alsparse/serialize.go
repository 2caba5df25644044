package alsparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vippsas/als/alslex"
	"github.com/vippsas/als/alsop"
)

// Serialize renders a document to ALS text: a version
// line, dictionaries in insertion order, the schema on one line, then
// pipe-separated streams on a single logical line.
func Serialize(doc *AlsDocument) string {
	var b strings.Builder

	if doc.FormatIndicator == FormatCTX {
		b.WriteString("!ctx\n")
	} else {
		fmt.Fprintf(&b, "!v%d\n", doc.Version)
	}

	writeDictionaries(&b, doc)

	for i, name := range doc.Schema {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("#")
		b.WriteString(name)
	}
	b.WriteString("\n")

	writeStreams(&b, doc)

	return b.String()
}

// PayloadSize is the serialized length of the document's dictionaries
// and streams alone, excluding the version and schema header lines.
// The compressor's CTX-fallback decision compares this against the raw
// cell size: the header must be carried by any encoding of the same
// table, so only the payload can enlarge relative to raw data.
func PayloadSize(doc *AlsDocument) int {
	var b strings.Builder
	writeDictionaries(&b, doc)
	writeStreams(&b, doc)
	return b.Len()
}

func writeDictionaries(b *strings.Builder, doc *AlsDocument) {
	for _, dict := range doc.Dictionaries {
		b.WriteString("$")
		b.WriteString(dict.Name)
		b.WriteString(":")
		for i, v := range dict.Entries {
			if i > 0 {
				b.WriteString("|")
			}
			b.WriteString(alslex.Escape(v))
		}
		b.WriteString("\n")
	}
}

func writeStreams(b *strings.Builder, doc *AlsDocument) {
	for i, stream := range doc.Streams {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString(serializeStream(stream))
	}
}

func serializeStream(stream ColumnStream) string {
	parts := make([]string, len(stream))
	for i, op := range stream {
		parts[i] = renderOperator(op)
	}
	return strings.Join(parts, " ")
}

// renderOperator renders a single operator to ALS text. Multiply adds
// parentheses around its inner operator whenever that operator is a
// Range, Toggle, or Multiply, the canonical "(1>3)*2" form.
func renderOperator(op alsop.Operator) string {
	switch op.Kind {
	case alsop.Raw:
		return alslex.Escape(op.Literal)
	case alsop.DictRef:
		return "_" + strconv.FormatUint(uint64(op.RefIndex), 10)
	case alsop.Range:
		if op.Step == impliedStep(op.Start, op.End) {
			return fmt.Sprintf("%d>%d", op.Start, op.End)
		}
		return fmt.Sprintf("%d>%d:%d", op.Start, op.End, op.Step)
	case alsop.Multiply:
		inner := ""
		if op.Value != nil {
			inner = renderOperator(*op.Value)
			if needsParens(op.Value.Kind) {
				inner = "(" + inner + ")"
			}
		}
		return fmt.Sprintf("%s*%d", inner, op.Count)
	case alsop.Toggle:
		parts := make([]string, len(op.Values))
		for i, v := range op.Values {
			parts[i] = alslex.Escape(v)
		}
		s := strings.Join(parts, "~")
		if op.Count != len(op.Values) {
			s += fmt.Sprintf("*%d", op.Count)
		}
		return s
	default:
		return ""
	}
}

func needsParens(k alsop.Kind) bool {
	return k == alsop.Range || k == alsop.Toggle || k == alsop.Multiply
}

func impliedStep(start, end int64) int64 {
	switch {
	case end > start:
		return 1
	case end < start:
		return -1
	default:
		return 1
	}
}
