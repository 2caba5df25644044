// Package alsval holds the in-memory tabular data model: typed cell
// values, named columns, and the TabularData set that adapters build
// before handing it to the compressor and that the compressor hands
// back after expansion.
package alsval

import (
	"fmt"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a tagged union over integer, float, string, bool and null.
//
// text, when non-empty, is the original textual form the value was read
// from (an adapter-supplied cell). Raw() prefers it over a recomputed
// canonical form so that round-tripping a Raw literal is byte-exact;
// only when a Range subsumes a cell does that original formatting get
// dropped.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	text string
}

func Null() Value           { return Value{kind: KindNull} }
func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }

// WithText attaches the original source text to a value, for round-trip
// fidelity of numeric/bool formatting. It returns a copy.
func (v Value) WithText(text string) Value {
	v.text = text
	return v
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Raw renders the value's logical cell text: the exact string that
// participates in pattern detection and serialization. Null and the
// empty string both come back as "" here; alslex.Cell substitutes the
// \N / \E sentinels where the distinction matters on the wire.
func (v Value) Raw() string {
	if v.text != "" {
		return v.text
	}
	switch v.kind {
	case KindNull:
		return ""
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func (v Value) String() string {
	return fmt.Sprintf("Value{%s:%s}", v.kind, v.Raw())
}
