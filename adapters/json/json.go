// Package json is a JSON ingestion/emission adapter: it reads a JSON
// array of flat objects into alsval.TabularData, and renders
// TabularData back the same way.
package json

import (
	"encoding/json"
	"io"

	"github.com/vippsas/als/alserr"
	"github.com/vippsas/als/alsval"
	"github.com/vippsas/als/alsxid"
)

// Read parses a JSON array of objects from r into TabularData. The
// column set and order is taken from the first object's JSON key
// order (json.Decoder preserves encounter order per-object via
// json.RawMessage + ordered re-decode below, matching the "schema
// derives from encounter order" rule CSV's header row gives for free).
// Missing keys in later rows are filled with Null.
func Read(r io.Reader) (alsval.TabularData, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return alsval.TabularData{}, alserr.JsonParseError{Err: err}
	}
	if len(raw) == 0 {
		return alsval.TabularData{}, nil
	}

	var names []string
	seen := map[string]bool{}
	rows := make([]map[string]any, len(raw))
	for i, r := range raw {
		var obj orderedObject
		if err := json.Unmarshal(r, &obj); err != nil {
			return alsval.TabularData{}, alserr.JsonParseError{Err: err}
		}
		row := make(map[string]any, len(obj.keys))
		for j, k := range obj.keys {
			k = alsxid.Sanitize(k)
			row[k] = obj.values[j]
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
		rows[i] = row
	}

	cols := make([]alsval.Column, len(names))
	for c, name := range names {
		values := make([]alsval.Value, len(rows))
		for r, row := range rows {
			v, ok := row[name]
			if !ok {
				values[r] = alsval.Null()
				continue
			}
			values[r] = jsonToValue(v)
		}
		cols[c] = alsval.NewColumn(name, values)
	}
	return alsval.New(cols)
}

func jsonToValue(v any) alsval.Value {
	switch x := v.(type) {
	case nil:
		return alsval.Null()
	case bool:
		return alsval.Bool(x)
	case float64:
		if x == float64(int64(x)) {
			return alsval.Int(int64(x))
		}
		return alsval.Float(x)
	case string:
		return alsval.String(x).WithText(x)
	default:
		return alsval.Null()
	}
}

// Write renders t as a JSON array of flat objects, one per row, column
// order preserved via an ordered marshal.
func Write(w io.Writer, t alsval.TabularData) error {
	names := t.ColumnNames()
	rows := t.Rows()

	out := make([]json.RawMessage, len(rows))
	for r, row := range rows {
		obj := orderedObject{keys: names}
		obj.values = make([]any, len(row))
		for c, v := range row {
			obj.values[c] = valueToJSON(v)
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return alserr.JsonParseError{Err: err}
		}
		out[r] = b
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return alserr.JsonParseError{Err: err}
	}
	return nil
}

func valueToJSON(v alsval.Value) any {
	switch v.Kind() {
	case alsval.KindNull:
		return nil
	case alsval.KindInt:
		i, _ := v.Int()
		return i
	case alsval.KindFloat:
		f, _ := v.Float()
		return f
	case alsval.KindBool:
		b, _ := v.Bool()
		return b
	default:
		s, _ := v.Str()
		return s
	}
}
