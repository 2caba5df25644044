package json

import (
	"bytes"
	"encoding/json"
	"errors"
)

// orderedObject marshals/unmarshals a flat JSON object while
// preserving key encounter order, since Go's map-based json.Unmarshal
// does not. Column order for the JSON adapter depends on this: the
// same input must yield the same schema order every time.
type orderedObject struct {
	keys   []string
	values []any
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *orderedObject) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("json: expected object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}
		o.keys = append(o.keys, key)
		o.values = append(o.values, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return err
	}
	return nil
}
