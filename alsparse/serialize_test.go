package alsparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/als/alsconfig"
	"github.com/vippsas/als/alsop"
)

func TestSerializeDocumentLayout(t *testing.T) {
	doc := &AlsDocument{
		Version:         1,
		FormatIndicator: FormatALS,
		Dictionaries:    []Dictionary{{Name: "default", Entries: []string{"red", "green", "blue"}}},
		Schema:          []string{"id", "color"},
		Streams: []ColumnStream{
			{alsop.NewRange(1, 3, 1)},
			{alsop.NewDictRef(0), alsop.NewDictRef(1), alsop.NewDictRef(2)},
		},
	}
	assert.Equal(t, "!v1\n$default:red|green|blue\n#id #color\n1>3|_0 _1 _2", Serialize(doc))
}

func TestSerializeCtxDocument(t *testing.T) {
	doc := &AlsDocument{
		Version:         1,
		FormatIndicator: FormatCTX,
		Schema:          []string{"a"},
		Streams:         []ColumnStream{{alsop.NewRaw("x"), alsop.NewRaw("y")}},
	}
	assert.Equal(t, "!ctx\n#a\nx y", Serialize(doc))
}

func TestRenderOperators(t *testing.T) {
	test := func(op alsop.Operator, expected string) func(*testing.T) {
		return func(t *testing.T) {
			doc := &AlsDocument{Version: 1, Schema: []string{"a"}, Streams: []ColumnStream{{op}}}
			out := Serialize(doc)
			assert.Equal(t, expected, out[strings.LastIndexByte(out, '\n')+1:])
		}
	}

	t.Run("raw", test(alsop.NewRaw("hello"), "hello"))
	t.Run("raw escaped", test(alsop.NewRaw("a b"), `a\ b`))
	t.Run("raw null sentinel", test(alsop.NewRaw(`\N`), `\N`))
	t.Run("raw empty sentinel", test(alsop.NewRaw(""), `\E`))
	t.Run("dict ref", test(alsop.NewDictRef(7), "_7"))
	t.Run("range implied step", test(alsop.NewRange(1, 5, 1), "1>5"))
	t.Run("range implied negative step", test(alsop.NewRange(5, 1, -1), "5>1"))
	t.Run("range explicit step", test(alsop.NewRange(10, 50, 10), "10>50:10"))
	t.Run("multiply raw", test(alsop.NewMultiply(alsop.NewRaw("1"), 4), "1*4"))
	t.Run("multiply range", test(alsop.NewMultiply(alsop.NewRange(1, 3, 1), 2), "(1>3)*2"))
	t.Run("multiply toggle", test(
		alsop.NewMultiply(alsop.NewToggle([]string{"a", "b"}, 4), 2), "(a~b*4)*2"))
	t.Run("toggle full cycle", test(alsop.NewToggle([]string{"T", "F"}, 2), "T~F"))
	t.Run("toggle explicit count", test(alsop.NewToggle([]string{"T", "F"}, 6), "T~F*6"))
}

func TestSerializeParseRoundTrip(t *testing.T) {
	docs := []*AlsDocument{
		{
			Version:         1,
			FormatIndicator: FormatALS,
			Schema:          []string{"id", "name"},
			Streams: []ColumnStream{
				{alsop.NewRange(1, 3, 1)},
				{alsop.NewRaw("Alice"), alsop.NewRaw("Bob"), alsop.NewRaw("Charlie")},
			},
		},
		{
			Version:         1,
			FormatIndicator: FormatALS,
			Dictionaries:    []Dictionary{{Name: "default", Entries: []string{"on", "off"}}},
			Schema:          []string{"s"},
			Streams:         []ColumnStream{{alsop.NewMultiply(alsop.NewDictRef(0), 3), alsop.NewDictRef(1)}},
		},
		{
			Version:         1,
			FormatIndicator: FormatALS,
			Schema:          []string{"f"},
			Streams:         []ColumnStream{{alsop.NewToggle([]string{"T", "F"}, 7)}},
		},
	}

	for _, doc := range docs {
		text := Serialize(doc)
		parsed, err := Parse(text, alsconfig.DefaultParserConfig())
		require.NoError(t, err, "text %q", text)
		assert.Equal(t, doc, parsed, "text %q", text)
		// serialization is a fixed point
		assert.Equal(t, text, Serialize(parsed))
	}
}

func TestPayloadSize(t *testing.T) {
	doc := &AlsDocument{
		Version:         1,
		FormatIndicator: FormatALS,
		Dictionaries:    []Dictionary{{Name: "default", Entries: []string{"x"}}},
		Schema:          []string{"a", "b"},
		Streams: []ColumnStream{
			{alsop.NewRange(1, 3, 1)},
			{alsop.NewDictRef(0), alsop.NewDictRef(0), alsop.NewDictRef(0)},
		},
	}
	// payload excludes the version and schema lines only
	assert.Equal(t, len("$default:x\n")+len("1>3|_0 _0 _0"), PayloadSize(doc))
	assert.Equal(t, len(Serialize(doc)), PayloadSize(doc)+len("!v1\n")+len("#a #b\n"))
}
