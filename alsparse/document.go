// Package alsparse implements the ALS document model, the recursive
// descent parser over the token stream, and the serializer that
// renders documents back to ALS text.
package alsparse

import "github.com/vippsas/als/alsop"

// SupportedVersion is the newest ALS wire version this parser accepts.
const SupportedVersion uint8 = 1

// FormatIndicator selects between the ALS operator-sequence flavor and
// the CTX (columnar-text) fallback flavor, where every cell is a Raw.
type FormatIndicator int

const (
	FormatALS FormatIndicator = iota
	FormatCTX
)

func (f FormatIndicator) String() string {
	if f == FormatCTX {
		return "CTX"
	}
	return "ALS"
}

// Dictionary is a named, ordered list of string entries referenced by
// DictRef index.
type Dictionary struct {
	Name    string
	Entries []string
}

// ColumnStream is the ordered operator sequence for one column.
type ColumnStream []alsop.Operator

// AlsDocument is the in-memory form of a parsed or compressed ALS
// document.
type AlsDocument struct {
	Version         uint8
	FormatIndicator FormatIndicator
	Dictionaries    []Dictionary
	Schema          []string
	Streams         []ColumnStream
}

// Dictionary looks up a named dictionary, returning ok=false if absent.
func (d *AlsDocument) Dictionary(name string) (Dictionary, bool) {
	for _, dict := range d.Dictionaries {
		if dict.Name == name {
			return dict, true
		}
	}
	return Dictionary{}, false
}

// DefaultDictionary returns the conventional "default" dictionary's
// entries, or nil if the document has none.
func (d *AlsDocument) DefaultDictionary() []string {
	if dict, ok := d.Dictionary("default"); ok {
		return dict.Entries
	}
	return nil
}
