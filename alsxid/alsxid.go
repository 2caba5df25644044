// Package alsxid validates and sanitizes ALS schema column names
// using Unicode identifier classes (XID_Start/XID_Continue).
package alsxid

import (
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// reserved holds the ALS grammar's reserved characters other than '_',
// which must never appear inside an unescaped schema column name. '_'
// is allowed in names and is the replacement rune Sanitize writes.
const reserved = "!#$|~*>:()\\ \t\n\r"

// Valid reports whether name is usable as a schema column name: it must
// be non-empty, start with a Unicode identifier-start rune (or '_'), and
// contain only identifier-continue runes thereafter, none of them a
// reserved ALS character.
func Valid(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if strings.ContainsRune(reserved, r) {
			return false
		}
	}
	first, w := utf8.DecodeRuneInString(name)
	if !(xid.Start(first) || first == '_') {
		return false
	}
	for _, r := range name[w:] {
		if !(xid.Continue(r) || r == '_') {
			return false
		}
	}
	return true
}

// Sanitize rewrites name into a valid schema column name by replacing
// every rune that Valid would reject with '_', and prefixing with '_'
// if the result would not otherwise start with a valid identifier-start
// rune. Used by adapters ingesting externally-named columns (CSV
// headers, SQL result columns) that may carry spaces or punctuation.
func Sanitize(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	for _, r := range name {
		if (xid.Continue(r) || r == '_') && !strings.ContainsRune(reserved, r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	first, _ := utf8.DecodeRuneInString(out)
	if !(xid.Start(first) || first == '_') {
		out = "_" + out
	}
	return out
}
