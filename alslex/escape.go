// Package alslex implements ALS literal escaping and the single-pass
// tokenizer: a byte-position-tracking, peekable lexer with no separate
// lexer/parser token buffer.
package alslex

import (
	"strings"

	"github.com/vippsas/als/alsval"
)

// reservedChars are the bytes that may not appear unescaped in a raw
// literal.
const reservedChars = "!#$_|~*>:()\\ \t\n\r"

// NullSentinel and EmptySentinel are the two reserved raw tokens that
// round-trip a null value and an intentional empty string respectively.
// Cell and CellValue below are the single translation point between
// these wire sentinels and alsval.Value; the operator tree and parser
// treat them as ordinary raw literal text.
const (
	NullSentinel  = "\\N"
	EmptySentinel = "\\E"
)

// Cell renders v as the cell text the encoder consumes: null becomes
// the \N sentinel, the intentional empty string becomes \E, and
// everything else is v.Raw().
func Cell(v alsval.Value) string {
	if v.IsNull() {
		return NullSentinel
	}
	if s, ok := v.Str(); ok && s == "" {
		return EmptySentinel
	}
	return v.Raw()
}

// CellValue reverses Cell, turning expanded cell text back into a
// Value: the sentinels map to null and the empty string, anything else
// stays a string carrying its own text.
func CellValue(s string) alsval.Value {
	switch s {
	case NullSentinel:
		return alsval.Null()
	case EmptySentinel:
		return alsval.String("")
	}
	return alsval.String(s).WithText(s)
}

// NeedsEscaping reports whether s requires escape processing before it
// can be emitted as a raw literal: it is empty, it collides with a
// reserved sentinel once decoded, or it contains a reserved character.
func NeedsEscaping(s string) bool {
	if s == "" {
		return true
	}
	if s == NullSentinel || s == EmptySentinel {
		return true
	}
	return strings.ContainsAny(s, reservedChars)
}

// Escape renders s as ALS source text for a raw literal: every reserved
// character is backslash-escaped, using the mnemonic \n/\t for newline
// and tab, \\ for a literal backslash, and a bare backslash-prefix for
// every other reserved character (\|, \~, \*, \>, \<space>, \!, \#, \$,
// \_, \:, \(, \)). The \N and \E sentinels pass through verbatim: by
// the time text reaches Escape they are wire tokens, not cell content.
func Escape(s string) string {
	if s == "" {
		return EmptySentinel
	}
	if s == NullSentinel || s == EmptySentinel {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if strings.ContainsRune(reservedChars, r) {
				b.WriteByte('\\')
				b.WriteRune(r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// Unescape decodes ALS raw literal source text back to its logical
// string value. It is the tokenizer's primitive for turning the bytes
// between raw-literal boundaries into a Token's string payload.
func Unescape(s string) string {
	if s == NullSentinel || s == EmptySentinel {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i+1 >= len(runes) {
			b.WriteRune(r)
			continue
		}
		next := runes[i+1]
		switch next {
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		default:
			b.WriteRune(next)
		}
		i++
	}
	return b.String()
}
