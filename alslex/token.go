package alslex

import "fmt"

// Kind tags the lexical category of a Token.
type Kind int

const (
	Version Kind = iota
	DictHeader
	SchemaColumn
	Integer
	Float
	RawValue
	DictRef
	RangeOp
	MultiplyOp
	ToggleOp
	StepSeparator
	ColumnSeparator
	OpenParen
	CloseParen
	Newline
	EOF
)

func (k Kind) String() string {
	names := [...]string{
		"Version", "DictHeader", "SchemaColumn", "Integer", "Float",
		"RawValue", "DictRef", "RangeOp", "MultiplyOp", "ToggleOp",
		"StepSeparator", "ColumnSeparator", "OpenParen", "CloseParen",
		"Newline", "EOF",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// Token is one lexeme from the tokenizer. Only the fields relevant to
// Kind are populated; see the comment on each Kind's producing
// tokenizer method for which.
type Token struct {
	Kind Kind
	Pos  int

	// Version
	VersionNum uint8
	VersionCtx bool

	// DictHeader
	DictName   string
	DictValues []string

	// SchemaColumn, RawValue
	Str string

	// Integer
	Int int64

	// Float
	Flt float64

	// DictRef
	RefIndex uint32
}

func (t Token) String() string {
	switch t.Kind {
	case Integer:
		return fmt.Sprintf("Integer(%d)", t.Int)
	case Float:
		return fmt.Sprintf("Float(%g)", t.Flt)
	case RawValue:
		return fmt.Sprintf("RawValue(%q)", t.Str)
	case DictRef:
		return fmt.Sprintf("DictRef(%d)", t.RefIndex)
	case SchemaColumn:
		return fmt.Sprintf("SchemaColumn(%q)", t.Str)
	case DictHeader:
		return fmt.Sprintf("DictHeader(%s:%v)", t.DictName, t.DictValues)
	case Version:
		if t.VersionCtx {
			return "Version(CTX)"
		}
		return fmt.Sprintf("Version(ALS(%d))", t.VersionNum)
	default:
		return t.Kind.String()
	}
}
