package alsval

// ColumnType is the inferred scalar type of a column, used by adapters
// to decide output formatting; the compressor does not depend on it.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeMixed
)

func (t ColumnType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeMixed:
		return "mixed"
	default:
		return "string"
	}
}

// Column is an ordered, name-tagged sequence of Values.
type Column struct {
	Name         string
	Values       []Value
	InferredType ColumnType
}

// InferType scans Values and sets InferredType: the narrowest type all
// non-null values agree on, or TypeMixed if they disagree. A column of
// only nulls is TypeString.
func (c *Column) InferType() {
	c.InferredType = inferColumnType(c.Values)
}

func inferColumnType(values []Value) ColumnType {
	seen := map[Kind]bool{}
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		seen[v.Kind()] = true
	}
	switch {
	case len(seen) == 0:
		return TypeString
	case len(seen) == 1 && seen[KindInt]:
		return TypeInt
	case len(seen) == 1 && seen[KindFloat]:
		return TypeFloat
	case len(seen) == 1 && seen[KindBool]:
		return TypeBool
	case len(seen) == 1 && seen[KindString]:
		return TypeString
	default:
		return TypeMixed
	}
}

func NewColumn(name string, values []Value) Column {
	c := Column{Name: name, Values: values}
	c.InferType()
	return c
}
