package serial

// Kind is the closed set of serializer families. Each family has its
// own sub-protocol for what follows the tag byte before element data
// begins, so the decoder matches on Kind exhaustively.
type Kind byte

const (
	KindFixedPrimitive    Kind = iota // static-width scalar
	KindPlainArray                    // length-prefixed 1-D array
	KindPlainMatrix                   // rows/cols-prefixed 2-D matrix
	KindUnitScalar                    // 2-byte unit, then one value
	KindUnitArray                     // shape, 2-byte unit, values
	KindUnitMatrix                    // shape, 2-byte unit, values
	KindStringScalar                  // char count, then chars
	KindStringArray                   // shape, then one string per cell
	KindStringMatrix                  // shape, then one string per cell
	KindColumnVectorArray             // shape, one unit per column, values
)

// String returns the family name.
func (k Kind) String() string {
	switch k {
	case KindFixedPrimitive:
		return "fixed"
	case KindPlainArray:
		return "array"
	case KindPlainMatrix:
		return "matrix"
	case KindUnitScalar:
		return "unit-scalar"
	case KindUnitArray:
		return "unit-array"
	case KindUnitMatrix:
		return "unit-matrix"
	case KindStringScalar:
		return "string"
	case KindStringArray:
		return "string-array"
	case KindStringMatrix:
		return "string-matrix"
	case KindColumnVectorArray:
		return "column-array"
	default:
		return "unknown"
	}
}

// ElemKind identifies the primitive element type of a field, which
// fixes the element width and the text rendering.
type ElemKind byte

const (
	ElemInt8 ElemKind = iota
	ElemInt16
	ElemInt32
	ElemInt64
	ElemFloat32
	ElemFloat64
	ElemBool
	ElemChar8
	ElemChar16
)

// Size returns the wire width of one element in bytes.
func (e ElemKind) Size() int {
	switch e {
	case ElemInt8, ElemBool, ElemChar8:
		return 1
	case ElemInt16, ElemChar16:
		return 2
	case ElemInt32, ElemFloat32:
		return 4
	case ElemInt64, ElemFloat64:
		return 8
	default:
		return 0
	}
}

// String returns the element type name.
func (e ElemKind) String() string {
	switch e {
	case ElemInt8:
		return "int8"
	case ElemInt16:
		return "int16"
	case ElemInt32:
		return "int32"
	case ElemInt64:
		return "int64"
	case ElemFloat32:
		return "float32"
	case ElemFloat64:
		return "float64"
	case ElemBool:
		return "bool"
	case ElemChar8:
		return "char8"
	case ElemChar16:
		return "char16"
	default:
		return "unknown"
	}
}

// Serializer describes one field type: its wire tag, display name, the
// protocol family and the element type. Descriptors are immutable and
// shared; the decoder never mutates them.
type Serializer struct {
	Code byte
	Name string
	Kind Kind
	Elem ElemKind
}

// Dimensions returns 0 for scalars, 1 for arrays, 2 for matrices.
func (s *Serializer) Dimensions() int {
	switch s.Kind {
	case KindPlainArray, KindUnitArray, KindStringArray:
		return 1
	case KindPlainMatrix, KindUnitMatrix, KindStringMatrix, KindColumnVectorArray:
		return 2
	default:
		return 0
	}
}

// HasUnit reports whether a unit descriptor precedes the element data.
func (s *Serializer) HasUnit() bool {
	switch s.Kind {
	case KindUnitScalar, KindUnitArray, KindUnitMatrix, KindColumnVectorArray:
		return true
	default:
		return false
	}
}

// IsString reports whether elements are length-prefixed strings.
func (s *Serializer) IsString() bool {
	switch s.Kind {
	case KindStringScalar, KindStringArray, KindStringMatrix:
		return true
	default:
		return false
	}
}

// Unit describes a physical display unit. Symbol is appended directly
// after the numeral with no space, per the quantity convention.
type Unit struct {
	Name   string
	Symbol string
}

// Catalog resolves wire codes to descriptors. Lookups return nil on a
// miss; the decoder turns misses into in-stream error text.
type Catalog interface {
	// Serializer returns the descriptor for a field type code.
	Serializer(code byte) *Serializer

	// Unit returns the display unit for a (unit type, display code) pair.
	Unit(unitType, displayCode byte) *Unit
}
