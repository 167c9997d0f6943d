package typing

// PrimType represents a primitive Portugol type.
type PrimType int

// Enumeration of primitive types.
const (
	// PrimNone is the absence of a type: the return type of a procedure or of
	// a function whose return type is not yet inferred.
	PrimNone PrimType = iota

	PrimInteger
	PrimReal
	PrimString

	// PrimBoolean is only ever synthesized by comparisons.
	PrimBoolean
)

// Repr returns the Portugol name of the type.
func (pt PrimType) Repr() string {
	switch pt {
	case PrimInteger:
		return "inteiro"
	case PrimReal:
		return "real"
	case PrimString:
		return "cadeia"
	case PrimBoolean:
		return "bool"
	default:
		return "nenhum"
	}
}

func (pt PrimType) String() string {
	return pt.Repr()
}

// Declarable returns whether a variable or parameter may have this type.
func (pt PrimType) Declarable() bool {
	return pt == PrimInteger || pt == PrimReal || pt == PrimString
}

// Numeric returns whether arithmetic and comparison are defined on the type.
func (pt PrimType) Numeric() bool {
	return pt == PrimInteger || pt == PrimReal
}
