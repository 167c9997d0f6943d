package typing

// Assignable returns whether a value of type `src` can be stored in a location
// of type `dst`: the types are equal or the value widens from integer to real.
func Assignable(dst, src PrimType) bool {
	return dst == src && dst.Declarable() || Widens(dst, src)
}

// Widens returns whether storing `src` in `dst` is an implicit conversion from
// integer to real.
func Widens(dst, src PrimType) bool {
	return dst == PrimReal && src == PrimInteger
}

// ArithResult returns the result type of a binary arithmetic operation.  It
// fails if either operand is not numeric.
func ArithResult(lhs, rhs PrimType) (PrimType, bool) {
	if !lhs.Numeric() || !rhs.Numeric() {
		return PrimNone, false
	}

	if lhs == PrimReal || rhs == PrimReal {
		return PrimReal, true
	}

	return PrimInteger, true
}

// Comparable returns whether two operands may be compared.
func Comparable(lhs, rhs PrimType) bool {
	return lhs.Numeric() && rhs.Numeric()
}

// Unify combines the types of two return values of the same function.  Equal
// types unify to themselves and integer unifies with real to real.
func Unify(a, b PrimType) (PrimType, bool) {
	switch {
	case a == b:
		return a, true
	case a.Numeric() && b.Numeric():
		return PrimReal, true
	}

	return PrimNone, false
}
