package typing

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestAssignable(t *testing.T) {
	be.True(t, Assignable(PrimInteger, PrimInteger))
	be.True(t, Assignable(PrimReal, PrimInteger))
	be.True(t, Assignable(PrimString, PrimString))
	be.True(t, !Assignable(PrimInteger, PrimReal))
	be.True(t, !Assignable(PrimString, PrimInteger))
	be.True(t, !Assignable(PrimInteger, PrimBoolean))
	be.True(t, !Assignable(PrimBoolean, PrimBoolean))
}

func TestArithResult(t *testing.T) {
	cases := []struct {
		lhs, rhs PrimType
		want     PrimType
		ok       bool
	}{
		{PrimInteger, PrimInteger, PrimInteger, true},
		{PrimInteger, PrimReal, PrimReal, true},
		{PrimReal, PrimInteger, PrimReal, true},
		{PrimString, PrimInteger, PrimNone, false},
		{PrimInteger, PrimBoolean, PrimNone, false},
	}

	for _, c := range cases {
		got, ok := ArithResult(c.lhs, c.rhs)
		be.Equal(t, ok, c.ok)
		be.Equal(t, got, c.want)
	}
}

func TestUnify(t *testing.T) {
	got, ok := Unify(PrimInteger, PrimReal)
	be.True(t, ok)
	be.Equal(t, got, PrimReal)

	got, ok = Unify(PrimString, PrimString)
	be.True(t, ok)
	be.Equal(t, got, PrimString)

	_, ok = Unify(PrimInteger, PrimString)
	be.True(t, !ok)
}

func TestRepr(t *testing.T) {
	be.Equal(t, PrimInteger.Repr(), "inteiro")
	be.Equal(t, PrimString.Repr(), "cadeia")
	be.Equal(t, PrimBoolean.Repr(), "bool")
	be.True(t, !PrimBoolean.Declarable())
}
