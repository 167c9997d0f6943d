package generate

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"

	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// convValueType converts a numeric Portugol type to the LLVM type of its
// values.
func (g *Generator) convValueType(typ typing.PrimType) (types.Type, error) {
	switch typ {
	case typing.PrimInteger:
		return types.I32, nil
	case typing.PrimReal:
		return types.Float, nil
	}

	return nil, report.ICE("tipo %s sem representação escalar", typ)
}

// convAllocType converts a declared Portugol type to the type of its storage.
func (g *Generator) convAllocType(typ typing.PrimType) (types.Type, error) {
	if typ == typing.PrimString {
		return g.stringType, nil
	}

	return g.convValueType(typ)
}

// convParamType converts the declared type of a parameter.  Strings are
// passed as a pointer to their first byte.
func (g *Generator) convParamType(typ typing.PrimType) (types.Type, error) {
	if typ == typing.PrimString {
		return types.I8Ptr, nil
	}

	return g.convValueType(typ)
}

// convReturnType converts the return type of a function.
func (g *Generator) convReturnType(typ typing.PrimType) (types.Type, error) {
	if typ == typing.PrimString {
		return nil, report.ICE("funções que retornam cadeia não são suportadas")
	}

	return g.convValueType(typ)
}

// widen converts a value of type `from` so it can be stored where `to` is
// expected.  Only integer to real needs a conversion.
func (g *Generator) widen(val value.Value, from, to typing.PrimType) value.Value {
	if typing.Widens(to, from) {
		return g.block.NewSIToFP(val, types.Float)
	}

	return val
}
