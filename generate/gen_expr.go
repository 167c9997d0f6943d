package generate

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr generates an expression.  String expressions yield an `i8*`.
func (g *Generator) genExpr(expr ast.Expr) (value.Value, error) {
	return ast.VisitExpr[value.Value](g, expr)
}

func (g *Generator) VisitIntLit(lit *ast.IntLit) (value.Value, error) {
	return constant.NewInt(types.I32, lit.Value), nil
}

func (g *Generator) VisitRealLit(lit *ast.RealLit) (value.Value, error) {
	// The constant must be exactly representable as a float.
	return constant.NewFloat(types.Float, float64(float32(lit.Value))), nil
}

func (g *Generator) VisitStringLit(lit *ast.StringLit) (value.Value, error) {
	return g.internString(decodeEscapes(lit.Value)), nil
}

func (g *Generator) VisitVarRef(ref *ast.VarRef) (value.Value, error) {
	v, err := g.lookup(ref.Name)
	if err != nil {
		return nil, err
	}

	if v.typ == typing.PrimString {
		return g.stringPtr(v), nil
	}

	valType, err := g.convValueType(v.typ)
	if err != nil {
		return nil, err
	}

	return g.block.NewLoad(valType, v.ptr), nil
}

func (g *Generator) VisitBinaryOp(bop *ast.BinaryOp) (value.Value, error) {
	resultType, err := g.types.MustTypeOf(bop)
	if err != nil {
		return nil, err
	}

	lhs, rhs, err := g.genOperands(bop.Lhs, bop.Rhs, resultType)
	if err != nil {
		return nil, err
	}

	if resultType == typing.PrimReal {
		switch bop.Op {
		case ast.OpAdd:
			return g.block.NewFAdd(lhs, rhs), nil
		case ast.OpSub:
			return g.block.NewFSub(lhs, rhs), nil
		case ast.OpMul:
			return g.block.NewFMul(lhs, rhs), nil
		default:
			return g.block.NewFDiv(lhs, rhs), nil
		}
	}

	switch bop.Op {
	case ast.OpAdd:
		return g.block.NewAdd(lhs, rhs), nil
	case ast.OpSub:
		return g.block.NewSub(lhs, rhs), nil
	case ast.OpMul:
		return g.block.NewMul(lhs, rhs), nil
	default:
		return g.block.NewSDiv(lhs, rhs), nil
	}
}

// Predicates of each comparison operator.
var (
	intPredicates = map[ast.CompareOp]enum.IPred{
		ast.OpGt:   enum.IPredSGT,
		ast.OpLt:   enum.IPredSLT,
		ast.OpGtEq: enum.IPredSGE,
		ast.OpLtEq: enum.IPredSLE,
		ast.OpEq:   enum.IPredEQ,
		ast.OpNeq:  enum.IPredNE,
	}

	floatPredicates = map[ast.CompareOp]enum.FPred{
		ast.OpGt:   enum.FPredOGT,
		ast.OpLt:   enum.FPredOLT,
		ast.OpGtEq: enum.FPredOGE,
		ast.OpLtEq: enum.FPredOLE,
		ast.OpEq:   enum.FPredOEQ,
		ast.OpNeq:  enum.FPredONE,
	}
)

func (g *Generator) VisitComparison(cmp *ast.Comparison) (value.Value, error) {
	lhsType, err := g.types.MustTypeOf(cmp.Lhs)
	if err != nil {
		return nil, err
	}

	rhsType, err := g.types.MustTypeOf(cmp.Rhs)
	if err != nil {
		return nil, err
	}

	operandType, ok := typing.ArithResult(lhsType, rhsType)
	if !ok {
		return nil, report.ICE("comparação entre %s e %s", lhsType, rhsType)
	}

	lhs, rhs, err := g.genOperands(cmp.Lhs, cmp.Rhs, operandType)
	if err != nil {
		return nil, err
	}

	if operandType == typing.PrimReal {
		return g.block.NewFCmp(floatPredicates[cmp.Op], lhs, rhs), nil
	}

	return g.block.NewICmp(intPredicates[cmp.Op], lhs, rhs), nil
}

func (g *Generator) VisitCall(call *ast.Call) (value.Value, error) {
	return g.genCall(call)
}

// -----------------------------------------------------------------------------

// genCall generates a call to a routine, widening each argument to the type of
// its parameter.
func (g *Generator) genCall(call *ast.Call) (value.Value, error) {
	fn, ok := g.funcs[call.Name]
	if !ok {
		return nil, report.ICE("rotina '%s' sem função LLVM", call.Name)
	}

	rs, ok := g.table.LookupRoutine(call.Name)
	if !ok {
		return nil, report.ICE("rotina '%s' ausente da tabela de símbolos", call.Name)
	}

	args := make([]value.Value, len(call.Args))
	for i, arg := range call.Args {
		argType, err := g.types.MustTypeOf(arg)
		if err != nil {
			return nil, err
		}

		val, err := g.genExpr(arg)
		if err != nil {
			return nil, err
		}

		args[i] = g.widen(val, argType, rs.Params[i].Type)
	}

	return g.block.NewCall(fn, args...), nil
}

// genOperands generates both operands of a binary expression, widening each
// to `operandType`.
func (g *Generator) genOperands(lhsExpr, rhsExpr ast.Expr, operandType typing.PrimType) (value.Value, value.Value, error) {
	var operands [2]value.Value

	for i, expr := range []ast.Expr{lhsExpr, rhsExpr} {
		typ, err := g.types.MustTypeOf(expr)
		if err != nil {
			return nil, nil, err
		}

		val, err := g.genExpr(expr)
		if err != nil {
			return nil, nil, err
		}

		operands[i] = g.widen(val, typ, operandType)
	}

	return operands[0], operands[1], nil
}

// decodeEscapes decodes the backslash escapes of a string literal.  Unknown
// escapes decode to the escaped character.
func decodeEscapes(s string) string {
	buf := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			buf = append(buf, s[i])
			continue
		}

		i++
		switch s[i] {
		case 'n':
			buf = append(buf, '\n')
		case 't':
			buf = append(buf, '\t')
		case 'r':
			buf = append(buf, '\r')
		case '0':
			buf = append(buf, 0)
		default:
			buf = append(buf, s[i])
		}
	}

	return string(buf)
}
