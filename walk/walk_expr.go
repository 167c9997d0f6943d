package walk

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// walkExpr infers the type of an expression and records it in the type table.
func (w *Walker) walkExpr(expr ast.Expr) (typing.PrimType, error) {
	typ, err := ast.VisitExpr[typing.PrimType](w, expr)
	if err != nil {
		return typing.PrimNone, err
	}

	w.types.Record(expr, typ)
	return typ, nil
}

func (w *Walker) VisitIntLit(*ast.IntLit) (typing.PrimType, error) {
	return typing.PrimInteger, nil
}

func (w *Walker) VisitRealLit(*ast.RealLit) (typing.PrimType, error) {
	return typing.PrimReal, nil
}

func (w *Walker) VisitStringLit(*ast.StringLit) (typing.PrimType, error) {
	return typing.PrimString, nil
}

func (w *Walker) VisitVarRef(ref *ast.VarRef) (typing.PrimType, error) {
	vs, err := w.lookupVar(ref.Name, ref.Span())
	if err != nil {
		return typing.PrimNone, err
	}

	return vs.Type, nil
}

func (w *Walker) VisitBinaryOp(bop *ast.BinaryOp) (typing.PrimType, error) {
	lhs, rhs, err := w.walkOperands(bop.Lhs, bop.Rhs)
	if err != nil {
		return typing.PrimNone, err
	}

	typ, ok := typing.ArithResult(lhs, rhs)
	if !ok {
		return typing.PrimNone, w.error(
			bop.Span(),
			"Operação '%s' não suportada para %s.",
			bop.Op.Symbol(),
			nonNumeric(lhs, rhs),
		)
	}

	return typ, nil
}

func (w *Walker) VisitComparison(cmp *ast.Comparison) (typing.PrimType, error) {
	lhs, rhs, err := w.walkOperands(cmp.Lhs, cmp.Rhs)
	if err != nil {
		return typing.PrimNone, err
	}

	if !typing.Comparable(lhs, rhs) {
		return typing.PrimNone, w.error(
			cmp.Span(),
			"Comparação '%s' não suportada para %s.",
			cmp.Op.Symbol(),
			nonNumeric(lhs, rhs),
		)
	}

	return typing.PrimBoolean, nil
}

func (w *Walker) VisitCall(call *ast.Call) (typing.PrimType, error) {
	return w.walkCall(call, false)
}

// -----------------------------------------------------------------------------

// walkCall checks a call against the signature of its callee and returns the
// type it yields.  Calls in statement position may target any routine and
// yield `none`; calls in expression position must target a function whose
// return type is known, so an unanalyzed callee is analyzed on demand.
func (w *Walker) walkCall(call *ast.Call, asStmt bool) (typing.PrimType, error) {
	rs, err := w.lookupRoutine(call.Name, call.NameSpan)
	if err != nil {
		return typing.PrimNone, err
	}

	if len(call.Args) != len(rs.Params) {
		return typing.PrimNone, w.error(
			call.Span(),
			"Chamada de '%s' com %d args; esperado %d.",
			call.Name,
			len(call.Args),
			len(rs.Params),
		)
	}

	for i, arg := range call.Args {
		typ, err := w.walkExpr(arg)
		if err != nil {
			return typing.PrimNone, err
		}

		if !typing.Assignable(rs.Params[i].Type, typ) {
			return typing.PrimNone, w.error(
				arg.Span(),
				"Arg %d de '%s' incompatível: esperado %s, veio %s.",
				i+1,
				call.Name,
				rs.Params[i].Type,
				typ,
			)
		}
	}

	// A call statement discards the value of its callee.
	if asStmt {
		return typing.PrimNone, nil
	}

	if rs.Kind == sem.RoutineProc {
		return typing.PrimNone, w.error(
			call.NameSpan,
			"Procedimento '%s' não pode ser usado como expressão.",
			call.Name,
		)
	}

	if rs.Inferred() {
		return rs.ReturnType, nil
	}

	info := w.routines[call.Name]
	switch info.state {
	case routinePending:
		if err := w.walkRoutine(info); err != nil {
			return typing.PrimNone, err
		}

		rs, _ = w.table.LookupRoutine(call.Name)
		return rs.ReturnType, nil
	case routineInProgress:
		// A recursive call sees the return type unified so far.
		if info.returnType == typing.PrimNone {
			return typing.PrimNone, w.error(
				call.NameSpan,
				"Tipo de retorno da função '%s' ainda não definido.",
				call.Name,
			)
		}

		info.recursiveCalls = append(info.recursiveCalls, recursiveCall{
			observed: info.returnType,
			span:     call.Span(),
		})
		return info.returnType, nil
	}

	return rs.ReturnType, nil
}

// walkOperands walks both operands of a binary expression.
func (w *Walker) walkOperands(lhsExpr, rhsExpr ast.Expr) (typing.PrimType, typing.PrimType, error) {
	lhs, err := w.walkExpr(lhsExpr)
	if err != nil {
		return typing.PrimNone, typing.PrimNone, err
	}

	rhs, err := w.walkExpr(rhsExpr)
	if err != nil {
		return typing.PrimNone, typing.PrimNone, err
	}

	return lhs, rhs, nil
}

// nonNumeric returns the first non-numeric operand type.
func nonNumeric(lhs, rhs typing.PrimType) typing.PrimType {
	if !lhs.Numeric() {
		return lhs
	}

	return rhs
}
