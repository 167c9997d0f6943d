package generate

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genStmt generates a single statement.
func (g *Generator) genStmt(stmt ast.Stmt) error {
	return ast.VisitStmt(g, stmt)
}

// genBlock generates the statements of a block in order.
func (g *Generator) genBlock(stmts []ast.Stmt) error {
	return ast.VisitBlock(g, stmts)
}

// genScopedBlock generates a block inside a fresh local scope.
func (g *Generator) genScopedBlock(stmts []ast.Stmt) error {
	g.pushScope()
	defer g.popScope()

	return g.genBlock(stmts)
}

func (g *Generator) VisitVarDecl(vd *ast.VarDecl) error {
	allocType, err := g.convAllocType(vd.Type)
	if err != nil {
		return err
	}

	g.defineLocal(vd.Name, &llvmVar{
		ptr:    g.varBlock.NewAlloca(allocType),
		typ:    vd.Type,
		buffer: vd.Type == typing.PrimString,
	})
	return nil
}

func (g *Generator) VisitAssign(as *ast.Assign) error {
	v, err := g.lookup(as.Name)
	if err != nil {
		return err
	}

	val, err := g.genExpr(as.Value)
	if err != nil {
		return err
	}

	if v.typ == typing.PrimString {
		g.block.NewCall(
			g.snprintf,
			g.stringPtr(v),
			constant.NewInt(types.I64, int64(g.opts.StringBufferSize)),
			g.internString("%s"),
			val,
		)
		return nil
	}

	valType, err := g.types.MustTypeOf(as.Value)
	if err != nil {
		return err
	}

	g.block.NewStore(g.widen(val, valType, v.typ), v.ptr)
	return nil
}

func (g *Generator) VisitWrite(wr *ast.Write) error {
	typ, err := g.types.MustTypeOf(wr.Value)
	if err != nil {
		return err
	}

	val, err := g.genExpr(wr.Value)
	if err != nil {
		return err
	}

	var format string
	switch typ {
	case typing.PrimInteger:
		format = "%d"
	case typing.PrimReal:
		// Variadic arguments are promoted to double.
		format = "%f"
		val = g.block.NewFPExt(val, types.Double)
	case typing.PrimString:
		format = "%s"
	default:
		return report.ICE("'escreva' com valor do tipo %s", typ)
	}

	if g.opts.WriteNewline {
		format += "\n"
	}

	g.block.NewCall(g.printf, g.internString(format), val)
	return nil
}

func (g *Generator) VisitCallStmt(cs *ast.CallStmt) error {
	_, err := g.genCall(cs.Call)
	return err
}

func (g *Generator) VisitReturn(ret *ast.Return) error {
	typ, err := g.types.MustTypeOf(ret.Value)
	if err != nil {
		return err
	}

	val, err := g.genExpr(ret.Value)
	if err != nil {
		return err
	}

	// Widen against the inferred return type of the function.
	if g.enclosingFunc.Sig.RetType.Equal(types.Float) {
		val = g.widen(val, typ, typing.PrimReal)
	}

	g.block.NewRet(val)

	// Anything after the `retorne` is unreachable but still needs a block.
	g.block = g.appendBlock()
	return nil
}

// stringPtr returns the `i8*` to the first byte of a string variable.
func (g *Generator) stringPtr(v *llvmVar) value.Value {
	if !v.buffer {
		return v.ptr
	}

	zero := constant.NewInt(types.I32, 0)
	return g.block.NewGetElementPtr(g.stringType, v.ptr, zero, zero)
}
