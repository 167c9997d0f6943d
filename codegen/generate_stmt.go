package codegen

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

func (g *Generator) VisitVarDecl(vd *ast.VarDecl) error {
	decl, err := g.declaration(vd.Type, vd.Name)
	if err != nil {
		return err
	}

	g.writeLine("%s;", decl)
	return nil
}

func (g *Generator) VisitAssign(as *ast.Assign) error {
	targetType, err := g.types.MustTypeOf(as)
	if err != nil {
		return err
	}

	value, err := g.generateExpr(as.Value)
	if err != nil {
		return err
	}

	// C arrays cannot be assigned, so strings are copied into the buffer.
	if targetType == typing.PrimString {
		g.writeLine(`snprintf(%s, %d, "%%s", %s);`, cName(as.Name), g.opts.StringBufferSize, value)
	} else {
		g.writeLine("%s = %s;", cName(as.Name), value)
	}

	return nil
}

func (g *Generator) VisitWrite(wr *ast.Write) error {
	typ, err := g.types.MustTypeOf(wr.Value)
	if err != nil {
		return err
	}

	var format string
	switch typ {
	case typing.PrimInteger:
		format = "%d"
	case typing.PrimReal:
		format = "%f"
	case typing.PrimString:
		format = "%s"
	default:
		return report.ICE("'escreva' com valor do tipo %s", typ)
	}

	if g.opts.WriteNewline {
		format += `\n`
	}

	value, err := g.generateExpr(wr.Value)
	if err != nil {
		return err
	}

	g.writeLine(`printf("%s", %s);`, format, value)
	return nil
}

func (g *Generator) VisitIf(ifStmt *ast.If) error {
	cond, err := g.generateCondition(ifStmt.Cond)
	if err != nil {
		return err
	}

	g.writeLine("if (%s) {", cond)
	if err := g.writeBlock(ifStmt.Then); err != nil {
		return err
	}

	if ifStmt.HasElse {
		g.writeLine("} else {")
		if err := g.writeBlock(ifStmt.Else); err != nil {
			return err
		}
	}

	g.writeLine("}")
	return nil
}

func (g *Generator) VisitWhile(loop *ast.While) error {
	cond, err := g.generateCondition(loop.Cond)
	if err != nil {
		return err
	}

	g.writeLine("while (%s) {", cond)
	if err := g.writeBlock(loop.Body); err != nil {
		return err
	}
	g.writeLine("}")

	return nil
}

func (g *Generator) VisitCallStmt(cs *ast.CallStmt) error {
	call, err := g.generateExpr(cs.Call)
	if err != nil {
		return err
	}

	g.writeLine("%s;", call)
	return nil
}

func (g *Generator) VisitReturn(ret *ast.Return) error {
	value, err := g.generateExpr(ret.Value)
	if err != nil {
		return err
	}

	g.writeLine("return %s;", value)
	return nil
}

func (g *Generator) VisitProcDecl(pd *ast.ProcDecl) error {
	return report.ICE("procedimento aninhado '%s'", pd.Name)
}

func (g *Generator) VisitFuncDecl(fd *ast.FuncDecl) error {
	return report.ICE("função aninhada '%s'", fd.Name)
}
