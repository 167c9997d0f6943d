package walk

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

func (w *Walker) VisitVarDecl(vd *ast.VarDecl) error {
	if !vd.Type.Declarable() {
		return report.ICE("declaração de '%s' com tipo %s", vd.Name, vd.Type)
	}

	return w.table.DeclareVariable(vd.Name, vd.Type, vd.NameSpan)
}

func (w *Walker) VisitAssign(as *ast.Assign) error {
	vs, err := w.lookupVar(as.Name, as.NameSpan)
	if err != nil {
		return err
	}

	typ, err := w.walkExpr(as.Value)
	if err != nil {
		return err
	}

	if !typing.Assignable(vs.Type, typ) {
		return w.error(
			as.Span(),
			"Atribuição incompatível: variável '%s' é %s, expressão é %s.",
			as.Name,
			vs.Type,
			typ,
		)
	}

	// The code generators need the target's type once the scopes are gone.
	w.types.Record(as, vs.Type)
	return nil
}

func (w *Walker) VisitWrite(wr *ast.Write) error {
	typ, err := w.walkExpr(wr.Value)
	if err != nil {
		return err
	}

	if !typ.Declarable() {
		return w.error(wr.Value.Span(), "'escreva' não aceita valor do tipo %s.", typ)
	}

	return nil
}

func (w *Walker) VisitIf(ifStmt *ast.If) error {
	if err := w.walkCondition("se", ifStmt.Cond); err != nil {
		return err
	}

	if err := w.walkScoped(ifStmt.Then); err != nil {
		return err
	}

	if ifStmt.HasElse {
		return w.walkScoped(ifStmt.Else)
	}

	return nil
}

func (w *Walker) VisitWhile(loop *ast.While) error {
	if err := w.walkCondition("enquanto", loop.Cond); err != nil {
		return err
	}

	return w.walkScoped(loop.Body)
}

func (w *Walker) VisitCallStmt(cs *ast.CallStmt) error {
	typ, err := w.walkCall(cs.Call, true)
	if err != nil {
		return err
	}

	w.types.Record(cs.Call, typ)
	return nil
}

// walkCondition walks the condition of a control statement.
func (w *Walker) walkCondition(keyword string, cond ast.Expr) error {
	typ, err := w.walkExpr(cond)
	if err != nil {
		return err
	}

	if typ != typing.PrimBoolean {
		return w.error(cond.Span(), "Condição do '%s' deve ser bool, mas é %s.", keyword, typ)
	}

	return nil
}
