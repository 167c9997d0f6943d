package ast

import (
	"strconv"
	"strings"
)

// SExpr renders a node as an S-expression, eg. `(+ 2 (* 3 4))`.  A Program
// renders as one line per top-level statement.
func SExpr(node interface{}) string {
	p := &sexprPrinter{}

	switch n := node.(type) {
	case *Program:
		for i, stmt := range n.Stmts {
			if i > 0 {
				p.sb.WriteByte('\n')
			}

			p.stmt(stmt)
		}
	case Stmt:
		p.stmt(n)
	case Expr:
		p.sb.WriteString(p.expr(n))
	}

	return p.sb.String()
}

type sexprPrinter struct {
	sb strings.Builder
}

func (p *sexprPrinter) expr(e Expr) string {
	s, err := VisitExpr[string](p, e)
	if err != nil {
		return "<?>"
	}

	return s
}

func (p *sexprPrinter) stmt(s Stmt) {
	if VisitStmt(p, s) != nil {
		p.sb.WriteString("<?>")
	}
}

func (p *sexprPrinter) block(label string, stmts []Stmt) {
	p.sb.WriteString(" (" + label)
	for _, s := range stmts {
		p.sb.WriteByte(' ')
		p.stmt(s)
	}
	p.sb.WriteByte(')')
}

func (p *sexprPrinter) VisitIntLit(il *IntLit) (string, error) {
	return strconv.FormatInt(il.Value, 10), nil
}

func (p *sexprPrinter) VisitRealLit(rl *RealLit) (string, error) {
	return rl.Text, nil
}

func (p *sexprPrinter) VisitStringLit(sl *StringLit) (string, error) {
	return "\"" + sl.Value + "\"", nil
}

func (p *sexprPrinter) VisitVarRef(vr *VarRef) (string, error) {
	return vr.Name, nil
}

func (p *sexprPrinter) VisitBinaryOp(bo *BinaryOp) (string, error) {
	return "(" + bo.Op.Symbol() + " " + p.expr(bo.Lhs) + " " + p.expr(bo.Rhs) + ")", nil
}

func (p *sexprPrinter) VisitComparison(c *Comparison) (string, error) {
	return "(" + c.Op.Symbol() + " " + p.expr(c.Lhs) + " " + p.expr(c.Rhs) + ")", nil
}

func (p *sexprPrinter) VisitCall(c *Call) (string, error) {
	s := "(call " + c.Name
	for _, arg := range c.Args {
		s += " " + p.expr(arg)
	}

	return s + ")", nil
}

func (p *sexprPrinter) VisitVarDecl(vd *VarDecl) error {
	p.sb.WriteString("(decl " + vd.Type.Repr() + " " + vd.Name + ")")
	return nil
}

func (p *sexprPrinter) VisitAssign(as *Assign) error {
	p.sb.WriteString("(= " + as.Name + " " + p.expr(as.Value) + ")")
	return nil
}

func (p *sexprPrinter) VisitWrite(w *Write) error {
	p.sb.WriteString("(escreva " + p.expr(w.Value) + ")")
	return nil
}

func (p *sexprPrinter) VisitIf(is *If) error {
	p.sb.WriteString("(se " + p.expr(is.Cond))
	p.block("entao", is.Then)
	if is.HasElse {
		p.block("senao", is.Else)
	}
	p.sb.WriteByte(')')
	return nil
}

func (p *sexprPrinter) VisitWhile(ws *While) error {
	p.sb.WriteString("(enquanto " + p.expr(ws.Cond))
	p.block("faca", ws.Body)
	p.sb.WriteByte(')')
	return nil
}

func (p *sexprPrinter) routine(keyword string, r *Routine) {
	p.sb.WriteString("(" + keyword + " " + r.Name + " (")
	for i, param := range r.Params {
		if i > 0 {
			p.sb.WriteByte(' ')
		}
		p.sb.WriteString("(" + param.Type.Repr() + " " + param.Name + ")")
	}
	p.sb.WriteByte(')')
	p.block("inicio", r.Body)
	p.sb.WriteByte(')')
}

func (p *sexprPrinter) VisitProcDecl(pd *ProcDecl) error {
	p.routine("procedimento", &pd.Routine)
	return nil
}

func (p *sexprPrinter) VisitFuncDecl(fd *FuncDecl) error {
	p.routine("funcao", &fd.Routine)
	return nil
}

func (p *sexprPrinter) VisitCallStmt(cs *CallStmt) error {
	s, _ := p.VisitCall(cs.Call)
	p.sb.WriteString(s)
	return nil
}

func (p *sexprPrinter) VisitReturn(rs *Return) error {
	p.sb.WriteString("(retorne " + p.expr(rs.Value) + ")")
	return nil
}
