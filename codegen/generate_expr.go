package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
)

// generateExpr generates a C expression.
func (g *Generator) generateExpr(expr ast.Expr) (string, error) {
	return ast.VisitExpr[string](g, expr)
}

// generateCondition generates the condition of an `if` or `while`.  The
// statement supplies the parentheses, so a top-level comparison drops its own.
func (g *Generator) generateCondition(cond ast.Expr) (string, error) {
	if cmp, ok := cond.(*ast.Comparison); ok {
		return g.generateInfix(cmp.Lhs, cmp.Op.Symbol(), cmp.Rhs)
	}

	return g.generateExpr(cond)
}

func (g *Generator) VisitIntLit(lit *ast.IntLit) (string, error) {
	return strconv.FormatInt(lit.Value, 10), nil
}

func (g *Generator) VisitRealLit(lit *ast.RealLit) (string, error) {
	if lit.Text != "" {
		return lit.Text, nil
	}

	text := strconv.FormatFloat(lit.Value, 'f', -1, 64)
	if !strings.ContainsRune(text, '.') {
		text += ".0"
	}

	return text, nil
}

func (g *Generator) VisitStringLit(lit *ast.StringLit) (string, error) {
	return `"` + lit.Value + `"`, nil
}

func (g *Generator) VisitVarRef(ref *ast.VarRef) (string, error) {
	return cName(ref.Name), nil
}

func (g *Generator) VisitBinaryOp(bop *ast.BinaryOp) (string, error) {
	infix, err := g.generateInfix(bop.Lhs, bop.Op.Symbol(), bop.Rhs)
	if err != nil {
		return "", err
	}

	return "(" + infix + ")", nil
}

func (g *Generator) VisitComparison(cmp *ast.Comparison) (string, error) {
	infix, err := g.generateInfix(cmp.Lhs, cmp.Op.Symbol(), cmp.Rhs)
	if err != nil {
		return "", err
	}

	return "(" + infix + ")", nil
}

func (g *Generator) VisitCall(call *ast.Call) (string, error) {
	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		cArg, err := g.generateExpr(arg)
		if err != nil {
			return "", err
		}

		args[i] = cArg
	}

	return fmt.Sprintf("%s(%s)", cName(call.Name), strings.Join(args, ", ")), nil
}

// generateInfix generates `lhs op rhs` without enclosing parentheses.
func (g *Generator) generateInfix(lhsExpr ast.Expr, op string, rhsExpr ast.Expr) (string, error) {
	lhs, err := g.generateExpr(lhsExpr)
	if err != nil {
		return "", err
	}

	rhs, err := g.generateExpr(rhsExpr)
	if err != nil {
		return "", err
	}

	return lhs + " " + op + " " + rhs, nil
}
