package ast

import "github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"

// Expr is the interface for all expression nodes.  The set of expressions is
// closed: only types in this package can implement it.
type Expr interface {
	Node

	exprNode()
}

// IntLit is an integer literal.
type IntLit struct {
	ASTBase

	Value int64
}

// RealLit is a real literal.  Text is the literal as written in the source.
type RealLit struct {
	ASTBase

	Value float64
	Text  string
}

// StringLit is a string literal.  Value excludes the quotes and keeps escape
// sequences verbatim.
type StringLit struct {
	ASTBase

	Value string
}

// VarRef is a reference to a variable.
type VarRef struct {
	ASTBase

	Name string
}

// ArithOp enumerates the binary arithmetic operators.
type ArithOp int

// Enumeration of arithmetic operators.
const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the operator as it is written in source (and in C).
func (op ArithOp) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	default:
		return "/"
	}
}

// BinaryOp is a binary arithmetic operation.
type BinaryOp struct {
	ASTBase

	Op       ArithOp
	Lhs, Rhs Expr
}

// CompareOp enumerates the relational and equality operators.
type CompareOp int

// Enumeration of comparison operators.
const (
	OpGt CompareOp = iota
	OpLt
	OpGtEq
	OpLtEq
	OpEq
	OpNeq
)

// Symbol returns the operator as it is written in source (and in C).
func (op CompareOp) Symbol() string {
	switch op {
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGtEq:
		return ">="
	case OpLtEq:
		return "<="
	case OpEq:
		return "=="
	default:
		return "!="
	}
}

// Comparison is a comparison of two operands.  It yields a boolean which may
// only be consumed as the condition of an `se` or an `enquanto`.
type Comparison struct {
	ASTBase

	Op       CompareOp
	Lhs, Rhs Expr
}

// Call is a call to a routine.
type Call struct {
	ASTBase

	Name     string
	NameSpan *report.TextSpan
	Args     []Expr
}

func (*IntLit) exprNode()     {}
func (*RealLit) exprNode()    {}
func (*StringLit) exprNode()  {}
func (*VarRef) exprNode()     {}
func (*BinaryOp) exprNode()   {}
func (*Comparison) exprNode() {}
func (*Call) exprNode()       {}

// -----------------------------------------------------------------------------

// ExprVisitor is implemented by every pass that consumes expressions.  Adding
// an expression variant adds a method here.
type ExprVisitor[R any] interface {
	VisitIntLit(*IntLit) (R, error)
	VisitRealLit(*RealLit) (R, error)
	VisitStringLit(*StringLit) (R, error)
	VisitVarRef(*VarRef) (R, error)
	VisitBinaryOp(*BinaryOp) (R, error)
	VisitComparison(*Comparison) (R, error)
	VisitCall(*Call) (R, error)
}

// VisitExpr dispatches an expression to the matching method of `v`.
func VisitExpr[R any](v ExprVisitor[R], expr Expr) (R, error) {
	switch e := expr.(type) {
	case *IntLit:
		return v.VisitIntLit(e)
	case *RealLit:
		return v.VisitRealLit(e)
	case *StringLit:
		return v.VisitStringLit(e)
	case *VarRef:
		return v.VisitVarRef(e)
	case *BinaryOp:
		return v.VisitBinaryOp(e)
	case *Comparison:
		return v.VisitComparison(e)
	case *Call:
		return v.VisitCall(e)
	}

	var zero R
	return zero, report.ICE("variante de expressão desconhecida: %T", expr)
}
