package ast

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// Stmt is the interface for all statement nodes.  The set of statements is
// closed: only types in this package can implement it.
type Stmt interface {
	Node

	stmtNode()
}

// VarDecl is a variable declaration: `inteiro x;`.
type VarDecl struct {
	ASTBase

	Type     typing.PrimType
	Name     string
	NameSpan *report.TextSpan
}

// Assign is an assignment: `x = expr;`.
type Assign struct {
	ASTBase

	Name     string
	NameSpan *report.TextSpan
	Value    Expr
}

// Write is an `escreva(expr);` statement.
type Write struct {
	ASTBase

	Value Expr
}

// If is a conditional.  HasElse distinguishes an empty `senao` from no `senao`
// at all.
type If struct {
	ASTBase

	Cond    Expr
	Then    []Stmt
	Else    []Stmt
	HasElse bool
}

// While is an `enquanto` loop.
type While struct {
	ASTBase

	Cond Expr
	Body []Stmt
}

// Param is a routine parameter.
type Param struct {
	Type typing.PrimType
	Name string
	Span *report.TextSpan
}

// Routine holds what procedure and function declarations have in common.
type Routine struct {
	Name     string
	NameSpan *report.TextSpan
	Params   []Param
	Body     []Stmt

	// EndSpan is the span of the closing `fim`.
	EndSpan *report.TextSpan
}

// ProcDecl is a procedure declaration.
type ProcDecl struct {
	ASTBase
	Routine
}

// FuncDecl is a function declaration.  Its return type is inferred from its
// `retorne` statements.
type FuncDecl struct {
	ASTBase
	Routine
}

// CallStmt is a call used for its side effect.
type CallStmt struct {
	ASTBase

	Call *Call
}

// Return is a `retorne expr;` statement.
type Return struct {
	ASTBase

	Value Expr
}

func (*VarDecl) stmtNode()  {}
func (*Assign) stmtNode()   {}
func (*Write) stmtNode()    {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*ProcDecl) stmtNode() {}
func (*FuncDecl) stmtNode() {}
func (*CallStmt) stmtNode() {}
func (*Return) stmtNode()   {}

// AsRoutine returns the routine declared by `stmt` if it is a procedure or
// function declaration.
func AsRoutine(stmt Stmt) (*Routine, bool) {
	switch s := stmt.(type) {
	case *ProcDecl:
		return &s.Routine, true
	case *FuncDecl:
		return &s.Routine, true
	}

	return nil, false
}

// -----------------------------------------------------------------------------

// StmtVisitor is implemented by every pass that consumes statements.  Adding a
// statement variant adds a method here.
type StmtVisitor interface {
	VisitVarDecl(*VarDecl) error
	VisitAssign(*Assign) error
	VisitWrite(*Write) error
	VisitIf(*If) error
	VisitWhile(*While) error
	VisitProcDecl(*ProcDecl) error
	VisitFuncDecl(*FuncDecl) error
	VisitCallStmt(*CallStmt) error
	VisitReturn(*Return) error
}

// VisitStmt dispatches a statement to the matching method of `v`.
func VisitStmt(v StmtVisitor, stmt Stmt) error {
	switch s := stmt.(type) {
	case *VarDecl:
		return v.VisitVarDecl(s)
	case *Assign:
		return v.VisitAssign(s)
	case *Write:
		return v.VisitWrite(s)
	case *If:
		return v.VisitIf(s)
	case *While:
		return v.VisitWhile(s)
	case *ProcDecl:
		return v.VisitProcDecl(s)
	case *FuncDecl:
		return v.VisitFuncDecl(s)
	case *CallStmt:
		return v.VisitCallStmt(s)
	case *Return:
		return v.VisitReturn(s)
	}

	return report.ICE("variante de comando desconhecida: %T", stmt)
}

// VisitBlock visits each statement of a block in order, stopping at the first
// error.
func VisitBlock(v StmtVisitor, stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := VisitStmt(v, stmt); err != nil {
			return err
		}
	}

	return nil
}
