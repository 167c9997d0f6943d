package ast

import "github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"

// NodeID is the stable identity of an AST node.  IDs are assigned at
// construction time, are unique within a program and are never zero.
type NodeID uint32

// The abstract interface for all AST nodes.
type Node interface {
	// The identity of the node.
	ID() NodeID

	// The text span of the node.
	Span() *report.TextSpan
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The identity of the node.
	id NodeID

	// The span over which the AST node occurs.
	span *report.TextSpan
}

func (ab ASTBase) ID() NodeID {
	return ab.id
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// IDGen hands out node IDs.  One generator is used per program so that the IDs
// of its nodes never collide.
type IDGen struct {
	last NodeID
}

// NewASTBaseOn creates a new AST base with a fresh ID and the given span.
func (g *IDGen) NewASTBaseOn(span *report.TextSpan) ASTBase {
	g.last++
	return ASTBase{id: g.last, span: span}
}

// NewASTBaseOver creates a new AST base with a fresh ID spanning over two
// spans.
func (g *IDGen) NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return g.NewASTBaseOn(report.NewSpanOver(start, end))
}

// Count returns the number of IDs handed out so far.
func (g *IDGen) Count() int {
	return int(g.last)
}

// -----------------------------------------------------------------------------

// Program is the root of the AST: the top-level statements of a source file in
// source order.
type Program struct {
	Stmts []Stmt

	// NodeCount is the number of nodes in the program.  Node IDs range over
	// [1, NodeCount].
	NodeCount int
}
