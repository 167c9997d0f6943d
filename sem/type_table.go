package sem

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// TypeTable maps AST node IDs to inferred types.  Every analyzed expression is
// recorded under its own ID; every assignment is recorded under the ID of the
// `Assign` statement with the declared type of its target.
type TypeTable map[ast.NodeID]typing.PrimType

// Record stores the type of a node.
func (tt TypeTable) Record(node ast.Node, typ typing.PrimType) {
	tt[node.ID()] = typ
}

// TypeOf returns the recorded type of a node.
func (tt TypeTable) TypeOf(node ast.Node) (typing.PrimType, bool) {
	typ, ok := tt[node.ID()]
	return typ, ok
}

// MustTypeOf returns the recorded type of a node or an internal error if the
// node was never analyzed.
func (tt TypeTable) MustTypeOf(node ast.Node) (typing.PrimType, error) {
	if typ, ok := tt[node.ID()]; ok {
		return typ, nil
	}

	return typing.PrimNone, report.ICE("nó %d (%T) sem anotação de tipo", node.ID(), node)
}
