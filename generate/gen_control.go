package generate

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"

	"github.com/llir/llvm/ir"
)

func (g *Generator) VisitIf(ifStmt *ast.If) error {
	cond, err := g.genExpr(ifStmt.Cond)
	if err != nil {
		return err
	}

	thenBlock := g.appendBlock()

	// Without an else, the false edge goes straight to the end block.
	elseBlock := g.appendBlock()
	endBlock := elseBlock
	if ifStmt.HasElse {
		endBlock = g.appendBlock()
	}

	g.block.NewCondBr(cond, thenBlock, elseBlock)

	g.block = thenBlock
	if err := g.genScopedBlock(ifStmt.Then); err != nil {
		return err
	}
	g.jumpTo(endBlock)

	if ifStmt.HasElse {
		g.block = elseBlock
		if err := g.genScopedBlock(ifStmt.Else); err != nil {
			return err
		}
		g.jumpTo(endBlock)
	}

	g.block = endBlock
	return nil
}

func (g *Generator) VisitWhile(loop *ast.While) error {
	headerBlock := g.appendBlock()
	g.block.NewBr(headerBlock)

	g.block = headerBlock
	cond, err := g.genExpr(loop.Cond)
	if err != nil {
		return err
	}

	bodyBlock := g.appendBlock()
	endBlock := g.appendBlock()
	g.block.NewCondBr(cond, bodyBlock, endBlock)

	g.block = bodyBlock
	if err := g.genScopedBlock(loop.Body); err != nil {
		return err
	}
	g.jumpTo(headerBlock)

	g.block = endBlock
	return nil
}

// jumpTo terminates the current block with a branch unless it already has a
// terminator.
func (g *Generator) jumpTo(target *ir.Block) {
	if g.block.Term == nil {
		g.block.NewBr(target)
	}
}
