package generate

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// routinePrefix is prepended to every routine name to keep user routines from
// colliding with `main` and the C library.
const routinePrefix = "portugol."

// declareRoutine creates the LLVM function of a routine declaration.  Other
// statements are ignored.
func (g *Generator) declareRoutine(stmt ast.Stmt) error {
	decl, ok := ast.AsRoutine(stmt)
	if !ok {
		return nil
	}

	rs, ok := g.table.LookupRoutine(decl.Name)
	if !ok {
		return report.ICE("rotina '%s' ausente da tabela de símbolos", decl.Name)
	}

	var retType types.Type = types.Void
	if rs.Kind == sem.RoutineFunc {
		var err error
		if retType, err = g.convReturnType(rs.ReturnType); err != nil {
			return err
		}
	}

	params := make([]*ir.Param, len(decl.Params))
	for i, param := range decl.Params {
		paramType, err := g.convParamType(param.Type)
		if err != nil {
			return err
		}

		params[i] = ir.NewParam(param.Name, paramType)
	}

	g.funcs[decl.Name] = g.mod.NewFunc(routinePrefix+decl.Name, retType, params...)
	return nil
}

// genRoutine generates the body of a routine declaration.  Other statements
// are ignored.
func (g *Generator) genRoutine(stmt ast.Stmt) error {
	decl, ok := ast.AsRoutine(stmt)
	if !ok {
		return nil
	}

	fn := g.funcs[decl.Name]
	g.beginFunc(fn)

	for i, param := range decl.Params {
		llParam := fn.Params[i]

		if param.Type == typing.PrimString {
			g.defineLocal(param.Name, &llvmVar{ptr: llParam, typ: param.Type})
			continue
		}

		paramVar := g.varBlock.NewAlloca(llParam.Type())
		g.varBlock.NewStore(llParam, paramVar)
		g.defineLocal(param.Name, &llvmVar{ptr: paramVar, typ: param.Type})
	}

	if err := g.genBlock(decl.Body); err != nil {
		return err
	}

	// Control may reach the end of a function whose last statement is not a
	// `retorne`; it yields the zero value.
	var fallback value.Value
	if rt, ok := fn.Sig.RetType.(*types.IntType); ok {
		fallback = constant.NewInt(rt, 0)
	} else if rt, ok := fn.Sig.RetType.(*types.FloatType); ok {
		fallback = constant.NewFloat(rt, 0)
	}

	g.endFunc(fallback)
	return nil
}

// genMain generates the `main` function wrapping every top-level executable
// statement.
func (g *Generator) genMain(prog *ast.Program) error {
	fn := g.mod.NewFunc("main", types.I32)
	g.beginFunc(fn)

	for _, stmt := range prog.Stmts {
		if _, ok := ast.AsRoutine(stmt); ok {
			continue
		}

		if err := g.genStmt(stmt); err != nil {
			return err
		}
	}

	g.endFunc(constant.NewInt(types.I32, 0))
	return nil
}

func (g *Generator) VisitProcDecl(pd *ast.ProcDecl) error {
	return report.ICE("procedimento aninhado '%s'", pd.Name)
}

func (g *Generator) VisitFuncDecl(fd *ast.FuncDecl) error {
	return report.ICE("função aninhada '%s'", fd.Name)
}
