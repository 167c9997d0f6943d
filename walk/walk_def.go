package walk

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// declareRoutine registers the stub symbol of a top-level routine declaration.
// Other statements are ignored.
func (w *Walker) declareRoutine(stmt ast.Stmt) error {
	var kind sem.RoutineKind
	switch stmt.(type) {
	case *ast.ProcDecl:
		kind = sem.RoutineProc
	case *ast.FuncDecl:
		kind = sem.RoutineFunc
	default:
		return nil
	}

	decl, _ := ast.AsRoutine(stmt)

	params := make([]sem.Param, len(decl.Params))
	for i, param := range decl.Params {
		params[i] = sem.Param{Name: param.Name, Type: param.Type}
	}

	sym := &sem.RoutineSymbol{
		Name:    decl.Name,
		Kind:    kind,
		Params:  params,
		DefSpan: decl.NameSpan,
	}

	if err := w.table.DeclareRoutine(sym); err != nil {
		return err
	}

	info := &routineInfo{decl: decl, kind: kind}
	w.routines[decl.Name] = info
	w.routineOrder = append(w.routineOrder, info)
	return nil
}

// walkRoutine analyzes the body of a routine if it has not been analyzed yet.
// The body is walked with only the global scope visible, so this may be called
// from the middle of another routine's body.
func (w *Walker) walkRoutine(info *routineInfo) error {
	if info.state != routinePending {
		return nil
	}

	info.state = routineInProgress

	locals := w.table.SaveLocals()
	prevEnclosing := w.enclosing
	w.enclosing = info

	w.table.PushScope()

	for _, param := range info.decl.Params {
		if err := w.table.DeclareVariable(param.Name, param.Type, param.Span); err != nil {
			return err
		}
	}

	if err := ast.VisitBlock(w, info.decl.Body); err != nil {
		return err
	}

	w.table.PopScope()

	w.enclosing = prevEnclosing
	w.table.RestoreLocals(locals)

	if info.kind == sem.RoutineFunc {
		if err := w.finalizeFunc(info); err != nil {
			return err
		}
	}

	info.state = routineDone
	return nil
}

// finalizeFunc checks the inferred return type of a function against the
// types observed by its recursive calls and replaces its stub symbol.
func (w *Walker) finalizeFunc(info *routineInfo) error {
	if info.returnType == typing.PrimNone {
		return w.error(info.decl.EndSpan, "Função '%s' sem 'retorne'.", info.decl.Name)
	}

	for _, rc := range info.recursiveCalls {
		if rc.observed != info.returnType {
			return w.error(
				rc.span,
				"Chamada recursiva de '%s' usa o tipo %s, mas a função retorna %s.",
				info.decl.Name,
				rc.observed,
				info.returnType,
			)
		}
	}

	w.table.FinalizeRoutine(info.decl.Name, info.returnType)
	return nil
}

// -----------------------------------------------------------------------------

// Top-level declarations are handled by `Analyze`, so any routine declaration
// reaching the visitor is nested inside a block.

func (w *Walker) VisitProcDecl(pd *ast.ProcDecl) error {
	return w.error(pd.NameSpan, "Rotinas só podem ser declaradas no nível global: '%s'.", pd.Name)
}

func (w *Walker) VisitFuncDecl(fd *ast.FuncDecl) error {
	return w.error(fd.NameSpan, "Rotinas só podem ser declaradas no nível global: '%s'.", fd.Name)
}

func (w *Walker) VisitReturn(ret *ast.Return) error {
	if w.enclosing == nil || w.enclosing.kind != sem.RoutineFunc {
		return w.error(ret.Span(), "'retorne' só é permitido dentro de função.")
	}

	typ, err := w.walkExpr(ret.Value)
	if err != nil {
		return err
	}

	fn := w.enclosing
	if fn.returnType == typing.PrimNone {
		fn.returnType = typ
		return nil
	}

	unified, ok := typing.Unify(fn.returnType, typ)
	if !ok {
		return w.error(
			ret.Value.Span(),
			"Retornos inconsistentes na função '%s': %s vs %s.",
			fn.decl.Name,
			fn.returnType,
			typ,
		)
	}

	fn.returnType = unified
	return nil
}
