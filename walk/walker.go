package walk

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// Walker is responsible for walking a program and performing semantic
// analysis on it: scope checking, type checking and the inference of function
// return types.
type Walker struct {
	// The symbol table being populated.
	table *sem.SymbolTable

	// The inferred types of the program's expressions.
	types sem.TypeTable

	// The routines of the program by name, in declaration order.
	routines     map[string]*routineInfo
	routineOrder []*routineInfo

	// The routine whose body is being walked.  If this is `nil`, then the
	// walker is on the top level of the program.
	enclosing *routineInfo
}

// Enumeration of the analysis states of a routine.
const (
	routinePending = iota
	routineInProgress
	routineDone
)

// routineInfo tracks the analysis of a single routine declaration.
type routineInfo struct {
	decl  *ast.Routine
	kind  sem.RoutineKind
	state int

	// The return type unified from the `retorne` statements walked so far.
	returnType typing.PrimType

	// The return types observed by recursive calls made while the return type
	// was still being inferred.
	recursiveCalls []recursiveCall
}

// recursiveCall is a call to a function made from inside its own body.
type recursiveCall struct {
	observed typing.PrimType
	span     *report.TextSpan
}

// Analyze semantically analyzes a program.  It returns the populated symbol
// table (whose global scope holds every routine and top-level variable) and the
// inferred type of every expression.
func Analyze(prog *ast.Program) (*sem.SymbolTable, sem.TypeTable, error) {
	w := &Walker{
		table:    sem.NewSymbolTable(),
		types:    make(sem.TypeTable, prog.NodeCount),
		routines: make(map[string]*routineInfo),
	}

	// Register every routine so that calls may precede declarations.
	for _, stmt := range prog.Stmts {
		if err := w.declareRoutine(stmt); err != nil {
			return nil, nil, err
		}
	}

	// Walk every routine body.  Some may already have been walked on demand.
	for _, info := range w.routineOrder {
		if err := w.walkRoutine(info); err != nil {
			return nil, nil, err
		}
	}

	// Walk the top-level executable statements.
	for _, stmt := range prog.Stmts {
		if _, ok := ast.AsRoutine(stmt); ok {
			continue
		}

		if err := ast.VisitStmt(w, stmt); err != nil {
			return nil, nil, err
		}
	}

	return w.table, w.types, nil
}

// -----------------------------------------------------------------------------

// lookupVar looks up a variable by name in all visible scopes.  Names that are
// undeclared or that name a routine are reported as undeclared variables.
func (w *Walker) lookupVar(name string, span *report.TextSpan) (*sem.VarSymbol, error) {
	if sym, ok := w.table.Lookup(name); ok {
		if vs, ok := sym.(*sem.VarSymbol); ok {
			return vs, nil
		}
	}

	return nil, w.error(span, "Variável '%s' usada antes de declarar.", name)
}

// lookupRoutine looks up a routine by name in all visible scopes.  A variable
// or parameter shadowing the routine hides it.
func (w *Walker) lookupRoutine(name string, span *report.TextSpan) (*sem.RoutineSymbol, error) {
	if sym, ok := w.table.Lookup(name); ok {
		if rs, ok := sym.(*sem.RoutineSymbol); ok {
			return rs, nil
		}
	}

	return nil, w.error(span, "Rotina '%s' não declarada.", name)
}

// walkScoped walks a block inside a fresh scope.
func (w *Walker) walkScoped(stmts []ast.Stmt) error {
	w.table.PushScope()

	if err := ast.VisitBlock(w, stmts); err != nil {
		return err
	}

	w.table.PopScope()
	return nil
}

// error creates a semantic error on the given span.
func (w *Walker) error(span *report.TextSpan, msg string, args ...interface{}) error {
	return report.Raise(report.KindSemantic, span, msg, args...)
}
