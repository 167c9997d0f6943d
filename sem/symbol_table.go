package sem

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// SymbolTable is a stack of scopes.  Scope 0 is the global scope: it owns all
// routine symbols along with the variables declared at the top level, and it
// can never be popped.
type SymbolTable struct {
	scopes []map[string]Symbol
}

// NewSymbolTable creates a symbol table holding only the global scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []map[string]Symbol{make(map[string]Symbol)}}
}

// Depth returns the number of scopes on the stack.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// PushScope pushes a new scope onto the scope stack.
func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, make(map[string]Symbol))
}

// PopScope removes the innermost scope from the scope stack.  Popping the
// global scope is an internal compiler error.
func (st *SymbolTable) PopScope() {
	if len(st.scopes) == 1 {
		panic(report.ICE("tentativa de remover o escopo global"))
	}

	st.scopes = st.scopes[:len(st.scopes)-1]
}

// DeclareVariable declares a variable in the current scope.  It fails if the
// name is already declared in the current scope; shadowing a name from an
// enclosing scope is allowed.
func (st *SymbolTable) DeclareVariable(name string, typ typing.PrimType, span *report.TextSpan) error {
	curr := st.scopes[len(st.scopes)-1]

	if _, ok := curr[name]; ok {
		return report.Raise(report.KindSemantic, span, "Identificador '%s' já declarado neste escopo.", name)
	}

	curr[name] = &VarSymbol{Name: name, Type: typ, DefSpan: span}
	return nil
}

// DeclareRoutine declares a routine in the global scope.  It fails if the name
// is already declared in the global scope.
func (st *SymbolTable) DeclareRoutine(sym *RoutineSymbol) error {
	global := st.scopes[0]

	if _, ok := global[sym.Name]; ok {
		return report.Raise(report.KindSemantic, sym.DefSpan, "Rotina '%s' já declarada.", sym.Name)
	}

	global[sym.Name] = sym
	return nil
}

// FinalizeRoutine replaces the stub of a function with a finalized record
// carrying its inferred return type.
func (st *SymbolTable) FinalizeRoutine(name string, ret typing.PrimType) *RoutineSymbol {
	stub, ok := st.LookupRoutine(name)
	if !ok {
		panic(report.ICE("rotina '%s' finalizada sem ter sido declarada", name))
	}

	final := stub.Finalized(ret)
	st.scopes[0][name] = final
	return final
}

// Lookup searches the scopes from innermost to outermost and returns the
// nearest symbol declared under `name`.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, true
		}
	}

	return nil, false
}

// LookupRoutine looks up a routine in the global scope.
func (st *SymbolTable) LookupRoutine(name string) (*RoutineSymbol, bool) {
	rs, ok := st.scopes[0][name].(*RoutineSymbol)
	return rs, ok
}

// SaveLocals detaches every scope above the global scope and returns them so
// they can be restored by RestoreLocals.  This lets the analyzer visit the
// body of another routine from the middle of a block.
func (st *SymbolTable) SaveLocals() []map[string]Symbol {
	locals := st.scopes[1:]
	st.scopes = st.scopes[:1:1]
	return locals
}

// RestoreLocals reattaches scopes previously detached by SaveLocals.  The
// table must hold only the global scope.
func (st *SymbolTable) RestoreLocals(locals []map[string]Symbol) {
	if len(st.scopes) != 1 {
		panic(report.ICE("restauração de escopos com %d escopos ativos", len(st.scopes)))
	}

	st.scopes = append(st.scopes, locals...)
}
