package sem

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// Symbol is a named entity stored in the symbol table: a variable or a
// routine.
type Symbol interface {
	// SymName returns the name the symbol is declared under.
	SymName() string

	symbol()
}

// VarSymbol is a variable or routine parameter.
type VarSymbol struct {
	Name    string
	Type    typing.PrimType
	DefSpan *report.TextSpan
}

// RoutineKind enumerates the kinds of routines.
type RoutineKind int

// Enumeration of routine kinds.
const (
	RoutineProc RoutineKind = iota
	RoutineFunc
)

func (rk RoutineKind) String() string {
	if rk == RoutineProc {
		return "procedimento"
	}

	return "função"
}

// Param is a routine parameter as seen by callers.
type Param struct {
	Name string
	Type typing.PrimType
}

// RoutineSymbol is a procedure or function.  The return type of a procedure is
// always `PrimNone`; the return type of a function is `PrimNone` in the stub
// registered before its body is analyzed and concrete in the finalized record
// that replaces the stub.
type RoutineSymbol struct {
	Name       string
	Kind       RoutineKind
	Params     []Param
	ReturnType typing.PrimType
	DefSpan    *report.TextSpan
}

// Inferred returns whether the routine's return type is known.  This is only
// meaningful for functions.
func (rs *RoutineSymbol) Inferred() bool {
	return rs.ReturnType != typing.PrimNone
}

// Finalized returns a copy of the routine symbol with its return type set.
func (rs *RoutineSymbol) Finalized(ret typing.PrimType) *RoutineSymbol {
	final := *rs
	final.Params = append([]Param(nil), rs.Params...)
	final.ReturnType = ret
	return &final
}

func (vs *VarSymbol) SymName() string     { return vs.Name }
func (rs *RoutineSymbol) SymName() string { return rs.Name }

func (*VarSymbol) symbol()     {}
func (*RoutineSymbol) symbol() {}
