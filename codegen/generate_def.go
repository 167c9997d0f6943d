package codegen

import (
	"fmt"
	"strings"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// routineHeader returns the C signature of a routine, without a terminator.
func (g *Generator) routineHeader(stmt ast.Stmt) (string, error) {
	decl, _ := ast.AsRoutine(stmt)

	rs, ok := g.table.LookupRoutine(decl.Name)
	if !ok {
		return "", report.ICE("rotina '%s' ausente da tabela de símbolos", decl.Name)
	}

	retType := "void"
	if rs.Kind == sem.RoutineFunc {
		if !rs.Inferred() {
			return "", report.ICE("função '%s' sem tipo de retorno inferido", decl.Name)
		}

		var err error
		if retType, err = g.convReturnType(rs.ReturnType); err != nil {
			return "", err
		}
	}

	params := make([]string, len(decl.Params))
	for i, param := range decl.Params {
		cParam, err := g.declaration(param.Type, param.Name)
		if err != nil {
			return "", err
		}

		params[i] = cParam
	}

	paramList := "void"
	if len(params) > 0 {
		paramList = strings.Join(params, ", ")
	}

	return fmt.Sprintf("%s %s(%s)", retType, cName(decl.Name), paramList), nil
}

// generateRoutine generates the definition of a routine.
func (g *Generator) generateRoutine(stmt ast.Stmt) error {
	header, err := g.routineHeader(stmt)
	if err != nil {
		return err
	}

	decl, _ := ast.AsRoutine(stmt)

	g.writeLine("%s {", header)
	if err := g.writeBlock(decl.Body); err != nil {
		return err
	}
	g.writeLine("}")

	return nil
}

// -----------------------------------------------------------------------------

// declaration returns the C declarator of a variable or parameter, for example
// `int x` or `char nome[100]`.
func (g *Generator) declaration(typ typing.PrimType, name string) (string, error) {
	switch typ {
	case typing.PrimInteger:
		return "int " + cName(name), nil
	case typing.PrimReal:
		return "float " + cName(name), nil
	case typing.PrimString:
		return fmt.Sprintf("char %s[%d]", cName(name), g.opts.StringBufferSize), nil
	}

	return "", report.ICE("tipo declarado desconhecido para '%s': %s", name, typ)
}

// convReturnType converts the return type of a function to C.
func (g *Generator) convReturnType(typ typing.PrimType) (string, error) {
	switch typ {
	case typing.PrimInteger:
		return "int", nil
	case typing.PrimReal:
		return "float", nil
	case typing.PrimString:
		return "", report.ICE("funções que retornam cadeia não são suportadas")
	}

	return "", report.ICE("tipo de retorno desconhecido: %s", typ)
}
