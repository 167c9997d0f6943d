package report

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nalgeon/be"
)

func TestCompileErrorFormat(t *testing.T) {
	err := Raise(KindSyntax, &TextSpan{StartLine: 3, StartCol: 7, EndLine: 3, EndCol: 8}, "esperado %s, mas veio %s", "SEMI", "IDENT (y)")
	be.Equal(t, err.Error(), "[linha 3, coluna 7] esperado SEMI, mas veio IDENT (y)")

	bare := Raise(KindSemantic, nil, "Rotina 'f' não declarada.")
	be.Equal(t, bare.Error(), "Rotina 'f' não declarada.")
}

func TestCatchErrors(t *testing.T) {
	stage := func() (err error) {
		defer CatchErrors(&err)

		panic(Raise(KindLexical, &TextSpan{StartLine: 1, StartCol: 1}, "Caractere inesperado: '%c'", '@'))
	}

	err := stage()
	var cerr *CompileError
	be.True(t, errors.As(err, &cerr))
	be.Equal(t, cerr.Kind, KindLexical)

	ice := func() (err error) {
		defer CatchErrors(&err)

		panic(ICE("tipo ausente para o nó %d", 4))
	}

	err = ice()
	var ierr *InternalError
	be.True(t, errors.As(err, &ierr))
	be.Equal(t, ierr.Message, "tipo ausente para o nó 4")
}

func TestCatchErrorsPropagatesForeignPanics(t *testing.T) {
	defer func() {
		x := recover()
		be.Equal(t, fmt.Sprint(x), "boom")
	}()

	func() (err error) {
		defer CatchErrors(&err)
		panic("boom")
	}()
}

func TestSourceSelection(t *testing.T) {
	src := "inteiro x;\nx = y;\n"

	sel := SourceSelection(src, &TextSpan{StartLine: 2, StartCol: 5, EndLine: 2, EndCol: 6})
	be.Equal(t, len(sel), 2)
	be.Equal(t, sel[0], "2 | x = y;")
	be.Equal(t, sel[1], "  |     ^")
}

func TestSourceSelectionTabsAndMultiline(t *testing.T) {
	src := "se (x > 1) entao\n\tx = 0;\nfimse"

	sel := SourceSelection(src, &TextSpan{StartLine: 1, StartCol: 15, EndLine: 2, EndCol: 3})
	be.Equal(t, len(sel), 4)
	be.Equal(t, sel[1], "  |               ^^")
	be.Equal(t, sel[2], "2 |     x = 0;")
	be.Equal(t, sel[3], "  | ^^^^^")

	be.Equal(t, len(SourceSelection(src, &TextSpan{StartLine: 9, StartCol: 1})), 0)
}
