package generate

import (
	"errors"
	"strings"
	"testing"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/syntax"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/walk"
	"github.com/nalgeon/be"
)

func generateIR(t *testing.T, src string) string {
	t.Helper()

	prog, err := syntax.ParseSource(src)
	be.Err(t, err, nil)

	table, types, err := walk.Analyze(prog)
	be.Err(t, err, nil)

	mod, err := Generate(prog, table, types, Options{StringBufferSize: 100})
	be.Err(t, err, nil)

	return mod.String()
}

func assertContains(t *testing.T, ir string, snippets ...string) {
	t.Helper()

	for _, snippet := range snippets {
		if !strings.Contains(ir, snippet) {
			t.Errorf("missing %q in:\n%s", snippet, ir)
		}
	}
}

func TestGenerateMain(t *testing.T) {
	ir := generateIR(t, "inteiro x;\nx = 10;\nse (x > 10) entao\n  x = x + 1;\nsenao\n  x = 0;\nfimse\nescreva(x);")

	assertContains(t, ir,
		"define i32 @main()",
		"alloca i32",
		"store i32 10",
		"icmp sgt i32",
		"add i32",
		"declare i32 @printf(",
		"ret i32 0",
	)
}

func TestGenerateRoutines(t *testing.T) {
	src := `funcao media(real a, real b)
inicio
  retorne (a + b) / 2;
fim
procedimento saudar(cadeia nome)
inicio
  escreva(nome);
fim
real m;
m = media(1, 2.5);
saudar("Ana");`
	ir := generateIR(t, src)

	assertContains(t, ir,
		"define float @portugol.media(float %a, float %b)",
		"fadd float",
		"fdiv float",
		"sitofp i32 2 to float",
		"define void @portugol.saudar(i8* %nome)",
		"call float @portugol.media(",
		"call void @portugol.saudar(",
		`c"Ana\00"`,
	)
}

func TestGenerateStrings(t *testing.T) {
	ir := generateIR(t, "cadeia s;\ns = \"ola\";\nescreva(s);")

	assertContains(t, ir,
		"alloca [100 x i8]",
		"declare i32 @snprintf(",
		"i64 100",
		`c"%s\00"`,
	)
}

func TestGenerateRealWrite(t *testing.T) {
	ir := generateIR(t, "real r;\nr = 1.5;\nescreva(r * 2);")
	assertContains(t, ir, "fmul float", "fpext float", "to double", `c"%f\00"`)
}

func TestGenerateWhileAndComparisonWidening(t *testing.T) {
	src := `inteiro i;
real limite;
limite = 2.5;
i = 0;
enquanto (i < limite) faca
  i = i + 1;
fimenquanto`
	ir := generateIR(t, src)

	assertContains(t, ir, "fcmp olt float", "br i1")
}

func TestStringReturningFunctionIsInternalError(t *testing.T) {
	prog, err := syntax.ParseSource("funcao nome()\ninicio\n  retorne \"x\";\nfim")
	be.Err(t, err, nil)

	table, types, err := walk.Analyze(prog)
	be.Err(t, err, nil)

	_, err = Generate(prog, table, types, Options{})

	var ice *report.InternalError
	be.True(t, errors.As(err, &ice))
}

func TestDecodeEscapes(t *testing.T) {
	be.Equal(t, decodeEscapes(`a\nb`), "a\nb")
	be.Equal(t, decodeEscapes(`\"q\"`), `"q"`)
	be.Equal(t, decodeEscapes(`tab\t\\`), "tab\t\\")
	be.Equal(t, decodeEscapes(`fim\`), `fim\`)
}
