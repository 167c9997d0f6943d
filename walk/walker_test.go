package walk

import (
	"errors"
	"testing"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/sem"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/syntax"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
	"github.com/nalgeon/be"
)

func analyze(t *testing.T, src string) (*ast.Program, *sem.SymbolTable, sem.TypeTable) {
	t.Helper()

	prog, err := syntax.ParseSource(src)
	be.Err(t, err, nil)

	table, types, err := Analyze(prog)
	be.Err(t, err, nil)

	return prog, table, types
}

func analyzeError(t *testing.T, src string) *report.CompileError {
	t.Helper()

	prog, err := syntax.ParseSource(src)
	be.Err(t, err, nil)

	_, _, err = Analyze(prog)

	var cerr *report.CompileError
	be.True(t, errors.As(err, &cerr))
	be.Equal(t, cerr.Kind, report.KindSemantic)

	return cerr
}

func TestIntegerWidensToReal(t *testing.T) {
	prog, _, types := analyze(t, "real y;\ny = 1;\ny = y + 2;")

	assign := prog.Stmts[1].(*ast.Assign)
	typ, ok := types.TypeOf(assign.Value)
	be.True(t, ok)
	be.Equal(t, typ, typing.PrimInteger)

	typ, ok = types.TypeOf(assign)
	be.True(t, ok)
	be.Equal(t, typ, typing.PrimReal)

	sum := prog.Stmts[2].(*ast.Assign).Value
	typ, _ = types.TypeOf(sum)
	be.Equal(t, typ, typing.PrimReal)
}

func TestRealDoesNotNarrowToInteger(t *testing.T) {
	cerr := analyzeError(t, "inteiro x;\nx = 2.5;")
	be.Equal(t, cerr.Message, "Atribuição incompatível: variável 'x' é inteiro, expressão é real.")
	be.Equal(t, cerr.Span.StartLine, 2)
}

func TestEveryExpressionIsTyped(t *testing.T) {
	src := `inteiro x;
x = 3;
se (x * 2 > 4) entao
  escreva("grande");
fimse`
	prog, _, types := analyze(t, src)

	cond := prog.Stmts[2].(*ast.If).Cond.(*ast.Comparison)
	for _, expr := range []ast.Expr{cond, cond.Lhs, cond.Rhs, cond.Lhs.(*ast.BinaryOp).Lhs} {
		_, ok := types.TypeOf(expr)
		be.True(t, ok)
	}

	typ, _ := types.TypeOf(cond)
	be.Equal(t, typ, typing.PrimBoolean)
}

func TestReturnTypesUnify(t *testing.T) {
	src := `funcao f(inteiro a)
inicio
  se (a > 0) entao
    retorne a;
  fimse
  retorne 0.5;
fim`
	_, table, _ := analyze(t, src)

	rs, ok := table.LookupRoutine("f")
	be.True(t, ok)
	be.Equal(t, rs.ReturnType, typing.PrimReal)
	be.Equal(t, rs.Kind, sem.RoutineFunc)
}

func TestInconsistentReturns(t *testing.T) {
	src := `funcao f(inteiro a)
inicio
  se (a > 0) entao
    retorne a;
  fimse
  retorne "nada";
fim`
	cerr := analyzeError(t, src)
	be.Equal(t, cerr.Message, "Retornos inconsistentes na função 'f': inteiro vs cadeia.")
}

func TestLocalsDoNotLeakOutOfBlocks(t *testing.T) {
	src := `inteiro x;
x = 1;
se (x > 0) entao
  inteiro y;
  y = 2;
fimse
y = 3;`
	cerr := analyzeError(t, src)
	be.Equal(t, cerr.Message, "Variável 'y' usada antes de declarar.")
	be.Equal(t, cerr.Span.StartLine, 7)
}

func TestShadowingInNestedBlock(t *testing.T) {
	src := `inteiro x;
se (1 > 0) entao
  cadeia x;
  x = "ok";
fimse
x = 2;`
	analyze(t, src)
}

func TestCallErrors(t *testing.T) {
	decls := `procedimento p(inteiro a, real b)
inicio
  escreva(a);
fim
`
	tests := []struct {
		src  string
		want string
	}{
		{"p(1);", "Chamada de 'p' com 1 args; esperado 2."},
		{`p(1, "x");`, "Arg 2 de 'p' incompatível: esperado real, veio cadeia."},
		{"p(1.5, 2);", "Arg 1 de 'p' incompatível: esperado inteiro, veio real."},
		{"q();", "Rotina 'q' não declarada."},
		{"inteiro x;\nx = p(1, 2);", "Procedimento 'p' não pode ser usado como expressão."},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			cerr := analyzeError(t, decls+test.src)
			be.Equal(t, cerr.Message, test.want)
		})
	}
}

func TestIntegerArgumentWidensToRealParam(t *testing.T) {
	analyze(t, "procedimento p(real v)\ninicio\n  escreva(v);\nfim\np(3);")
}

func TestRoutinesMayBeCalledBeforeDeclaration(t *testing.T) {
	src := `funcao a()
inicio
  retorne b() + 1;
fim
funcao b()
inicio
  retorne 2.0;
fim
real r;
r = a();`
	_, table, _ := analyze(t, src)

	rs, _ := table.LookupRoutine("a")
	be.Equal(t, rs.ReturnType, typing.PrimReal)
}

func TestRecursionUsesProvisionalReturnType(t *testing.T) {
	src := `funcao fat(inteiro n)
inicio
  se (n <= 1) entao
    retorne 1;
  fimse
  retorne n * fat(n - 1);
fim`
	_, table, _ := analyze(t, src)

	rs, _ := table.LookupRoutine("fat")
	be.Equal(t, rs.ReturnType, typing.PrimInteger)
}

func TestRecursionBeforeAnyReturn(t *testing.T) {
	src := `funcao f(inteiro n)
inicio
  retorne f(n);
fim`
	cerr := analyzeError(t, src)
	be.Equal(t, cerr.Message, "Tipo de retorno da função 'f' ainda não definido.")
}

func TestRecursionObservesStaleReturnType(t *testing.T) {
	src := `funcao f(inteiro n)
inicio
  se (n > 0) entao
    retorne n;
  fimse
  inteiro r;
  r = f(n - 1);
  retorne 0.5;
fim`
	cerr := analyzeError(t, src)
	be.Equal(t, cerr.Message, "Chamada recursiva de 'f' usa o tipo inteiro, mas a função retorna real.")
}

func TestReturnOutsideFunction(t *testing.T) {
	cerr := analyzeError(t, "procedimento p()\ninicio\n  retorne 1;\nfim")
	be.Equal(t, cerr.Message, "'retorne' só é permitido dentro de função.")
}

func TestNestedRoutineDeclaration(t *testing.T) {
	src := `se (1 > 0) entao
  procedimento p()
  inicio
    escreva(1);
  fim
fimse`
	cerr := analyzeError(t, src)
	be.Equal(t, cerr.Message, "Rotinas só podem ser declaradas no nível global: 'p'.")
}

func TestConditionMustBeBoolean(t *testing.T) {
	cerr := analyzeError(t, "inteiro x;\nenquanto (x) faca\n  x = x - 1;\nfimenquanto")
	be.Equal(t, cerr.Message, "Condição do 'enquanto' deve ser bool, mas é inteiro.")
}

func TestStringOperandsAreRejected(t *testing.T) {
	cerr := analyzeError(t, "cadeia s;\ns = \"a\" + \"b\";")
	be.Equal(t, cerr.Message, "Operação '+' não suportada para cadeia.")

	cerr = analyzeError(t, "cadeia s;\nse (s == \"a\") entao\nfimse")
	be.Equal(t, cerr.Message, "Comparação '==' não suportada para cadeia.")
}

func TestRedeclarationInSameScope(t *testing.T) {
	cerr := analyzeError(t, "inteiro x;\nreal x;")
	be.Equal(t, cerr.Message, "Identificador 'x' já declarado neste escopo.")

	cerr = analyzeError(t, "procedimento p(inteiro a, real a)\ninicio\nfim")
	be.Equal(t, cerr.Message, "Identificador 'a' já declarado neste escopo.")
}

func TestRoutineParamsAreScopedToBody(t *testing.T) {
	src := `procedimento p(inteiro a)
inicio
  escreva(a);
fim
a = 1;`
	cerr := analyzeError(t, src)
	be.Equal(t, cerr.Message, "Variável 'a' usada antes de declarar.")
}

func TestOnDemandAnalysisKeepsCallerLocals(t *testing.T) {
	src := `funcao a(inteiro n)
inicio
  inteiro local;
  local = n;
  local = b() + local;
  retorne local;
fim
funcao b()
inicio
  retorne 7;
fim`
	_, table, _ := analyze(t, src)
	be.Equal(t, table.Depth(), 1)
}

func TestVariablesHideRoutinesOfTheSameName(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"local",
			`funcao f()
inicio
  retorne 1;
fim
procedimento p()
inicio
  inteiro f;
  f = f();
fim`,
			"[linha 8, coluna 7] Rotina 'f' não declarada.",
		},
		{
			"parameter",
			`funcao g(inteiro g)
inicio
  retorne g(1);
fim`,
			"[linha 3, coluna 11] Rotina 'g' não declarada.",
		},
		{
			"block",
			`procedimento p()
inicio
  escreva(1);
fim
se (1 > 0) entao
  inteiro p;
  p();
fimse`,
			"[linha 7, coluna 3] Rotina 'p' não declarada.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cerr := analyzeError(t, test.src)
			be.Equal(t, cerr.Error(), test.want)
		})
	}
}

func TestRoutineVisibleAgainOutsideShadowingBlock(t *testing.T) {
	src := `procedimento p()
inicio
  escreva(1);
fim
se (1 > 0) entao
  inteiro p;
  p = 2;
fimse
p();`
	analyze(t, src)
}

func TestCallStatementsRecordNone(t *testing.T) {
	src := `funcao um()
inicio
  retorne 1;
fim
procedimento p()
inicio
  um();
  dois();
fim
funcao dois()
inicio
  retorne 2.0;
fim`
	prog, table, types := analyze(t, src)

	body := prog.Stmts[1].(*ast.ProcDecl).Body
	for _, stmt := range body {
		typ, ok := types.TypeOf(stmt.(*ast.CallStmt).Call)
		be.True(t, ok)
		be.Equal(t, typ, typing.PrimNone)
	}

	rs, _ := table.LookupRoutine("dois")
	be.Equal(t, rs.ReturnType, typing.PrimReal)
}
