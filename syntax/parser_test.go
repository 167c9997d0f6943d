package syntax

import (
	"testing"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/nalgeon/be"
)

func parseSExpr(t *testing.T, src string) string {
	t.Helper()

	prog, err := ParseSource(src)
	be.Err(t, err, nil)

	return ast.SExpr(prog)
}

func parseError(t *testing.T, src string) string {
	t.Helper()

	_, err := ParseSource(src)
	be.True(t, err != nil)

	return err.Error()
}

func TestArithmeticPrecedence(t *testing.T) {
	be.Equal(t, parseSExpr(t, "x = 2 + 3 * 4;"), "(= x (+ 2 (* 3 4)))")
	be.Equal(t, parseSExpr(t, "x = (2 + 3) * 4;"), "(= x (* (+ 2 3) 4))")
	be.Equal(t, parseSExpr(t, "x = 8 - 4 - 2;"), "(= x (- (- 8 4) 2))")
	be.Equal(t, parseSExpr(t, "x = a / b * c + d;"), "(= x (+ (* (/ a b) c) d))")
}

func TestPrecedenceTreeShape(t *testing.T) {
	prog, err := ParseSource("escreva(2 + 3 * 4);")
	be.Err(t, err, nil)

	write := prog.Stmts[0].(*ast.Write)
	add, ok := write.Value.(*ast.BinaryOp)
	be.True(t, ok)
	be.Equal(t, add.Op, ast.OpAdd)

	mul, ok := add.Rhs.(*ast.BinaryOp)
	be.True(t, ok)
	be.Equal(t, mul.Op, ast.OpMul)
	be.Equal(t, add.Lhs.(*ast.IntLit).Value, int64(2))
}

func TestStatements(t *testing.T) {
	src := `inteiro x;
real y;
cadeia nome;
nome = "Ana";
se (x >= 10) entao
  escreva(x);
senao
  y = x / 2;
fimse
enquanto (x < 3) faca
  x = x + 1;
fimenquanto`

	want := `(decl inteiro x)
(decl real y)
(decl cadeia nome)
(= nome "Ana")
(se (>= x 10) (entao (escreva x)) (senao (= y (/ x 2))))
(enquanto (< x 3) (faca (= x (+ x 1))))`

	be.Equal(t, parseSExpr(t, src), want)
}

func TestIfWithoutElse(t *testing.T) {
	prog, err := ParseSource("se (x) entao fimse")
	be.Err(t, err, nil)

	ifStmt := prog.Stmts[0].(*ast.If)
	be.True(t, !ifStmt.HasElse)
	be.Equal(t, len(ifStmt.Then), 0)

	prog, err = ParseSource("se (x) entao senao fimse")
	be.Err(t, err, nil)
	be.True(t, prog.Stmts[0].(*ast.If).HasElse)
}

func TestRoutines(t *testing.T) {
	src := `procedimento saudar(cadeia nome, inteiro vezes)
inicio
  escreva(nome);
fim
funcao dobro(real v)
inicio
  retorne v * 2;
fim
funcao zero()
inicio
  se (1 > 0) entao
    retorne 0;
  fimse
fim
saudar("Ana", dobro(1.5));`

	want := `(procedimento saudar ((cadeia nome) (inteiro vezes)) (inicio (escreva nome)))
(funcao dobro ((real v)) (inicio (retorne (* v 2))))
(funcao zero () (inicio (se (> 1 0) (entao (retorne 0)))))
(call saudar "Ana" (call dobro 1.5))`

	be.Equal(t, parseSExpr(t, src), want)
}

func TestNodeIDsAreUnique(t *testing.T) {
	prog, err := ParseSource("inteiro x;\nx = 1 + 2 * x;\nescreva(x);")
	be.Err(t, err, nil)

	assign := prog.Stmts[1].(*ast.Assign)
	add := assign.Value.(*ast.BinaryOp)
	mul := add.Rhs.(*ast.BinaryOp)

	seen := map[ast.NodeID]bool{}
	for _, n := range []ast.Node{prog.Stmts[0], assign, add, add.Lhs, mul, mul.Lhs, mul.Rhs, prog.Stmts[2]} {
		be.True(t, n.ID() != 0)
		be.True(t, !seen[n.ID()])
		seen[n.ID()] = true
	}

	be.Equal(t, prog.NodeCount, 9)
}

func TestSyntaxErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"inteiro x\nx = 1;", "[linha 2, coluna 1] Esperado SEMI, mas veio IDENT (x)"},
		{"x 1;", "[linha 1, coluna 3] Após identificador 'x', esperado '=' ou '('"},
		{"x = ;", "[linha 1, coluna 5] Esperado expressão, mas veio SEMI (;)"},
		{"se (x > 1 > 2) entao fimse", "[linha 1, coluna 11] Esperado RPAREN, mas veio GT (>)"},
		{"enquanto (x) faca\n x = 1;", "[linha 2, coluna 8] Esperado KW_FIMENQUANTO, mas veio EOF"},
		{"funcao f()\ninicio\n escreva(1);\nfim", "[linha 4, coluna 1] Função 'f' sem 'retorne'."},
		{"procedimento p(x) inicio fim", "[linha 1, coluna 16] Esperado tipo do parâmetro, mas veio IDENT (x)"},
		{"x = 99999999999;", "[linha 1, coluna 5] Literal inteiro fora do intervalo: 99999999999"},
		{"fimse", "[linha 1, coluna 1] Comando inesperado: KW_FIMSE (fimse)"},
		{"x = y > 1;", "[linha 1, coluna 7] Esperado SEMI, mas veio GT (>)"},
	}

	for _, c := range cases {
		be.Equal(t, parseError(t, c.src), c.want)
	}
}

func TestParseAppendsMissingEOF(t *testing.T) {
	prog, err := Parse([]*Token{
		{Kind: TOK_ESCREVA, Value: "escreva", Line: 1, Col: 1, Len: 7},
		{Kind: TOK_LPAREN, Value: "(", Line: 1, Col: 8, Len: 1},
		{Kind: TOK_INTLIT, Value: "1", Line: 1, Col: 9, Len: 1},
		{Kind: TOK_RPAREN, Value: ")", Line: 1, Col: 10, Len: 1},
		{Kind: TOK_SEMI, Value: ";", Line: 1, Col: 11, Len: 1},
	})
	be.Err(t, err, nil)
	be.Equal(t, len(prog.Stmts), 1)
}
