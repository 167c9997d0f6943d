package syntax

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/nalgeon/be"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()

	toks, err := Tokenize(src)
	be.Err(t, err, nil)

	vals := make([]Token, len(toks))
	for i, tok := range toks {
		vals[i] = *tok
	}

	return vals
}

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()

	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("token stream mismatch:\n%s", strings.Join(diff, "\n"))
	}
}

func TestTokenizeAssignment(t *testing.T) {
	assertTokens(t, lexAll(t, "x = 10;"), []Token{
		{Kind: TOK_IDENT, Value: "x", Line: 1, Col: 1, Len: 1},
		{Kind: TOK_ASSIGN, Value: "=", Line: 1, Col: 3, Len: 1},
		{Kind: TOK_INTLIT, Value: "10", Line: 1, Col: 5, Len: 2},
		{Kind: TOK_SEMI, Value: ";", Line: 1, Col: 7, Len: 1},
		{Kind: TOK_EOF, Line: 1, Col: 8},
	})
}

func TestTokenizePositionsAcrossLines(t *testing.T) {
	src := "inteiro x; // contador\n\tescreva(\"oi\\n\");\n"

	assertTokens(t, lexAll(t, src), []Token{
		{Kind: TOK_INTEIRO, Value: "inteiro", Line: 1, Col: 1, Len: 7},
		{Kind: TOK_IDENT, Value: "x", Line: 1, Col: 9, Len: 1},
		{Kind: TOK_SEMI, Value: ";", Line: 1, Col: 10, Len: 1},
		{Kind: TOK_ESCREVA, Value: "escreva", Line: 2, Col: 2, Len: 7},
		{Kind: TOK_LPAREN, Value: "(", Line: 2, Col: 9, Len: 1},
		{Kind: TOK_STRINGLIT, Value: `oi\n`, Line: 2, Col: 10, Len: 6},
		{Kind: TOK_RPAREN, Value: ")", Line: 2, Col: 16, Len: 1},
		{Kind: TOK_SEMI, Value: ";", Line: 2, Col: 17, Len: 1},
		{Kind: TOK_EOF, Line: 3, Col: 1},
	})
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	toks := lexAll(t, "SE Entao fimSe Contador")

	be.Equal(t, toks[0].Kind, TOK_SE)
	be.Equal(t, toks[0].Value, "SE")
	be.Equal(t, toks[1].Kind, TOK_ENTAO)
	be.Equal(t, toks[2].Kind, TOK_FIMSE)
	be.Equal(t, toks[3].Kind, TOK_IDENT)
	be.Equal(t, toks[3].Value, "Contador")
}

func TestNumericLiterals(t *testing.T) {
	toks := lexAll(t, "3.14 10 0.5")

	be.Equal(t, toks[0].Kind, TOK_REALLIT)
	be.Equal(t, toks[0].Value, "3.14")
	be.Equal(t, toks[1].Kind, TOK_INTLIT)
	be.Equal(t, toks[2].Kind, TOK_REALLIT)
}

func TestOperatorsPreferLongestMatch(t *testing.T) {
	toks := lexAll(t, "== != <= >= < > = + - * / , ( )")

	want := []int{
		TOK_EQ, TOK_NEQ, TOK_LTEQ, TOK_GTEQ, TOK_LT, TOK_GT, TOK_ASSIGN,
		TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_DIV, TOK_COMMA, TOK_LPAREN, TOK_RPAREN,
		TOK_EOF,
	}

	be.Equal(t, len(toks), len(want))
	for i, kind := range want {
		be.Equal(t, toks[i].Kind, kind)
	}
}

func TestCommentRunsToEndOfLine(t *testing.T) {
	toks := lexAll(t, "// tudo isto é comentário = ;\nx")

	be.Equal(t, len(toks), 2)
	be.Equal(t, toks[0].Kind, TOK_IDENT)
	be.Equal(t, toks[0].Line, 2)
}

func TestDivisionIsNotAComment(t *testing.T) {
	toks := lexAll(t, "a / b")

	be.Equal(t, toks[1].Kind, TOK_DIV)
	be.Equal(t, toks[2].Kind, TOK_IDENT)
}

func TestLexicalErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x = @;", "[linha 1, coluna 5] Caractere inesperado: '@'"},
		{"x = 7.;", "[linha 1, coluna 6] Caractere inesperado: '.'"},
		{"se (x ! 1)", "[linha 1, coluna 7] Caractere inesperado: '!'"},
		{"inteiro x;\nx = \"abc", "[linha 2, coluna 5] Cadeia não terminada."},
		{"escreva(\"a\nb\");", "[linha 1, coluna 9] Cadeia não pode conter quebra de linha."},
	}

	for _, c := range cases {
		_, err := Tokenize(c.src)
		be.True(t, err != nil)
		be.Equal(t, err.Error(), c.want)
	}
}

func TestStringKeepsEscapedQuotes(t *testing.T) {
	toks := lexAll(t, `"a\"b"`)

	be.Equal(t, toks[0].Kind, TOK_STRINGLIT)
	be.Equal(t, toks[0].Value, `a\"b`)
	be.Equal(t, toks[0].Len, 6)
}
