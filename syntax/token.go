package syntax

import "github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  This is the lexeme as written in the
	// source except for string literals whose quotes are trimmed off.
	Value string

	// The line and column of the first character of the token.
	Line, Col int

	// The number of source characters the token covers.
	Len int
}

// Span returns the text span over which the token exists.
func (t *Token) Span() *report.TextSpan {
	return &report.TextSpan{
		StartLine: t.Line,
		StartCol:  t.Col,
		EndLine:   t.Line,
		EndCol:    t.Col + t.Len,
	}
}

// Enumeration of token kinds.
const (
	TOK_INTEIRO = iota
	TOK_REAL
	TOK_CADEIA

	TOK_SE
	TOK_ENTAO
	TOK_SENAO
	TOK_FIMSE
	TOK_ENQUANTO
	TOK_FACA
	TOK_FIMENQUANTO

	TOK_PROCEDIMENTO
	TOK_FUNCAO
	TOK_INICIO
	TOK_FIM
	TOK_RETORNE
	TOK_ESCREVA

	TOK_INTLIT
	TOK_REALLIT
	TOK_STRINGLIT
	TOK_IDENT

	TOK_EQ
	TOK_NEQ
	TOK_LTEQ
	TOK_GTEQ
	TOK_LT
	TOK_GT

	TOK_ASSIGN
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV

	TOK_SEMI
	TOK_COMMA
	TOK_LPAREN
	TOK_RPAREN

	TOK_EOF
)

// tokenNames maps token kinds to the symbolic names used in diagnostics.
var tokenNames = map[int]string{
	TOK_INTEIRO:      "KW_INTEIRO",
	TOK_REAL:         "KW_REAL",
	TOK_CADEIA:       "KW_CADEIA",
	TOK_SE:           "KW_SE",
	TOK_ENTAO:        "KW_ENTAO",
	TOK_SENAO:        "KW_SENAO",
	TOK_FIMSE:        "KW_FIMSE",
	TOK_ENQUANTO:     "KW_ENQUANTO",
	TOK_FACA:         "KW_FACA",
	TOK_FIMENQUANTO:  "KW_FIMENQUANTO",
	TOK_PROCEDIMENTO: "KW_PROCEDIMENTO",
	TOK_FUNCAO:       "KW_FUNCAO",
	TOK_INICIO:       "KW_INICIO",
	TOK_FIM:          "KW_FIM",
	TOK_RETORNE:      "KW_RETORNE",
	TOK_ESCREVA:      "KW_ESCREVA",
	TOK_INTLIT:       "NUM_INT",
	TOK_REALLIT:      "NUM_REAL",
	TOK_STRINGLIT:    "STRING",
	TOK_IDENT:        "IDENT",
	TOK_EQ:           "EQ",
	TOK_NEQ:          "NE",
	TOK_LTEQ:         "LE",
	TOK_GTEQ:         "GE",
	TOK_LT:           "LT",
	TOK_GT:           "GT",
	TOK_ASSIGN:       "ASSIGN",
	TOK_PLUS:         "PLUS",
	TOK_MINUS:        "MINUS",
	TOK_STAR:         "MUL",
	TOK_DIV:          "DIV",
	TOK_SEMI:         "SEMI",
	TOK_COMMA:        "COMMA",
	TOK_LPAREN:       "LPAREN",
	TOK_RPAREN:       "RPAREN",
	TOK_EOF:          "EOF",
}

// KindName returns the symbolic name of a token kind.
func KindName(kind int) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}

	return "DESCONHECIDO"
}

func (t *Token) String() string {
	if t.Kind == TOK_EOF {
		return KindName(t.Kind)
	}

	return KindName(t.Kind) + "(" + t.Value + ")"
}
