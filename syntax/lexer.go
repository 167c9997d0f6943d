package syntax

import (
	"strings"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
)

// Lexer is responsible for tokenizing Portugol source text.
type Lexer struct {
	src     []rune
	pos     int
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:     []rune(src),
		tokBuff: &strings.Builder{},
		line:    1,
		col:     1,
	}
}

// Tokenize lexes the whole source text.  The returned token stream always ends
// with an EOF token.
func Tokenize(src string) ([]*Token, error) {
	l := NewLexer(src)

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks, nil
		}
	}
}

// NextToken retrieves the next token from the source text.  If the text has
// ended, this will be an EOF token positioned after the last character.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c := l.peek()

		switch {
		case c == -1:
			return &Token{Kind: TOK_EOF, Line: l.line, Col: l.col}, nil
		case c == '\n':
			l.pos++
			l.line++
			l.col = 1
		case c == ' ' || c == '\t' || c == '\r':
			l.skip()
		case c == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
		case c == '"':
			return l.lexStringLit()
		case isDecimalDigit(c):
			return l.lexNumericLit(), nil
		case isFirstIdentChar(c):
			return l.lexIdentOrKeyword(), nil
		default:
			return l.lexPunctOrOper()
		}
	}
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_DIV,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"=": TOK_ASSIGN,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	",": TOK_COMMA,
	";": TOK_SEMI,
}

// lexPunctOrOper lexes a punctuation or operator symbol.  Two character
// operators take priority over their one character prefixes.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	c := l.eat()

	if next := l.peek(); next != -1 {
		if _, ok := symbolPatterns[string(c)+string(next)]; ok {
			l.eat()
		}
	}

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		return nil, report.Raise(report.KindLexical, l.getSpan(), "Caractere inesperado: '%c'", c)
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
// Keywords are matched case-insensitively.
var keywordPatterns = map[string]int{
	"inteiro": TOK_INTEIRO,
	"real":    TOK_REAL,
	"cadeia":  TOK_CADEIA,

	"se":          TOK_SE,
	"entao":       TOK_ENTAO,
	"senao":       TOK_SENAO,
	"fimse":       TOK_FIMSE,
	"enquanto":    TOK_ENQUANTO,
	"faca":        TOK_FACA,
	"fimenquanto": TOK_FIMENQUANTO,

	"procedimento": TOK_PROCEDIMENTO,
	"funcao":       TOK_FUNCAO,
	"inicio":       TOK_INICIO,
	"fim":          TOK_FIM,
	"retorne":      TOK_RETORNE,
	"escreva":      TOK_ESCREVA,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.eat()

	for c := l.peek(); isFirstIdentChar(c) || isDecimalDigit(c); c = l.peek() {
		l.eat()
	}

	if kind, ok := keywordPatterns[strings.ToLower(l.tokBuff.String())]; ok {
		return l.makeToken(kind)
	}

	return l.makeToken(TOK_IDENT)
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes an integer or real literal.  A real literal must have at
// least one digit on both sides of the decimal point.
func (l *Lexer) lexNumericLit() *Token {
	l.mark()

	for isDecimalDigit(l.peek()) {
		l.eat()
	}

	if l.peek() == '.' && isDecimalDigit(l.peekAt(1)) {
		l.eat()

		for isDecimalDigit(l.peek()) {
			l.eat()
		}

		return l.makeToken(TOK_REALLIT)
	}

	return l.makeToken(TOK_INTLIT)
}

// lexStringLit lexes a string literal.  The quotes are trimmed off and escape
// sequences are kept verbatim.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		switch l.peek() {
		case -1:
			return nil, report.Raise(report.KindLexical, l.getSpan(), "Cadeia não terminada.")
		case '\n':
			return nil, report.Raise(report.KindLexical, l.getSpan(), "Cadeia não pode conter quebra de linha.")
		case '"':
			l.skip()
			return l.makeToken(TOK_STRINGLIT), nil
		case '\\':
			l.eat()

			switch l.peek() {
			case -1:
				return nil, report.Raise(report.KindLexical, l.getSpan(), "Cadeia não terminada.")
			case '\n':
				return nil, report.Raise(report.KindLexical, l.getSpan(), "Cadeia não pode conter quebra de linha.")
			default:
				l.eat()
			}
		default:
			l.eat()
		}
	}
}

// skipLineComment skips a `//` comment up to (but not including) the newline.
func (l *Lexer) skipLineComment() {
	for c := l.peek(); c != -1 && c != '\n'; c = l.peek() {
		l.skip()
	}
}

// -----------------------------------------------------------------------------

// peek returns the next rune of the source text without consuming it.  It
// returns -1 at the end of the text.
func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune `n` positions ahead of the current rune.
func (l *Lexer) peekAt(n int) rune {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}

	return -1
}

// eat consumes the next rune and writes it to the token buffer.
func (l *Lexer) eat() rune {
	c := l.src[l.pos]
	l.tokBuff.WriteRune(c)
	l.pos++
	l.col++
	return c
}

// skip consumes the next rune without writing it to the token buffer.
func (l *Lexer) skip() {
	l.pos++
	l.col++
}

// mark marks the current position as the start of a token.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken creates a token of the given kind from the token buffer and clears
// the buffer.
func (l *Lexer) makeToken(kind int) *Token {
	tok := &Token{
		Kind:  kind,
		Value: l.tokBuff.String(),
		Line:  l.startLine,
		Col:   l.startCol,
		Len:   l.col - l.startCol,
	}

	l.tokBuff.Reset()
	return tok
}

// getSpan returns the span from the marked position to the current position.
func (l *Lexer) getSpan() *report.TextSpan {
	endCol := l.col
	if endCol == l.startCol {
		endCol++
	}

	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    endCol,
	}
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
