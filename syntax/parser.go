package syntax

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is a recursive descent parser over a token stream.  All parsing
// functions assume that they begin with the parser centered on the first token
// of their production and must consume all tokens (including the last) of
// their production, leaving the parser on the next token.
type Parser struct {
	// toks is the token stream being parsed.  It always ends in an EOF token.
	toks []*Token

	// pos is the index of the current token.
	pos int

	// tok is the token the parser is positioned on.
	tok *Token

	// lookbehind is the token the parser was positioned on before `tok`.
	lookbehind *Token

	// ids hands out the IDs of the nodes the parser creates.
	ids *ast.IDGen

	// returnCount is the number of `retorne` statements parsed so far in the
	// enclosing function body.
	returnCount int
}

// NewParser creates a new parser for the given token stream.  An EOF token is
// appended if the stream does not end with one.
func NewParser(toks []*Token) *Parser {
	if len(toks) == 0 {
		toks = []*Token{{Kind: TOK_EOF, Line: 1, Col: 1}}
	} else if last := toks[len(toks)-1]; last.Kind != TOK_EOF {
		toks = append(toks, &Token{Kind: TOK_EOF, Line: last.Line, Col: last.Col + last.Len})
	}

	return &Parser{
		toks: toks,
		tok:  toks[0],
		ids:  &ast.IDGen{},
	}
}

// Parse parses a complete token stream into a program.
func Parse(toks []*Token) (*ast.Program, error) {
	return NewParser(toks).parseProgram()
}

// ParseSource lexes and parses source text into a program.
func ParseSource(src string) (*ast.Program, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	return Parse(toks)
}

// program := {stmt} 'EOF' ;
func (p *Parser) parseProgram() (*ast.Program, error) {
	stmts, err := p.parseBlock(TOK_EOF)
	if err != nil {
		return nil, err
	}

	return &ast.Program{Stmts: stmts, NodeCount: p.ids.Count()}, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.  The parser never moves past EOF.
func (p *Parser) next() {
	p.lookbehind = p.tok

	if p.pos < len(p.toks)-1 {
		p.pos++
	}

	p.tok = p.toks[p.pos]
}

// peekKind returns the kind of the token after the current token.
func (p *Parser) peekKind() int {
	if p.pos < len(p.toks)-1 {
		return p.toks[p.pos+1].Kind
	}

	return TOK_EOF
}

// has returns true if the parser is on a token of a given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// hasOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) hasOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// want asserts that the parser is on a token of the given kind and moves the
// parser forward.  It returns the matched token.
func (p *Parser) want(kind int) (*Token, error) {
	if p.has(kind) {
		tok := p.tok
		p.next()
		return tok, nil
	}

	return nil, p.reject(kind)
}

// -----------------------------------------------------------------------------

// reject returns an error for the current token given the expected token kind.
func (p *Parser) reject(expected int) error {
	return p.rejectWithMsg("Esperado %s, mas veio %s", KindName(expected), describeToken(p.tok))
}

// rejectWithMsg returns an error on the current token with a specific message.
func (p *Parser) rejectWithMsg(msg string, args ...interface{}) error {
	return p.errorOn(p.tok, msg, args...)
}

// errorOn returns an error on a given token.
func (p *Parser) errorOn(tok *Token, msg string, args ...interface{}) error {
	return report.Raise(report.KindSyntax, tok.Span(), msg, args...)
}

// describeToken renders a token as it appears in syntax errors.
func describeToken(tok *Token) string {
	if tok.Kind == TOK_EOF {
		return KindName(TOK_EOF)
	}

	return KindName(tok.Kind) + " (" + tok.Value + ")"
}
