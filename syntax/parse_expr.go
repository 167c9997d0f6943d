package syntax

import (
	"strconv"

	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
)

// relOps maps the relational token kinds to their comparison operator.
var relOps = map[int]ast.CompareOp{
	TOK_GT:   ast.OpGt,
	TOK_LT:   ast.OpLt,
	TOK_GTEQ: ast.OpGtEq,
	TOK_LTEQ: ast.OpLtEq,
	TOK_EQ:   ast.OpEq,
	TOK_NEQ:  ast.OpNeq,
}

// condition := expr [rel_op expr] ;
// rel_op := '>' | '<' | '>=' | '<=' | '==' | '!=' ;
func (p *Parser) parseCondition() (ast.Expr, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	op, ok := relOps[p.tok.Kind]
	if !ok {
		return lhs, nil
	}

	p.next()

	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Comparison{
		ASTBase: p.ids.NewASTBaseOver(lhs.Span(), rhs.Span()),
		Op:      op,
		Lhs:     lhs,
		Rhs:     rhs,
	}, nil
}

// expr := term {('+' | '-') term} ;
func (p *Parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.hasOneOf(TOK_PLUS, TOK_MINUS) {
		op := ast.OpAdd
		if p.has(TOK_MINUS) {
			op = ast.OpSub
		}

		p.next()

		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		lhs = &ast.BinaryOp{
			ASTBase: p.ids.NewASTBaseOver(lhs.Span(), rhs.Span()),
			Op:      op,
			Lhs:     lhs,
			Rhs:     rhs,
		}
	}

	return lhs, nil
}

// term := factor {('*' | '/') factor} ;
func (p *Parser) parseTerm() (ast.Expr, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.hasOneOf(TOK_STAR, TOK_DIV) {
		op := ast.OpMul
		if p.has(TOK_DIV) {
			op = ast.OpDiv
		}

		p.next()

		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		lhs = &ast.BinaryOp{
			ASTBase: p.ids.NewASTBaseOver(lhs.Span(), rhs.Span()),
			Op:      op,
			Lhs:     lhs,
			Rhs:     rhs,
		}
	}

	return lhs, nil
}

// factor := 'INTLIT' | 'REALLIT' | 'STRINGLIT' | 'IDENT' | call | '(' expr ')' ;
func (p *Parser) parseFactor() (ast.Expr, error) {
	tok := p.tok

	switch tok.Kind {
	case TOK_INTLIT:
		p.next()

		// Integer literals become C `int`s.
		value, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			return nil, p.errorOn(tok, "Literal inteiro fora do intervalo: %s", tok.Value)
		}

		return &ast.IntLit{
			ASTBase: p.ids.NewASTBaseOn(tok.Span()),
			Value:   value,
		}, nil
	case TOK_REALLIT:
		p.next()

		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorOn(tok, "Literal real inválido: %s", tok.Value)
		}

		return &ast.RealLit{
			ASTBase: p.ids.NewASTBaseOn(tok.Span()),
			Value:   value,
			Text:    tok.Value,
		}, nil
	case TOK_STRINGLIT:
		p.next()

		return &ast.StringLit{
			ASTBase: p.ids.NewASTBaseOn(tok.Span()),
			Value:   tok.Value,
		}, nil
	case TOK_IDENT:
		p.next()

		if p.has(TOK_LPAREN) {
			return p.parseCall(tok)
		}

		return &ast.VarRef{
			ASTBase: p.ids.NewASTBaseOn(tok.Span()),
			Name:    tok.Value,
		}, nil
	case TOK_LPAREN:
		p.next()

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.want(TOK_RPAREN); err != nil {
			return nil, err
		}

		return expr, nil
	}

	return nil, p.rejectWithMsg("Esperado expressão, mas veio %s", describeToken(tok))
}

// call := 'IDENT' '(' [expr {',' expr}] ')' ;
//
// The parser is positioned on the opening parenthesis: the identifier has
// already been consumed and is passed in as `nameTok`.
func (p *Parser) parseCall(nameTok *Token) (*ast.Call, error) {
	if _, err := p.want(TOK_LPAREN); err != nil {
		return nil, err
	}

	var args []ast.Expr
	if !p.has(TOK_RPAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if p.has(TOK_COMMA) {
				p.next()
				continue
			}

			break
		}
	}

	if _, err := p.want(TOK_RPAREN); err != nil {
		return nil, err
	}

	return &ast.Call{
		ASTBase:  p.ids.NewASTBaseOver(nameTok.Span(), p.lookbehind.Span()),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span(),
		Args:     args,
	}, nil
}
