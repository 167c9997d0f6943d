package syntax

import (
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"
	"github.com/Gabriel-c0Nsp/PortugolToC-compiler/typing"
)

// parseBlock parses statements until the parser reaches one of the given
// terminator kinds.  The terminator is not consumed.  Reaching the end of the
// file first is an error naming the first terminator.
func (p *Parser) parseBlock(terminators ...int) ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for !p.hasOneOf(terminators...) {
		if p.has(TOK_EOF) {
			return nil, p.reject(terminators[0])
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// stmt := var_decl | write_stmt | if_stmt | while_loop | proc_decl
//       | func_decl | return_stmt | assign_stmt | call_stmt ;
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.tok.Kind {
	case TOK_INTEIRO, TOK_REAL, TOK_CADEIA:
		return p.parseVarDecl()
	case TOK_ESCREVA:
		return p.parseWriteStmt()
	case TOK_SE:
		return p.parseIfStmt()
	case TOK_ENQUANTO:
		return p.parseWhileLoop()
	case TOK_PROCEDIMENTO:
		return p.parseProcDecl()
	case TOK_FUNCAO:
		return p.parseFuncDecl()
	case TOK_RETORNE:
		return p.parseReturnStmt()
	case TOK_IDENT:
		// The token after the identifier decides between an assignment and a
		// call statement.
		switch p.peekKind() {
		case TOK_ASSIGN:
			return p.parseAssignStmt()
		case TOK_LPAREN:
			return p.parseCallStmt()
		default:
			identTok := p.tok
			p.next()
			return nil, p.rejectWithMsg("Após identificador '%s', esperado '=' ou '('", identTok.Value)
		}
	}

	return nil, p.rejectWithMsg("Comando inesperado: %s", describeToken(p.tok))
}

// typeKeywords maps the type keywords to the type they name.
var typeKeywords = map[int]typing.PrimType{
	TOK_INTEIRO: typing.PrimInteger,
	TOK_REAL:    typing.PrimReal,
	TOK_CADEIA:  typing.PrimString,
}

// var_decl := type_kw 'IDENT' ';' ;
// type_kw := 'inteiro' | 'real' | 'cadeia' ;
func (p *Parser) parseVarDecl() (ast.Stmt, error) {
	typeTok := p.tok
	p.next()

	nameTok, err := p.want(TOK_IDENT)
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_SEMI); err != nil {
		return nil, err
	}

	return &ast.VarDecl{
		ASTBase:  p.ids.NewASTBaseOver(typeTok.Span(), p.lookbehind.Span()),
		Type:     typeKeywords[typeTok.Kind],
		Name:     nameTok.Value,
		NameSpan: nameTok.Span(),
	}, nil
}

// assign_stmt := 'IDENT' '=' expr ';' ;
func (p *Parser) parseAssignStmt() (ast.Stmt, error) {
	nameTok := p.tok
	p.next()

	if _, err := p.want(TOK_ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_SEMI); err != nil {
		return nil, err
	}

	return &ast.Assign{
		ASTBase:  p.ids.NewASTBaseOver(nameTok.Span(), p.lookbehind.Span()),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span(),
		Value:    value,
	}, nil
}

// call_stmt := call ';' ;
func (p *Parser) parseCallStmt() (ast.Stmt, error) {
	nameTok := p.tok
	p.next()

	call, err := p.parseCall(nameTok)
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_SEMI); err != nil {
		return nil, err
	}

	return &ast.CallStmt{
		ASTBase: p.ids.NewASTBaseOver(call.Span(), p.lookbehind.Span()),
		Call:    call,
	}, nil
}

// write_stmt := 'escreva' '(' expr ')' ';' ;
func (p *Parser) parseWriteStmt() (ast.Stmt, error) {
	startSpan := p.tok.Span()
	p.next()

	if _, err := p.want(TOK_LPAREN); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_RPAREN); err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_SEMI); err != nil {
		return nil, err
	}

	return &ast.Write{
		ASTBase: p.ids.NewASTBaseOver(startSpan, p.lookbehind.Span()),
		Value:   value,
	}, nil
}

// return_stmt := 'retorne' expr ';' ;
func (p *Parser) parseReturnStmt() (ast.Stmt, error) {
	startSpan := p.tok.Span()
	p.next()

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_SEMI); err != nil {
		return nil, err
	}

	p.returnCount++

	return &ast.Return{
		ASTBase: p.ids.NewASTBaseOver(startSpan, p.lookbehind.Span()),
		Value:   value,
	}, nil
}

// -----------------------------------------------------------------------------

// if_stmt := 'se' '(' condition ')' 'entao' {stmt} ['senao' {stmt}] 'fimse' ;
func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	startSpan := p.tok.Span()
	p.next()

	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_ENTAO); err != nil {
		return nil, err
	}

	thenBlock, err := p.parseBlock(TOK_FIMSE, TOK_SENAO)
	if err != nil {
		return nil, err
	}

	ifStmt := &ast.If{Cond: cond, Then: thenBlock}

	if p.has(TOK_SENAO) {
		p.next()

		elseBlock, err := p.parseBlock(TOK_FIMSE)
		if err != nil {
			return nil, err
		}

		ifStmt.Else = elseBlock
		ifStmt.HasElse = true
	}

	if _, err := p.want(TOK_FIMSE); err != nil {
		return nil, err
	}

	ifStmt.ASTBase = p.ids.NewASTBaseOver(startSpan, p.lookbehind.Span())
	return ifStmt, nil
}

// while_loop := 'enquanto' '(' condition ')' 'faca' {stmt} 'fimenquanto' ;
func (p *Parser) parseWhileLoop() (ast.Stmt, error) {
	startSpan := p.tok.Span()
	p.next()

	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_FACA); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(TOK_FIMENQUANTO)
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_FIMENQUANTO); err != nil {
		return nil, err
	}

	return &ast.While{
		ASTBase: p.ids.NewASTBaseOver(startSpan, p.lookbehind.Span()),
		Cond:    cond,
		Body:    body,
	}, nil
}

// parseParenCondition parses a condition wrapped in parentheses.
func (p *Parser) parseParenCondition() (ast.Expr, error) {
	if _, err := p.want(TOK_LPAREN); err != nil {
		return nil, err
	}

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_RPAREN); err != nil {
		return nil, err
	}

	return cond, nil
}
