package syntax

import "github.com/Gabriel-c0Nsp/PortugolToC-compiler/ast"

// proc_decl := 'procedimento' routine_core ;
func (p *Parser) parseProcDecl() (ast.Stmt, error) {
	startSpan := p.tok.Span()
	p.next()

	routine, err := p.parseRoutineCore()
	if err != nil {
		return nil, err
	}

	return &ast.ProcDecl{
		ASTBase: p.ids.NewASTBaseOver(startSpan, p.lookbehind.Span()),
		Routine: *routine,
	}, nil
}

// func_decl := 'funcao' routine_core ;
//
// The body of a function must contain at least one `retorne`.
func (p *Parser) parseFuncDecl() (ast.Stmt, error) {
	startSpan := p.tok.Span()
	p.next()

	enclosingReturnCount := p.returnCount
	p.returnCount = 0
	defer func() {
		p.returnCount = enclosingReturnCount
	}()

	routine, err := p.parseRoutineCore()
	if err != nil {
		return nil, err
	}

	if p.returnCount == 0 {
		return nil, p.errorOn(p.lookbehind, "Função '%s' sem 'retorne'.", routine.Name)
	}

	return &ast.FuncDecl{
		ASTBase: p.ids.NewASTBaseOver(startSpan, p.lookbehind.Span()),
		Routine: *routine,
	}, nil
}

// routine_core := 'IDENT' '(' [param_list] ')' 'inicio' {stmt} 'fim' ;
func (p *Parser) parseRoutineCore() (*ast.Routine, error) {
	nameTok, err := p.want(TOK_IDENT)
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_LPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_RPAREN); err != nil {
		return nil, err
	}

	if _, err := p.want(TOK_INICIO); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(TOK_FIM)
	if err != nil {
		return nil, err
	}

	endTok, err := p.want(TOK_FIM)
	if err != nil {
		return nil, err
	}

	return &ast.Routine{
		Name:     nameTok.Value,
		NameSpan: nameTok.Span(),
		Params:   params,
		Body:     body,
		EndSpan:  endTok.Span(),
	}, nil
}

// param_list := param {',' param} ;
// param := type_kw 'IDENT' ;
func (p *Parser) parseParamList() ([]ast.Param, error) {
	if p.has(TOK_RPAREN) {
		return nil, nil
	}

	var params []ast.Param
	for {
		typ, ok := typeKeywords[p.tok.Kind]
		if !ok {
			return nil, p.rejectWithMsg("Esperado tipo do parâmetro, mas veio %s", describeToken(p.tok))
		}

		p.next()

		nameTok, err := p.want(TOK_IDENT)
		if err != nil {
			return nil, err
		}

		params = append(params, ast.Param{
			Type: typ,
			Name: nameTok.Value,
			Span: nameTok.Span(),
		})

		if p.has(TOK_COMMA) {
			p.next()
			continue
		}

		return params, nil
	}
}
