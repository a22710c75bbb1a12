package parser

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/token"
)

// stripDelims removes the single leading and trailing quote byte a CHAR or
// STRING lexeme always carries.
func stripDelims(lexeme string) string {
	if len(lexeme) < 2 {
		return ""
	}
	return lexeme[1 : len(lexeme)-1]
}

func (p *Parser) parsePrimary() ast.Expr {
	switch {
	case p.curTokenIs(token.NUMBER):
		tok := p.curToken
		p.nextToken()
		return &ast.Number{Location: tok.Loc, Lexeme: tok.Lexeme}
	case p.curTokenIs(token.CHAR):
		tok := p.curToken
		p.nextToken()
		return &ast.Character{Location: tok.Loc, Payload: stripDelims(tok.Lexeme)}
	case p.curTokenIs(token.STRING):
		tok := p.curToken
		p.nextToken()
		return &ast.StringLit{Location: tok.Loc, Payload: stripDelims(tok.Lexeme)}
	case p.curIsKeyword("true"):
		tok := p.curToken
		p.nextToken()
		return &ast.Boolean{Location: tok.Loc, Value: true}
	case p.curIsKeyword("false"):
		tok := p.curToken
		p.nextToken()
		return &ast.Boolean{Location: tok.Loc, Value: false}
	case p.curTokenIs(token.IDENT):
		tok := p.curToken
		p.nextToken()
		return &ast.Var{Location: tok.Loc, Name: tok.Lexeme}
	case p.curTokenIs(token.LPAREN):
		return p.parseParenOrTuple()
	case p.curTokenIs(token.LBRACKET):
		return p.parseArrayLit()
	case p.curIsKeyword("if"):
		return p.parseIf()
	case p.curIsKeyword("for"):
		return p.parseFor()
	case p.curIsKeyword("while"):
		return p.parseWhile()
	case p.curIsKeyword("match"):
		return p.parseMatch()
	case p.curIsKeyword("fun"):
		return p.parseAnonFunc()
	default:
		p.fail(p.curToken.Loc, "unexpected token %q in expression", p.curToken.Lexeme)
		panic("unreachable")
	}
}

// parseParenOrTuple disambiguates `()`, `(e)`, and `(e1, e2, ...)`.
func (p *Parser) parseParenOrTuple() ast.Expr {
	loc := p.curToken.Loc
	p.nextToken() // consume '('
	if p.curTokenIs(token.RPAREN) {
		rloc := p.curToken.Loc
		p.nextToken()
		return &ast.Unit{Location: token.Span(loc, rloc)}
	}
	first := p.parseExpr(LOWEST)
	if !p.curTokenIs(token.COMMA) {
		p.expect(token.RPAREN, "')'")
		return first
	}
	elems := []ast.Expr{first}
	for p.curTokenIs(token.COMMA) {
		p.nextToken()
		elems = append(elems, p.parseExpr(LOWEST))
	}
	rparen := p.expect(token.RPAREN, "')'")
	return &ast.TupleLit{Location: token.Span(loc, rparen.Loc), Elements: elems}
}

func (p *Parser) parseArrayLit() ast.Expr {
	loc := p.curToken.Loc
	p.nextToken() // consume '['
	var elems []ast.Expr
	for !p.curTokenIs(token.RBRACKET) {
		elems = append(elems, p.parseExpr(LOWEST))
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	rb := p.expect(token.RBRACKET, "']'")
	return &ast.ArrayLit{Location: token.Span(loc, rb.Loc), Elements: elems}
}

// The block opening column for then/else/do/arrow bodies is always the
// column of the enclosing construct's own leading keyword (`if`, `for`,
// `while`, `fun`, the arm's pattern) rather than of `then`/`do`/`->`
// themselves: a body is indented relative to the statement it belongs to,
// which usually starts well to the left of those inner keywords.
func (p *Parser) parseIf() ast.Expr {
	loc := p.curToken.Loc
	ifCol := loc.Column
	p.nextToken() // consume 'if'
	cond := p.parseExpr(LOWEST)
	p.expectKeyword("then")
	thenBlock := p.requireBlock(p.parseBlock(ifCol, "else"), "then")
	var elseBlock *ast.Block
	if p.curIsKeyword("else") {
		p.nextToken()
		elseBlock = p.requireBlock(p.parseBlock(ifCol), "else")
	}
	end := thenBlock.Location
	if elseBlock != nil {
		end = elseBlock.Location
	}
	return &ast.If{Location: token.Span(loc, end), Cond: cond, Then: thenBlock, Else: elseBlock}
}

func (p *Parser) parseFor() ast.Expr {
	loc := p.curToken.Loc
	forCol := loc.Column
	p.nextToken() // consume 'for'
	v := p.parseIdent()
	p.expectKeyword("in")
	first := p.parseExpr(LOWEST)
	var rangeExpr ast.Expr
	isRange := false
	if p.curTokenIs(token.DOTDOT) {
		p.nextToken()
		rangeExpr = p.parseExpr(LOWEST)
		isRange = true
	}
	p.expectKeyword("do")
	body := p.requireBlock(p.parseBlock(forCol), "do")
	if isRange {
		return &ast.ForRange{Location: token.Span(loc, body.Location), Var: v, Low: first, High: rangeExpr, Body: body}
	}
	return &ast.ForArray{Location: token.Span(loc, body.Location), Var: v, Array: first, Body: body}
}

func (p *Parser) parseWhile() ast.Expr {
	loc := p.curToken.Loc
	whileCol := loc.Column
	p.nextToken() // consume 'while'
	cond := p.parseExpr(LOWEST)
	p.expectKeyword("do")
	body := p.requireBlock(p.parseBlock(whileCol), "do")
	return &ast.While{Location: token.Span(loc, body.Location), Cond: cond, Body: body}
}

func (p *Parser) parseAnonFunc() ast.Expr {
	loc := p.curToken.Loc
	funCol := loc.Column
	p.nextToken() // consume 'fun'
	p.expect(token.LPAREN, "'('")
	params := p.parseParams()
	p.expect(token.RPAREN, "')'")
	var ret ast.TypeExprNode
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		ret = p.parseTypeExpr()
	}
	p.expect(token.ARROW, "'->'")
	body := p.requireBlock(p.parseBlock(funCol), "fun")
	return &ast.AnonFunc{Location: token.Span(loc, body.Location), Params: params, ReturnType: ret, Body: body}
}

// parseParams parses a comma-separated parameter list up to (but not
// consuming) the closing ')'.
func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param
	for !p.curTokenIs(token.RPAREN) {
		name := p.parseIdent()
		var typ ast.TypeExprNode
		if p.curTokenIs(token.COLON) {
			p.nextToken()
			typ = p.parseTypeExpr()
		}
		var def ast.Expr
		if p.curTokenIs(token.ASSIGN) {
			p.nextToken()
			def = p.parseExpr(LOWEST)
		}
		params = append(params, &ast.Param{Name: name, Type: typ, Default: def})
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	return params
}
