package parser

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/token"
)

// parseLet dispatches among the three let-binding shapes (spec.md §3.3):
// value, tuple destructure, and function. All three admit the `in body`
// sugar, consumed here as a bare continuation of the enclosing block
// rather than a nested scope of its own — `let x = v in body` and
// `let x = v` followed by `body` on the next line parse to the same block.
func (p *Parser) parseLet() ast.Expr {
	loc := p.curToken.Loc
	letCol := loc.Column
	p.nextToken() // consume 'let'

	var node ast.Expr
	switch {
	case p.curTokenIs(token.LPAREN):
		node = p.parseLetTuple(loc, letCol)
	case p.peekTokenIs(token.LPAREN):
		node = p.parseLetFunc(loc, letCol)
	default:
		node = p.parseLetValue(loc, letCol)
	}

	if p.curIsKeyword("in") {
		p.nextToken()
	}
	return node
}

func (p *Parser) parseLetValue(loc token.Location, letCol int) ast.Expr {
	name := p.parseIdent()
	var typ ast.TypeExprNode
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		typ = p.parseTypeExpr()
	}
	p.expect(token.ASSIGN, "'='")
	value := p.requireBlock(p.parseBlock(letCol), "let")
	return &ast.LetValue{Location: token.Span(loc, value.Location), Name: name, Type: typ, Value: value}
}

func (p *Parser) parseLetTuple(loc token.Location, letCol int) ast.Expr {
	p.nextToken() // consume '('
	names := []*ast.Ident{p.parseIdent()}
	for p.curTokenIs(token.COMMA) {
		p.nextToken()
		names = append(names, p.parseIdent())
	}
	p.expect(token.RPAREN, "')'")
	p.expect(token.ASSIGN, "'='")
	value := p.requireBlock(p.parseBlock(letCol), "let")
	return &ast.LetTuple{Location: token.Span(loc, value.Location), Names: names, Value: value}
}

func (p *Parser) parseLetFunc(loc token.Location, letCol int) ast.Expr {
	name := p.parseIdent()
	p.expect(token.LPAREN, "'('")
	params := p.parseParams()
	p.expect(token.RPAREN, "')'")
	var ret ast.TypeExprNode
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		ret = p.parseTypeExpr()
	}
	p.expect(token.ASSIGN, "'='")
	body := p.requireBlock(p.parseBlock(letCol), "let")
	return &ast.LetFunc{Location: token.Span(loc, body.Location), Name: name, Params: params, ReturnType: ret, Body: body}
}

func (p *Parser) parseExternDecl() ast.Expr {
	loc := p.curToken.Loc
	p.nextToken() // consume 'extern'
	name := p.parseIdent()
	p.expect(token.LPAREN, "'('")
	params := p.parseParams()
	p.expect(token.RPAREN, "')'")
	p.expect(token.COLON, "':'")
	ret := p.parseTypeExpr()
	return &ast.ExternFunc{Location: token.Span(loc, ret.Loc()), Name: name, Params: params, ReturnType: ret}
}

func (p *Parser) parseTypeDecl() ast.Expr {
	loc := p.curToken.Loc
	p.nextToken() // consume 'type'
	name := p.parseIdent()
	var generics []*ast.Ident
	if p.curTokenIs(token.LT) {
		p.nextToken()
		for {
			tok := p.expect(token.GENERIC_IDENT, "generic parameter")
			generics = append(generics, &ast.Ident{Location: tok.Loc, Name: tok.Lexeme})
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
		p.expect(token.GT, "'>'")
	}
	p.expect(token.ASSIGN, "'='")

	if p.curTokenIs(token.LBRACE) {
		fields, end := p.parseRecordFields()
		return &ast.TypeDeclRecord{Location: token.Span(loc, end), Name: name, Generics: generics, Fields: fields}
	}
	return p.parseUnionDecl(loc, name, generics)
}

func (p *Parser) parseRecordFields() ([]*ast.RecordField, token.Location) {
	p.nextToken() // consume '{'
	var fields []*ast.RecordField
	for !p.curTokenIs(token.RBRACE) {
		fname := p.parseIdent()
		p.expect(token.COLON, "':'")
		ftype := p.parseTypeExpr()
		fields = append(fields, &ast.RecordField{Name: fname, Type: ftype})
		if p.curTokenIs(token.SEMI) {
			p.nextToken()
			continue
		}
		break
	}
	rbrace := p.expect(token.RBRACE, "'}'")
	return fields, rbrace.Loc
}

func (p *Parser) parseUnionDecl(loc token.Location, name *ast.Ident, generics []*ast.Ident) ast.Expr {
	if p.curTokenIs(token.PIPE) {
		p.nextToken()
	}
	var variants []*ast.UnionVariant
	end := loc
	for {
		vname := p.parseIdent()
		v := &ast.UnionVariant{Name: vname, Kind: ast.VariantUnit}
		end = vname.Location
		switch {
		case p.curIsKeyword("of"):
			p.nextToken()
			v.Kind = ast.VariantOf
			v.Of = p.parseTypeExpr()
			end = v.Of.Loc()
		case p.curTokenIs(token.LBRACE):
			fields, floc := p.parseRecordFields()
			v.Kind = ast.VariantRecord
			v.Fields = fields
			end = floc
		}
		variants = append(variants, v)
		if p.curTokenIs(token.PIPE) {
			p.nextToken()
			continue
		}
		break
	}
	return &ast.TypeDeclUnion{Location: token.Span(loc, end), Name: name, Generics: generics, Variants: variants}
}
