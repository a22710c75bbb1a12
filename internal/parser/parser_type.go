package parser

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/token"
)

// parseTypeExpr parses a type expression: arrows are right-associative and
// bind loosest; the `[]` array suffix binds tightest (spec.md §3.3).
func (p *Parser) parseTypeExpr() ast.TypeExprNode {
	left := p.parseTypeSuffixed()
	if p.curTokenIs(token.ARROW) {
		p.nextToken()
		right := p.parseTypeExpr()
		return &ast.TypeArrow{Location: token.Span(left.Loc(), right.Loc()), Arg: left, Result: right}
	}
	return left
}

func (p *Parser) parseTypeSuffixed() ast.TypeExprNode {
	t := p.parseTypeAtom()
	for p.curTokenIs(token.LBRACKET) && p.peekTokenIs(token.RBRACKET) {
		p.nextToken() // '['
		rb := p.curToken
		p.nextToken() // ']'
		t = &ast.TypeArray{Location: token.Span(t.Loc(), rb.Loc), Elem: t}
	}
	return t
}

func (p *Parser) parseTypeAtom() ast.TypeExprNode {
	switch {
	case p.curTokenIs(token.GENERIC_IDENT):
		tok := p.curToken
		p.nextToken()
		return &ast.TypeGenericRef{Location: tok.Loc, Name: tok.Lexeme}
	case p.curTokenIs(token.IDENT):
		tok := p.curToken
		p.nextToken()
		var args []ast.TypeExprNode
		end := tok.Loc
		if p.curTokenIs(token.LT) {
			p.nextToken()
			for {
				args = append(args, p.parseTypeExpr())
				if p.curTokenIs(token.COMMA) {
					p.nextToken()
					continue
				}
				break
			}
			gt := p.expect(token.GT, "'>'")
			end = gt.Loc
		}
		return &ast.TypeName{Location: token.Span(tok.Loc, end), Name: tok.Lexeme, Args: args}
	case p.curTokenIs(token.LPAREN):
		return p.parseTypeParenOrTuple()
	default:
		p.fail(p.curToken.Loc, "unexpected token %q in type", p.curToken.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) parseTypeParenOrTuple() ast.TypeExprNode {
	loc := p.curToken.Loc
	p.nextToken() // '('
	first := p.parseTypeExpr()
	if !p.curTokenIs(token.COMMA) {
		p.expect(token.RPAREN, "')'")
		return first
	}
	elems := []ast.TypeExprNode{first}
	for p.curTokenIs(token.COMMA) {
		p.nextToken()
		elems = append(elems, p.parseTypeExpr())
	}
	rparen := p.expect(token.RPAREN, "')'")
	return &ast.TypeTuple{Location: token.Span(loc, rparen.Loc), Elements: elems}
}
