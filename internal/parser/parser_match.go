package parser

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/token"
)

func (p *Parser) parseMatch() ast.Expr {
	loc := p.curToken.Loc
	p.nextToken() // consume 'match'
	scrutinee := p.parseExpr(LOWEST)
	p.expectKeyword("with")

	if p.curTokenIs(token.PIPE) {
		p.nextToken()
	}
	var arms []*ast.MatchArm
	for {
		arms = append(arms, p.parseMatchArm())
		if p.curTokenIs(token.PIPE) {
			p.nextToken()
			continue
		}
		break
	}
	end := loc
	if len(arms) > 0 {
		end = token.Span(loc, arms[len(arms)-1].Body.Location)
	}
	return &ast.Match{Location: end, Scrutinee: scrutinee, Arms: arms}
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	loc := p.curToken.Loc
	armCol := loc.Column
	pat := p.parsePatternAlt()
	var guard ast.Expr
	if p.curIsKeyword("if") {
		p.nextToken()
		guard = p.parseExpr(LOWEST)
	}
	p.expect(token.ARROW, "'->'")
	body := p.requireBlock(p.parseBlock(armCol), "match arm")
	return &ast.MatchArm{Location: token.Span(loc, body.Location), Pattern: pat, Guard: guard, Body: body}
}

// parsePatternAlt parses `p1 | p2 | ...`. Every PIPE seen here is
// unambiguously an or-pattern separator: a new arm's leading PIPE only ever
// follows a fully parsed body, never a bare pattern, so by the time control
// reaches here any PIPE belongs to the current arm.
func (p *Parser) parsePatternAlt() ast.Pattern {
	first := p.parsePattern()
	if !p.curTokenIs(token.PIPE) {
		return first
	}
	alts := []ast.Pattern{first}
	for p.curTokenIs(token.PIPE) {
		p.nextToken()
		alts = append(alts, p.parsePattern())
	}
	return &ast.PatternOr{Location: token.Span(first.Loc(), alts[len(alts)-1].Loc()), Alternatives: alts}
}

func (p *Parser) parsePattern() ast.Pattern {
	switch {
	case p.curTokenIs(token.NUMBER), p.curTokenIs(token.CHAR), p.curTokenIs(token.STRING),
		p.curIsKeyword("true"), p.curIsKeyword("false"):
		lit := p.parsePrimary()
		return &ast.PatternLiteral{Location: lit.Loc(), Value: lit}
	case p.curTokenIs(token.LPAREN):
		return p.parsePatternTuple()
	case p.curTokenIs(token.LBRACKET):
		return p.parsePatternArray()
	case p.curTokenIs(token.IDENT):
		return p.parsePatternIdentOrCtor()
	default:
		p.fail(p.curToken.Loc, "unexpected token %q in pattern", p.curToken.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) parsePatternTuple() ast.Pattern {
	loc := p.curToken.Loc
	p.nextToken() // consume '('
	if p.curTokenIs(token.RPAREN) {
		rloc := p.curToken.Loc
		p.nextToken()
		return &ast.PatternTuple{Location: token.Span(loc, rloc)}
	}
	first := p.parsePatternAlt()
	if !p.curTokenIs(token.COMMA) {
		p.expect(token.RPAREN, "')'")
		return first
	}
	elems := []ast.Pattern{first}
	for p.curTokenIs(token.COMMA) {
		p.nextToken()
		elems = append(elems, p.parsePatternAlt())
	}
	rparen := p.expect(token.RPAREN, "')'")
	return &ast.PatternTuple{Location: token.Span(loc, rparen.Loc), Elements: elems}
}

func (p *Parser) parsePatternArray() ast.Pattern {
	loc := p.curToken.Loc
	p.nextToken() // consume '['
	var elems []ast.Pattern
	var rest *ast.PatternPlaceholder
	for !p.curTokenIs(token.RBRACKET) {
		if p.curTokenIs(token.DOTDOT) {
			p.nextToken()
			name := p.parseIdent()
			rest = &ast.PatternPlaceholder{Location: name.Location, Name: name.Name}
			break
		}
		elems = append(elems, p.parsePatternAlt())
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	rb := p.expect(token.RBRACKET, "']'")
	return &ast.PatternArray{Location: token.Span(loc, rb.Loc), Elements: elems, Rest: rest}
}

// parsePatternIdentOrCtor resolves the IDENT ambiguity between a binding
// (`x`, optionally `x: Type`) and a constructor pattern (`Ctor(...)`); the
// choice between a zero-arg constructor tag and a plain binding for a bare
// name is left to the resolver, which knows what union tags are in scope
// (spec.md §4.3).
func (p *Parser) parsePatternIdentOrCtor() ast.Pattern {
	tok := p.curToken
	p.nextToken()
	if p.curTokenIs(token.LPAREN) {
		return p.parsePatternCtorArgs(tok)
	}
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		typ := p.parseTypeExpr()
		return &ast.PatternPlaceholder{Location: token.Span(tok.Loc, typ.Loc()), Name: tok.Lexeme, Type: typ}
	}
	if tok.Lexeme == "_" {
		return &ast.PatternWildcard{Location: tok.Loc}
	}
	return &ast.PatternPlaceholder{Location: tok.Loc, Name: tok.Lexeme}
}

func (p *Parser) parsePatternCtorArgs(nameTok token.Token) ast.Pattern {
	p.nextToken() // consume '('
	var args []ast.CtorArg
	named := false
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
			name := p.curToken.Lexeme
			p.nextToken()
			p.nextToken()
			args = append(args, ast.CtorArg{Name: name, Pattern: p.parsePatternAlt()})
			named = true
		} else {
			args = append(args, ast.CtorArg{Pattern: p.parsePatternAlt()})
		}
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	rparen := p.expect(token.RPAREN, "')'")

	seenNamed, seenPositional := false, false
	for _, a := range args {
		if a.Name != "" {
			seenNamed = true
		} else {
			seenPositional = true
		}
		if seenNamed && seenPositional {
			p.fail(a.Pattern.Loc(), "cannot mix named and positional pattern arguments")
		}
	}
	return &ast.PatternCtor{Location: token.Span(nameTok.Loc, rparen.Loc), Name: nameTok.Lexeme, Args: args, Named: named}
}
