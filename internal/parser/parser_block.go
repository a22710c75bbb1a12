package parser

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/token"
)

// parseBlock parses a sequence of statement-expressions under the offside
// rule (spec.md §4.2): a statement continues the block while it starts on
// the introducing construct's own line, or on a later line at a column
// strictly greater than openCol; the block ends at the first token offside
// (column <= openCol on a new line), at EOF, or at one of stop.
//
// PIPE always ends a block regardless of column: it is never the start of
// a block statement, only a match-arm or union-variant separator, so there
// is no ambiguity in treating it as an unconditional terminator here.
func (p *Parser) parseBlock(openCol int, stop ...string) *ast.Block {
	loc := p.curToken.Loc
	var exprs []ast.Expr
	for {
		// EOF, PIPE (arm/variant separator), and the `in` sugar keyword
		// always end a block regardless of column: none of them can
		// legally start a new block statement.
		if p.curTokenIs(token.EOF) || p.curTokenIs(token.PIPE) || p.curIsKeyword("in") {
			break
		}
		if p.curToken.Kind == token.KEYWORD && containsWord(stop, p.curToken.Lexeme) {
			break
		}
		if p.curToken.Indent != -1 && p.curToken.Indent <= openCol {
			break
		}
		exprs = append(exprs, p.parseBlockExpr())
	}
	end := loc
	if len(exprs) > 0 {
		end = token.Span(loc, exprs[len(exprs)-1].Loc())
	}
	return &ast.Block{Location: end, Exprs: exprs}
}

// parseBlockExpr parses one block statement: a let/type/extern declaration
// or a plain expression.
func (p *Parser) parseBlockExpr() ast.Expr {
	switch {
	case p.curIsKeyword("let"):
		return p.parseLet()
	case p.curIsKeyword("type"):
		return p.parseTypeDecl()
	case p.curIsKeyword("extern"):
		return p.parseExternDecl()
	default:
		return p.parseExpr(LOWEST)
	}
}

// requireBlock rejects an empty block, used wherever the grammar demands a
// body (let/fun/match-arm/do/then/else all need at least one statement).
func (p *Parser) requireBlock(b *ast.Block, what string) *ast.Block {
	if len(b.Exprs) == 0 {
		p.fail(b.Location, "expected %s body", what)
	}
	return b
}

func containsWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
