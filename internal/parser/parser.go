// Package parser implements the recursive-descent, offside-rule parser
// spec.md §4.2 describes: token stream in, SynAST (internal/ast) out. File
// layout mirrors _examples/funvibe-funxy/internal/parser's per-concern
// split (expressions_*.go, statements_*.go); the offside block rule itself
// has no analogue there (funxy's grammar is brace-delimited) and is instead
// grounded on original_source/bootstrap/parser.cpp's block-termination
// logic, re-expressed with an explicit column parameter rather than C++'s
// recursion-depth bookkeeping.
package parser

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/token"
)

// Parser holds a filtered token stream (NEWLINE removed; line-start
// information already lives on each token's Indent field) and a two-token
// lookahead, in the style of funxy's curToken/peekToken parser.
type Parser struct {
	source token.SourceID
	toks   []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token
}

// parseError unwinds the recursive descent to ParseFile on the first
// syntax error, per spec.md §7's "first error in a phase aborts the phase".
type parseError struct{ d *diag.Diagnostic }

func newParser(source token.SourceID, toks []token.Token) *Parser {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != token.NEWLINE {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 || filtered[len(filtered)-1].Kind != token.EOF {
		filtered = append(filtered, token.Token{Kind: token.EOF, Indent: -1})
	}
	p := &Parser{source: source, toks: filtered}
	p.curToken = p.toks[0]
	if len(p.toks) > 1 {
		p.peekToken = p.toks[1]
	} else {
		p.peekToken = p.toks[0]
	}
	return p
}

// ParseFile parses one source unit's full token stream into a SynAST File.
// On the first syntax error it returns (nil, diagnostic); it never returns
// a partial tree alongside an error.
func ParseFile(source token.SourceID, toks []token.Token) (file *ast.File, d *diag.Diagnostic) {
	p := newParser(source, toks)
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				file, d = nil, pe.d
				return
			}
			panic(r)
		}
	}()

	body := p.parseBlock(0)
	if !p.curTokenIs(token.EOF) {
		p.fail(p.curToken.Loc, "unexpected token %q", p.curToken.Lexeme)
	}
	return &ast.File{Source: source, Body: body}, nil
}

func (p *Parser) nextToken() {
	p.pos++
	p.curToken = p.peekToken
	if p.pos+1 < len(p.toks) {
		p.peekToken = p.toks[p.pos+1]
	} else {
		p.peekToken = p.toks[len(p.toks)-1]
	}
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peekToken.Kind == k }
func (p *Parser) curIsKeyword(word string) bool { return p.curToken.IsKeyword(word) }

// expect checks the current token's kind, consumes it, and returns its
// location; a mismatch is a syntax error.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	if !p.curTokenIs(k) {
		p.fail(p.curToken.Loc, "expected %s, found %q", what, p.curToken.Lexeme)
	}
	tok := p.curToken
	p.nextToken()
	return tok
}

func (p *Parser) expectKeyword(word string) token.Token {
	if !p.curIsKeyword(word) {
		p.fail(p.curToken.Loc, "expected %q, found %q", word, p.curToken.Lexeme)
	}
	tok := p.curToken
	p.nextToken()
	return tok
}

func (p *Parser) fail(loc token.Location, format string, args ...any) {
	panic(parseError{diag.New(diag.Syntactic, loc, format, args...)})
}

func (p *Parser) parseIdent() *ast.Ident {
	tok := p.expect(token.IDENT, "identifier")
	return &ast.Ident{Location: tok.Loc, Name: tok.Lexeme}
}
