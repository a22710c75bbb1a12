package parser

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/token"
)

// Precedence levels, lowest to highest, per spec.md §4.2's climbing order:
// `:=`, `or`, `and`, `== !=`, `< <= > >=`, `+ -`, `* /`, unary, postfix.
const (
	LOWEST = iota
	ASSIGN
	LOGIC_OR
	LOGIC_AND
	EQUALITY
	COMPARE
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	POSTFIX
)

// binOp reports the operator lexeme and precedence of the current token,
// if it begins an infix operator.
func (p *Parser) binOp() (op string, prec int, ok bool) {
	switch p.curToken.Kind {
	case token.COLONEQ:
		return ":=", ASSIGN, true
	case token.PLUS:
		return "+", ADDITIVE, true
	case token.MINUS:
		return "-", ADDITIVE, true
	case token.STAR:
		return "*", MULTIPLICATIVE, true
	case token.SLASH:
		return "/", MULTIPLICATIVE, true
	case token.LT:
		return "<", COMPARE, true
	case token.LE:
		return "<=", COMPARE, true
	case token.GT:
		return ">", COMPARE, true
	case token.GE:
		return ">=", COMPARE, true
	case token.EQ:
		return "==", EQUALITY, true
	case token.NE:
		return "!=", EQUALITY, true
	case token.KEYWORD:
		switch p.curToken.Lexeme {
		case "and":
			return "and", LOGIC_AND, true
		case "or":
			return "or", LOGIC_OR, true
		}
	}
	return "", 0, false
}

// parseExpr parses one expression via precedence climbing, stopping before
// any operator at or below minPrec.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		op, prec, ok := p.binOp()
		if !ok || prec <= minPrec {
			return left
		}
		p.nextToken()
		if op == ":=" {
			// right-associative: `x := y := z` is `x := (y := z)`.
			right := p.parseExpr(ASSIGN - 1)
			left = &ast.Assign{Location: token.Span(left.Loc(), right.Loc()), Target: left, Value: right}
			continue
		}
		right := p.parseExpr(prec)
		left = &ast.BinaryOp{Location: token.Span(left.Loc(), right.Loc()), Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch {
	case p.curTokenIs(token.PLUS), p.curTokenIs(token.MINUS), p.curTokenIs(token.BANG):
		tok := p.curToken
		p.nextToken()
		operand := p.parseUnary()
		return &ast.UnaryOp{Location: token.Span(tok.Loc, operand.Loc()), Op: tok.Lexeme, Operand: operand}
	case p.curIsKeyword("not"):
		tok := p.curToken
		p.nextToken()
		operand := p.parseUnary()
		return &ast.UnaryOp{Location: token.Span(tok.Loc, operand.Loc()), Op: "not", Operand: operand}
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix chains call/index/slice/member/uniform-call forms onto a
// primary. A continuation on a later line is only accepted when it sits at
// a column greater than the primary's own column (spec.md §4.2: "a call at
// a column greater than the primary's column continues the primary; at the
// same column it starts a new statement"); anything offside relative to the
// primary ends the chain and is left for the enclosing block to see.
func (p *Parser) parsePostfix(primary ast.Expr) ast.Expr {
	primaryCol := primary.Loc().Column
	for {
		if p.curToken.Indent != -1 && p.curToken.Indent <= primaryCol {
			return primary
		}
		switch {
		case p.curTokenIs(token.LPAREN):
			primary = p.parseCallArgs(primary)
		case p.curTokenIs(token.LBRACKET):
			primary = p.parseIndexOrSlice(primary)
		case p.curTokenIs(token.DOT):
			primary = p.parseDot(primary)
		case p.curTokenIs(token.HASH):
			primary = p.parseUniformCall(primary)
		default:
			return primary
		}
	}
}

// parseDot handles plain field access `e.name`. It never looks past the
// name at a following '(': that belongs to parsePostfix's own call branch,
// which runs again against the Member this returns, so `e.name(args)`
// parses as "call whatever e.name evaluates to" rather than being rewritten
// into a different call altogether. spec.md §4.2 keeps `.name` and
// `#name(args)` as distinct, independently composable postfix operators.
func (p *Parser) parseDot(primary ast.Expr) ast.Expr {
	p.nextToken() // consume '.'
	nameTok := p.expect(token.IDENT, "field or function name")
	return &ast.Member{Location: token.Span(primary.Loc(), nameTok.Loc), Target: primary, Name: nameTok.Lexeme}
}

// parseUniformCall handles the uniform-call sugar `e#name(args...)`,
// rewritten on the spot to `name(e, args...)` (spec.md §4.2) so later
// phases never see a distinct call shape for it.
func (p *Parser) parseUniformCall(primary ast.Expr) ast.Expr {
	p.nextToken() // consume '#'
	nameTok := p.expect(token.IDENT, "function name")
	if !p.curTokenIs(token.LPAREN) {
		p.fail(p.curToken.Loc, "expected '(' after uniform-call name, found %q", p.curToken.Lexeme)
	}
	callee := &ast.Var{Location: nameTok.Loc, Name: nameTok.Lexeme}
	call := p.parseCallArgs(callee)
	call.Args = append([]ast.Arg{{Value: primary}}, call.Args...)
	call.Location = token.Span(primary.Loc(), call.Location)
	return call
}

func (p *Parser) parseCallArgs(callee ast.Expr) *ast.Call {
	p.nextToken() // consume '('
	var args []ast.Arg
	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
			name := p.curToken.Lexeme
			p.nextToken()
			p.nextToken()
			args = append(args, ast.Arg{Name: name, Value: p.parseExpr(LOWEST)})
		} else {
			args = append(args, ast.Arg{Value: p.parseExpr(LOWEST)})
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
			p.fail(a.Value.Loc(), "cannot mix named and positional arguments")
		}
	}
	return &ast.Call{Location: token.Span(callee.Loc(), rparen.Loc), Callee: callee, Args: args}
}

func (p *Parser) parseIndexOrSlice(array ast.Expr) ast.Expr {
	p.nextToken() // consume '['
	if p.curTokenIs(token.DOTDOT) {
		p.nextToken()
		var high ast.Expr
		if !p.curTokenIs(token.RBRACKET) {
			high = p.parseExpr(LOWEST)
		}
		rb := p.expect(token.RBRACKET, "']'")
		return &ast.Slice{Location: token.Span(array.Loc(), rb.Loc), Array: array, Low: nil, High: high}
	}

	first := p.parseExpr(LOWEST)
	if p.curTokenIs(token.DOTDOT) {
		p.nextToken()
		var high ast.Expr
		if !p.curTokenIs(token.RBRACKET) {
			high = p.parseExpr(LOWEST)
		}
		rb := p.expect(token.RBRACKET, "']'")
		return &ast.Slice{Location: token.Span(array.Loc(), rb.Loc), Array: array, Low: first, High: high}
	}
	rb := p.expect(token.RBRACKET, "']'")
	return &ast.Index{Location: token.Span(array.Loc(), rb.Loc), Array: array, Index: first}
}
