package ast

import "github.com/aikelang/aikec/internal/token"

// Unit is the `()` literal.
type Unit struct{ Location token.Location }

func (n *Unit) Loc() token.Location { return n.Location }
func (n *Unit) exprNode()           {}

// Number is a numeric literal; its lexeme is kept verbatim (the resolver or
// checker decides int vs. float from the lexeme shape, per the token kinds
// spec.md §3.2 names — there is no separate int/float token kind).
type Number struct {
	Location token.Location
	Lexeme   string
}

func (n *Number) Loc() token.Location { return n.Location }
func (n *Number) exprNode()           {}

// Character is a character literal; Payload is the opaque byte range
// between the delimiting quotes, uninterpreted (spec.md §4.1: no escapes).
type Character struct {
	Location token.Location
	Payload  string
}

func (n *Character) Loc() token.Location { return n.Location }
func (n *Character) exprNode()           {}

// StringLit is a string literal, with the same opaque-payload treatment as
// Character.
type StringLit struct {
	Location token.Location
	Payload  string
}

func (n *StringLit) Loc() token.Location { return n.Location }
func (n *StringLit) exprNode()           {}

// Boolean is a `true`/`false` literal.
type Boolean struct {
	Location token.Location
	Value    bool
}

func (n *Boolean) Loc() token.Location { return n.Location }
func (n *Boolean) exprNode()           {}

// ArrayLit is an array literal `[e1, e2, ...]`.
type ArrayLit struct {
	Location token.Location
	Elements []Expr
}

func (n *ArrayLit) Loc() token.Location { return n.Location }
func (n *ArrayLit) exprNode()           {}

// TupleLit is a tuple literal `(e1, e2, ...)` of arity >= 2.
type TupleLit struct {
	Location token.Location
	Elements []Expr
}

func (n *TupleLit) Loc() token.Location { return n.Location }
func (n *TupleLit) exprNode()           {}
