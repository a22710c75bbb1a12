package ast

import "github.com/aikelang/aikec/internal/token"

// If is `if cond then thenBlock [else elseBlock]`.
type If struct {
	Location token.Location
	Cond     Expr
	Then     *Block
	Else     *Block // nil if no else branch
}

func (n *If) Loc() token.Location { return n.Location }
func (n *If) exprNode()           {}

// ForArray is `for x in arr do body`.
type ForArray struct {
	Location token.Location
	Var      *Ident
	Array    Expr
	Body     *Block
}

func (n *ForArray) Loc() token.Location { return n.Location }
func (n *ForArray) exprNode()           {}

// ForRange is `for x in a..b do body`.
type ForRange struct {
	Location token.Location
	Var      *Ident
	Low      Expr
	High     Expr
	Body     *Block
}

func (n *ForRange) Loc() token.Location { return n.Location }
func (n *ForRange) exprNode()           {}

// While is `while cond do body`.
type While struct {
	Location token.Location
	Cond     Expr
	Body     *Block
}

func (n *While) Loc() token.Location { return n.Location }
func (n *While) exprNode()           {}

// AnonFunc is an anonymous function literal `fun(params) -> body` (no
// name, so it can never be directly recursive by name; it may still
// capture outer bindings as a closure).
type AnonFunc struct {
	Location   token.Location
	Params     []*Param
	ReturnType TypeExprNode // nil if uninferred
	Body       *Block
}

func (n *AnonFunc) Loc() token.Location { return n.Location }
func (n *AnonFunc) exprNode()           {}
