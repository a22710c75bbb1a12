package ast

import "github.com/aikelang/aikec/internal/token"

// Var is a bare variable/function reference used as a value.
type Var struct {
	Location token.Location
	Name     string
}

func (n *Var) Loc() token.Location { return n.Location }
func (n *Var) exprNode()           {}

// UnaryOp is a prefix unary operator: `+`, `-`, `not`/`!`, or deref `!`.
type UnaryOp struct {
	Location token.Location
	Op       string
	Operand  Expr
}

func (n *UnaryOp) Loc() token.Location { return n.Location }
func (n *UnaryOp) exprNode()           {}

// BinaryOp is an infix binary operator, already resolved to its final
// shape by precedence climbing in the parser.
type BinaryOp struct {
	Location token.Location
	Op       string
	Left     Expr
	Right    Expr
}

func (n *BinaryOp) Loc() token.Location { return n.Location }
func (n *BinaryOp) exprNode()           {}

// Call is a function call with positional and/or named arguments (never
// mixed — the parser rejects that combination as a syntax error, spec.md
// §4.2). Callee may itself be the desugared form of a uniform-call
// `#name(args)`, which the parser rewrites to `name(receiver, args...)`
// before this node is ever built, so Call never needs to represent the
// `#`-postfix form explicitly.
type Call struct {
	Location token.Location
	Callee   Expr
	Args     []Arg
}

func (n *Call) Loc() token.Location { return n.Location }
func (n *Call) exprNode()           {}

// Index is `arr[i]`.
type Index struct {
	Location token.Location
	Array    Expr
	Index    Expr
}

func (n *Index) Loc() token.Location { return n.Location }
func (n *Index) exprNode()           {}

// Slice is `arr[a..b]`, with either bound optional (open-ended).
type Slice struct {
	Location token.Location
	Array    Expr
	Low      Expr // nil if open on the left
	High     Expr // nil if open on the right
}

func (n *Slice) Loc() token.Location { return n.Location }
func (n *Slice) exprNode()           {}

// Member is `e.name`.
type Member struct {
	Location token.Location
	Target   Expr
	Name     string
}

func (n *Member) Loc() token.Location { return n.Location }
func (n *Member) exprNode()           {}

// Assign is `lhs := rhs`, the reference-assignment operator (lowest
// precedence in spec.md §4.2's climbing order).
type Assign struct {
	Location token.Location
	Target   Expr
	Value    Expr
}

func (n *Assign) Loc() token.Location { return n.Location }
func (n *Assign) exprNode()           {}
