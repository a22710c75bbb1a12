package ast

import "github.com/aikelang/aikec/internal/token"

// TypeName is a named type reference, possibly generic: `int`, `List<'a>`.
type TypeName struct {
	Location token.Location
	Name     string
	Args     []TypeExprNode
}

func (n *TypeName) Loc() token.Location { return n.Location }
func (n *TypeName) typeExprNode()       {}

// TypeGenericRef is a bare generic-type-variable reference `'a` in type
// syntax (as opposed to TypeName, which names a concrete or user type).
type TypeGenericRef struct {
	Location token.Location
	Name     string
}

func (n *TypeGenericRef) Loc() token.Location { return n.Location }
func (n *TypeGenericRef) typeExprNode()       {}

// TypeTuple is a parenthesized tuple type `(T, U, ...)`.
type TypeTuple struct {
	Location token.Location
	Elements []TypeExprNode
}

func (n *TypeTuple) Loc() token.Location { return n.Location }
func (n *TypeTuple) typeExprNode()       {}

// TypeArray is the postfix array-type suffix `T[]`; spec.md §3.3 notes this
// binds tightest of all type syntax.
type TypeArray struct {
	Location token.Location
	Elem     TypeExprNode
}

func (n *TypeArray) Loc() token.Location { return n.Location }
func (n *TypeArray) typeExprNode()       {}

// TypeArrow is a function type `Arg -> Result`; binds tighter than tuple
// but looser than the array suffix (spec.md §3.3). Right-associative:
// `A -> B -> C` is `A -> (B -> C)`.
type TypeArrow struct {
	Location token.Location
	Arg      TypeExprNode
	Result   TypeExprNode
}

func (n *TypeArrow) Loc() token.Location { return n.Location }
func (n *TypeArrow) typeExprNode()       {}
