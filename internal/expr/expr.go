// Package expr is the typed AST (spec.md §3.4): the same shape as
// internal/ast's SynAST, but every node carries a resolved types.Type, every
// variable reference points to a *Binding, and every match pattern is a
// MatchCase rather than a SynAST Pattern. internal/resolver builds an expr
// tree from an ast tree; internal/checker fills in (and unifies) the Type
// field of every node as it walks the tree bottom-up.
package expr

import (
	"github.com/aikelang/aikec/internal/token"
	"github.com/aikelang/aikec/internal/types"
)

// Node is the common accessor every typed-AST node implements.
type Node interface {
	Loc() token.Location
}

// Expr is a typed expression: an addressable Type slot alongside location.
// The Type field starts nil (or a fresh generic, for forms whose type isn't
// known until inference runs) and is filled in by internal/checker.
type Expr interface {
	Node
	ExprType() types.Type
	SetType(types.Type)
}

// Base is embedded by every concrete Expr to supply Loc/ExprType/SetType.
type Base struct {
	Location token.Location
	Typ      types.Type
}

func (b *Base) Loc() token.Location  { return b.Location }
func (b *Base) ExprType() types.Type { return b.Typ }
func (b *Base) SetType(t types.Type) { b.Typ = t }

// Block is a sequence of expressions; spec.md §4.5 requires every
// expression but the last to have unit type (declarations are implicitly
// unit). Block's own type is its last expression's type, or unit if empty.
type Block struct {
	Base
	Exprs []Expr
}
