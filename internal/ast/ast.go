// Package ast defines the untyped syntax tree (SynAST) spec.md §3.3
// describes: the parser's output, before name resolution or type
// inference. Every node is a concrete struct implementing Node; dispatch
// over the open set of variants uses a type switch (see printer.go), not a
// Visitor interface — spec.md §9's design note calls the visitor pattern
// out explicitly as something not to replicate from the bootstrap
// compiler's own dynamic-dispatch style.
package ast

import "github.com/aikelang/aikec/internal/token"

// Node is implemented by every SynAST node.
type Node interface {
	Loc() token.Location
}

// Expr is a SynAST expression node — the bulk of the tree. spec.md §3.3
// folds declarations (let-bindings, type declarations, extern decls) into
// the same sum type as ordinary expressions, since a block is simply a
// sequence of Expr and a let-binding is itself an expression whose value is
// unit when used as a statement.
type Expr interface {
	Node
	exprNode()
}

// TypeExprNode is a SynAST type-syntax node (the right-hand side of a `:`
// type annotation or a `type ... = ...` declaration).
type TypeExprNode interface {
	Node
	typeExprNode()
}

// Pattern is a SynAST match-pattern node, before translation into the
// typed MatchCase variants internal/ast's typed sibling (the Expr package
// in internal/resolver's output) works with.
type Pattern interface {
	Node
	patternNode()
}

// Param is a function parameter: a name with an optional type annotation.
type Param struct {
	Name    *Ident
	Type    TypeExprNode // nil if uninferred
	Default Expr         // nil if no default value
}

// Ident is a bare identifier reference, used both as an expression and as
// a name-carrying leaf in several other node kinds (parameters, patterns).
type Ident struct {
	Location token.Location
	Name     string
}

func (i *Ident) Loc() token.Location { return i.Location }
func (i *Ident) exprNode()           {}

// Arg is one argument at a call site: positional if Name == "".
type Arg struct {
	Name  string
	Value Expr
}

// Block is a sequence of expressions whose columns obey the offside rule
// relative to the block's own opening column (spec.md §4.2).
type Block struct {
	Location token.Location
	Exprs    []Expr
}

func (b *Block) Loc() token.Location { return b.Location }
func (b *Block) exprNode()           {}
