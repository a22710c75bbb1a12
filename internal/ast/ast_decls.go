package ast

import "github.com/aikelang/aikec/internal/token"

// LetValue is `let name [: Type] = value`.
type LetValue struct {
	Location token.Location
	Name     *Ident
	Type     TypeExprNode // nil if uninferred
	Value    *Block
}

func (n *LetValue) Loc() token.Location { return n.Location }
func (n *LetValue) exprNode()           {}

// LetTuple is `let (n1, n2, ...) = value`, a tuple-destructuring binding.
type LetTuple struct {
	Location token.Location
	Names    []*Ident
	Value    *Block
}

func (n *LetTuple) Loc() token.Location { return n.Location }
func (n *LetTuple) exprNode()           {}

// LetFunc is `let name(params) [: ReturnType] = body`, admitted to mutual
// recursion with sibling LetFunc/TypeDecl nodes in the same block by the
// resolver's recursive-declaration pre-pass (spec.md §4.3).
type LetFunc struct {
	Location   token.Location
	Name       *Ident
	Params     []*Param
	ReturnType TypeExprNode // nil if uninferred
	Body       *Block
}

func (n *LetFunc) Loc() token.Location { return n.Location }
func (n *LetFunc) exprNode()           {}

// ExternFunc is `extern name(params) : ReturnType`, a body-less declaration
// whose types are taken verbatim by the checker (spec.md §4.5).
type ExternFunc struct {
	Location   token.Location
	Name       *Ident
	Params     []*Param
	ReturnType TypeExprNode
}

func (n *ExternFunc) Loc() token.Location { return n.Location }
func (n *ExternFunc) exprNode()           {}

// RecordField is one `name: Type` field of a record-type declaration.
type RecordField struct {
	Name *Ident
	Type TypeExprNode
}

// TypeDeclRecord is `type Name<'a,...> = { field1: T1; ... }`.
type TypeDeclRecord struct {
	Location token.Location
	Name     *Ident
	Generics []*Ident
	Fields   []*RecordField
}

func (n *TypeDeclRecord) Loc() token.Location { return n.Location }
func (n *TypeDeclRecord) exprNode()           {}

// UnionVariantKind distinguishes the three payload shapes a union variant
// may carry, spec.md §3.3.
type UnionVariantKind int

const (
	VariantUnit UnionVariantKind = iota
	VariantOf                    // `V of T` or `V of (T, U)` (a single type, possibly a tuple type)
	VariantRecord                // `V { f: T; ... }`
)

// UnionVariant is one `| Name [of Type | { fields }]` arm of a union-type
// declaration.
type UnionVariant struct {
	Name   *Ident
	Kind   UnionVariantKind
	Of     TypeExprNode   // set when Kind == VariantOf
	Fields []*RecordField // set when Kind == VariantRecord
}

// TypeDeclUnion is `type Name<'a,...> = | V1 | V2 of T | V3 { f: T }`.
type TypeDeclUnion struct {
	Location token.Location
	Name     *Ident
	Generics []*Ident
	Variants []*UnionVariant
}

func (n *TypeDeclUnion) Loc() token.Location { return n.Location }
func (n *TypeDeclUnion) exprNode()           {}

// File is the root SynAST node: the full top-level block of one
// compilation unit.
type File struct {
	Source token.SourceID
	Body   *Block
}

func (n *File) Loc() token.Location { return n.Body.Location }
