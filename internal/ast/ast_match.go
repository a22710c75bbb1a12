package ast

import "github.com/aikelang/aikec/internal/token"

// Match is `match scrutinee with | p1 -> e1 | p2 -> e2 ...` (spec.md §4.2).
// The leading `|` on the first arm is optional in source and is not
// represented here either way.
type Match struct {
	Location  token.Location
	Scrutinee Expr
	Arms      []*MatchArm
}

func (n *Match) Loc() token.Location { return n.Location }
func (n *Match) exprNode()           {}

// MatchArm is one `pattern [if guard] -> body` arm. Pattern may itself be
// a PatternOr joining several alternatives with `|`.
type MatchArm struct {
	Location token.Location
	Pattern  Pattern
	Guard    Expr // nil if unguarded
	Body     *Block
}

// PatternWildcard is `_`, matching anything and binding nothing.
type PatternWildcard struct{ Location token.Location }

func (n *PatternWildcard) Loc() token.Location { return n.Location }
func (n *PatternWildcard) patternNode()        {}

// PatternPlaceholder is a bare identifier in pattern position, with an
// optional type ascription: `x` or `x: Int`. Resolved later to either a
// fresh binding or, if the name matches an in-scope union variant, a
// PatternCtor with no arguments (spec.md §4.3's union-tag lookup rule).
type PatternPlaceholder struct {
	Location token.Location
	Name     string
	Type     TypeExprNode // nil if not ascribed
}

func (n *PatternPlaceholder) Loc() token.Location { return n.Location }
func (n *PatternPlaceholder) patternNode()        {}

// PatternLiteral is a value-equality pattern: a number, character, string,
// or boolean literal matched by value.
type PatternLiteral struct {
	Location token.Location
	Value    Expr // one of Number, Character, StringLit, Boolean
}

func (n *PatternLiteral) Loc() token.Location { return n.Location }
func (n *PatternLiteral) patternNode()        {}

// PatternTuple is `(p1, p2, ...)`.
type PatternTuple struct {
	Location token.Location
	Elements []Pattern
}

func (n *PatternTuple) Loc() token.Location { return n.Location }
func (n *PatternTuple) patternNode()        {}

// PatternArray is `[p1, p2, ..tail]`; Rest, when non-nil, captures the
// remaining elements after the fixed prefix (e.g. `[_, ..t]`).
type PatternArray struct {
	Location token.Location
	Elements []Pattern
	Rest     *PatternPlaceholder // nil if no `..rest` suffix
}

func (n *PatternArray) Loc() token.Location { return n.Location }
func (n *PatternArray) patternNode()        {}

// CtorArg is one argument pattern at a constructor pattern site, named or
// positional — never mixed within one pattern (spec.md §4.2).
type CtorArg struct {
	Name    string // "" if positional
	Pattern Pattern
}

// PatternCtor is a type-constructor pattern `Ctor(p1, ..., pN)` or
// `Ctor(name = p1, ...)`.
type PatternCtor struct {
	Location token.Location
	Name     string
	Args     []CtorArg
	Named    bool
}

func (n *PatternCtor) Loc() token.Location { return n.Location }
func (n *PatternCtor) patternNode()        {}

// PatternOr is an alternation `p1 | p2 | ...` within one match arm.
type PatternOr struct {
	Location     token.Location
	Alternatives []Pattern
}

func (n *PatternOr) Loc() token.Location { return n.Location }
func (n *PatternOr) patternNode()        {}
