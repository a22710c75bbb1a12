package expr

import "github.com/aikelang/aikec/internal/token"

// Match is `match Scrutinee with | arm1 | arm2 ...`.
type Match struct {
	Base
	Scrutinee Expr
	Arms      []*MatchArm
}

// MatchArm pairs one arm's pattern with its body. A guarded arm
// (`pattern if expr -> body`) is represented by wrapping the translated
// pattern in a CaseIf rather than as a separate field here, so the pattern
// algebra (clone/match/simplify, and the exhaustiveness cover built from it)
// sees the guard as part of the pattern it is — SPEC_FULL.md §12's
// guard-scoping rule, since CaseIf's Guard can only reference bindings
// introduced by its own Inner pattern.
type MatchArm struct {
	Location token.Location
	Case     MatchCase
	Body     *Block
}

func (a *MatchArm) Loc() token.Location { return a.Location }

// MatchCase is a resolved match pattern: every syntactic pattern form
// (wildcard, placeholder, literal, tuple/array, constructor, alternation,
// guard) becomes exactly one of these ten variants (spec.md §3.4).
type MatchCase interface {
	Loc() token.Location
	isMatchCase()
}

type CaseBase struct {
	Location token.Location
}

func (c CaseBase) Loc() token.Location { return c.Location }
func (CaseBase) isMatchCase()          {}

// CaseAny matches anything. Binding is nil for `_`; otherwise the matched
// value is bound to Binding, as with a bare identifier pattern that did not
// resolve to a union tag (spec.md §4.3's union-tag lookup rule).
type CaseAny struct {
	CaseBase
	Binding *Binding
}

// CaseValue is a value-equality pattern for any literal kind not given its
// own variant below (currently: string literals).
type CaseValue struct {
	CaseBase
	Value Expr
}

// CaseBool is a `true`/`false` literal pattern.
type CaseBool struct {
	CaseBase
	Value bool
}

// CaseInt is an integer literal pattern.
type CaseInt struct {
	CaseBase
	Value int64
}

// CaseChar is a character literal pattern.
type CaseChar struct {
	CaseBase
	Payload string
}

// CaseArray is `[p1, p2, ..rest]`; Rest is nil when there is no `..rest`
// suffix, otherwise the trailing elements are bound to it as an array.
type CaseArray struct {
	CaseBase
	Elements []MatchCase
	Rest     *Binding
}

// CaseMembers is a positional tuple or record-member pattern list. A
// record pattern's named fields are rewritten to this positional form once
// the record's prototype is known (spec.md §4.5); any field omitted from a
// record pattern is filled in as CaseAny.
type CaseMembers struct {
	CaseBase
	Elements []MatchCase
}

// CaseUnion is a type-constructor pattern: Tag is the matched variant's
// index within its union prototype, Arity is the total number of variants
// the prototype declares (needed by simplify's "every tag present" collapse,
// spec.md §4.4.5(d), without re-consulting the type system), Pattern is the
// payload pattern (always a CaseMembers, or CaseAny for a zero-argument
// variant used bare), and Ctor is the constructor Binding this pattern
// names — carried so the checker can freshen the constructor's own Result
// type the same way a constructor call does (types.Fresh against the
// ambient nongen set), rather than depending on the scrutinee already
// having a known union type to dynamic_cast, as typecheck.cpp's
// MatchCaseUnion case does.
type CaseUnion struct {
	CaseBase
	Tag     int
	Arity   int
	Pattern MatchCase
	Ctor    *Binding
}

// CaseOr is an alternation `p1 | p2 | ...`. Every alternative must bind an
// identical set of placeholder names (enforced by the resolver, not here).
type CaseOr struct {
	CaseBase
	Alternatives []MatchCase
}

// CaseIf wraps Inner with a guard expression; the arm only matches when
// Inner matches and Guard evaluates true. Guard's free variables resolve
// against the bindings Inner introduces, never the enclosing scope.
// Exhaustiveness checking never assumes a CaseIf arm is reachable-complete:
// it is skipped when building the cover (spec.md: "skipping guarded arms,
// which are never assumed exhaustive").
type CaseIf struct {
	CaseBase
	Inner MatchCase
	Guard Expr
}
