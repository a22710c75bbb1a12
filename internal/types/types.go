// Package types implements aike's type representation and Hindley-Milner
// unification (spec.md §4.4). Unlike a substitution-map HM implementation,
// generic type variables here carry a mutable Instance pointer that gets
// filled in by Unify and walked (with path compression) by Prune — the same
// discipline bootstrap/typecheck.cpp uses, because spec.md's unification
// semantics are the authority for this package, not the teacher's own
// (substitution-based) type system.
package types

// Type is the closed set of concrete type representations. There is no
// dispatch method on the interface itself: callers type-switch, matching the
// rest of the codebase's sum-type convention (see internal/ast).
type Type interface {
	isType()
}

// Generic is an unbound (or bound-by-unification) type variable. Name is
// empty for inference-introduced variables, which print.go assigns a fresh
// display name to on demand; it is non-empty for a type declaration's own
// generic parameters ('a, 'b, ...), which must keep their source name.
//
// Instance is nil until Unify binds the variable; Frozen marks a variable
// that must never be unified further (a declared, not inferred, generic).
type Generic struct {
	Name     string
	Instance Type
	Frozen   bool
}

func (*Generic) isType() {}

// Unit, Int, Char, Float and Bool are the scalar base types. Distinct
// allocations of the same kind are structurally equal (Unify type-switches
// on kind, not on pointer identity), so callers are free to allocate a fresh
// one per occurrence or share a singleton.
type Unit struct{}
type Int struct{}
type Char struct{}
type Float struct{}
type Bool struct{}

func (*Unit) isType()  {}
func (*Int) isType()   {}
func (*Char) isType()  {}
func (*Float) isType() {}
func (*Bool) isType()  {}

// Array is a homogeneous array type.
type Array struct {
	Contained Type
}

func (*Array) isType() {}

// Function is an n-ary function type; Args is fixed-arity, no currying.
type Function struct {
	Result Type
	Args   []Type
}

func (*Function) isType() {}

// Tuple is a fixed-arity heterogeneous tuple.
type Tuple struct {
	Members []Type
}

func (*Tuple) isType() {}

// Prototype is the declared shape behind a named (record or union) type.
// Distinct from Type: a Prototype is looked up once per `type` declaration
// and then referenced, possibly many times, by Instance.Cell.
type Prototype interface {
	isPrototype()
}

// PrototypeRecord is the shape of a `type Name<generics> = { fields }`
// declaration.
type PrototypeRecord struct {
	Name        string
	MemberTypes []Type
	MemberNames []string
	Generics    []Type
}

func (*PrototypeRecord) isPrototype() {}

// PrototypeUnion is the shape of a `type Name<generics> = | Variant ...`
// declaration. Variant payloads are carried the same way record fields are:
// by parallel MemberTypes/MemberNames slices, one entry per variant.
type PrototypeUnion struct {
	Name        string
	MemberTypes []Type
	MemberNames []string
	Generics    []Type
}

func (*PrototypeUnion) isPrototype() {}

// Cell is a forward-reference slot for a Prototype: a `type` declaration
// allocates a Cell before its body is resolved (so a recursive or
// mutually-recursive declaration can refer to its own Instance before its
// Prototype exists) and fills it in once the declaration is complete. This
// is the Go equivalent of bootstrap/type.hpp's TypePrototype** indirection:
// every Instance of the same declared type shares one Cell, so prototype
// identity compares by comparing *Cell pointers, not by structural equality
// (Prototype's MemberTypes/Generics slices make it non-comparable anyway).
type Cell struct {
	Proto Prototype
}

// Instance is an occurrence of a named (record or union) type, applied to
// its generic arguments.
type Instance struct {
	Cell     *Cell
	Generics []Type
}

func (*Instance) isType() {}

// ClosureContext is the synthesized record of a closure's captured
// variables, built by internal/lower when converting closures to flat
// functions plus an explicit environment argument.
type ClosureContext struct {
	MemberTypes []Type
	MemberNames []string
}

func (*ClosureContext) isType() {}
