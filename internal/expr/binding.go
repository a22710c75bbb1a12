package expr

import "github.com/aikelang/aikec/internal/types"

// Scope classifies what a Binding refers to (spec.md §3.6).
type Scope int

const (
	// Local is a variable, function parameter, for-loop variable, or
	// pattern-introduced name, read directly from the declaring function's
	// own frame.
	Local Scope = iota
	// Cell marks a Local that some nested closure captures. The binding
	// still belongs to its declaring function, but the declaring function
	// must place its value in a boxed/shared slot rather than an ordinary
	// local, since a nested closure's environment record needs to read it
	// (spec.md §3.7's closure-capture invariant).
	Cell
	// ContextRef is a reference synthesized inside a nested closure that
	// captures a Cell binding from an enclosing function: read through that
	// closure's own environment record rather than from a local slot.
	ContextRef
	// FreeFunc is a top-level or nested function, referenced by name.
	FreeFunc
	// UnionCtor is a union-variant constructor, regular or zero-arg.
	UnionCtor
)

func (s Scope) String() string {
	switch s {
	case Local:
		return "local"
	case Cell:
		return "cell"
	case ContextRef:
		return "context"
	case FreeFunc:
		return "function"
	case UnionCtor:
		return "constructor"
	default:
		return "?"
	}
}

// Binding is a reference target. Its pointer identity is stable for the
// rest of compilation once created (spec.md §3.6): two Var nodes referring
// to the same declaration share the same *Binding, and substitution during
// inference happens through Type's own instance links, never by swapping
// out which Binding a Var points to.
type Binding struct {
	Scope Scope
	Name  string
	Type  types.Type
}
