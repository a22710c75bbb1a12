package expr

import "github.com/aikelang/aikec/internal/types"

// LetValue is `let name [: Type] = Value`.
type LetValue struct {
	Base
	Target *Binding
	Value  *Block
}

// LetTuple is `let (a, b, ...) = Value`, destructuring a tuple into several
// local bindings at once.
type LetTuple struct {
	Base
	Targets []*Binding
	Value   *Block
}

// LetFunc is `let name(params) = Body`; Fn carries the actual Closure
// (params, body, captured context). Kept as a distinct node from a bare
// Closure value so that LetFunc's own Target binding (the function's name,
// usable recursively inside Body per spec.md §4.3's pre-binding pass) is
// visible without unwrapping Fn.
type LetFunc struct {
	Base
	Target *Binding
	Fn     *Closure
}

// ExternFunc is `extern name(args) : ReturnType`: a declared, bodyless
// function whose calling convention is "call this symbol directly", per
// SPEC_FULL.md §12's supplemented extern semantics.
type ExternFunc struct {
	Base
	Target *Binding
}

// TypeDecl records a resolved record or union declaration's prototype so
// later phases (dump, lowering) can still see it in the block's expression
// sequence; it contributes no runtime value (it is implicitly unit, like
// every other declaration form — spec.md §4.5's block rule).
type TypeDecl struct {
	Base
	Name  string
	Proto types.Prototype
}
