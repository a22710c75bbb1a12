package expr

import "github.com/aikelang/aikec/internal/types"

// If is `if cond then Then [else Else]`. Else is nil when absent, in which
// case the checker requires Then's type to be unit.
type If struct {
	Base
	Cond       Expr
	Then, Else *Block
}

// ForArray is `for v in array do Body`.
type ForArray struct {
	Base
	Var   *Binding
	Array Expr
	Body  *Block
}

// ForRange is `for v in low..high do Body`.
type ForRange struct {
	Base
	Var       *Binding
	Low, High Expr
	Body      *Block
}

// While is `while cond do Body`.
type While struct {
	Base
	Cond Expr
	Body *Block
}

// Closure is a function value: an anonymous function, or the body of a
// `let name(params) = body` once resolved. Params are bound locally inside
// Body. Externals is the ordered list of outer bindings the body depends
// on, in first-use order (spec.md §3.7's closure-capture invariant).
// ContextTarget is not set by internal/resolver and stays nil: no binding
// for the captured environment is synthesized here, and internal/lower
// builds each closure's environment record from Externals instead.
type Closure struct {
	Base
	Name          string // empty for an anonymous function
	Params        []*Binding
	ReturnType    types.Type // nil if the declaration left it unannotated
	Body          *Block
	ContextTarget *Binding
	Externals     []*Binding
}
