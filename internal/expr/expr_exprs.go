package expr

// Var is a resolved name reference; Binding is never nil once the resolver
// has finished with a well-formed program.
type Var struct {
	Base
	Name    string
	Binding *Binding
}

// UnaryOp is `+`/`-`/`not` applied to Operand.
type UnaryOp struct {
	Base
	Op      string
	Operand Expr
}

// BinaryOp is any of the precedence-climbed arithmetic/comparison/logical
// operators. Assignment (`:=`) is its own node, Assign, below, matching
// internal/ast's split.
type BinaryOp struct {
	Base
	Op          string
	Left, Right Expr
}

// Call is always positional by the time the resolver produces it: named
// arguments are rewritten to positional slots during resolution (spec.md
// §4.3), and a zero-argument union constructor reference is wrapped here
// too (`Ctor` used as a value becomes `Call{Callee: Ctor, Args: nil}`).
type Call struct {
	Base
	Callee Expr
	Args   []Expr
}

// Index is `array[i]`.
type Index struct {
	Base
	Array, Index Expr
}

// Slice is `array[low..high]`; Low and High are nil when that side is open.
type Slice struct {
	Base
	Array, Low, High Expr
}

// Member is `.name` on a record-typed aggregate; MemberIndex is filled in
// by the checker once the aggregate's prototype is known (spec.md §4.5).
type Member struct {
	Base
	Target      Expr
	Name        string
	MemberIndex int
}

// Assign is `target := value`.
type Assign struct {
	Base
	Target, Value Expr
}
