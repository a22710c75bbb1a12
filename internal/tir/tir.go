// Package tir is aike's typed intermediate representation, the output of
// internal/lower (spec.md §4.6). TIR preserves every type so a backend
// never re-infers, and has already resolved away everything a backend
// would otherwise have to handle itself: there are no generics left (every
// function reference has been monomorphised to one concrete instance,
// spec.md §4.6(1)), no bare closure values (closure conversion has split
// every captured function into a Func plus an explicit ClosureContext
// argument, spec.md §4.6(2)), and no MatchCase patterns (pattern
// compilation has lowered every Match into a Decision tree of primitive
// tests, spec.md §4.6(3); see tir_decision.go).
package tir

import "github.com/aikelang/aikec/internal/types"

// Program is everything one compilation unit lowers to: every function
// instance monomorphisation produced, plus the unit's own top-level code
// as an implicit zero-argument entry function (original_source/bootstrap
// treats a unit's top-level statements the same way - as the body of its
// own implicit function - rather than as module-level static initializers).
type Program struct {
	Funcs []*Func
	Main  *Func
}

// Func is one monomorphised, closure-converted function instance. Name is
// produced by internal/mangle so that every reference to the same
// (declaration, instance key) pair anywhere in the program names the same
// symbol. Context is nil when the function captures nothing; otherwise it
// is the hidden trailing parameter a call site must also supply (spec.md
// §4.6(2): "calls invoke code_ptr(args…, env_ptr)").
type Func struct {
	Name    string
	Params  []*Var
	Context *Var
	Result  types.Type
	Body    []Stmt
}

// Var is a flat TIR-level named slot - a parameter, a function's own
// Context record, or a let-bound local. Unlike expr.Binding, a Var carries
// no Scope: closure conversion has already turned every ContextRef access
// into an explicit Context member read, and Local and Cell bindings both
// become plain Vars, so there is nothing left to distinguish.
type Var struct {
	Name string
	Type types.Type
}

// Stmt is one statement of a Func's (or a Decision leaf's) body.
type Stmt interface{ isStmt() }

// SLet binds Value's result to Target for the rest of the enclosing body.
type SLet struct {
	Target *Var
	Value  Expr
}

// SExpr evaluates Value for its side effect (or, as the body's last
// statement, for its result).
type SExpr struct {
	Value Expr
}

func (*SLet) isStmt()  {}
func (*SExpr) isStmt() {}

// Expr is one TIR expression node; every node carries its own resolved
// type, copied over from the corresponding internal/expr node's type once
// lowering has finished monomorphising it.
type Expr interface {
	isExpr()
	Typ() types.Type
}

// ExprBase is embedded by every concrete Expr.
type ExprBase struct {
	Type types.Type
}

func (b ExprBase) Typ() types.Type { return b.Type }

type EUnit struct{ ExprBase }
type EInt struct {
	ExprBase
	Value int64
}
type EFloat struct {
	ExprBase
	Value float64
}
type EChar struct {
	ExprBase
	Payload string
}
type EString struct {
	ExprBase
	Payload string
}
type EBool struct {
	ExprBase
	Value bool
}

func (*EUnit) isExpr()   {}
func (*EInt) isExpr()    {}
func (*EFloat) isExpr()  {}
func (*EChar) isExpr()   {}
func (*EString) isExpr() {}
func (*EBool) isExpr()   {}

// EArrayLit is `[e1, e2, ...]`.
type EArrayLit struct {
	ExprBase
	Elements []Expr
}

// ETupleLit is `(e1, e2, ...)`, and also the payload value of a monomorphic
// union variant whose declared payload is itself a tuple (see ENewUnion).
type ETupleLit struct {
	ExprBase
	Elements []Expr
}

func (*EArrayLit) isExpr() {}
func (*ETupleLit) isExpr() {}

// ELoad reads a Var's current value (a parameter, a local, or the
// function's own Context record).
type ELoad struct {
	ExprBase
	Var *Var
}

func (*ELoad) isExpr() {}

// EMember reads one positional element of an aggregate value: a tuple
// member, a closure-context field, or (once the checker has resolved
// Member.MemberIndex) a record field - all three are "element N of an
// aggregate" at this level, so one node serves all three, matching how
// internal/checker's own Member.MemberIndex already unifies record-field
// lookup into one integer slot.
type EMember struct {
	ExprBase
	Target Expr
	Index  int
}

func (*EMember) isExpr() {}

// EUnaryOp is `+`/`-`/`not`/`!`.
type EUnaryOp struct {
	ExprBase
	Op      string
	Operand Expr
}

// EBinaryOp is any arithmetic/comparison/equality/logical operator.
type EBinaryOp struct {
	ExprBase
	Op          string
	Left, Right Expr
}

func (*EUnaryOp) isExpr()  {}
func (*EBinaryOp) isExpr() {}

// EIndex is `array[i]`.
type EIndex struct {
	ExprBase
	Array, Index Expr
}

// ESlice is `array[low..high]`; Low/High are nil when that side is open.
type ESlice struct {
	ExprBase
	Array, Low, High Expr
}

func (*EIndex) isExpr() {}
func (*ESlice) isExpr() {}

// EAssign is `target := value`.
type EAssign struct {
	ExprBase
	Target, Value Expr
}

func (*EAssign) isExpr() {}

// EBlock sequences Stmts; its type is the last statement's expression type,
// or unit when the block ends in an SLet (a block whose last expression is
// a let lowers that way). An empty Block lowers to EUnit, not to an EBlock.
type EBlock struct {
	ExprBase
	Stmts []Stmt
}

func (*EBlock) isExpr() {}

// EIf is `if Cond then Then [else Else]`.
type EIf struct {
	ExprBase
	Cond       Expr
	Then, Else Expr
}

// EForArray is `for Var in Array do Body`.
type EForArray struct {
	ExprBase
	Var   *Var
	Array Expr
	Body  Expr
}

// EForRange is `for Var in Low..High do Body`.
type EForRange struct {
	ExprBase
	Var       *Var
	Low, High Expr
	Body      Expr
}

// EWhile is `while Cond do Body`.
type EWhile struct {
	ExprBase
	Cond Expr
	Body Expr
}

func (*EIf) isExpr()       {}
func (*EForArray) isExpr() {}
func (*EForRange) isExpr() {}
func (*EWhile) isExpr()    {}

// EMakeClosure builds a function value: Func names the monomorphised
// tir.Func instance this reference resolves to, Context is the captured
// environment to pair it with (EUnit{} for a function that captures
// nothing). Every reference to a named function - including a direct call
// site's callee - lowers through this node uniformly (spec.md §4.6(2):
// "Function values become a (code_ptr, env_ptr) pair"); there is no
// separate direct-call fast path.
type EMakeClosure struct {
	ExprBase
	Func    string
	Context Expr
}

// EMakeContext allocates one ClosureContext record from the captured
// values an enclosing function currently holds for each of a closure's
// externals, in the same order internal/resolver recorded them.
type EMakeContext struct {
	ExprBase
	Fields []Expr
}

func (*EMakeClosure) isExpr() {}
func (*EMakeContext) isExpr() {}

// ECall invokes a closure value (Callee, a (code_ptr, env_ptr) pair built
// by EMakeClosure or produced some other way - e.g. read out of a
// function-typed variable) with Args.
type ECall struct {
	ExprBase
	Callee Expr
	Args   []Expr
}

func (*ECall) isExpr() {}

// ENewUnion constructs a tagged union value: Tag is the variant's index,
// Payload is EUnit{} for a zero-argument variant, the single lowered value
// for a single-argument variant, or an ETupleLit for a tuple/record-arg
// variant - mirroring internal/resolver's ctorArgTypes flattening in
// reverse.
type ENewUnion struct {
	ExprBase
	Tag     int
	Payload Expr
}

// EUnionPayload extracts a union value's payload, once a DSwitchTag has
// already confirmed its tag; its own type is the matched variant's payload
// type (spec.md §4.6(3): "union-tag test followed by payload extraction").
type EUnionPayload struct {
	ExprBase
	Target Expr
}

func (*ENewUnion) isExpr()     {}
func (*EUnionPayload) isExpr() {}

// EDecision embeds a compiled Match (a Decision tree) as an expression:
// its type is every leaf's shared body type. Scrutinee is evaluated
// exactly once and bound to Var before Tree runs; every test and
// extraction inside Tree reads the matched value (or a sub-part of it)
// back through ELoad/EMember/EUnionPayload chains rooted at Var, rather
// than re-embedding Scrutinee itself, so a side-effecting scrutinee
// expression is never duplicated across the tree's tests.
type EDecision struct {
	ExprBase
	Scrutinee Expr
	Var       *Var
	Tree      Decision
}

func (*EDecision) isExpr() {}
