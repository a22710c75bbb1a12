package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintVarShowsItsScope(t *testing.T) {
	b := &Binding{Scope: Local, Name: "x"}
	assert.Equal(t, "x/local", Print(&Var{Name: "x", Binding: b}))

	ctor := &Binding{Scope: UnionCtor, Name: "Some"}
	assert.Equal(t, "Some/constructor", Print(&Var{Name: "Some", Binding: ctor}))
}

func TestPrintArithmeticAndCall(t *testing.T) {
	add := &BinaryOp{Op: "+", Left: &Int{Value: 1}, Right: &Int{Value: 2}}
	assert.Equal(t, "(1 + 2)", Print(add))

	callee := &Var{Name: "f", Binding: &Binding{Scope: FreeFunc, Name: "f"}}
	call := &Call{Callee: callee, Args: []Expr{&Int{Value: 1}, &Int{Value: 2}}}
	assert.Equal(t, "f/function(1, 2)", Print(call))
}

func TestPrintBlockAndLetValue(t *testing.T) {
	target := &Binding{Scope: Local, Name: "x"}
	let := &LetValue{Target: target, Value: &Block{Exprs: []Expr{&Int{Value: 1}}}}
	ref := &Var{Name: "x", Binding: target}
	block := &Block{Exprs: []Expr{let, ref}}
	assert.Equal(t, "{ let x = { 1 }, x/local }", Print(block))
}

func TestPrintClosureShowsCaptures(t *testing.T) {
	x := &Binding{Scope: Cell, Name: "x"}
	closure := &Closure{
		Name:      "f",
		Body:      &Block{Exprs: []Expr{&Var{Name: "x", Binding: &Binding{Scope: ContextRef, Name: "x"}}}},
		Externals: []*Binding{x},
	}
	assert.Equal(t, "fun f() [captures x] -> { x/context }", Print(closure))
}

func TestPrintUnionPatternInMatch(t *testing.T) {
	some := &Binding{Scope: UnionCtor, Name: "Some"}
	payload := &Binding{Scope: Local, Name: "v"}
	arm := &MatchArm{
		Case: &CaseUnion{Tag: 1, Arity: 2, Ctor: some, Pattern: &CaseAny{Binding: payload}},
		Body: &Block{Exprs: []Expr{&Var{Name: "v", Binding: payload}}},
	}
	noneBind := &Binding{Scope: UnionCtor, Name: "None"}
	noneArm := &MatchArm{Case: &CaseUnion{Tag: 0, Arity: 2, Ctor: noneBind, Pattern: &CaseAny{}}, Body: &Block{Exprs: []Expr{&Int{Value: 0}}}}

	scrutinee := &Var{Name: "opt", Binding: &Binding{Scope: Local, Name: "opt"}}
	m := &Match{Scrutinee: scrutinee, Arms: []*MatchArm{arm, noneArm}}
	assert.Equal(t, "match opt/local with | Some(v) -> { v/local } | None -> { 0 }", Print(m))
}
