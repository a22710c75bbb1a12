package tir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aikelang/aikec/internal/types"
)

func TestPrintProgramRendersEachFuncOneStatementPerLine(t *testing.T) {
	x := &Var{Name: "x", Type: &types.Int{}}
	y := &Var{Name: "y", Type: &types.Int{}}
	add := &Func{
		Name:   "add",
		Params: []*Var{x, y},
		Result: &types.Int{},
		Body: []Stmt{
			&SExpr{Value: &EBinaryOp{Op: "+", Left: &ELoad{Var: x}, Right: &ELoad{Var: y}}},
		},
	}
	main := &Func{Name: "main"}
	prog := &Program{Funcs: []*Func{add}, Main: main}

	want := "func add(x, y) {\n  (x + y)\n}\nfunc main() {\n}\n"
	assert.Equal(t, want, Print(prog))
}

func TestPrintDecisionSwitchBool(t *testing.T) {
	v := &Var{Name: "match", Type: &types.Bool{}}
	val := &ELoad{Var: v}
	dec := &EDecision{
		Var:       v,
		Scrutinee: val,
		Tree: &DSwitchBool{
			Scrutinee: val,
			True:      &DLeaf{Body: &EInt{Value: 1}},
			False:     &DLeaf{Body: &EInt{Value: 0}},
		},
	}
	var b strings.Builder
	printExpr(&b, dec)
	want := "decision(match = match, switch-bool{true: leaf[] 1, false: leaf[] 0})"
	assert.Equal(t, want, b.String())
}

func TestPrintClosureAndCall(t *testing.T) {
	x := &Var{Name: "x", Type: &types.Int{}}
	cl := &EMakeClosure{Func: "f", Context: &EMakeContext{Fields: []Expr{&ELoad{Var: x}}}}
	call := &ECall{Callee: cl, Args: []Expr{&EInt{Value: 5}}}
	var b strings.Builder
	printExpr(&b, call)
	assert.Equal(t, "closure(f, context[x])(5)", b.String())
}
