package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/types"
)

func blockOf(exprs ...expr.Expr) *expr.Block {
	return &expr.Block{Exprs: exprs}
}

func TestCheckArithmeticAndComparison(t *testing.T) {
	// (1 + 2) < 3
	cmp := &expr.BinaryOp{
		Op:   "<",
		Left: &expr.BinaryOp{Op: "+", Left: &expr.Int{Value: 1}, Right: &expr.Int{Value: 2}},
		Right: &expr.Int{Value: 3},
	}
	root := blockOf(cmp)
	d := CheckFile(root)
	require.Nil(t, d)
	_, ok := types.FinalType(root.ExprType()).(*types.Bool)
	assert.True(t, ok)
}

func TestCheckLetValueAndVarReference(t *testing.T) {
	target := &expr.Binding{Scope: expr.Local, Name: "x", Type: &types.Generic{}}
	letX := &expr.LetValue{Target: target, Value: blockOf(&expr.Int{Value: 5})}
	ref := &expr.Var{Name: "x", Binding: target}
	root := blockOf(letX, ref)
	d := CheckFile(root)
	require.Nil(t, d)
	_, ok := types.FinalType(ref.ExprType()).(*types.Int)
	assert.True(t, ok)
}

// An unannotated let-bound function is polymorphic across its own separate
// call sites: `id` is checked once, but each reference to it is freshened
// independently (checkVar's FreeFunc branch), so calling it with an int and
// then a bool in the same program does not unify those two usages together.
func TestCheckLetFuncIsPolymorphicAcrossCallSites(t *testing.T) {
	paramType := &types.Generic{}
	fnType := &types.Function{Args: []types.Type{paramType}, Result: paramType}
	idTarget := &expr.Binding{Scope: expr.FreeFunc, Name: "id", Type: fnType}
	paramBinding := &expr.Binding{Scope: expr.Local, Name: "x", Type: paramType}
	idFunc := &expr.LetFunc{
		Target: idTarget,
		Fn: &expr.Closure{
			Params:     []*expr.Binding{paramBinding},
			ReturnType: paramType,
			Body:       blockOf(&expr.Var{Name: "x", Binding: paramBinding}),
		},
	}

	callInt := &expr.Call{Callee: &expr.Var{Name: "id", Binding: idTarget}, Args: []expr.Expr{&expr.Int{Value: 1}}}
	r1 := &expr.Binding{Scope: expr.Local, Name: "r1", Type: &types.Generic{}}
	letR1 := &expr.LetValue{Target: r1, Value: blockOf(callInt)}

	callBool := &expr.Call{Callee: &expr.Var{Name: "id", Binding: idTarget}, Args: []expr.Expr{&expr.Boolean{Value: true}}}

	root := blockOf(idFunc, letR1, callBool)
	d := CheckFile(root)
	require.Nil(t, d)
	_, ok := types.FinalType(callBool.ExprType()).(*types.Bool)
	assert.True(t, ok)
}

func TestCheckTypeMismatchProducesDiagnostic(t *testing.T) {
	bad := &expr.BinaryOp{Op: "+", Left: &expr.Boolean{Value: true}, Right: &expr.Int{Value: 1}}
	d := CheckFile(blockOf(bad))
	require.NotNil(t, d)
	assert.Equal(t, diag.TypeError, d.Kind)
}

func TestCheckMemberAccessFillsIndex(t *testing.T) {
	proto := &types.PrototypeRecord{
		Name:        "Point",
		MemberTypes: []types.Type{&types.Int{}, &types.Int{}},
		MemberNames: []string{"x", "y"},
	}
	cell := &types.Cell{Proto: proto}
	target := &expr.Binding{Scope: expr.Local, Name: "p", Type: &types.Instance{Cell: cell}}
	member := &expr.Member{Target: &expr.Var{Name: "p", Binding: target}, Name: "y"}

	d := CheckFile(blockOf(member))
	require.Nil(t, d)
	assert.Equal(t, 1, member.MemberIndex)
	_, ok := types.FinalType(member.ExprType()).(*types.Int)
	assert.True(t, ok)
}

func TestCheckMemberAccessUnknownFieldFails(t *testing.T) {
	proto := &types.PrototypeRecord{Name: "Point", MemberTypes: []types.Type{&types.Int{}}, MemberNames: []string{"x"}}
	cell := &types.Cell{Proto: proto}
	target := &expr.Binding{Scope: expr.Local, Name: "p", Type: &types.Instance{Cell: cell}}
	member := &expr.Member{Target: &expr.Var{Name: "p", Binding: target}, Name: "z"}

	d := CheckFile(blockOf(member))
	require.NotNil(t, d)
	assert.Equal(t, diag.TypeError, d.Kind)
}

// optionPrototype builds type Option<'a> = None | Some of 'a, along with its
// two constructor bindings, the way internal/resolver's finishTypeUnion
// does.
func optionPrototype() (cell *types.Cell, none, some *expr.Binding) {
	g := &types.Generic{Name: "a", Frozen: true}
	cell = &types.Cell{}
	proto := &types.PrototypeUnion{
		Name:        "Option",
		MemberTypes: []types.Type{&types.Unit{}, g},
		MemberNames: []string{"None", "Some"},
		Generics:    []types.Type{g},
	}
	cell.Proto = proto
	none = &expr.Binding{
		Scope: expr.UnionCtor, Name: "None",
		Type: &types.Function{Args: nil, Result: &types.Instance{Cell: cell, Generics: []types.Type{g}}},
	}
	some = &expr.Binding{
		Scope: expr.UnionCtor, Name: "Some",
		Type: &types.Function{Args: []types.Type{g}, Result: &types.Instance{Cell: cell, Generics: []types.Type{g}}},
	}
	return cell, none, some
}

func TestCheckExhaustiveUnionMatch(t *testing.T) {
	cell, none, some := optionPrototype()
	scrutTarget := &expr.Binding{Scope: expr.Local, Name: "o", Type: &types.Instance{Cell: cell, Generics: []types.Type{&types.Int{}}}}

	vBinding := &expr.Binding{Scope: expr.Local, Name: "v", Type: &types.Generic{}}
	m := &expr.Match{
		Scrutinee: &expr.Var{Name: "o", Binding: scrutTarget},
		Arms: []*expr.MatchArm{
			{Case: &expr.CaseUnion{Tag: 0, Arity: 2, Pattern: &expr.CaseAny{}, Ctor: none}, Body: blockOf(&expr.Int{Value: 0})},
			{
				Case: &expr.CaseUnion{
					Tag: 1, Arity: 2, Ctor: some,
					Pattern: &expr.CaseMembers{Elements: []expr.MatchCase{&expr.CaseAny{Binding: vBinding}}},
				},
				Body: blockOf(&expr.Var{Name: "v", Binding: vBinding}),
			},
		},
	}

	d := CheckFile(blockOf(m))
	require.Nil(t, d)
	_, ok := types.FinalType(m.ExprType()).(*types.Int)
	assert.True(t, ok)
	_, ok = types.FinalType(vBinding.Type).(*types.Int)
	assert.True(t, ok)
}

func TestCheckNonExhaustiveUnionMatchFails(t *testing.T) {
	cell, _, some := optionPrototype()
	scrutTarget := &expr.Binding{Scope: expr.Local, Name: "o", Type: &types.Instance{Cell: cell, Generics: []types.Type{&types.Int{}}}}

	m := &expr.Match{
		Scrutinee: &expr.Var{Name: "o", Binding: scrutTarget},
		Arms: []*expr.MatchArm{
			{
				Case: &expr.CaseUnion{
					Tag: 1, Arity: 2, Ctor: some,
					Pattern: &expr.CaseMembers{Elements: []expr.MatchCase{&expr.CaseAny{}}},
				},
				Body: blockOf(&expr.Unit{}),
			},
		},
	}

	d := CheckFile(blockOf(m))
	require.NotNil(t, d)
	assert.Equal(t, diag.MatchAnalysis, d.Kind)
}

func TestCheckIfWithoutElseRequiresUnitThen(t *testing.T) {
	ifExpr := &expr.If{Cond: &expr.Boolean{Value: true}, Then: blockOf(&expr.Int{Value: 1})}
	d := CheckFile(blockOf(ifExpr))
	require.NotNil(t, d)
	assert.Equal(t, diag.TypeError, d.Kind)
}

func TestCheckBlockRejectsNonUnitNonLastExpr(t *testing.T) {
	root := blockOf(&expr.Int{Value: 1}, &expr.Int{Value: 2})
	d := CheckFile(root)
	require.NotNil(t, d)
	assert.Equal(t, diag.TypeError, d.Kind)
}

func TestCheckArrayIndexAndElementUnify(t *testing.T) {
	arr := &expr.ArrayLit{Elements: []expr.Expr{&expr.Int{Value: 1}, &expr.Int{Value: 2}}}
	idx := &expr.Index{Array: arr, Index: &expr.Int{Value: 0}}
	d := CheckFile(blockOf(idx))
	require.Nil(t, d)
	_, ok := types.FinalType(idx.ExprType()).(*types.Int)
	assert.True(t, ok)
}

func TestCheckStringLiteralIsCharArray(t *testing.T) {
	s := &expr.StringLit{Payload: "hi"}
	d := CheckFile(blockOf(s))
	require.Nil(t, d)
	arr, ok := types.FinalType(s.ExprType()).(*types.Array)
	require.True(t, ok)
	_, ok = types.FinalType(arr.Contained).(*types.Char)
	assert.True(t, ok)
}

func TestCheckBangIsBooleanNegation(t *testing.T) {
	neg := &expr.UnaryOp{Op: "!", Operand: &expr.Boolean{Value: true}}
	d := CheckFile(blockOf(neg))
	require.Nil(t, d)
	_, ok := types.FinalType(neg.ExprType()).(*types.Bool)
	assert.True(t, ok)
}
