package lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/tir"
	"github.com/aikelang/aikec/internal/types"
)

func block(typ types.Type, exprs ...expr.Expr) *expr.Block {
	return &expr.Block{Base: expr.Base{Typ: typ}, Exprs: exprs}
}

func TestLowerTopLevelLetAndLoad(t *testing.T) {
	x := &expr.Binding{Scope: expr.Local, Name: "x", Type: &types.Int{}}
	letX := &expr.LetValue{Target: x, Value: block(&types.Int{}, &expr.Int{Base: expr.Base{Typ: &types.Int{}}, Value: 1})}
	ref := &expr.Var{Base: expr.Base{Typ: &types.Int{}}, Name: "x", Binding: x}
	root := block(&types.Int{}, letX, ref)

	prog := Lower(root)
	require.Len(t, prog.Main.Body, 2)

	let, ok := prog.Main.Body[0].(*tir.SLet)
	require.True(t, ok)
	assert.Equal(t, "x", let.Target.Name)

	se, ok := prog.Main.Body[1].(*tir.SExpr)
	require.True(t, ok)
	load, ok := se.Value.(*tir.ELoad)
	require.True(t, ok)
	assert.Same(t, let.Target, load.Var)
}

// Two references to the same generic function at different concrete types
// must monomorphise to two distinct Funcs, mangled per spec.md §6.2.
func TestLowerMonomorphisesGenericFunctionPerInstance(t *testing.T) {
	g := &types.Generic{}
	fnType := &types.Function{Args: []types.Type{g}, Result: g}
	target := &expr.Binding{Scope: expr.FreeFunc, Name: "id", Type: fnType}
	param := &expr.Binding{Scope: expr.Local, Name: "x", Type: g}
	closure := &expr.Closure{
		Name:       "id",
		Params:     []*expr.Binding{param},
		ReturnType: g,
		Body:       block(g, &expr.Var{Base: expr.Base{Typ: g}, Name: "x", Binding: param}),
	}
	letFn := &expr.LetFunc{Target: target, Fn: closure}

	intFn := &types.Function{Args: []types.Type{&types.Int{}}, Result: &types.Int{}}
	boolFn := &types.Function{Args: []types.Type{&types.Bool{}}, Result: &types.Bool{}}
	refInt := &expr.Var{Base: expr.Base{Typ: intFn}, Name: "id", Binding: target}
	refBool := &expr.Var{Base: expr.Base{Typ: boolFn}, Name: "id", Binding: target}

	root := block(&types.Unit{}, letFn, refInt, refBool)
	prog := Lower(root)

	require.Len(t, prog.Funcs, 2)
	assert.Equal(t, "id..b", prog.Funcs[0].Name)
	assert.Equal(t, "id..i", prog.Funcs[1].Name)

	require.Len(t, prog.Main.Body, 2)
	for _, stmt := range prog.Main.Body {
		se := stmt.(*tir.SExpr)
		mc, ok := se.Value.(*tir.EMakeClosure)
		require.True(t, ok)
		assert.Contains(t, []string{"id..b", "id..i"}, mc.Func)
		_, ok = mc.Context.(*tir.EUnit)
		assert.True(t, ok, "id captures nothing, context should be unit")
	}
}

// A closure capturing an enclosing local lowers its reference to an
// EMakeContext built from the captured value, and the instance itself
// receives a ClosureContext-typed trailing parameter.
func TestLowerClosureCapture(t *testing.T) {
	x := &expr.Binding{Scope: expr.Cell, Name: "x", Type: &types.Int{}}
	ctxRef := &expr.Binding{Scope: expr.ContextRef, Name: "x", Type: &types.Int{}}

	fnType := &types.Function{Args: nil, Result: &types.Int{}}
	target := &expr.Binding{Scope: expr.FreeFunc, Name: "f", Type: fnType}
	closure := &expr.Closure{
		Name:       "f",
		ReturnType: &types.Int{},
		Body:       block(&types.Int{}, &expr.Var{Base: expr.Base{Typ: &types.Int{}}, Name: "x", Binding: ctxRef}),
		Externals:  []*expr.Binding{x},
	}
	letX := &expr.LetValue{Target: x, Value: block(&types.Int{}, &expr.Int{Base: expr.Base{Typ: &types.Int{}}, Value: 1})}
	letFn := &expr.LetFunc{Target: target, Fn: closure}
	ref := &expr.Var{Base: expr.Base{Typ: fnType}, Name: "f", Binding: target}

	root := block(&types.Unit{}, letX, letFn, ref)
	prog := Lower(root)

	require.Len(t, prog.Funcs, 1)
	fn := prog.Funcs[0]
	assert.Equal(t, "f", fn.Name)
	require.NotNil(t, fn.Context)
	ctxType, ok := fn.Context.Type.(*types.ClosureContext)
	require.True(t, ok)
	require.Len(t, ctxType.MemberNames, 1)
	assert.Equal(t, "x", ctxType.MemberNames[0])

	// the function body reads its one capture through Context
	require.Len(t, fn.Body, 1)
	se := fn.Body[0].(*tir.SExpr)
	member, ok := se.Value.(*tir.EMember)
	require.True(t, ok)
	assert.Equal(t, 0, member.Index)
	load, ok := member.Target.(*tir.ELoad)
	require.True(t, ok)
	assert.Same(t, fn.Context, load.Var)

	// the reference site builds an EMakeContext from the captured local
	require.Len(t, prog.Main.Body, 2)
	se2 := prog.Main.Body[1].(*tir.SExpr)
	mc, ok := se2.Value.(*tir.EMakeClosure)
	require.True(t, ok)
	assert.Equal(t, "f", mc.Func)
	ectx, ok := mc.Context.(*tir.EMakeContext)
	require.True(t, ok)
	require.Len(t, ectx.Fields, 1)
	xload, ok := ectx.Fields[0].(*tir.ELoad)
	require.True(t, ok)
	assert.Equal(t, "x", xload.Var.Name)
}

// A union constructor call never monomorphises - it lowers directly to
// ENewUnion, tag resolved against the prototype's declared member order.
func TestLowerUnionConstructorCall(t *testing.T) {
	proto := &types.PrototypeUnion{Name: "Option", MemberNames: []string{"None", "Some"}, MemberTypes: []types.Type{&types.Unit{}, &types.Int{}}}
	cell := &types.Cell{Proto: proto}
	inst := &types.Instance{Cell: cell, Generics: nil}
	ctorType := &types.Function{Args: []types.Type{&types.Int{}}, Result: inst}
	some := &expr.Binding{Scope: expr.UnionCtor, Name: "Some", Type: ctorType}

	callee := &expr.Var{Base: expr.Base{Typ: ctorType}, Name: "Some", Binding: some}
	call := &expr.Call{Base: expr.Base{Typ: inst}, Callee: callee, Args: []expr.Expr{&expr.Int{Base: expr.Base{Typ: &types.Int{}}, Value: 7}}}

	root := block(&types.Unit{}, call)
	prog := Lower(root)

	require.Len(t, prog.Main.Body, 1)
	se := prog.Main.Body[0].(*tir.SExpr)
	nu, ok := se.Value.(*tir.ENewUnion)
	require.True(t, ok)
	assert.Equal(t, 1, nu.Tag)
	lit, ok := nu.Payload.(*tir.EInt)
	require.True(t, ok)
	assert.EqualValues(t, 7, lit.Value)
}

// Matching a union payload compiles to a DSwitchTag whose matched case
// extracts the payload through EUnionPayload and binds it via DBind.
func TestLowerMatchUnionPayloadBinding(t *testing.T) {
	proto := &types.PrototypeUnion{Name: "Option", MemberNames: []string{"None", "Some"}, MemberTypes: []types.Type{&types.Unit{}, &types.Int{}}}
	cell := &types.Cell{Proto: proto}
	inst := &types.Instance{Cell: cell, Generics: nil}

	scrutinee := &expr.Var{Base: expr.Base{Typ: inst}, Name: "opt", Binding: &expr.Binding{Scope: expr.Local, Name: "opt", Type: inst}}

	payloadBinding := &expr.Binding{Scope: expr.Local, Name: "v", Type: &types.Int{}}
	someArm := &expr.MatchArm{
		Case: &expr.CaseUnion{Tag: 1, Arity: 2, Pattern: &expr.CaseAny{Binding: payloadBinding}},
		Body: block(&types.Unit{}, &expr.Var{Base: expr.Base{Typ: &types.Int{}}, Name: "v", Binding: payloadBinding}),
	}
	noneArm := &expr.MatchArm{
		Case: &expr.CaseUnion{Tag: 0, Arity: 2, Pattern: &expr.CaseAny{}},
		Body: block(&types.Unit{}),
	}
	match := &expr.Match{Base: expr.Base{Typ: &types.Unit{}}, Scrutinee: scrutinee, Arms: []*expr.MatchArm{someArm, noneArm}}

	root := block(&types.Unit{}, match)
	prog := Lower(root)

	require.Len(t, prog.Main.Body, 1)
	se := prog.Main.Body[0].(*tir.SExpr)
	dec, ok := se.Value.(*tir.EDecision)
	require.True(t, ok)
	require.NotNil(t, dec.Var)

	tree, ok := dec.Tree.(*tir.DSwitchTag)
	require.True(t, ok)
	require.Len(t, tree.Cases, 1)
	assert.Equal(t, 1, tree.Cases[0].Tag)
	_, ok = tree.Default.(*tir.DSwitchTag)
	require.True(t, ok, "the None arm falls through to its own tag switch")

	leaf, ok := tree.Cases[0].Next.(*tir.DLeaf)
	require.True(t, ok)
	require.Len(t, leaf.Binds, 1)
	payload, ok := leaf.Binds[0].Value.(*tir.EUnionPayload)
	require.True(t, ok)
	load, ok := payload.Target.(*tir.ELoad)
	require.True(t, ok)
	assert.Same(t, dec.Var, load.Var)
}
