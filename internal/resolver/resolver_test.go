package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/lexer"
	"github.com/aikelang/aikec/internal/parser"
	"github.com/aikelang/aikec/internal/types"
)

func resolveSrc(t *testing.T, src string) (*expr.Block, *diag.Diagnostic) {
	t.Helper()
	toks, _, derr := lexer.New("t", src).Lex()
	require.Nil(t, derr)
	file, perr := parser.ParseFile("t", toks)
	require.Nil(t, perr, "%v", perr)
	return ResolveFile(file)
}

func TestResolveLetValue(t *testing.T) {
	root, derr := resolveSrc(t, "let x = 1 + 2\n")
	require.Nil(t, derr)
	require.Len(t, root.Exprs, 1)
	lv, ok := root.Exprs[0].(*expr.LetValue)
	require.True(t, ok)
	assert.Equal(t, "x", lv.Target.Name)
	assert.Equal(t, expr.Local, lv.Target.Scope)
}

func TestResolveRecursiveLetFunc(t *testing.T) {
	src := "let fact(n: int) : int =\n  if n == 0 then 1 else n * fact(n - 1)\n"
	root, derr := resolveSrc(t, src)
	require.Nil(t, derr)
	lf, ok := root.Exprs[0].(*expr.LetFunc)
	require.True(t, ok)
	assert.Equal(t, expr.FreeFunc, lf.Target.Scope)
	ifExpr := lf.Fn.Body.Exprs[0].(*expr.If)
	call := ifExpr.Else.Exprs[0].(*expr.BinaryOp).Right.(*expr.Call)
	callee := call.Callee.(*expr.Var)
	assert.Equal(t, "fact", callee.Name)
	assert.Same(t, lf.Target, callee.Binding)
}

// A closure that reads an enclosing function's parameter flips that
// parameter to Cell scope and records it as its own external, without
// touching anything about the outer function's own scope kind.
func TestResolveClosureCapture(t *testing.T) {
	src := "let outer(x: int) : int =\n  let f(y: int) : int =\n    x + y\n  f(1)\n"
	root, derr := resolveSrc(t, src)
	require.Nil(t, derr)
	outerLF := root.Exprs[0].(*expr.LetFunc)
	require.Len(t, outerLF.Fn.Body.Exprs, 2)

	innerLF := outerLF.Fn.Body.Exprs[0].(*expr.LetFunc)
	require.Len(t, innerLF.Fn.Externals, 1)
	assert.Equal(t, "x", innerLF.Fn.Externals[0].Name)
	assert.Equal(t, expr.Cell, innerLF.Fn.Externals[0].Scope)

	assert.Equal(t, expr.Cell, outerLF.Fn.Params[0].Scope)

	add := innerLF.Fn.Body.Exprs[0].(*expr.BinaryOp)
	xRef := add.Left.(*expr.Var)
	assert.Equal(t, expr.ContextRef, xRef.Binding.Scope)
}

func TestResolveUnionZeroArgCtorWrapped(t *testing.T) {
	src := "type Option<'a> =\n  | None\n  | Some of 'a\nNone\n"
	root, derr := resolveSrc(t, src)
	require.Nil(t, derr)
	require.Len(t, root.Exprs, 2)
	call, ok := root.Exprs[1].(*expr.Call)
	require.True(t, ok)
	assert.Empty(t, call.Args)
	v, ok := call.Callee.(*expr.Var)
	require.True(t, ok)
	assert.Equal(t, "None", v.Name)
	assert.Equal(t, expr.UnionCtor, v.Binding.Scope)
}

func TestResolveMatchUnionPattern(t *testing.T) {
	src := "type Option<'a> =\n  | None\n  | Some of 'a\n" +
		"let x = Some(1)\n" +
		"match x with\n| None -> 0\n| Some(v) -> v\n"
	root, derr := resolveSrc(t, src)
	require.Nil(t, derr)
	m, ok := root.Exprs[len(root.Exprs)-1].(*expr.Match)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)

	noneCase, ok := m.Arms[0].Case.(*expr.CaseUnion)
	require.True(t, ok)
	assert.Equal(t, 0, noneCase.Tag)
	assert.Equal(t, 2, noneCase.Arity)

	someCase, ok := m.Arms[1].Case.(*expr.CaseUnion)
	require.True(t, ok)
	assert.Equal(t, 1, someCase.Tag)
	assert.Equal(t, 2, someCase.Arity)
	members, ok := someCase.Pattern.(*expr.CaseMembers)
	require.True(t, ok)
	require.Len(t, members.Elements, 1)
	bound, ok := members.Elements[0].(*expr.CaseAny)
	require.True(t, ok)
	require.NotNil(t, bound.Binding)
	assert.Equal(t, "v", bound.Binding.Name)
}

func TestResolveNamedArgCallRewritesToPositional(t *testing.T) {
	src := "let f(x: int, y: int) : int =\n  x + y\nf(y = 2, x = 1)\n"
	root, derr := resolveSrc(t, src)
	require.Nil(t, derr)
	call, ok := root.Exprs[1].(*expr.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	assert.Equal(t, int64(1), call.Args[0].(*expr.Int).Value)
	assert.Equal(t, int64(2), call.Args[1].(*expr.Int).Value)
}

func TestResolveOrPatternMismatchedBindingsIsError(t *testing.T) {
	src := "let p = (1, 2)\nmatch p with\n| (a, b) | (a, c) -> a\n"
	_, derr := resolveSrc(t, src)
	require.NotNil(t, derr)
	assert.Equal(t, diag.Pattern, derr.Kind)
}

func TestResolveOrPatternSharesCanonicalBinding(t *testing.T) {
	src := "let p = (1, 2)\nmatch p with\n| (a, _) | (_, a) -> a\n"
	root, derr := resolveSrc(t, src)
	require.Nil(t, derr)
	m := root.Exprs[1].(*expr.Match)
	or := m.Arms[0].Case.(*expr.CaseOr)
	require.Len(t, or.Alternatives, 2)
	first := or.Alternatives[0].(*expr.CaseMembers).Elements[0].(*expr.CaseAny)
	second := or.Alternatives[1].(*expr.CaseMembers).Elements[1].(*expr.CaseAny)
	assert.Same(t, first.Binding, second.Binding)
}

func TestResolveRecordTypeGenericsAreFrozen(t *testing.T) {
	root, derr := resolveSrc(t, "type Box<'a> = { value: 'a }\n")
	require.Nil(t, derr)
	decl, ok := root.Exprs[0].(*expr.TypeDecl)
	require.True(t, ok)
	proto, ok := decl.Proto.(*types.PrototypeRecord)
	require.True(t, ok)
	require.Len(t, proto.Generics, 1)
	g, ok := proto.Generics[0].(*types.Generic)
	require.True(t, ok)
	assert.True(t, g.Frozen)
	assert.Equal(t, "'a", g.Name)
}

func TestResolveUndefinedNameIsError(t *testing.T) {
	_, derr := resolveSrc(t, "y\n")
	require.NotNil(t, derr)
	assert.Equal(t, diag.NameResolution, derr.Kind)
}
