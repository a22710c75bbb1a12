package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/lexer"
	"github.com/aikelang/aikec/internal/token"
)

func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	toks, _, derr := lexer.New("t", src).Lex()
	require.Nil(t, derr)
	file, perr := ParseFile("t", toks)
	require.Nil(t, perr, "%v", perr)
	return file
}

func TestParseLetValue(t *testing.T) {
	file := parse(t, "let x = 1 + 2\n")
	require.Len(t, file.Body.Exprs, 1)
	let, ok := file.Body.Exprs[0].(*ast.LetValue)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name.Name)
	assert.Equal(t, "(1 + 2)", ast.Print(let.Value.Exprs[0]))
}

func TestParseLetFuncBody(t *testing.T) {
	src := "let add(x, y) =\n  x + y\n"
	file := parse(t, src)
	fn, ok := file.Body.Exprs[0].(*ast.LetFunc)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "(x + y)", ast.Print(fn.Body.Exprs[0]))
}

func TestParseLetInSugar(t *testing.T) {
	file := parse(t, "let x = 1 in x + 1\n")
	require.Len(t, file.Body.Exprs, 2)
	_, ok := file.Body.Exprs[0].(*ast.LetValue)
	require.True(t, ok)
	assert.Equal(t, "(x + 1)", ast.Print(file.Body.Exprs[1]))
}

func TestParseOffsideTerminatesBlock(t *testing.T) {
	src := "let x =\n  1\nlet y = 2\n"
	file := parse(t, src)
	require.Len(t, file.Body.Exprs, 2)
	lx := file.Body.Exprs[0].(*ast.LetValue)
	assert.Len(t, lx.Value.Exprs, 1)
}

func TestParseIfThenElse(t *testing.T) {
	file := parse(t, "if x then 1 else 2\n")
	ifx, ok := file.Body.Exprs[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifx.Else)
	assert.Equal(t, "1", ast.Print(ifx.Then.Exprs[0]))
	assert.Equal(t, "2", ast.Print(ifx.Else.Exprs[0]))
}

func TestParseIfOneLineChain(t *testing.T) {
	file := parse(t, "if a then 1 else if b then 2 else 3\n")
	ifx := file.Body.Exprs[0].(*ast.If)
	inner, ok := ifx.Else.Exprs[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "3", ast.Print(inner.Else.Exprs[0]))
}

func TestParseMatchWithGuardAndOrPattern(t *testing.T) {
	src := "match p with\n" +
		"| Some(x) | Other(x) if x > 0 -> x\n" +
		"| None -> 0\n"
	file := parse(t, src)
	m, ok := file.Body.Exprs[0].(*ast.Match)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)
	or, ok := m.Arms[0].Pattern.(*ast.PatternOr)
	require.True(t, ok)
	assert.Len(t, or.Alternatives, 2)
	require.NotNil(t, m.Arms[0].Guard)
	// A bare capitalized identifier with no argument list parses as a
	// placeholder; whether it's a zero-arg constructor tag or a fresh
	// binding is resolved later, once union variants are in scope.
	none := m.Arms[1].Pattern.(*ast.PatternPlaceholder)
	assert.Equal(t, "None", none.Name)
}

func TestParseArrayPatternRest(t *testing.T) {
	src := "match xs with\n| [] -> 0\n| [h, ..t] -> h\n"
	file := parse(t, src)
	m := file.Body.Exprs[0].(*ast.Match)
	require.Len(t, m.Arms, 2)
	arr := m.Arms[1].Pattern.(*ast.PatternArray)
	require.NotNil(t, arr.Rest)
	assert.Equal(t, "t", arr.Rest.Name)
}

func TestParseUniformCallSugar(t *testing.T) {
	file := parse(t, "xs#len()\n")
	call, ok := file.Body.Exprs[0].(*ast.Call)
	require.True(t, ok)
	callee := call.Callee.(*ast.Var)
	assert.Equal(t, "len", callee.Name)
	require.Len(t, call.Args, 1)
	assert.Equal(t, "xs", ast.Print(call.Args[0].Value))
}

func TestParseUniformCallSugarWithExtraArgs(t *testing.T) {
	file := parse(t, "xs#push(1, 2)\n")
	call, ok := file.Body.Exprs[0].(*ast.Call)
	require.True(t, ok)
	callee := call.Callee.(*ast.Var)
	assert.Equal(t, "push", callee.Name)
	require.Len(t, call.Args, 3)
	assert.Equal(t, "xs", ast.Print(call.Args[0].Value))
	assert.Equal(t, "1", ast.Print(call.Args[1].Value))
	assert.Equal(t, "2", ast.Print(call.Args[2].Value))
}

// TestParseMemberCallIsPlainCallOfMember confirms `.name` stays ordinary
// field access, distinct from the `#name(args)` uniform-call sugar: calling
// a record field that holds a closure, `rec.handler(x)`, parses as "call
// whatever rec.handler evaluates to", not as a free function named
// "handler" with rec prepended.
func TestParseMemberCallIsPlainCallOfMember(t *testing.T) {
	file := parse(t, "rec.handler(x)\n")
	call, ok := file.Body.Exprs[0].(*ast.Call)
	require.True(t, ok)
	member, ok := call.Callee.(*ast.Member)
	require.True(t, ok)
	assert.Equal(t, "handler", member.Name)
	assert.Equal(t, "rec", ast.Print(member.Target))
	require.Len(t, call.Args, 1)
	assert.Equal(t, "x", ast.Print(call.Args[0].Value))
}

func TestParsePlainMemberAccessWithoutCall(t *testing.T) {
	file := parse(t, "rec.field\n")
	member, ok := file.Body.Exprs[0].(*ast.Member)
	require.True(t, ok)
	assert.Equal(t, "field", member.Name)
	assert.Equal(t, "rec", ast.Print(member.Target))
}

func TestParseCallNamedAfterPositionalIsError(t *testing.T) {
	toks, _, derr := lexer.New("t", "f(1, y = 2, 3)\n").Lex()
	require.Nil(t, derr)
	_, perr := ParseFile("t", toks)
	require.NotNil(t, perr)
}

func TestParseSliceOpenBounds(t *testing.T) {
	file := parse(t, "a[1..]\n")
	s, ok := file.Body.Exprs[0].(*ast.Slice)
	require.True(t, ok)
	require.NotNil(t, s.Low)
	assert.Nil(t, s.High)
}

func TestParseTypeArrowRightAssoc(t *testing.T) {
	src := "extern f(x: int) : int -> int -> bool\n"
	file := parse(t, src)
	ext := file.Body.Exprs[0].(*ast.ExternFunc)
	arrow, ok := ext.ReturnType.(*ast.TypeArrow)
	require.True(t, ok)
	_, ok = arrow.Result.(*ast.TypeArrow)
	require.True(t, ok)
}

func TestParseUnionTypeDecl(t *testing.T) {
	src := "type Option<'a> =\n  | None\n  | Some of 'a\n"
	file := parse(t, src)
	decl, ok := file.Body.Exprs[0].(*ast.TypeDeclUnion)
	require.True(t, ok)
	require.Len(t, decl.Variants, 2)
	assert.Equal(t, ast.VariantUnit, decl.Variants[0].Kind)
	assert.Equal(t, ast.VariantOf, decl.Variants[1].Kind)
}

func TestParseRecordTypeDecl(t *testing.T) {
	src := "type Point = { x: int; y: int }\n"
	file := parse(t, src)
	decl, ok := file.Body.Exprs[0].(*ast.TypeDeclRecord)
	require.True(t, ok)
	require.Len(t, decl.Fields, 2)
}

func TestParseForRange(t *testing.T) {
	file := parse(t, "for i in 0..10 do\n  i\n")
	fr, ok := file.Body.Exprs[0].(*ast.ForRange)
	require.True(t, ok)
	assert.Equal(t, "i", fr.Var.Name)
}

func TestParseUnterminatedBlockIsSyntaxError(t *testing.T) {
	toks, _, derr := lexer.New("t", "let x =\n").Lex()
	require.Nil(t, derr)
	_, perr := ParseFile("t", toks)
	require.NotNil(t, perr)
	assert.Equal(t, token.SourceID("t"), perr.Loc.Source)
}
