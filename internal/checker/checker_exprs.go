package checker

import (
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/types"
)

// checkExpr dispatches one typed-AST expression node, sets its own Type
// field to the result, and returns that type. Grounded on typecheck.cpp's
// analyze(Expr*, nongen), case by case.
func checkExpr(e expr.Expr, nongen []types.Type) types.Type {
	switch n := e.(type) {
	case *expr.Unit:
		return setType(n, &types.Unit{})
	case *expr.Int:
		return setType(n, &types.Int{})
	case *expr.Float:
		return setType(n, &types.Float{})
	case *expr.Character:
		return setType(n, &types.Char{})
	case *expr.StringLit:
		// No dedicated string type exists in internal/types (spec.md §3.5
		// names no such variant); a string literal is a char array, the
		// same representation original_source treats it as wherever it
		// appears at all (it has no TypeString or ExprStringLiteral either).
		return setType(n, &types.Array{Contained: &types.Char{}})
	case *expr.Boolean:
		return setType(n, &types.Bool{})
	case *expr.ArrayLit:
		return checkArrayLit(n, nongen)
	case *expr.TupleLit:
		return checkTupleLit(n, nongen)
	case *expr.Var:
		return checkVar(n, nongen)
	case *expr.UnaryOp:
		return checkUnaryOp(n, nongen)
	case *expr.BinaryOp:
		return checkBinaryOp(n, nongen)
	case *expr.Call:
		return checkCall(n, nongen)
	case *expr.Index:
		return checkIndex(n, nongen)
	case *expr.Slice:
		return checkSlice(n, nongen)
	case *expr.Member:
		return checkMember(n, nongen)
	case *expr.Assign:
		return checkAssign(n, nongen)
	case *expr.Block:
		return checkBlock(n, nongen)
	case *expr.If:
		return checkIf(n, nongen)
	case *expr.ForArray:
		return checkForArray(n, nongen)
	case *expr.ForRange:
		return checkForRange(n, nongen)
	case *expr.While:
		return checkWhile(n, nongen)
	case *expr.Closure:
		return checkClosure(n, nongen)
	case *expr.Match:
		return checkMatch(n, nongen)
	}
	panic("checker: unknown Expr variant")
}

func setType(e expr.Expr, t types.Type) types.Type {
	e.SetType(t)
	return t
}

// checkVar resolves a reference's type from its Binding. Only a
// function-scoped or constructor binding is freshened at the reference site
// (each call site gets its own instantiation); a Local/Cell/ContextRef
// binding's type is used exactly as declared. Grounded on typecheck.cpp's
// analyze(BindingBase*, nongen): BindingFunction returns fresh(type,
// nongen), BindingLocal returns type as-is.
func checkVar(n *expr.Var, nongen []types.Type) types.Type {
	var t types.Type
	switch n.Binding.Scope {
	case expr.FreeFunc, expr.UnionCtor:
		t = types.Fresh(n.Binding.Type, nongen)
	default:
		t = n.Binding.Type
	}
	return setType(n, t)
}

func checkArrayLit(n *expr.ArrayLit, nongen []types.Type) types.Type {
	if len(n.Elements) == 0 {
		return setType(n, &types.Array{Contained: &types.Generic{}})
	}
	t0 := checkExpr(n.Elements[0], nongen)
	for _, el := range n.Elements[1:] {
		mustUnify(checkExpr(el, nongen), t0, el.Loc())
	}
	return setType(n, &types.Array{Contained: t0})
}

func checkTupleLit(n *expr.TupleLit, nongen []types.Type) types.Type {
	members := make([]types.Type, len(n.Elements))
	for i, el := range n.Elements {
		members[i] = checkExpr(el, nongen)
	}
	return setType(n, &types.Tuple{Members: members})
}

// checkUnaryOp treats "!" the same as "not": the parser produces the same
// ast.UnaryOp shape for both spellings (lexer_operator.go tokenizes bare '!'
// as BANG, used identically to the 'not' keyword in parser_expr.go's
// parseUnary), and no Ref/pointer type exists anywhere in internal/types for
// a separate deref form to operate on - spec.md's "deref !" mention doesn't
// apply to this reduced type system.
func checkUnaryOp(n *expr.UnaryOp, nongen []types.Type) types.Type {
	t := checkExpr(n.Operand, nongen)
	switch n.Op {
	case "+", "-":
		mustUnify(t, &types.Int{}, n.Operand.Loc())
		return setType(n, &types.Int{})
	case "not", "!":
		mustUnify(t, &types.Bool{}, n.Operand.Loc())
		return setType(n, &types.Bool{})
	}
	panic("checker: unknown unary operator " + n.Op)
}

// checkBinaryOp dispatches the full Op vocabulary parser_expr.go's
// precedence table closes over. Grounded on typecheck.cpp's
// analyze(ExprBinaryOp*, nongen): arithmetic operands and result are int,
// comparison operands are int with a bool result, equality operands unify
// with each other (any type) with a bool result, and 'and'/'or' are boolean.
func checkBinaryOp(n *expr.BinaryOp, nongen []types.Type) types.Type {
	lt := checkExpr(n.Left, nongen)
	rt := checkExpr(n.Right, nongen)
	switch n.Op {
	case "+", "-", "*", "/":
		mustUnify(lt, &types.Int{}, n.Left.Loc())
		mustUnify(rt, &types.Int{}, n.Right.Loc())
		return setType(n, &types.Int{})
	case "<", "<=", ">", ">=":
		mustUnify(lt, &types.Int{}, n.Left.Loc())
		mustUnify(rt, &types.Int{}, n.Right.Loc())
		return setType(n, &types.Bool{})
	case "==", "!=":
		mustUnify(lt, rt, n.Right.Loc())
		return setType(n, &types.Bool{})
	case "and", "or":
		mustUnify(lt, &types.Bool{}, n.Left.Loc())
		mustUnify(rt, &types.Bool{}, n.Right.Loc())
		return setType(n, &types.Bool{})
	}
	panic("checker: unknown binary operator " + n.Op)
}

// checkCall analyzes the callee before its arguments (as the arguments may
// reference generics the callee's own type fixes). When the callee's type is
// already a concrete Function, arity is checked directly and each argument
// unifies against its declared slot; otherwise a speculative Function type
// is built from the argument types and unified against the callee, so a
// callee that is itself still generic gets pinned down by the call site.
// Grounded on typecheck.cpp's analyze(ExprCall*, nongen) ("this if/else is
// really only needed for nicer error messages").
func checkCall(n *expr.Call, nongen []types.Type) types.Type {
	ct := checkExpr(n.Callee, nongen)
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = checkExpr(a, nongen)
	}
	if fn, ok := types.FinalType(ct).(*types.Function); ok {
		if len(fn.Args) != len(argTypes) {
			fail(diag.TypeError, n.Loc(), "expected %d argument(s) but given %d", len(fn.Args), len(argTypes))
		}
		for i := range argTypes {
			mustUnify(argTypes[i], fn.Args[i], n.Args[i].Loc())
		}
		return setType(n, fn.Result)
	}
	fn := &types.Function{Args: argTypes, Result: &types.Generic{}}
	mustUnify(ct, fn, n.Callee.Loc())
	return setType(n, fn.Result)
}

func checkIndex(n *expr.Index, nongen []types.Type) types.Type {
	at := checkExpr(n.Array, nongen)
	it := checkExpr(n.Index, nongen)
	elem := types.Type(&types.Generic{})
	mustUnify(at, &types.Array{Contained: elem}, n.Array.Loc())
	mustUnify(it, &types.Int{}, n.Index.Loc())
	return setType(n, elem)
}

// checkSlice unifies the array against Array(fresh) like checkIndex, but
// (per typecheck.cpp's ExprArraySlice) returns the array's own type, not its
// element type - a slice is still an array.
func checkSlice(n *expr.Slice, nongen []types.Type) types.Type {
	at := checkExpr(n.Array, nongen)
	elem := types.Type(&types.Generic{})
	arrT := &types.Array{Contained: elem}
	mustUnify(at, arrT, n.Array.Loc())
	if n.Low != nil {
		mustUnify(checkExpr(n.Low, nongen), &types.Int{}, n.Low.Loc())
	}
	if n.High != nil {
		mustUnify(checkExpr(n.High, nongen), &types.Int{}, n.High.Loc())
	}
	return setType(n, arrT)
}

// checkMember requires Target's final type to be a record instance, looks
// up the field's index by name, and fills in MemberIndex for later phases
// (spec.md §4.5). Grounded on typecheck.cpp's analyze(ExprMemberAccess*,
// nongen), reusing internal/types' own getMemberIndexByName/
// getMemberTypeByIndex port rather than reimplementing substitution here.
func checkMember(n *expr.Member, nongen []types.Type) types.Type {
	at := checkExpr(n.Target, nongen)
	inst, ok := types.FinalType(at).(*types.Instance)
	if !ok {
		fail(diag.TypeError, n.Target.Loc(), "expected a record type")
	}
	proto, ok := inst.Cell.Proto.(*types.PrototypeRecord)
	if !ok {
		fail(diag.TypeError, n.Target.Loc(), "expected a record type")
	}
	idx, d := types.MemberIndexByName(proto, n.Name, n.Location)
	if d != nil {
		panic(checkError{d})
	}
	n.MemberIndex = idx
	return setType(n, types.MemberTypeByIndexRecord(inst, proto, idx))
}

// checkAssign unifies Value directly against Target's type; no separate Ref
// wrapper type is needed since internal/types has none, and neither does
// original_source's own type system (it names no string or ref type either).
func checkAssign(n *expr.Assign, nongen []types.Type) types.Type {
	tt := checkExpr(n.Target, nongen)
	vt := checkExpr(n.Value, nongen)
	mustUnify(vt, tt, n.Value.Loc())
	return setType(n, &types.Unit{})
}
