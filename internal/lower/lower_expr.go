package lower

import (
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/tir"
	"github.com/aikelang/aikec/internal/types"
)

// lowerExpr lowers one typed-AST expression node to its TIR equivalent.
func (l *lowering) lowerExpr(e expr.Expr, fc *funcCtx) tir.Expr {
	switch n := e.(type) {
	case *expr.Unit:
		return &tir.EUnit{ExprBase: tir.ExprBase{Type: fc.ty(n)}}
	case *expr.Int:
		return &tir.EInt{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Value: n.Value}
	case *expr.Float:
		return &tir.EFloat{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Value: n.Value}
	case *expr.Character:
		return &tir.EChar{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Payload: n.Payload}
	case *expr.StringLit:
		return &tir.EString{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Payload: n.Payload}
	case *expr.Boolean:
		return &tir.EBool{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Value: n.Value}
	case *expr.ArrayLit:
		elems := make([]tir.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = l.lowerExpr(el, fc)
		}
		return &tir.EArrayLit{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Elements: elems}
	case *expr.TupleLit:
		elems := make([]tir.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = l.lowerExpr(el, fc)
		}
		return &tir.ETupleLit{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Elements: elems}
	case *expr.Var:
		return l.lowerVar(n, fc)
	case *expr.UnaryOp:
		return &tir.EUnaryOp{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Op: n.Op, Operand: l.lowerExpr(n.Operand, fc)}
	case *expr.BinaryOp:
		return &tir.EBinaryOp{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Op: n.Op, Left: l.lowerExpr(n.Left, fc), Right: l.lowerExpr(n.Right, fc)}
	case *expr.Call:
		return l.lowerCall(n, fc)
	case *expr.Index:
		return &tir.EIndex{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Array: l.lowerExpr(n.Array, fc), Index: l.lowerExpr(n.Index, fc)}
	case *expr.Slice:
		s := &tir.ESlice{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Array: l.lowerExpr(n.Array, fc)}
		if n.Low != nil {
			s.Low = l.lowerExpr(n.Low, fc)
		}
		if n.High != nil {
			s.High = l.lowerExpr(n.High, fc)
		}
		return s
	case *expr.Member:
		return &tir.EMember{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Target: l.lowerExpr(n.Target, fc), Index: n.MemberIndex}
	case *expr.Assign:
		return &tir.EAssign{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Target: l.lowerExpr(n.Target, fc), Value: l.lowerExpr(n.Value, fc)}
	case *expr.Block:
		return l.lowerBlockExpr(n, fc)
	case *expr.If:
		i := &tir.EIf{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Cond: l.lowerExpr(n.Cond, fc), Then: l.lowerBlockExpr(n.Then, fc)}
		if n.Else != nil {
			i.Else = l.lowerBlockExpr(n.Else, fc)
		}
		return i
	case *expr.ForArray:
		v := fc.bindVar(n.Var, applySubst(types.FinalType(n.Var.Type), fc.subst))
		arr := l.lowerExpr(n.Array, fc)
		return &tir.EForArray{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Var: v, Array: arr, Body: l.lowerBlockExpr(n.Body, fc)}
	case *expr.ForRange:
		v := fc.bindVar(n.Var, applySubst(types.FinalType(n.Var.Type), fc.subst))
		low := l.lowerExpr(n.Low, fc)
		high := l.lowerExpr(n.High, fc)
		return &tir.EForRange{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Var: v, Low: low, High: high, Body: l.lowerBlockExpr(n.Body, fc)}
	case *expr.While:
		return &tir.EWhile{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Cond: l.lowerExpr(n.Cond, fc), Body: l.lowerBlockExpr(n.Body, fc)}
	case *expr.Match:
		return l.lowerMatch(n, fc)
	case *expr.Closure:
		return l.lowerClosureValue(n, fc)
	}
	panic("lower: unhandled expr node")
}

// lowerVar lowers a resolved name reference per its Binding's scope
// (spec.md §3.6/§4.6(2)): Local/Cell read straight out of this function's
// own Vars, ContextRef reads through the function's captured-environment
// record, and FreeFunc triggers (or reuses) a monomorphised instance.
func (l *lowering) lowerVar(n *expr.Var, fc *funcCtx) tir.Expr {
	switch n.Binding.Scope {
	case expr.Local, expr.Cell:
		return &tir.ELoad{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Var: fc.bindVar(n.Binding, fc.ty(n))}
	case expr.ContextRef:
		idx := l.externalIndex(fc.closure, n.Binding)
		return &tir.EMember{
			ExprBase: tir.ExprBase{Type: fc.ty(n)},
			Target:   &tir.ELoad{ExprBase: tir.ExprBase{Type: fc.contextVar.Type}, Var: fc.contextVar},
			Index:    idx,
		}
	case expr.FreeFunc:
		return l.lowerFuncRef(n, fc)
	default:
		panic("lower: unexpected var scope " + n.Binding.Scope.String())
	}
}

// externalIndex finds ref's position in closure.Externals by name: the
// ContextRef binding internal/resolver's use() returns at a reference site
// is a fresh *expr.Binding distinct from the one it appends to Externals,
// so pointer identity cannot correlate them, but within one function a
// given captured name can only ever resolve to one outer declaration
// (escaping the function's own block chain happens at most once per name,
// see scope.go's use), so matching by name is unambiguous.
func (l *lowering) externalIndex(closure *expr.Closure, ref *expr.Binding) int {
	for i, ext := range closure.Externals {
		if ext.Name == ref.Name {
			return i
		}
	}
	panic("lower: captured variable " + ref.Name + " not found among externals")
}

// lowerFuncRef resolves a FreeFunc-scope reference: an extern symbol calls
// straight through with an empty environment, otherwise the reference's
// instance key (relative to the declaration's own, possibly generic type)
// selects or enqueues the right monomorphised instance.
func (l *lowering) lowerFuncRef(n *expr.Var, fc *funcCtx) tir.Expr {
	if name, ok := l.externNames[n.Binding]; ok {
		return &tir.EMakeClosure{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Func: name, Context: unitExpr()}
	}
	closure, ok := l.closureOf[n.Binding]
	if !ok {
		panic("lower: unresolved function reference " + n.Name)
	}
	origFn := n.Binding.Type.(*types.Function)
	concFn := fc.ty(n).(*types.Function)
	return l.makeClosureRef(closure, origFn, concFn, fc)
}

func (l *lowering) makeClosureRef(closure *expr.Closure, origFn, concFn *types.Function, fc *funcCtx) tir.Expr {
	subst, order := instanceKey(origFn, concFn)
	name := l.instanceName(closure, order, subst)
	l.enqueue(closure, name, subst)
	ctx := l.buildContext(closure, subst, fc)
	return &tir.EMakeClosure{ExprBase: tir.ExprBase{Type: concFn}, Func: name, Context: ctx}
}

// lowerClosureValue lowers an anonymous closure literal (one that is never
// bound to its own LetFunc Binding, so it never appears in l.closureOf):
// it has no generic parameters of its own left to substitute once checking
// has finished, so it is always enqueued with an empty substitution.
func (l *lowering) lowerClosureValue(cl *expr.Closure, fc *funcCtx) tir.Expr {
	name := l.baseName(cl)
	l.enqueue(cl, name, nil)
	ctx := l.buildContext(cl, nil, fc)
	return &tir.EMakeClosure{ExprBase: tir.ExprBase{Type: fc.ty(cl)}, Func: name, Context: ctx}
}

// buildContext builds the EMakeContext for one reference to closure, read
// as seen from fc (the function currently being lowered).
func (l *lowering) buildContext(closure *expr.Closure, subst map[*types.Generic]types.Type, fc *funcCtx) tir.Expr {
	if len(closure.Externals) == 0 {
		return unitExpr()
	}
	memberTypes := make([]types.Type, len(closure.Externals))
	memberNames := make([]string, len(closure.Externals))
	fields := make([]tir.Expr, len(closure.Externals))
	for i, ext := range closure.Externals {
		fields[i] = l.lowerExternRef(ext, fc)
		memberTypes[i] = applySubst(ext.Type, subst)
		memberNames[i] = ext.Name
	}
	ctxType := &types.ClosureContext{MemberTypes: memberTypes, MemberNames: memberNames}
	return &tir.EMakeContext{ExprBase: tir.ExprBase{Type: ctxType}, Fields: fields}
}

// lowerExternRef evaluates one captured external as seen from the current
// lowering function fc: ext is the original binding recorded in a Closure's
// Externals, read through whatever Local/Cell/ContextRef access fc already
// has to it, or (when the capture is itself a sibling function value, not a
// plain local) through the same FreeFunc resolution an ordinary reference
// would use.
//
// internal/resolver only grows the *directly referencing* function's own
// Externals list, never threading a capture through an intermediate
// function that does not itself mention the name (scope.go's use doc
// comment, matching mna-nenuphar and typecheck.cpp's resolveBindingAccess).
// A closure that captures a variable two or more function-scopes out, by
// way of an intermediate function that never itself references it, falls
// outside what fc can resolve here; this mirrors a restriction the
// reference implementations carry too (see DESIGN.md).
func (l *lowering) lowerExternRef(ext *expr.Binding, fc *funcCtx) tir.Expr {
	if ext.Scope == expr.FreeFunc {
		if name, ok := l.externNames[ext]; ok {
			return &tir.EMakeClosure{ExprBase: tir.ExprBase{Type: types.FinalType(ext.Type)}, Func: name, Context: unitExpr()}
		}
		closure, ok := l.closureOf[ext]
		if !ok {
			panic("lower: captured function " + ext.Name + " has no declaration")
		}
		fn := ext.Type.(*types.Function)
		return l.makeClosureRef(closure, fn, fn, fc)
	}
	return l.lowerVar(&expr.Var{Base: expr.Base{Typ: ext.Type}, Name: ext.Name, Binding: ext}, fc)
}

func unitExpr() tir.Expr {
	return &tir.EUnit{ExprBase: tir.ExprBase{Type: &types.Unit{}}}
}

// lowerCall lowers a call expression: a union constructor call builds a
// tagged value directly (spec.md §4.6 never monomorphises a constructor -
// it has no body to instantiate), everything else evaluates its callee to
// a (code_ptr, env_ptr) pair and invokes it.
func (l *lowering) lowerCall(n *expr.Call, fc *funcCtx) tir.Expr {
	if v, isVar := n.Callee.(*expr.Var); isVar && v.Binding.Scope == expr.UnionCtor {
		return l.lowerCtorCall(v, n, fc)
	}
	callee := l.lowerExpr(n.Callee, fc)
	args := make([]tir.Expr, len(n.Args))
	for i, a := range n.Args {
		args[i] = l.lowerExpr(a, fc)
	}
	return &tir.ECall{ExprBase: tir.ExprBase{Type: fc.ty(n)}, Callee: callee, Args: args}
}

// lowerCtorCall builds a tagged union value: Tag is the variant's index
// within its prototype, and Payload mirrors internal/resolver's
// ctorArgTypes flattening in reverse (resolver_decl.go) - zero arguments
// become EUnit, one argument is used directly, more than one is wrapped
// into a tuple.
func (l *lowering) lowerCtorCall(v *expr.Var, call *expr.Call, fc *funcCtx) tir.Expr {
	fn := v.Binding.Type.(*types.Function)
	inst := fn.Result.(*types.Instance)
	proto := inst.Cell.Proto.(*types.PrototypeUnion)
	tag := -1
	for i, name := range proto.MemberNames {
		if name == v.Binding.Name {
			tag = i
			break
		}
	}
	if tag < 0 {
		panic("lower: unknown union constructor " + v.Binding.Name)
	}

	args := make([]tir.Expr, len(call.Args))
	for i, a := range call.Args {
		args[i] = l.lowerExpr(a, fc)
	}

	var payload tir.Expr
	switch len(args) {
	case 0:
		payload = unitExpr()
	case 1:
		payload = args[0]
	default:
		members := make([]types.Type, len(args))
		for i, a := range args {
			members[i] = a.Typ()
		}
		payload = &tir.ETupleLit{ExprBase: tir.ExprBase{Type: &types.Tuple{Members: members}}, Elements: args}
	}
	return &tir.ENewUnion{ExprBase: tir.ExprBase{Type: fc.ty(call)}, Tag: tag, Payload: payload}
}
