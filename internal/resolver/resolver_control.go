package resolver

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/types"
)

func (r *Resolver) resolveIf(n *ast.If) *expr.If {
	cond := r.resolveExpr(n.Cond)
	then := r.resolveChildBlock(n.Then)
	var els *expr.Block
	if n.Else != nil {
		els = r.resolveChildBlock(n.Else)
	}
	return &expr.If{Base: expr.Base{Location: n.Location}, Cond: cond, Then: then, Else: els}
}

// resolveForArray resolves `for v in arr do body`. Array is resolved in the
// enclosing scope (it may not reference v); the loop variable then gets its
// own child block so it is visible only inside Body.
func (r *Resolver) resolveForArray(n *ast.ForArray) *expr.ForArray {
	arr := r.resolveExpr(n.Array)
	r.push(&block{})
	v := &expr.Binding{Scope: expr.Local, Name: n.Var.Name, Type: &types.Generic{}}
	r.bind(n.Var.Name, n.Var.Location, v)
	body := r.resolveBlockBody(n.Body)
	r.pop()
	return &expr.ForArray{Base: expr.Base{Location: n.Location}, Var: v, Array: arr, Body: body}
}

// resolveForRange resolves `for v in low..high do body`; the loop variable
// is always int, matching the bounds' type.
func (r *Resolver) resolveForRange(n *ast.ForRange) *expr.ForRange {
	low := r.resolveExpr(n.Low)
	high := r.resolveExpr(n.High)
	r.push(&block{})
	v := &expr.Binding{Scope: expr.Local, Name: n.Var.Name, Type: &types.Int{}}
	r.bind(n.Var.Name, n.Var.Location, v)
	body := r.resolveBlockBody(n.Body)
	r.pop()
	return &expr.ForRange{Base: expr.Base{Location: n.Location}, Var: v, Low: low, High: high, Body: body}
}

func (r *Resolver) resolveWhile(n *ast.While) *expr.While {
	cond := r.resolveExpr(n.Cond)
	body := r.resolveChildBlock(n.Body)
	return &expr.While{Base: expr.Base{Location: n.Location}, Cond: cond, Body: body}
}

// resolveAnonFunc resolves an anonymous function literal. Unlike LetFunc,
// there is no pre-binding pass (an anonymous function has no name a
// sibling or its own body could reference), so its signature is built and
// its body resolved in one step.
func (r *Resolver) resolveAnonFunc(n *ast.AnonFunc) *expr.Closure {
	generics := map[string]*types.Generic{}
	args := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		args[i] = r.resolveTypeExpr(p.Type, generics, true)
	}
	fnType := &types.Function{Args: args, Result: r.resolveTypeExpr(n.ReturnType, generics, true)}
	return r.resolveClosureBody(n.Location, "", n.Params, fnType, n.Body)
}
