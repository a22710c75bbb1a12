package checker

import (
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/types"
)

// checkIf unifies Cond against bool. When Else is absent (n.Else == nil,
// meaning no explicit else was written at all - a Then-only if) Then must
// itself be unit; otherwise Else unifies against Then, and Then's type is
// the whole node's type either way. Grounded on typecheck.cpp's
// analyze(ExprIfThenElse*, nongen) ("this if/else is really only needed for
// nicer error messages").
func checkIf(n *expr.If, nongen []types.Type) types.Type {
	ct := checkExpr(n.Cond, nongen)
	mustUnify(ct, &types.Bool{}, n.Cond.Loc())
	tt := checkBlock(n.Then, nongen)
	if n.Else == nil {
		mustUnify(tt, &types.Unit{}, n.Then.Loc())
		return setType(n, tt)
	}
	et := checkBlock(n.Else, nongen)
	mustUnify(et, tt, n.Else.Loc())
	return setType(n, tt)
}

// checkForArray unifies Array against Array(Var.Type) and Body against
// unit; the loop always produces unit.
func checkForArray(n *expr.ForArray, nongen []types.Type) types.Type {
	at := checkExpr(n.Array, nongen)
	mustUnify(at, &types.Array{Contained: n.Var.Type}, n.Array.Loc())
	bt := checkBlock(n.Body, nongen)
	mustUnify(bt, &types.Unit{}, n.Body.Loc())
	return setType(n, &types.Unit{})
}

// checkForRange unifies the loop variable and both bounds against int, and
// Body against unit.
func checkForRange(n *expr.ForRange, nongen []types.Type) types.Type {
	mustUnify(n.Var.Type, &types.Int{}, n.Loc())
	lt := checkExpr(n.Low, nongen)
	mustUnify(lt, &types.Int{}, n.Low.Loc())
	ht := checkExpr(n.High, nongen)
	mustUnify(ht, &types.Int{}, n.High.Loc())
	bt := checkBlock(n.Body, nongen)
	mustUnify(bt, &types.Unit{}, n.Body.Loc())
	return setType(n, &types.Unit{})
}

func checkWhile(n *expr.While, nongen []types.Type) types.Type {
	ct := checkExpr(n.Cond, nongen)
	mustUnify(ct, &types.Bool{}, n.Cond.Loc())
	bt := checkBlock(n.Body, nongen)
	mustUnify(bt, &types.Unit{}, n.Body.Loc())
	return setType(n, &types.Unit{})
}

// checkClosure pushes every parameter's type (and the declared return
// type) onto nongen before checking Body, so none of them get generalized
// away by a recursive reference to the enclosing function while its own
// body is still being checked, pops them back off (by simply not returning
// the extended slice any further), unifies Body's type against ReturnType,
// and returns the closure's own Function type. Grounded on typecheck.cpp's
// analyze(ExprLetFunc*, nongen), extended (per spec.md §4.4.4's "parameters
// and explicit return type") to also pin ReturnType, which the C++ original
// does not push into nongen itself.
func checkClosure(n *expr.Closure, nongen []types.Type) types.Type {
	paramTypes := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		paramTypes[i] = p.Type
	}
	extra := append(append([]types.Type{}, paramTypes...), n.ReturnType)
	inner := pushNongen(nongen, extra...)
	bt := checkBlock(n.Body, inner)
	mustUnify(bt, n.ReturnType, n.Body.Loc())
	fn := &types.Function{Args: paramTypes, Result: n.ReturnType}
	return setType(n, fn)
}
