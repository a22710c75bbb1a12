package checker

import (
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/types"
)

// checkBlock checks every expression in order. Grounded on typecheck.cpp's
// analyze(ExprBlock*, nongen): an empty block is unit; every expression but
// the last must itself be unit, except a declaration (LetValue/LetTuple/
// LetFunc/ExternFunc/TypeDecl), which is implicitly unit and exempt from
// that check regardless of position (spec.md §4.5's block rule); the
// block's own type is its last expression's type.
func checkBlock(b *expr.Block, nongen []types.Type) types.Type {
	if len(b.Exprs) == 0 {
		return setType(b, &types.Unit{})
	}
	var last types.Type
	for i, e := range b.Exprs {
		t := checkBlockExpr(e, nongen)
		if i < len(b.Exprs)-1 && !isDecl(e) {
			mustUnify(t, &types.Unit{}, e.Loc())
		}
		last = t
	}
	return setType(b, last)
}

func isDecl(e expr.Expr) bool {
	switch e.(type) {
	case *expr.LetValue, *expr.LetTuple, *expr.LetFunc, *expr.ExternFunc, *expr.TypeDecl:
		return true
	}
	return false
}

// checkBlockExpr handles the declaration forms resolveBlockBody produces
// directly (these never appear outside a block) before falling back to the
// ordinary expression dispatch.
func checkBlockExpr(e expr.Expr, nongen []types.Type) types.Type {
	switch n := e.(type) {
	case *expr.LetValue:
		return checkLetValue(n, nongen)
	case *expr.LetTuple:
		return checkLetTuple(n, nongen)
	case *expr.LetFunc:
		return checkLetFunc(n, nongen)
	case *expr.ExternFunc:
		return checkExternFunc(n)
	case *expr.TypeDecl:
		return setType(n, &types.Unit{})
	}
	return checkExpr(e, nongen)
}

func checkLetValue(n *expr.LetValue, nongen []types.Type) types.Type {
	vt := checkBlock(n.Value, nongen)
	mustUnify(vt, n.Target.Type, n.Value.Loc())
	return setType(n, &types.Unit{})
}

func checkLetTuple(n *expr.LetTuple, nongen []types.Type) types.Type {
	vt := checkBlock(n.Value, nongen)
	members := make([]types.Type, len(n.Targets))
	for i, t := range n.Targets {
		members[i] = t.Type
	}
	mustUnify(vt, &types.Tuple{Members: members}, n.Value.Loc())
	return setType(n, &types.Unit{})
}

// checkLetFunc checks Fn's body (checkClosure threads the function's own
// params/return into nongen); Target's own Function type already shares the
// same Args/Result type objects fnType built at prebind time, so there is
// nothing further to unify at this level.
func checkLetFunc(n *expr.LetFunc, nongen []types.Type) types.Type {
	checkClosure(n.Fn, nongen)
	return setType(n, &types.Unit{})
}

// checkExternFunc has no body to check; Target's Function type was fully
// resolved at prebind time.
func checkExternFunc(n *expr.ExternFunc) types.Type {
	return setType(n, &types.Unit{})
}
