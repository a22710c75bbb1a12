package lower

import (
	"fmt"

	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/tir"
	"github.com/aikelang/aikec/internal/types"
)

// funcCtx is the per-instance state while lowering one Func's body: the
// Var each expr.Binding currently in scope has been given (parameters,
// lets, pattern bindings - Local and Cell alike, since boxing a captured
// Cell for the backend's benefit is a codegen concern this lowering does
// not need to resolve), the function's own captured-environment Var (nil
// if it captures nothing), and the originating Closure (for its Externals
// list, consulted when a ContextRef is read).
type funcCtx struct {
	vars       map[*expr.Binding]*tir.Var
	names      map[string]int
	contextVar *tir.Var
	closure    *expr.Closure
	subst      map[*types.Generic]types.Type
}

// ty returns e's type as seen from this particular instance: e's own
// checker-assigned type (which may still mention this closure's own
// declaration-level generics, since the body was only checked once) with
// the instance's own substitution applied on top. subst is nil while
// lowering main or a non-generic function, in which case this is exactly
// ty(e) (applySubst on a nil map is a no-op lookup).
func (fc *funcCtx) ty(e expr.Expr) types.Type { return applySubst(ty(e), fc.subst) }

// bindVar returns b's Var, creating one the first time b is seen. Reused
// on every later reference to the same Binding pointer - including every
// alternative of a CaseOr, which internal/resolver's translatePatternOr
// already unifies to one canonical *expr.Binding per name (resolver_match.go),
// so no extra "sink node" bookkeeping is needed here: whichever alternative
// actually matches at runtime writes into the same shared Var the others
// would have.
func (fc *funcCtx) bindVar(b *expr.Binding, t types.Type) *tir.Var {
	if v, ok := fc.vars[b]; ok {
		return v
	}
	v := &tir.Var{Name: fc.freshName(b.Name), Type: t}
	fc.vars[b] = v
	return v
}

// newVar allocates a Var with no corresponding expr.Binding, for lowering's
// own intermediate values (a let-tuple's source value, a match's
// scrutinee).
func (fc *funcCtx) newVar(base string, t types.Type) *tir.Var {
	return &tir.Var{Name: fc.freshName(base), Type: t}
}

func (fc *funcCtx) freshName(base string) string {
	if base == "" {
		base = "_"
	}
	n := fc.names[base]
	fc.names[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s$%d", base, n)
}

// lowerClosureInstance lowers one monomorphised, closure-converted instance
// of closure: its own captured environment becomes an explicit record
// parameter built from closure.Externals (spec.md §4.6(2)), and every
// parameter/result type is instantiated through subst (spec.md §4.6(1)).
func (l *lowering) lowerClosureInstance(closure *expr.Closure, name string, subst map[*types.Generic]types.Type) *tir.Func {
	fc := &funcCtx{vars: map[*expr.Binding]*tir.Var{}, names: map[string]int{}, closure: closure, subst: subst}

	params := make([]*tir.Var, len(closure.Params))
	for i, p := range closure.Params {
		params[i] = fc.bindVar(p, applySubst(p.Type, subst))
	}

	if len(closure.Externals) > 0 {
		memberTypes := make([]types.Type, len(closure.Externals))
		memberNames := make([]string, len(closure.Externals))
		for i, ext := range closure.Externals {
			memberTypes[i] = applySubst(ext.Type, subst)
			memberNames[i] = ext.Name
		}
		fc.contextVar = fc.newVar("$ctx", &types.ClosureContext{MemberTypes: memberTypes, MemberNames: memberNames})
	}

	result := applySubst(closure.ReturnType, subst)
	body := l.lowerBlockStmts(closure.Body, fc)
	return &tir.Func{Name: name, Params: params, Context: fc.contextVar, Result: result, Body: body}
}

// lowerBlockStmts lowers one block's sequence of expressions to TIR
// statements. A LetFunc/ExternFunc/TypeDecl contributes nothing at runtime
// (spec.md §4.5 already treats every declaration form as implicitly unit);
// internal/lower's own pre-pass (registerBlock) has already recorded what
// each one declares, so they are simply skipped here.
func (l *lowering) lowerBlockStmts(b *expr.Block, fc *funcCtx) []tir.Stmt {
	var stmts []tir.Stmt
	for _, e := range b.Exprs {
		switch n := e.(type) {
		case *expr.LetValue:
			val := l.lowerBlockExpr(n.Value, fc)
			v := fc.bindVar(n.Target, applySubst(types.FinalType(n.Target.Type), fc.subst))
			stmts = append(stmts, &tir.SLet{Target: v, Value: val})
		case *expr.LetTuple:
			val := l.lowerBlockExpr(n.Value, fc)
			tv := fc.newVar("tuple", val.Typ())
			stmts = append(stmts, &tir.SLet{Target: tv, Value: val})
			for i, target := range n.Targets {
				elemType := applySubst(types.FinalType(target.Type), fc.subst)
				v := fc.bindVar(target, elemType)
				elem := &tir.EMember{ExprBase: tir.ExprBase{Type: elemType}, Target: &tir.ELoad{ExprBase: tir.ExprBase{Type: tv.Type}, Var: tv}, Index: i}
				stmts = append(stmts, &tir.SLet{Target: v, Value: elem})
			}
		case *expr.LetFunc, *expr.ExternFunc, *expr.TypeDecl:
		default:
			stmts = append(stmts, &tir.SExpr{Value: l.lowerExpr(e, fc)})
		}
	}
	return stmts
}

// lowerBlockExpr lowers a Block appearing in expression position (an if/
// while/for body, a let's value) to a single TIR expression.
func (l *lowering) lowerBlockExpr(b *expr.Block, fc *funcCtx) tir.Expr {
	if len(b.Exprs) == 0 {
		return &tir.EUnit{ExprBase: tir.ExprBase{Type: &types.Unit{}}}
	}
	stmts := l.lowerBlockStmts(b, fc)
	return &tir.EBlock{ExprBase: tir.ExprBase{Type: fc.ty(b)}, Stmts: stmts}
}
