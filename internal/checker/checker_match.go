package checker

import (
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/match"
	"github.com/aikelang/aikec/internal/token"
	"github.com/aikelang/aikec/internal/types"
)

// checkMatch analyzes the scrutinee once, then for every arm checks the
// pattern against the scrutinee's type and the body, unifying every arm
// body's type against the first arm's. Exhaustiveness/reachability runs
// last via internal/match.Check, which needs only the patterns' shapes
// (Tag/Arity/structure), none of which depend on the type-checking pass
// having run first. Grounded on typecheck.cpp's analyze(ExprMatchWith*,
// nongen).
func checkMatch(n *expr.Match, nongen []types.Type) types.Type {
	st := checkExpr(n.Scrutinee, nongen)

	var t0 types.Type = &types.Unit{}
	for i, arm := range n.Arms {
		checkPattern(arm.Case, st, nongen)
		bt := checkBlock(arm.Body, nongen)
		if i == 0 {
			t0 = bt
		} else {
			mustUnify(bt, t0, arm.Body.Loc())
		}
	}

	if d := match.Check(n); d != nil {
		panic(checkError{d})
	}
	return setType(n, t0)
}

// checkPattern unifies one pattern against the type it is expected to
// match, propagating that expectation top-down into sub-patterns. This
// inverts typecheck.cpp's analyze(MatchCase*, nongen), which instead reads a
// type bottom-up off each case's own stored _->type field: internal/expr's
// MatchCase variants carry no such field (spec.md's ten-variant shape,
// finalized by internal/resolver, has no room for one), so the expected
// type has to flow in from the caller instead of being read back out of the
// node.
func checkPattern(c expr.MatchCase, scrutType types.Type, nongen []types.Type) {
	switch v := c.(type) {
	case *expr.CaseAny:
		if v.Binding != nil {
			mustUnify(v.Binding.Type, scrutType, v.Location)
		}
	case *expr.CaseBool:
		mustUnify(&types.Bool{}, scrutType, v.Location)
	case *expr.CaseInt:
		mustUnify(&types.Int{}, scrutType, v.Location)
	case *expr.CaseChar:
		mustUnify(&types.Char{}, scrutType, v.Location)
	case *expr.CaseValue:
		vt := checkExpr(v.Value, nongen)
		mustUnify(vt, scrutType, v.Location)
	case *expr.CaseArray:
		checkArrayPattern(v, scrutType, nongen)
	case *expr.CaseMembers:
		checkMembersPattern(v, scrutType, nongen)
	case *expr.CaseUnion:
		checkUnionPattern(v, scrutType, nongen)
	case *expr.CaseOr:
		for _, alt := range v.Alternatives {
			checkPattern(alt, scrutType, nongen)
		}
	case *expr.CaseIf:
		checkPattern(v.Inner, scrutType, nongen)
		gt := checkExpr(v.Guard, nongen)
		mustUnify(gt, &types.Bool{}, v.Guard.Loc())
	default:
		panic("checker: unknown MatchCase variant")
	}
}

// checkArrayPattern unifies scrutType against Array(elem) for a fresh elem
// generic, checks every element pattern against elem, and - when present -
// unifies Rest's own declared type against the whole array type (a `..rest`
// capture is itself a sub-array of the same element type).
func checkArrayPattern(v *expr.CaseArray, scrutType types.Type, nongen []types.Type) {
	elemT := types.Type(&types.Generic{})
	arrT := &types.Array{Contained: elemT}
	mustUnify(arrT, scrutType, v.Location)
	for _, e := range v.Elements {
		checkPattern(e, elemT, nongen)
	}
	if v.Rest != nil {
		mustUnify(v.Rest.Type, arrT, v.Location)
	}
}

// checkMembersPattern handles a bare (non-constructor) CaseMembers, which
// internal/resolver only ever builds from a plain tuple pattern `(p1, p2,
// ...)` - there is no standalone record-value pattern in this language
// (ast.Pattern has no such variant; a named pattern always names a union
// constructor, per translatePatternCtor's "unknown constructor" check), so
// unlike typecheck.cpp's MatchCaseMembers this never needs a
// TypeInstance/TypePrototypeRecord branch at all.
func checkMembersPattern(v *expr.CaseMembers, scrutType types.Type, nongen []types.Type) {
	members := make([]types.Type, len(v.Elements))
	for i := range members {
		members[i] = &types.Generic{}
	}
	mustUnify(&types.Tuple{Members: members}, scrutType, v.Location)
	for i, e := range v.Elements {
		checkPattern(e, members[i], nongen)
	}
}

// checkUnionPattern freshens the matched constructor's own Result type the
// same way a constructor call does (types.Fresh against the ambient
// nongen), unifies it against the scrutinee's type - pinning an
// as-yet-unconstrained scrutinee to this concrete union, or rejecting a
// mismatched one - and then resolves the matched variant's payload type to
// check Pattern against.
func checkUnionPattern(v *expr.CaseUnion, scrutType types.Type, nongen []types.Type) {
	instTy := types.Fresh(v.Ctor.Type.(*types.Function).Result, nongen)
	mustUnify(instTy, scrutType, v.Location)
	inst, proto := unionPrototypeOf(instTy, v.Location)
	payload := types.MemberTypeByIndexUnion(inst, proto, v.Tag)
	checkUnionPayload(v.Pattern, payload, nongen)
}

func unionPrototypeOf(t types.Type, loc token.Location) (*types.Instance, *types.PrototypeUnion) {
	inst, ok := types.FinalType(t).(*types.Instance)
	if !ok {
		fail(diag.TypeError, loc, "expected a union type")
		return nil, nil
	}
	proto, ok := inst.Cell.Proto.(*types.PrototypeUnion)
	if !ok {
		fail(diag.TypeError, loc, "expected a union type")
		return nil, nil
	}
	return inst, proto
}

// checkUnionPayload matches a variant's payload pattern against its
// declared type. internal/resolver's ctorArgTypes flattens a tuple- or
// record-arg variant's payload into one positional element per member
// (translatePatternCtor always wraps these in a CaseMembers), but a variant
// with a single non-tuple payload (`Some of int`) is flattened into a
// one-element CaseMembers too even though its declared payload type is not
// itself a Tuple - so a CaseMembers pattern only unwraps the payload as
// Tuple{generics} when the payload actually is a Tuple; a lone non-tuple
// payload instead checks its single element directly.
func checkUnionPayload(p expr.MatchCase, payload types.Type, nongen []types.Type) {
	members, ok := p.(*expr.CaseMembers)
	if !ok {
		checkPattern(p, payload, nongen)
		return
	}
	if _, isTuple := types.Prune(payload).(*types.Tuple); !isTuple {
		if len(members.Elements) != 1 {
			fail(diag.TypeError, members.Location, "constructor expects 1 argument, got %d", len(members.Elements))
		}
		checkPattern(members.Elements[0], payload, nongen)
		return
	}
	checkMembersPattern(members, payload, nongen)
}
