package lower

import (
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/tir"
	"github.com/aikelang/aikec/internal/types"
)

// lowerMatch compiles a Match to an EDecision: Var holds the scrutinee's
// value for the whole tree to read back through ELoad/EMember/EUnionPayload
// chains, so the scrutinee itself is only ever evaluated once regardless of
// how many tests the compiled tree ends up needing.
func (l *lowering) lowerMatch(m *expr.Match, fc *funcCtx) tir.Expr {
	scrutinee := l.lowerExpr(m.Scrutinee, fc)
	v := fc.newVar("match", scrutinee.Typ())
	val := &tir.ELoad{ExprBase: tir.ExprBase{Type: v.Type}, Var: v}
	tree := l.compileArms(m.Arms, 0, val, fc)
	return &tir.EDecision{ExprBase: tir.ExprBase{Type: fc.ty(m)}, Scrutinee: scrutinee, Var: v, Tree: tree}
}

// compileArms compiles arms[idx:] into one sequential cascade, each arm
// falling through to the next on failure and the whole cascade bottoming
// out in DFail (see tir_decision.go's package doc: internal/match.Check has
// already proved a guard-free cover exhaustive before lowering ever runs,
// so DFail is only actually reachable beneath a guard that evaluated
// false).
func (l *lowering) compileArms(arms []*expr.MatchArm, idx int, val tir.Expr, fc *funcCtx) tir.Decision {
	if idx == len(arms) {
		return &tir.DFail{}
	}
	arm := arms[idx]
	fail := l.compileArms(arms, idx+1, val, fc)
	return l.compilePattern(arm.Case, val, fc, nil, func(binds []tir.DBind) tir.Decision {
		return &tir.DLeaf{Binds: binds, Body: l.lowerBlockExpr(arm.Body, fc)}
	}, fail)
}

// compilePattern compiles one pattern against val, in continuation-passing
// style: binds accumulates DBinds along the path taken so far, onMatch
// builds whatever comes next once pat has definitely matched (the rest of
// an enclosing tuple/array/union pattern, a guard, or the arm's own body),
// and onFail is the Decision to use when pat definitely does not match
// (ordinarily the next arm's own compiled cascade).
func (l *lowering) compilePattern(pat expr.MatchCase, val tir.Expr, fc *funcCtx, binds []tir.DBind, onMatch func([]tir.DBind) tir.Decision, onFail tir.Decision) tir.Decision {
	switch c := pat.(type) {
	case *expr.CaseAny:
		if c.Binding != nil {
			v := fc.bindVar(c.Binding, val.Typ())
			binds = append(binds, tir.DBind{Var: v, Value: val})
		}
		return onMatch(binds)

	case *expr.CaseBool:
		trueNext, falseNext := onFail, onFail
		if c.Value {
			trueNext = onMatch(binds)
		} else {
			falseNext = onMatch(binds)
		}
		return &tir.DSwitchBool{Scrutinee: val, True: trueNext, False: falseNext}

	case *expr.CaseInt:
		return &tir.DSwitchInt{Scrutinee: val, Cases: []tir.DIntCase{{Value: c.Value, Next: onMatch(binds)}}, Default: onFail}

	case *expr.CaseChar:
		return &tir.DSwitchChar{Scrutinee: val, Cases: []tir.DCharCase{{Payload: c.Payload, Next: onMatch(binds)}}, Default: onFail}

	case *expr.CaseValue:
		guard := &tir.EBinaryOp{ExprBase: tir.ExprBase{Type: &types.Bool{}}, Op: "==", Left: val, Right: l.lowerExpr(c.Value, fc)}
		return &tir.DGuard{Guard: guard, Then: onMatch(binds), Else: onFail}

	case *expr.CaseArray:
		match := l.compileArrayElements(c.Elements, 0, c.Rest, val, fc, binds, onMatch, onFail)
		return &tir.DArrayLen{Scrutinee: val, Length: len(c.Elements), AtLeast: c.Rest != nil, Match: match, Default: onFail}

	case *expr.CaseMembers:
		return l.compileMembersPattern(c, val, fc, binds, onMatch, onFail)

	case *expr.CaseUnion:
		payloadType := unionPayloadType(val, c.Tag)
		payload := &tir.EUnionPayload{ExprBase: tir.ExprBase{Type: payloadType}, Target: val}
		next := l.compilePattern(c.Pattern, payload, fc, binds, onMatch, onFail)
		return &tir.DSwitchTag{Scrutinee: val, Cases: []tir.DTagCase{{Tag: c.Tag, Next: next}}, Default: onFail}

	case *expr.CaseOr:
		d := onFail
		for i := len(c.Alternatives) - 1; i >= 0; i-- {
			d = l.compilePattern(c.Alternatives[i], val, fc, binds, onMatch, d)
		}
		return d

	case *expr.CaseIf:
		return l.compilePattern(c.Inner, val, fc, binds, func(b []tir.DBind) tir.Decision {
			guard := l.lowerExpr(c.Guard, fc)
			return &tir.DGuard{Binds: b, Guard: guard, Then: onMatch(nil), Else: onFail}
		}, onFail)
	}
	panic("lower: unhandled match case")
}

// compileArrayElements walks a CaseArray's fixed-position elements left to
// right, extracting each by index (DArrayLen has already confirmed the
// array is long enough by the time this runs), then binds the `..rest`
// suffix, if any, to a slice of everything past the fixed elements.
func (l *lowering) compileArrayElements(elements []expr.MatchCase, idx int, rest *expr.Binding, val tir.Expr, fc *funcCtx, binds []tir.DBind, onMatch func([]tir.DBind) tir.Decision, onFail tir.Decision) tir.Decision {
	if idx == len(elements) {
		if rest != nil {
			restType := applySubst(types.FinalType(rest.Type), fc.subst)
			v := fc.bindVar(rest, restType)
			tail := &tir.ESlice{ExprBase: tir.ExprBase{Type: restType}, Array: val, Low: &tir.EInt{ExprBase: tir.ExprBase{Type: &types.Int{}}, Value: int64(len(elements))}}
			binds = append(binds, tir.DBind{Var: v, Value: tail})
		}
		return onMatch(binds)
	}
	elemType := elementTypeOf(val.Typ())
	elem := &tir.EIndex{ExprBase: tir.ExprBase{Type: elemType}, Array: val, Index: &tir.EInt{ExprBase: tir.ExprBase{Type: &types.Int{}}, Value: int64(idx)}}
	return l.compilePattern(elements[idx], elem, fc, binds, func(b []tir.DBind) tir.Decision {
		return l.compileArrayElements(elements, idx+1, rest, val, fc, b, onMatch, onFail)
	}, onFail)
}

// compileMembersPattern compiles a CaseMembers pattern against val. A union
// variant declared with exactly one non-tuple argument is represented by a
// single-element CaseMembers whose element matches the payload directly,
// without a tuple-extraction indirection - mirroring
// internal/checker.checkUnionPayload's identical special case, so a pattern
// and the constructor call it matches agree on what "the payload" is.
func (l *lowering) compileMembersPattern(c *expr.CaseMembers, val tir.Expr, fc *funcCtx, binds []tir.DBind, onMatch func([]tir.DBind) tir.Decision, onFail tir.Decision) tir.Decision {
	if len(c.Elements) == 1 {
		if _, isTuple := types.FinalType(val.Typ()).(*types.Tuple); !isTuple {
			return l.compilePattern(c.Elements[0], val, fc, binds, onMatch, onFail)
		}
	}
	return l.compileMembers(c.Elements, 0, val, fc, binds, onMatch, onFail)
}

func (l *lowering) compileMembers(elements []expr.MatchCase, idx int, val tir.Expr, fc *funcCtx, binds []tir.DBind, onMatch func([]tir.DBind) tir.Decision, onFail tir.Decision) tir.Decision {
	if idx == len(elements) {
		return onMatch(binds)
	}
	tup := types.FinalType(val.Typ()).(*types.Tuple)
	elemType := tup.Members[idx]
	elem := &tir.EMember{ExprBase: tir.ExprBase{Type: elemType}, Target: val, Index: idx}
	return l.compilePattern(elements[idx], elem, fc, binds, func(b []tir.DBind) tir.Decision {
		return l.compileMembers(elements, idx+1, val, fc, b, onMatch, onFail)
	}, onFail)
}

func elementTypeOf(t types.Type) types.Type {
	arr := types.FinalType(t).(*types.Array)
	return arr.Contained
}

// unionPayloadType finds tag's payload type from val's own concrete
// Instance type, instantiating the prototype's declared (possibly generic)
// member type against val's actual Generics - reusing the same lookup
// internal/checker's member-access path uses (internal/types/prototype.go's
// MemberTypeByIndexUnion), since val's type here is the scrutinee's real,
// already-monomorphic instance, not a declaration template.
func unionPayloadType(val tir.Expr, tag int) types.Type {
	inst := types.FinalType(val.Typ()).(*types.Instance)
	proto := inst.Cell.Proto.(*types.PrototypeUnion)
	return types.MemberTypeByIndexUnion(inst, proto, tag)
}
