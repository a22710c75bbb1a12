package match

import "github.com/aikelang/aikec/internal/expr"

// Match reports whether pattern subsumes rhs: every concrete value rhs
// itself would match is also matched by pattern. Grounded on
// match.cpp's `match`, a structural recursion dispatching on pattern's own
// variant (rhs only needs to agree at the top level; a pattern never
// subsumes a shape it cannot itself express). A CaseArray with a `..rest`
// tail subsumes only another CaseArray that also has a rest tail and an
// equal fixed-element count: the algebra makes no attempt to reason about
// variable-length coverage beyond that (spec.md's array-rest pattern has no
// analogue in match.cpp to ground a richer rule on).
func Match(pattern, rhs expr.MatchCase) bool {
	switch p := pattern.(type) {
	case *expr.CaseAny:
		return true
	case *expr.CaseValue:
		r, ok := rhs.(*expr.CaseValue)
		return ok && valueEqual(p.Value, r.Value)
	case *expr.CaseBool:
		r, ok := rhs.(*expr.CaseBool)
		return ok && p.Value == r.Value
	case *expr.CaseInt:
		r, ok := rhs.(*expr.CaseInt)
		return ok && p.Value == r.Value
	case *expr.CaseChar:
		r, ok := rhs.(*expr.CaseChar)
		return ok && p.Payload == r.Payload
	case *expr.CaseArray:
		r, ok := rhs.(*expr.CaseArray)
		if !ok || len(p.Elements) != len(r.Elements) || (p.Rest != nil) != (r.Rest != nil) {
			return false
		}
		for i := range p.Elements {
			if !Match(p.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case *expr.CaseMembers:
		r, ok := rhs.(*expr.CaseMembers)
		if !ok || len(p.Elements) != len(r.Elements) {
			return false
		}
		for i := range p.Elements {
			if !Match(p.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case *expr.CaseUnion:
		r, ok := rhs.(*expr.CaseUnion)
		return ok && p.Tag == r.Tag && Match(p.Pattern, r.Pattern)
	case *expr.CaseOr:
		for _, opt := range p.Alternatives {
			if Match(opt, rhs) {
				return true
			}
		}
		return false
	}
	panic("match: unknown MatchCase variant")
}
