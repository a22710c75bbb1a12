// Package match implements the closed pattern algebra spec.md §4.4.5 names
// (clone/match/simplify) and the exhaustiveness/redundancy check built on
// top of it (§4.4.5's cover algorithm). Grounded on
// original_source/bootstrap/match.cpp, whose three free functions
// (clone/match/simplify) this package ports case-by-case; the fourth file,
// exhaustive.go, has no direct analogue in match.cpp (the C++ bootstrap
// compiler never actually checks exhaustiveness) and is built from spec.md's
// own prose description of the cover algorithm plus typecheck.cpp's
// resolveMatch to confirm pattern shapes.
package match

import "github.com/aikelang/aikec/internal/expr"

// anonRest stands in for a discarded array-rest binding: Clone needs to
// remember that a pattern had a `..rest` tail (shape), without carrying the
// original binding's name, so every cloned CaseArray with a rest shares this
// one placeholder rather than allocating a fresh, meaningless Binding.
var anonRest = &expr.Binding{Name: "..."}

// Clone deep-copies a MatchCase preserving only its structural shape: bound
// names are discarded (spec.md §4.4.5's "deep copy preserving only the
// pattern shape, discarding bound names") so two patterns that only differ
// in what they call a capture are treated as the same shape by Match.
func Clone(p expr.MatchCase) expr.MatchCase {
	switch v := p.(type) {
	case *expr.CaseAny:
		return &expr.CaseAny{CaseBase: v.CaseBase}
	case *expr.CaseValue:
		return &expr.CaseValue{CaseBase: v.CaseBase, Value: v.Value}
	case *expr.CaseBool:
		return &expr.CaseBool{CaseBase: v.CaseBase, Value: v.Value}
	case *expr.CaseInt:
		return &expr.CaseInt{CaseBase: v.CaseBase, Value: v.Value}
	case *expr.CaseChar:
		return &expr.CaseChar{CaseBase: v.CaseBase, Payload: v.Payload}
	case *expr.CaseArray:
		elems := make([]expr.MatchCase, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = Clone(e)
		}
		var rest *expr.Binding
		if v.Rest != nil {
			rest = anonRest
		}
		return &expr.CaseArray{CaseBase: v.CaseBase, Elements: elems, Rest: rest}
	case *expr.CaseMembers:
		elems := make([]expr.MatchCase, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = Clone(e)
		}
		return &expr.CaseMembers{CaseBase: v.CaseBase, Elements: elems}
	case *expr.CaseUnion:
		return &expr.CaseUnion{CaseBase: v.CaseBase, Tag: v.Tag, Arity: v.Arity, Pattern: Clone(v.Pattern)}
	case *expr.CaseOr:
		alts := make([]expr.MatchCase, len(v.Alternatives))
		for i, a := range v.Alternatives {
			alts[i] = Clone(a)
		}
		return &expr.CaseOr{CaseBase: v.CaseBase, Alternatives: alts}
	}
	panic("match: unknown MatchCase variant")
}

func valueEqual(a, b expr.Expr) bool {
	as, aok := a.(*expr.StringLit)
	bs, bok := b.(*expr.StringLit)
	return aok && bok && as.Payload == bs.Payload
}
