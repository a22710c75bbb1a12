package match

import "github.com/aikelang/aikec/internal/expr"

var any0 = &expr.CaseAny{}

// Simplify reduces a pattern, most usefully an Or built up as an
// exhaustiveness cover, per spec.md §4.4.5(a-d). Non-Or shapes only
// recurse into their own sub-patterns (an array or member-list pattern
// cannot be simplified away on its own); all the interesting reduction
// happens for CaseOr. Grounded on match.cpp's `simplify`.
func Simplify(p expr.MatchCase) expr.MatchCase {
	switch v := p.(type) {
	case *expr.CaseAny, *expr.CaseValue, *expr.CaseBool, *expr.CaseInt, *expr.CaseChar:
		return v
	case *expr.CaseArray:
		for i, e := range v.Elements {
			v.Elements[i] = Simplify(e)
		}
		return v
	case *expr.CaseMembers:
		for i, e := range v.Elements {
			v.Elements[i] = Simplify(e)
		}
		matchesAny := true
		for _, e := range v.Elements {
			if !Match(e, any0) {
				matchesAny = false
				break
			}
		}
		if matchesAny {
			return &expr.CaseAny{CaseBase: v.CaseBase}
		}
		return v
	case *expr.CaseUnion:
		v.Pattern = Simplify(v.Pattern)
		return v
	case *expr.CaseOr:
		return simplifyOr(v)
	}
	panic("match: unknown MatchCase variant")
}

// simplifyOr implements match.cpp's four CaseOr reduction steps in order:
// drop alternatives already covered by a sibling, fuse two union arms of
// the same tag that differ in exactly one member, collapse to Any once
// every union tag is present and fully handled, and finally collapse to
// Any if any surviving alternative already matches anything.
func simplifyOr(v *expr.CaseOr) expr.MatchCase {
	for i, a := range v.Alternatives {
		v.Alternatives[i] = Simplify(a)
	}

	v.Alternatives = dropCovered(v.Alternatives)

	if fused, ok := fuseUnionArms(v.Alternatives); ok {
		v.Alternatives = fused
		return Simplify(v)
	}

	if collapsed := collapseFullUnionCover(v.Alternatives); collapsed != nil {
		return collapsed
	}

	if Match(v, any0) {
		return &expr.CaseAny{CaseBase: v.CaseBase}
	}
	return v
}

// dropCovered removes any alternative that another alternative in the same
// set already subsumes. Ported as match.cpp's own erase-while-scanning loop
// rather than a filter over a frozen snapshot: once an alternative is
// dropped it stops counting as a coverer for the rest of the scan, which
// matters for exact duplicates (two copies of the same literal each
// "cover" the other; scanning against the live, shrinking slice keeps
// exactly one instead of deleting both).
func dropCovered(opts []expr.MatchCase) []expr.MatchCase {
	i := 0
	for i < len(opts) {
		covered := false
		for j, other := range opts {
			if j != i && Match(other, opts[i]) {
				covered = true
				break
			}
		}
		if covered {
			opts = append(opts[:i], opts[i+1:]...)
		} else {
			i++
		}
	}
	return opts
}

// fuseUnionArms looks for two same-tag CaseUnion alternatives whose member
// lists differ in exactly one position, and joins that one position into an
// Or of the two differing sub-patterns (match.cpp's one-member-difference
// join). Only attempted when the first alternative is itself a union arm,
// matching match.cpp's own gating condition.
func fuseUnionArms(opts []expr.MatchCase) ([]expr.MatchCase, bool) {
	if len(opts) == 0 {
		return nil, false
	}
	if _, ok := opts[0].(*expr.CaseUnion); !ok {
		return nil, false
	}

	for i := 0; i < len(opts); i++ {
		curr, ok := opts[i].(*expr.CaseUnion)
		if !ok {
			continue
		}
		for j := i + 1; j < len(opts); j++ {
			other, ok := opts[j].(*expr.CaseUnion)
			if !ok || curr.Tag != other.Tag {
				continue
			}
			currMembers, ok1 := curr.Pattern.(*expr.CaseMembers)
			otherMembers, ok2 := other.Pattern.(*expr.CaseMembers)
			if !ok1 || !ok2 || len(currMembers.Elements) != len(otherMembers.Elements) {
				continue
			}

			mismatch := -1
			giveUp := false
			for k := range currMembers.Elements {
				eq := Match(currMembers.Elements[k], otherMembers.Elements[k]) && Match(otherMembers.Elements[k], currMembers.Elements[k])
				if !eq {
					if mismatch == -1 {
						mismatch = k
					} else {
						giveUp = true
						break
					}
				}
			}
			if giveUp || mismatch == -1 {
				continue
			}

			var argOptions *expr.CaseOr
			if existing, ok := currMembers.Elements[mismatch].(*expr.CaseOr); ok {
				argOptions = existing
			} else {
				argOptions = &expr.CaseOr{Alternatives: []expr.MatchCase{currMembers.Elements[mismatch]}}
			}
			argOptions.Alternatives = append(argOptions.Alternatives, otherMembers.Elements[mismatch])
			currMembers.Elements[mismatch] = argOptions

			fused := make([]expr.MatchCase, 0, len(opts)-1)
			fused = append(fused, opts[:j]...)
			fused = append(fused, opts[j+1:]...)
			return fused, true
		}
	}
	return nil, false
}

// collapseFullUnionCover collapses the whole Or to Any when every
// alternative is a distinct-tag CaseUnion, every one of them fully handles
// its payload (matches anything), and together they account for every
// variant the union type declares (CaseUnion.Arity).
func collapseFullUnionCover(opts []expr.MatchCase) expr.MatchCase {
	if len(opts) == 0 {
		return nil
	}
	first, ok := opts[0].(*expr.CaseUnion)
	if !ok {
		return nil
	}

	for i := 0; i < len(opts); i++ {
		for k := i + 1; k < len(opts); k++ {
			oi, ok1 := opts[i].(*expr.CaseUnion)
			ok2, ok2Is := opts[k].(*expr.CaseUnion)
			if ok1 && ok2Is && oi.Tag == ok2.Tag {
				return nil
			}
		}
	}

	for _, o := range opts {
		u, ok := o.(*expr.CaseUnion)
		if !ok || !Match(u.Pattern, any0) {
			return nil
		}
	}

	if first.Arity == len(opts) {
		return &expr.CaseAny{}
	}
	return nil
}
