package match

import (
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
)

// Check walks a match's arms in textual order, building the accumulated
// cover spec.md §4.4.5 describes: start with an empty Or, and for each
// unguarded arm, test whether the cover already subsumes it (unreachable)
// before folding it in and re-simplifying. A guarded arm (CaseIf) is
// skipped entirely — it never contributes to the cover and is never itself
// considered already covered, per spec.md's "skipping guarded arms, which
// are never assumed exhaustive". At the end the final cover must subsume
// Any, or the match is rejected as non-exhaustive.
func Check(m *expr.Match) *diag.Diagnostic {
	cover := expr.MatchCase(&expr.CaseOr{})
	for _, arm := range m.Arms {
		if _, guarded := arm.Case.(*expr.CaseIf); guarded {
			continue
		}
		p := Clone(arm.Case)
		if Match(cover, p) {
			return diag.New(diag.MatchAnalysis, arm.Location, "this case is unreachable: already covered by a preceding case")
		}
		or := cover.(*expr.CaseOr)
		or.Alternatives = append(or.Alternatives, p)
		cover = Simplify(or)
	}
	if !Match(cover, any0) {
		return diag.New(diag.MatchAnalysis, m.Location, "the match doesn't cover all cases")
	}
	return nil
}
