// Package checker implements aike's type checker: a single bottom-up pass
// over internal/expr that infers and unifies every node's type using
// internal/types' unifier, fills in Member.MemberIndex once an aggregate's
// prototype is known, and runs internal/match's exhaustiveness check on
// every Match. Grounded on original_source/bootstrap/typecheck.cpp's analyze
// family. The C++ original mutates a mutable Type* slot it stores directly
// on MatchCase/LetVar nodes; internal/expr's MatchCase carries no such slot
// (internal/resolver already finalized its leaner shape), so here a
// pattern's type is never stored - it is threaded top-down from the
// scrutinee into sub-patterns and unified in place, the mirror image of how
// an ordinary expression's type is computed bottom-up and returned.
package checker

import (
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/token"
	"github.com/aikelang/aikec/internal/types"
)

// checkError unwinds the recursion to CheckFile on the first diagnostic,
// matching internal/resolver's resolveError convention (spec.md §7's "first
// error in a phase aborts the phase").
type checkError struct{ d *diag.Diagnostic }

func fail(kind diag.Kind, loc token.Location, format string, args ...any) {
	panic(checkError{diag.New(kind, loc, format, args...)})
}

// mustUnify reports a type-mismatch diagnostic when actual fails to unify
// with expected. Grounded on typecheck.cpp's mustUnify, including its
// two-line "expecting a / but given a" message shape (one PrettyPrinter per
// call so both sides of one mismatch share generic-variable letters).
func mustUnify(actual, expected types.Type, loc token.Location) {
	if types.Unify(actual, expected) {
		return
	}
	p := types.NewPrettyPrinter()
	expectedStr := p.Print(expected)
	actualStr := p.Print(actual)
	fail(diag.TypeError, loc, "type mismatch: expecting a\n    %s\nbut given a\n    %s", expectedStr, actualStr)
}

// CheckFile type-checks a resolved top-level block in place, filling in
// every node's Type field and every Member's MemberIndex as it goes, and
// returns the first diagnostic raised (a unification failure, a bad member
// access, or a non-exhaustive/unreachable match).
func CheckFile(root *expr.Block) (d *diag.Diagnostic) {
	defer func() {
		if rec := recover(); rec != nil {
			if ce, ok := rec.(checkError); ok {
				d = ce.d
				return
			}
			panic(rec)
		}
	}()
	checkBlock(root, nil)
	return nil
}

// pushNongen extends nongen with extra entries, copying so a sibling branch
// of the recursion (checking one block element after another) never
// observes another branch's still-pending push through a shared backing
// array. Grounded on typecheck.cpp's nongen.push_back/pop_back, adapted
// since Go gives no cheap, safe way to pop back in place across recursive
// calls that might retain slices.
func pushNongen(nongen []types.Type, extra ...types.Type) []types.Type {
	out := make([]types.Type, 0, len(nongen)+len(extra))
	out = append(out, nongen...)
	out = append(out, extra...)
	return out
}
