package tir

// Decision is a compiled Match: a tree of primitive tests terminating in
// either a Leaf (one arm's lowered body, reached once every preceding test
// on the path to it has passed) or a Fail (every arm's decision refused -
// only reachable beneath a guard that evaluated false, since
// internal/match.Check has already proved a guard-free cover exhaustive
// before lowering ever runs). Grounded on spec.md §4.6(3)'s enumerated test
// kinds: internal/lower compiles each arm's pattern into its own cascade of
// these nodes, in arm order, rather than merging siblings into a single
// shared switch the way a Maranget-style matrix compiler would - spec.md
// names the test *kinds* a compiler must produce, not a particular sharing
// strategy, and reachability/exhaustiveness is already proven independently
// by internal/match, so a simple sequential-arm cascade is a faithful
// (if not maximally compact) compilation.
type Decision interface{ isDecision() }

// DLeaf runs Binds (in order, materialising each pattern-introduced name)
// and then evaluates Body - one arm's matched outcome.
type DLeaf struct {
	Binds []DBind
	Body  Expr
}

// DBind assigns a pattern-bound Var its matched sub-value.
type DBind struct {
	Var   *Var
	Value Expr
}

// DFail ends the arm cascade: no arm matched. An arm's own failure path
// continues straight into the next arm's Decision; DFail only follows the
// last arm.
type DFail struct{}

// DSwitchTag tests Scrutinee's union tag, dispatching to the matching
// Case's Next (built from its payload, extracted via EUnionPayload) or
// falling through to Default.
type DSwitchTag struct {
	Scrutinee Expr
	Cases     []DTagCase
	Default   Decision
}

type DTagCase struct {
	Tag  int
	Next Decision
}

// DSwitchInt/DSwitchBool/DSwitchChar test a scalar Scrutinee against one or
// more literal values, falling through to Default (DSwitchBool has no
// Default: both outcomes are always present, since bool has exactly two
// values).
type DSwitchInt struct {
	Scrutinee Expr
	Cases     []DIntCase
	Default   Decision
}

type DIntCase struct {
	Value int64
	Next  Decision
}

type DSwitchBool struct {
	Scrutinee   Expr
	True, False Decision
}

type DSwitchChar struct {
	Scrutinee Expr
	Cases     []DCharCase
	Default   Decision
}

type DCharCase struct {
	Payload string
	Next    Decision
}

// DArrayLen tests Scrutinee's length (exactly Length when AtLeast is
// false, at least Length when a `..rest` suffix made it a minimum),
// branching to Match or Default.
type DArrayLen struct {
	Scrutinee Expr
	Length    int
	AtLeast   bool
	Match     Decision
	Default   Decision
}

// DGuard materialises its own Binds (every name the guarded pattern bound),
// then evaluates Guard and continues to Then or Else.
type DGuard struct {
	Binds      []DBind
	Guard      Expr
	Then, Else Decision
}

func (*DLeaf) isDecision()       {}
func (*DFail) isDecision()       {}
func (*DSwitchTag) isDecision()  {}
func (*DSwitchInt) isDecision()  {}
func (*DSwitchBool) isDecision() {}
func (*DSwitchChar) isDecision() {}
func (*DArrayLen) isDecision()   {}
func (*DGuard) isDecision()      {}
