package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
)

func unionTag(tag, arity int, pattern expr.MatchCase) *expr.CaseUnion {
	return &expr.CaseUnion{Tag: tag, Arity: arity, Pattern: pattern}
}

func TestMatchAnySubsumesEverything(t *testing.T) {
	assert.True(t, Match(&expr.CaseAny{}, &expr.CaseInt{Value: 5}))
	assert.True(t, Match(&expr.CaseAny{}, unionTag(1, 2, &expr.CaseAny{})))
}

func TestMatchIntLiterals(t *testing.T) {
	assert.True(t, Match(&expr.CaseInt{Value: 5}, &expr.CaseInt{Value: 5}))
	assert.False(t, Match(&expr.CaseInt{Value: 5}, &expr.CaseInt{Value: 6}))
	assert.False(t, Match(&expr.CaseInt{Value: 5}, &expr.CaseAny{}))
}

func TestMatchUnionTagAndPayload(t *testing.T) {
	some1 := unionTag(1, 2, &expr.CaseMembers{Elements: []expr.MatchCase{&expr.CaseInt{Value: 1}}})
	some2 := unionTag(1, 2, &expr.CaseMembers{Elements: []expr.MatchCase{&expr.CaseInt{Value: 2}}})
	assert.False(t, Match(some1, some2))

	someAny := unionTag(1, 2, &expr.CaseMembers{Elements: []expr.MatchCase{&expr.CaseAny{}}})
	assert.True(t, Match(someAny, some2))

	none := unionTag(0, 2, &expr.CaseAny{})
	assert.False(t, Match(none, some1))
}

func TestMatchOrIsDisjunction(t *testing.T) {
	cover := &expr.CaseOr{Alternatives: []expr.MatchCase{&expr.CaseInt{Value: 1}, &expr.CaseInt{Value: 2}}}
	assert.True(t, Match(cover, &expr.CaseInt{Value: 1}))
	assert.True(t, Match(cover, &expr.CaseInt{Value: 2}))
	assert.False(t, Match(cover, &expr.CaseInt{Value: 3}))
}

func TestCloneDiscardsBindings(t *testing.T) {
	b := &expr.Binding{Name: "x"}
	p := &expr.CaseArray{
		Elements: []expr.MatchCase{&expr.CaseAny{Binding: b}},
		Rest:     b,
	}
	c := Clone(p).(*expr.CaseArray)
	require.NotNil(t, c.Rest)
	assert.NotSame(t, b, c.Rest)
	any0 := c.Elements[0].(*expr.CaseAny)
	assert.Nil(t, any0.Binding)
}

// Two union arms whose payload members differ in exactly one position fuse
// into a single arm whose differing position becomes an Or of both values
// (spec.md §4.4.5(b)).
func TestSimplifyFusesUnionArmsWithOneMemberDifference(t *testing.T) {
	pairMembers := func(a, b expr.MatchCase) *expr.CaseMembers {
		return &expr.CaseMembers{Elements: []expr.MatchCase{a, b}}
	}
	cover := &expr.CaseOr{Alternatives: []expr.MatchCase{
		unionTag(0, 3, pairMembers(&expr.CaseInt{Value: 1}, &expr.CaseAny{})),
		unionTag(0, 3, pairMembers(&expr.CaseInt{Value: 2}, &expr.CaseAny{})),
	}}
	out := Simplify(cover)
	or, ok := out.(*expr.CaseOr)
	require.True(t, ok)
	require.Len(t, or.Alternatives, 1)
	u := or.Alternatives[0].(*expr.CaseUnion)
	members := u.Pattern.(*expr.CaseMembers)
	joined, ok := members.Elements[0].(*expr.CaseOr)
	require.True(t, ok)
	assert.Len(t, joined.Alternatives, 2)
}

// All members of a record/tuple pattern being Any collapses the whole
// pattern to Any (spec.md §4.4.5(c)).
func TestSimplifyCollapsesAllAnyMembers(t *testing.T) {
	p := &expr.CaseMembers{Elements: []expr.MatchCase{&expr.CaseAny{}, &expr.CaseAny{}}}
	out := Simplify(p)
	_, ok := out.(*expr.CaseAny)
	assert.True(t, ok)
}

// An Or covering every union tag, each fully handled, collapses to Any
// (spec.md §4.4.5(d)).
func TestSimplifyCollapsesFullUnionCoverToAny(t *testing.T) {
	cover := &expr.CaseOr{Alternatives: []expr.MatchCase{
		unionTag(0, 2, &expr.CaseAny{}),
		unionTag(1, 2, &expr.CaseAny{}),
	}}
	out := Simplify(cover)
	_, ok := out.(*expr.CaseAny)
	assert.True(t, ok)
}

func TestSimplifyIsIdempotent(t *testing.T) {
	cover := &expr.CaseOr{Alternatives: []expr.MatchCase{
		&expr.CaseInt{Value: 1},
		&expr.CaseInt{Value: 2},
		&expr.CaseInt{Value: 1},
	}}
	once := Simplify(cover)
	twice := Simplify(Clone(once))
	assert.Equal(t, once, twice)
}

func optionSomeArm(loc int) *expr.MatchArm {
	return &expr.MatchArm{
		Case: unionTag(1, 2, &expr.CaseMembers{Elements: []expr.MatchCase{&expr.CaseAny{Binding: &expr.Binding{Name: "v"}}}}),
		Body: &expr.Block{},
	}
}

func optionNoneArm() *expr.MatchArm {
	return &expr.MatchArm{Case: unionTag(0, 2, &expr.CaseAny{}), Body: &expr.Block{}}
}

func TestCheckExhaustiveOptionMatch(t *testing.T) {
	m := &expr.Match{Arms: []*expr.MatchArm{optionNoneArm(), optionSomeArm(0)}}
	d := Check(m)
	assert.Nil(t, d)
}

func TestCheckNonExhaustiveMissingArm(t *testing.T) {
	m := &expr.Match{Arms: []*expr.MatchArm{optionSomeArm(0)}}
	d := Check(m)
	require.NotNil(t, d)
	assert.Equal(t, diag.MatchAnalysis, d.Kind)
}

func TestCheckUnreachableArm(t *testing.T) {
	m := &expr.Match{Arms: []*expr.MatchArm{
		{Case: &expr.CaseAny{}, Body: &expr.Block{}},
		{Case: &expr.CaseInt{Value: 1}, Body: &expr.Block{}},
	}}
	d := Check(m)
	require.NotNil(t, d)
	assert.Equal(t, diag.MatchAnalysis, d.Kind)
}

func TestCheckGuardedArmNeverCountsTowardExhaustiveness(t *testing.T) {
	m := &expr.Match{Arms: []*expr.MatchArm{
		{Case: &expr.CaseIf{Inner: &expr.CaseAny{}, Guard: &expr.Boolean{Value: true}}, Body: &expr.Block{}},
	}}
	d := Check(m)
	require.NotNil(t, d)
	assert.Equal(t, diag.MatchAnalysis, d.Kind)
}
