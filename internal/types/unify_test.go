package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneFollowsBoundChain(t *testing.T) {
	a := &Generic{}
	b := &Generic{}
	a.Instance = b
	b.Instance = &Int{}

	require.Same(t, Prune(a).(*Int), Prune(b).(*Int))
	assert.Same(t, b.Instance, Prune(a))
}

func TestUnifyBindsUnboundGeneric(t *testing.T) {
	a := &Generic{}
	require.True(t, Unify(a, &Int{}))
	_, ok := Prune(a).(*Int)
	assert.True(t, ok)
}

func TestUnifyScalarMismatchFails(t *testing.T) {
	assert.False(t, Unify(&Int{}, &Bool{}))
}

func TestUnifyFrozenGenericOnlyUnifiesWithItself(t *testing.T) {
	frozen := &Generic{Name: "a", Frozen: true}
	assert.True(t, Unify(frozen, frozen))
	assert.False(t, Unify(frozen, &Int{}))
	assert.Nil(t, frozen.Instance)

	other := &Generic{Name: "a", Frozen: true}
	assert.False(t, Unify(frozen, other))
}

func TestFinalTypeDoesNotMutate(t *testing.T) {
	a := &Generic{}
	b := &Generic{}
	a.Instance = b
	b.Instance = &Int{}

	_, ok := FinalType(a).(*Int)
	require.True(t, ok)
	assert.Same(t, b, a.Instance)
}

func TestUnifyArraysRecurse(t *testing.T) {
	a := &Generic{}
	lhs := &Array{Contained: a}
	rhs := &Array{Contained: &Float{}}
	require.True(t, Unify(lhs, rhs))
	_, ok := Prune(a).(*Float)
	assert.True(t, ok)
}

func TestUnifyFunctionArityMismatchFails(t *testing.T) {
	lhs := &Function{Result: &Unit{}, Args: []Type{&Int{}}}
	rhs := &Function{Result: &Unit{}, Args: []Type{&Int{}, &Int{}}}
	assert.False(t, Unify(lhs, rhs))
}

func TestUnifyOccursCheckRejectsInfiniteType(t *testing.T) {
	a := &Generic{}
	assert.False(t, Unify(a, &Array{Contained: a}))
}

func TestUnifyInstanceComparesCellIdentity(t *testing.T) {
	cellA := &Cell{Proto: &PrototypeRecord{Name: "Box"}}
	cellB := &Cell{Proto: &PrototypeRecord{Name: "Box"}}

	lhs := &Instance{Cell: cellA, Generics: []Type{&Int{}}}
	sameProto := &Instance{Cell: cellA, Generics: []Type{&Int{}}}
	otherProto := &Instance{Cell: cellB, Generics: []Type{&Int{}}}

	assert.True(t, Unify(lhs, sameProto))
	assert.False(t, Unify(lhs, otherProto))
}

func TestFreshGivesDistinctVariablesPerCall(t *testing.T) {
	g := &Generic{}
	scheme := &Function{Result: g, Args: []Type{g}}

	inst1 := Fresh(scheme, nil).(*Function)
	inst2 := Fresh(scheme, nil).(*Function)

	assert.Same(t, inst1.Args[0], inst1.Result)
	assert.NotSame(t, inst1.Args[0], inst2.Args[0])
}

func TestFreshRespectsNonGeneric(t *testing.T) {
	g := &Generic{}
	nongen := []Type{g}

	got := Fresh(g, nongen)

	assert.Same(t, g, got)
}
