package mangle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aikelang/aikec/internal/types"
)

func TestTypeScalars(t *testing.T) {
	assert.Equal(t, "u", Type(&types.Unit{}))
	assert.Equal(t, "i", Type(&types.Int{}))
	assert.Equal(t, "c", Type(&types.Char{}))
	assert.Equal(t, "f", Type(&types.Float{}))
	assert.Equal(t, "b", Type(&types.Bool{}))
}

func TestTypeArrayAndTuple(t *testing.T) {
	assert.Equal(t, "Ai", Type(&types.Array{Contained: &types.Int{}}))
	tup := &types.Tuple{Members: []types.Type{&types.Int{}, &types.Bool{}}}
	assert.Equal(t, "T2ib", Type(tup))
}

func TestTypeFunction(t *testing.T) {
	fn := &types.Function{Args: []types.Type{&types.Int{}, &types.Bool{}}, Result: &types.Char{}}
	assert.Equal(t, "F2ibc", Type(fn))
}

func TestTypeInstance(t *testing.T) {
	proto := &types.PrototypeUnion{Name: "Option", MemberNames: []string{"None", "Some"}}
	cell := &types.Cell{Proto: proto}
	inst := &types.Instance{Cell: cell, Generics: []types.Type{&types.Int{}}}
	assert.Equal(t, "I1iN6Option", Type(inst))
}

func TestTypeFollowsBoundGeneric(t *testing.T) {
	g := &types.Generic{}
	g.Instance = &types.Int{}
	assert.Equal(t, "i", Type(g))
}

func TestTypePanicsOnUnresolvedGeneric(t *testing.T) {
	assert.Panics(t, func() { Type(&types.Generic{}) })
}

func TestFunctionWithoutGenericsIsBareName(t *testing.T) {
	assert.Equal(t, "add", Function("add", nil))
}

func TestFunctionAppendsEachSubstitution(t *testing.T) {
	got := Function("id", []types.Type{&types.Int{}})
	assert.Equal(t, "id..i", got)

	got2 := Function("pair", []types.Type{&types.Int{}, &types.Bool{}})
	assert.Equal(t, "pair..ib", got2)
}
