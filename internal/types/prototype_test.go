package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikelang/aikec/internal/token"
)

func TestMemberIndexByName(t *testing.T) {
	proto := &PrototypeRecord{Name: "Point", MemberNames: []string{"x", "y"}}

	idx, d := MemberIndexByName(proto, "y", token.Location{})
	require.Nil(t, d)
	assert.Equal(t, 1, idx)

	_, d = MemberIndexByName(proto, "z", token.Location{})
	require.NotNil(t, d)
}

func TestMemberTypeByIndexInstantiatesGenerics(t *testing.T) {
	g := &Generic{}
	proto := &PrototypeRecord{
		Name:        "Box",
		MemberNames: []string{"value"},
		MemberTypes: []Type{g},
		Generics:    []Type{g},
	}
	inst := &Instance{Cell: &Cell{Proto: proto}, Generics: []Type{&Int{}}}

	got := MemberTypeByIndexRecord(inst, proto, 0)
	_, ok := got.(*Int)
	assert.True(t, ok)
}

func TestMemberTypeByIndexUnionVariant(t *testing.T) {
	g := &Generic{}
	proto := &PrototypeUnion{
		Name:        "Option",
		MemberNames: []string{"None", "Some"},
		MemberTypes: []Type{nil, g},
		Generics:    []Type{g},
	}
	inst := &Instance{Cell: &Cell{Proto: proto}, Generics: []Type{&Bool{}}}

	got := MemberTypeByIndexUnion(inst, proto, 1)
	_, ok := got.(*Bool)
	assert.True(t, ok)
}
