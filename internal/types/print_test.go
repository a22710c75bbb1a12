package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintScalarsAndGenerics(t *testing.T) {
	p := NewPrettyPrinter()
	assert.Equal(t, "int", p.Print(&Int{}))
	assert.Equal(t, "'a", p.Print(&Generic{}))
}

func TestPrintSameUnnamedGenericReusesLetter(t *testing.T) {
	p := NewPrettyPrinter()
	g := &Generic{}
	assert.Equal(t, "'a", p.Print(g))
	assert.Equal(t, "'a", p.Print(g))

	other := &Generic{}
	assert.Equal(t, "'b", p.Print(other))
}

func TestPrintNamedGenericKeepsDeclaredName(t *testing.T) {
	p := NewPrettyPrinter()
	assert.Equal(t, "'elem", p.Print(&Generic{Name: "elem"}))
}

func TestPrintArrayWrapsFunctionElement(t *testing.T) {
	p := NewPrettyPrinter()
	fn := &Function{Result: &Bool{}, Args: []Type{&Int{}}}
	assert.Equal(t, "((int) -> bool)[]", p.Print(&Array{Contained: fn}))
}

func TestPrintFunctionAndTuple(t *testing.T) {
	p := NewPrettyPrinter()
	fn := &Function{Result: &Unit{}, Args: []Type{&Int{}, &Bool{}}}
	assert.Equal(t, "(int, bool) -> unit", p.Print(fn))

	tup := &Tuple{Members: []Type{&Int{}, &Float{}}}
	assert.Equal(t, "(int, float)", p.Print(tup))
}

func TestPrintInstanceWithGenerics(t *testing.T) {
	p := NewPrettyPrinter()
	cell := &Cell{Proto: &PrototypeRecord{Name: "Box"}}
	inst := &Instance{Cell: cell, Generics: []Type{&Int{}}}
	assert.Equal(t, "Box<int>", p.Print(inst))
}

func TestPrintClosureContext(t *testing.T) {
	p := NewPrettyPrinter()
	cc := &ClosureContext{MemberTypes: []Type{&Int{}}, MemberNames: []string{"n"}}
	assert.Equal(t, "context [int n]", p.Print(cc))
}
