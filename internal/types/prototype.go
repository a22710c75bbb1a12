package types

import (
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/token"
)

// GenericsOf returns a prototype's own declared generic parameters, in
// declaration order.
func GenericsOf(proto Prototype) []Type {
	switch p := proto.(type) {
	case *PrototypeRecord:
		return p.Generics
	case *PrototypeUnion:
		return p.Generics
	}
	return nil
}

// MemberIndexByName looks up a record field's position by name, for `.field`
// member access. Grounded on original_source/bootstrap/type.cpp's
// getMemberIndexByName; unlike the C++ original this is record-only (union
// payloads are addressed by variant, not by field name, once resolved).
func MemberIndexByName(proto *PrototypeRecord, name string, loc token.Location) (int, *diag.Diagnostic) {
	for i, n := range proto.MemberNames {
		if n == name {
			return i, nil
		}
	}
	return -1, diag.New(diag.TypeError, loc, "type %s doesn't have a member named %q", proto.Name, name)
}

// substitute replaces every generic variable present in sub, leaving
// anything else (including a generic with no entry) untouched.
func substitute(t Type, sub map[*Generic]Type) Type {
	t = Prune(t)

	switch v := t.(type) {
	case *Generic:
		if r, ok := sub[v]; ok {
			return r
		}
		return v
	case *Array:
		return &Array{Contained: substitute(v.Contained, sub)}
	case *Function:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = substitute(a, sub)
		}
		return &Function{Result: substitute(v.Result, sub), Args: args}
	case *Instance:
		generics := make([]Type, len(v.Generics))
		for i, g := range v.Generics {
			generics[i] = substitute(g, sub)
		}
		return &Instance{Cell: v.Cell, Generics: generics}
	case *Tuple:
		members := make([]Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = substitute(m, sub)
		}
		return &Tuple{Members: members}
	}

	return t
}

// memberTypeByIndex instantiates a prototype member's declared type (which is
// expressed in terms of the prototype's own generic parameters) for one
// concrete Instance of that prototype, by substituting the instance's actual
// generic arguments for the prototype's generic parameters. Grounded on
// original_source/bootstrap/type.cpp's two getMemberTypeByIndex overloads,
// collapsed into one helper since record and union members are looked up
// identically once the index is known.
func memberTypeByIndex(inst *Instance, protoGenerics, memberTypes []Type, index int) Type {
	sub := make(map[*Generic]Type, len(protoGenerics))
	for i, g := range protoGenerics {
		if gv, ok := Prune(g).(*Generic); ok {
			sub[gv] = inst.Generics[i]
		}
	}
	return substitute(memberTypes[index], sub)
}

// MemberTypeByIndexRecord instantiates record field index for inst.
func MemberTypeByIndexRecord(inst *Instance, proto *PrototypeRecord, index int) Type {
	return memberTypeByIndex(inst, proto.Generics, proto.MemberTypes, index)
}

// MemberTypeByIndexUnion instantiates union variant payload index for inst.
func MemberTypeByIndexUnion(inst *Instance, proto *PrototypeUnion, index int) Type {
	return memberTypeByIndex(inst, proto.Generics, proto.MemberTypes, index)
}
