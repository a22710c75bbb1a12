// Package mangle renders a stable, backend-consumed name for a type or a
// monomorphised function instance (spec.md §6.2). The grammar is spec.md's
// own prefix grammar, not original_source/compiler/mangle.cpp's (the C++
// original mangles ret-then-args and uses Itanium-style "6string"/"Z..E"
// nesting); spec.md states its own grammar as the byte-identical contract a
// backend relies on, so it is the authority here, with mangle.cpp only
// grounding the recursive type-to-buffer walk as an implementation shape.
package mangle

import (
	"strconv"
	"strings"

	"github.com/aikelang/aikec/internal/types"
)

// Type renders t per spec.md §6.2: u/i/c/f/b for scalars, A<T> for arrays,
// T<n><T1>...<Tn> for tuples, F<n><T1>...<Tn><R> for functions, and
// I<n><T1>...<Tn>N<len><name> for a named prototype instance.
func Type(t types.Type) string {
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

func writeType(b *strings.Builder, t types.Type) {
	switch v := types.FinalType(t).(type) {
	case *types.Unit:
		b.WriteByte('u')
	case *types.Int:
		b.WriteByte('i')
	case *types.Char:
		b.WriteByte('c')
	case *types.Float:
		b.WriteByte('f')
	case *types.Bool:
		b.WriteByte('b')
	case *types.Array:
		b.WriteByte('A')
		writeType(b, v.Contained)
	case *types.Tuple:
		b.WriteByte('T')
		b.WriteString(strconv.Itoa(len(v.Members)))
		for _, m := range v.Members {
			writeType(b, m)
		}
	case *types.Function:
		b.WriteByte('F')
		b.WriteString(strconv.Itoa(len(v.Args)))
		for _, a := range v.Args {
			writeType(b, a)
		}
		writeType(b, v.Result)
	case *types.Instance:
		b.WriteByte('I')
		b.WriteString(strconv.Itoa(len(v.Generics)))
		for _, g := range v.Generics {
			writeType(b, g)
		}
		b.WriteByte('N')
		name := protoName(v.Cell.Proto)
		b.WriteString(strconv.Itoa(len(name)))
		b.WriteString(name)
	case *types.Generic:
		// Lowering only ever mangles a fully-monomorphised instance key -
		// every generic has already been pruned to a concrete type by the
		// checker's unification plus internal/lower's own instantiation
		// substitution. A Generic surviving to here means a caller tried to
		// mangle a still-polymorphic type.
		panic("mangle: unresolved generic type")
	default:
		panic("mangle: unknown type")
	}
}

func protoName(p types.Prototype) string {
	switch v := p.(type) {
	case *types.PrototypeRecord:
		return v.Name
	case *types.PrototypeUnion:
		return v.Name
	}
	panic("mangle: unknown prototype")
}

// Function mangles one monomorphised instance of a function declared as
// name: the bare name when it has no generics to substitute, otherwise
// name followed by ".." and each substitution (in the function's own
// generic-parameter order) mangled the same way as any other type.
// Grounded on spec.md §6.2's "Function instances append `..` followed by
// each generic substitution mangled the same way."
func Function(name string, subst []types.Type) string {
	if len(subst) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("..")
	for _, s := range subst {
		writeType(&b, s)
	}
	return b.String()
}
