package types

import (
	"fmt"
	"strings"
)

// PrettyPrinter carries the state pretty-printing needs across a sequence of
// calls so that the same unnamed generic variable gets the same letter
// everywhere in one diagnostic, and so that autogenerated letters never
// collide with a declared generic's own name. Reuse one PrettyPrinter across
// every type printed inside a single diagnostic message; start a fresh one
// per message. Grounded on original_source/bootstrap/type.hpp's
// PrettyPrintContext (spec.md §7 error kind 5 requires this stable-naming
// behavior, per SPEC_FULL.md §12).
type PrettyPrinter struct {
	names        map[*Generic]string
	used         map[string]bool
	autogenIndex int
}

func NewPrettyPrinter() *PrettyPrinter {
	return &PrettyPrinter{names: map[*Generic]string{}, used: map[string]bool{}}
}

func generateGenericName(index int) string {
	if index < 26 {
		return string(rune('a' + index))
	}
	return fmt.Sprintf("a%d", index-26)
}

func (p *PrettyPrinter) freshName() string {
	for {
		name := generateGenericName(p.autogenIndex)
		p.autogenIndex++
		if !p.used[name] {
			p.used[name] = true
			return name
		}
	}
}

func containedRequiresParens(t Type) bool {
	_, ok := t.(*Function)
	return ok
}

// Print renders t the way spec.md §6.4's diagnostics do: 'a for generics,
// `T[]` for arrays, `(A, B) -> R` for functions, `Name<A, B>` for named
// types. Grounded on original_source/bootstrap/type.cpp's prettyPrint.
func (p *PrettyPrinter) Print(t Type) string {
	var b strings.Builder
	p.print1(&b, t)
	return b.String()
}

func (p *PrettyPrinter) print1(b *strings.Builder, t Type) {
	t = Prune(t)

	switch v := t.(type) {
	case *Generic:
		b.WriteByte('\'')
		if v.Name == "" {
			name, ok := p.names[v]
			if !ok {
				name = p.freshName()
				p.names[v] = name
			}
			b.WriteString(name)
		} else {
			// resolver-declared names keep their source apostrophe ('a)
			name := strings.TrimPrefix(v.Name, "'")
			p.used[name] = true
			b.WriteString(name)
		}
	case *Unit:
		b.WriteString("unit")
	case *Int:
		b.WriteString("int")
	case *Char:
		b.WriteString("char")
	case *Float:
		b.WriteString("float")
	case *Bool:
		b.WriteString("bool")
	case *Tuple:
		b.WriteByte('(')
		for i, m := range v.Members {
			if i != 0 {
				b.WriteString(", ")
			}
			p.print1(b, m)
		}
		b.WriteByte(')')
	case *Array:
		wrap := containedRequiresParens(Prune(v.Contained))
		if wrap {
			b.WriteByte('(')
		}
		p.print1(b, v.Contained)
		if wrap {
			b.WriteByte(')')
		}
		b.WriteString("[]")
	case *Function:
		b.WriteByte('(')
		for i, a := range v.Args {
			if i != 0 {
				b.WriteString(", ")
			}
			p.print1(b, a)
		}
		b.WriteString(") -> ")
		p.print1(b, v.Result)
	case *Instance:
		b.WriteString(prototypeName(v.Cell.Proto))
		if len(v.Generics) > 0 {
			b.WriteByte('<')
			for i, g := range v.Generics {
				if i != 0 {
					b.WriteString(", ")
				}
				p.print1(b, g)
			}
			b.WriteByte('>')
		}
	case *ClosureContext:
		b.WriteString("context [")
		for i := range v.MemberTypes {
			if i != 0 {
				b.WriteString(", ")
			}
			p.print1(b, v.MemberTypes[i])
			b.WriteByte(' ')
			b.WriteString(v.MemberNames[i])
		}
		b.WriteByte(']')
	default:
		b.WriteString("?")
	}
}

func prototypeName(p Prototype) string {
	switch pr := p.(type) {
	case *PrototypeRecord:
		return pr.Name
	case *PrototypeUnion:
		return pr.Name
	}
	return "?"
}
