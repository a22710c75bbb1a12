package expr

import (
	"fmt"
	"strings"
)

// Print renders a typed-AST node as a single-line debug form, used by
// `cmd/aikec -dump expr` and by tests asserting on tree shape. Dispatch is
// a plain type switch (internal/ast.Print's sibling, spec.md §9's guidance
// against a Visitor for shared read-only helpers), with one addition over
// ast.Print: a resolved Var shows the Binding it points to, not just its
// source name, since the whole point of printing an expr tree rather than
// a SynAST one is to see what resolution did.
func Print(n Node) string {
	var b strings.Builder
	print1(&b, n)
	return b.String()
}

func print1(b *strings.Builder, n Node) {
	switch e := n.(type) {
	case *Unit:
		b.WriteString("()")
	case *Int:
		fmt.Fprintf(b, "%d", e.Value)
	case *Float:
		fmt.Fprintf(b, "%g", e.Value)
	case *Character:
		fmt.Fprintf(b, "'%s'", e.Payload)
	case *StringLit:
		fmt.Fprintf(b, "%q", e.Payload)
	case *Boolean:
		fmt.Fprintf(b, "%v", e.Value)
	case *ArrayLit:
		printExprList(b, "[", e.Elements, "]")
	case *TupleLit:
		printExprList(b, "(", e.Elements, ")")
	case *Var:
		fmt.Fprintf(b, "%s/%s", e.Name, e.Binding.Scope)
	case *UnaryOp:
		fmt.Fprintf(b, "(%s ", e.Op)
		print1(b, e.Operand)
		b.WriteByte(')')
	case *BinaryOp:
		b.WriteByte('(')
		print1(b, e.Left)
		fmt.Fprintf(b, " %s ", e.Op)
		print1(b, e.Right)
		b.WriteByte(')')
	case *Assign:
		print1(b, e.Target)
		b.WriteString(" := ")
		print1(b, e.Value)
	case *Call:
		print1(b, e.Callee)
		printExprList(b, "(", e.Args, ")")
	case *Index:
		print1(b, e.Array)
		b.WriteByte('[')
		print1(b, e.Index)
		b.WriteByte(']')
	case *Slice:
		print1(b, e.Array)
		b.WriteByte('[')
		if e.Low != nil {
			print1(b, e.Low)
		}
		b.WriteString("..")
		if e.High != nil {
			print1(b, e.High)
		}
		b.WriteByte(']')
	case *Member:
		print1(b, e.Target)
		fmt.Fprintf(b, ".%s#%d", e.Name, e.MemberIndex)
	case *If:
		b.WriteString("if ")
		print1(b, e.Cond)
		b.WriteString(" then ")
		print1(b, e.Then)
		if e.Else != nil {
			b.WriteString(" else ")
			print1(b, e.Else)
		}
	case *ForArray:
		fmt.Fprintf(b, "for %s in ", e.Var.Name)
		print1(b, e.Array)
		b.WriteString(" do ")
		print1(b, e.Body)
	case *ForRange:
		fmt.Fprintf(b, "for %s in ", e.Var.Name)
		print1(b, e.Low)
		b.WriteString("..")
		print1(b, e.High)
		b.WriteString(" do ")
		print1(b, e.Body)
	case *While:
		b.WriteString("while ")
		print1(b, e.Cond)
		b.WriteString(" do ")
		print1(b, e.Body)
	case *Closure:
		name := e.Name
		if name == "" {
			name = "<anon>"
		}
		fmt.Fprintf(b, "fun %s(", name)
		for i, p := range e.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Name)
		}
		b.WriteString(") ")
		if len(e.Externals) > 0 {
			b.WriteString("[captures ")
			for i, ext := range e.Externals {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(ext.Name)
			}
			b.WriteString("] ")
		}
		b.WriteString("-> ")
		print1(b, e.Body)
	case *LetValue:
		fmt.Fprintf(b, "let %s = ", e.Target.Name)
		print1(b, e.Value)
	case *LetTuple:
		b.WriteString("let (")
		for i, t := range e.Targets {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.Name)
		}
		b.WriteString(") = ")
		print1(b, e.Value)
	case *LetFunc:
		fmt.Fprintf(b, "let %s = ", e.Target.Name)
		print1(b, e.Fn)
	case *ExternFunc:
		fmt.Fprintf(b, "extern %s", e.Target.Name)
	case *TypeDecl:
		fmt.Fprintf(b, "type %s", e.Name)
	case *Match:
		b.WriteString("match ")
		print1(b, e.Scrutinee)
		b.WriteString(" with")
		for _, arm := range e.Arms {
			b.WriteString(" | ")
			printCase(b, arm.Case)
			b.WriteString(" -> ")
			print1(b, arm.Body)
		}
	case *Block:
		printExprList(b, "{ ", e.Exprs, " }")
	default:
		fmt.Fprintf(b, "<%T>", n)
	}
}

func printCase(b *strings.Builder, c MatchCase) {
	switch p := c.(type) {
	case *CaseAny:
		if p.Binding == nil {
			b.WriteByte('_')
		} else {
			b.WriteString(p.Binding.Name)
		}
	case *CaseValue:
		print1(b, p.Value)
	case *CaseBool:
		fmt.Fprintf(b, "%v", p.Value)
	case *CaseInt:
		fmt.Fprintf(b, "%d", p.Value)
	case *CaseChar:
		fmt.Fprintf(b, "'%s'", p.Payload)
	case *CaseArray:
		b.WriteByte('[')
		for i, el := range p.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			printCase(b, el)
		}
		if p.Rest != nil {
			if len(p.Elements) > 0 {
				b.WriteString(", ")
			}
			b.WriteString("..")
			b.WriteString(p.Rest.Name)
		}
		b.WriteByte(']')
	case *CaseMembers:
		b.WriteByte('(')
		for i, el := range p.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			printCase(b, el)
		}
		b.WriteByte(')')
	case *CaseUnion:
		b.WriteString(p.Ctor.Name)
		if any, ok := p.Pattern.(*CaseAny); !ok || any.Binding != nil {
			b.WriteByte('(')
			printCase(b, p.Pattern)
			b.WriteByte(')')
		}
	case *CaseOr:
		for i, alt := range p.Alternatives {
			if i > 0 {
				b.WriteString(" | ")
			}
			printCase(b, alt)
		}
	case *CaseIf:
		printCase(b, p.Inner)
		b.WriteString(" if ")
		print1(b, p.Guard)
	default:
		fmt.Fprintf(b, "<%T>", c)
	}
}

func printExprList(b *strings.Builder, open string, elems []Expr, close string) {
	b.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		print1(b, e)
	}
	b.WriteString(close)
}
