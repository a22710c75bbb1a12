package ast

import (
	"fmt"
	"strings"
)

// Print renders a SynAST node as a single-line debug form, used by
// `cmd/aikec -dump syn` and by tests that assert on tree shape rather than
// the full token-span-accurate source. Dispatch is a plain type switch over
// the Expr/Pattern/TypeExprNode sum types, per spec.md §9's guidance against
// a Visitor for this kind of shared, read-only helper.
func Print(n Node) string {
	var b strings.Builder
	print1(&b, n)
	return b.String()
}

func print1(b *strings.Builder, n Node) {
	switch e := n.(type) {
	case *Unit:
		b.WriteString("()")
	case *Number:
		b.WriteString(e.Lexeme)
	case *Character:
		fmt.Fprintf(b, "'%s'", e.Payload)
	case *StringLit:
		fmt.Fprintf(b, "%q", e.Payload)
	case *Boolean:
		fmt.Fprintf(b, "%v", e.Value)
	case *ArrayLit:
		printList(b, "[", e.Elements, "]")
	case *TupleLit:
		printList(b, "(", e.Elements, ")")
	case *Var:
		b.WriteString(e.Name)
	case *Ident:
		b.WriteString(e.Name)
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
		b.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			if a.Name != "" {
				fmt.Fprintf(b, "%s = ", a.Name)
			}
			print1(b, a.Value)
		}
		b.WriteByte(')')
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
		b.WriteByte('.')
		b.WriteString(e.Name)
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
	case *AnonFunc:
		b.WriteString("fun(")
		printParams(b, e.Params)
		b.WriteString(") -> ")
		print1(b, e.Body)
	case *LetValue:
		fmt.Fprintf(b, "let %s = ", e.Name.Name)
		print1(b, e.Value)
	case *LetTuple:
		b.WriteString("let (")
		for i, n := range e.Names {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n.Name)
		}
		b.WriteString(") = ")
		print1(b, e.Value)
	case *LetFunc:
		fmt.Fprintf(b, "let %s(", e.Name.Name)
		printParams(b, e.Params)
		b.WriteString(") = ")
		print1(b, e.Body)
	case *ExternFunc:
		fmt.Fprintf(b, "extern %s(", e.Name.Name)
		printParams(b, e.Params)
		b.WriteByte(')')
	case *TypeDeclRecord:
		fmt.Fprintf(b, "type %s = {...}", e.Name.Name)
	case *TypeDeclUnion:
		fmt.Fprintf(b, "type %s = |...", e.Name.Name)
	case *Match:
		b.WriteString("match ")
		print1(b, e.Scrutinee)
		b.WriteString(" with")
		for _, arm := range e.Arms {
			b.WriteString(" | ")
			print1(b, arm.Pattern)
			if arm.Guard != nil {
				b.WriteString(" if ")
				print1(b, arm.Guard)
			}
			b.WriteString(" -> ")
			print1(b, arm.Body)
		}
	case *Block:
		printList(b, "{ ", e.Exprs, " }")
	case *PatternWildcard:
		b.WriteByte('_')
	case *PatternPlaceholder:
		b.WriteString(e.Name)
	case *PatternLiteral:
		print1(b, e.Value)
	case *PatternTuple:
		printList(b, "(", e.Elements, ")")
	case *PatternArray:
		b.WriteByte('[')
		for i, p := range e.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			print1(b, p)
		}
		if e.Rest != nil {
			if len(e.Elements) > 0 {
				b.WriteString(", ")
			}
			b.WriteString("..")
			b.WriteString(e.Rest.Name)
		}
		b.WriteByte(']')
	case *PatternCtor:
		b.WriteString(e.Name)
		if len(e.Args) > 0 {
			b.WriteByte('(')
			for i, a := range e.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				if a.Name != "" {
					fmt.Fprintf(b, "%s = ", a.Name)
				}
				print1(b, a.Pattern)
			}
			b.WriteByte(')')
		}
	case *PatternOr:
		for i, p := range e.Alternatives {
			if i > 0 {
				b.WriteString(" | ")
			}
			print1(b, p)
		}
	default:
		fmt.Fprintf(b, "<%T>", n)
	}
}

func printParams(b *strings.Builder, params []*Param) {
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name.Name)
	}
}

func printList[T Node](b *strings.Builder, open string, elems []T, close string) {
	b.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		print1(b, e)
	}
	b.WriteString(close)
}
