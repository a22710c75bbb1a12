package tir

import (
	"fmt"
	"strings"
)

// Print renders a Program as a single debug-readable text block, used by
// `cmd/aikec -dump tir`. Each function gets a header line (name, parameter
// names, and its context parameter if any; no types), then its body one
// statement per line, mirroring internal/ast.Print/internal/expr.Print's
// single-line-expression convention but laid out per-statement here since a
// Func's body, unlike a SynAST/expr node, is always a flat statement list
// rather than one expression tree.
func Print(p *Program) string {
	var b strings.Builder
	for _, fn := range p.Funcs {
		printFunc(&b, fn)
	}
	printFunc(&b, p.Main)
	return b.String()
}

func printFunc(b *strings.Builder, fn *Func) {
	fmt.Fprintf(b, "func %s(", fn.Name)
	for i, p := range fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
	}
	if fn.Context != nil {
		if len(fn.Params) > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: context", fn.Context.Name)
	}
	b.WriteString(") {\n")
	for _, s := range fn.Body {
		b.WriteString("  ")
		printStmt(b, s)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
}

func printStmt(b *strings.Builder, s Stmt) {
	switch v := s.(type) {
	case *SLet:
		fmt.Fprintf(b, "let %s = ", v.Target.Name)
		printExpr(b, v.Value)
	case *SExpr:
		printExpr(b, v.Value)
	default:
		fmt.Fprintf(b, "<%T>", s)
	}
}

func printExpr(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case *EUnit:
		b.WriteString("()")
	case *EInt:
		fmt.Fprintf(b, "%d", v.Value)
	case *EFloat:
		fmt.Fprintf(b, "%g", v.Value)
	case *EChar:
		fmt.Fprintf(b, "'%s'", v.Payload)
	case *EString:
		fmt.Fprintf(b, "%q", v.Payload)
	case *EBool:
		fmt.Fprintf(b, "%v", v.Value)
	case *EArrayLit:
		printExprList(b, "[", v.Elements, "]")
	case *ETupleLit:
		printExprList(b, "(", v.Elements, ")")
	case *ELoad:
		b.WriteString(v.Var.Name)
	case *EMember:
		printExpr(b, v.Target)
		fmt.Fprintf(b, ".%d", v.Index)
	case *EUnaryOp:
		fmt.Fprintf(b, "(%s ", v.Op)
		printExpr(b, v.Operand)
		b.WriteByte(')')
	case *EBinaryOp:
		b.WriteByte('(')
		printExpr(b, v.Left)
		fmt.Fprintf(b, " %s ", v.Op)
		printExpr(b, v.Right)
		b.WriteByte(')')
	case *EIndex:
		printExpr(b, v.Array)
		b.WriteByte('[')
		printExpr(b, v.Index)
		b.WriteByte(']')
	case *ESlice:
		printExpr(b, v.Array)
		b.WriteByte('[')
		if v.Low != nil {
			printExpr(b, v.Low)
		}
		b.WriteString("..")
		if v.High != nil {
			printExpr(b, v.High)
		}
		b.WriteByte(']')
	case *EAssign:
		printExpr(b, v.Target)
		b.WriteString(" := ")
		printExpr(b, v.Value)
	case *EBlock:
		b.WriteString("{ ")
		for i, s := range v.Stmts {
			if i > 0 {
				b.WriteString("; ")
			}
			printStmt(b, s)
		}
		b.WriteString(" }")
	case *EIf:
		b.WriteString("if ")
		printExpr(b, v.Cond)
		b.WriteString(" then ")
		printExpr(b, v.Then)
		if v.Else != nil {
			b.WriteString(" else ")
			printExpr(b, v.Else)
		}
	case *EForArray:
		fmt.Fprintf(b, "for %s in ", v.Var.Name)
		printExpr(b, v.Array)
		b.WriteString(" do ")
		printExpr(b, v.Body)
	case *EForRange:
		fmt.Fprintf(b, "for %s in ", v.Var.Name)
		printExpr(b, v.Low)
		b.WriteString("..")
		printExpr(b, v.High)
		b.WriteString(" do ")
		printExpr(b, v.Body)
	case *EWhile:
		b.WriteString("while ")
		printExpr(b, v.Cond)
		b.WriteString(" do ")
		printExpr(b, v.Body)
	case *EMakeClosure:
		fmt.Fprintf(b, "closure(%s, ", v.Func)
		printExpr(b, v.Context)
		b.WriteByte(')')
	case *EMakeContext:
		printExprList(b, "context[", v.Fields, "]")
	case *ECall:
		printExpr(b, v.Callee)
		printExprList(b, "(", v.Args, ")")
	case *ENewUnion:
		fmt.Fprintf(b, "union#%d(", v.Tag)
		printExpr(b, v.Payload)
		b.WriteByte(')')
	case *EUnionPayload:
		printExpr(b, v.Target)
		b.WriteString(".payload")
	case *EDecision:
		fmt.Fprintf(b, "decision(%s = ", v.Var.Name)
		printExpr(b, v.Scrutinee)
		b.WriteString(", ")
		printDecision(b, v.Tree)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", e)
	}
}

func printDecision(b *strings.Builder, d Decision) {
	switch v := d.(type) {
	case *DLeaf:
		b.WriteString("leaf[")
		for i, bind := range v.Binds {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=", bind.Var.Name)
			printExpr(b, bind.Value)
		}
		b.WriteString("] ")
		printExpr(b, v.Body)
	case *DFail:
		b.WriteString("fail")
	case *DSwitchTag:
		b.WriteString("switch-tag{")
		for i, c := range v.Cases {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%d: ", c.Tag)
			printDecision(b, c.Next)
		}
		b.WriteString(", default: ")
		printDecision(b, v.Default)
		b.WriteByte('}')
	case *DSwitchInt:
		b.WriteString("switch-int{")
		for i, c := range v.Cases {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%d: ", c.Value)
			printDecision(b, c.Next)
		}
		b.WriteString(", default: ")
		printDecision(b, v.Default)
		b.WriteByte('}')
	case *DSwitchBool:
		b.WriteString("switch-bool{true: ")
		printDecision(b, v.True)
		b.WriteString(", false: ")
		printDecision(b, v.False)
		b.WriteByte('}')
	case *DSwitchChar:
		b.WriteString("switch-char{")
		for i, c := range v.Cases {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "'%s': ", c.Payload)
			printDecision(b, c.Next)
		}
		b.WriteString(", default: ")
		printDecision(b, v.Default)
		b.WriteByte('}')
	case *DArrayLen:
		fmt.Fprintf(b, "array-len{%d%s: ", v.Length, atLeastSuffix(v.AtLeast))
		printDecision(b, v.Match)
		b.WriteString(", default: ")
		printDecision(b, v.Default)
		b.WriteByte('}')
	case *DGuard:
		b.WriteString("guard[")
		for i, bind := range v.Binds {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=", bind.Var.Name)
			printExpr(b, bind.Value)
		}
		b.WriteString("](")
		printExpr(b, v.Guard)
		b.WriteString(") then ")
		printDecision(b, v.Then)
		b.WriteString(" else ")
		printDecision(b, v.Else)
	default:
		fmt.Fprintf(b, "<%T>", d)
	}
}

func atLeastSuffix(atLeast bool) string {
	if atLeast {
		return "+"
	}
	return ""
}

func printExprList(b *strings.Builder, open string, elems []Expr, close string) {
	b.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		printExpr(b, e)
	}
	b.WriteString(close)
}
