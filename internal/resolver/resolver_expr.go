package resolver

import (
	"strconv"
	"strings"

	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/types"
)

// resolveExpr dispatches one SynAST expression node to its typed-AST
// translation. LetValue/LetTuple/LetFunc/ExternFunc/TypeDeclRecord/
// TypeDeclUnion are not handled here: resolveBlockBody intercepts those
// itself, since they interact with the recursive-declaration pre-pass.
func (r *Resolver) resolveExpr(e ast.Expr) expr.Expr {
	switch n := e.(type) {
	case *ast.Unit:
		return &expr.Unit{Base: expr.Base{Location: n.Location}}
	case *ast.Number:
		return r.resolveNumber(n)
	case *ast.Character:
		return &expr.Character{Base: expr.Base{Location: n.Location}, Payload: n.Payload}
	case *ast.StringLit:
		return &expr.StringLit{Base: expr.Base{Location: n.Location}, Payload: n.Payload}
	case *ast.Boolean:
		return &expr.Boolean{Base: expr.Base{Location: n.Location}, Value: n.Value}
	case *ast.ArrayLit:
		elems := make([]expr.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = r.resolveExpr(el)
		}
		return &expr.ArrayLit{Base: expr.Base{Location: n.Location}, Elements: elems}
	case *ast.TupleLit:
		elems := make([]expr.Expr, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = r.resolveExpr(el)
		}
		return &expr.TupleLit{Base: expr.Base{Location: n.Location}, Elements: elems}
	case *ast.Var:
		return r.resolveVar(n)
	case *ast.UnaryOp:
		return &expr.UnaryOp{Base: expr.Base{Location: n.Location}, Op: n.Op, Operand: r.resolveExpr(n.Operand)}
	case *ast.BinaryOp:
		return &expr.BinaryOp{Base: expr.Base{Location: n.Location}, Op: n.Op, Left: r.resolveExpr(n.Left), Right: r.resolveExpr(n.Right)}
	case *ast.Call:
		return r.resolveCall(n)
	case *ast.Index:
		return &expr.Index{Base: expr.Base{Location: n.Location}, Array: r.resolveExpr(n.Array), Index: r.resolveExpr(n.Index)}
	case *ast.Slice:
		return &expr.Slice{
			Base:  expr.Base{Location: n.Location},
			Array: r.resolveExpr(n.Array),
			Low:   r.resolveOptional(n.Low),
			High:  r.resolveOptional(n.High),
		}
	case *ast.Member:
		return &expr.Member{Base: expr.Base{Location: n.Location}, Target: r.resolveExpr(n.Target), Name: n.Name}
	case *ast.Assign:
		return &expr.Assign{Base: expr.Base{Location: n.Location}, Target: r.resolveExpr(n.Target), Value: r.resolveExpr(n.Value)}
	case *ast.Block:
		return r.resolveChildBlock(n)
	case *ast.If:
		return r.resolveIf(n)
	case *ast.ForArray:
		return r.resolveForArray(n)
	case *ast.ForRange:
		return r.resolveForRange(n)
	case *ast.While:
		return r.resolveWhile(n)
	case *ast.AnonFunc:
		return r.resolveAnonFunc(n)
	case *ast.Match:
		return r.resolveMatch(n)
	}
	r.fail(e.Loc(), "unsupported expression syntax")
	panic("unreachable")
}

func (r *Resolver) resolveOptional(e ast.Expr) expr.Expr {
	if e == nil {
		return nil
	}
	return r.resolveExpr(e)
}

// resolveNumber parses a Number lexeme once, stripping underscores, so
// every later phase works with a Go numeric value rather than source text
// (a float lexeme - one containing '.' - resolves to expr.Float, anything
// else to expr.Int per spec.md §3.2's decimal/hex/binary integer syntax).
func (r *Resolver) resolveNumber(n *ast.Number) expr.Expr {
	lexeme := strings.ReplaceAll(n.Lexeme, "_", "")
	if strings.Contains(lexeme, ".") {
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			r.fail(n.Location, "invalid float literal %q", n.Lexeme)
		}
		return &expr.Float{Base: expr.Base{Location: n.Location}, Value: v}
	}
	v, err := strconv.ParseInt(lexeme, 0, 64)
	if err != nil {
		r.fail(n.Location, "invalid integer literal %q", n.Lexeme)
	}
	return &expr.Int{Base: expr.Base{Location: n.Location}, Value: v}
}

// resolveVar looks up a bare name and wraps a zero-argument union
// constructor reference used as a value into Call(Ctor, []) - spec.md
// §4.3's "for union constructors used as values, zero-argument variants
// are wrapped" rule. resolveCallee bypasses this so a direct call site
// like `Nil()` isn't double-wrapped.
func (r *Resolver) resolveVar(n *ast.Var) expr.Expr {
	v := r.resolveCallee(n)
	vv, ok := v.(*expr.Var)
	if !ok {
		return v
	}
	if vv.Binding.Scope == expr.UnionCtor {
		if fn, ok := vv.Binding.Type.(*types.Function); ok && len(fn.Args) == 0 {
			return &expr.Call{Base: expr.Base{Location: n.Location}, Callee: vv, Args: nil}
		}
	}
	return vv
}

func (r *Resolver) resolveCallee(e ast.Expr) expr.Expr {
	if v, ok := e.(*ast.Var); ok {
		b := r.use(v.Name, v.Location)
		return &expr.Var{Base: expr.Base{Location: v.Location}, Name: v.Name, Binding: b}
	}
	return r.resolveExpr(e)
}

// resolveCall resolves a call site, rewriting named arguments to positional
// form against the callee's registered parameter names (spec.md §4.3).
// Named and positional arguments are never mixed within one call (the
// parser already rejects that); a callee that isn't a direct, nameable
// reference cannot be called with named arguments at all.
func (r *Resolver) resolveCall(n *ast.Call) expr.Expr {
	callee := r.resolveCallee(n.Callee)

	named := false
	for _, a := range n.Args {
		if a.Name != "" {
			named = true
			break
		}
	}

	if !named {
		args := make([]expr.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = r.resolveExpr(a.Value)
		}
		return &expr.Call{Base: expr.Base{Location: n.Location}, Callee: callee, Args: args}
	}

	v, ok := callee.(*expr.Var)
	if !ok {
		r.fail(n.Location, "named arguments require calling a function or constructor by name")
	}
	names, ok := r.paramNames[v.Binding]
	if !ok {
		r.fail(n.Location, "%q does not accept named arguments", v.Name)
	}

	args := make([]expr.Expr, len(names))
	provided := make([]bool, len(names))
	for _, a := range n.Args {
		if a.Name == "" {
			r.fail(a.Value.Loc(), "cannot mix named and positional arguments")
		}
		idx := -1
		for i, nm := range names {
			if nm == a.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			r.fail(a.Value.Loc(), "%q has no parameter named %q", v.Name, a.Name)
		}
		if provided[idx] {
			r.fail(a.Value.Loc(), "parameter %q given more than once", a.Name)
		}
		provided[idx] = true
		args[idx] = r.resolveExpr(a.Value)
	}
	for i, nm := range names {
		if !provided[i] {
			r.fail(n.Location, "missing argument for parameter %q", nm)
		}
	}
	return &expr.Call{Base: expr.Base{Location: n.Location}, Callee: callee, Args: args}
}
