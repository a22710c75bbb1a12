// Package resolver walks SynAST (internal/ast) and builds the typed AST
// (internal/expr): spec.md §4.3. It binds names, discovers closures and
// their external captures, rewrites named-argument calls to positional
// form, translates match patterns into MatchCase, and resolves every type
// annotation into a concrete internal/types.Type.
//
// File layout follows internal/ast's per-concern split; the scope-stack
// and closure-capture machinery is grounded on
// mna-nenuphar/lang/resolver/resolver.go (see scope.go), and the
// recursive-declaration pre-pass and type-annotation resolution are
// grounded on original_source/compiler/resolve.cpp and
// original_source/bootstrap/typecheck.cpp's resolveType family
// respectively (see resolver_decl.go).
package resolver

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/token"
	"github.com/aikelang/aikec/internal/types"
)

// Resolver holds the scope stack for one source unit. A Resolver is used
// once, via ResolveFile, and discarded.
type Resolver struct {
	env *block
	// paramNames records, for every binding callable with named arguments
	// (a let-bound/extern function, or a record-arg union constructor), its
	// parameter names in declaration order - the table resolveCall consults
	// to rewrite a named-argument call site to positional form (spec.md
	// §4.3's "for union constructors used as values..." paragraph extends
	// the same named/positional rewriting to ordinary function calls).
	paramNames map[*expr.Binding][]string
	// ctorTag records each union constructor binding's variant index
	// within its own PrototypeUnion, so a pattern translation can build a
	// CaseUnion without re-deriving the tag from the prototype.
	ctorTag map[*expr.Binding]int
	// ctorArity records each union constructor binding's sibling-variant
	// count (its PrototypeUnion's total arity), so internal/match's
	// simplify can detect full tag coverage (spec.md §4.4.5(d)) from a
	// CaseUnion alone.
	ctorArity map[*expr.Binding]int
}

// resolveError unwinds the recursion to ResolveFile on the first error,
// matching internal/parser's parseError convention and spec.md §7's "first
// error in a phase aborts the phase".
type resolveError struct{ d *diag.Diagnostic }

func (r *Resolver) fail(loc token.Location, format string, args ...any) {
	panic(resolveError{diag.New(diag.NameResolution, loc, format, args...)})
}

func (r *Resolver) failKind(kind diag.Kind, loc token.Location, format string, args ...any) {
	panic(resolveError{diag.New(kind, loc, format, args...)})
}

// ResolveFile resolves one parsed source unit into a typed top-level Block.
// On the first name-resolution error it returns (nil, diagnostic).
func ResolveFile(file *ast.File) (root *expr.Block, d *diag.Diagnostic) {
	r := &Resolver{
		paramNames: map[*expr.Binding][]string{},
		ctorTag:    map[*expr.Binding]int{},
		ctorArity:  map[*expr.Binding]int{},
	}
	defer func() {
		if rec := recover(); rec != nil {
			if re, ok := rec.(resolveError); ok {
				root, d = nil, re.d
				return
			}
			panic(rec)
		}
	}()

	r.push(&block{fn: &rfunction{seen: map[*expr.Binding]bool{}}})
	root = r.resolveBlockBody(file.Body)
	r.pop()
	return root, nil
}

// resolveTypeExpr resolves one SynAST type-syntax node into a concrete
// types.Type. generics is the per-declaration map of in-scope named
// generics ('a, 'b, ...); allowNew controls whether an unrecognised 'a
// silently introduces a new generic (true while resolving a function
// signature, false everywhere else — spec.md §4.4.2's frozen/fresh split
// comes from *which* generics these are, decided by the two call sites in
// resolver_decl.go, not by this function).
func (r *Resolver) resolveTypeExpr(n ast.TypeExprNode, generics map[string]*types.Generic, allowNew bool) types.Type {
	if n == nil {
		return &types.Generic{}
	}
	switch n := n.(type) {
	case *ast.TypeName:
		return r.resolveTypeName(n, generics, allowNew)
	case *ast.TypeGenericRef:
		if g, ok := generics[n.Name]; ok {
			return g
		}
		if !allowNew {
			r.fail(n.Location, "unknown generic type '%s", n.Name)
		}
		g := &types.Generic{Name: n.Name}
		generics[n.Name] = g
		return g
	case *ast.TypeTuple:
		members := make([]types.Type, len(n.Elements))
		for i, e := range n.Elements {
			members[i] = r.resolveTypeExpr(e, generics, allowNew)
		}
		return &types.Tuple{Members: members}
	case *ast.TypeArray:
		return &types.Array{Contained: r.resolveTypeExpr(n.Elem, generics, allowNew)}
	case *ast.TypeArrow:
		return r.resolveArrowType(n, generics, allowNew)
	}
	r.fail(n.Loc(), "unsupported type syntax")
	panic("unreachable")
}

// resolveArrowType builds a (possibly multi-argument) function type from a
// TypeArrow node. A tupled argument position (`(T1, T2) -> R`) flattens
// into a two-argument Function, matching how a declared parameter list is
// represented, rather than a function of one tuple-typed argument.
func (r *Resolver) resolveArrowType(n *ast.TypeArrow, generics map[string]*types.Generic, allowNew bool) *types.Function {
	var args []types.Type
	if tup, ok := n.Arg.(*ast.TypeTuple); ok {
		args = make([]types.Type, len(tup.Elements))
		for i, e := range tup.Elements {
			args[i] = r.resolveTypeExpr(e, generics, allowNew)
		}
	} else {
		args = []types.Type{r.resolveTypeExpr(n.Arg, generics, allowNew)}
	}
	return &types.Function{Args: args, Result: r.resolveTypeExpr(n.Result, generics, allowNew)}
}

func (r *Resolver) resolveTypeName(n *ast.TypeName, generics map[string]*types.Generic, allowNew bool) types.Type {
	switch n.Name {
	case "unit":
		r.requireNoTypeArgs(n)
		return &types.Unit{}
	case "int":
		r.requireNoTypeArgs(n)
		return &types.Int{}
	case "char":
		r.requireNoTypeArgs(n)
		return &types.Char{}
	case "float":
		r.requireNoTypeArgs(n)
		return &types.Float{}
	case "bool":
		r.requireNoTypeArgs(n)
		return &types.Bool{}
	}

	td := r.lookupType(n.Name)
	if td == nil {
		r.fail(n.Location, "unknown type %q", n.Name)
	}
	args := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		args[i] = r.resolveTypeExpr(a, generics, allowNew)
	}
	if len(td.generics) == 0 && len(args) > 0 {
		r.fail(n.Location, "type %q does not take type arguments", n.Name)
	}
	if len(args) != len(td.generics) {
		r.fail(n.Location, "type %q expects %d type argument(s), got %d", n.Name, len(td.generics), len(args))
	}
	return &types.Instance{Cell: td.cell, Generics: args}
}

func (r *Resolver) requireNoTypeArgs(n *ast.TypeName) {
	if len(n.Args) > 0 {
		r.fail(n.Location, "type %q does not take type arguments", n.Name)
	}
}
