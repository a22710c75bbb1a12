package resolver

import (
	"strconv"
	"strings"

	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/types"
)

func (r *Resolver) resolveMatch(n *ast.Match) *expr.Match {
	scrutinee := r.resolveExpr(n.Scrutinee)
	arms := make([]*expr.MatchArm, len(n.Arms))
	for i, a := range n.Arms {
		arms[i] = r.resolveMatchArm(a)
	}
	return &expr.Match{Base: expr.Base{Location: n.Location}, Scrutinee: scrutinee, Arms: arms}
}

// resolveMatchArm resolves one arm's own scope: pattern bindings are bound
// first, then the guard (if any) and the body are resolved against them.
// The arm's block is a child of the enclosing scope, so a guard also sees
// outer names; it never sees anything a sibling arm bound, since each arm
// gets its own fresh block here.
func (r *Resolver) resolveMatchArm(n *ast.MatchArm) *expr.MatchArm {
	r.push(&block{})
	c := r.translatePattern(n.Pattern)
	if n.Guard != nil {
		guard := r.resolveExpr(n.Guard)
		c = &expr.CaseIf{CaseBase: expr.CaseBase{Location: n.Location}, Inner: c, Guard: guard}
	}
	body := r.resolveBlockBody(n.Body)
	r.pop()
	return &expr.MatchArm{Location: n.Location, Case: c, Body: body}
}

func (r *Resolver) translatePattern(p ast.Pattern) expr.MatchCase {
	switch n := p.(type) {
	case *ast.PatternWildcard:
		return &expr.CaseAny{CaseBase: expr.CaseBase{Location: n.Location}}
	case *ast.PatternPlaceholder:
		return r.translatePatternPlaceholder(n)
	case *ast.PatternLiteral:
		return r.translatePatternLiteral(n)
	case *ast.PatternTuple:
		elems := make([]expr.MatchCase, len(n.Elements))
		for i, e := range n.Elements {
			elems[i] = r.translatePattern(e)
		}
		return &expr.CaseMembers{CaseBase: expr.CaseBase{Location: n.Location}, Elements: elems}
	case *ast.PatternArray:
		return r.translatePatternArray(n)
	case *ast.PatternCtor:
		return r.translatePatternCtor(n)
	case *ast.PatternOr:
		return r.translatePatternOr(n)
	}
	r.fail(p.Loc(), "unsupported pattern syntax")
	panic("unreachable")
}

// translatePatternPlaceholder implements spec.md §4.3's union-tag lookup
// rule: a bare identifier is first checked against the in-scope union
// constructor namespace (constructors live in the same value namespace as
// everything else), and only becomes a fresh placeholder binding when it
// doesn't name one.
func (r *Resolver) translatePatternPlaceholder(n *ast.PatternPlaceholder) expr.MatchCase {
	if ctor := r.lookupValue(n.Name); ctor != nil && ctor.Scope == expr.UnionCtor {
		return &expr.CaseUnion{
			CaseBase: expr.CaseBase{Location: n.Location},
			Tag:      r.ctorTag[ctor],
			Arity:    r.ctorArity[ctor],
			Pattern:  &expr.CaseAny{CaseBase: expr.CaseBase{Location: n.Location}},
			Ctor:     ctor,
		}
	}
	b := &expr.Binding{Scope: expr.Local, Name: n.Name, Type: r.resolvePatternType(n.Type)}
	r.bind(n.Name, n.Location, b)
	return &expr.CaseAny{CaseBase: expr.CaseBase{Location: n.Location}, Binding: b}
}

func (r *Resolver) resolvePatternType(t ast.TypeExprNode) types.Type {
	if t == nil {
		return &types.Generic{}
	}
	return r.resolveTypeExpr(t, map[string]*types.Generic{}, true)
}

// translatePatternLiteral dispatches on the literal's underlying kind; a
// float Number is rejected since MatchCase has no float variant (spec.md
// names Int, not Float, among the ten pattern forms).
func (r *Resolver) translatePatternLiteral(n *ast.PatternLiteral) expr.MatchCase {
	switch v := n.Value.(type) {
	case *ast.Number:
		lexeme := strings.ReplaceAll(v.Lexeme, "_", "")
		if strings.Contains(lexeme, ".") {
			r.failKind(diag.Pattern, v.Location, "a float literal cannot be used as a pattern")
		}
		iv, err := strconv.ParseInt(lexeme, 0, 64)
		if err != nil {
			r.fail(v.Location, "invalid integer literal %q", v.Lexeme)
		}
		return &expr.CaseInt{CaseBase: expr.CaseBase{Location: n.Location}, Value: iv}
	case *ast.Character:
		return &expr.CaseChar{CaseBase: expr.CaseBase{Location: n.Location}, Payload: v.Payload}
	case *ast.Boolean:
		return &expr.CaseBool{CaseBase: expr.CaseBase{Location: n.Location}, Value: v.Value}
	case *ast.StringLit:
		return &expr.CaseValue{
			CaseBase: expr.CaseBase{Location: n.Location},
			Value:    &expr.StringLit{Base: expr.Base{Location: v.Location}, Payload: v.Payload},
		}
	}
	r.fail(n.Location, "unsupported literal pattern")
	panic("unreachable")
}

func (r *Resolver) translatePatternArray(n *ast.PatternArray) *expr.CaseArray {
	elems := make([]expr.MatchCase, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = r.translatePattern(e)
	}
	var rest *expr.Binding
	if n.Rest != nil {
		restType := types.Type(&types.Array{Contained: &types.Generic{}})
		if n.Rest.Type != nil {
			restType = r.resolveTypeExpr(n.Rest.Type, map[string]*types.Generic{}, true)
		}
		rest = &expr.Binding{Scope: expr.Local, Name: n.Rest.Name, Type: restType}
		r.bind(n.Rest.Name, n.Rest.Location, rest)
	}
	return &expr.CaseArray{CaseBase: expr.CaseBase{Location: n.Location}, Elements: elems, Rest: rest}
}

// translatePatternCtor resolves a `Ctor(...)` pattern: the name must
// already be bound as a union constructor, named arguments are rewritten
// to positional form against the constructor's own field names (spec.md
// §4.3, §4.5's "a member-name pattern is rewritten to a positional one"),
// and any field omitted from a named pattern is filled with a wildcard.
func (r *Resolver) translatePatternCtor(n *ast.PatternCtor) *expr.CaseUnion {
	ctor := r.lookupValue(n.Name)
	if ctor == nil || ctor.Scope != expr.UnionCtor {
		r.fail(n.Location, "unknown constructor %q", n.Name)
	}
	fn := ctor.Type.(*types.Function)

	var positional []ast.Pattern
	if n.Named {
		names, ok := r.paramNames[ctor]
		if !ok {
			r.failKind(diag.Pattern, n.Location, "%q does not have named fields", n.Name)
		}
		positional = make([]ast.Pattern, len(names))
		seen := make([]bool, len(names))
		for _, a := range n.Args {
			idx := indexOfName(names, a.Name)
			if idx < 0 {
				r.failKind(diag.Pattern, n.Location, "%q has no field named %q", n.Name, a.Name)
			}
			if seen[idx] {
				r.failKind(diag.Pattern, n.Location, "field %q given more than once", a.Name)
			}
			seen[idx] = true
			positional[idx] = a.Pattern
		}
		for i := range names {
			if positional[i] == nil {
				positional[i] = &ast.PatternWildcard{Location: n.Location}
			}
		}
	} else {
		positional = make([]ast.Pattern, len(n.Args))
		for i, a := range n.Args {
			positional[i] = a.Pattern
		}
	}

	if len(positional) != len(fn.Args) {
		r.failKind(diag.Pattern, n.Location, "%q expects %d argument(s), got %d", n.Name, len(fn.Args), len(positional))
	}
	elems := make([]expr.MatchCase, len(positional))
	for i, p := range positional {
		elems[i] = r.translatePattern(p)
	}
	return &expr.CaseUnion{
		CaseBase: expr.CaseBase{Location: n.Location},
		Tag:      r.ctorTag[ctor],
		Arity:    r.ctorArity[ctor],
		Pattern:  &expr.CaseMembers{CaseBase: expr.CaseBase{Location: n.Location}, Elements: elems},
		Ctor:     ctor,
	}
}

func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// translatePatternOr resolves an alternation, enforcing spec.md's pattern
// error "different patterns in an Or bind different placeholders": each
// alternative is first translated in its own isolated block so its
// bindings don't collide with a sibling alternative's, the resulting name
// sets are compared, and then one canonical Binding per name is created in
// the arm's real scope and substituted into every alternative - so the
// body, and a guard, see a single binding regardless of which alternative
// matched (the front-end counterpart of the decision tree's sink nodes,
// spec.md §6's lowering step).
func (r *Resolver) translatePatternOr(n *ast.PatternOr) *expr.CaseOr {
	type altResult struct {
		pat      expr.MatchCase
		bindings map[string]*expr.Binding
	}
	results := make([]altResult, len(n.Alternatives))
	for i, alt := range n.Alternatives {
		r.push(&block{})
		pat := r.translatePattern(alt)
		bound := make(map[string]*expr.Binding, len(r.env.vars))
		for name, b := range r.env.vars {
			bound[name] = b
		}
		r.pop()
		results[i] = altResult{pat: pat, bindings: bound}
	}

	var names []string
	for name := range results[0].bindings {
		names = append(names, name)
	}
	for _, res := range results[1:] {
		if len(res.bindings) != len(results[0].bindings) {
			r.failKind(diag.Pattern, n.Location, "each alternative of an 'or' pattern must bind the same names")
		}
		for _, name := range names {
			if _, ok := res.bindings[name]; !ok {
				r.failKind(diag.Pattern, n.Location, "each alternative of an 'or' pattern must bind the same names")
			}
		}
	}

	canonical := make(map[string]*expr.Binding, len(names))
	for _, name := range names {
		cb := &expr.Binding{Scope: expr.Local, Name: name, Type: &types.Generic{}}
		r.bind(name, n.Location, cb)
		canonical[name] = cb
	}

	alts := make([]expr.MatchCase, len(results))
	for i, res := range results {
		substituteCaseBindings(res.pat, canonical)
		alts[i] = res.pat
	}
	return &expr.CaseOr{CaseBase: expr.CaseBase{Location: n.Location}, Alternatives: alts}
}

func substituteCaseBindings(c expr.MatchCase, to map[string]*expr.Binding) {
	switch v := c.(type) {
	case *expr.CaseAny:
		if v.Binding != nil {
			if nb, ok := to[v.Binding.Name]; ok {
				v.Binding = nb
			}
		}
	case *expr.CaseArray:
		for _, e := range v.Elements {
			substituteCaseBindings(e, to)
		}
		if v.Rest != nil {
			if nb, ok := to[v.Rest.Name]; ok {
				v.Rest = nb
			}
		}
	case *expr.CaseMembers:
		for _, e := range v.Elements {
			substituteCaseBindings(e, to)
		}
	case *expr.CaseUnion:
		substituteCaseBindings(v.Pattern, to)
	case *expr.CaseIf:
		substituteCaseBindings(v.Inner, to)
	case *expr.CaseOr:
		for _, a := range v.Alternatives {
			substituteCaseBindings(a, to)
		}
	}
}
