package resolver

import (
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/token"
	"github.com/aikelang/aikec/internal/types"
)

// typeDecl is a named record/union type's pre-bound placeholder: its
// forward-reference Cell (filled in once the declaration's body resolves)
// alongside its own declared generic parameters, known immediately from the
// declaration header and frozen per spec.md §4.4.2 (they may only unify
// with themselves, never be renamed or bound to something else).
type typeDecl struct {
	cell     *types.Cell
	generics []*types.Generic
}

// rfunction is the per-function bookkeeping use() needs: the Closure node
// whose Externals list grows as captures are discovered, and a dedup set
// so a name referenced twice inside one function contributes only once
// (spec.md §4.3: "subsequent appearances reuse the previously recorded
// slot"). The file's own top-level code shares a placeholder rfunction
// with a nil closure; it is never captured into (nothing encloses it).
type rfunction struct {
	closure *expr.Closure
	seen    map[*expr.Binding]bool
}

// block is one lexical scope: local name bindings (values and types, two
// separate namespaces) plus a link to its enclosing block and the function
// it belongs to. Grounded on mna-nenuphar/lang/resolver/resolver.go's
// block/env chain.
type block struct {
	parent *block
	fn     *rfunction
	vars   map[string]*expr.Binding
	types  map[string]*typeDecl
}

func (r *Resolver) push(b *block) {
	if r.env != nil {
		if b.fn == nil {
			b.fn = r.env.fn
		}
	}
	b.parent = r.env
	if b.vars == nil {
		b.vars = make(map[string]*expr.Binding)
	}
	if b.types == nil {
		b.types = make(map[string]*typeDecl)
	}
	r.env = b
}

func (r *Resolver) pop() {
	r.env = r.env.parent
}

// bind declares name in the current (innermost) block. Redeclaration
// within the same block is an error; shadowing in a child block is not.
func (r *Resolver) bind(name string, loc token.Location, b *expr.Binding) {
	if _, ok := r.env.vars[name]; ok {
		r.fail(loc, "%q is already declared in this scope", name)
	}
	r.env.vars[name] = b
}

func (r *Resolver) bindType(name string, loc token.Location, td *typeDecl) {
	if _, ok := r.env.types[name]; ok {
		r.fail(loc, "type %q is already declared in this scope", name)
	}
	r.env.types[name] = td
}

// lookupValue finds a name in the block chain without running use()'s
// closure-capture bookkeeping: callers that only need to test a name's
// identity (pattern-position union-tag lookup) rather than read its value
// want this, not use().
func (r *Resolver) lookupValue(name string) *expr.Binding {
	for b := r.env; b != nil; b = b.parent {
		if bdg, ok := b.vars[name]; ok {
			return bdg
		}
	}
	return nil
}

func (r *Resolver) lookupType(name string) *typeDecl {
	for b := r.env; b != nil; b = b.parent {
		if td, ok := b.types[name]; ok {
			return td
		}
	}
	return nil
}

// use resolves a name reference, implementing the closure-capture
// algorithm: walking the block chain, and when the binding is found in a
// block belonging to a *different*, enclosing function, marking the
// original binding Cell, recording it (deduplicated) in the referencing
// function's own Externals, and returning a fresh ContextRef binding
// memoized into the referencing function's own innermost block so a
// second use of the same name in the same function reuses it without
// walking again. Grounded on mna-nenuphar's resolver.use(); only the
// directly-referencing function's Externals list grows (matching both
// mna-nenuphar and original_source/bootstrap/typecheck.cpp's
// resolveBindingAccess, neither of which thread a capture through every
// intermediate enclosing function either).
func (r *Resolver) use(name string, loc token.Location) *expr.Binding {
	startFn := r.env.fn
	for b := r.env; b != nil; b = b.parent {
		bdg, ok := b.vars[name]
		if !ok {
			continue
		}
		if b.fn != startFn {
			if bdg.Scope == expr.Local {
				bdg.Scope = expr.Cell
			}
			if !startFn.seen[bdg] {
				startFn.seen[bdg] = true
				startFn.closure.Externals = append(startFn.closure.Externals, bdg)
			}
			ref := &expr.Binding{Scope: expr.ContextRef, Name: name, Type: bdg.Type}
			r.env.vars[name] = ref
			return ref
		}
		return bdg
	}
	r.fail(loc, "undefined: %s", name)
	panic("unreachable")
}
