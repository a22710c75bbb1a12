package resolver

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/token"
	"github.com/aikelang/aikec/internal/types"
)

// pendingFunc is a LetFunc/ExternFunc's pre-bound signature, carried from
// prebind to the second pass so the closure body resolves against the
// exact same Function type (and the exact same generic variables) its own
// name was registered with, rather than re-resolving the annotations and
// getting a second, unrelated set of generics.
type pendingFunc struct {
	binding *expr.Binding
	fnType  *types.Function
	params  []*ast.Param
}

// resolveBlockBody implements spec.md §4.3's recursive-declaration
// pre-pass: every adjacent type declaration in b is pre-bound (a Cell plus
// its own frozen generics) before any type body is resolved, and every
// adjacent function declaration is pre-bound with a fresh (non-frozen
// generic) signature before any function body is resolved. Only after both
// pre-bind passes complete does the block resolve in original textual
// order, so a type or function may refer to any sibling - declared earlier
// or later in the block - including itself.
//
// Plain expressions and let-bindings are not pre-bound: spec.md §4.3 only
// grants forward/mutual reference to type and function declarations.
func (r *Resolver) resolveBlockBody(b *ast.Block) *expr.Block {
	pendingTypes := map[ast.Expr]*expr.TypeDecl{}
	pendingFuncs := map[ast.Expr]*pendingFunc{}

	for _, e := range b.Exprs {
		switch n := e.(type) {
		case *ast.TypeDeclRecord:
			pendingTypes[e] = r.prebindTypeRecord(n)
		case *ast.TypeDeclUnion:
			pendingTypes[e] = r.prebindTypeUnion(n)
		}
	}
	for _, e := range b.Exprs {
		switch n := e.(type) {
		case *ast.LetFunc:
			pendingFuncs[e] = r.prebindLetFunc(n)
		case *ast.ExternFunc:
			pendingFuncs[e] = r.prebindExternFunc(n)
		}
	}
	for _, e := range b.Exprs {
		switch n := e.(type) {
		case *ast.TypeDeclRecord:
			r.finishTypeRecord(n, pendingTypes[e])
		case *ast.TypeDeclUnion:
			r.finishTypeUnion(n, pendingTypes[e])
		}
	}

	exprs := make([]expr.Expr, len(b.Exprs))
	for i, e := range b.Exprs {
		switch n := e.(type) {
		case *ast.TypeDeclRecord:
			exprs[i] = pendingTypes[e]
		case *ast.TypeDeclUnion:
			exprs[i] = pendingTypes[e]
		case *ast.LetFunc:
			exprs[i] = r.resolveLetFuncBody(n, pendingFuncs[e])
		case *ast.ExternFunc:
			exprs[i] = r.resolveExternFuncBody(n, pendingFuncs[e])
		case *ast.LetValue:
			exprs[i] = r.resolveLetValue(n)
		case *ast.LetTuple:
			exprs[i] = r.resolveLetTuple(n)
		default:
			exprs[i] = r.resolveExpr(e)
		}
	}
	return &expr.Block{Base: expr.Base{Location: b.Location}, Exprs: exprs}
}

// resolveChildBlock resolves a nested block (an if/for/while arm, a
// closure body) in its own lexical scope, without opening a new function -
// a capture inside it still belongs to the enclosing closure.
func (r *Resolver) resolveChildBlock(b *ast.Block) *expr.Block {
	r.push(&block{})
	out := r.resolveBlockBody(b)
	r.pop()
	return out
}

// declareGenerics allocates one frozen Generic per declared type-header
// parameter (spec.md §4.4.2): these are the variables a type's own fields
// or a union's own variant payloads are expressed in terms of, and they
// may never be rebound to anything but themselves during unification.
func (r *Resolver) declareGenerics(idents []*ast.Ident) []*types.Generic {
	seen := map[string]bool{}
	gens := make([]*types.Generic, len(idents))
	for i, id := range idents {
		if seen[id.Name] {
			r.fail(id.Location, "generic type '%s already declared", id.Name)
		}
		seen[id.Name] = true
		gens[i] = &types.Generic{Name: id.Name, Frozen: true}
	}
	return gens
}

func genericsMap(idents []*ast.Ident, gens []*types.Generic) map[string]*types.Generic {
	m := make(map[string]*types.Generic, len(idents))
	for i, id := range idents {
		m[id.Name] = gens[i]
	}
	return m
}

func genericsAsTypes(gens []*types.Generic) []types.Type {
	out := make([]types.Type, len(gens))
	for i, g := range gens {
		out[i] = g
	}
	return out
}

func (r *Resolver) prebindTypeRecord(n *ast.TypeDeclRecord) *expr.TypeDecl {
	gens := r.declareGenerics(n.Generics)
	cell := &types.Cell{}
	r.bindType(n.Name.Name, n.Location, &typeDecl{cell: cell, generics: gens})
	return &expr.TypeDecl{Base: expr.Base{Location: n.Location}, Name: n.Name.Name}
}

func (r *Resolver) prebindTypeUnion(n *ast.TypeDeclUnion) *expr.TypeDecl {
	gens := r.declareGenerics(n.Generics)
	cell := &types.Cell{}
	r.bindType(n.Name.Name, n.Location, &typeDecl{cell: cell, generics: gens})
	return &expr.TypeDecl{Base: expr.Base{Location: n.Location}, Name: n.Name.Name}
}

func (r *Resolver) finishTypeRecord(n *ast.TypeDeclRecord, placeholder *expr.TypeDecl) {
	td := r.lookupType(n.Name.Name)
	generics := genericsMap(n.Generics, td.generics)

	memberTypes := make([]types.Type, len(n.Fields))
	memberNames := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		memberTypes[i] = r.resolveTypeExpr(f.Type, generics, false)
		memberNames[i] = f.Name.Name
	}
	proto := &types.PrototypeRecord{
		Name:        n.Name.Name,
		MemberTypes: memberTypes,
		MemberNames: memberNames,
		Generics:    genericsAsTypes(td.generics),
	}
	td.cell.Proto = proto
	placeholder.Proto = proto
}

// finishTypeUnion resolves a union declaration's variant payloads and binds
// each variant as a constructor value in the enclosing block - the one
// namespace union constructors and ordinary let-bound values share, since a
// constructor is referenced and called exactly like any other function
// value (spec.md §4.3's "for union constructors used as values, zero-
// argument variants are wrapped as Call(Ctor, [])" implies the constructor
// name itself denotes a callable, not a special form).
func (r *Resolver) finishTypeUnion(n *ast.TypeDeclUnion, placeholder *expr.TypeDecl) {
	td := r.lookupType(n.Name.Name)
	generics := genericsMap(n.Generics, td.generics)

	memberTypes := make([]types.Type, len(n.Variants))
	memberNames := make([]string, len(n.Variants))
	for i, v := range n.Variants {
		memberNames[i] = v.Name.Name
		switch v.Kind {
		case ast.VariantUnit:
			memberTypes[i] = &types.Unit{}
		case ast.VariantOf:
			memberTypes[i] = r.resolveTypeExpr(v.Of, generics, false)
		case ast.VariantRecord:
			fieldTypes := make([]types.Type, len(v.Fields))
			for j, f := range v.Fields {
				fieldTypes[j] = r.resolveTypeExpr(f.Type, generics, false)
			}
			memberTypes[i] = &types.Tuple{Members: fieldTypes}
		}
	}
	proto := &types.PrototypeUnion{
		Name:        n.Name.Name,
		MemberTypes: memberTypes,
		MemberNames: memberNames,
		Generics:    genericsAsTypes(td.generics),
	}
	td.cell.Proto = proto
	placeholder.Proto = proto

	for i, v := range n.Variants {
		ctor := &expr.Binding{
			Scope: expr.UnionCtor,
			Name:  v.Name.Name,
			Type: &types.Function{
				Args:   ctorArgTypes(memberTypes[i]),
				Result: &types.Instance{Cell: td.cell, Generics: genericsAsTypes(td.generics)},
			},
		}
		r.bind(v.Name.Name, v.Name.Location, ctor)
		r.ctorTag[ctor] = i
		r.ctorArity[ctor] = len(n.Variants)
		if v.Kind == ast.VariantRecord {
			names := make([]string, len(v.Fields))
			for j, f := range v.Fields {
				names[j] = f.Name.Name
			}
			r.paramNames[ctor] = names
		}
	}
}

// ctorArgTypes flattens a variant's payload type into the constructor
// function's positional argument list: a tuple payload (from a tuple-arg or
// record-arg variant) becomes one argument per member, a unit payload
// becomes no arguments, and anything else is the variant's single argument.
func ctorArgTypes(payload types.Type) []types.Type {
	switch p := payload.(type) {
	case *types.Tuple:
		return p.Members
	case *types.Unit:
		return nil
	default:
		return []types.Type{payload}
	}
}

func (r *Resolver) prebindLetFunc(n *ast.LetFunc) *pendingFunc {
	generics := map[string]*types.Generic{}
	args := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		args[i] = r.resolveTypeExpr(p.Type, generics, true)
	}
	fnType := &types.Function{Args: args, Result: r.resolveTypeExpr(n.ReturnType, generics, true)}
	b := &expr.Binding{Scope: expr.FreeFunc, Name: n.Name.Name, Type: fnType}
	r.bind(n.Name.Name, n.Location, b)
	r.paramNames[b] = paramNameList(n.Params)
	return &pendingFunc{binding: b, fnType: fnType, params: n.Params}
}

func (r *Resolver) prebindExternFunc(n *ast.ExternFunc) *pendingFunc {
	generics := map[string]*types.Generic{}
	args := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		args[i] = r.resolveTypeExpr(p.Type, generics, true)
	}
	fnType := &types.Function{Args: args, Result: r.resolveTypeExpr(n.ReturnType, generics, true)}
	b := &expr.Binding{Scope: expr.FreeFunc, Name: n.Name.Name, Type: fnType}
	r.bind(n.Name.Name, n.Location, b)
	r.paramNames[b] = paramNameList(n.Params)
	return &pendingFunc{binding: b, fnType: fnType, params: n.Params}
}

func paramNameList(params []*ast.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name.Name
	}
	return names
}

func (r *Resolver) resolveLetFuncBody(n *ast.LetFunc, pf *pendingFunc) *expr.LetFunc {
	closure := r.resolveClosureBody(n.Location, n.Name.Name, pf.params, pf.fnType, n.Body)
	return &expr.LetFunc{Base: expr.Base{Location: n.Location}, Target: pf.binding, Fn: closure}
}

func (r *Resolver) resolveExternFuncBody(n *ast.ExternFunc, pf *pendingFunc) *expr.ExternFunc {
	return &expr.ExternFunc{Base: expr.Base{Location: n.Location}, Target: pf.binding}
}

// resolveClosureBody resolves one function body (named or anonymous)
// against an already-known signature: a new rfunction/block is pushed so
// the closure's own Externals list is distinct from its enclosing
// function's, params are bound positionally from fnType.Args, and the
// body resolves inside that scope.
func (r *Resolver) resolveClosureBody(loc token.Location, name string, params []*ast.Param, fnType *types.Function, body *ast.Block) *expr.Closure {
	closure := &expr.Closure{Base: expr.Base{Location: loc}, Name: name, ReturnType: fnType.Result}
	fn := &rfunction{closure: closure, seen: map[*expr.Binding]bool{}}
	r.push(&block{fn: fn})

	params2 := make([]*expr.Binding, len(params))
	for i, p := range params {
		pb := &expr.Binding{Scope: expr.Local, Name: p.Name.Name, Type: fnType.Args[i]}
		r.bind(p.Name.Name, p.Name.Location, pb)
		params2[i] = pb
	}
	closure.Params = params2
	closure.Body = r.resolveBlockBody(body)
	r.pop()
	return closure
}

func (r *Resolver) resolveLetValue(n *ast.LetValue) *expr.LetValue {
	value := r.resolveChildBlock(n.Value)
	var typ types.Type
	if n.Type != nil {
		typ = r.resolveTypeExpr(n.Type, map[string]*types.Generic{}, true)
	} else {
		typ = &types.Generic{}
	}
	target := &expr.Binding{Scope: expr.Local, Name: n.Name.Name, Type: typ}
	r.bind(n.Name.Name, n.Location, target)
	return &expr.LetValue{Base: expr.Base{Location: n.Location}, Target: target, Value: value}
}

func (r *Resolver) resolveLetTuple(n *ast.LetTuple) *expr.LetTuple {
	value := r.resolveChildBlock(n.Value)
	targets := make([]*expr.Binding, len(n.Names))
	for i, id := range n.Names {
		b := &expr.Binding{Scope: expr.Local, Name: id.Name, Type: &types.Generic{}}
		r.bind(id.Name, id.Location, b)
		targets[i] = b
	}
	return &expr.LetTuple{Base: expr.Base{Location: n.Location}, Targets: targets, Value: value}
}
