// Package lower turns a fully type-checked internal/expr tree into
// internal/tir (spec.md §4.6): monomorphising every generic function
// reference to one concrete instance, converting every closure into a flat
// function plus an explicit captured-environment record, and compiling
// every Match into a Decision tree. Lowering never re-infers a type - every
// node it reads has already been fully resolved by internal/checker - so it
// only ever reads types.FinalType, never calls types.Unify or types.Fresh.
//
// Grounded on original_source/compiler/codegen.cpp's worklist-based
// instantiation (a pendingFunctions queue, FunctionInstance keyed by a
// mangled name, emitted lazily on first reference) and on
// _examples/funvibe-funxy/internal/vm/compiler.go's single-pass
// tree-to-bytecode walk for the general lowering shape.
package lower

import (
	"fmt"
	"sort"

	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/mangle"
	"github.com/aikelang/aikec/internal/tir"
	"github.com/aikelang/aikec/internal/types"
)

// pendingInstance is one not-yet-lowered monomorphisation: closure is the
// declaration, name is its mangled instance name, and subst is the
// substitution discovered at the reference site that asked for it.
type pendingInstance struct {
	closure *expr.Closure
	name    string
	subst   map[*types.Generic]types.Type
}

// lowering is the whole-program state threaded through one Lower call: the
// declaration tables built by the pre-pass (registerBlock), the
// monomorphisation worklist, and the instances already emitted.
type lowering struct {
	closureOf   map[*expr.Binding]*expr.Closure
	externNames map[*expr.Binding]string
	anonNames   map[*expr.Closure]string
	anonCounter int

	queue  []pendingInstance
	queued map[string]bool
	done   map[string]bool
	funcs  []*tir.Func
}

// Lower compiles root (a compilation unit's top-level block) to a
// tir.Program. root's own code becomes the Main function; every named or
// anonymous function it (transitively) references becomes one Func per
// distinct instantiation, monomorphised and closure-converted on demand.
func Lower(root *expr.Block) *tir.Program {
	l := &lowering{
		closureOf:   map[*expr.Binding]*expr.Closure{},
		externNames: map[*expr.Binding]string{},
		anonNames:   map[*expr.Closure]string{},
		queued:      map[string]bool{},
		done:        map[string]bool{},
	}
	l.registerBlock(root)

	mainFC := &funcCtx{vars: map[*expr.Binding]*tir.Var{}, names: map[string]int{}}
	mainBody := l.lowerBlockStmts(root, mainFC)
	main := &tir.Func{Name: "main", Result: mainFC.ty(root), Body: mainBody}

	for len(l.queue) > 0 {
		inst := l.queue[0]
		l.queue = l.queue[1:]
		if l.done[inst.name] {
			continue
		}
		l.done[inst.name] = true
		l.funcs = append(l.funcs, l.lowerClosureInstance(inst.closure, inst.name, inst.subst))
	}

	sort.Slice(l.funcs, func(i, j int) bool { return l.funcs[i].Name < l.funcs[j].Name })
	return &tir.Program{Funcs: l.funcs, Main: main}
}

// ty returns e's fully resolved type, read through FinalType rather than a
// raw ExprType() call (internal/types/unify.go). It is the building block
// for funcCtx.ty, which every node lowered inside a function body actually
// calls: a generic closure's body is checked exactly once, so an
// expression's own checker-assigned type can still mention the closure's
// declaration-level generics (shared Generic pointers with Params/
// ReturnType) even though the reference that triggered this particular
// instance was already concrete - funcCtx.ty applies that instance's subst
// on top of ty so no unbound generic ever leaks into TIR.
func ty(e expr.Expr) types.Type { return types.FinalType(e.ExprType()) }

func (l *lowering) enqueue(closure *expr.Closure, name string, subst map[*types.Generic]types.Type) {
	if l.done[name] || l.queued[name] {
		return
	}
	l.queued[name] = true
	l.queue = append(l.queue, pendingInstance{closure: closure, name: name, subst: subst})
}

// baseName is the mangle-input name identifying closure itself, independent
// of any particular instantiation: its source name, or a synthesized one
// for an anonymous closure (stable only within this Lower call, matching
// internal/mangle's contract that a mangled name only needs to be
// consistent within one compiled unit).
func (l *lowering) baseName(cl *expr.Closure) string {
	if cl.Name != "" {
		return cl.Name
	}
	if n, ok := l.anonNames[cl]; ok {
		return n
	}
	n := fmt.Sprintf("closure$%d", l.anonCounter)
	l.anonCounter++
	l.anonNames[cl] = n
	return n
}

func (l *lowering) instanceName(cl *expr.Closure, order []*types.Generic, subst map[*types.Generic]types.Type) string {
	substTypes := make([]types.Type, len(order))
	for i, g := range order {
		substTypes[i] = subst[g]
	}
	return mangle.Function(l.baseName(cl), substTypes)
}

// instanceKey reconstructs a call site's generic substitution by walking
// orig (a declaration's own, possibly-generic Function type) and conc (the
// fully-resolved Function type a particular reference site unified it down
// to) in parallel: every *types.Generic reached on the orig side is paired
// with whatever conc holds in the same position, the first time it is
// seen. order records that pairing's first-occurrence sequence, since
// spec.md §6.2 mangles a function instance's substitutions in a fixed
// order, and types.Fresh itself keeps no record of which fresh variable
// replaced which original (see internal/types/unify.go's fresh, whose
// genremap is local to one call).
func instanceKey(orig, conc types.Type) (map[*types.Generic]types.Type, []*types.Generic) {
	subst := map[*types.Generic]types.Type{}
	var order []*types.Generic
	var walk func(o, c types.Type)
	walk = func(o, c types.Type) {
		o = types.FinalType(o)
		c = types.FinalType(c)
		switch ov := o.(type) {
		case *types.Generic:
			if _, seen := subst[ov]; !seen {
				subst[ov] = c
				order = append(order, ov)
			}
		case *types.Array:
			walk(ov.Contained, c.(*types.Array).Contained)
		case *types.Tuple:
			cv := c.(*types.Tuple)
			for i := range ov.Members {
				walk(ov.Members[i], cv.Members[i])
			}
		case *types.Function:
			cv := c.(*types.Function)
			for i := range ov.Args {
				walk(ov.Args[i], cv.Args[i])
			}
			walk(ov.Result, cv.Result)
		case *types.Instance:
			cv := c.(*types.Instance)
			for i := range ov.Generics {
				walk(ov.Generics[i], cv.Generics[i])
			}
		}
	}
	walk(orig, conc)
	return subst, order
}

// applySubst rebuilds t with every *types.Generic in subst replaced by its
// mapped concrete type, otherwise structurally identical to t. Mirrors
// internal/types/prototype.go's unexported substitute in shape (that one is
// package-private, reserved for member-type lookup during checking; this is
// lowering's own copy for the same purpose against an instanceKey result).
func applySubst(t types.Type, subst map[*types.Generic]types.Type) types.Type {
	switch v := types.FinalType(t).(type) {
	case *types.Generic:
		if c, ok := subst[v]; ok {
			return c
		}
		return v
	case *types.Array:
		return &types.Array{Contained: applySubst(v.Contained, subst)}
	case *types.Tuple:
		members := make([]types.Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = applySubst(m, subst)
		}
		return &types.Tuple{Members: members}
	case *types.Function:
		args := make([]types.Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = applySubst(a, subst)
		}
		return &types.Function{Args: args, Result: applySubst(v.Result, subst)}
	case *types.Instance:
		gens := make([]types.Type, len(v.Generics))
		for i, g := range v.Generics {
			gens[i] = applySubst(g, subst)
		}
		return &types.Instance{Cell: v.Cell, Generics: gens}
	default:
		return v
	}
}

// registerBlock and registerExpr are the pre-pass that discovers every
// LetFunc/ExternFunc declaration reachable anywhere in root, before any
// lowering runs: a reference can precede or follow the declaration it
// names (spec.md §4.3's pre-binding pass already resolved this at the
// expr.Binding level), and a reference from inside one function to a
// sibling or nested function declared elsewhere needs the whole program's
// declarations visible up front, not just the ones lowered so far.
func (l *lowering) registerBlock(b *expr.Block) {
	for _, e := range b.Exprs {
		l.registerExpr(e)
	}
}

func (l *lowering) registerExpr(e expr.Expr) {
	switch n := e.(type) {
	case *expr.LetValue:
		l.registerBlock(n.Value)
	case *expr.LetTuple:
		l.registerBlock(n.Value)
	case *expr.LetFunc:
		l.closureOf[n.Target] = n.Fn
		l.registerBlock(n.Fn.Body)
	case *expr.ExternFunc:
		l.externNames[n.Target] = n.Target.Name
	case *expr.TypeDecl:
	case *expr.If:
		l.registerExpr(n.Cond)
		l.registerBlock(n.Then)
		if n.Else != nil {
			l.registerBlock(n.Else)
		}
	case *expr.ForArray:
		l.registerExpr(n.Array)
		l.registerBlock(n.Body)
	case *expr.ForRange:
		l.registerExpr(n.Low)
		l.registerExpr(n.High)
		l.registerBlock(n.Body)
	case *expr.While:
		l.registerExpr(n.Cond)
		l.registerBlock(n.Body)
	case *expr.Closure:
		l.registerBlock(n.Body)
	case *expr.Block:
		l.registerBlock(n)
	case *expr.Call:
		l.registerExpr(n.Callee)
		for _, a := range n.Args {
			l.registerExpr(a)
		}
	case *expr.BinaryOp:
		l.registerExpr(n.Left)
		l.registerExpr(n.Right)
	case *expr.UnaryOp:
		l.registerExpr(n.Operand)
	case *expr.Index:
		l.registerExpr(n.Array)
		l.registerExpr(n.Index)
	case *expr.Slice:
		l.registerExpr(n.Array)
		if n.Low != nil {
			l.registerExpr(n.Low)
		}
		if n.High != nil {
			l.registerExpr(n.High)
		}
	case *expr.Member:
		l.registerExpr(n.Target)
	case *expr.Assign:
		l.registerExpr(n.Target)
		l.registerExpr(n.Value)
	case *expr.ArrayLit:
		for _, el := range n.Elements {
			l.registerExpr(el)
		}
	case *expr.TupleLit:
		for _, el := range n.Elements {
			l.registerExpr(el)
		}
	case *expr.Match:
		l.registerExpr(n.Scrutinee)
		for _, a := range n.Arms {
			l.registerBlock(a.Body)
			l.registerMatchCase(a.Case)
		}
	}
}

func (l *lowering) registerMatchCase(c expr.MatchCase) {
	switch v := c.(type) {
	case *expr.CaseOr:
		for _, alt := range v.Alternatives {
			l.registerMatchCase(alt)
		}
	case *expr.CaseIf:
		l.registerMatchCase(v.Inner)
		l.registerExpr(v.Guard)
	case *expr.CaseUnion:
		l.registerMatchCase(v.Pattern)
	case *expr.CaseArray:
		for _, el := range v.Elements {
			l.registerMatchCase(el)
		}
	case *expr.CaseMembers:
		for _, el := range v.Elements {
			l.registerMatchCase(el)
		}
	}
}
