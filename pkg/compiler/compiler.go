// Package compiler is the core's outward contract, spec.md §6.1: parse,
// resolve, typecheck, lower, composed into one Compile entry point plus the
// four named stages exposed individually for callers (a dump stage, a
// test) that need to stop partway through rather than run straight
// through. Grounded on
// _examples/funvibe-funxy/internal/pipeline.Pipeline's stage-chain shape,
// adapted to spec.md §7's "the first diagnostic in a phase aborts the
// phase" rule: the teacher's Pipeline deliberately keeps running every
// stage so an LSP client sees every phase's diagnostics at once; aikec has
// no such client and only ever needs the first diagnostic, so Compile
// returns as soon as any stage produces one rather than continuing.
package compiler

import (
	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/checker"
	"github.com/aikelang/aikec/internal/config"
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/lexer"
	"github.com/aikelang/aikec/internal/lower"
	"github.com/aikelang/aikec/internal/parser"
	"github.com/aikelang/aikec/internal/resolver"
	"github.com/aikelang/aikec/internal/tir"
)

// Stage names the phase a Result's Diagnostic was reported from.
type Stage int

const (
	StageLex Stage = iota
	StageParse
	StageResolve
	StageCheck
	StageLower
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageResolve:
		return "resolve"
	case StageCheck:
		return "check"
	case StageLower:
		return "lower"
	default:
		return "?"
	}
}

// Result is one compilation unit's outcome.
type Result struct {
	// Program is non-nil only when every stage succeeded.
	Program *tir.Program
	// Diagnostic is the first diagnostic any stage reported, or nil.
	Diagnostic *diag.Diagnostic
	// Stage is the phase Diagnostic came from; meaningless if Diagnostic
	// is nil.
	Stage Stage
}

// Compile runs unit through lex, parse, resolve, typecheck and lower in
// sequence, stopping at the first diagnostic.
func Compile(unit *config.SourceUnit) Result {
	toks, _, d := lexer.New(unit.ID, unit.Text).Lex()
	if d != nil {
		return Result{Diagnostic: d, Stage: StageLex}
	}
	file, d := parser.ParseFile(unit.ID, toks)
	if d != nil {
		return Result{Diagnostic: d, Stage: StageParse}
	}
	root, d := resolver.ResolveFile(file)
	if d != nil {
		return Result{Diagnostic: d, Stage: StageResolve}
	}
	if d := checker.CheckFile(root); d != nil {
		return Result{Diagnostic: d, Stage: StageCheck}
	}
	return Result{Program: lower.Lower(root)}
}

// Parse tokenizes and parses unit, spec.md §6.1's `parse(lexer)` stage (the
// lexer is run to completion first rather than streamed token-by-token,
// since internal/parser's offside-rule lookahead wants the whole filtered
// stream up front, same as the teacher's own parser).
func Parse(unit *config.SourceUnit) (*ast.File, *diag.Diagnostic) {
	toks, _, d := lexer.New(unit.ID, unit.Text).Lex()
	if d != nil {
		return nil, d
	}
	return parser.ParseFile(unit.ID, toks)
}

// Resolve is spec.md §6.1's `resolve(syn_ast, initial_env)`; initial_env
// itself (the primitive-type prelude) is fixed inside internal/resolver
// rather than threaded through here, since spec.md names no provision for
// a caller-supplied prelude and SPEC_FULL.md's config.Prelude only remaps
// the *names* diagnostics print them under, not what resolve itself binds.
func Resolve(file *ast.File) (*expr.Block, *diag.Diagnostic) {
	return resolver.ResolveFile(file)
}

// Typecheck is spec.md §6.1's `typecheck(expr)`; unlike the spec's
// signature it has no separate return value, since internal/checker
// annotates root's own nodes in place as it unifies rather than building a
// parallel result tree.
func Typecheck(root *expr.Block) *diag.Diagnostic {
	return checker.CheckFile(root)
}

// Lower is spec.md §6.1's `lower(expr)`.
func Lower(root *expr.Block) *tir.Program {
	return lower.Lower(root)
}
