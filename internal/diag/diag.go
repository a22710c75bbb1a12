// Package diag implements the compiler's diagnostic model: the error kinds
// enumerated in spec.md §7 and the `<source>(<line>,<column>): <message>`
// wire format from spec.md §6.4.
package diag

import (
	"fmt"
	"strings"

	"github.com/aikelang/aikec/internal/token"
)

// Kind classifies a diagnostic into one of the closed families spec.md §7
// enumerates. Kept coarse (one per family, not per exact message) because
// the spec asserts error *kinds*, not an exhaustive catalogue of strings.
type Kind int

const (
	Lexical Kind = iota
	Syntactic
	NameResolution
	Pattern
	TypeError
	MatchAnalysis
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntax"
	case NameResolution:
		return "name"
	case Pattern:
		return "pattern"
	case TypeError:
		return "type"
	case MatchAnalysis:
		return "match"
	default:
		return "error"
	}
}

// Diagnostic is one reported error. Secondary carries a second location for
// kinds that must report two spans at once (mismatched brackets, unification
// failures that show both the actual and expected type's origin).
type Diagnostic struct {
	Kind      Kind
	Loc       token.Location
	Message   string
	Secondary *token.Location
	Line      string // the offending source line, for caret rendering
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Loc, d.Message)
	if d.Secondary != nil {
		fmt.Fprintf(&b, "\n%s: (related location)", *d.Secondary)
	}
	if d.Line != "" {
		b.WriteByte('\n')
		b.WriteString(d.Line)
		b.WriteByte('\n')
		b.WriteString(caret(d.Loc))
	}
	return b.String()
}

// caret renders a span of d.Length carets under d.Column, 1-based.
func caret(loc token.Location) string {
	n := loc.Length
	if n < 1 {
		n = 1
	}
	col := loc.Column
	if col < 1 {
		col = 1
	}
	return strings.Repeat(" ", col-1) + strings.Repeat("^", n)
}

// New builds a Diagnostic of the given kind at loc.
func New(kind Kind, loc token.Location, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Loc: loc, Message: fmt.Sprintf(format, args...)}
}

// WithSecondary attaches a second location (e.g. the matching open bracket).
func (d *Diagnostic) WithSecondary(loc token.Location) *Diagnostic {
	d.Secondary = &loc
	return d
}

// WithLine attaches the offending source line for caret rendering.
func (d *Diagnostic) WithLine(line string) *Diagnostic {
	d.Line = line
	return d
}
