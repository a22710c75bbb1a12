package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Reporter renders diagnostics to an output stream. Per spec.md §7, a phase
// aborts on its first diagnostic; Reporter mirrors that by exposing First
// rather than encouraging callers to accumulate and continue, though it can
// still record more than one (All returns them). The lexer's bracket-matching
// pass does not use it: it returns a single Diagnostic whose secondary
// location carries the opener.
type Reporter struct {
	out     io.Writer
	color   bool
	reports []*Diagnostic
}

// NewReporter builds a Reporter writing to out. Color is enabled only when
// out is backed by an interactive terminal, the same decision the teacher's
// output-buffering code in evaluator/builtins_term.go makes via go-isatty
// before emitting ANSI escapes; diagnostics piped to a file or CI log never
// get escape codes mixed into them.
func NewReporter(out *os.File) *Reporter {
	color := out != nil && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()))
	return &Reporter{out: out, color: color}
}

// Report records a diagnostic.
func (r *Reporter) Report(d *Diagnostic) {
	r.reports = append(r.reports, d)
}

// First returns the first recorded diagnostic, or nil.
func (r *Reporter) First() *Diagnostic {
	if len(r.reports) == 0 {
		return nil
	}
	return r.reports[0]
}

// All returns every recorded diagnostic, in report order.
func (r *Reporter) All() []*Diagnostic {
	return r.reports
}

// HasErrors reports whether any diagnostic was recorded.
func (r *Reporter) HasErrors() bool {
	return len(r.reports) > 0
}

// Flush writes every recorded diagnostic to the reporter's output stream.
func (r *Reporter) Flush() {
	for _, d := range r.reports {
		if r.color {
			fmt.Fprintf(r.out, "\x1b[1;31m%s\x1b[0m\n", d.Error())
		} else {
			fmt.Fprintln(r.out, d.Error())
		}
	}
}
