// Package token defines the lexical token kinds and source locations shared
// by every later phase of the compiler.
package token

import "fmt"

// SourceID identifies one compilation unit. The driver assigns these (see
// internal/config.SourceUnit); the core only ever compares them for
// equality and never needs to dereference one back to a file path itself.
type SourceID string

// Location is the (source, line, column, byte_offset, length) tuple spec.md
// §3.1 requires on every lexeme and AST node. Line and Column are 1-based.
// Invariant: a node's Location spans its children's, enforced by Span.
type Location struct {
	Source SourceID
	Line   int
	Column int
	Offset int
	Length int
}

// Span returns the smallest Location covering both a and b, assuming both
// share a Source. The leftmost offset to the rightmost end, per spec §3.1.
func Span(a, b Location) Location {
	if a.Source == "" {
		return b
	}
	if b.Source == "" {
		return a
	}
	start := a
	if b.Offset < a.Offset {
		start = b
	}
	endOffset := a.Offset + a.Length
	if e := b.Offset + b.Length; e > endOffset {
		endOffset = e
	}
	return Location{
		Source: start.Source,
		Line:   start.Line,
		Column: start.Column,
		Offset: start.Offset,
		Length: endOffset - start.Offset,
	}
}

// End returns the offset one past the last byte covered by the location.
func (l Location) End() int { return l.Offset + l.Length }

func (l Location) String() string {
	return fmt.Sprintf("%s(%d,%d)", l.Source, l.Line, l.Column)
}
