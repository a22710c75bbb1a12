package expr

// Unit is the `()` literal.
type Unit struct{ Base }

// Int is a decimal, hex (`0x`), or binary (`0b`) integer literal; the
// resolver parses the lexeme (stripping underscores) once here so the
// checker and lowering stages never re-parse source text.
type Int struct {
	Base
	Value int64
}

// Float is a numeric literal whose lexeme contains a `.`.
type Float struct {
	Base
	Value float64
}

// Character carries the opaque single-byte-range payload between the
// delimiting quotes (spec.md §4.1: escapes are not interpreted).
type Character struct {
	Base
	Payload string
}

// StringLit carries the opaque payload between the delimiting quotes.
type StringLit struct {
	Base
	Payload string
}

// Boolean is a `true`/`false` literal.
type Boolean struct {
	Base
	Value bool
}

// ArrayLit is `[e1, e2, ...]`.
type ArrayLit struct {
	Base
	Elements []Expr
}

// TupleLit is `(e1, e2, ...)` with at least two elements (a single
// parenthesized expression is not a tuple; the parser already resolves
// that ambiguity before the resolver ever sees a TupleLit).
type TupleLit struct {
	Base
	Elements []Expr
}
