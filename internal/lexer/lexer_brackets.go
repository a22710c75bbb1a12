package lexer

import (
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/token"
)

var closeOf = map[token.Kind]token.Kind{
	token.LPAREN:   token.RPAREN,
	token.LBRACKET: token.RBRACKET,
	token.LBRACE:   token.RBRACE,
}

var bracketName = map[token.Kind]string{
	token.LPAREN: "(", token.RPAREN: ")",
	token.LBRACKET: "[", token.RBRACKET: "]",
	token.LBRACE: "{", token.RBRACE: "}",
}

// checkBrackets runs the second pass spec.md §4.1 describes: each open
// bracket's index is pushed on a stack; each close must equal the expected
// close of its top. Reports `mismatched-bracket` (wrong closer) with both
// locations: the closer as primary, its opener as secondary.
// `unmatched-bracket` (no opener, or opener left over at EOF) carries one
// location only: the stray closer, or the first opener still open at EOF.
func checkBrackets(toks []token.Token) *diag.Diagnostic {
	var stack []int
	for i, t := range toks {
		switch t.Kind {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			stack = append(stack, i)
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			if len(stack) == 0 {
				return diag.New(diag.Lexical, t.Loc, "unmatched bracket %q", t.Lexeme)
			}
			open := toks[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			if closeOf[open.Kind] != t.Kind {
				return diag.New(diag.Lexical, t.Loc,
					"mismatched bracket: expected %q to close %q, got %q",
					bracketName[closeOf[open.Kind]], open.Lexeme, t.Lexeme).
					WithSecondary(open.Loc)
			}
		}
	}
	if len(stack) > 0 {
		open := toks[stack[0]]
		return diag.New(diag.Lexical, open.Loc, "unmatched bracket %q", open.Lexeme)
	}
	return nil
}
