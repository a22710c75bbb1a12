package lexer

import (
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/token"
)

func (l *Lexer) scanIdentifier() token.Token {
	start := l.pos
	loc := l.here(0)
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.pos]
	loc.Length = l.pos - start
	return token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Loc: loc}
}

// scanApostrophe handles both forms the lexeme `'` introduces: a
// generic-identifier ('a, 'elem) and a character literal ('x'). Spec.md
// §3.2 gives both the same leading byte, so the lexer must look one
// character past the payload to tell them apart: a closing `'` immediately
// after a single payload rune means a character literal; anything else
// (the payload continuing with more identifier runes) means a generic
// identifier.
func (l *Lexer) scanApostrophe() token.Token {
	start := l.pos
	loc := l.here(0)
	first, second := l.lookahead2()

	if first != 0 && first != '\n' && second == '\'' {
		l.readChar() // consume '
		l.readChar() // consume payload rune
		l.readChar() // consume closing '
		loc.Length = l.pos - start
		return token.Token{Kind: token.CHAR, Lexeme: l.input[start:l.pos], Loc: loc}
	}

	l.readChar() // consume leading '
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	loc.Length = l.pos - start
	return token.Token{Kind: token.GENERIC_IDENT, Lexeme: l.input[start:l.pos], Loc: loc}
}

func (l *Lexer) scanString() token.Token {
	start := l.pos
	loc := l.here(0)
	l.readChar() // opening "
	for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	if l.ch != '"' {
		l.fail(diag.Lexical, l.here(1), "unterminated string literal")
		return token.Token{Kind: token.ILLEGAL, Loc: loc}
	}
	l.readChar() // closing "
	loc.Length = l.pos - start
	return token.Token{Kind: token.STRING, Lexeme: l.input[start:l.pos], Loc: loc}
}
