package lexer

import (
	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/token"
)

// scanOperator scans brackets and the atom/arrow/pipe/dot-dot/colon-equal
// tokens of spec.md §3.2, in the same one-char-then-peek style as
// _examples/funvibe-funxy/internal/lexer/lexer.go's NextToken switch.
func (l *Lexer) scanOperator() token.Token {
	ch := l.ch
	loc := l.here(1)

	two := func(k token.Kind, lex string) token.Token {
		l.readChar()
		l.readChar()
		loc.Length = 2
		return token.Token{Kind: k, Lexeme: lex, Loc: loc}
	}
	one := func(k token.Kind) token.Token {
		lex := string(ch)
		l.readChar()
		return token.Token{Kind: k, Lexeme: lex, Loc: loc}
	}

	switch ch {
	case '(':
		return one(token.LPAREN)
	case ')':
		return one(token.RPAREN)
	case '[':
		return one(token.LBRACKET)
	case ']':
		return one(token.RBRACKET)
	case '{':
		return one(token.LBRACE)
	case '}':
		return one(token.RBRACE)
	case ',':
		return one(token.COMMA)
	case ';':
		return one(token.SEMI)
	case '+':
		return one(token.PLUS)
	case '*':
		return one(token.STAR)
	case '/':
		return one(token.SLASH)
	case '!':
		if l.peekChar() == '=' {
			return two(token.NE, "!=")
		}
		return one(token.BANG)
	case '=':
		if l.peekChar() == '=' {
			return two(token.EQ, "==")
		}
		return one(token.ASSIGN)
	case '<':
		if l.peekChar() == '=' {
			return two(token.LE, "<=")
		}
		return one(token.LT)
	case '>':
		if l.peekChar() == '=' {
			return two(token.GE, ">=")
		}
		return one(token.GT)
	case '-':
		if l.peekChar() == '>' {
			return two(token.ARROW, "->")
		}
		return one(token.MINUS)
	case '|':
		return one(token.PIPE)
	case '.':
		if l.peekChar() == '.' {
			return two(token.DOTDOT, "..")
		}
		return one(token.DOT)
	case '#':
		return one(token.HASH)
	case ':':
		if l.peekChar() == '=' {
			return two(token.COLONEQ, ":=")
		}
		return one(token.COLON)
	default:
		lex := string(ch)
		tok := token.Token{Kind: token.ILLEGAL, Lexeme: lex, Loc: loc}
		l.fail(diag.Lexical, loc, "unknown character %q", lex)
		l.readChar()
		return tok
	}
}
