// Package lexer turns source bytes into a token stream plus a line index,
// per spec.md §4.1. It is a hand-written switch-dispatch scanner in the
// style of _examples/funvibe-funxy/internal/lexer/lexer.go, extended with
// the indent tracking and bracket-matching pass the teacher's
// (indentation-insignificant) language doesn't need.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/aikelang/aikec/internal/diag"
	"github.com/aikelang/aikec/internal/token"
)

// LineInfo is one entry of the line index: the column of the first
// non-whitespace token on a line, and that line's starting byte offset.
// Indent is -1 for a blank or comment-only line (it contributes no token
// and so never starts a block).
type LineInfo struct {
	Indent      int
	StartOffset int
}

// Lexer scans one source unit into tokens.
type Lexer struct {
	source token.SourceID
	input  string

	pos, readPos int
	ch           rune
	line, col    int

	atLineStart bool
	lines       []LineInfo

	err *diag.Diagnostic
}

// New creates a Lexer over src, identified by source for Location purposes.
// CR is stripped per spec.md §6.3 (CRLF and lone CR both normalize to LF).
func New(source token.SourceID, src string) *Lexer {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	l := &Lexer{source: source, input: src, line: 1, col: 0, atLineStart: true}
	l.lines = append(l.lines, LineInfo{Indent: -1, StartOffset: 0})
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
		l.atLineStart = true
		l.lines = append(l.lines, LineInfo{Indent: -1, StartOffset: l.readPos})
	}

	if l.readPosAtEnd() {
		l.pos = l.readPos
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += w
	l.col++
}

func (l *Lexer) readPosAtEnd() bool { return l.readPos >= len(l.input) }

func (l *Lexer) peekChar() rune {
	if l.readPosAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) here(length int) token.Location {
	return token.Location{Source: l.source, Line: l.line, Column: l.col, Offset: l.pos, Length: length}
}

func (l *Lexer) fail(kind diag.Kind, loc token.Location, format string, args ...any) {
	if l.err == nil {
		l.err = diag.New(kind, loc, format, args...)
	}
}

// noteLineStart records the indent/start-offset of the first real token on
// the current line, the one left-to-right-scan line index spec.md §4.1
// requires.
func (l *Lexer) noteLineStart() {
	if !l.atLineStart {
		return
	}
	l.atLineStart = false
	idx := l.line - 1
	for len(l.lines) <= idx {
		l.lines = append(l.lines, LineInfo{Indent: -1, StartOffset: l.pos})
	}
	l.lines[idx].Indent = l.col
}

// Lex scans the whole input, returning the token stream (terminated by an
// EOF token) and the line index. On the first lexical error it stops and
// returns that error; spec.md §7 "first error in a phase aborts the phase".
func (l *Lexer) Lex() ([]token.Token, []LineInfo, *diag.Diagnostic) {
	var toks []token.Token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if l.err != nil {
			return toks, l.lines, l.err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	if d := checkBrackets(toks); d != nil {
		return toks, l.lines, d
	}
	return toks, l.lines, nil
}

func (l *Lexer) skipInsignificantWhitespace() {
	for {
		switch l.ch {
		case ' ':
			l.readChar()
		case '\t':
			l.fail(diag.Lexical, l.here(1), "tab in source; indentation must use spaces")
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
				continue
			}
			return
		default:
			return
		}
		if l.err != nil {
			return
		}
	}
}

func (l *Lexer) next() token.Token {
	l.skipInsignificantWhitespace()
	if l.err != nil {
		return token.Token{Kind: token.ILLEGAL, Loc: l.here(1)}
	}

	if l.ch == 0 {
		return token.Token{Kind: token.EOF, Lexeme: "", Loc: l.here(0), Indent: -1}
	}

	if l.ch == '\n' {
		tok := token.Token{Kind: token.NEWLINE, Lexeme: "\n", Loc: l.here(1), Indent: -1}
		l.readChar()
		return tok
	}

	wasLineStart := l.atLineStart
	l.noteLineStart()
	indentCol := -1
	if wasLineStart {
		indentCol = l.col
	}

	var tok token.Token
	switch {
	case isLetter(l.ch):
		tok = l.scanIdentifier()
	case isDigit(l.ch):
		tok = l.scanNumber()
	case l.ch == '\'':
		tok = l.scanApostrophe()
	case l.ch == '"':
		tok = l.scanString()
	default:
		tok = l.scanOperator()
	}
	tok.Indent = indentCol
	return tok
}

func isLetter(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// lookahead2 returns the two runes following the current one, without
// consuming them (utf8-aware; used only to disambiguate ' as a char-literal
// delimiter vs. a generic-identifier prefix).
func (l *Lexer) lookahead2() (first, second rune) {
	rest := l.input[l.readPos:]
	if len(rest) == 0 {
		return 0, 0
	}
	r1, w1 := utf8.DecodeRuneInString(rest)
	first = r1
	rest = rest[w1:]
	if len(rest) == 0 {
		return first, 0
	}
	r2, _ := utf8.DecodeRuneInString(rest)
	return first, r2
}
