package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikelang/aikec/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, _, err := New("test", src).Lex()
	require.Nil(t, err, "unexpected lex error: %v", err)
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexSimpleLetBinding(t *testing.T) {
	toks := lex(t, "let f x = x + 1")
	require.True(t, len(toks) > 0)
	assert.Equal(t, token.KEYWORD, toks[0].Kind)
	assert.Equal(t, "let", toks[0].Lexeme)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestLexNumbers(t *testing.T) {
	cases := []string{"123", "0x1F", "0b1010", "1_000_000"}
	for _, c := range cases {
		toks := lex(t, c)
		require.Equal(t, token.NUMBER, toks[0].Kind, c)
		assert.Equal(t, c, toks[0].Lexeme, c)
	}
}

func TestLexNumberAdjacentLetterIsError(t *testing.T) {
	_, _, err := New("test", "10x").Lex()
	require.NotNil(t, err)
	assert.Equal(t, "test(1,1): invalid number literal \"10x\": letter adjacent to digits", err.Error())
}

func TestLexHexPrefixWithoutDigitsIsError(t *testing.T) {
	_, _, err := New("test", "0x").Lex()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "no digits after radix prefix")
}

func TestLexBinaryPrefixWithoutDigitsIsError(t *testing.T) {
	_, _, err := New("test", "0b ").Lex()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "no digits after radix prefix")
}

func TestLexTabIsHardError(t *testing.T) {
	_, _, err := New("test", "let\tf = 1").Lex()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "tab in source")
}

func TestLexStringAndCharOpaque(t *testing.T) {
	toks := lex(t, `"hello \n world" 'c'`)
	require.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, `"hello \n world"`, toks[0].Lexeme)
	require.Equal(t, token.CHAR, toks[1].Kind)
	assert.Equal(t, "'c'", toks[1].Lexeme)
}

func TestLexGenericIdentifier(t *testing.T) {
	toks := lex(t, "'a 'elem")
	require.Equal(t, token.GENERIC_IDENT, toks[0].Kind)
	assert.Equal(t, "'a", toks[0].Lexeme)
	require.Equal(t, token.GENERIC_IDENT, toks[1].Kind)
	assert.Equal(t, "'elem", toks[1].Lexeme)
}

func TestLexUnterminatedString(t *testing.T) {
	_, _, err := New("test", `"abc`).Lex()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unterminated string")
}

func TestLexComment(t *testing.T) {
	toks := lex(t, "1 // a comment\n2")
	ks := kinds(toks)
	assert.Equal(t, []token.Kind{token.NUMBER, token.NEWLINE, token.NUMBER, token.EOF}, ks)
}

func TestLexBracketMatching(t *testing.T) {
	_, _, err := New("test", "(1, [2, 3)]").Lex()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "mismatched bracket")
}

func TestLexUnmatchedBracket(t *testing.T) {
	_, _, err := New("test", "(1, 2").Lex()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unmatched bracket")
}

func TestLineIndex(t *testing.T) {
	_, lines, err := New("test", "let x = 1\n  let y = 2\n").Lex()
	require.Nil(t, err)
	require.True(t, len(lines) >= 2)
	assert.Equal(t, 1, lines[0].Indent)
	assert.Equal(t, 3, lines[1].Indent)
}

func TestArrowPipeDotDotColonEq(t *testing.T) {
	toks := lex(t, "-> | .. :=")
	assert.Equal(t, []token.Kind{token.ARROW, token.PIPE, token.DOTDOT, token.COLONEQ, token.EOF}, kinds(toks))
}
