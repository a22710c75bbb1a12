package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentClassifiesKeywords(t *testing.T) {
	assert.Equal(t, KEYWORD, LookupIdent("let"))
	assert.Equal(t, KEYWORD, LookupIdent("match"))
	assert.Equal(t, IDENT, LookupIdent("matches"))
	assert.Equal(t, IDENT, LookupIdent("x"))
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: IDENT, Lexeme: "foo"}
	assert.Equal(t, "foo", tok.String())
}

func TestTokenIsKeyword(t *testing.T) {
	tok := Token{Kind: KEYWORD, Lexeme: "if"}
	assert.True(t, tok.IsKeyword("if"))
	assert.False(t, tok.IsKeyword("then"))

	ident := Token{Kind: IDENT, Lexeme: "if"}
	assert.False(t, ident.IsKeyword("if"))
}
