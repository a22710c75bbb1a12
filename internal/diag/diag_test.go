package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aikelang/aikec/internal/token"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "lexical", Lexical.String())
	assert.Equal(t, "syntax", Syntactic.String())
	assert.Equal(t, "name", NameResolution.String())
	assert.Equal(t, "pattern", Pattern.String())
	assert.Equal(t, "type", TypeError.String())
	assert.Equal(t, "match", MatchAnalysis.String())
}

func TestNewFormatsMessage(t *testing.T) {
	loc := token.Location{Source: "f.aike", Line: 1, Column: 1}
	d := New(TypeError, loc, "expected %s, got %s", "int", "bool")
	assert.Equal(t, "expected int, got bool", d.Message)
	assert.Equal(t, TypeError, d.Kind)
}

func TestErrorRendersLocationAndMessage(t *testing.T) {
	loc := token.Location{Source: "f.aike", Line: 2, Column: 3}
	d := New(Syntactic, loc, "unexpected token")
	assert.Equal(t, "f.aike(2,3): unexpected token", d.Error())
}

func TestErrorIncludesSecondaryLocation(t *testing.T) {
	loc := token.Location{Source: "f.aike", Line: 2, Column: 3}
	sec := token.Location{Source: "f.aike", Line: 1, Column: 1}
	d := New(Syntactic, loc, "mismatched bracket").WithSecondary(sec)
	got := d.Error()
	assert.Contains(t, got, "f.aike(2,3): mismatched bracket")
	assert.Contains(t, got, "f.aike(1,1): (related location)")
}

func TestErrorIncludesCaretLine(t *testing.T) {
	loc := token.Location{Source: "f.aike", Line: 1, Column: 3, Length: 2}
	d := New(TypeError, loc, "bad op").WithLine("1 + true")
	want := "f.aike(1,3): bad op\n1 + true\n  ^^"
	assert.Equal(t, want, d.Error())
}

func TestErrorCaretClampsToAtLeastOneColumn(t *testing.T) {
	loc := token.Location{Source: "f.aike", Line: 1, Column: 0, Length: 0}
	d := New(Lexical, loc, "tab in source").WithLine("\tx")
	assert.Equal(t, "f.aike(1,0): tab in source\n\tx\n^", d.Error())
}
