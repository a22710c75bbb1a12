package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanCoversBothLocations(t *testing.T) {
	a := Location{Source: "f", Line: 1, Column: 1, Offset: 0, Length: 3}
	b := Location{Source: "f", Line: 1, Column: 5, Offset: 4, Length: 2}
	got := Span(a, b)
	assert.Equal(t, Location{Source: "f", Line: 1, Column: 1, Offset: 0, Length: 6}, got)
}

func TestSpanIsOrderIndependent(t *testing.T) {
	a := Location{Source: "f", Offset: 4, Length: 2}
	b := Location{Source: "f", Offset: 0, Length: 3}
	assert.Equal(t, Span(a, b), Span(b, a))
}

func TestSpanIgnoresEmptySource(t *testing.T) {
	a := Location{}
	b := Location{Source: "f", Offset: 0, Length: 3}
	assert.Equal(t, b, Span(a, b))
	assert.Equal(t, b, Span(b, a))
}

func TestLocationEnd(t *testing.T) {
	l := Location{Offset: 10, Length: 5}
	assert.Equal(t, 15, l.End())
}

func TestLocationString(t *testing.T) {
	l := Location{Source: "main.aike", Line: 3, Column: 7}
	assert.Equal(t, "main.aike(3,7)", l.String())
}
