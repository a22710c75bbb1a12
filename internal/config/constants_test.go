package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasSourceExt(t *testing.T) {
	assert.True(t, HasSourceExt("foo.aike"))
	assert.False(t, HasSourceExt("foo.txt"))
	assert.False(t, HasSourceExt("aike"))
}

func TestTrimSourceExt(t *testing.T) {
	assert.Equal(t, "foo", TrimSourceExt("foo.aike"))
	assert.Equal(t, "foo.txt", TrimSourceExt("foo.txt"))
}
