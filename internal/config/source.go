package config

import (
	"github.com/google/uuid"

	"github.com/aikelang/aikec/internal/token"
)

// SourceUnit is one (source_id, text) pair handed to the pipeline: the
// concrete carrier of spec.md §3.1's abstract source_id. ID is assigned once,
// at the point the driver reads the file, and flows unchanged through every
// token.Location the lexer produces from Text.
type SourceUnit struct {
	ID   token.SourceID
	Path string
	Text string
}

// NewSourceUnit assigns path's contents a fresh, collision-free source_id.
// Using a random uuid rather than a counter means independent units compiled
// concurrently (spec.md §5 permits this) never need to coordinate on one.
func NewSourceUnit(path, text string) *SourceUnit {
	return &SourceUnit{ID: token.SourceID(uuid.NewString()), Path: path, Text: text}
}
