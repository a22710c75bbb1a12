package compiler

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/aikelang/aikec/internal/config"
)

// TestCompileGolden runs every testdata/*.txtar scenario through Compile.
// Each archive holds an input.aike source plus one expectation file:
// want.func (the compiled program's sole function name, on success) or
// want.stage (the Stage name Compile should abort at). Grounded on
// _examples/golang-tools/go/ssa's txtar-fixture style (testutil_test.go's
// openTxtar), adapted from an in-memory fs.FS to a flat two-file
// input/expectation pair since aike units are single files (spec.md §5).
func TestCompileGolden(t *testing.T) {
	archives, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, archives)

	for _, path := range archives {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)

			var input string
			want := map[string]string{}
			for _, f := range ar.Files {
				if f.Name == "input.aike" {
					input = string(f.Data)
					continue
				}
				want[f.Name] = strings.TrimSpace(string(f.Data))
			}
			require.NotEmpty(t, input)

			unit := config.NewSourceUnit(path, input)
			res := Compile(unit)

			if name, ok := want["want.func"]; ok {
				require.Nil(t, res.Diagnostic)
				require.NotNil(t, res.Program)
				require.Len(t, res.Program.Funcs, 1)
				assert.Equal(t, name, res.Program.Funcs[0].Name)
			}
			if stage, ok := want["want.stage"]; ok {
				require.NotNil(t, res.Diagnostic)
				assert.Equal(t, stage, res.Stage.String())
			}
		})
	}
}
