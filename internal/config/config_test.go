package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""), "aike.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"."}, cfg.Sources)
	assert.Equal(t, defaultPrelude(), cfg.Prelude)
	assert.False(t, cfg.TestMode)
}

func TestParseHonorsExplicitFields(t *testing.T) {
	data := []byte("sources:\n  - src\n  - lib\ntest_mode: true\nprelude:\n  int: Int\n")
	cfg, err := Parse(data, "aike.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"src", "lib"}, cfg.Sources)
	assert.True(t, cfg.TestMode)
	assert.Equal(t, "Int", cfg.Prelude.Int)
	// unspecified prelude fields still fall back to spec.md's own spelling
	assert.Equal(t, "unit", cfg.Prelude.Unit)
	assert.Equal(t, "bool", cfg.Prelude.Bool)
}

func TestParseRejectsEmptySourceEntry(t *testing.T) {
	_, err := Parse([]byte("sources:\n  - \"\"\n"), "aike.yaml")
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("sources: [unterminated"), "aike.yaml")
	assert.Error(t, err)
}

func TestLoadReadsFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aike.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources:\n  - src\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, cfg.Sources)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFindWalksUpToParentDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "aike.yaml"), []byte("sources: [.]\n"), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "aike.yaml"), found)
}

func TestFindReturnsEmptyWhenNoConfigExists(t *testing.T) {
	found, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindPrefersYamlOverYmlInSameDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aike.yml"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aike.yaml"), []byte(""), 0o644))

	found, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "aike.yaml"), found)
}
