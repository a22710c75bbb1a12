// Package config implements the compiler's ambient configuration: the
// aike.yaml file a driver reads before invoking the pipeline, and the
// per-compilation-unit identity (SourceUnit) that concrete Location values
// in every later phase are built from (spec.md §3.1; SPEC_FULL.md §10.2).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prelude names the primitive type names bound into resolve's initial_env
// (spec.md §4.2). Normally fixed; exposed here only so golden-file test
// fixtures can remap them deterministically rather than hardcoding spec.md's
// choice of spelling into every fixture.
type Prelude struct {
	Unit  string `yaml:"unit,omitempty"`
	Int   string `yaml:"int,omitempty"`
	Char  string `yaml:"char,omitempty"`
	Float string `yaml:"float,omitempty"`
	Bool  string `yaml:"bool,omitempty"`
}

// defaultPrelude is spec.md §4.2's own spelling: unit, int, char, float, bool.
func defaultPrelude() Prelude {
	return Prelude{Unit: "unit", Int: "int", Char: "char", Float: "float", Bool: "bool"}
}

// Config is aike.yaml's top-level shape.
type Config struct {
	// Sources lists the directories (or individual .aike files) the driver
	// searches for compilation units, relative to the config file's own
	// directory.
	Sources []string `yaml:"sources,omitempty"`

	// Prelude overrides the primitive type names bound into every unit's
	// initial_env. Any field left empty falls back to its spec.md default.
	Prelude Prelude `yaml:"prelude,omitempty"`

	// TestMode makes the driver set config.IsTestMode at startup. No printer
	// reads that flag, so autogenerated names (lowering's fresh Var names,
	// TIR dumps) are printed as allocated. Mirrors the teacher's
	// config.IsTestMode (internal/config/constants.go).
	TestMode bool `yaml:"test_mode,omitempty"`
}

// Load reads and parses path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses aike.yaml content from bytes. path is used only in error
// messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	for _, s := range c.Sources {
		if s == "" {
			return fmt.Errorf("%s: sources entry must not be empty", path)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if len(c.Sources) == 0 {
		c.Sources = []string{"."}
	}
	def := defaultPrelude()
	if c.Prelude.Unit == "" {
		c.Prelude.Unit = def.Unit
	}
	if c.Prelude.Int == "" {
		c.Prelude.Int = def.Int
	}
	if c.Prelude.Char == "" {
		c.Prelude.Char = def.Char
	}
	if c.Prelude.Float == "" {
		c.Prelude.Float = def.Float
	}
	if c.Prelude.Bool == "" {
		c.Prelude.Bool = def.Bool
	}
}

// fileNames are the config file names Find looks for, tried in order.
var fileNames = []string{"aike.yaml", "aike.yml"}

// Find searches for aike.yaml starting at dir and walking up to parent
// directories, the same upward walk the teacher's ext.FindConfig uses for
// funxy.yaml. Returns "" with a nil error if no config file is found
// anywhere above dir; a driver is expected to fall back to defaultPrelude
// and the current directory in that case.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range fileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
