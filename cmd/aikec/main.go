// Command aikec is aikec's own thin driver: it discovers aike.yaml (or
// takes a config path on the command line), reads each configured source
// file, and runs it through pkg/compiler. This is the "external
// collaborator" spec.md §1 explicitly places outside the core's scope -
// no code here has any bearing on spec.md's invariants, unlike
// pkg/compiler, which is the core's one outward contract.
//
// Grounded on _examples/funvibe-funxy/cmd/funxy/main.go's plain-os.Args
// flag handling (no "flag" package - the teacher parses its own argv by
// hand) and cmd/lsp/main.go's log/slog-free but structured use of the
// standard logger at the driver boundary (see DESIGN.md for why slog,
// specifically, is this module's one legitimate stdlib-over-ecosystem
// choice).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aikelang/aikec/internal/ast"
	"github.com/aikelang/aikec/internal/config"
	"github.com/aikelang/aikec/internal/expr"
	"github.com/aikelang/aikec/internal/tir"
	"github.com/aikelang/aikec/pkg/compiler"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if os.Getenv("AIKE_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	dumpStage, args := takeDumpFlag(os.Args[1:])
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: aikec [-dump syn|expr|tir] <file.aike | config-dir>")
		os.Exit(1)
	}

	cfg, files, err := resolveInputs(args[0])
	if err != nil {
		log.Error("resolving inputs", "error", err)
		os.Exit(1)
	}
	if cfg.TestMode {
		config.IsTestMode = true
	}

	status := 0
	for _, path := range files {
		start := time.Now()
		ok := compileOne(log, path, dumpStage)
		log.Info("compiled unit", "path", path, "ok", ok, "elapsed", time.Since(start))
		if !ok {
			status = 1
		}
	}
	os.Exit(status)
}

// takeDumpFlag extracts a leading "-dump <stage>" pair from args, if
// present, returning the remaining arguments unchanged otherwise.
func takeDumpFlag(args []string) (stage string, rest []string) {
	if len(args) >= 2 && (args[0] == "-dump" || args[0] == "--dump") {
		return args[1], args[2:]
	}
	return "", args
}

// resolveInputs turns the command line's single positional argument into
// a Config and the list of .aike files it names: a single source file is
// compiled as its own one-file project with defaults, a directory is
// searched for aike.yaml (config.Find) and then for every configured
// source root's .aike files.
func resolveInputs(arg string) (*config.Config, []string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		if !config.HasSourceExt(arg) {
			return nil, nil, fmt.Errorf("%s: not a %s file", arg, config.SourceFileExt)
		}
		cfg, err := config.Parse(nil, arg)
		if err != nil {
			return nil, nil, err
		}
		return cfg, []string{arg}, nil
	}

	cfgPath, err := config.Find(arg)
	if err != nil {
		return nil, nil, err
	}
	var cfg *config.Config
	if cfgPath == "" {
		cfg, err = config.Parse(nil, "")
		if err != nil {
			return nil, nil, err
		}
	} else {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, nil, err
		}
		arg = filepath.Dir(cfgPath)
	}

	var files []string
	for _, root := range cfg.Sources {
		files = append(files, findSourceFiles(filepath.Join(arg, root))...)
	}
	return cfg, files, nil
}

func findSourceFiles(root string) []string {
	var files []string
	_ = filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return nil
		}
		if config.HasSourceExt(path) {
			files = append(files, path)
		}
		return nil
	})
	return files
}

// compileOne runs one source unit through pkg/compiler, printing either the
// requested -dump stage's output or the first diagnostic encountered.
func compileOne(log *slog.Logger, path, dumpStage string) bool {
	text, err := os.ReadFile(path)
	if err != nil {
		log.Error("reading source", "path", path, "error", err)
		return false
	}
	unit := config.NewSourceUnit(path, string(text))

	switch dumpStage {
	case "syn":
		file, d := compiler.Parse(unit)
		if d != nil {
			return reportAndFail(path, d)
		}
		fmt.Println(synString(file))
	case "expr":
		file, d := compiler.Parse(unit)
		if d != nil {
			return reportAndFail(path, d)
		}
		root, d := compiler.Resolve(file)
		if d != nil {
			return reportAndFail(path, d)
		}
		fmt.Println(exprString(root))
	case "tir":
		res := compiler.Compile(unit)
		if res.Diagnostic != nil {
			return reportAndFail(path, res.Diagnostic)
		}
		fmt.Println(tir.Print(res.Program))
	default:
		res := compiler.Compile(unit)
		if res.Diagnostic != nil {
			return reportAndFail(path, res.Diagnostic)
		}
	}
	return true
}

func reportAndFail(path string, d interface{ Error() string }) bool {
	fmt.Fprintf(os.Stderr, "%s: %s\n", path, d.Error())
	return false
}

func synString(f *ast.File) string    { return ast.Print(f.Body) }
func exprString(b *expr.Block) string { return expr.Print(b) }
