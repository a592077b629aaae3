package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/papapumpkin/idgen"

// source is one parsed non-test Go file.
type source struct {
	rel  string // path relative to the module root
	file *ast.File
}

// root is the module root, two directories above this package.
func root(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err != nil {
		t.Fatalf("no go.mod at %s: %v", dir, err)
	}
	return dir
}

// parseDir parses the non-test Go files directly inside dir.
func parseDir(t *testing.T, dir string) []source {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	base := root(t)
	fset := token.NewFileSet()
	var out []source
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		path := filepath.Join(dir, name)
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("parsing %s: %v", path, err)
		}
		rel, _ := filepath.Rel(base, path)
		out = append(out, source{rel: rel, file: f})
	}
	return out
}

// internalPackages maps each package under internal/ to its parsed files.
func internalPackages(t *testing.T) map[string][]source {
	t.Helper()
	dir := filepath.Join(root(t), "internal")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	pkgs := make(map[string][]source)
	for _, e := range entries {
		if !e.IsDir() || e.Name() == "arch_test" {
			continue
		}
		if files := parseDir(t, filepath.Join(dir, e.Name())); len(files) > 0 {
			pkgs[e.Name()] = files
		}
	}
	return pkgs
}

// sortedNames returns the keys of pkgs in order, so failures are stable.
func sortedNames(pkgs map[string][]source) []string {
	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// imports returns every import path used by files.
func imports(files []source) map[string]bool {
	seen := make(map[string]bool)
	for _, s := range files {
		for _, imp := range s.file.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err == nil {
				seen[path] = true
			}
		}
	}
	return seen
}

// internalName returns the internal package an import path refers to, or ""
// for anything outside internal/.
func internalName(path string) string {
	rest, ok := strings.CutPrefix(path, modulePath+"/internal/")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(rest, "/")
	return name
}

func TestInternalPackagesFound(t *testing.T) {
	t.Parallel()

	pkgs := internalPackages(t)
	for _, want := range []string{"traceid", "state", "history", "config", "ui"} {
		if _, ok := pkgs[want]; !ok {
			t.Errorf("internal/%s not found; got %v", want, sortedNames(pkgs))
		}
	}
	if _, ok := pkgs["arch_test"]; ok {
		t.Error("arch_test should not be scanned")
	}
}

func TestInternalName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		modulePath + "/internal/state":     "state",
		modulePath + "/internal/state/sub": "state",
		modulePath + "/cmd":                "",
		"os":                               "",
	}
	for path, want := range tests {
		if got := internalName(path); got != want {
			t.Errorf("internalName(%q) = %q, want %q", path, got, want)
		}
	}
}
