package arch_test

import "testing"

// layers orders the internal packages. A package may import only packages
// on its own layer or below.
var layers = map[string]int{
	"ansi":    0,
	"traceid": 0,

	"state":   1,
	"history": 1,
	"config":  1,

	"ui": 2,
}

func TestLayering(t *testing.T) {
	t.Parallel()

	pkgs := internalPackages(t)
	for _, pkg := range sortedNames(pkgs) {
		for path := range imports(pkgs[pkg]) {
			dep := internalName(path)
			if dep == "" {
				continue
			}
			if layers[dep] > layers[pkg] {
				t.Errorf("%s (layer %d) imports %s (layer %d)", pkg, layers[pkg], dep, layers[dep])
			}
		}
	}
}

func TestEveryPackageHasLayer(t *testing.T) {
	t.Parallel()

	for _, pkg := range sortedNames(internalPackages(t)) {
		if _, ok := layers[pkg]; !ok {
			t.Errorf("internal/%s has no entry in layers", pkg)
		}
	}
}

// forbidden lists imports a package must not use. traceid stays pure so IDs
// can be formatted and parsed without touching disk; only state talks to
// SQLite.
var forbidden = map[string][]string{
	"ansi":    {"os", "io"},
	"traceid": {"os", "io/fs", "path/filepath", "database/sql", "modernc.org/sqlite"},
	"history": {"database/sql", "modernc.org/sqlite"},
	"config":  {"os", "database/sql", "modernc.org/sqlite"},
	"ui":      {"os", "database/sql"},
}

func TestForbiddenImports(t *testing.T) {
	t.Parallel()

	pkgs := internalPackages(t)
	for _, pkg := range sortedNames(pkgs) {
		used := imports(pkgs[pkg])
		for _, path := range forbidden[pkg] {
			if used[path] {
				t.Errorf("internal/%s must not import %q", pkg, path)
			}
		}
	}
}

func TestSQLiteOnlyInState(t *testing.T) {
	t.Parallel()

	pkgs := internalPackages(t)
	for _, pkg := range sortedNames(pkgs) {
		if pkg == "state" {
			continue
		}
		if imports(pkgs[pkg])["modernc.org/sqlite"] {
			t.Errorf("internal/%s imports modernc.org/sqlite; counter storage belongs in internal/state", pkg)
		}
	}
	if !imports(pkgs["state"])["modernc.org/sqlite"] {
		t.Error("internal/state no longer registers the sqlite driver")
	}
}
