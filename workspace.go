package importfreq

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"os/exec"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Document is one parsed source file belonging to the loaded workspace.
type Document struct {
	// Path is the file's path as reported by the loader.
	Path string
	// Language is the document's language tag. The build loader only ever
	// produces Go documents; scan mode classifies files itself.
	Language string
	// File is the parsed syntax. Nil when parsing failed; such documents
	// contribute zero imports and a warning.
	File *ast.File
}

// Workspace is the in-memory result of loading a descriptor: the documents
// to process plus any non-fatal load warnings.
type Workspace struct {
	// Dir is the directory the load ran in.
	Dir string
	// Packages is the number of packages the loader returned.
	Packages int
	// Documents holds one entry per distinct source file.
	Documents []Document
	// Warnings are non-fatal load diagnostics, in a stable order.
	Warnings []string
}

// loadMode requests names, file lists, and parsed syntax — everything needed
// to read import declarations, nothing more.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// LoadWorkspace loads the packages described by item using the go/packages
// build evaluator. Load-time problems (a package that failed to compile, a
// file that failed to parse) become Warnings on the returned Workspace; the
// only fatal conditions are a missing go toolchain and a loader invocation
// that failed outright.
func LoadWorkspace(ctx context.Context, item WorkItem) (*Workspace, error) {
	if _, err := exec.LookPath("go"); err != nil {
		return nil, ErrNoToolchain
	}

	dir := item.Dir()
	cfg := &packages.Config{
		Mode:    loadMode,
		Context: ctx,
		Dir:     dir,
		Tests:   true,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", item.Path, err)
	}

	ws := &Workspace{Dir: dir}
	seen := make(map[string]bool)
	pkgPaths := make(map[string]bool)
	warned := make(map[string]bool)
	warn := func(msg string) {
		// Test variants repeat their base package's errors; keep one copy.
		if !warned[msg] {
			warned[msg] = true
			ws.Warnings = append(ws.Warnings, msg)
		}
	}
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, ".test") {
			continue // synthesized test binary, its only file is a generated main
		}
		pkgPaths[pkg.PkgPath] = true
		for _, perr := range pkg.Errors {
			warn(fmt.Sprintf("load %s: %s", pkg.PkgPath, perr.Msg))
		}
		for _, file := range pkg.Syntax {
			path := filePath(pkg.Fset, file)
			if seen[path] {
				continue // test variants repeat the same files
			}
			seen[path] = true
			ws.Documents = append(ws.Documents, Document{
				Path:     path,
				Language: "go",
				File:     file,
			})
		}
		// Compiled files with no syntax entry failed to parse outright.
		for _, path := range pkg.CompiledGoFiles {
			if !seen[path] {
				seen[path] = true
				warn(fmt.Sprintf("no syntax for %s: counted as zero imports", path))
			}
		}
	}

	ws.Packages = len(pkgPaths)

	// go/packages returns test variants in unspecified order; sort both
	// collections so two runs over the same tree are byte-identical.
	sort.Slice(ws.Documents, func(i, j int) bool { return ws.Documents[i].Path < ws.Documents[j].Path })
	sort.Strings(ws.Warnings)

	return ws, nil
}

// filePath returns the file name the loader recorded for a parsed file.
func filePath(fset *token.FileSet, file *ast.File) string {
	return fset.Position(file.Package).Filename
}
