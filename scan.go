package importfreq

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/src-d/enry/v2"
)

// sourceLanguages are the non-Go languages worth a skip warning in scan
// mode. Documentation and data files are skipped silently.
var sourceLanguages = map[string]bool{
	"C":          true,
	"C++":        true,
	"C#":         true,
	"Java":       true,
	"JavaScript": true,
	"TypeScript": true,
	"Python":     true,
	"Ruby":       true,
	"Rust":       true,
	"PHP":        true,
}

// ScanDirectory builds a Workspace by walking root directly, without build
// evaluation. Files are classified with enry; Go files are parsed up to
// their import declarations. Non-Go source files produce one aggregated
// skip warning per language.
//
// Scan results are approximate relative to a build-evaluated load: build
// tags are not honored, so files excluded from every build configuration
// still count.
func ScanDirectory(ctx context.Context, root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, abs)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: not a directory", abs)
	}

	ws := &Workspace{Dir: abs}
	fset := token.NewFileSet()
	skipped := make(map[string]int) // language -> file count

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			ws.Warnings = append(ws.Warnings, fmt.Sprintf("scan %s: %v", path, walkErr))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, _ := filepath.Rel(abs, path)
		if d.IsDir() {
			name := d.Name()
			if path != abs && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if enry.IsVendor(filepath.ToSlash(rel)) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			ws.Warnings = append(ws.Warnings, fmt.Sprintf("read %s: %v", path, err))
			return nil
		}
		lang := enry.GetLanguage(filepath.Base(path), content)
		if lang != "Go" {
			if sourceLanguages[lang] {
				skipped[lang]++
			}
			return nil
		}

		doc := Document{Path: path, Language: "go"}
		file, err := parser.ParseFile(fset, path, content, parser.ImportsOnly|parser.ParseComments)
		if err != nil {
			ws.Warnings = append(ws.Warnings, fmt.Sprintf("parse %s: %v", path, err))
		} else {
			doc.File = file
		}
		ws.Documents = append(ws.Documents, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", abs, err)
	}

	for lang, n := range skipped {
		ws.Warnings = append(ws.Warnings, fmt.Sprintf("skipped %d %s file(s): only Go imports are counted", n, lang))
	}

	// One synthetic package per directory keeps the status line meaningful.
	dirs := make(map[string]bool)
	for _, doc := range ws.Documents {
		dirs[filepath.Dir(doc.Path)] = true
	}
	ws.Packages = len(dirs)

	sort.Slice(ws.Documents, func(i, j int) bool { return ws.Documents[i].Path < ws.Documents[j].Path })
	sort.Strings(ws.Warnings)

	return ws, nil
}
