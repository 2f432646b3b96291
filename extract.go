package importfreq

import (
	"go/ast"
	"strconv"
)

// ExtractImports returns the import paths declared by a document, in
// declaration order, one entry per import spec. Aliased imports (including
// dot and blank imports) count under the path they import, not the alias.
// Specs whose path literal cannot be unquoted are skipped.
//
// Returns nil for a document with no syntax.
func ExtractImports(doc Document) []string {
	if doc.File == nil {
		return nil
	}
	return importPaths(doc.File)
}

func importPaths(file *ast.File) []string {
	var paths []string
	for _, spec := range file.Imports {
		if spec.Path == nil {
			continue
		}
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path == "" {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// isGeneratedDocument reports whether a document carries the conventional
// "Code generated ... DO NOT EDIT." marker. Generated files are machine
// written aggregations whose imports would double-count their sources.
func isGeneratedDocument(doc Document) bool {
	return doc.File != nil && ast.IsGenerated(doc.File)
}
