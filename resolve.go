package importfreq

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// WorkItemKind classifies a resolved descriptor file.
type WorkItemKind string

const (
	// KindWorkspace is a go.work file describing a multi-module workspace.
	KindWorkspace WorkItemKind = "workspace"
	// KindModule is a go.mod file describing a single module.
	KindModule WorkItemKind = "module"
)

// WorkItem is the concrete descriptor file a run will load.
type WorkItem struct {
	// Path is the absolute path of the descriptor file.
	Path string
	// Kind reports whether the descriptor is a workspace or a module.
	Kind WorkItemKind
}

// Dir returns the directory containing the descriptor.
func (w WorkItem) Dir() string {
	return filepath.Dir(w.Path)
}

// descriptor file names, in preference order. A workspace match anywhere
// beats a module match anywhere.
var descriptorNames = []string{"go.work", "go.mod"}

// skipDirs are directory names excluded from descriptor search. Vendored
// trees carry their own go.mod files that must never win resolution.
var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
}

// ResolveTarget resolves a user-supplied path to the descriptor file to load.
//
// A path naming a go.work or go.mod file resolves to that file directly. A
// directory is searched recursively in lexical walk order, so resolution is
// deterministic for a given tree; the first go.work found wins over any
// go.mod. Hidden directories and skipDirs are not descended into.
//
// Returns ErrPathNotFound, ErrNotDescriptor, or ErrNoDescriptor for the
// three user-correctable failure cases.
func ResolveTarget(path string) (WorkItem, error) {
	if path == "" {
		return WorkItem{}, fmt.Errorf("resolve target: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return WorkItem{}, fmt.Errorf("resolve target %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return WorkItem{}, fmt.Errorf("%w: %s", ErrPathNotFound, abs)
	}

	if !info.IsDir() {
		kind, ok := kindForName(filepath.Base(abs))
		if !ok {
			return WorkItem{}, fmt.Errorf("%w: %s", ErrNotDescriptor, abs)
		}
		return WorkItem{Path: abs, Kind: kind}, nil
	}

	return searchDescriptor(abs)
}

// searchDescriptor walks root looking for descriptor files. WalkDir visits
// entries in lexical order, so the first match per name is stable across
// runs on the same tree.
func searchDescriptor(root string) (WorkItem, error) {
	found := make(map[string]string, len(descriptorNames))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree: keep searching the rest
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if _, ok := kindForName(name); ok {
			if _, seen := found[name]; !seen {
				found[name] = path
			}
			// A workspace match ends the search early.
			if name == descriptorNames[0] {
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return WorkItem{}, fmt.Errorf("search %s: %w", root, err)
	}

	for _, name := range descriptorNames {
		if path, ok := found[name]; ok {
			kind, _ := kindForName(name)
			return WorkItem{Path: path, Kind: kind}, nil
		}
	}
	return WorkItem{}, fmt.Errorf("%w under %s", ErrNoDescriptor, root)
}

// kindForName maps a descriptor base name to its kind.
func kindForName(name string) (WorkItemKind, bool) {
	switch name {
	case "go.work":
		return KindWorkspace, true
	case "go.mod":
		return KindModule, true
	default:
		return "", false
	}
}
