// Package importfreq counts how often each import path appears across the
// source files of a Go module or multi-module workspace, producing a
// descending frequency table. Its purpose is to help a codebase owner decide
// which imports are common enough to centralize.
//
// # Pipeline
//
// A run moves through four phases:
//
//  1. Resolve: the target path is resolved to a descriptor file — a go.work
//     (workspace) or go.mod (module). A directory is searched
//     deterministically, preferring go.work over go.mod.
//
//  2. Load: the descriptor's packages are loaded with
//     golang.org/x/tools/go/packages, which evaluates the build configuration
//     and parses every source file. Load problems surface as warnings, not
//     failures.
//
//  3. Extract: a worker pool walks each document's import declarations in
//     parallel, tallying import paths into per-worker counters.
//
//  4. Report: worker counters are merged and the entries sorted by count
//     descending, path ascending on ties.
//
// # Usage
//
// Create an Engine for a target path and count:
//
//	e := importfreq.New("path/to/module")
//	res, err := e.Count(ctx)
//	if err != nil { ... }
//
//	entries := importfreq.Rank(res.Counts, -1)
//	importfreq.RenderPlain(os.Stdout, entries)
//
// # Scan mode
//
// [WithScanMode] bypasses build evaluation entirely: the target directory is
// walked, files are classified by language, and Go files are parsed directly.
// This works without descriptor files or build metadata but is approximate —
// build tags are not honored, so files excluded from every build
// configuration are still counted.
//
// # Generated files
//
// Files carrying the standard "Code generated ... DO NOT EDIT." marker are
// excluded from counting in both modes. They are machine-written aggregations
// whose imports would double-count the hand-written sources.
package importfreq
