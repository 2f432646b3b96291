package importfreq

import (
	"context"
	"fmt"
	"time"
)

// Engine orchestrates a counting run: target resolution, workspace loading,
// parallel import extraction, and aggregation.
type Engine struct {
	target  string
	workers int
	scan    bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers caps the number of parallel extraction workers. Values below
// one fall back to the host's CPU count.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithScanMode switches the Engine to direct directory scanning instead of
// build-evaluated loading. See [ScanDirectory] for the fidelity trade-off.
func WithScanMode(scan bool) Option {
	return func(e *Engine) {
		e.scan = scan
	}
}

// New creates an Engine targeting path, which may be a descriptor file or a
// directory to search.
func New(target string, opts ...Option) *Engine {
	e := &Engine{target: target}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result holds everything a run produced.
type Result struct {
	// Counts maps each observed import path to its occurrence count.
	Counts map[string]int
	// Warnings are all non-fatal diagnostics, load-time and extraction-time,
	// in a stable order.
	Warnings []string
	// Documents is the number of source files processed.
	Documents int
	// Packages is the number of packages the loader reported.
	Packages int
	// SkippedGenerated is the number of generated files excluded.
	SkippedGenerated int
	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}

// TotalImports returns the sum of all counts.
func (r *Result) TotalImports() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Count runs the pipeline to completion. Load problems are warnings on the
// Result; the error return is reserved for the fatal cases enumerated in
// errors.go plus context cancellation.
func (e *Engine) Count(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ws, err := e.loadWorkspace(ctx)
	if err != nil {
		return nil, err
	}

	tally, skippedGenerated, err := countDocuments(ctx, ws.Documents, e.workers)
	if err != nil {
		return nil, fmt.Errorf("extract imports: %w", err)
	}

	return &Result{
		Counts:           tally.Snapshot(),
		Warnings:         ws.Warnings,
		Documents:        len(ws.Documents) - skippedGenerated,
		Packages:         ws.Packages,
		SkippedGenerated: skippedGenerated,
		Elapsed:          time.Since(start),
	}, nil
}

func (e *Engine) loadWorkspace(ctx context.Context) (*Workspace, error) {
	if e.scan {
		return ScanDirectory(ctx, e.target)
	}
	item, err := ResolveTarget(e.target)
	if err != nil {
		return nil, err
	}
	return LoadWorkspace(ctx, item)
}
