package importfreq

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// countDocuments fans extraction out across a worker pool and merges the
// per-worker tallies in a single fan-in step:
//
//	Phase A (serial):   fill a buffered work channel with documents.
//	Phase B (parallel): each worker extracts imports into its own Tally.
//	Phase C (serial):   merge worker tallies into the final Tally.
//
// Final counts are independent of worker count and completion order. The
// second return value is the number of generated documents skipped.
// Cancellation is checked per document; a cancelled run returns ctx.Err().
func countDocuments(ctx context.Context, docs []Document, workers int) (*Tally, int, error) {
	total := NewTally()
	if len(docs) == 0 {
		return total, 0, ctx.Err()
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(docs))

	workCh := make(chan Document, len(docs))
	for _, doc := range docs {
		workCh <- doc
	}
	close(workCh)

	tallyCh := make(chan *Tally, workers)
	var skippedGenerated atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := NewTally()
			for doc := range workCh {
				if ctx.Err() != nil {
					break
				}
				if isGeneratedDocument(doc) {
					skippedGenerated.Add(1)
					continue
				}
				local.AddAll(ExtractImports(doc))
			}
			tallyCh <- local
		}()
	}
	wg.Wait()
	close(tallyCh)

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	for local := range tallyCh {
		total.Merge(local)
	}
	return total, int(skippedGenerated.Load()), nil
}
