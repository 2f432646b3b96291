package importfreq

import (
	"maps"
	"sync"
)

// Tally is a concurrency-safe mapping from import path to occurrence count.
//
// The extraction pipeline gives each worker its own Tally and merges them in
// a single fan-in step, so the mutex is uncontended on the hot path; it still
// makes every operation safe under arbitrary concurrent use.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add records one occurrence of path.
func (t *Tally) Add(path string) {
	t.mu.Lock()
	t.counts[path]++
	t.mu.Unlock()
}

// AddAll records one occurrence of every path in paths.
func (t *Tally) AddAll(paths []string) {
	t.mu.Lock()
	for _, p := range paths {
		t.counts[p]++
	}
	t.mu.Unlock()
}

// Merge folds other's counts into t. The other Tally must no longer be
// receiving writes.
func (t *Tally) Merge(other *Tally) {
	t.mu.Lock()
	for path, n := range other.counts {
		t.counts[path] += n
	}
	t.mu.Unlock()
}

// Len returns the number of distinct paths recorded.
func (t *Tally) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.counts)
}

// Snapshot returns a point-in-time copy of the counts.
func (t *Tally) Snapshot() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return maps.Clone(t.counts)
}
