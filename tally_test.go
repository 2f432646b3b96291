package importfreq

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally_AddAndSnapshot(t *testing.T) {
	tally := NewTally()
	tally.Add("fmt")
	tally.Add("fmt")
	tally.Add("os")

	snap := tally.Snapshot()
	assert.Equal(t, map[string]int{"fmt": 2, "os": 1}, snap)
	assert.Equal(t, 2, tally.Len())
}

func TestTally_SnapshotIsACopy(t *testing.T) {
	tally := NewTally()
	tally.Add("fmt")

	snap := tally.Snapshot()
	snap["fmt"] = 99
	tally.Add("fmt")

	assert.Equal(t, map[string]int{"fmt": 2}, tally.Snapshot())
}

func TestTally_AddAll(t *testing.T) {
	tally := NewTally()
	tally.AddAll([]string{"fmt", "os", "fmt"})
	tally.AddAll(nil)

	assert.Equal(t, map[string]int{"fmt": 2, "os": 1}, tally.Snapshot())
}

func TestTally_Merge(t *testing.T) {
	a := NewTally()
	a.AddAll([]string{"fmt", "os"})
	b := NewTally()
	b.AddAll([]string{"fmt", "strings"})

	a.Merge(b)
	assert.Equal(t, map[string]int{"fmt": 2, "os": 1, "strings": 1}, a.Snapshot())
}

func TestTally_ConcurrentAdds(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 500

	tally := NewTally()
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				tally.Add("shared")
				tally.Add(fmt.Sprintf("goroutine-%d-%d", g, i%5))
			}
		}()
	}
	wg.Wait()

	snap := tally.Snapshot()
	// No lost updates regardless of interleaving.
	require.Equal(t, goroutines*perGoroutine, snap["shared"])
	for g := 0; g < goroutines; g++ {
		for i := 0; i < 5; i++ {
			assert.Equal(t, perGoroutine/5, snap[fmt.Sprintf("goroutine-%d-%d", g, i)])
		}
	}
}
