package importfreq

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// simpleCounts is the expected tally for the testdata/simple fixture:
// main.go imports fmt, os, and the util package; util.go imports fmt and
// strings; util_test.go imports testing; gen.go is generated and excluded.
var simpleCounts = map[string]int{
	"fmt":                     2,
	"os":                      1,
	"strings":                 1,
	"testing":                 1,
	"example.com/simple/util": 1,
}

func TestEngine_CountSimpleModule(t *testing.T) {
	res, err := New("testdata/simple").Count(context.Background())
	require.NoError(t, err)

	assert.Equal(t, simpleCounts, res.Counts)
	assert.Equal(t, 1, res.SkippedGenerated)
	assert.Equal(t, 3, res.Documents, "gen.go is excluded from the processed count")
	assert.Equal(t, 6, res.TotalImports())
	assert.Empty(t, res.Warnings)
}

func TestEngine_CountGoWorkWorkspace(t *testing.T) {
	res, err := New("testdata/multi").Count(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"sort": 2, "time": 1}, res.Counts)
	assert.Empty(t, res.Warnings)
}

func TestEngine_ScanModeMatchesBuildMode(t *testing.T) {
	build, err := New("testdata/simple").Count(context.Background())
	require.NoError(t, err)

	scan, err := New("testdata/simple", WithScanMode(true)).Count(context.Background())
	require.NoError(t, err)

	// The fixture has no build tags, so the approximate scan agrees with
	// the build-evaluated load exactly.
	assert.Equal(t, build.Counts, scan.Counts)
	assert.Equal(t, build.SkippedGenerated, scan.SkippedGenerated)
}

func TestEngine_CountIndependentOfWorkerCount(t *testing.T) {
	baseline, err := New("testdata/simple", WithWorkers(1)).Count(context.Background())
	require.NoError(t, err)

	for _, workers := range []int{2, 8, 32} {
		res, err := New("testdata/simple", WithWorkers(workers)).Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, baseline.Counts, res.Counts, "workers=%d", workers)
	}
}

func TestEngine_DeterministicOutput(t *testing.T) {
	var renders []string
	for i := 0; i < 2; i++ {
		res, err := New("testdata/simple").Count(context.Background())
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, RenderPlain(&buf, Rank(res.Counts, -1)))
		renders = append(renders, buf.String())
	}
	assert.Equal(t, renders[0], renders[1], "two runs over unchanged input are byte-identical")
}

func TestEngine_MissingTarget(t *testing.T) {
	_, err := New("testdata/does-not-exist").Count(context.Background())
	require.ErrorIs(t, err, ErrPathNotFound)
}

func TestEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("testdata/simple").Count(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountDocuments_EmptyInput(t *testing.T) {
	tally, skipped, err := countDocuments(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Zero(t, tally.Len())
}
