package core

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/25smoking/heatdot/internal/graph"
)

func sampleSummary() *Summary {
	return &Summary{
		GraphPath:  "assets/graph.dot",
		LogPath:    "assets/dynamic.log",
		OutputPath: "assets/colored_graph.dot",
		Counters:   3,
		MaxCount:   10,
		Stats:      graph.Stats{Lines: 9, Candidates: 4, Recolored: 3, Exempt: 1, PassedThrough: 5},
		Elapsed:    time.Millisecond,
	}
}

func TestSafeRun(t *testing.T) {
	log := zap.NewNop().Sugar()
	ctx := context.Background()

	ran := false
	require.NoError(t, SafeRun(ctx, log, "ok", func(context.Context) error {
		ran = true
		return nil
	}))
	assert.True(t, ran)

	boom := errors.New("boom")
	assert.ErrorIs(t, SafeRun(ctx, log, "fail", func(context.Context) error { return boom }), boom)

	err := SafeRun(ctx, log, "rewrite", func(context.Context) error { panic("bad line") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rewrite")
	assert.Contains(t, err.Error(), "bad line")
}

func TestSafeRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := SafeRun(ctx, zap.NewNop().Sugar(), "aggregate", func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSaveSummary_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, SaveSummary(sampleSummary(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Summary
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *sampleSummary(), got)
}

func TestSaveSummary_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, SaveSummary(sampleSummary(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Recolored", rows[0][7])
	assert.Equal(t, "3", rows[1][7])
	assert.Equal(t, "10", rows[1][4])
}

func TestSaveSummary_BadPath(t *testing.T) {
	err := SaveSummary(sampleSummary(), filepath.Join(t.TempDir(), "missing", "summary.json"))
	assert.Error(t, err)
}
