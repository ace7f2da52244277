package tools

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	want := &SweepSummary{
		Mode:    "random",
		Size:    10,
		Std:     0.1,
		Ntrials: 2,
		Seed:    7,
		Counts: []EventCountSummary{
			{Nevent: 1, Ranks: []int{1, 1}, MaxEigs: []float64{0.5, 0.25}},
			{Nevent: 3, Ranks: []int{3, 2}, MaxEigs: []float64{1.5, 1.25}},
		},
	}
	require.NoError(t, StoreSummaryJSON(path, want))

	got, err := RetrieveSummaryJSON(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRetrieveSummaryMissingFile(t *testing.T) {
	_, err := RetrieveSummaryJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestBoxStatsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	rank := []BoxStats{
		{Nevent: 1, Min: 1, Q1: 1, Median: 1, Q3: 1, Max: 1, Mean: 1},
		{Nevent: 5, Min: 3, Q1: 4, Median: 4, Q3: 5, Max: 5, Mean: 4.2, StdDev: 0.75},
	}
	eig := []BoxStats{
		{Nevent: 1, Min: 0.1, Q1: 0.2, Median: 0.3, Q3: 0.4, Max: 0.9, Mean: 0.35, StdDev: 0.2},
	}
	require.NoError(t, StoreBoxStatsCSV(path, rank, eig))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus one row per (quantity, event count)")
	assert.Equal(t, "Quantity", records[0][0])
	assert.Equal(t, "rank", records[1][0])
	assert.Equal(t, "5", records[2][1])
	assert.Equal(t, "maxeig", records[3][0])
}
