package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gwcomplexity/tools"
)

func testConfig(dir string) SweepConfig {
	return SweepConfig{
		Mode:        "random",
		Size:        10,
		NeventStart: 1,
		NeventStop:  5,
		NeventStep:  1,
		Ntrials:     3,
		Std:         0.1,
		Seed:        7,
		Threads:     1,
		OutputDir:   dir,
	}
}

func TestSweepEndToEnd(t *testing.T) {
	cfg := testConfig(t.TempDir())
	sweep, err := NewSweep(cfg)
	require.NoError(t, err)

	summary, err := sweep.Run()
	require.NoError(t, err)
	require.Len(t, summary.Counts, 4, "half-open range 1..5 step 1")

	for i, count := range summary.Counts {
		assert.Equal(t, i+1, count.Nevent)
		require.Len(t, count.Ranks, cfg.Ntrials)
		require.Len(t, count.MaxEigs, cfg.Ntrials)

		limit := count.Nevent
		if limit > cfg.Size {
			limit = cfg.Size
		}
		for trial, rank := range count.Ranks {
			assert.LessOrEqual(t, rank, limit, "nevent=%d trial=%d", count.Nevent, trial)
			if count.Nevent == 1 {
				assert.Equal(t, 1, rank, "trial=%d", trial)
			}
			assert.Greater(t, count.MaxEigs[trial], 0.0)
		}
	}
}

func TestSweepReachesFullRank(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.NeventStart, cfg.NeventStop = 10, 11
	sweep, err := NewSweep(cfg)
	require.NoError(t, err)

	summary, err := sweep.Run()
	require.NoError(t, err)
	require.Len(t, summary.Counts, 1)
	for trial, rank := range summary.Counts[0].Ranks {
		assert.Equal(t, cfg.Size, rank, "trial=%d", trial)
	}
}

func TestSweepRepeatable(t *testing.T) {
	cfg1 := testConfig(t.TempDir())
	cfg2 := testConfig(t.TempDir())

	s1, err := NewSweep(cfg1)
	require.NoError(t, err)
	s2, err := NewSweep(cfg2)
	require.NoError(t, err)

	sum1, err := s1.Run()
	require.NoError(t, err)
	sum2, err := s2.Run()
	require.NoError(t, err)

	assert.Equal(t, sum1.Counts, sum2.Counts, "a fixed seed reproduces the sweep exactly")
}

func TestSweepDeterministicAcrossThreadCounts(t *testing.T) {
	cfg1 := testConfig(t.TempDir())
	cfg2 := testConfig(t.TempDir())
	cfg2.Threads = 4

	s1, err := NewSweep(cfg1)
	require.NoError(t, err)
	s2, err := NewSweep(cfg2)
	require.NoError(t, err)

	sum1, err := s1.Run()
	require.NoError(t, err)
	sum2, err := s2.Run()
	require.NoError(t, err)

	require.Len(t, sum2.Counts, len(sum1.Counts))
	for i := range sum1.Counts {
		assert.Equal(t, sum1.Counts[i].Ranks, sum2.Counts[i].Ranks, "nevent=%d", sum1.Counts[i].Nevent)
		assert.Equal(t, sum1.Counts[i].MaxEigs, sum2.Counts[i].MaxEigs, "nevent=%d", sum1.Counts[i].Nevent)
	}
}

func TestNewSweepConfigErrors(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Mode = "fourier"
	_, err := NewSweep(cfg)
	require.Error(t, err, "unknown mode fails before any simulation")

	cfg = testConfig(t.TempDir())
	cfg.Mode = "skymap" //no detectors configured
	cfg.Nside = 8
	cfg.GPSEnd = 1000
	_, err = NewSweep(cfg)
	require.Error(t, err, "skymap without detectors fails before any simulation")
}

func TestReportWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	sweep, err := NewSweep(cfg)
	require.NoError(t, err)

	summary, err := sweep.Run()
	require.NoError(t, err)
	require.NoError(t, sweep.Report(summary))

	for _, name := range []string{
		"investigate-complexity-rank-size10.png",
		"investigate-complexity-maxeig-size10.png",
		"investigate-complexity-summary-size10.json",
		"investigate-complexity-summary-size10.csv",
		"investigate-complexity-run.log",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	stored, err := tools.RetrieveSummaryJSON(filepath.Join(dir, "investigate-complexity-summary-size10.json"))
	require.NoError(t, err)
	assert.Equal(t, summary.Mode, stored.Mode)
	assert.Equal(t, summary.Counts, stored.Counts)
}

func TestSweepDiagnosticArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.NeventStop = 3
	cfg.Ntrials = 2
	cfg.PlotEigvals = true
	cfg.PlotSingleEvents = true

	sweep, err := NewSweep(cfg)
	require.NoError(t, err)
	_, err = sweep.Run()
	require.NoError(t, err)

	for nevent := 1; nevent < 3; nevent++ {
		hist := fmt.Sprintf("investigate-complexity-eigvals-size10-nevent%d.png", nevent)
		_, err := os.Stat(filepath.Join(dir, hist))
		require.NoError(t, err, hist)
		for trial := 0; trial < 2; trial++ {
			overlay := fmt.Sprintf("investigate-complexity-events-size10-nevent%d-trial%d.png", nevent, trial)
			_, err := os.Stat(filepath.Join(dir, overlay))
			require.NoError(t, err, overlay)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := summarize(5, []float64{3, 1, 5, 2, 4})
	assert.Equal(t, 5, s.Nevent)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 3.0, s.Median)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.LessOrEqual(t, s.Q1, s.Median)
	assert.LessOrEqual(t, s.Median, s.Q3)
}

func TestParseNeventRange(t *testing.T) {
	start, stop, step, err := parseNeventRange("1,1000,10")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1000, 10}, []int{start, stop, step})

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,2,3", "0,10,1", "1,10,0"} {
		_, _, _, err := parseNeventRange(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestParseGPSRange(t *testing.T) {
	start, end, err := parseGPSRange("1126051217,1137254417")
	require.NoError(t, err)
	assert.Equal(t, 1126051217.0, start)
	assert.Equal(t, 1137254417.0, end)

	for _, bad := range []string{"", "1", "1,2,3", "x,2"} {
		_, _, err := parseGPSRange(bad)
		require.Error(t, err, "input %q", bad)
	}
}
