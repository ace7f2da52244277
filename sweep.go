package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"gwcomplexity/config"
	"gwcomplexity/tools"
)

/*
Drives the Monte-Carlo sweep: for each event count in the configured range
and for each trial, draw and accumulate single-event distributions, analyze
the resulting Fisher matrix, and collect the per-trial results.
Trials are independent; with -threads > 1 the trials of one event count run
concurrently, one simulator buffer per worker.
*/

type SweepConfig struct {
	Mode        string
	Size        int
	NeventStart int
	NeventStop  int //exclusive
	NeventStep  int
	Ntrials     int
	Std         float64

	Ifos     []string
	GPSStart float64
	GPSEnd   float64
	Nside    int

	Seed    int64
	Threads int

	PlotSingleEvents bool
	PlotEigvals      bool
	OutputDir        string
	Tag              string
}

type Sweep struct {
	cfg SweepConfig
	gen tools.Generator
}

// Builds the sweep, validating the full configuration before any
// simulation runs
func NewSweep(cfg SweepConfig) (*Sweep, error) {
	if cfg.NeventStep < 1 {
		return nil, fmt.Errorf("invalid Nevent step %d: must be positive", cfg.NeventStep)
	}
	if cfg.Ntrials < 1 {
		return nil, fmt.Errorf("invalid Ntrials %d: must be at least 1", cfg.Ntrials)
	}
	var sky *tools.SkySimulator
	if cfg.Mode == "skymap" {
		var err error
		sky, err = tools.NewSkySimulator(cfg.Ifos, cfg.GPSStart, cfg.GPSEnd, cfg.Nside)
		if err != nil {
			return nil, err
		}
	}
	gen, err := tools.NewGenerator(cfg.Mode, cfg.Size, cfg.Std, sky)
	if err != nil {
		return nil, err
	}
	return &Sweep{cfg: cfg, gen: gen}, nil
}

// Runs the full sweep and returns the collected raw summary
func (s *Sweep) Run() (*tools.SweepSummary, error) {
	runLog, err := tools.OpenRunLog(s.artifactPath(fmt.Sprintf(config.RunLogTemplate, config.BasePrefix, s.cfg.Tag)))
	if err != nil {
		return nil, err
	}
	defer runLog.Close()

	summary := &tools.SweepSummary{
		Mode:    s.cfg.Mode,
		Size:    s.cfg.Size,
		Std:     s.cfg.Std,
		Ntrials: s.cfg.Ntrials,
		Seed:    s.cfg.Seed,
	}

	for nevent := s.cfg.NeventStart; nevent < s.cfg.NeventStop; nevent += s.cfg.NeventStep {
		log.Println("____________________________________________________")
		log.Println("Running", s.cfg.Ntrials, "trials at Nevent =", nevent)

		results := s.runTrials(nevent)

		count := tools.EventCountSummary{Nevent: nevent}
		var offsets []float64
		for t, res := range results {
			count.Ranks = append(count.Ranks, res.Rank)
			count.MaxEigs = append(count.MaxEigs, res.MaxEig)
			runLog.Record(fmt.Sprintf("nevent=%d trial=%d rank=%d maxeig=%g", nevent, t, res.Rank, res.MaxEig))

			if s.cfg.PlotEigvals {
				offsets = append(offsets, tools.LogEigOffsets(res.Eigs, nevent)...)
			}
			if s.cfg.PlotSingleEvents {
				path := s.artifactPath(fmt.Sprintf(config.TrialPlotTemplate,
					config.BasePrefix, s.cfg.Tag, "events", s.cfg.Size, nevent, t))
				if err := tools.PlotSingleEvents(path, res.Grid, res.Draws); err != nil {
					return nil, err
				}
			}
		}
		summary.Counts = append(summary.Counts, count)

		if s.cfg.PlotEigvals {
			path := s.artifactPath(fmt.Sprintf(config.NeventPlotTemplate,
				config.BasePrefix, s.cfg.Tag, "eigvals", s.cfg.Size, nevent))
			if err := tools.PlotEigHistogram(path, offsets, nevent, config.EigHistogramBins); err != nil {
				return nil, err
			}
		}
	}
	return summary, nil
}

// Runs the trials of one event count, sequentially or across a bounded
// worker group. Results land at their trial index either way, so the
// collected order never depends on scheduling.
func (s *Sweep) runTrials(nevent int) []tools.TrialResult {
	results := make([]tools.TrialResult, s.cfg.Ntrials)

	if s.cfg.Threads <= 1 {
		sim := tools.NewTrialSimulator(s.gen, s.cfg.PlotEigvals, s.cfg.PlotSingleEvents)
		for t := range results {
			rng := rand.New(rand.NewSource(s.trialSeed(nevent, t)))
			results[t] = sim.RunTrial(nevent, rng)
		}
		return results
	}

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Threads)
	for t := range results {
		t := t
		g.Go(func() error {
			//Each worker owns its accumulator buffer
			sim := tools.NewTrialSimulator(s.gen, s.cfg.PlotEigvals, s.cfg.PlotSingleEvents)
			rng := rand.New(rand.NewSource(s.trialSeed(nevent, t)))
			results[t] = sim.RunTrial(nevent, rng)
			return nil
		})
	}
	_ = g.Wait() //workers never return errors
	return results
}

// Derives one deterministic seed per (event count, trial) so a fixed base
// seed reproduces every trial regardless of thread count
func (s *Sweep) trialSeed(nevent int, trial int) int64 {
	return s.cfg.Seed + int64(nevent)<<20 + int64(trial)
}

func (s *Sweep) artifactPath(name string) string {
	return filepath.Join(s.cfg.OutputDir, name)
}
