package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gwcomplexity/config"
)

/*
Command-line interface for the Fisher-matrix complexity study.
All configuration is validated before any simulation runs; bad flags abort
with a non-zero exit.
*/

// Parses "start,stop,step" into a half-open integer range
func parseNeventRange(s string) (int, int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want start,stop,step, got %q", s)
	}
	vals := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("bad integer %q: %v", part, err)
		}
		vals[i] = v
	}
	if vals[0] < 1 {
		return 0, 0, 0, fmt.Errorf("start must be at least 1, got %d", vals[0])
	}
	if vals[2] < 1 {
		return 0, 0, 0, fmt.Errorf("step must be positive, got %d", vals[2])
	}
	return vals[0], vals[1], vals[2], nil
}

// Parses "start,end" GPS seconds
func parseGPSRange(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want start,end, got %q", s)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad GPS start %q: %v", parts[0], err)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad GPS end %q: %v", parts[1], err)
	}
	return start, end, nil
}

func main() {
	// Define the main mode flag
	mode := flag.String("mode", "", "Generator family: random, gaussian, vonmises, beta, skymap")

	// Flags for the sweep
	size := flag.Int("size", config.DefaultSize, "Support points per single-event distribution")
	neventRange := flag.String("Nevent-range", config.DefaultNeventRange, "Event counts to sweep as start,stop,step (stop exclusive)")
	ntrials := flag.Int("Ntrials", config.DefaultNtrials, "Independent trials per event count")
	std := flag.Float64("std", config.DefaultStd, "Spread parameter for the bump families")
	seed := flag.Int64("seed", 0, "Base RNG seed; 0 derives one from the clock")
	threads := flag.Int("threads", 1, "Concurrent trials per event count")

	// Flags for skymap mode
	ifo := flag.String("ifo", "", "Comma-separated detector ids for skymap mode (H1,L1,V1,K1)")
	gpsRange := flag.String("gps-range", config.DefaultGPSRange, "GPS time range for skymap mode as start,end")
	nside := flag.Int("nside", config.DefaultNside, "Working sky resolution before downsampling")

	// Flags for reporting
	plotSingleEvents := flag.Bool("plot-single-events", false, "Render each trial's single-event distributions")
	eigvals := flag.Bool("eigvals", false, "Render per-event-count eigenvalue histograms")
	outputDir := flag.String("output-dir", ".", "Directory for image and summary artifacts")
	tag := flag.String("tag", "", "Suffix appended to artifact filenames")

	flag.Parse()

	if *mode == "" {
		fmt.Println("Please provide a -mode (random, gaussian, vonmises, beta, skymap)")
		os.Exit(1)
	}

	start, stop, step, err := parseNeventRange(*neventRange)
	if err != nil {
		log.Fatalf("Bad -Nevent-range: %v", err)
	}
	gpsStart, gpsEnd, err := parseGPSRange(*gpsRange)
	if err != nil {
		log.Fatalf("Bad -gps-range: %v", err)
	}
	if *ntrials < 1 {
		log.Fatalf("Bad -Ntrials: must be at least 1, got %d", *ntrials)
	}
	if *threads < 1 {
		log.Fatalf("Bad -threads: must be at least 1, got %d", *threads)
	}

	var ifos []string
	if *ifo != "" {
		ifos = strings.Split(*ifo, ",")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *tag != "" && !strings.HasPrefix(*tag, "-") {
		*tag = "-" + *tag
	}

	cfg := SweepConfig{
		Mode:             *mode,
		Size:             *size,
		NeventStart:      start,
		NeventStop:       stop,
		NeventStep:       step,
		Ntrials:          *ntrials,
		Std:              *std,
		Ifos:             ifos,
		GPSStart:         gpsStart,
		GPSEnd:           gpsEnd,
		Nside:            *nside,
		Seed:             *seed,
		Threads:          *threads,
		PlotSingleEvents: *plotSingleEvents,
		PlotEigvals:      *eigvals,
		OutputDir:        *outputDir,
		Tag:              *tag,
	}

	sweep, err := NewSweep(cfg)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	summary, err := sweep.Run()
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}

	if err := sweep.Report(summary); err != nil {
		log.Fatalf("Report failed: %v", err)
	}
}
