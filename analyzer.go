package main

import (
	"fmt"
	"log"

	"github.com/montanaflynn/stats"

	"gwcomplexity/config"
	"gwcomplexity/tools"
)

/*
Aggregates per-trial results into cross-trial distributions and emits the
end-of-sweep reports: box-plot summaries of rank and maximum eigenvalue
against event count, persisted raw summaries, and console statistics.
*/

// Box statistics over one slice of per-trial values
func summarize(nevent int, values []float64) tools.BoxStats {
	min, _ := stats.Min(values)
	q1, _ := stats.Percentile(values, 25)
	median, _ := stats.Median(values)
	q3, _ := stats.Percentile(values, 75)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	sd, _ := stats.StandardDeviation(values)
	return tools.BoxStats{
		Nevent: nevent,
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
		Mean:   mean,
		StdDev: sd,
	}
}

func ranksAsFloats(ranks []int) []float64 {
	out := make([]float64, len(ranks))
	for i, r := range ranks {
		out[i] = float64(r)
	}
	return out
}

// Emits the summary reports and persists the raw sweep results
func (s *Sweep) Report(summary *tools.SweepSummary) error {
	nevents := make([]int, 0, len(summary.Counts))
	rankValues := make([][]float64, 0, len(summary.Counts))
	eigValues := make([][]float64, 0, len(summary.Counts))
	var rankStats, eigStats []tools.BoxStats

	for _, count := range summary.Counts {
		ranks := ranksAsFloats(count.Ranks)
		nevents = append(nevents, count.Nevent)
		rankValues = append(rankValues, ranks)
		eigValues = append(eigValues, count.MaxEigs)
		rankStats = append(rankStats, summarize(count.Nevent, ranks))
		eigStats = append(eigStats, summarize(count.Nevent, count.MaxEigs))
	}

	for i, rs := range rankStats {
		log.Println("Nevent:", rs.Nevent,
			"| Median Rank:", rs.Median,
			"| Median Max Eig:", eigStats[i].Median)
	}

	//Known asymptote: rank saturates at the grid size for every family
	//except gaussian, whose scaling is not analytically understood
	asymptote := -1.0
	if s.gen.Saturates() {
		asymptote = float64(s.cfg.Size)
	}

	rankPath := s.artifactPath(fmt.Sprintf(config.SummaryPlotTemplate,
		config.BasePrefix, s.cfg.Tag, "rank", s.cfg.Size))
	if err := tools.PlotBoxSummary(rankPath, s.cfg.Mode+" rank vs Nevent", "rank",
		nevents, rankValues, asymptote); err != nil {
		return err
	}

	eigPath := s.artifactPath(fmt.Sprintf(config.SummaryPlotTemplate,
		config.BasePrefix, s.cfg.Tag, "maxeig", s.cfg.Size))
	if err := tools.PlotBoxSummary(eigPath, s.cfg.Mode+" max |eig| vs Nevent", "max |eig|",
		nevents, eigValues, -1); err != nil {
		return err
	}

	jsonPath := s.artifactPath(fmt.Sprintf(config.SummaryJSONTemplate,
		config.BasePrefix, s.cfg.Tag, s.cfg.Size))
	if err := tools.StoreSummaryJSON(jsonPath, summary); err != nil {
		return err
	}

	csvPath := s.artifactPath(fmt.Sprintf(config.SummaryCSVTemplate,
		config.BasePrefix, s.cfg.Tag, s.cfg.Size))
	if err := tools.StoreBoxStatsCSV(csvPath, rankStats, eigStats); err != nil {
		return err
	}

	log.Println("Wrote summaries to", jsonPath, "and", csvPath)
	return nil
}
