package tools

/*
Persists sweep summaries so runs can be compared and tested after the fact:
raw per-trial results as JSON and per-event-count box statistics as CSV
*/

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Raw per-trial results for one event count
type EventCountSummary struct {
	Nevent  int       `json:"nevent"`
	Ranks   []int     `json:"ranks"`
	MaxEigs []float64 `json:"max_eigs"`
}

// Full sweep output plus the configuration that produced it
type SweepSummary struct {
	Mode    string              `json:"mode"`
	Size    int                 `json:"size"`
	Std     float64             `json:"std"`
	Ntrials int                 `json:"ntrials"`
	Seed    int64               `json:"seed"`
	Counts  []EventCountSummary `json:"counts"`
}

// Box-plot statistics of one measured quantity at one event count
type BoxStats struct {
	Nevent int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Store the raw sweep summary to a JSON file
func StoreSummaryJSON(path string, summary *SweepSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %v", err)
	}
	return nil
}

// Retrieves a previously stored sweep summary
func RetrieveSummaryJSON(path string) (*SweepSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary file: %v", err)
	}
	var summary SweepSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse summary file: %v", err)
	}
	return &summary, nil
}

// Store per-event-count box statistics for both measured quantities to a
// CSV file, one row per (quantity, event count)
func StoreBoxStatsCSV(path string, rankStats []BoxStats, eigStats []BoxStats) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Quantity", "Nevent", "Min", "Q1", "Median", "Q3", "Max", "Mean", "SD"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}

	write := func(quantity string, stats []BoxStats) error {
		for _, s := range stats {
			record := []string{
				quantity,
				strconv.Itoa(s.Nevent),
				strconv.FormatFloat(s.Min, 'g', -1, 64),
				strconv.FormatFloat(s.Q1, 'g', -1, 64),
				strconv.FormatFloat(s.Median, 'g', -1, 64),
				strconv.FormatFloat(s.Q3, 'g', -1, 64),
				strconv.FormatFloat(s.Max, 'g', -1, 64),
				strconv.FormatFloat(s.Mean, 'g', -1, 64),
				strconv.FormatFloat(s.StdDev, 'g', -1, 64),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write record: %v", err)
			}
		}
		return nil
	}
	if err := write("rank", rankStats); err != nil {
		return err
	}
	return write("maxeig", eigStats)
}
