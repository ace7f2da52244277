package tools

/*
Renders the study's image artifacts: rank and maximum-eigenvalue box plots
across event counts, cumulative eigenvalue histograms, and single-event
distribution overlays
*/

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Box-plot distribution of a per-trial quantity against event count.
// A non-negative asymptote draws a dashed reference line at that value
// (families whose rank is expected to saturate); pass a negative value to
// omit the line.
func PlotBoxSummary(path string, title string, ylabel string, nevents []int, values [][]float64, asymptote float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Nevent"
	p.Y.Label.Text = ylabel

	names := make([]string, len(nevents))
	for i, nevent := range nevents {
		names[i] = strconv.Itoa(nevent)
		box, err := plotter.NewBoxPlot(vg.Points(10), float64(i), plotter.Values(values[i]))
		if err != nil {
			return fmt.Errorf("failed to build box plot: %v", err)
		}
		p.Add(box)
	}
	p.NominalX(names...)

	if asymptote >= 0 {
		line, err := plotter.NewLine(plotter.XYs{
			{X: -0.5, Y: asymptote},
			{X: float64(len(nevents)) - 0.5, Y: asymptote},
		})
		if err != nil {
			return fmt.Errorf("failed to build reference line: %v", err)
		}
		line.LineStyle.Color = color.RGBA{R: 196, A: 255}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %v", path, err)
	}
	return nil
}

// Histogram of log10(|eig|) - log10(Nevent), accumulated across all trials
// of one event count. A spectrum with no positive magnitudes produces no
// artifact.
func PlotEigHistogram(path string, offsets []float64, nevent int, bins int) error {
	if len(offsets) == 0 {
		return nil
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("eigenvalue spectrum, Nevent=%d", nevent)
	p.X.Label.Text = "log10(|eig|) - log10(Nevent)"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(offsets), bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %v", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %v", path, err)
	}
	return nil
}

// Overlay of one trial's single-event distributions on the shared grid
func PlotSingleEvents(path string, x []float64, draws [][]float64) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("single-event distributions, Nevent=%d", len(draws))
	p.X.Label.Text = "support"
	p.Y.Label.Text = "weight"

	for _, d := range draws {
		pts := make(plotter.XYs, len(x))
		for i := range x {
			pts[i].X = x[i]
			pts[i].Y = d[i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build overlay line: %v", err)
		}
		line.LineStyle.Width = vg.Points(0.5)
		p.Add(line)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %v", path, err)
	}
	return nil
}
