package render

import (
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"namestat/domain/roster"
	"namestat/internal/analysis"
	"namestat/internal/errors"
)

var barBlue = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
var barCoral = color.RGBA{R: 0xff, G: 0x7f, B: 0x50, A: 0xff}

// LengthHistogram renders the distribution of name lengths, one bin per
// observed character count
func LengthHistogram(table roster.Table, path string) error {
	lengths := table.Lengths()
	if len(lengths) == 0 {
		return errors.InvalidInput("cannot plot an empty length distribution")
	}

	min, max := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	bins := int(max-min) + 1

	p := plot.New()
	p.Title.Text = "Name length distribution"
	p.X.Label.Text = "Number of characters"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(lengths), bins)
	if err != nil {
		return errors.RenderError(path, err)
	}
	hist.FillColor = barBlue
	p.Add(hist)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.RenderError(path, err)
	}
	return nil
}

// InitialBarChart renders the frequency of initial letters, sorted by letter
func InitialBarChart(table roster.Table, path string) error {
	if table.IsEmpty() {
		return errors.InvalidInput("cannot plot initials for an empty roster")
	}

	counts := make(map[string]int)
	for _, row := range table.Rows {
		counts[row.Initial]++
	}
	letters := make([]string, 0, len(counts))
	for letter := range counts {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	values := make(plotter.Values, len(letters))
	for i, letter := range letters {
		values[i] = float64(counts[letter])
	}

	p := plot.New()
	p.Title.Text = "Initial letter frequency"
	p.X.Label.Text = "Initial letter"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return errors.RenderError(path, err)
	}
	bars.Color = barBlue
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(letters...)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.RenderError(path, err)
	}
	return nil
}

// GroupMeanBars renders per-group means as a bar chart, in the order the
// groups are given
func GroupMeanBars(title, yLabel string, groups []analysis.GroupMean, path string) error {
	if len(groups) == 0 {
		return errors.InvalidInput("cannot plot an empty group summary")
	}

	labels := make([]string, len(groups))
	values := make(plotter.Values, len(groups))
	for i, group := range groups {
		labels[i] = group.Group
		values[i] = group.Mean
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return errors.RenderError(path, err)
	}
	bars.Color = barCoral
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.RenderError(path, err)
	}
	return nil
}
