package render

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"namestat/domain/roster"
	"namestat/internal/errors"
)

// crosstabGrid adapts a roster crosstab to the plotter heatmap grid.
// Columns carry name lengths, rows carry initial indexes.
type crosstabGrid struct {
	ct roster.Crosstab
}

func (g crosstabGrid) Dims() (c, r int) {
	return len(g.ct.Lengths), len(g.ct.Initials)
}

func (g crosstabGrid) Z(c, r int) float64 {
	return g.ct.Counts.At(r, c)
}

func (g crosstabGrid) X(c int) float64 {
	return float64(g.ct.Lengths[c])
}

func (g crosstabGrid) Y(r int) float64 {
	return float64(r)
}

// InitialLengthHeatmap renders how initial letters relate to name length
func InitialLengthHeatmap(ct roster.Crosstab, path string) error {
	if ct.Counts == nil {
		return errors.InvalidInput("cannot plot an empty crosstab")
	}

	p := plot.New()
	p.Title.Text = "Initial letter by name length"
	p.X.Label.Text = "Name length"
	p.Y.Label.Text = "Initial letter"

	hm := plotter.NewHeatMap(crosstabGrid{ct: ct}, palette.Heat(12, 1))
	p.Add(hm)

	yTicks := make([]plot.Tick, len(ct.Initials))
	for r, initial := range ct.Initials {
		yTicks[r] = plot.Tick{Value: float64(r), Label: initial}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	xTicks := make([]plot.Tick, len(ct.Lengths))
	for c, length := range ct.Lengths {
		xTicks[c] = plot.Tick{Value: float64(length), Label: strconv.Itoa(length)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)

	if err := p.Save(14*vg.Inch, 8*vg.Inch, path); err != nil {
		return errors.RenderError(path, err)
	}
	return nil
}
