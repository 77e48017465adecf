package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// grid draws dashed lines at every tick of both axes, minor ticks included.
type grid struct {
	Major draw.LineStyle
	Minor draw.LineStyle
}

func newGrid() *grid {
	dashes := []vg.Length{vg.Points(3), vg.Points(3)}
	return &grid{
		Major: draw.LineStyle{Color: color.Gray{170}, Width: vg.Points(0.5), Dashes: dashes},
		Minor: draw.LineStyle{Color: color.Gray{215}, Width: vg.Points(0.5), Dashes: dashes},
	}
}

func (g *grid) style(t plot.Tick) draw.LineStyle {
	if t.IsMinor() {
		return g.Minor
	}
	return g.Major
}

// Plot implements the plot.Plotter interface.
func (g *grid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, t := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		if t.Value < plt.X.Min || t.Value > plt.X.Max {
			continue
		}
		x := trX(t.Value)
		c.StrokeLine2(g.style(t), x, c.Min.Y, x, c.Max.Y)
	}
	for _, t := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
		if t.Value < plt.Y.Min || t.Value > plt.Y.Max {
			continue
		}
		y := trY(t.Value)
		c.StrokeLine2(g.style(t), c.Min.X, y, c.Max.X, y)
	}
}
