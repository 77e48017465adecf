// Package chart draws benchmark series on log-log axes with gonum/plot.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"berkotech.co/rbplot/complexity"
)

// Filename is the name of the image written next to the input CSV.
const Filename = "time_complexity_plot.png"

// Options controls the labels, size and tick density of the chart.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
	// MaxTicks caps the decade subdivision ticks per axis.
	MaxTicks int
}

// DefaultOptions returns a 12×7 inch chart titled for red-black tree benchmarks.
func DefaultOptions() Options {
	return Options{
		Title:    "Time Complexity of Red-Black Tree Insertions and Deletions",
		XLabel:   "Number of elements (n)",
		YLabel:   "Time (seconds)",
		Width:    12 * vg.Inch,
		Height:   7 * vg.Inch,
		MaxTicks: 20,
	}
}

var (
	insertColor    = color.RGBA{B: 255, A: 255}
	deleteColor    = color.RGBA{R: 255, A: 255}
	referenceColor = color.Gray{128}
)

// OutputPath returns where the chart for csvPath is saved.
func OutputPath(csvPath string) string {
	return filepath.Join(filepath.Dir(csvPath), Filename)
}

// New builds the insertion, deletion and reference curves on log-log axes.
func New(s *complexity.Series, opts Options) (*plot.Plot, error) {
	if len(s.N) == 0 {
		return nil, fmt.Errorf("render: %w: no samples", complexity.ErrMalformedData)
	}
	for i, n := range s.N {
		if n <= 0 {
			return nil, fmt.Errorf("render: %w: row %d: n = %v cannot be placed on a log axis",
				complexity.ErrMalformedData, i+1, n)
		}
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.BackgroundColor = color.White
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = sampleTicks{Values: s.N, Limit: opts.MaxTicks}
	p.Y.Tick.Marker = decadeTicker{Limit: opts.MaxTicks}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Add(newGrid())

	curves, err := newCurves(s)
	if err != nil {
		return nil, err
	}
	for _, c := range curves {
		p.Add(c.Line)
		if c.Points == nil {
			p.Legend.Add(c.Name, c.Line)
			continue
		}
		p.Add(c.Points)
		p.Legend.Add(c.Name, c.Line, c.Points)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	p.X.Min, p.X.Max = logRange(s.N)
	p.Y.Min, p.Y.Max = logRange(s.Insert, s.Delete, s.Reference)
	return p, nil
}

// curve is one legend entry. Points is nil for lines without markers.
type curve struct {
	Name   string
	Line   *plotter.Line
	Points *plotter.Scatter
}

func newCurves(s *complexity.Series) ([]curve, error) {
	ins, insPts, err := plotter.NewLinePoints(xys(s.N, s.Insert))
	if err != nil {
		return nil, fmt.Errorf("render: insertion: %w", err)
	}
	ins.Color = insertColor
	insPts.Color = insertColor
	insPts.Shape = draw.CircleGlyph{}

	del, delPts, err := plotter.NewLinePoints(xys(s.N, s.Delete))
	if err != nil {
		return nil, fmt.Errorf("render: deletion: %w", err)
	}
	del.Color = deleteColor
	delPts.Color = deleteColor
	delPts.Shape = draw.CrossGlyph{}

	ref, err := plotter.NewLine(xys(s.N, s.Reference))
	if err != nil {
		return nil, fmt.Errorf("render: reference: %w", err)
	}
	ref.Color = referenceColor
	ref.Dashes = plotutil.Dashes(1)

	return []curve{
		{Name: "Insertion", Line: ins, Points: insPts},
		{Name: "Deletion", Line: del, Points: delPts},
		{Name: "f(n) = n", Line: ref},
	}, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// logRange returns the extent of all values, widened by half a decade each
// way when it is a single point.
func logRange(vs ...[]float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		min = math.Min(min, floats.Min(v))
		max = math.Max(max, floats.Max(v))
	}
	if min == max {
		min /= math.Sqrt(10)
		max *= math.Sqrt(10)
	}
	return min, max
}

// Save encodes p in the format named by path's extension and replaces path
// with the result. Nothing is written if encoding fails.
func Save(p *plot.Plot, opts Options, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	w, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	var b bytes.Buffer
	if _, err := w.WriteTo(&b); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := atomic.WriteFile(path, &b); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
