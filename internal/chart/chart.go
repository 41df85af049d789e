// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package chart renders static line and grouped-bar charts to PNG images
// using gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type Kind int

const (
	// Line draws each series as a polyline with a glyph at every point.
	Line Kind = iota

	// GroupedBar draws one group of side-by-side bars per category, one bar
	// per series.
	GroupedBar
)

// Marker selects the glyph drawn at each point of a line series.
type Marker int

const (
	Circle Marker = iota
	Square
	Triangle
)

func (m Marker) glyph() draw.GlyphDrawer {
	switch m {
	case Square:
		return draw.BoxGlyph{}
	case Triangle:
		return draw.TriangleGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}

// Series is one named sequence of points. X is ignored by GroupedBar charts,
// which place the ith Y value in the ith category.
type Series struct {
	Label  string
	Marker Marker
	X      []float64
	Y      []float64
}

// Reference is a horizontal line drawn across the whole X range.
type Reference struct {
	Y     float64
	Label string
}

// DefaultBarWidth is the width of a single bar in category units.
const DefaultBarWidth = 0.2

// Chart describes one figure.
type Chart struct {
	Kind       Kind
	Title      string
	XAxisLabel string
	YAxisLabel string
	XLog       bool
	YLog       bool
	Series     []Series
	References []Reference

	// Categories labels the bar groups of a GroupedBar chart.
	Categories []string

	// BarWidth is the width of each bar of a GroupedBar chart. Zero means
	// DefaultBarWidth.
	BarWidth float64

	// FileName is the base name of the image written by Save.
	FileName string
}

// referenceColor is used for all reference lines.
var referenceColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}

// Plot validates the chart and builds the corresponding plot.
func (c *Chart) Plot() (*plot.Plot, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	colors, err := seriesColors(len(c.Series))
	if err != nil {
		return nil, err
	}

	p := setupPlot(c)
	switch c.Kind {
	case Line:
		err = addLines(p, c, colors)
	case GroupedBar:
		err = addBars(p, c, colors)
	}
	if err != nil {
		return nil, err
	}
	addReferences(p, c)
	widenLogRange(&p.X, c.XLog)
	widenLogRange(&p.Y, c.YLog)
	return p, nil
}

// widenLogRange opens up a log axis whose data collapsed to a single value.
// gonum pads such a range by one unit on each side, which puts the minimum at
// or below zero.
func widenLogRange(a *plot.Axis, log bool) {
	if log && a.Min == a.Max {
		a.Min /= 10
		a.Max *= 10
	}
}

func (c *Chart) validate() error {
	switch c.Kind {
	case Line, GroupedBar:
	default:
		return fmt.Errorf("%w %d", ErrUnknownKind, int(c.Kind))
	}
	if len(c.Series) == 0 {
		return ErrNoSeries
	}
	if c.Kind == GroupedBar && c.YLog {
		return ErrLogBars
	}

	for _, s := range c.Series {
		if len(s.Y) == 0 {
			return fmt.Errorf("%w: series %q has no points", ErrNoSeries, s.Label)
		}
		switch c.Kind {
		case Line:
			if len(s.X) != len(s.Y) {
				return fmt.Errorf("%w: series %q has %d X values and %d Y values",
					ErrLengthMismatch, s.Label, len(s.X), len(s.Y))
			}
			if err := checkValues(s.Label, "X", s.X, c.XLog); err != nil {
				return err
			}
		case GroupedBar:
			if len(s.Y) != len(c.Categories) {
				return fmt.Errorf("%w: series %q has %d values for %d categories",
					ErrLengthMismatch, s.Label, len(s.Y), len(c.Categories))
			}
		}
		if err := checkValues(s.Label, "Y", s.Y, c.YLog); err != nil {
			return err
		}
	}

	for _, r := range c.References {
		if err := checkValues(r.Label, "Y", []float64{r.Y}, c.YLog); err != nil {
			return err
		}
	}
	return nil
}

func checkValues(label, axis string, values []float64, log bool) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("series %q %s[%d]: %w: %v", label, axis, i, ErrNonFinite, v)
		}
		if log && v <= 0 {
			return fmt.Errorf("series %q %s[%d]: %w: %v", label, axis, i, ErrNonPositive, v)
		}
	}
	return nil
}

func seriesColors(n int) ([]color.Color, error) {
	// Qualitative brewer palettes start at three colors.
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Dark2", max(n, 3))
	if err != nil {
		return nil, err
	}
	return palette.Colors(), nil
}

func setupPlot(c *Chart) *plot.Plot {
	p := plot.New()

	p.Title.Text = c.Title
	p.X.Label.Text = c.XAxisLabel
	p.Y.Label.Text = c.YAxisLabel

	if c.XLog {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if c.YLog {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter

	p.Add(plotter.NewGrid())
	return p
}

func addLines(p *plot.Plot, c *Chart, colors []color.Color) error {
	for i, s := range c.Series {
		xys := make(plotter.XYs, len(s.Y))
		for j := range xys {
			xys[j].X = s.X[j]
			xys[j].Y = s.Y[j]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = colors[i]
		line.Width = vg.Points(1.5)
		points.Color = colors[i]
		points.Shape = s.Marker.glyph()
		points.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	return nil
}

func addBars(p *plot.Plot, c *Chart, colors []color.Color) error {
	width := c.BarWidth
	if width <= 0 {
		width = DefaultBarWidth
	}

	// Center the group on its category index.
	mid := float64(len(c.Series)-1) / 2

	for i, s := range c.Series {
		bc, err := newBarChart(s.Y, width)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		bc.Offset = (float64(i) - mid) * width
		bc.Color = colors[i]
		bc.LineStyle.Width = 0
		bc.LabelStyle = p.Y.Label.TextStyle
		bc.LabelStyle.Font.Size *= 0.7
		bc.LabelStyle.XAlign = text.XCenter
		bc.LabelStyle.YAlign = text.YBottom
		bc.LabelOffset.Y = vg.Points(2)
		bc.Labels = make([]string, len(s.Y))
		for j, y := range s.Y {
			bc.Labels[j] = formatRelative(y)
		}

		p.Add(bc)
		p.Legend.Add(s.Label, bc)
	}

	ticks := make([]plot.Tick, len(c.Categories))
	for i, label := range c.Categories {
		ticks[i].Value = float64(i)
		ticks[i].Label = label
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	return nil
}

func addReferences(p *plot.Plot, c *Chart) {
	for _, r := range c.References {
		y := r.Y
		f := plotter.NewFunction(func(float64) float64 { return y })
		f.Color = referenceColor
		f.Width = vg.Points(1.5)
		f.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

		p.Add(f)
		p.Legend.Add(r.Label, f)

		// Functions have no data range of their own.
		p.Y.Min = math.Min(p.Y.Min, y)
		p.Y.Max = math.Max(p.Y.Max, y)
	}
}
