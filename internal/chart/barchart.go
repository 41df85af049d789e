// Derived from https://github.com/gonum/plot/blob/v0.16.0/plotter/barchart.go:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"image/color"
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// barChart draws one bar per value, the ith bar centered at category i plus
// Offset. Unlike plotter.BarChart, Width and Offset are in data units rather
// than canvas lengths, so a group of bars keeps its proportions at any figure
// size.
type barChart struct {
	// Values holds the height of each bar.
	Values []float64

	// Labels, when set, holds one label drawn above each bar.
	Labels []string

	// LabelOffset is added to the position of every label.
	LabelOffset vg.Point

	// Width is the width of the bars in data units.
	Width float64

	// Offset is added to the X location of each bar, in data units.
	Offset float64

	// Color is the fill color of the bars.
	Color color.Color

	// LineStyle is the style of the outline of the bars.
	draw.LineStyle

	// LabelStyle is the style of the label text.
	LabelStyle text.Style
}

// newBarChart returns a bar chart with a single bar for each value.
func newBarChart(values []float64, width float64) (*barChart, error) {
	if width <= 0 {
		return nil, errors.New("bar width was not positive")
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}
	return &barChart{
		Values:    slices.Clone(values),
		Width:     width,
		Color:     color.Black,
		LineStyle: plotter.DefaultLineStyle,
		LabelStyle: text.Style{
			Font:    font.From(plotter.DefaultFont, plotter.DefaultFontSize),
			Handler: plot.DefaultTextHandler,
		},
	}, nil
}

func (b *barChart) center(i int) float64 {
	return float64(i) + b.Offset
}

// Plot implements the plot.Plotter interface.
func (b *barChart) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, v := range b.Values {
		x := trX(b.center(i))
		if !c.ContainsX(x) {
			continue
		}
		xMin := trX(b.center(i) - b.Width/2)
		xMax := trX(b.center(i) + b.Width/2)
		yMin := trY(0)
		yMax := trY(v)

		pts := []vg.Point{
			{X: xMin, Y: yMin},
			{X: xMin, Y: yMax},
			{X: xMax, Y: yMax},
			{X: xMax, Y: yMin},
		}
		c.FillPolygon(b.Color, c.ClipPolygonY(pts))

		pts = append(pts, pts[0])
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)

		if i < len(b.Labels) {
			pt := vg.Point{X: x + b.LabelOffset.X, Y: yMax + b.LabelOffset.Y}
			c.FillText(b.LabelStyle, pt, b.Labels[i])
		}
	}
}

// DataRange implements the plot.DataRanger interface. The value range always
// includes zero, where the bars start.
func (b *barChart) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(b.Values) == 0 {
		return math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	}
	xmin = b.center(0) - b.Width/2
	xmax = b.center(len(b.Values)-1) + b.Width/2
	for _, v := range b.Values {
		ymin = math.Min(ymin, v)
		ymax = math.Max(ymax, v)
	}
	return xmin, xmax, ymin, ymax
}

// GlyphBoxes implements the GlyphBoxer interface so that labels above the
// tallest bars stay inside the plot area.
func (b *barChart) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	boxes := make([]plot.GlyphBox, len(b.Labels))
	for i, label := range b.Labels {
		r := b.LabelStyle.Rectangle(label)
		boxes[i].X = plt.X.Norm(b.center(i))
		boxes[i].Y = plt.Y.Norm(b.Values[i])
		boxes[i].Rectangle = vg.Rectangle{
			Min: vg.Point{X: r.Min.X + b.LabelOffset.X, Y: r.Min.Y + b.LabelOffset.Y},
			Max: vg.Point{X: r.Max.X + b.LabelOffset.X, Y: r.Max.Y + b.LabelOffset.Y},
		}
	}
	return boxes
}

// Thumbnail fulfills the plot.Thumbnailer interface.
func (b *barChart) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonY(pts)
	c.FillPolygon(b.Color, poly)

	pts = append(pts, vg.Point{X: c.Min.X, Y: c.Min.Y})
	outline := c.ClipLinesY(pts)
	c.StrokeLines(b.LineStyle, outline...)
}
