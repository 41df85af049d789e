// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Output sets the size and resolution of rendered images.
type Output struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// DefaultOutput is a 12x6 inch figure at 300 DPI.
var DefaultOutput = Output{
	Width:  12 * vg.Inch,
	Height: 6 * vg.Inch,
	DPI:    300,
}

// Save renders the chart and writes it as a PNG image to dir/c.FileName,
// replacing any existing file. It returns the path written. The image is
// encoded in memory first, so a chart that fails to render leaves any
// existing file untouched.
func Save(c *Chart, dir string, out Output) (string, error) {
	p, err := c.Plot()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, p, out); err != nil {
		return "", err
	}

	path := filepath.Join(dir, c.FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o666); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// WritePNG draws p onto a raster canvas of the given size and resolution and
// encodes it to w. A panic raised while drawing is returned as ErrRender.
func WritePNG(w io.Writer, p *plot.Plot, out Output) error {
	c := vgimg.NewWith(
		vgimg.UseWH(out.Width, out.Height),
		vgimg.UseDPI(out.DPI),
	)
	if err := drawPlot(p, c); err != nil {
		return err
	}
	_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

func drawPlot(p *plot.Plot, c *vgimg.Canvas) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRender, r)
		}
	}()
	p.Draw(draw.New(c))
	return nil
}
